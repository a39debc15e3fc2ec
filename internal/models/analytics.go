package models

// Server-computed aggregate payloads. Count/sum fields use the Flex types
// because the backend emits them as strings for some breakdowns.

// DashboardStats backs the dashboard stat cards
type DashboardStats struct {
	TotalCustomers     FlexInt `json:"totalCustomers"`
	ActiveVisits       FlexInt `json:"activeVisits"`
	PendingRequests    FlexInt `json:"pendingRequests"`
	UnreviewedFeedback FlexInt `json:"unreviewedFeedback"`
	TotalDocks         FlexInt `json:"totalDocks"`
	CustomersChange    string  `json:"customersChange,omitempty"`
	VisitsChange       string  `json:"visitsChange,omitempty"`
	RequestsChange     string  `json:"requestsChange,omitempty"`
	FeedbackChange     string  `json:"feedbackChange,omitempty"`
}

// Occupancy is the dock utilization snapshot
type Occupancy struct {
	TotalDocks        FlexInt   `json:"totalDocks"`
	OccupiedDocks     FlexInt   `json:"occupiedDocks"`
	AvailableDocks    FlexInt   `json:"availableDocks"`
	MaintenanceDocks  FlexInt   `json:"maintenanceDocks"`
	OutOfServiceDocks FlexInt   `json:"outOfServiceDocks"`
	OccupancyRate     FlexFloat `json:"occupancyRate"`
}

// RevenueSummary is the all-time revenue rollup
type RevenueSummary struct {
	TotalRevenue   FlexFloat `json:"totalRevenue"`
	TotalVisits    FlexInt   `json:"totalVisits"`
	AverageRevenue FlexFloat `json:"averageRevenue"`
}

// TierCount is one membership-tier bucket in the customer insights payload
type TierCount struct {
	Tier  MembershipTier `json:"tier"`
	Count FlexInt        `json:"count"`
}

// TopCustomer ranks a customer by visits and spend
type TopCustomer struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	MembershipTier MembershipTier `json:"membershipTier"`
	VisitCount     FlexInt        `json:"visitCount"`
	TotalSpent     FlexFloat      `json:"totalSpent"`
}

// CustomerInsights is the /analytics/customers payload
type CustomerInsights struct {
	MembershipDistribution []TierCount   `json:"membershipDistribution"`
	TopCustomers           []TopCustomer `json:"topCustomers"`
}

// MonthlySpend is one month in the maintenance spending series
type MonthlySpend struct {
	Month     string    `json:"month"`
	TotalCost FlexFloat `json:"totalCost"`
	Count     FlexInt   `json:"count"`
}

// MaintenanceAnalytics is the /analytics/maintenance payload
type MaintenanceAnalytics struct {
	MonthlySpending []MonthlySpend `json:"monthlySpending"`
	TotalCost       FlexFloat      `json:"totalCost"`
}

// ServiceTypeCount is one service-type bucket with its average cost
type ServiceTypeCount struct {
	ServiceType string    `json:"serviceType"`
	Count       FlexInt   `json:"count"`
	AvgCost     FlexFloat `json:"avgCost"`
}

// ServiceStatusCount is one request-status bucket
type ServiceStatusCount struct {
	Status RequestStatus `json:"status"`
	Count  FlexInt       `json:"count"`
}

// ServiceAnalytics is the /analytics/services payload
type ServiceAnalytics struct {
	RequestsByType   []ServiceTypeCount   `json:"requestsByType"`
	RequestsByStatus []ServiceStatusCount `json:"requestsByStatus"`
}

// FeedbackStats is the /feedback/stats payload
type FeedbackStats struct {
	Total         FlexInt   `json:"total"`
	AverageRating FlexFloat `json:"averageRating"`
	Unreviewed    FlexInt   `json:"unreviewed"`
}

// CostForecast is one month of the /maintenance/predict-costs response
type CostForecast struct {
	Month         string    `json:"month"`
	PredictedCost FlexFloat `json:"predictedCost"`
}

// AssetStats is the /assets/stats payload
type AssetStats struct {
	Total          FlexInt   `json:"total"`
	MaintenanceDue FlexInt   `json:"maintenanceDue"`
	TotalValue     FlexFloat `json:"totalValue"`
}

// DockStats is the /docks/stats payload
type DockStats struct {
	Total        FlexInt `json:"total"`
	Available    FlexInt `json:"available"`
	Occupied     FlexInt `json:"occupied"`
	Maintenance  FlexInt `json:"maintenance"`
	OutOfService FlexInt `json:"outOfService"`
}

// MaintenanceStats is the /maintenance/stats payload
type MaintenanceStats struct {
	Total     FlexInt   `json:"total"`
	Scheduled FlexInt   `json:"scheduled"`
	Overdue   FlexInt   `json:"overdue"`
	TotalCost FlexFloat `json:"totalCost"`
}
