package models

import "time"

// RequestPriority orders service requests for dispatch
type RequestPriority string

const (
	PriorityLow    RequestPriority = "LOW"
	PriorityMedium RequestPriority = "MEDIUM"
	PriorityHigh   RequestPriority = "HIGH"
	PriorityUrgent RequestPriority = "URGENT"
)

// RequestStatus tracks a service request through its lifecycle
type RequestStatus string

const (
	RequestPending    RequestStatus = "PENDING"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestCompleted  RequestStatus = "COMPLETED"
	RequestCancelled  RequestStatus = "CANCELLED"
)

// ServiceRequest is a customer's request for marina work. ServiceType is
// free text (e.g. "Dock Repair", "Fueling").
type ServiceRequest struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	Customer      *Customer       `json:"customer,omitempty"`
	ServiceType   string          `json:"serviceType"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Priority      RequestPriority `json:"priority"`
	Status        RequestStatus   `json:"status"`
	RequestedDate time.Time       `json:"requestedDate"`
	EstimatedCost float64         `json:"estimatedCost"`
	CreatedAt     time.Time       `json:"createdAt"`
}
