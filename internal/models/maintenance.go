package models

import "time"

// MaintenanceType classifies why work was scheduled
type MaintenanceType string

const (
	MaintenanceRoutine    MaintenanceType = "ROUTINE"
	MaintenancePreventive MaintenanceType = "PREVENTIVE"
	MaintenanceCorrective MaintenanceType = "CORRECTIVE"
	MaintenanceEmergency  MaintenanceType = "EMERGENCY"
)

// MaintenanceStatus tracks a record through its lifecycle
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceCancelled  MaintenanceStatus = "CANCELLED"
)

// MaintenanceRecord is one scheduled or completed piece of work on an asset
type MaintenanceRecord struct {
	ID            string            `json:"id"`
	AssetID       string            `json:"assetId"`
	Asset         *Asset            `json:"asset,omitempty"`
	Type          MaintenanceType   `json:"type"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	Status        MaintenanceStatus `json:"status"`
	ScheduledDate *time.Time        `json:"scheduledDate,omitempty"`
	CompletedDate *time.Time        `json:"completedDate,omitempty"`
	EstimatedCost *float64          `json:"estimatedCost,omitempty"`
	ActualCost    *float64          `json:"actualCost,omitempty"`
	AssignedTo    string            `json:"assignedTo,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}
