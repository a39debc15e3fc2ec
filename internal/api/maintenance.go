package api

import (
	"context"
	"strconv"
	"time"

	"github.com/harborview/marinadesk/internal/models"
)

// MaintenancePayload is the create/update body for a maintenance record.
// ScheduledDate is always present (null when unset); the remaining
// optional fields are omitted when absent because the backend's create DTO
// rejects unknown-at-creation fields like actualCost.
type MaintenancePayload struct {
	AssetID       string                   `json:"assetId"`
	Type          models.MaintenanceType   `json:"type"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description,omitempty"`
	ScheduledDate *time.Time               `json:"scheduledDate"`
	Status        models.MaintenanceStatus `json:"status,omitempty"`
	CompletedDate *time.Time               `json:"completedDate,omitempty"`
	EstimatedCost *float64                 `json:"estimatedCost,omitempty"`
	ActualCost    *float64                 `json:"actualCost,omitempty"`
	AssignedTo    string                   `json:"assignedTo,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
}

// ListMaintenance fetches all maintenance records
func (c *Client) ListMaintenance(ctx context.Context) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	if err := c.get(ctx, "/maintenance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpcomingMaintenance fetches records scheduled in the near future
func (c *Client) UpcomingMaintenance(ctx context.Context) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	if err := c.get(ctx, "/maintenance/upcoming", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OverdueMaintenance fetches records the backend flags as overdue
func (c *Client) OverdueMaintenance(ctx context.Context) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	if err := c.get(ctx, "/maintenance/overdue", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MaintenanceStats fetches the maintenance rollup
func (c *Client) MaintenanceStats(ctx context.Context) (*models.MaintenanceStats, error) {
	var out models.MaintenanceStats
	if err := c.get(ctx, "/maintenance/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictMaintenanceCosts fetches the cost forecast for the next months
func (c *Client) PredictMaintenanceCosts(ctx context.Context, months int) ([]models.CostForecast, error) {
	var out []models.CostForecast
	query := map[string]string{"months": strconv.Itoa(months)}
	if err := c.get(ctx, "/maintenance/predict-costs", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMaintenance fetches one record by id
func (c *Client) GetMaintenance(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	var out models.MaintenanceRecord
	if err := c.get(ctx, "/maintenance/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMaintenance creates a maintenance record
func (c *Client) CreateMaintenance(ctx context.Context, p MaintenancePayload) (*models.MaintenanceRecord, error) {
	var out models.MaintenanceRecord
	if err := c.post(ctx, "/maintenance", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMaintenance patches a maintenance record
func (c *Client) UpdateMaintenance(ctx context.Context, id string, p MaintenancePayload) (*models.MaintenanceRecord, error) {
	var out models.MaintenanceRecord
	if err := c.patch(ctx, "/maintenance/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMaintenance removes a maintenance record
func (c *Client) DeleteMaintenance(ctx context.Context, id string) error {
	return c.delete(ctx, "/maintenance/"+id)
}
