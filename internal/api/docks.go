package api

import (
	"context"
	"time"

	"github.com/harborview/marinadesk/internal/models"
)

// DockPayload is the create/update body for a dock. Optional scalar fields
// are pointers without omitempty so a cleared field serializes as null;
// the amenities map is dropped entirely when empty; maintenance dates are
// only sent on update.
type DockPayload struct {
	DockNumber          string            `json:"dockNumber"`
	Name                string            `json:"name"`
	Size                models.DockSize   `json:"size"`
	Status              models.DockStatus `json:"status"`
	Location            *string           `json:"location"`
	Description         *string           `json:"description"`
	MaxBoatLength       *float64          `json:"maxBoatLength"`
	Depth               *float64          `json:"depth"`
	PowerAmperage       *int              `json:"powerAmperage"`
	HasWater            bool              `json:"hasWater"`
	HasSewage           bool              `json:"hasSewage"`
	HasFuel             bool              `json:"hasFuel"`
	BuiltDate           *time.Time        `json:"builtDate"`
	MaintenanceInterval int               `json:"maintenanceInterval"`
	Amenities           map[string]any    `json:"amenities,omitempty"`
	LastMaintenanceDate *time.Time        `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate *time.Time        `json:"nextMaintenanceDate,omitempty"`
	Notes               *string           `json:"notes"`
}

// ListDocks fetches docks, optionally filtered by status and/or size
func (c *Client) ListDocks(ctx context.Context, status models.DockStatus, size models.DockSize) ([]models.Dock, error) {
	query := map[string]string{}
	if status != "" {
		query["status"] = string(status)
	}
	if size != "" {
		query["size"] = string(size)
	}
	var out []models.Dock
	if err := c.get(ctx, "/docks", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AvailableDocks fetches docks currently accepting boats
func (c *Client) AvailableDocks(ctx context.Context) ([]models.Dock, error) {
	var out []models.Dock
	if err := c.get(ctx, "/docks", map[string]string{"available": "true"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DockStats fetches the dock status rollup
func (c *Client) DockStats(ctx context.Context) (*models.DockStats, error) {
	var out models.DockStats
	if err := c.get(ctx, "/docks/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDock fetches one dock by id
func (c *Client) GetDock(ctx context.Context, id string) (*models.Dock, error) {
	var out models.Dock
	if err := c.get(ctx, "/docks/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDock creates a dock
func (c *Client) CreateDock(ctx context.Context, p DockPayload) (*models.Dock, error) {
	var out models.Dock
	if err := c.post(ctx, "/docks", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDock patches a dock
func (c *Client) UpdateDock(ctx context.Context, id string, p DockPayload) (*models.Dock, error) {
	var out models.Dock
	if err := c.patch(ctx, "/docks/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDock removes a dock
func (c *Client) DeleteDock(ctx context.Context, id string) error {
	return c.delete(ctx, "/docks/"+id)
}
