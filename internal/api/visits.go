package api

import (
	"context"
	"time"

	"github.com/harborview/marinadesk/internal/models"
)

// VisitPayload is the create/update body for a visit. CheckOutTime is a
// pointer without omitempty so an open visit serializes as an explicit
// null check-out.
type VisitPayload struct {
	CustomerID     string              `json:"customerId"`
	DockNumber     string              `json:"dockNumber"`
	BoatName       string              `json:"boatName,omitempty"`
	BoatType       string              `json:"boatType,omitempty"`
	CheckInTime    time.Time           `json:"checkInTime"`
	CheckOutTime   *time.Time          `json:"checkOutTime"`
	ServiceCharges float64             `json:"serviceCharges"`
	ServicesUsed   models.ServicesUsed `json:"servicesUsed"`
	Notes          string              `json:"notes,omitempty"`
}

// ListVisits fetches all visits
func (c *Client) ListVisits(ctx context.Context) ([]models.Visit, error) {
	var out []models.Visit
	if err := c.get(ctx, "/visits", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CurrentVisits fetches visits that have not checked out
func (c *Client) CurrentVisits(ctx context.Context) ([]models.Visit, error) {
	var out []models.Visit
	if err := c.get(ctx, "/visits/current", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetVisit fetches one visit by id
func (c *Client) GetVisit(ctx context.Context, id string) (*models.Visit, error) {
	var out models.Visit
	if err := c.get(ctx, "/visits/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateVisit records a new visit
func (c *Client) CreateVisit(ctx context.Context, p VisitPayload) (*models.Visit, error) {
	var out models.Visit
	if err := c.post(ctx, "/visits", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVisit patches a visit
func (c *Client) UpdateVisit(ctx context.Context, id string, p VisitPayload) (*models.Visit, error) {
	var out models.Visit
	if err := c.patch(ctx, "/visits/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVisit removes a visit
func (c *Client) DeleteVisit(ctx context.Context, id string) error {
	return c.delete(ctx, "/visits/"+id)
}
