package api

import (
	"context"
	"time"

	"github.com/harborview/marinadesk/internal/models"
)

// ServiceRequestPayload is the create/update body for a service request
type ServiceRequestPayload struct {
	CustomerID    string                 `json:"customerId"`
	ServiceType   string                 `json:"serviceType"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description,omitempty"`
	Priority      models.RequestPriority `json:"priority"`
	Status        models.RequestStatus   `json:"status"`
	RequestedDate time.Time              `json:"requestedDate"`
	EstimatedCost float64                `json:"estimatedCost"`
}

// ListServiceRequests fetches all service requests
func (c *Client) ListServiceRequests(ctx context.Context) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	if err := c.get(ctx, "/service-requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PendingServiceRequests fetches requests still awaiting work
func (c *Client) PendingServiceRequests(ctx context.Context) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	query := map[string]string{"status": string(models.RequestPending)}
	if err := c.get(ctx, "/service-requests", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetServiceRequest fetches one request by id
func (c *Client) GetServiceRequest(ctx context.Context, id string) (*models.ServiceRequest, error) {
	var out models.ServiceRequest
	if err := c.get(ctx, "/service-requests/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateServiceRequest creates a service request
func (c *Client) CreateServiceRequest(ctx context.Context, p ServiceRequestPayload) (*models.ServiceRequest, error) {
	var out models.ServiceRequest
	if err := c.post(ctx, "/service-requests", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateServiceRequest patches a service request
func (c *Client) UpdateServiceRequest(ctx context.Context, id string, p ServiceRequestPayload) (*models.ServiceRequest, error) {
	var out models.ServiceRequest
	if err := c.patch(ctx, "/service-requests/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteServiceRequest removes a service request
func (c *Client) DeleteServiceRequest(ctx context.Context, id string) error {
	return c.delete(ctx, "/service-requests/"+id)
}
