package api

import (
	"context"

	"github.com/harborview/marinadesk/internal/models"
)

// CustomerPayload is the create/update body for a customer. Optional
// fields are omitted when blank rather than sent as empty strings.
type CustomerPayload struct {
	FirstName      string                `json:"firstName"`
	LastName       string                `json:"lastName"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone,omitempty"`
	Address        string                `json:"address,omitempty"`
	MembershipTier models.MembershipTier `json:"membershipTier"`
	Notes          string                `json:"notes,omitempty"`
}

// ListCustomers fetches all customers
func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.get(ctx, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchCustomers fetches customers matching a server-side search term
func (c *Client) SearchCustomers(ctx context.Context, term string) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.get(ctx, "/customers", map[string]string{"search": term}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCustomer fetches one customer by id
func (c *Client) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	var out models.Customer
	if err := c.get(ctx, "/customers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomer creates a customer
func (c *Client) CreateCustomer(ctx context.Context, p CustomerPayload) (*models.Customer, error) {
	var out models.Customer
	if err := c.post(ctx, "/customers", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomer patches a customer
func (c *Client) UpdateCustomer(ctx context.Context, id string, p CustomerPayload) (*models.Customer, error) {
	var out models.Customer
	if err := c.patch(ctx, "/customers/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCustomer removes a customer
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.delete(ctx, "/customers/"+id)
}

// AddLoyaltyPoints credits loyalty points to a customer
func (c *Client) AddLoyaltyPoints(ctx context.Context, id string, points int) error {
	body := map[string]int{"points": points}
	return c.post(ctx, "/customers/"+id+"/loyalty-points", body, nil)
}
