package api

import (
	"context"
	"time"

	"github.com/harborview/marinadesk/internal/models"
)

// AssetPayload is the create/update body for an asset. Empty optional
// dates serialize as null.
type AssetPayload struct {
	Name                string             `json:"name"`
	Type                models.AssetType   `json:"type"`
	Status              models.AssetStatus `json:"status"`
	Location            string             `json:"location,omitempty"`
	Description         string             `json:"description,omitempty"`
	PurchaseDate        *time.Time         `json:"purchaseDate"`
	PurchasePrice       float64            `json:"purchasePrice"`
	WarrantyExpiry      *time.Time         `json:"warrantyExpiry"`
	MaintenanceInterval int                `json:"maintenanceInterval"`
	LastMaintenanceDate *time.Time         `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time         `json:"nextMaintenanceDate"`
}

// ListAssets fetches all assets
func (c *Client) ListAssets(ctx context.Context) ([]models.Asset, error) {
	var out []models.Asset
	if err := c.get(ctx, "/assets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MaintenanceDueAssets fetches assets flagged as due for maintenance
func (c *Client) MaintenanceDueAssets(ctx context.Context) ([]models.Asset, error) {
	var out []models.Asset
	if err := c.get(ctx, "/assets", map[string]string{"maintenanceDue": "true"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssetStats fetches the asset rollup
func (c *Client) AssetStats(ctx context.Context) (*models.AssetStats, error) {
	var out models.AssetStats
	if err := c.get(ctx, "/assets/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAsset fetches one asset by id
func (c *Client) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	var out models.Asset
	if err := c.get(ctx, "/assets/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAsset creates an asset
func (c *Client) CreateAsset(ctx context.Context, p AssetPayload) (*models.Asset, error) {
	var out models.Asset
	if err := c.post(ctx, "/assets", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAsset patches an asset
func (c *Client) UpdateAsset(ctx context.Context, id string, p AssetPayload) (*models.Asset, error) {
	var out models.Asset
	if err := c.patch(ctx, "/assets/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAsset removes an asset
func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.delete(ctx, "/assets/"+id)
}
