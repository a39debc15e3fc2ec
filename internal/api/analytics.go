package api

import (
	"context"
	"strconv"

	"github.com/harborview/marinadesk/internal/models"
)

// DashboardStats fetches the headline dashboard numbers
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.get(ctx, "/analytics/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Revenue fetches the revenue rollup, optionally bounded by ISO dates
func (c *Client) Revenue(ctx context.Context, startDate, endDate string) (*models.RevenueSummary, error) {
	query := map[string]string{}
	if startDate != "" {
		query["startDate"] = startDate
	}
	if endDate != "" {
		query["endDate"] = endDate
	}
	var out models.RevenueSummary
	if err := c.get(ctx, "/analytics/revenue", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CustomerInsights fetches tier distribution and top customers
func (c *Client) CustomerInsights(ctx context.Context) (*models.CustomerInsights, error) {
	var out models.CustomerInsights
	if err := c.get(ctx, "/analytics/customers", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ServiceAnalytics fetches request breakdowns by type and status
func (c *Client) ServiceAnalytics(ctx context.Context) (*models.ServiceAnalytics, error) {
	var out models.ServiceAnalytics
	if err := c.get(ctx, "/analytics/services", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MaintenanceAnalytics fetches the monthly spending series
func (c *Client) MaintenanceAnalytics(ctx context.Context, months int) (*models.MaintenanceAnalytics, error) {
	query := map[string]string{"months": strconv.Itoa(months)}
	var out models.MaintenanceAnalytics
	if err := c.get(ctx, "/analytics/maintenance", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OccupancySnapshot fetches the dock occupancy snapshot
func (c *Client) OccupancySnapshot(ctx context.Context) (*models.Occupancy, error) {
	var out models.Occupancy
	if err := c.get(ctx, "/analytics/occupancy", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
