package api

import (
	"context"

	"github.com/harborview/marinadesk/internal/models"
)

// FeedbackPayload is the create/update body for customer feedback
type FeedbackPayload struct {
	CustomerID    string `json:"customerId"`
	Rating        int    `json:"rating"`
	Category      string `json:"category,omitempty"`
	Comments      string `json:"comments,omitempty"`
	Reviewed      bool   `json:"reviewed"`
	StaffResponse string `json:"staffResponse,omitempty"`
}

// ListFeedback fetches all feedback
func (c *Client) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	var out []models.Feedback
	if err := c.get(ctx, "/feedback", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreviewedFeedback fetches feedback no staff member has looked at yet
func (c *Client) UnreviewedFeedback(ctx context.Context) ([]models.Feedback, error) {
	var out []models.Feedback
	if err := c.get(ctx, "/feedback", map[string]string{"unreviewed": "true"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FeedbackStats fetches the feedback rollup
func (c *Client) FeedbackStats(ctx context.Context) (*models.FeedbackStats, error) {
	var out models.FeedbackStats
	if err := c.get(ctx, "/feedback/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFeedback fetches one feedback entry by id
func (c *Client) GetFeedback(ctx context.Context, id string) (*models.Feedback, error) {
	var out models.Feedback
	if err := c.get(ctx, "/feedback/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFeedback records new feedback
func (c *Client) CreateFeedback(ctx context.Context, p FeedbackPayload) (*models.Feedback, error) {
	var out models.Feedback
	if err := c.post(ctx, "/feedback", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFeedback patches feedback (e.g. marking it reviewed or attaching a
// staff response)
func (c *Client) UpdateFeedback(ctx context.Context, id string, p FeedbackPayload) (*models.Feedback, error) {
	var out models.Feedback
	if err := c.patch(ctx, "/feedback/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFeedback removes a feedback entry
func (c *Client) DeleteFeedback(ctx context.Context, id string) error {
	return c.delete(ctx, "/feedback/"+id)
}
