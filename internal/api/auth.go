package api

import (
	"context"

	"github.com/harborview/marinadesk/internal/models"
)

// LoginRequest is the /auth/login body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the /auth/register body
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ChangePasswordRequest is the /auth/change-password body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// Login authenticates and stores the returned token on success
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	var out loginResponse
	if err := c.post(ctx, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out.User, nil
}

// Register creates a staff account
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var out models.User
	if err := c.post(ctx, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the authenticated user
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword updates the authenticated user's password
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.patch(ctx, "/auth/change-password", req, nil)
}
