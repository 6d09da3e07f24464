package api

import (
	"context"
	"net/http"
	"net/url"

	"sara-web/internal/models"
)

// Login calls POST /api/auth/login
func (c *Client) Login(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register calls POST /api/auth/register
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConfirmEmail calls GET /api/auth/confirm-email?token=... and returns the text response
func (c *Client) ConfirmEmail(ctx context.Context, token string) (string, error) {
	path := "/api/auth/confirm-email?token=" + url.QueryEscape(token)
	return c.doText(ctx, http.MethodGet, path, "", nil)
}

// ForgotPassword calls POST /api/auth/forgot-password and returns the text response
func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (string, error) {
	return c.doText(ctx, http.MethodPost, "/api/auth/forgot-password", "", req)
}

// ResetPassword calls POST /api/auth/reset-password and returns the text response
func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	return c.doText(ctx, http.MethodPost, "/api/auth/reset-password", "", req)
}
