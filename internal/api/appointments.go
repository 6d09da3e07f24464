package api

import (
	"context"
	"fmt"
	"net/http"

	"sara-web/internal/models"
)

// CreateAppointment calls POST /api/appointments
func (c *Client) CreateAppointment(ctx context.Context, token string, req models.AppointmentRequest) (*models.AppointmentResponse, error) {
	var resp models.AppointmentResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/appointments", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyAppointments calls GET /api/appointments/me
func (c *Client) MyAppointments(ctx context.Context, token string) ([]models.AppointmentResponse, error) {
	var resp []models.AppointmentResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/appointments/me", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CancelAppointment calls DELETE /api/appointments/{id}/cancel
func (c *Client) CancelAppointment(ctx context.Context, token string, id int64) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	path := fmt.Sprintf("/api/appointments/%d/cancel", id)
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
