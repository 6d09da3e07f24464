package service

import (
	"context"
	"errors"

	"sara-web/internal/models"
	"sara-web/internal/session"
)

// ErrAppointmentNotFound is returned by Find when the id is not among the session's appointments
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentAPI is the part of the backend client the appointment service needs
type AppointmentAPI interface {
	CreateAppointment(ctx context.Context, token string, req models.AppointmentRequest) (*models.AppointmentResponse, error)
	MyAppointments(ctx context.Context, token string) ([]models.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, token string, id int64) (*models.MessageResponse, error)
}

// AppointmentService defines the appointment operations of a browser session
type AppointmentService interface {
	Create(ctx context.Context, sid string, req *models.AppointmentRequest) (*models.AppointmentResponse, error)
	GetMine(ctx context.Context, sid string) ([]models.AppointmentResponse, error)
	Cancel(ctx context.Context, sid string, id int64) (*models.MessageResponse, error)
	Find(ctx context.Context, sid string, id int64) (*models.AppointmentResponse, error)
}

type appointmentService struct {
	api   AppointmentAPI
	store *session.Store
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(api AppointmentAPI, store *session.Store) AppointmentService {
	return &appointmentService{
		api:   api,
		store: store,
	}
}

// token returns the session's bearer token. Calls are still sent without one:
// the backend decides, and its 401 message is what the page shows.
func (s *appointmentService) token(ctx context.Context, sid string) (string, error) {
	return s.store.Token(ctx, sid)
}

func (s *appointmentService) Create(ctx context.Context, sid string, req *models.AppointmentRequest) (*models.AppointmentResponse, error) {
	tok, err := s.token(ctx, sid)
	if err != nil {
		return nil, err
	}
	return s.api.CreateAppointment(ctx, tok, *req)
}

func (s *appointmentService) GetMine(ctx context.Context, sid string) ([]models.AppointmentResponse, error) {
	tok, err := s.token(ctx, sid)
	if err != nil {
		return nil, err
	}
	return s.api.MyAppointments(ctx, tok)
}

func (s *appointmentService) Cancel(ctx context.Context, sid string, id int64) (*models.MessageResponse, error) {
	tok, err := s.token(ctx, sid)
	if err != nil {
		return nil, err
	}
	return s.api.CancelAppointment(ctx, tok, id)
}

// Find looks the appointment up in the session's list; there is no single-item endpoint.
func (s *appointmentService) Find(ctx context.Context, sid string, id int64) (*models.AppointmentResponse, error) {
	appointments, err := s.GetMine(ctx, sid)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, ErrAppointmentNotFound
}
