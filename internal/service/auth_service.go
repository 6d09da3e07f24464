package service

import (
	"context"
	"errors"
	"fmt"

	"sara-web/internal/models"
	"sara-web/internal/session"
	"sara-web/internal/token"
)

// AuthAPI is the part of the backend client the auth service needs
type AuthAPI interface {
	Login(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	ConfirmEmail(ctx context.Context, token string) (string, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error)
}

// AuthService defines the authentication operations of a browser session.
// sid identifies the browser session the token belongs to.
type AuthService interface {
	Login(ctx context.Context, sid string, req *models.AuthRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, sid string, req *models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, sid string) error
	IsLoggedIn(ctx context.Context, sid string) bool
	Token(ctx context.Context, sid string) (string, bool)
	Identity(ctx context.Context, sid string) (*token.Claims, bool)
	ConfirmEmail(ctx context.Context, confirmationToken string) (string, error)
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (string, error)
}

var errMissingToken = errors.New("backend response carries no token")

type authService struct {
	api   AuthAPI
	store *session.Store
}

// NewAuthService creates a new auth service
func NewAuthService(api AuthAPI, store *session.Store) AuthService {
	return &authService{
		api:   api,
		store: store,
	}
}

// Login authenticates against the backend and keeps the returned token for the session
func (s *authService) Login(ctx context.Context, sid string, req *models.AuthRequest) (*models.AuthResponse, error) {
	resp, err := s.api.Login(ctx, *req)
	if err != nil {
		return nil, err
	}
	if err := s.storeToken(ctx, sid, resp.Token); err != nil {
		return nil, err
	}
	return resp, nil
}

// Register creates the account and, like Login, keeps the returned token
func (s *authService) Register(ctx context.Context, sid string, req *models.RegisterRequest) (*models.AuthResponse, error) {
	resp, err := s.api.Register(ctx, *req)
	if err != nil {
		return nil, err
	}
	if err := s.storeToken(ctx, sid, resp.Token); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *authService) storeToken(ctx context.Context, sid, tok string) error {
	if tok == "" {
		return errMissingToken
	}
	if err := s.store.SetToken(ctx, sid, tok); err != nil {
		return fmt.Errorf("failed to keep session token: %w", err)
	}
	return nil
}

// Logout forgets the session's token. The backend is not contacted.
func (s *authService) Logout(ctx context.Context, sid string) error {
	return s.store.ClearToken(ctx, sid)
}

// IsLoggedIn only checks that a token is present: no expiry check, no refresh.
func (s *authService) IsLoggedIn(ctx context.Context, sid string) bool {
	ok, err := s.store.HasToken(ctx, sid)
	return err == nil && ok
}

func (s *authService) Token(ctx context.Context, sid string) (string, bool) {
	tok, err := s.store.Token(ctx, sid)
	if err != nil || tok == "" {
		return "", false
	}
	return tok, true
}

// Identity returns the claims of the session's token, for display
func (s *authService) Identity(ctx context.Context, sid string) (*token.Claims, bool) {
	tok, ok := s.Token(ctx, sid)
	if !ok {
		return nil, false
	}
	claims, err := token.Parse(tok)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func (s *authService) ConfirmEmail(ctx context.Context, confirmationToken string) (string, error) {
	return s.api.ConfirmEmail(ctx, confirmationToken)
}

func (s *authService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) (string, error) {
	return s.api.ForgotPassword(ctx, *req)
}

func (s *authService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (string, error) {
	return s.api.ResetPassword(ctx, *req)
}
