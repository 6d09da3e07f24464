package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sara-web/internal/cache"
)

const (
	// TokenKey is the fixed key the bearer token is kept under.
	TokenKey = "sara_token"
	flashKey = "sara_flash"
)

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

const (
	successFlashLifetime = 3 * time.Second
	errorFlashLifetime   = 5 * time.Second
)

// Flash is a one-off message shown on the next page render, until it expires.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Lifetime is how long the flash waits in the store, and how long it stays
// on screen once shown.
func (f Flash) Lifetime() time.Duration {
	if f.Kind == FlashSuccess {
		return successFlashLifetime
	}
	return errorFlashLifetime
}

func (f Flash) LifetimeMillis() int64 {
	return f.Lifetime().Milliseconds()
}

// Store keeps the state a browser session carries across page loads: its
// bearer token and pending flash message. Keys are namespaced by session id.
type Store struct {
	cache    cache.Cache
	tokenTTL time.Duration
}

func NewStore(c cache.Cache, tokenTTL time.Duration) *Store {
	return &Store{cache: c, tokenTTL: tokenTTL}
}

func tokenKey(sid string) string { return TokenKey + ":" + sid }
func flashKeyFor(sid string) string { return flashKey + ":" + sid }

// SetToken stores the bearer token for the session
func (s *Store) SetToken(ctx context.Context, sid, token string) error {
	if err := s.cache.Set(ctx, tokenKey(sid), token, s.tokenTTL); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when the session has none.
func (s *Store) Token(ctx context.Context, sid string) (string, error) {
	token, err := s.cache.Get(ctx, tokenKey(sid))
	if errors.Is(err, cache.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return token, nil
}

// HasToken reports whether the session holds a bearer token
func (s *Store) HasToken(ctx context.Context, sid string) (bool, error) {
	ok, err := s.cache.Exists(ctx, tokenKey(sid))
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return ok, nil
}

// ClearToken removes the session's bearer token
func (s *Store) ClearToken(ctx context.Context, sid string) error {
	if err := s.cache.Delete(ctx, tokenKey(sid)); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// SetFlash replaces the session's pending flash. It disappears after ttl even
// if never displayed.
func (s *Store) SetFlash(ctx context.Context, sid string, f Flash, ttl time.Duration) error {
	if err := s.cache.SetJSON(ctx, flashKeyFor(sid), f, ttl); err != nil {
		return fmt.Errorf("failed to store flash: %w", err)
	}
	return nil
}

// PopFlash returns the pending flash and removes it. It returns nil when there
// is none or it has expired.
func (s *Store) PopFlash(ctx context.Context, sid string) (*Flash, error) {
	var f Flash
	err := s.cache.GetJSON(ctx, flashKeyFor(sid), &f)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read flash: %w", err)
	}
	if err := s.cache.Delete(ctx, flashKeyFor(sid)); err != nil {
		return nil, fmt.Errorf("failed to clear flash: %w", err)
	}
	return &f, nil
}
