// Package session manages the opaque server-side sessions delivered through
// an http-only cookie.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/secureshop/backend/internal/models"
	"github.com/secureshop/backend/internal/store"
)

const (
	CookieName = "session"
	TTL        = 24 * time.Hour
)

type Manager struct {
	Store store.Store
}

// NewToken returns 32 bytes of crypto/rand entropy, URL-safe encoded.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (m *Manager) Issue(ctx context.Context, user *models.User) (*models.Session, error) {
	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	s := &models.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(TTL).Unix(),
	}
	if err := m.Store.CreateSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *Manager) Resolve(ctx context.Context, token string) (models.Principal, error) {
	s, err := m.Store.FindSession(ctx, token)
	if err != nil {
		return models.Principal{}, err
	}
	return s.Principal(), nil
}

func (m *Manager) Revoke(ctx context.Context, token string) error {
	return m.Store.RevokeSession(ctx, token)
}

func Cookie(token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}
