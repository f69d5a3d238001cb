package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/secureshop/backend/internal/models"
	"github.com/secureshop/backend/internal/session"
	"github.com/secureshop/backend/internal/store"
	"github.com/secureshop/backend/internal/tokens"
)

var testSecret = []byte("guard-test-secret")

// stubStore only backs session lookups; the embedded interface covers the
// methods guards never touch.
type stubStore struct {
	store.Store
	sessions map[string]*models.Session
}

func (s *stubStore) FindSession(_ context.Context, token string) (*models.Session, error) {
	sess, ok := s.sessions[token]
	if !ok || sess.Revoked {
		return nil, store.ErrNotFound
	}
	if time.Now().Unix() > sess.ExpiresAt {
		return nil, store.ErrSessionExpired
	}
	return sess, nil
}

func newGuard(sessions map[string]*models.Session) *Middleware {
	return &Middleware{
		Sessions:  &session.Manager{Store: &stubStore{sessions: sessions}},
		JWTSecret: testSecret,
	}
}

func callGuard(t *testing.T, m *Middleware, level Level, decorate func(*http.Request)) (error, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	err := m.Require(level)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return err, called
}

func TestPublicNeedsNoCredentials(t *testing.T) {
	m := newGuard(nil)
	err, called := callGuard(t, m, Public, nil)
	require.NoError(t, err)
	require.True(t, called)
}

func TestAuthenticatedWithoutCredentials(t *testing.T) {
	m := newGuard(nil)
	err, called := callGuard(t, m, Authenticated, nil)
	require.False(t, called)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuthenticatedWithBearerToken(t *testing.T) {
	m := newGuard(nil)
	p := models.Principal{ID: 7, Username: "alice", Role: models.RoleCustomer}
	token, err := tokens.Sign(p, testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	err, called := callGuard(t, m, Authenticated, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	require.NoError(t, err)
	require.True(t, called)
}

func TestAuthenticatedWithSessionCookie(t *testing.T) {
	m := newGuard(map[string]*models.Session{
		"tok": {Token: "tok", UserID: 7, Username: "alice", Role: models.RoleCustomer, ExpiresAt: time.Now().Add(time.Hour).Unix()},
	})

	err, called := callGuard(t, m, Authenticated, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	})
	require.NoError(t, err)
	require.True(t, called)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	m := newGuard(map[string]*models.Session{
		"tok": {Token: "tok", UserID: 7, Username: "alice", Role: models.RoleCustomer, ExpiresAt: time.Now().Add(-time.Minute).Unix()},
	})

	err, called := callGuard(t, m, Authenticated, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	})
	require.False(t, called)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminOnly(t *testing.T) {
	m := newGuard(nil)

	customer, err := tokens.Sign(models.Principal{ID: 2, Username: "user", Role: models.RoleCustomer}, testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)
	admin, err := tokens.Sign(models.Principal{ID: 1, Username: "admin", Role: models.RoleAdmin}, testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	err, called := callGuard(t, m, AdminOnly, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+customer)
	})
	require.False(t, called)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, he.Code)

	err, called = callGuard(t, m, AdminOnly, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+admin)
	})
	require.NoError(t, err)
	require.True(t, called)
}

func TestGuardStoresPrincipal(t *testing.T) {
	m := newGuard(nil)
	p := models.Principal{ID: 7, Username: "alice", Role: models.RoleCustomer}
	token, err := tokens.Sign(p, testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	err = m.Require(Authenticated)(func(c echo.Context) error {
		got, ok := PrincipalFrom(c)
		require.True(t, ok)
		require.Equal(t, p, got)
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
}
