package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/secureshop/backend/internal/handlers"
	"github.com/secureshop/backend/internal/middleware/auth"
	"github.com/secureshop/backend/internal/models"
	"github.com/secureshop/backend/internal/session"
	"github.com/secureshop/backend/internal/store"
	httpserver "github.com/secureshop/backend/internal/transport/http"
)

const adminPassword = "admin123"

var testSecret = []byte("handler-test-secret")

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	Store   store.Store
	Uploads string
}

// newTestEnv wires the full router against an in-memory database seeded with
// the fixture users (admin, user/user123) and the four fixture products.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Review{},
		&models.Session{},
	))
	require.NoError(t, store.Seed(db, adminPassword))

	st := store.NewGormStore(db)
	sessions := &session.Manager{Store: st}
	uploads := t.TempDir()

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		Auth:     &handlers.AuthHandler{Store: st, Sessions: sessions, JWTSecret: testSecret},
		Users:    &handlers.UserHandler{Store: st},
		Products: &handlers.ProductHandler{Store: st},
		Reviews:  &handlers.ReviewHandler{Store: st},
		Checkout: &handlers.CheckoutHandler{Store: st},
		Stats:    &handlers.StatsHandler{Store: st},
		Files:    &handlers.FileHandler{UploadDir: uploads},
		Search:   &handlers.SearchHandler{Store: st},
		Guard:    &auth.Middleware{Sessions: sessions, JWTSecret: testSecret},
	})

	return &testEnv{T: t, E: e, Store: st, Uploads: uploads}
}

type reqOption func(*http.Request)

func withBearer(token string) reqOption {
	return func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
}

func withCookie(cookie *http.Cookie) reqOption {
	return func(r *http.Request) {
		r.AddCookie(cookie)
	}
}

func (env *testEnv) do(method, target string, body interface{}, opts ...reqOption) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

// login returns the bearer token and the session cookie set by the server.
func (env *testEnv) login(username, password string) (string, *http.Cookie) {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(env.T, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(env.T, resp.Success)
	require.NotEmpty(env.T, resp.Token)

	var sessionCookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			sessionCookie = ck
		}
	}
	require.NotNil(env.T, sessionCookie)
	return resp.Token, sessionCookie
}
