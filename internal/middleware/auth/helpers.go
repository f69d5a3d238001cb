package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/models"
	"github.com/secureshop/backend/internal/session"
	"github.com/secureshop/backend/internal/tokens"
)

const principalKey = "principal"

type Middleware struct {
	Sessions  *session.Manager
	JWTSecret []byte
}

// principal resolves the caller's identity from the session cookie first,
// then from an Authorization bearer token.
func (m *Middleware) principal(c echo.Context) (models.Principal, bool) {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if p, err := m.Sessions.Resolve(c.Request().Context(), cookie.Value); err == nil {
			return p, true
		}
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if raw, ok := strings.CutPrefix(header, "Bearer "); ok && raw != "" {
		if p, err := tokens.Parse(raw, m.JWTSecret); err == nil {
			return p, true
		}
	}

	return models.Principal{}, false
}

// PrincipalFrom returns the identity a guard stored on the context.
func PrincipalFrom(c echo.Context) (models.Principal, bool) {
	p, ok := c.Get(principalKey).(models.Principal)
	return p, ok
}
