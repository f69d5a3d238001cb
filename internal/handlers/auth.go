package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/hash"
	"github.com/secureshop/backend/internal/logging"
	"github.com/secureshop/backend/internal/models"
	"github.com/secureshop/backend/internal/mykafka"
	"github.com/secureshop/backend/internal/session"
	"github.com/secureshop/backend/internal/store"
	"github.com/secureshop/backend/internal/tokens"
)

type AuthHandler struct {
	Store     store.Store
	Sessions  *session.Manager
	JWTSecret []byte
	Producer  *mykafka.Producer
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username, password and email are required")
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create user")
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		Role:         models.RoleCustomer,
	}
	if err := h.Store.CreateUser(c.Request().Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return echo.NewHTTPError(http.StatusBadRequest, "user already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create user")
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]interface{}{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "user created",
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// Same response for unknown user and wrong password.
	user, err := h.Store.FindUserByUsername(c.Request().Context(), req.Username)
	if err != nil || !hash.CheckPassword(user.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	sess, err := h.Sessions.Issue(c.Request().Context(), user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create session")
	}

	expiresAt := time.Unix(sess.ExpiresAt, 0)
	token, err := tokens.Sign(sess.Principal(), h.JWTSecret, expiresAt)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create token")
	}

	c.SetCookie(session.Cookie(sess.Token, expiresAt))

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]interface{}{
		"type":     "user_logged_in",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.Sessions.Revoke(c.Request().Context(), cookie.Value); err != nil {
			logging.FromContext(c.Request().Context()).Error("session revoke failed", "error", err)
		}
	}

	c.SetCookie(session.Cookie("", time.Now().Add(-time.Hour)))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "logged out",
	})
}
