package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/middleware/auth"
	"github.com/secureshop/backend/internal/store"
)

type UserHandler struct {
	Store store.Store
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.Store.ListUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list users")
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser enforces the ownership rule: a non-admin may only fetch their own
// record.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if !principal.IsAdmin() && principal.ID != uint(id) {
		return echo.NewHTTPError(http.StatusForbidden, "you may only view your own account")
	}

	user, err := h.Store.FindUserByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load user")
	}

	return c.JSON(http.StatusOK, user)
}
