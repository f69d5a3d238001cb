package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/store"
)

type StatsHandler struct {
	Store store.Store
}

func (h *StatsHandler) Stats(c echo.Context) error {
	stats, err := h.Store.CountStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not collect stats")
	}
	return c.JSON(http.StatusOK, stats)
}
