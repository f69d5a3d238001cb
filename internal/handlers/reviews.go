package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/middleware/auth"
	"github.com/secureshop/backend/internal/models"
	"github.com/secureshop/backend/internal/mykafka"
	"github.com/secureshop/backend/internal/store"
)

const maxCommentLength = 500

type ReviewHandler struct {
	Store    store.Store
	Producer *mykafka.Producer
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}
	if len(req.Comment) > maxCommentLength {
		return echo.NewHTTPError(http.StatusBadRequest, "comment must be at most 500 characters")
	}

	if _, err := h.Store.FindProductByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load product")
	}

	now := time.Now()
	review := models.Review{
		ID:        now.UnixMilli(),
		ProductID: id,
		UserID:    principal.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      now,
	}
	if err := h.Store.CreateReview(c.Request().Context(), &review); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save review")
	}

	publish(c, h.Producer, "review_events", fmt.Sprint(principal.ID), map[string]interface{}{
		"type":      "review_created",
		"productID": id,
		"userID":    principal.ID,
		"rating":    req.Rating,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"review":  review,
	})
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	reviews, err := h.Store.ReviewsByProduct(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}
