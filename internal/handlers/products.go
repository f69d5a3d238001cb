package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/models"
	"github.com/secureshop/backend/internal/mykafka"
	"github.com/secureshop/backend/internal/store"
)

type ProductHandler struct {
	Store    store.Store
	Producer *mykafka.Producer
}

func productID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return id, nil
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.Store.ListProducts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	product, err := h.Store.FindProductByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Stock    int     `json:"stock"`
		Category string  `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Price <= 0 || req.Stock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "name, a positive price and a non-negative stock are required")
	}

	product := models.Product{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	}
	if err := h.Store.CreateProduct(c.Request().Context(), &product); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create product")
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]interface{}{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	// Pointer fields so an absent field keeps the current value.
	var req struct {
		Name     *string  `json:"name"`
		Price    *float64 `json:"price"`
		Stock    *int     `json:"stock"`
		Category *string  `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	product, err := h.Store.FindProductByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load product")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if product.Name == "" || product.Price <= 0 || product.Stock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "name, a positive price and a non-negative stock are required")
	}

	if err := h.Store.UpdateProduct(c.Request().Context(), product); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not update product")
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]interface{}{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	if err := h.Store.DeleteProduct(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete product")
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(id), map[string]interface{}{
		"type":      "product_deleted",
		"productID": id,
	})

	return c.NoContent(http.StatusNoContent)
}
