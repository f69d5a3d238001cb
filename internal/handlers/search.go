package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/service/search"
	"github.com/secureshop/backend/internal/store"
	"github.com/secureshop/backend/internal/util"
)

// SearchHandler answers product search queries from Elasticsearch when a
// client is configured, otherwise from the repository.
type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
	Store store.Store
}

func (h *SearchHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	ctx := c.Request().Context()

	if h.ES != nil {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		size, _ := strconv.Atoi(c.QueryParam("size"))
		from, size := util.Calculate(page, size)

		_, products, err := search.Search(ctx, h.ES, h.Index, q, from, size)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
		}
		return c.JSON(http.StatusOK, products)
	}

	products, err := h.Store.SearchProducts(ctx, q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, products)
}
