// Package handler exposes the HTTP handlers.  Handlers translate between
// echo requests and the catalog, ticket and qr packages; all failures are
// reported as {"error": "..."} with a matching status code.
package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/catalog-ticket-service/internal/catalog"
)

// CatalogHandler serves read-only product queries.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

// NewCatalogHandler panics on a nil catalog.
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	if c == nil {
		panic("nil catalog passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: c}
}

// ListProducts handles GET /products?category=&minPrice=&maxPrice=.
// Filter values that do not parse are ignored rather than rejected.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	f := catalog.Filter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		MinPrice: parsePrice(c.QueryParam("minPrice")),
		MaxPrice: parsePrice(c.QueryParam("maxPrice")),
	}
	return c.JSON(http.StatusOK, h.Catalog.List(f))
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, p)
}

// ListByCategory handles GET /products/category/:category.  No match is
// an empty array, not a 404.
func (h *CatalogHandler) ListByCategory(c echo.Context) error {
	category := c.Param("category")
	if u, err := url.PathUnescape(category); err == nil {
		category = u
	}
	return c.JSON(http.StatusOK, h.Catalog.ListByCategory(category))
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Categories())
}

func parsePrice(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
