package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is used by load balancers to verify the service is up.  It
// returns a plain text "ok".
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Index describes the available endpoints, mostly for humans poking at
// the service with a browser.
func Index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Server is running",
		"endpoints": echo.Map{
			"products": echo.Map{
				"url":    "/products",
				"method": http.MethodGet,
				"query":  echo.Map{"category": "string", "minPrice": "number", "maxPrice": "number"},
			},
			"product": echo.Map{
				"url":    "/products/:id",
				"method": http.MethodGet,
				"params": echo.Map{"id": "number"},
			},
			"productsByCategory": echo.Map{
				"url":    "/products/category/:category",
				"method": http.MethodGet,
				"params": echo.Map{"category": "string"},
			},
			"categories": echo.Map{
				"url":    "/categories",
				"method": http.MethodGet,
			},
			"generateTicket": echo.Map{
				"url":    "/generate-ticket",
				"method": http.MethodPost,
				"body": echo.Map{
					"ticketNumber": "string",
					"items":        []echo.Map{{"name": "string", "quantity": "number", "price": "number"}},
					"date":         "string (optional)",
					"time":         "string (optional)",
				},
			},
			"ticket": echo.Map{
				"url":    "/ticket/:id",
				"method": http.MethodGet,
				"params": echo.Map{"id": "string"},
			},
			"generateQR": echo.Map{
				"url":    "/generate-qr",
				"method": http.MethodPost,
				"body":   echo.Map{"text": "string"},
			},
		},
	})
}
