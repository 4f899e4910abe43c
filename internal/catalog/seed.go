package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/iliyamo/catalog-ticket-service/internal/model"
)

// Seed returns the built-in product list used when no external catalog
// source is configured.
func Seed() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Laptop Gaming Pro",
			Price:       decimal.RequireFromString("1299.99"),
			Description: "Laptop gaming de alta gama con RTX 4060",
			Stock:       10,
			Category:    "Computadoras",
		},
		{
			ID:          2,
			Name:        "Smartphone X15",
			Price:       decimal.RequireFromString("799.99"),
			Description: "Último modelo con cámara de 108MP",
			Stock:       15,
			Category:    "Móviles",
		},
		{
			ID:          3,
			Name:        "Auriculares Pro",
			Price:       decimal.RequireFromString("199.99"),
			Description: "Cancelación de ruido activa y sonido premium",
			Stock:       20,
			Category:    "Audio",
		},
		{
			ID:          4,
			Name:        "Monitor 4K",
			Price:       decimal.RequireFromString("499.99"),
			Description: "32 pulgadas, 144Hz, HDR",
			Stock:       8,
			Category:    "Monitores",
		},
		{
			ID:          5,
			Name:        "Teclado Mecánico RGB",
			Price:       decimal.RequireFromString("129.99"),
			Description: "Switches Cherry MX, retroiluminación personalizable",
			Stock:       25,
			Category:    "Periféricos",
		},
	}
}
