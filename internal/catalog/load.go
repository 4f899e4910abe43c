package catalog

import (
	"context"
	"fmt"

	"github.com/iliyamo/catalog-ticket-service/internal/model"
)

// Source supplies the initial product list.
type Source interface {
	ListAll(ctx context.Context) ([]model.Product, error)
}

// Load reads src once and freezes the result into a Catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	products, err := src.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(products), nil
}
