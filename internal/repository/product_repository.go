// Package repository contains data access logic separated from HTTP handlers.
// This file reads the product catalog from MySQL.  The service only ever
// reads the table once, at startup, to build the in-memory catalog.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/catalog-ticket-service/internal/model"
)

// ProductRepo loads products from the `products` table.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo constructs a ProductRepo with the provided DB handle.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// ListAll returns every product ordered by id, or ErrEmptyCatalog when
// the table is empty.  Price is stored as
// DECIMAL(10,2) and scanned straight into decimal.Decimal.
func (r *ProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	const q = `SELECT id, name, description, price, stock, category
		FROM products
		ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	out := make([]model.Product, 0, 16)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}
