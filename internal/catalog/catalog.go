// Package catalog holds the product list and the read-only queries
// served over it.  A Catalog is built once and never mutated, so it is
// safe for concurrent use without locking.
package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/catalog-ticket-service/internal/model"
)

// ErrProductNotFound is returned by Get when no product has the given id.
var ErrProductNotFound = errors.New("product not found")

// Filter narrows List.  Zero-valued fields impose no constraint.
type Filter struct {
	Category string              // case-insensitive exact match
	MinPrice decimal.NullDecimal // inclusive lower bound
	MaxPrice decimal.NullDecimal // inclusive upper bound
}

func (f Filter) match(p model.Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinPrice.Valid && p.Price.LessThan(f.MinPrice.Decimal) {
		return false
	}
	if f.MaxPrice.Valid && p.Price.GreaterThan(f.MaxPrice.Decimal) {
		return false
	}
	return true
}

// Catalog is an immutable ordered product list.
type Catalog struct {
	products []model.Product
	byID     map[uint64]int
}

// New copies products into a Catalog.  Source order is kept; when ids
// repeat, Get resolves to the first occurrence.
func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[uint64]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		if _, dup := c.byID[p.ID]; !dup {
			c.byID[p.ID] = i
		}
	}
	return c
}

// Len reports how many products the catalog holds.
func (c *Catalog) Len() int { return len(c.products) }

// List returns every product matching all predicates in f, in source
// order.  It never returns nil.
func (c *Catalog) List(f Filter) []model.Product {
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Get looks a product up by id.
func (c *Catalog) Get(id uint64) (model.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

// ListByCategory is List with only a category predicate.  An empty
// result is not an error.
func (c *Catalog) ListByCategory(category string) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category labels as stored, in order of
// first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
