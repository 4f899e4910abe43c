// Package repository defines error types that are reused across multiple
// repositories.
package repository

import "errors"

// ErrEmptyCatalog is returned when an external catalog source holds no
// products.  Starting the service with nothing to sell is treated as a
// configuration mistake.
var ErrEmptyCatalog = errors.New("catalog source returned no products")
