// Package storage writes rendered ticket documents somewhere they can be
// fetched later without going through the service's memory.
//
// Two drivers exist:
//   - "local" — files under a directory that the HTTP server exposes statically
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2)
package storage

import (
	"context"
	"fmt"

	"github.com/iliyamo/catalog-ticket-service/internal/config"
)

// Disk stores named documents and reports where each one can be fetched.
type Disk interface {
	// Put writes content under name, replacing any previous object, and
	// returns its location: a service-relative path or an absolute URL.
	Put(ctx context.Context, name string, content []byte) (string, error)

	// Get reads a previously written document back.
	Get(ctx context.Context, name string) ([]byte, error)
}

// Open builds the disk selected by cfg.Driver.
func Open(ctx context.Context, cfg config.ArtifactConfig) (Disk, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocal(cfg.LocalDir, cfg.PublicPrefix)
	case "s3":
		return NewS3(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
