package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local writes documents as files inside root.
type Local struct {
	root   string
	prefix string // URL path the root directory is served under
}

// NewLocal creates root if needed.  prefix is the path the HTTP server
// serves root under, e.g. "tickets".
func NewLocal(root, prefix string) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("storage/local: empty root")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage/local: mkdir %s: %w", root, err)
	}
	return &Local{root: root, prefix: strings.Trim(prefix, "/")}, nil
}

// Root is the directory documents are written to.
func (d *Local) Root() string { return d.root }

// Prefix is the URL path documents are served under.
func (d *Local) Prefix() string { return d.prefix }

func (d *Local) abs(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("storage/local: invalid name %q", name)
	}
	return filepath.Join(d.root, name), nil
}

// Put writes through a temporary file and renames it into place, so a
// concurrent reader never observes a half-written document.
func (d *Local) Put(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full, err := d.abs(name)
	if err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(d.root, ".tmp-"+name+"-*")
	if err != nil {
		return "", fmt.Errorf("storage/local: create %s: %w", name, err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("storage/local: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("storage/local: close %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("storage/local: chmod %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("storage/local: rename %s: %w", name, err)
	}
	return path.Join(d.prefix, name), nil
}

// Get reads a document from disk.
func (d *Local) Get(_ context.Context, name string) ([]byte, error) {
	full, err := d.abs(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", name, err)
	}
	return data, nil
}
