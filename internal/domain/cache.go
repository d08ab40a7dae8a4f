package domain

import (
	"context"
	"fmt"
	"log/slog"

	"zipup.dev/pkg/zipup/internal/adapter"
	m "zipup.dev/pkg/zipup/internal/model"
)

const bytesPerMB = 1024 * 1024

// CacheMaintainer implements the cache subcommands over the bundler's cache
// directory.
type CacheMaintainer interface {
	// Clean removes the cache directory. A missing directory is not an error.
	Clean(ctx context.Context) error
	// Dir returns the cache directory path.
	Dir() m.Path
	// Size returns the recursive size formatted as "<n.nn>MB".
	Size(ctx context.Context) (string, error)
}

type cacheMaintainer struct {
	fsAdapter adapter.FSAdapter
	dir       m.Path
}

// NewCacheMaintainer constructs a CacheMaintainer for dir.
func NewCacheMaintainer(fsAdapter adapter.FSAdapter, dir m.Path) CacheMaintainer {
	return &cacheMaintainer{fsAdapter: fsAdapter, dir: dir}
}

func (c *cacheMaintainer) Clean(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.fsAdapter.RemoveAll(c.dir); err != nil {
		slog.Error("Failed to clean cache", "dir", c.dir, "error", err)
		return fmt.Errorf("clean cache %s: %w", c.dir, err)
	}

	slog.Info("Cache cleaned", "dir", c.dir)

	return nil
}

func (c *cacheMaintainer) Dir() m.Path {
	return c.dir
}

func (c *cacheMaintainer) Size(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	size, err := c.fsAdapter.DirSize(c.dir)
	if err != nil {
		return "", fmt.Errorf("size of cache %s: %w", c.dir, err)
	}

	return FormatMB(size), nil
}

// FormatMB renders a byte count in megabytes with two decimals.
func FormatMB(size int64) string {
	return fmt.Sprintf("%.2fMB", float64(size)/bytesPerMB)
}
