package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/andreamorim18/helpdesk/internal/config"
)

// Driver abstracts where avatar objects live. Paths are relative object
// keys ("avatars/<name>.webp"); PublicURL turns one into what the API
// hands back to clients.
type Driver interface {
	Save(ctx context.Context, path string, r io.Reader) error
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
}

func NewDriver(cfg *config.Config) (Driver, error) {
	switch cfg.StorageDriver {
	case "local", "":
		return NewLocalStorage(cfg.UploadsPath), nil
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
