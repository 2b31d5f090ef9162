// Package storage writes the generated cue sheet to its destination.
package storage

import (
	"context"
	"fmt"

	"github.com/jaki95/discogs-cue/config"
)

// Storage defines the interface for persisting a generated artifact.
type Storage interface {
	// Write stores data at the given path. For remote backends the path's
	// base name becomes the object name.
	Write(ctx context.Context, path string, data []byte) error

	// Description returns a human-readable destination for logging.
	Description() string
}

// New creates the storage backend selected by the configuration.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Type {
	case "", "local":
		return NewLocalFileStorage(), nil
	case "gcs":
		return NewGCSStorage(ctx, cfg.Storage.GCS)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}
