package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/jaki95/discogs-cue/config"
)

// GCSStorage implements the Storage interface for Google Cloud Storage.
type GCSStorage struct {
	client       *storage.Client
	bucket       string
	objectPrefix string
}

// NewGCSStorage creates a new GCSStorage instance. When no credentials
// file is configured, application default credentials are used.
func NewGCSStorage(ctx context.Context, cfg config.GCSConfig) (*GCSStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs storage requires a bucket name")
	}

	var client *storage.Client
	var err error

	if cfg.CredentialsFile != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client:       client,
		bucket:       cfg.Bucket,
		objectPrefix: cfg.ObjectPrefix,
	}, nil
}

// Write uploads the artifact, naming the object after the path's base
// name under the configured prefix.
func (s *GCSStorage) Write(ctx context.Context, path string, data []byte) error {
	objectName := s.objectPrefix + filepath.Base(path)

	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = "text/plain"

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object %s: %w", objectName, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", objectName, err)
	}

	return nil
}

func (s *GCSStorage) Description() string {
	return fmt.Sprintf("gs://%s/%s", s.bucket, s.objectPrefix)
}
