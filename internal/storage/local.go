package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalFileStorage implements the Storage interface for the local
// filesystem. This is the default backend: the cue sheet lands next to
// the audio file it describes.
type LocalFileStorage struct{}

// NewLocalFileStorage creates a new local file storage instance.
func NewLocalFileStorage() *LocalFileStorage {
	return &LocalFileStorage{}
}

// Write stores the artifact at path, creating parent directories as
// needed.
func (s *LocalFileStorage) Write(_ context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (s *LocalFileStorage) Description() string {
	return "local filesystem"
}
