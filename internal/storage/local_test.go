package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/discogs-cue/config"
)

func TestLocalFileStorageWrite(t *testing.T) {
	tempDir := t.TempDir()
	store := NewLocalFileStorage()

	path := filepath.Join(tempDir, "album.cue")
	err := store.Write(context.Background(), path, []byte("TITLE \"x\"\n"))

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "TITLE \"x\"\n", string(data))
}

func TestLocalFileStorageCreatesParentDirs(t *testing.T) {
	tempDir := t.TempDir()
	store := NewLocalFileStorage()

	path := filepath.Join(tempDir, "nested", "dir", "album.cue")
	err := store.Write(context.Background(), path, []byte("x"))

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestNewSelectsLocalByDefault(t *testing.T) {
	store, err := New(context.Background(), config.Default())

	require.NoError(t, err)
	assert.Equal(t, "local filesystem", store.Description())
}

func TestNewRejectsUnknownType(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Type = "ftp"

	store, err := New(context.Background(), cfg)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewGCSRequiresBucket(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Type = "gcs"

	store, err := New(context.Background(), cfg)

	assert.Error(t, err)
	assert.Nil(t, store)
}
