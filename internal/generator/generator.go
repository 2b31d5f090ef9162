// Package generator wires the pipeline together: fetch the release,
// map it into the album model, render the cue sheet and store it.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jaki95/discogs-cue/internal/cue"
	"github.com/jaki95/discogs-cue/internal/discogs"
	"github.com/jaki95/discogs-cue/internal/storage"
)

// Source provides release documents by ID. Implemented by discogs.Client.
type Source interface {
	Release(ctx context.Context, id string) (*discogs.Release, error)
	Master(ctx context.Context, id string) (*discogs.Release, error)
}

type Generator struct {
	source  Source
	storage storage.Storage
}

func New(source Source, store storage.Storage) *Generator {
	return &Generator{
		source:  source,
		storage: store,
	}
}

// Options describe one generation run.
type Options struct {
	// ID is the Discogs release or master release ID.
	ID string

	// Master selects the master-release endpoint instead of the release
	// endpoint.
	Master bool

	// AudioFile is the audio filename the sheet will reference, with an
	// optional path and an optional "?" disc number placeholder.
	AudioFile string

	// Comment is placed in the sheet header.
	Comment string
}

// Generate runs the pipeline for one identifier and returns the path of
// the written cue sheet. Errors are returned rather than acted on; exit
// policy belongs to the caller.
func (g *Generator) Generate(ctx context.Context, opts *Options) (string, error) {
	release, err := g.fetch(ctx, opts)
	if err != nil {
		return "", fmt.Errorf("failed to get release info: %w", err)
	}

	album := discogs.MapAlbum(release)
	slog.Debug("Mapped release", "title", album.Title, "discs", len(album.Discs), "tracks", album.TrackCount())

	sheet := &cue.Sheet{
		Album:    album,
		Filename: opts.AudioFile,
		Comment:  opts.Comment,
	}
	text, err := sheet.Render()
	if err != nil {
		return "", err
	}

	cuePath := CuePath(opts.AudioFile)
	if err := g.storage.Write(ctx, cuePath, []byte(text)); err != nil {
		return "", fmt.Errorf("failed to store cue sheet: %w", err)
	}

	slog.Info("Wrote cue sheet", "path", cuePath, "storage", g.storage.Description())
	return cuePath, nil
}

func (g *Generator) fetch(ctx context.Context, opts *Options) (*discogs.Release, error) {
	if opts.Master {
		return g.source.Master(ctx, opts.ID)
	}
	return g.source.Release(ctx, opts.ID)
}

// CuePath derives the cue sheet path from the audio filename: same base
// name with a .cue extension, alongside the audio file. The disc number
// placeholder has no meaning in the sheet's own name and is dropped.
func CuePath(audioFile string) string {
	base := strings.TrimSuffix(audioFile, filepath.Ext(audioFile))
	return strings.ReplaceAll(base, "?", "") + ".cue"
}
