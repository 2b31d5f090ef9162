package cue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/discogs-cue/internal/domain"
)

func singleDiscAlbum() *domain.Album {
	return &domain.Album{
		Title:  "Some Album",
		Year:   "1997",
		Genre:  "Techno",
		Artist: "Some Artist",
		Discs: []*domain.Disc{
			{
				Tracks: []*domain.Track{
					{Position: 1, Title: "First", Artist: "Some Artist", Length: domain.Duration{Minutes: 3, Seconds: 45}},
					{Position: 2, Title: "Second", Artist: "Guest", Length: domain.Duration{Minutes: 12, Seconds: 7}},
				},
			},
		},
	}
}

func TestRenderSingleDisc(t *testing.T) {
	sheet := &Sheet{
		Album:    singleDiscAlbum(),
		Filename: "Some Album.flac",
		Comment:  "discogs-cue",
	}

	text, err := sheet.Render()

	require.NoError(t, err)
	expected := strings.Join([]string{
		`REM GENRE "Techno"`,
		`REM DATE 1997`,
		`REM COMMENT "discogs-cue"`,
		`PERFORMER "Some Artist"`,
		`TITLE "Some Album"`,
		`FILE "Some Album.flac" FLAC`,
		`  TRACK 01 AUDIO`,
		`    PERFORMER "Some Artist"`,
		`    TITLE "First"`,
		`    INDEX 01 03:45:00`,
		`  TRACK 02 AUDIO`,
		`    PERFORMER "Guest"`,
		`    TITLE "Second"`,
		`    INDEX 01 12:07:00`,
		``,
	}, "\n")
	assert.Equal(t, expected, text)
}

func TestRenderMultiDiscSubstitutesPlaceholder(t *testing.T) {
	album := &domain.Album{
		Title: "Box Set",
		Discs: []*domain.Disc{
			{Tracks: []*domain.Track{{Position: 1, Title: "A"}}},
			{Tracks: []*domain.Track{{Position: 1, Title: "B"}}},
		},
	}
	sheet := &Sheet{Album: album, Filename: "Album-Disc?.flac", Comment: "c"}

	text, err := sheet.Render()

	require.NoError(t, err)
	assert.Contains(t, text, `FILE "Album-Disc1.flac" FLAC`)
	assert.Contains(t, text, `FILE "Album-Disc2.flac" FLAC`)
	assert.NotContains(t, text, "?")
}

func TestRenderSingleDiscRemovesPlaceholder(t *testing.T) {
	album := &domain.Album{
		Discs: []*domain.Disc{
			{Tracks: []*domain.Track{{Position: 1}}},
		},
	}
	sheet := &Sheet{Album: album, Filename: "Album-Disc?.flac", Comment: "c"}

	text, err := sheet.Render()

	require.NoError(t, err)
	assert.Contains(t, text, `FILE "Album-Disc.flac" FLAC`)
}

func TestRenderStripsPathFromFileReference(t *testing.T) {
	album := &domain.Album{
		Discs: []*domain.Disc{
			{Tracks: []*domain.Track{{Position: 1}}},
		},
	}
	sheet := &Sheet{Album: album, Filename: "/music/rips/album.wav", Comment: "c"}

	text, err := sheet.Render()

	require.NoError(t, err)
	assert.Contains(t, text, `FILE "album.wav" WAVE`)
}

func TestRenderOmitsEmptyHeaderFields(t *testing.T) {
	album := &domain.Album{
		Title: "Untitled",
		Discs: []*domain.Disc{
			{Tracks: []*domain.Track{{Position: 1}}},
		},
	}
	sheet := &Sheet{Album: album, Filename: "a.mp3", Comment: "c"}

	text, err := sheet.Render()

	require.NoError(t, err)
	assert.NotContains(t, text, "REM GENRE")
	assert.NotContains(t, text, "REM DATE")
	// No album-level PERFORMER line; track-level ones are indented
	assert.NotContains(t, text, "\nPERFORMER")
	assert.True(t, strings.HasPrefix(text, `REM COMMENT "c"`))
}

func TestRenderNoDiscs(t *testing.T) {
	sheet := &Sheet{Album: &domain.Album{}, Filename: "a.flac", Comment: "c"}

	text, err := sheet.Render()

	assert.ErrorIs(t, err, ErrNoTrackData)
	assert.Empty(t, text)
}

func TestRenderNoTracks(t *testing.T) {
	album := &domain.Album{Discs: []*domain.Disc{{}}}
	sheet := &Sheet{Album: album, Filename: "a.flac", Comment: "c"}

	_, err := sheet.Render()

	assert.ErrorIs(t, err, ErrNoTrackData)
}

func TestRenderReplacesEmbeddedQuotes(t *testing.T) {
	album := &domain.Album{
		Title: `The "Best" Of`,
		Discs: []*domain.Disc{
			{Tracks: []*domain.Track{{Position: 1, Title: `Say "Hi"`}}},
		},
	}
	sheet := &Sheet{Album: album, Filename: "a.flac", Comment: "c"}

	text, err := sheet.Render()

	require.NoError(t, err)
	assert.Contains(t, text, `TITLE "The 'Best' Of"`)
	assert.Contains(t, text, `    TITLE "Say 'Hi'"`)
}

func TestFileType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"a.flac", "FLAC"},
		{"a.FLAC", "FLAC"},
		{"a.mp3", "MP3"},
		{"a.aiff", "AIFF"},
		{"a.aif", "AIFF"},
		{"a.wav", "WAVE"},
		{"a.ogg", "WAVE"},
		{"a", "WAVE"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, fileType(tt.filename), tt.filename)
	}
}
