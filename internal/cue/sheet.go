// Package cue renders a normalized album into cue sheet text. The format
// is line oriented with exact spacing and quoting, so the sheet is built
// by hand rather than through a template.
package cue

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jaki95/discogs-cue/internal/domain"
)

// ErrNoTrackData is returned when the album holds nothing to describe.
// Emitting an empty sheet would only confuse the players reading it.
var ErrNoTrackData = errors.New("no track data found in the release")

// fileTypes maps audio file extensions to cue FILE type tags.
var fileTypes = map[string]string{
	"flac": "FLAC",
	"mp3":  "MP3",
	"aiff": "AIFF",
	"aif":  "AIFF",
	"wav":  "WAVE",
}

// Sheet describes one cue sheet to be rendered: the album, the audio
// filename the sheet refers to, and a comment for the header. A "?" in
// the filename is the disc number placeholder.
type Sheet struct {
	Album    *domain.Album
	Filename string
	Comment  string
}

// Render produces the cue sheet text, one FILE section per disc in disc
// order. It fails with ErrNoTrackData when the album has no discs or no
// tracks at all.
func (s *Sheet) Render() (string, error) {
	if s.Album == nil || len(s.Album.Discs) == 0 || s.Album.TrackCount() == 0 {
		return "", ErrNoTrackData
	}

	var b strings.Builder

	if s.Album.Genre != "" {
		fmt.Fprintf(&b, "REM GENRE \"%s\"\n", quote(s.Album.Genre))
	}
	if s.Album.Year != "" {
		fmt.Fprintf(&b, "REM DATE %s\n", s.Album.Year)
	}
	fmt.Fprintf(&b, "REM COMMENT \"%s\"\n", quote(s.Comment))
	if s.Album.Artist != "" {
		fmt.Fprintf(&b, "PERFORMER \"%s\"\n", quote(s.Album.Artist))
	}
	fmt.Fprintf(&b, "TITLE \"%s\"\n", quote(s.Album.Title))

	multiDisc := len(s.Album.Discs) > 1
	for i, disc := range s.Album.Discs {
		name := discFilename(filepath.Base(s.Filename), i+1, multiDisc)
		fmt.Fprintf(&b, "FILE \"%s\" %s\n", quote(name), fileType(name))

		for _, track := range disc.Tracks {
			fmt.Fprintf(&b, "  TRACK %02d AUDIO\n", track.Position)
			fmt.Fprintf(&b, "    PERFORMER \"%s\"\n", quote(track.Artist))
			fmt.Fprintf(&b, "    TITLE \"%s\"\n", quote(track.Title))
			// Frames are always zero: the source has no sub-second data.
			fmt.Fprintf(&b, "    INDEX 01 %02d:%02d:00\n", track.Length.Minutes, track.Length.Seconds)
		}
	}

	return b.String(), nil
}

// discFilename resolves the "?" placeholder to the 1-based disc number.
// Single-disc albums have no number to substitute, so the placeholder is
// simply dropped.
func discFilename(name string, disc int, multiDisc bool) string {
	if multiDisc {
		return strings.ReplaceAll(name, "?", strconv.Itoa(disc))
	}
	return strings.ReplaceAll(name, "?", "")
}

// fileType picks the cue FILE type tag for a filename, falling back to
// WAVE for extensions the format has no tag for.
func fileType(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if tag, ok := fileTypes[ext]; ok {
		return tag
	}
	return "WAVE"
}

// quote makes a value safe to place between double quotes. The cue
// grammar has no escape sequence, so embedded quotes become apostrophes.
func quote(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
