package discogs

import (
	"strconv"
	"strings"

	"github.com/jaki95/discogs-cue/internal/domain"
)

// MapAlbum converts a release document into the normalized album model.
// Missing fields stay at their zero values; the genre is taken from the
// first style because styles map to genre better than the genre field
// does, in general.
func MapAlbum(release *Release) *domain.Album {
	album := &domain.Album{
		Title:  release.Title,
		Artist: JoinArtists(release.Artists),
	}
	if release.Year != 0 {
		album.Year = strconv.Itoa(release.Year)
	}
	if len(release.Styles) > 0 {
		album.Genre = release.Styles[0]
	}

	// The tracklist is walked with a disc cursor and a per-disc track
	// counter. Disc boundaries are inferred from position strings like
	// "2-1" or "2.1": a numeric prefix greater than the current cursor
	// starts a new disc. The first disc is a placeholder that collects
	// tracks seen before any boundary; it is dropped afterwards if real
	// disc boundaries were found.
	discs := []*domain.Disc{{}}
	disc := 0
	trackNum := 1

	for _, entry := range release.Tracklist {
		// Rows without a position are headings, not tracks.
		if entry.Position == "" {
			continue
		}

		if sep := strings.IndexAny(entry.Position, ".-"); sep != -1 {
			if n, err := strconv.Atoi(entry.Position[:sep]); err == nil && n > disc {
				disc++
				discs = append(discs, &domain.Disc{})
				trackNum = 1
			}
		}

		track := &domain.Track{
			Position: trackNum,
			Title:    entry.Title,
			Length:   parseDuration(entry.Duration),
		}
		trackNum++

		if len(entry.Artists) > 0 {
			track.Artist = JoinArtists(entry.Artists)
		} else {
			track.Artist = album.Artist
		}

		discs[disc].Tracks = append(discs[disc].Tracks, track)
	}

	if len(discs) > 1 {
		discs = discs[1:]
	}
	album.Discs = discs

	return album
}

// JoinArtists builds a single credit line from a multi-artist credit.
// Each entry contributes its printed name (ANV when present) with the
// disambiguation suffix stripped, followed by its join token. A comma
// token attaches directly to the name; any other token is separated by a
// space.
func JoinArtists(credits []ArtistCredit) string {
	if len(credits) == 0 {
		return ""
	}

	var b strings.Builder
	for _, credit := range credits {
		name := credit.Name
		if credit.ANV != "" {
			name = credit.ANV
		}
		b.WriteString(StripDisambiguation(name))

		if credit.Join != "" {
			if credit.Join != "," {
				b.WriteByte(' ')
			}
			b.WriteString(credit.Join)
		}
		b.WriteByte(' ')
	}

	// There is always exactly one trailing space; the final credit never
	// needs a following separator.
	joined := b.String()
	return joined[:len(joined)-1]
}

// parseDuration parses free-form "minutes:seconds" text. Anything that
// does not split into exactly two parts yields a zero duration, and an
// unparseable component degrades to zero on its own. Release durations
// are unreliable enough that failing the whole run over one of them
// would be wrong.
func parseDuration(text string) domain.Duration {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return domain.Duration{}
	}

	return domain.Duration{
		Minutes: atoiOrZero(strings.TrimSpace(parts[0])),
		Seconds: atoiOrZero(strings.TrimSpace(parts[1])),
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
