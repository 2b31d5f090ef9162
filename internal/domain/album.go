package domain

// Album is the normalized form of a Discogs release, ready for cue sheet
// rendering. All fields may be empty except Discs, which always holds at
// least one disc after mapping.
type Album struct {
	Title  string
	Year   string
	Genre  string
	Artist string
	Discs  []*Disc
}

// Disc holds the tracks of one physical disc. Its position in Album.Discs
// is its 1-based disc number.
type Disc struct {
	Tracks []*Track
}

// Track represents an individual track on a disc. Position is assigned
// during mapping rather than taken from the release, because Discogs
// position strings are free-form.
type Track struct {
	Position int
	Title    string
	Artist   string
	Length   Duration
}

// Duration is a track length in whole minutes and seconds. The zero value
// means the release carried no usable duration.
type Duration struct {
	Minutes int
	Seconds int
}

// TrackCount returns the total number of tracks across all discs.
func (a *Album) TrackCount() int {
	count := 0
	for _, disc := range a.Discs {
		count += len(disc.Tracks)
	}
	return count
}
