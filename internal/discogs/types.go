package discogs

// Release is the subset of a Discogs release (or master release) document
// that cue sheet generation needs. Keys are frequently missing from real
// responses; absent keys simply decode to zero values, which is the
// defaulting behavior the mapper relies on.
type Release struct {
	Title     string         `json:"title"`
	Year      int            `json:"year"`
	Styles    []string       `json:"styles"`
	Artists   []ArtistCredit `json:"artists"`
	Tracklist []TrackEntry   `json:"tracklist"`
}

// ArtistCredit is one entry of a multi-artist credit line. ANV ("artist
// name variation") is the name as printed on the release and takes
// precedence over the canonical Name. Join is the token connecting this
// credit to the next one, e.g. "&", "feat." or ",".
type ArtistCredit struct {
	Name string `json:"name"`
	ANV  string `json:"anv"`
	Join string `json:"join"`
}

// TrackEntry is one row of a release tracklist. Rows with an empty
// Position are not tracks (Discogs uses them for headings and index
// entries). Duration is free-form "minutes:seconds" text.
type TrackEntry struct {
	Position string         `json:"position"`
	Title    string         `json:"title"`
	Duration string         `json:"duration"`
	Artists  []ArtistCredit `json:"artists"`
}
