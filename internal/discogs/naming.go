package discogs

import "regexp"

// Discogs appends a parenthesized number to artist names to tell
// identically-named artists apart, e.g. "Dynamic Duo (2)". The suffix is
// catalog bookkeeping, not part of the name.
var disambiguationSuffix = regexp.MustCompile(` \(\d+\)$`)

// StripDisambiguation removes a trailing numeric disambiguation suffix
// from an artist name. Names without such a suffix are returned unchanged.
func StripDisambiguation(name string) string {
	return disambiguationSuffix.ReplaceAllString(name, "")
}
