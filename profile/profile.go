// Package profile selects the character-encoding universe a classifier
// recognizes. Exactly one profile is active per classifier; the build-time
// default is chosen with the runeslot_utf8, runeslot_iso8859 or
// runeslot_asciionly build tags.
package profile

import "strings"

// Profile is one of the supported encoding universes.
type Profile uint8

const (
	// Unspecified recognizes nothing.
	Unspecified Profile = iota
	// AsciiOnly recognizes a-z.
	AsciiOnly
	// Iso8859 recognizes a-z and the high half (0xA1-0xFF) of any ISO-8859-n variant.
	Iso8859
	// Utf8 recognizes a-z plus the lowercase blocks of Latin, Greek, Cyrillic and Hebrew.
	Utf8
)

var names = [...]string{
	Unspecified: "Unspecified",
	AsciiOnly:   "ASCII-ONLY",
	Iso8859:     "ISO-8859",
	Utf8:        "UTF-8",
}

func (p Profile) String() string {
	if !p.Valid() {
		return "Unspecified"
	}
	return names[p]
}

// Valid reports whether p is one of the four declared profiles.
func (p Profile) Valid() bool {
	return p <= Utf8
}

// Parse maps a configuration name (UTF-8, ISO-8859, ASCII-ONLY) to its
// profile. Matching ignores case, surrounding space and the '-' or '_'
// separators, so "utf8" and "ascii_only" are accepted too. Unknown names
// resolve to Unspecified.
func Parse(name string) Profile {
	name = strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(name))
	switch {
	case strings.EqualFold(name, "UTF8"):
		return Utf8
	case strings.EqualFold(name, "ISO8859"):
		return Iso8859
	case strings.EqualFold(name, "ASCIIONLY"):
		return AsciiOnly
	}
	return Unspecified
}

// Select resolves a set of enabled configuration flags to a profile.
// Exactly one recognized flag selects its profile; none, or more than one
// distinct profile, yields Unspecified.
func Select(flags ...string) Profile {
	selected := Unspecified
	for _, f := range flags {
		p := Parse(f)
		if p == Unspecified {
			continue
		}
		if selected != Unspecified && selected != p {
			return Unspecified
		}
		selected = p
	}
	return selected
}
