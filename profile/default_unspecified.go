//go:build !(runeslot_utf8 && !runeslot_iso8859 && !runeslot_asciionly) && !(runeslot_iso8859 && !runeslot_utf8 && !runeslot_asciionly) && !(runeslot_asciionly && !runeslot_utf8 && !runeslot_iso8859)

package profile

// Default is the profile compiled into this build. No tag, or conflicting
// tags, leave it Unspecified.
const Default = Unspecified
