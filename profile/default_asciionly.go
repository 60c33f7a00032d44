//go:build runeslot_asciionly && !runeslot_utf8 && !runeslot_iso8859

package profile

// Default is the profile compiled into this build.
const Default = AsciiOnly
