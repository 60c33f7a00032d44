//go:build runeslot_iso8859 && !runeslot_utf8 && !runeslot_asciionly

package profile

// Default is the profile compiled into this build.
const Default = Iso8859
