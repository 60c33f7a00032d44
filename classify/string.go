package classify

import (
	"unicode/utf8"

	"github.com/mhr3/runeslot/internal/bytealg"
	"github.com/mhr3/runeslot/profile"
	"github.com/segmentio/asm/ascii"
)

// next decodes the first unit of s, which must not be empty. Only the
// UTF-8 profile reads multi-byte sequences; the others read one byte per
// character. Invalid UTF-8 decodes as utf8.RuneError with size 1.
func (c Classifier) next(s string) (rune, int) {
	if b := s[0]; b < utf8.RuneSelf || c.profile != profile.Utf8 {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(s)
}

// AppendIndices appends the slot of every recognized character of s to
// dst and returns the extended slice. Unrecognized characters and invalid
// UTF-8 are skipped.
func (c Classifier) AppendIndices(dst []int, s string) []int {
	if c.size == 0 {
		return dst
	}
	if ascii.ValidString(s) {
		return appendLowerRuns(dst, s)
	}
	for len(s) > 0 {
		r, n := c.next(s)
		if idx, ok := c.table.Lookup(r); ok {
			dst = append(dst, idx)
		}
		s = s[n:]
	}
	return dst
}

// appendLowerRuns handles pure ASCII input, where only 'a'-'z' can be
// recognized under any profile.
func appendLowerRuns(dst []int, s string) []int {
	for len(s) > 0 {
		end := bytealg.IndexNotLower(s)
		if end < 0 {
			end = len(s)
		}
		for i := 0; i < end; i++ {
			dst = append(dst, int(s[i]-'a'))
		}
		if end == len(s) {
			break
		}
		s = s[end+1:]
	}
	return dst
}

// IndexUnrecognized returns the byte offset of the first character of s
// that c does not recognize, or -1 if every character is recognized.
// Invalid UTF-8 counts as unrecognized.
func (c Classifier) IndexUnrecognized(s string) int {
	if len(s) == 0 {
		return -1
	}
	if c.size == 0 {
		return 0
	}
	if ascii.ValidString(s) {
		return bytealg.IndexNotLower(s)
	}
	for pos := 0; pos < len(s); {
		r, n := c.next(s[pos:])
		if _, ok := c.table.Lookup(r); !ok {
			return pos
		}
		pos += n
	}
	return -1
}

// ValidString reports whether every character of s is recognized by c.
func (c Classifier) ValidString(s string) bool {
	return c.IndexUnrecognized(s) == -1
}
