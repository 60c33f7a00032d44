package classify

import (
	"github.com/mhr3/runeslot/internal/ranges"
	"github.com/mhr3/runeslot/profile"
)

// Classifier maps characters to slot indices under a single profile.
// The zero value is an Unspecified classifier. A Classifier is immutable
// and safe for concurrent use.
type Classifier struct {
	profile profile.Profile
	table   ranges.Table
	size    int
}

// New returns a classifier bound to p. Undeclared profile values behave
// as profile.Unspecified.
func New(p profile.Profile) Classifier {
	if !p.Valid() {
		p = profile.Unspecified
	}
	t := tableFor(p)
	return Classifier{
		profile: p,
		table:   t,
		size:    t.Max() + 1,
	}
}

// Default returns a classifier bound to the build-time profile.Default.
func Default() Classifier {
	return New(profile.Default)
}

// Profile returns the profile c is bound to.
func (c Classifier) Profile() profile.Profile {
	return c.profile
}

// Size returns one more than the largest index c can produce, which is
// the length a dense array needs to hold every slot. It is 0 for
// profile.Unspecified.
func (c Classifier) Size() int {
	return c.size
}

// Index returns the slot of r. The boolean is false when r is outside
// every range known to the profile.
func (c Classifier) Index(r rune) (int, bool) {
	return c.table.Lookup(r)
}

// IndexByte returns the slot of a single-byte unit, interpreting b as the
// code point of the same value. This is how ISO-8859 and ASCII streams are
// read.
func (c Classifier) IndexByte(b byte) (int, bool) {
	return c.table.Lookup(rune(b))
}

// Index classifies r under the build-time default profile.
func Index(r rune) (int, bool) {
	return defaultClassifier.Index(r)
}

var defaultClassifier = Default()
