// Package classify maps a lowercase character to a small non-negative
// integer usable as a dense array index, for example to address the child
// slots of a trie node.
//
// The mapping is chosen for compactness, not collation order. Slots are
// unique within one natural-language alphabet only: Latin, Greek, Cyrillic
// and Hebrew each start their own numbering, so 'a' and 'α' both map to 0.
//
// # Encoding profiles
//
// A Classifier is bound to exactly one profile.Profile:
//
//   - profile.Unspecified recognizes nothing.
//   - profile.AsciiOnly recognizes 'a' through 'z' as slots 0-25.
//   - profile.Iso8859 adds the code points 0xA1-0xFF as slots 26-120,
//     whatever the ISO-8859 variant of the surrounding text.
//   - profile.Utf8 adds the lowercase blocks of Latin-1 Supplement, Latin
//     Extended-A/B, Greek, Greek Extended, Cyrillic (including its
//     Supplement and Extended-A/B/C blocks) and Hebrew.
//
// Default() uses the profile compiled in through build tags; New accepts
// any profile at run time.
//
// # No normalization
//
// No Unicode normalization (UAX #15), case folding or decomposition is
// performed. Canonically equivalent spellings are not unified: the
// precomposed 'é' (U+00E9) has its own slot, while its decomposed form
// 'e' followed by U+0301 yields the slot of 'e' and an unrecognized
// combining mark. Callers that need equivalence must normalize first.
// Uppercase and titlecase letters are not folded either.
package classify
