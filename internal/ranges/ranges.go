// Package ranges holds ordered code-point range tables that map a rune to
// a compact slot index.
package ranges

import "fmt"

// Range covers the code points Lo through Hi inclusive. A code point c in
// the range maps to Base + (c-Lo)/Stride.
//
// A Range with a non-nil Sub is a parent block: once the parent matches,
// only its children are consulted and Base and Stride are unused. A parent
// match without a child match is final.
type Range struct {
	Lo, Hi rune
	Base   int
	Stride int
	Sub    Table
}

// Single returns a one-code-point range assigned to slot base.
func Single(r rune, base int) Range {
	return Range{Lo: r, Hi: r, Base: base, Stride: 1}
}

// Block returns a parent range over lo..hi that defers to sub.
func Block(lo, hi rune, sub ...Range) Range {
	return Range{Lo: lo, Hi: hi, Sub: sub}
}

// Contains reports whether r lies within the range bounds.
func (rg Range) Contains(r rune) bool {
	return r >= rg.Lo && r <= rg.Hi
}

func (rg Range) index(r rune) int {
	stride := rg.Stride
	if stride <= 1 {
		return rg.Base + int(r-rg.Lo)
	}
	return rg.Base + int(r-rg.Lo)/stride
}

// Last returns the largest slot the range can produce.
func (rg Range) Last() int {
	if rg.Sub != nil {
		return rg.Sub.Max()
	}
	return rg.index(rg.Hi)
}

// Table is an ordered list of ranges. Earlier entries take priority.
type Table []Range

// Lookup returns the slot of r under the first matching range.
func (t Table) Lookup(r rune) (int, bool) {
	for i := range t {
		rg := &t[i]
		if r < rg.Lo || r > rg.Hi {
			continue
		}
		if rg.Sub != nil {
			return rg.Sub.Lookup(r)
		}
		return rg.index(r), true
	}
	return 0, false
}

// Max returns the largest slot any range of t can produce, or -1 for an
// empty table.
func (t Table) Max() int {
	hi := -1
	for _, rg := range t {
		if last := rg.Last(); last > hi {
			hi = last
		}
	}
	return hi
}

// Validate checks the structural invariants of t: bounds are ordered,
// strides are 1 or 2, bases are non-negative and children stay inside
// their parent.
func (t Table) Validate() error {
	for i, rg := range t {
		if rg.Lo > rg.Hi {
			return fmt.Errorf("range %d: %U > %U", i, rg.Lo, rg.Hi)
		}
		if rg.Lo < 0 {
			return fmt.Errorf("range %d: negative code point %d", i, rg.Lo)
		}
		if rg.Sub == nil {
			if rg.Stride != 1 && rg.Stride != 2 {
				return fmt.Errorf("range %d (%U..%U): stride %d", i, rg.Lo, rg.Hi, rg.Stride)
			}
			if rg.Base < 0 {
				return fmt.Errorf("range %d (%U..%U): negative base %d", i, rg.Lo, rg.Hi, rg.Base)
			}
			continue
		}
		for j, sub := range rg.Sub {
			if sub.Lo < rg.Lo || sub.Hi > rg.Hi {
				return fmt.Errorf("range %d (%U..%U): child %d (%U..%U) outside parent", i, rg.Lo, rg.Hi, j, sub.Lo, sub.Hi)
			}
		}
		if err := rg.Sub.Validate(); err != nil {
			return fmt.Errorf("range %d (%U..%U): %w", i, rg.Lo, rg.Hi, err)
		}
	}
	return nil
}

// Shadowed returns the positions of entries that can never match because
// earlier entries of the same table cover all of their code points.
func (t Table) Shadowed() []int {
	var out []int
	for i := 1; i < len(t); i++ {
		if covered(t[:i], t[i].Lo, t[i].Hi) {
			out = append(out, i)
		}
	}
	return out
}

func covered(prior Table, lo, hi rune) bool {
	for lo <= hi {
		advanced := false
		for _, rg := range prior {
			if rg.Contains(lo) {
				if rg.Hi >= hi {
					return true
				}
				lo = rg.Hi + 1
				advanced = true
				break
			}
		}
		if !advanced {
			return false
		}
	}
	return true
}
