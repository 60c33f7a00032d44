package classify

import (
	"github.com/mhr3/runeslot/internal/ranges"
	"github.com/mhr3/runeslot/profile"
)

// ASCII lowercase: a=U+0061, z=U+007A.
var asciiLower = ranges.Range{Lo: 0x0061, Hi: 0x007A, Base: 0, Stride: 1}

var asciiTable = ranges.Table{asciiLower}

// The high half is shared by every ISO-8859-n variant; NBSP (0xA0) is left
// out. Not the most compact layout for ISO-8859-1 but it keeps ISO-8859-5
// Cyrillic intact.
var iso8859Table = ranges.Table{
	asciiLower,
	{Lo: 0x00A1, Hi: 0x00FF, Base: 26, Stride: 1},
}

// Slot bases inside the Cyrillic family. Historic and Extended blocks
// alternate upper/lower, so only half of their code points get a slot.
const (
	cyrBasic      = 31
	cyrExtensions = 15
	cyrHistoric   = 17
	cyrExtended   = 82
	cyrExtendedC  = 9

	cyrExtBOld       = 23
	cyrExtBCombining = 44
	cyrExtBAbkhasian = 23

	greekBasic  = 0x03C9 - 0x03B1
	hebrewBasic = 34
)

// utf8Table lists the blocks in priority order. Bases restart per script:
// slots are unique within one alphabet only.
var utf8Table = ranges.Table{
	asciiLower,

	// Latin-1 Supplement, lowercase tail.
	{Lo: 0x00DF, Hi: 0x00FF, Base: 26, Stride: 1},
	// Latin Extended-A.
	{Lo: 0x0100, Hi: 0x017F, Base: 26, Stride: 2},
	// Latin Extended-B: 97 of 106 letters are lowercase, close enough to halve.
	{Lo: 0x0180, Hi: 0x024F, Base: 26, Stride: 2},

	// Greek and Coptic.
	{Lo: 0x03B1, Hi: 0x03C9, Base: 0, Stride: 1},
	// Greek Extended.
	{Lo: 0x1F00, Hi: 0x1FF7, Base: greekBasic, Stride: 1},

	// Cyrillic and Cyrillic Supplement.
	ranges.Block(0x0430, 0x052D,
		ranges.Range{Lo: 0x0430, Hi: 0x044F, Base: 0, Stride: 1},
		ranges.Range{Lo: 0x0450, Hi: 0x045F, Base: cyrBasic, Stride: 1},
		ranges.Range{Lo: 0x0460, Hi: 0x0481, Base: cyrBasic + cyrExtensions, Stride: 2},
		ranges.Range{Lo: 0x048A, Hi: 0x052D, Base: cyrBasic + cyrExtensions + cyrHistoric, Stride: 2},
	),
	// Cyrillic Extended-C plus the two Cyrillic letters of Phonetic Extensions.
	ranges.Block(0x1C80, 0x1D78,
		ranges.Range{Lo: 0x1C80, Hi: 0x1C88, Base: cyrBasic + cyrExtensions + cyrHistoric + cyrExtended, Stride: 1},
		ranges.Single(0x1D2B, cyrBasic+cyrExtensions+cyrHistoric+cyrExtended+cyrExtendedC),
		ranges.Single(0x1D78, cyrBasic+cyrExtensions+cyrHistoric+cyrExtended+cyrExtendedC+1),
	),
	// Cyrillic Extended-A: Old Church Slavonic combining letters.
	{Lo: 0x2DE0, Hi: 0x2DFF, Base: 0, Stride: 1},
	// Cyrillic Extended-B. The combining row runs to the end of the block,
	// so the Abkhasian row and the two trailing letters resolve through it.
	ranges.Block(0xA640, 0xA69F,
		ranges.Range{Lo: 0xA640, Hi: 0xA66D, Base: 0, Stride: 2},
		ranges.Range{Lo: 0xA674, Hi: 0xA69F, Base: cyrExtBOld, Stride: 1},
		ranges.Range{Lo: 0xA680, Hi: 0xA697, Base: cyrExtBOld + cyrExtBCombining, Stride: 1},
		ranges.Single(0xA699, cyrExtBOld+cyrExtBCombining+cyrExtBAbkhasian),
		ranges.Single(0xA69B, cyrExtBOld+cyrExtBCombining+cyrExtBAbkhasian+1),
	),

	// Hebrew, including the Yiddish ligatures.
	{Lo: 0x05D0, Hi: 0x05F2, Base: 0, Stride: 1},
	// Alphabetic Presentation Forms, Hebrew part.
	{Lo: 0xFB1D, Hi: 0xFB4F, Base: hebrewBasic, Stride: 1},
}

// tableFor returns the range table of p. Unspecified and undeclared
// profiles have no table.
func tableFor(p profile.Profile) ranges.Table {
	switch p {
	case profile.AsciiOnly:
		return asciiTable
	case profile.Iso8859:
		return iso8859Table
	case profile.Utf8:
		return utf8Table
	}
	return nil
}
