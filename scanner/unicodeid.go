package scanner

import (
	"sync"
	"unicode"
)

// otherIDStart and otherIDContinue are the Other_ID_Start/Other_ID_Continue
// code points named explicitly in spec.md §4.1. They fall outside every
// general category table and so cannot be expressed as a unicode.RangeTable
// lookup; they are carried as an explicit list the way the spec's source
// of truth (PropList.txt) carries them.
var otherIDStart = []rune{0x1885, 0x1886, 0x2118, 0x212E, 0x309B, 0x309C}

var otherIDContinue = []rune{0x00B7, 0x0387, 0x1369, 0x136A, 0x136B, 0x136C, 0x136D, 0x136E, 0x136F, 0x1370, 0x1371, 0x19DA}

var (
	unicodeIDInit       sync.Once
	identifierStartSet  map[rune]bool
	identifierStartCats []*unicode.RangeTable
	continueExtraCats   []*unicode.RangeTable
)

// initUnicodeIdentifierTables performs the one-time, idempotent
// initialization spec.md §5 requires for the lazily-populated Unicode
// identifier table: readers never observe a partially-initialized table
// because sync.Once guarantees the closure runs exactly once and happens-
// before every later Do call returns.
func initUnicodeIdentifierTables() {
	unicodeIDInit.Do(func() {
		identifierStartCats = []*unicode.RangeTable{
			unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lo, unicode.Lm, unicode.Nl,
		}
		continueExtraCats = []*unicode.RangeTable{
			unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
		}
		identifierStartSet = make(map[rune]bool, len(otherIDStart))
		for _, r := range otherIDStart {
			identifierStartSet[r] = true
		}
	})
}

// unicodeIdentifierStart implements the non-ASCII half of isIdentifierStart
// (spec.md §4.1): categories Lu, Ll, Lt, Lo, Lm, Nl, plus the explicit
// Other_ID_Start code points.
func unicodeIdentifierStart(r rune) bool {
	initUnicodeIdentifierTables()
	if identifierStartSet[r] {
		return true
	}
	return unicode.In(r, identifierStartCats...)
}

// unicodeIdentifierContinue implements the non-ASCII half of
// isIdentifierContinue: start ∪ Mn, Mc, Nd, Pc ∪ Other_ID_Continue.
func unicodeIdentifierContinue(r rune) bool {
	initUnicodeIdentifierTables()
	if unicodeIdentifierStart(r) {
		return true
	}
	for _, c := range otherIDContinue {
		if r == c {
			return true
		}
	}
	return unicode.In(r, continueExtraCats...)
}
