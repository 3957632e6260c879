package scanner

import (
	"strconv"
	"strings"

	"github.com/aldebaran-lang/pyscan/token"
)

// digitPredicate classifies a single digit rune for a given numeric base.
type digitPredicate func(rune) bool

// scanDigitRun consumes a maximal run of { digit | '_' } where digit is
// accepted by pred, mirroring the teacher's digits() bitset technique in
// scanner/scanner.go (digsep&1: a digit was seen, digsep&2: a separator
// was seen) generalized to four bases. It returns the raw consumed text
// (including any underscores) and whether at least one digit was seen.
func (s *Scanner) scanDigitRun(pred digitPredicate) (raw string, sawDigit bool) {
	start := s.offset
	for pred(s.ch) || s.ch == '_' {
		if s.ch != '_' {
			sawDigit = true
		}
		s.next()
	}
	return string(s.src[start:s.offset]), sawDigit
}

// stripSeparators removes digit-group underscores so the remaining text
// can be handed to strconv.
func stripSeparators(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

// scanNumber implements spec.md §4.6. It is called with s.ch positioned
// on the number's leading character: a decimal digit, or a '.' that is
// known (by the caller) to be followed by a decimal digit.
func (s *Scanner) scanNumber() token.Token {
	start := s.offset

	// Base-prefixed integers: 0x/0X, 0o/0O, 0b/0B.
	if s.ch == '0' {
		switch s.peekByte() {
		case 'x', 'X':
			return s.scanBasedInteger(start, isHexDigit, 16)
		case 'o', 'O':
			return s.scanBasedInteger(start, isOctalDigit, 8)
		case 'b', 'B':
			return s.scanBasedInteger(start, isBinaryDigit, 2)
		}
	}

	return s.scanDecimalOrFloat(start)
}

// scanBasedInteger scans 0x/0o/0b-prefixed literals. If the prefix is not
// followed by at least one valid digit, spec.md §4.6 requires emitting a
// length-1 Number token with value 0 (just the leading '0') and leaving
// the remaining characters — including the base letter — to be rescanned
// as a (possibly invalid) identifier by the caller.
func (s *Scanner) scanBasedInteger(start int, pred digitPredicate, radix int) token.Token {
	s.next() // consume '0'
	s.next() // consume base letter

	// Leniency preserved from the source per spec.md §9: an underscore
	// is accepted immediately after the base prefix (0b_0011 scans as
	// one literal) even though some reference tokenizers reject it.
	raw, sawDigit := s.scanDigitRun(pred)
	if !sawDigit {
		// Back off to just the '0': the base letter and anything we
		// consumed after it must be rescanned by the caller.
		s.offset = start + 1
		s.rdOffset = start + 1
		s.ch = rune(s.src[start])
		s.next()
		return token.Token{
			Kind:          token.Number,
			Start:         s.abs(start),
			Length:        1,
			IsIntegerKind: true,
		}
	}

	digits := stripSeparators(raw)
	tok := token.Token{
		Kind:          token.Number,
		Start:         s.abs(start),
		Length:        s.offset - start,
		IsIntegerKind: true,
	}

	if v, err := strconv.ParseInt(digits, radix, 64); err == nil {
		tok.IntValue = token.IntValue{Small: v}
		tok.NumberValue = float64(v)
	} else {
		tok.IntValue = token.IntValue{Big: decimalFromBasedDigits(digits, radix)}
	}
	return tok
}

// decimalFromBasedDigits converts an overflowing based-integer literal to
// a base-10 digit string using simple long division, so IntValue.Big is
// always base 10 regardless of the literal's radix.
func decimalFromBasedDigits(digits string, radix int) string {
	// digits in the source radix, most significant first.
	work := make([]byte, len(digits))
	for i := 0; i < len(digits); i++ {
		work[i] = byte(digitValue(rune(digits[i])))
	}

	var out []byte
	for len(work) > 0 {
		var rem int
		var next []byte
		for _, d := range work {
			cur := rem*radix + int(d)
			q := cur / 10
			rem = cur % 10
			if q != 0 || len(next) > 0 {
				next = append(next, byte(q))
			}
		}
		out = append([]byte{byte(rem + '0')}, out...)
		work = next
	}
	if len(out) == 0 {
		return "0"
	}
	return string(out)
}

// scanDecimalOrFloat scans a decimal integer or a float literal (digits
// with an optional fractional part and/or exponent), spec.md §4.6.
func (s *Scanner) scanDecimalOrFloat(start int) token.Token {
	isFloat := false

	s.scanDigitRun(isDecimalDigit) // integer part, possibly empty if we start on '.'

	if s.ch == '.' {
		isFloat = true
		s.next()
		s.scanDigitRun(isDecimalDigit) // fractional part, possibly empty ("1.")
	}

	if s.ch == 'e' || s.ch == 'E' {
		// Only consume the exponent if a digit (optionally signed)
		// actually follows; otherwise "1e" with no digits is not a
		// valid exponent and 'e' is left for the next token.
		saveCh, saveOffset, saveRdOffset := s.ch, s.offset, s.rdOffset
		s.next()
		if s.ch == '+' || s.ch == '-' {
			s.next()
		}
		if s.ch >= '0' && s.ch <= '9' {
			isFloat = true
			s.scanDigitRun(isDecimalDigit)
		} else {
			s.ch, s.offset, s.rdOffset = saveCh, saveOffset, saveRdOffset
		}
	}

	raw := string(s.src[start:s.offset])
	digits := stripSeparators(raw)

	tok := token.Token{
		Kind:   token.Number,
		Start:  s.abs(start),
		Length: s.offset - start,
	}

	if isFloat {
		if v, err := strconv.ParseFloat(digits, 64); err == nil {
			tok.NumberValue = v
		}
		return tok
	}

	tok.IsIntegerKind = true
	if v, err := strconv.ParseInt(digits, 10, 64); err == nil {
		tok.IntValue = token.IntValue{Small: v}
		tok.NumberValue = float64(v)
	} else {
		tok.IntValue = token.IntValue{Big: digits}
	}
	return tok
}
