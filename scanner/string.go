package scanner

import (
	"github.com/aldebaran-lang/pyscan/token"
)

func isQuoteByte(b byte) bool { return b == '\'' || b == '"' }

func isPrefixLetter(b byte) bool {
	switch lower(b) {
	case 'b', 'u', 'r', 'f':
		return true
	}
	return false
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// classifyPrefix maps a 1- or 2-byte string prefix to its StringFlags.
// Per spec.md §4.4 the tokenizer does not itself reject invalid
// combinations (e.g. "bf", "uR") — it records whichever of
// {Bytes, Unicode, Raw, Format} each prefix letter names and leaves
// validity diagnosis to the parser.
func classifyPrefix(raw string) (token.StringFlags, bool) {
	if len(raw) == 0 || len(raw) > 2 {
		return 0, false
	}
	var flags token.StringFlags
	for i := 0; i < len(raw); i++ {
		switch lower(raw[i]) {
		case 'b':
			flags |= token.FlagBytes
		case 'u':
			flags |= token.FlagUnicode
		case 'r':
			flags |= token.FlagRaw
		case 'f':
			flags |= token.FlagFormat
		default:
			return 0, false
		}
	}
	return flags, true
}

// tryStringPrefix looks ahead (without consuming) from an identifier-start
// character to see whether it opens a prefixed string literal: up to two
// identifier-continue characters immediately followed by a quote. It
// returns ok=false, leaving the scanner untouched, when no such prefix is
// present — the caller then scans an ordinary identifier instead.
func (s *Scanner) tryStringPrefix() (prefixLen int, flags token.StringFlags, ok bool) {
	if s.ch < 0 || s.ch >= 0x80 {
		return 0, 0, false
	}
	b0 := byte(s.ch)
	if !isPrefixLetter(b0) {
		return 0, 0, false
	}

	if isQuoteByte(s.peekByte()) {
		if f, ok2 := classifyPrefix(string([]byte{b0})); ok2 {
			return 1, f, true
		}
	}

	b1 := s.peekByte()
	if isPrefixLetter(b1) && isQuoteByte(s.peekByteAt(1)) {
		if f, ok2 := classifyPrefix(string([]byte{b0, b1})); ok2 {
			return 2, f, true
		}
	}

	return 0, 0, false
}

// scanString implements spec.md §4.4. prefixLen identifier characters
// (already validated by tryStringPrefix, or 0 when the literal has no
// prefix) are consumed first, then the opening quote marker.
func (s *Scanner) scanString(prefixLen int, flags token.StringFlags) token.Token {
	start := s.offset
	for i := 0; i < prefixLen; i++ {
		s.next()
	}

	quote := byte(s.ch)
	if quote == '"' {
		flags |= token.FlagDoubleQuote
	} else {
		flags |= token.FlagSingleQuote
	}

	triple := s.ch == rune(quote) && s.peekByte() == quote && s.peekByteAt(1) == quote
	quoteMarkLen := 1
	if triple {
		quoteMarkLen = 3
		flags |= token.FlagTriplicate
		s.next()
		s.next()
		s.next()
	} else {
		s.next()
	}

	bodyStart := s.offset
	bodyEnd := bodyStart
	unterminated := false

	// consumeLineBreak steps past one LF, CR or CRLF inside the literal and
	// records the physical line that follows it in the line index.
	consumeLineBreak := func() {
		if s.ch == '\r' && s.peekByte() == '\n' {
			s.next()
		}
		s.next()
		s.lineStarts = append(s.lineStarts, s.offset)
	}

scan:
	for {
		switch {
		case s.ch == eof:
			bodyEnd = s.offset
			unterminated = true
			break scan
		case !triple && isLineBreak(s.ch):
			bodyEnd = s.offset
			unterminated = true
			break scan
		case s.ch == rune(quote):
			if triple {
				if s.peekByte() == quote && s.peekByteAt(1) == quote {
					bodyEnd = s.offset
					s.next()
					s.next()
					s.next()
					break scan
				}
				// A lone (or double) quote inside a triple-quoted
				// string is ordinary content.
				s.next()
			} else {
				bodyEnd = s.offset
				s.next()
				break scan
			}
		case s.ch == '\\':
			// Consumed as a two-character unit whether or not the
			// string is raw (spec.md §4.4): raw mode only changes how
			// the unescape pass later interprets it, not how far the
			// scanner advances. A CRLF after the backslash counts as one
			// character here.
			s.next()
			if isLineBreak(s.ch) {
				consumeLineBreak()
			} else if s.ch != eof {
				s.next()
			}
		case isLineBreak(s.ch):
			// Only reached in triple-quoted strings; a line break ends a
			// single-quoted one above.
			consumeLineBreak()
		default:
			s.next()
		}
	}

	tok := token.Token{
		Kind:            token.String,
		Start:           s.abs(start),
		Length:          s.offset - start,
		StringFlags:     flags,
		PrefixLength:    prefixLen,
		QuoteMarkLength: quoteMarkLen,
		EscapedValue:    string(s.src[bodyStart:bodyEnd]),
	}
	if unterminated {
		tok.StringFlags |= token.FlagUnterminated
	}
	return tok
}
