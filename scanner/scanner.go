// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scanner implements the pyscan lexical analyzer: it takes Python
// source text as a []byte and produces a token.Token stream plus a line
// index, driven by (*Scanner).run's token loop from Tokenize.
package scanner

import (
	"unicode/utf8"

	"github.com/aldebaran-lang/pyscan/token"
)

const eof = -1

// defaultTabWidth is the column width used to expand tabs when computing
// an indentation amount (spec.md §4.3, GLOSSARY "Indent amount"). It is
// overridable via Config for embedders that need a different column
// model; the test corpus in spec.md §8 only ever pins behavior at 8.
const defaultTabWidth = 8

// Logger is the subset of logrus.FieldLogger the scanner needs for
// tracing. Accepting the interface rather than a concrete *logrus.Logger
// keeps the scanner package decoupled from logging configuration, the way
// core/parser/parser.go's own printTrace only ever needed fmt.Println.
type Logger interface {
	Tracef(format string, args ...interface{})
}

// nopLogger discards everything; it is the default when no Logger is
// configured so trace calls are always safe to make unconditionally.
type nopLogger struct{}

func (nopLogger) Tracef(string, ...interface{}) {}

// UnicodeNameResolver resolves a \N{NAME} escape name to the rune it
// names. Spec.md §4.5 notes resolution "may be mocked to a fixed
// character" for testing; production embedders supply a resolver backed
// by the Unicode names database.
type UnicodeNameResolver func(name string) (rune, bool)

// Config carries the scanner's tunable knobs. The zero Config is usable:
// TabWidth defaults to 8 and NameResolver defaults to a small builtin
// table (see unescape.go).
type Config struct {
	// TabWidth is the column width tabs expand to when computing
	// indentation (spec.md §4.3). Zero means defaultTabWidth.
	TabWidth int
	// Logger receives scan tracing if non-nil.
	Logger Logger
	// NameResolver resolves \N{NAME} escapes. Nil means the builtin
	// table in unescape.go.
	NameResolver UnicodeNameResolver
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return defaultTabWidth
	}
	return c.TabWidth
}

func (c Config) logger() Logger {
	if c.Logger == nil {
		return nopLogger{}
	}
	return c.Logger
}

// Scanner holds the scanner's internal state while tokenizing a fixed
// input slice (spec.md §5: "a pure function from a byte slice and
// configuration to a TokenizerOutput value"). A Scanner is not reused
// across calls to Tokenize and holds no state shared with any other
// Scanner.
type Scanner struct {
	cfg Config

	// src is the logical slice being scanned: content[startOffset:startOffset+length].
	src []byte
	// base is added to every local offset to produce an absolute Token
	// offset into the caller's original content slice (spec.md §6).
	base int

	// character stream
	ch       rune // current character, or eof
	offset   int  // local offset of ch
	rdOffset int  // local offset immediately following ch

	// indentation / bracket state (spec.md §4.3)
	indentStack    []int
	bracketDepth   int
	lineStart      bool // true when the next non-blank token starts a logical line
	pendingComment []token.Comment

	// accumulated output
	tokens     []token.Token
	lineStarts []int // local offsets where each physical line begins

	// frequency counters used to compute the "predominant" EOL/indent
	// strings in the tokenizer output (spec.md §3 TokenizerOutput).
	eolCounts    map[token.EOLSequence]int
	indentStyles map[string]int
}

// newScanner allocates a Scanner over src (already sliced to
// [startOffset, startOffset+length)) with base added to every emitted
// offset.
func newScanner(src []byte, base int, cfg Config) *Scanner {
	s := &Scanner{
		cfg:          cfg,
		src:          src,
		base:         base,
		indentStack:  []int{0},
		lineStart:    true,
		eolCounts:    make(map[token.EOLSequence]int),
		indentStyles: make(map[string]int),
	}
	s.lineStarts = append(s.lineStarts, 0)
	s.next()
	// A byte-order mark at the very start of the input is skipped; one
	// anywhere else is scanned as an Invalid token.
	if s.ch == 0xFEFF {
		s.next()
	}
	return s
}

// next reads the next rune into s.ch. s.ch == eof means end of input.
func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		b := s.src[s.rdOffset]
		if b < utf8.RuneSelf {
			s.rdOffset++
			s.ch = rune(b)
			return
		}
		r, w := utf8.DecodeRune(s.src[s.rdOffset:])
		s.rdOffset += w
		s.ch = r
		return
	}
	s.offset = len(s.src)
	s.ch = eof
}

// peekByte returns the byte following the most recently read character
// without advancing the scanner, or 0 at end of input.
func (s *Scanner) peekByte() byte {
	if s.rdOffset < len(s.src) {
		return s.src[s.rdOffset]
	}
	return 0
}

// peekByteAt returns the byte n positions past the read cursor (n=0 is
// the same as peekByte), or 0 past end of input.
func (s *Scanner) peekByteAt(n int) byte {
	if s.rdOffset+n < len(s.src) {
		return s.src[s.rdOffset+n]
	}
	return 0
}

func (s *Scanner) trace(format string, args ...interface{}) {
	s.cfg.logger().Tracef(format, args...)
}

// abs converts a local offset to an absolute offset into the caller's
// original content slice.
func (s *Scanner) abs(localOffset int) int { return s.base + localOffset }
