// Package pyscan tokenizes Python source text per the scanner rules in
// package scanner, exposing a small functional-options constructor.
package pyscan

import (
	"github.com/aldebaran-lang/pyscan/scanner"
	"github.com/aldebaran-lang/pyscan/token"
)

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithTabWidth overrides the column width tabs expand to when computing
// indentation (spec.md §4.3). The default is 8.
func WithTabWidth(width int) Option {
	return func(t *Tokenizer) {
		t.cfg.TabWidth = width
	}
}

// WithLogger attaches a trace logger (e.g. a *logrus.Entry) to the scanner.
func WithLogger(logger scanner.Logger) Option {
	return func(t *Tokenizer) {
		t.cfg.Logger = logger
	}
}

// WithNameResolver supplies the \N{NAME} resolver used when unescaping
// string tokens. Without one, a small builtin table is used.
func WithNameResolver(resolver scanner.UnicodeNameResolver) Option {
	return func(t *Tokenizer) {
		t.cfg.NameResolver = resolver
	}
}

// Tokenizer holds tokenization configuration built from a chain of
// Options; it is immutable once constructed and safe to reuse across
// concurrent Tokenize calls (spec.md §5).
type Tokenizer struct {
	cfg scanner.Config
}

// New constructs a Tokenizer with the given options applied over the
// default configuration.
func New(options ...Option) *Tokenizer {
	t := &Tokenizer{}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// Tokenize scans content[startOffset:startOffset+length] and returns the
// resulting TokenizerOutput (spec.md §5, §6).
func (t *Tokenizer) Tokenize(content []byte, startOffset, length int) *scanner.Output {
	return scanner.Tokenize(content, startOffset, length, t.cfg)
}

// TokenizeAll scans the whole of content in one call.
func (t *Tokenizer) TokenizeAll(content []byte) *scanner.Output {
	return t.Tokenize(content, 0, len(content))
}

// Unescape decodes tok's EscapedValue using the Tokenizer's configured
// name resolver.
func (t *Tokenizer) Unescape(tok token.Token) scanner.UnescapedString {
	return scanner.UnescapeToken(tok, t.cfg.NameResolver)
}
