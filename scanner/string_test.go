package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldebaran-lang/pyscan/token"
)

func scanOneToken(t *testing.T, src string) token.Token {
	t.Helper()
	s := newScanner([]byte(src), 0, Config{})
	s.dispatchToken()
	require.Len(t, s.tokens, 1)
	return s.tokens[0]
}

func TestScanStringSimple(t *testing.T) {
	tok := scanOneToken(t, `"hi"`)
	assert.Equal(t, token.String, tok.Kind)
	assert.True(t, tok.StringFlags.Has(token.FlagDoubleQuote))
	assert.False(t, tok.StringFlags.Has(token.FlagUnterminated))
	assert.Equal(t, "hi", tok.EscapedValue)
	assert.Equal(t, 0, tok.PrefixLength)
	assert.Equal(t, 1, tok.QuoteMarkLength)
}

func TestScanStringPrefixed(t *testing.T) {
	tok := scanOneToken(t, `rb'raw bytes'`)
	assert.True(t, tok.StringFlags.Has(token.FlagRaw))
	assert.True(t, tok.StringFlags.Has(token.FlagBytes))
	assert.Equal(t, 2, tok.PrefixLength)
	assert.Equal(t, "raw bytes", tok.EscapedValue)
}

func TestScanStringFormatPrefixCaseInsensitive(t *testing.T) {
	tok := scanOneToken(t, `F"x"`)
	assert.True(t, tok.StringFlags.Has(token.FlagFormat))
}

func TestScanStringTripleQuoted(t *testing.T) {
	tok := scanOneToken(t, `"""line one
line two"""`)
	assert.True(t, tok.StringFlags.Has(token.FlagTriplicate))
	assert.Equal(t, 3, tok.QuoteMarkLength)
	assert.Equal(t, "line one\nline two", tok.EscapedValue)
}

func TestScanStringUnterminatedAtNewline(t *testing.T) {
	tok := scanOneToken(t, "'abc\ndef")
	assert.True(t, tok.StringFlags.Has(token.FlagUnterminated))
	assert.Equal(t, "abc", tok.EscapedValue)
}

// spec.md §4.4: a stray trailing backslash inside a single-quoted string
// leaves the quote unconsumed (it is absorbed as the escaped character)
// and the token is Unterminated; escapedValue retains both characters.
func TestScanStringStrayTrailingBackslash(t *testing.T) {
	tok := scanOneToken(t, `'\'`)
	assert.True(t, tok.StringFlags.Has(token.FlagUnterminated))
	assert.Equal(t, "\\'", tok.EscapedValue)
}

// spec.md §4.4 edge case: eight quotes scan as an empty triple-quoted
// string (length 6) followed by an empty regular string (length 2).
func TestScanStringEightQuotes(t *testing.T) {
	s := newScanner([]byte(`""""""""`), 0, Config{})
	s.dispatchToken()
	s.dispatchToken()
	require.Len(t, s.tokens, 2)

	first, second := s.tokens[0], s.tokens[1]
	assert.True(t, first.StringFlags.Has(token.FlagTriplicate))
	assert.Equal(t, 6, first.Length)
	assert.Equal(t, "", first.EscapedValue)

	assert.False(t, second.StringFlags.Has(token.FlagTriplicate))
	assert.Equal(t, 2, second.Length)
	assert.Equal(t, "", second.EscapedValue)
}

// spec.md §4.4 edge case: five quotes is a single unterminated
// triple-quoted string.
func TestScanStringFiveQuotes(t *testing.T) {
	tok := scanOneToken(t, `"""""`)
	assert.True(t, tok.StringFlags.Has(token.FlagTriplicate))
	assert.True(t, tok.StringFlags.Has(token.FlagUnterminated))
	assert.Equal(t, 5, tok.Length)
}

func TestTryStringPrefixRejectsPlainIdentifier(t *testing.T) {
	s := newScanner([]byte("foo"), 0, Config{})
	_, _, ok := s.tryStringPrefix()
	assert.False(t, ok)
}

func TestTryStringPrefixRejectsThreeLetterPrefix(t *testing.T) {
	// "abc" followed by a quote: neither 2-letter window ("ab") is a
	// valid prefix combination, so this must be scanned as an identifier.
	s := newScanner([]byte(`abc"x"`), 0, Config{})
	_, _, ok := s.tryStringPrefix()
	assert.False(t, ok)
}

func TestClassifyPrefixSingleAndDouble(t *testing.T) {
	f, ok := classifyPrefix("r")
	require.True(t, ok)
	assert.Equal(t, token.FlagRaw, f)

	f, ok = classifyPrefix("fr")
	require.True(t, ok)
	assert.Equal(t, token.FlagFormat|token.FlagRaw, f)

	_, ok = classifyPrefix("xyz")
	assert.False(t, ok)

	_, ok = classifyPrefix("q")
	assert.False(t, ok)
}
