// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldebaran-lang/pyscan/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	out := Tokenize([]byte(src), 0, len(src), Config{})
	return out.TokenValues
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

// Scenario 1, spec.md §8.
func TestTokenizeEmptyInput(t *testing.T) {
	toks := tokenize(t, "")
	require.Len(t, toks, 2)
	assert.Equal(t, token.NewLine, toks[0].Kind)
	assert.Equal(t, token.EOLImplied, toks[0].EOL)
	assert.Equal(t, 0, toks[0].Length)
	assert.Equal(t, token.EndOfStream, toks[1].Kind)

	out := Tokenize([]byte(""), 0, 0, Config{})
	assert.Equal(t, 1, out.Lines.Count())
}

// Scenario 2, spec.md §8.
func TestTokenizeEOLSequences(t *testing.T) {
	toks := tokenize(t, "\na\r\nb\r")
	kinds := kinds(toks)
	require.True(t, len(kinds) >= 5)
	assert.Equal(t, []token.Kind{
		token.NewLine, token.Identifier, token.NewLine, token.Identifier, token.NewLine,
	}, kinds[:5])

	assert.Equal(t, token.EOLLineFeed, toks[0].EOL)
	assert.Equal(t, "a", toks[1].Value)
	assert.Equal(t, token.EOLCarriageReturnLineFeed, toks[2].EOL)
	assert.Equal(t, "b", toks[3].Value)
	assert.Equal(t, token.EOLCarriageReturn, toks[4].EOL)
}

// Scenario 3, spec.md §8.
func TestTokenizeDotsAndEllipsis(t *testing.T) {
	toks := tokenize(t, ". .. ... ....")
	var got []token.Kind
	for _, tok := range toks {
		if tok.Kind == token.Dot || tok.Kind == token.Ellipsis {
			got = append(got, tok.Kind)
		}
	}
	assert.Equal(t, []token.Kind{
		token.Dot, token.Dot, token.Dot, token.Ellipsis, token.Ellipsis, token.Dot,
	}, got)
}

// Scenario 4, spec.md §8.
func TestTokenizeIndentation(t *testing.T) {
	src := "test\n  i1\n  i2  # \n       # \n  \ti3\n\ti4\n i1"
	toks := tokenize(t, src)

	var indentsAndDedents []token.Token
	for _, tok := range toks {
		if tok.Kind == token.Indent || tok.Kind == token.Dedent {
			indentsAndDedents = append(indentsAndDedents, tok)
		}
	}
	require.Len(t, indentsAndDedents, 4)

	assert.Equal(t, token.Indent, indentsAndDedents[0].Kind)
	assert.Equal(t, 2, indentsAndDedents[0].IndentAmount)

	assert.Equal(t, token.Indent, indentsAndDedents[1].Kind)
	assert.Equal(t, 8, indentsAndDedents[1].IndentAmount)

	assert.Equal(t, token.Dedent, indentsAndDedents[2].Kind)
	assert.Equal(t, 2, indentsAndDedents[2].IndentAmount)
	assert.True(t, indentsAndDedents[2].MatchesIndent)

	assert.Equal(t, token.Dedent, indentsAndDedents[3].Kind)
	assert.Equal(t, 1, indentsAndDedents[3].IndentAmount)
	assert.False(t, indentsAndDedents[3].MatchesIndent)
}

// Scenario 5, spec.md §8.
func TestTokenizeNumberEdgeCases(t *testing.T) {
	toks := tokenize(t, "1 0X2 0xFe_Ab 0x")
	var numbers []token.Token
	var ident *token.Token
	for i := range toks {
		if toks[i].Kind == token.Number {
			numbers = append(numbers, toks[i])
		}
		if toks[i].Kind == token.Identifier {
			ident = &toks[i]
		}
	}
	require.Len(t, numbers, 4)
	assert.EqualValues(t, 1, numbers[0].IntValue.Small)
	assert.EqualValues(t, 2, numbers[1].IntValue.Small)
	assert.EqualValues(t, 0xFEAB, numbers[2].IntValue.Small)
	assert.Equal(t, 1, numbers[3].Length)
	assert.EqualValues(t, 0, numbers[3].IntValue.Small)

	require.NotNil(t, ident)
	assert.Equal(t, "x", ident.Value)
}

// Scenario 6, spec.md §8.
func TestTokenizeEscapeDecoding(t *testing.T) {
	toks := tokenize(t, `"\x4d" "\u006b" "\U0000006F"`)
	var strs []token.Token
	for _, tok := range toks {
		if tok.Kind == token.String {
			strs = append(strs, tok)
		}
	}
	require.Len(t, strs, 3)

	want := []string{"M", "k", "o"}
	for i, tok := range strs {
		u := UnescapeToken(tok, nil)
		assert.Empty(t, u.UnescapeErrors)
		assert.Equal(t, want[i], u.Value)
	}
}

// Scenario 7, spec.md §8.
func TestTokenizeFStringCloseBrace(t *testing.T) {
	toks := tokenize(t, `f'hello}'`)
	require.GreaterOrEqual(t, len(toks), 1)
	str := toks[0]
	require.Equal(t, token.String, str.Kind)
	assert.True(t, str.StringFlags.Has(token.FlagSingleQuote))
	assert.True(t, str.StringFlags.Has(token.FlagFormat))

	u := UnescapeToken(str, nil)
	require.Len(t, u.UnescapeErrors, 1)
	assert.Equal(t, SingleCloseBraceWithinFormatLiteral, u.UnescapeErrors[0].Kind)
	assert.Equal(t, 5, u.UnescapeErrors[0].Offset)
	assert.Equal(t, 1, u.UnescapeErrors[0].Length)
}

// Scenario 8, spec.md §8.
func TestTokenizeBracketSuppressesIndent(t *testing.T) {
	src := "test (\n  i1\n       )\n  foo"
	toks := tokenize(t, src)

	var beforeClose, sawIndentAfterClose, sawTrailingDedent bool
	closeSeen := false
	for i, tok := range toks {
		if !closeSeen && (tok.Kind == token.Indent || tok.Kind == token.Dedent) {
			beforeClose = true
		}
		if tok.Kind == token.CloseParenthesis {
			closeSeen = true
		}
		if closeSeen && tok.Kind == token.Indent {
			sawIndentAfterClose = true
		}
		if i == len(toks)-2 && tok.Kind == token.Dedent {
			sawTrailingDedent = true
		}
	}
	assert.False(t, beforeClose, "no Indent/Dedent should be emitted while bracketed")
	assert.True(t, sawIndentAfterClose)
	assert.True(t, sawTrailingDedent)
}

func TestTokenizeStraySemicolonProducesOperatorsAndPunctuation(t *testing.T) {
	toks := tokenize(t, "a+b; c==d")
	var kindsGot []token.Kind
	for _, tok := range toks {
		kindsGot = append(kindsGot, tok.Kind)
	}
	assert.Contains(t, kindsGot, token.Operator)
	assert.Contains(t, kindsGot, token.Semicolon)
}

func TestTokenizeNegativeNumberIsTwoTokens(t *testing.T) {
	toks := tokenize(t, "-1")
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.Operator, toks[0].Kind)
	assert.Equal(t, token.OpSubtract, toks[0].OperatorType)
	assert.Equal(t, token.Number, toks[1].Kind)
}

// Underscore is a digit-group separator (spec.md §4.1) but must not itself
// trigger numeric scanning: a leading underscore always starts an
// identifier, never a Number.
func TestTokenizeLeadingUnderscoreIsIdentifier(t *testing.T) {
	toks := tokenize(t, "_")
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "_", toks[0].Value)
}

func TestTokenizeDunderKeywordNotMisScanned(t *testing.T) {
	toks := tokenize(t, "__debug__ _init_ _1")
	var got []token.Token
	for _, tok := range toks {
		if tok.Kind == token.Keyword || tok.Kind == token.Identifier {
			got = append(got, tok)
		}
	}
	require.Len(t, got, 3)
	assert.Equal(t, token.Keyword, got[0].Kind)
	assert.Equal(t, token.KeywordDebug, got[0].KeywordType)
	assert.Equal(t, token.Identifier, got[1].Kind)
	assert.Equal(t, "_init_", got[1].Value)
	assert.Equal(t, token.Identifier, got[2].Kind)
	assert.Equal(t, "_1", got[2].Value)
}

// The comment line's own terminator is the next token appended after the
// comment, so the comment attaches to that leading NewLine, not to x.
func TestTokenizeCommentAttachesToNextToken(t *testing.T) {
	toks := tokenize(t, "# hi\nx")
	require.GreaterOrEqual(t, len(toks), 2)
	require.Equal(t, token.NewLine, toks[0].Kind)
	require.Len(t, toks[0].Comments, 1)
	require.Equal(t, token.Identifier, toks[1].Kind)
	require.Len(t, toks[1].Comments, 0)
}
