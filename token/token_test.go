// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want KeywordType
		ok   bool
	}{
		{"False", "False", KeywordFalse, true},
		{"lambda", "lambda", KeywordLambda, true},
		{"debug-dunder", "__debug__", KeywordDebug, true},
		{"not-a-keyword", "foobar", 0, false},
		{"case-sensitive", "ELSE", 0, false},
		{"empty", "", 0, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := LookupKeyword(test.in)
			require.Equal(t, test.ok, ok)
			if ok {
				require.Equal(t, test.want, got)
			}
		})
	}
}

func TestKeywordString(t *testing.T) {
	require.Equal(t, "False", KeywordFalse.String())
	require.Equal(t, "lambda", KeywordLambda.String())
}

func TestIsComparisonKeyword(t *testing.T) {
	require.True(t, KeywordIn.IsComparisonKeyword())
	require.True(t, KeywordIs.IsComparisonKeyword())
	require.True(t, KeywordNot.IsComparisonKeyword())
	require.False(t, KeywordFor.IsComparisonKeyword())
}

func TestIsOperatorComparison(t *testing.T) {
	require.True(t, IsOperatorComparison(OpLess))
	require.True(t, IsOperatorComparison(OpEqualEqual))
	require.False(t, IsOperatorComparison(OpAdd))
	require.False(t, IsOperatorComparison(OpAssign))
}

func TestIsOperatorAssignment(t *testing.T) {
	require.True(t, IsOperatorAssignment(OpAssign))
	require.True(t, IsOperatorAssignment(OpFloorDivideEqual))
	require.True(t, IsOperatorAssignment(OpMatrixMultiplyEqual))
	require.False(t, IsOperatorAssignment(OpWalrus))
	require.False(t, IsOperatorAssignment(OpEqualEqual))
}

func TestOperatorString(t *testing.T) {
	require.Equal(t, "//=", OpFloorDivideEqual.String())
	require.Equal(t, ":=", OpWalrus.String())
}

func TestStringFlagsHas(t *testing.T) {
	f := FlagRaw | FlagFormat
	require.True(t, f.Has(FlagRaw))
	require.True(t, f.Has(FlagFormat))
	require.False(t, f.Has(FlagBytes))
}

func TestTokenEnd(t *testing.T) {
	tok := Token{Start: 10, Length: 4}
	require.Equal(t, 14, tok.End())
}

func TestEOLSequenceString(t *testing.T) {
	require.Equal(t, "LF", EOLLineFeed.String())
	require.Equal(t, "CRLF", EOLCarriageReturnLineFeed.String())
	require.Equal(t, "CR", EOLCarriageReturn.String())
	require.Equal(t, "Implied", EOLImplied.String())
}
