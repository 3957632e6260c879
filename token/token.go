// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the token variants produced by the pyscan lexer
// and the keyword table used to classify identifiers.
package token

import "strconv"

// Kind identifies which variant of the Token sum type a given Token holds.
type Kind int

const (
	Invalid Kind = iota
	EndOfStream

	// NewLine carries an EOLSequence describing the concrete terminator.
	NewLine

	// Indent/Dedent bracket a change in the indentation stack.
	Indent
	Dedent

	Identifier
	Keyword
	Number
	Operator
	String

	// Single-character/fixed punctuation that never participates in
	// maximal-munch operator scanning.
	Dot
	Ellipsis
	Colon
	Semicolon
	Comma
	Arrow
	OpenParenthesis
	CloseParenthesis
	OpenBracket
	CloseBracket
	OpenCurlyBrace
	CloseCurlyBrace
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EndOfStream:      "EndOfStream",
	NewLine:          "NewLine",
	Indent:           "Indent",
	Dedent:           "Dedent",
	Identifier:       "Identifier",
	Keyword:          "Keyword",
	Number:           "Number",
	Operator:         "Operator",
	String:           "String",
	Dot:              ".",
	Ellipsis:         "...",
	Colon:            ":",
	Semicolon:        ";",
	Comma:            ",",
	Arrow:            "->",
	OpenParenthesis:  "(",
	CloseParenthesis: ")",
	OpenBracket:      "[",
	CloseBracket:     "]",
	OpenCurlyBrace:   "{",
	CloseCurlyBrace:  "}",
}

// String returns a human-readable name for the kind, used in tracing and
// test failure messages.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// EOLSequence identifies the concrete line-terminator a NewLine token
// represents.
type EOLSequence int

const (
	EOLLineFeed EOLSequence = iota
	EOLCarriageReturnLineFeed
	EOLCarriageReturn
	// EOLImplied marks the zero-length NewLine synthesized at end of
	// file when the source does not already end on one.
	EOLImplied
)

func (e EOLSequence) String() string {
	switch e {
	case EOLLineFeed:
		return "LF"
	case EOLCarriageReturnLineFeed:
		return "CRLF"
	case EOLCarriageReturn:
		return "CR"
	case EOLImplied:
		return "Implied"
	default:
		return "EOLSequence(" + strconv.Itoa(int(e)) + ")"
	}
}

// OperatorType enumerates the maximal-munch operator set from spec.md
// §4.3, excluding fixed punctuation (Arrow, Colon, ...) which has its own
// Kind.
type OperatorType int

const (
	OpLess OperatorType = iota
	OpLeftShift
	OpLeftShiftEqual
	OpEqualEqual
	OpNotEqual
	OpGreater
	OpRightShift
	OpRightShiftEqual
	OpGreaterEqual
	OpLessEqual
	OpAdd
	OpSubtract
	OpBitwiseInvert
	OpModulo
	OpMultiply
	OpPower
	OpDivide
	OpFloorDivide
	OpDivideEqual
	OpFloorDivideEqual
	OpMultiplyEqual
	OpAddEqual
	OpSubtractEqual
	OpModuloEqual
	OpPowerEqual
	OpBitwiseAndEqual
	OpBitwiseOrEqual
	OpBitwiseXorEqual
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor
	OpMatrixMultiply
	OpMatrixMultiplyEqual
	OpAssign
	OpWalrus
)

var operatorStrings = [...]string{
	OpLess:                "<",
	OpLeftShift:           "<<",
	OpLeftShiftEqual:      "<<=",
	OpEqualEqual:          "==",
	OpNotEqual:            "!=",
	OpGreater:             ">",
	OpRightShift:          ">>",
	OpRightShiftEqual:     ">>=",
	OpGreaterEqual:        ">=",
	OpLessEqual:           "<=",
	OpAdd:                 "+",
	OpSubtract:            "-",
	OpBitwiseInvert:       "~",
	OpModulo:              "%",
	OpMultiply:            "*",
	OpPower:               "**",
	OpDivide:              "/",
	OpFloorDivide:         "//",
	OpDivideEqual:         "/=",
	OpFloorDivideEqual:    "//=",
	OpMultiplyEqual:       "*=",
	OpAddEqual:            "+=",
	OpSubtractEqual:       "-=",
	OpModuloEqual:         "%=",
	OpPowerEqual:          "**=",
	OpBitwiseAndEqual:     "&=",
	OpBitwiseOrEqual:      "|=",
	OpBitwiseXorEqual:     "^=",
	OpBitwiseAnd:          "&",
	OpBitwiseOr:           "|",
	OpBitwiseXor:          "^",
	OpMatrixMultiply:      "@",
	OpMatrixMultiplyEqual: "@=",
	OpAssign:              "=",
	OpWalrus:              ":=",
}

func (o OperatorType) String() string {
	if int(o) >= 0 && int(o) < len(operatorStrings) {
		return operatorStrings[o]
	}
	return "OperatorType(" + strconv.Itoa(int(o)) + ")"
}

// comparisonOperators is the set tested by IsOperatorComparison.
var comparisonOperators = map[OperatorType]bool{
	OpLess:         true,
	OpLessEqual:    true,
	OpGreater:      true,
	OpGreaterEqual: true,
	OpEqualEqual:   true,
	OpNotEqual:     true,
}

// IsOperatorComparison reports whether op is one of the six comparison
// operators (spec.md §6). The keyword-spelled comparisons (in, not in,
// is, is not) are not operators and are tested by the parser via keyword
// lookahead, not through this predicate.
func IsOperatorComparison(op OperatorType) bool {
	return comparisonOperators[op]
}

// assignmentOperators is the set tested by IsOperatorAssignment.
var assignmentOperators = map[OperatorType]bool{
	OpAssign:              true,
	OpAddEqual:            true,
	OpSubtractEqual:       true,
	OpMultiplyEqual:       true,
	OpDivideEqual:         true,
	OpFloorDivideEqual:    true,
	OpModuloEqual:         true,
	OpPowerEqual:          true,
	OpLeftShiftEqual:      true,
	OpRightShiftEqual:     true,
	OpBitwiseAndEqual:     true,
	OpBitwiseOrEqual:      true,
	OpBitwiseXorEqual:     true,
	OpMatrixMultiplyEqual: true,
}

// IsOperatorAssignment reports whether op is one of the assignment
// operators (spec.md §6), including augmented assignments. The walrus
// operator (:=) is excluded: it names an expression, not a statement.
func IsOperatorAssignment(op OperatorType) bool {
	return assignmentOperators[op]
}

// KeywordType enumerates the reserved words in spec.md §4.7.
type KeywordType int

const (
	KeywordFalse KeywordType = iota
	KeywordNone
	KeywordTrue
	KeywordAnd
	KeywordAs
	KeywordAssert
	KeywordAsync
	KeywordAwait
	KeywordBreak
	KeywordClass
	KeywordContinue
	KeywordDef
	KeywordDel
	KeywordElif
	KeywordElse
	KeywordExcept
	KeywordFinally
	KeywordFor
	KeywordFrom
	KeywordGlobal
	KeywordIf
	KeywordImport
	KeywordIn
	KeywordIs
	KeywordLambda
	KeywordNonlocal
	KeywordNot
	KeywordOr
	KeywordPass
	KeywordRaise
	KeywordReturn
	KeywordTry
	KeywordWhile
	KeywordWith
	KeywordYield
	KeywordDebug
)

var keywordStrings = [...]string{
	KeywordFalse:    "False",
	KeywordNone:     "None",
	KeywordTrue:     "True",
	KeywordAnd:      "and",
	KeywordAs:       "as",
	KeywordAssert:   "assert",
	KeywordAsync:    "async",
	KeywordAwait:    "await",
	KeywordBreak:    "break",
	KeywordClass:    "class",
	KeywordContinue: "continue",
	KeywordDef:      "def",
	KeywordDel:      "del",
	KeywordElif:     "elif",
	KeywordElse:     "else",
	KeywordExcept:   "except",
	KeywordFinally:  "finally",
	KeywordFor:      "for",
	KeywordFrom:     "from",
	KeywordGlobal:   "global",
	KeywordIf:       "if",
	KeywordImport:   "import",
	KeywordIn:       "in",
	KeywordIs:       "is",
	KeywordLambda:   "lambda",
	KeywordNonlocal: "nonlocal",
	KeywordNot:      "not",
	KeywordOr:       "or",
	KeywordPass:     "pass",
	KeywordRaise:    "raise",
	KeywordReturn:   "return",
	KeywordTry:      "try",
	KeywordWhile:    "while",
	KeywordWith:     "with",
	KeywordYield:    "yield",
	KeywordDebug:    "__debug__",
}

func (k KeywordType) String() string {
	if int(k) >= 0 && int(k) < len(keywordStrings) {
		return keywordStrings[k]
	}
	return "KeywordType(" + strconv.Itoa(int(k)) + ")"
}

// comparisonKeywords is the set of keywords that act as comparison
// operators in expression position ("in", "is") or combine with "not" to
// do so ("not in", "is not" are recognized by the parser as a pair of
// tokens, not a single keyword here).
var comparisonKeywords = map[KeywordType]bool{
	KeywordIn:  true,
	KeywordIs:  true,
	KeywordNot: true,
}

// IsComparisonKeyword reports whether k participates in a keyword-spelled
// comparison ("in", "not in", "is", "is not"). This supplements spec.md
// §6's note that keyword comparisons are "tested via the parser's keyword
// lookahead" rather than IsOperatorComparison, giving the parser a single
// predicate instead of an ad hoc switch.
func (k KeywordType) IsComparisonKeyword() bool {
	return comparisonKeywords[k]
}

var keywords map[string]KeywordType

func init() {
	keywords = make(map[string]KeywordType, len(keywordStrings))
	for i, s := range keywordStrings {
		keywords[s] = KeywordType(i)
	}
}

// LookupKeyword maps an identifier's exact source spelling to its keyword
// classification. ok is false when ident is not a reserved word, in which
// case the caller should emit an Identifier token instead.
func LookupKeyword(ident string) (kw KeywordType, ok bool) {
	kw, ok = keywords[ident]
	return
}

// StringFlags is a bit set describing how a string literal was opened.
type StringFlags uint16

const (
	FlagSingleQuote StringFlags = 1 << iota
	FlagDoubleQuote
	FlagTriplicate
	FlagRaw
	FlagUnicode
	FlagBytes
	FlagFormat
	FlagUnterminated
)

// Has reports whether bit is set in f.
func (f StringFlags) Has(bit StringFlags) bool { return f&bit != 0 }

// Comment is an attached-comment record. Comments are never standalone
// tokens (spec.md invariant 5); they hang off the token they precede.
type Comment struct {
	Start  int
	Length int
}

// IntValue holds an arbitrary-width integer literal's value without
// truncating it to 64 bits the way a bare int64 would.
type IntValue struct {
	// Small holds the value when it fits in an int64 (Big == "").
	Small int64
	// Big holds the decimal digit string (base 10, no sign, no
	// separators) when the literal overflows int64. pyscan only
	// preserves the digits losslessly; converting them to a host bignum
	// representation is left to the caller (spec.md Non-goals).
	Big string
}

// Token is the tagged sum type described in spec.md §3. Every variant
// shares Start/Length/Comments; variant-specific data lives in the
// corresponding field and is meaningful only for that Kind.
type Token struct {
	Kind     Kind
	Start    int
	Length   int
	Comments []Comment

	// NewLine
	EOL EOLSequence

	// Indent / Dedent
	IndentAmount      int
	IsIndentAmbiguous bool // Indent only
	MatchesIndent     bool // Dedent only

	// Identifier (also set to the source text of a Keyword)
	Value string

	// Keyword
	KeywordType KeywordType

	// Number
	NumberValue   float64
	IntValue      IntValue
	IsIntegerKind bool

	// Operator
	OperatorType OperatorType

	// String
	StringFlags     StringFlags
	PrefixLength    int
	QuoteMarkLength int
	EscapedValue    string
}

// End returns the byte offset immediately following the token.
func (t Token) End() int { return t.Start + t.Length }
