package scanner

import "github.com/aldebaran-lang/pyscan/token"

// run drives the full token loop described in spec.md §4.3: indentation
// tracking outside brackets, bracket-depth-suppressed newlines, comment
// attachment, and leading-character dispatch. It appends every produced
// token to s.tokens and returns once EndOfStream has been appended.
func (s *Scanner) run() {
	for {
		if s.lineStart {
			var eofReached bool
			if s.bracketDepth == 0 {
				eofReached = s.advanceLineStart()
			} else {
				eofReached = s.advanceBracketedLineStart()
			}
			if eofReached {
				break
			}
		}

		s.skipIntralineWhitespace()
		if s.ch == eof {
			break
		}
		s.dispatchToken()
	}
	s.finish()
}

// skipIntralineWhitespace consumes spaces, tabs, and form feeds that do
// not participate in an indentation measurement (mid-line, or inside a
// bracketed continuation).
func (s *Scanner) skipIntralineWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\f' {
		s.next()
	}
}

// measureIndent consumes leading whitespace at a physical line's start and
// returns its tab-expanded column width (spec.md GLOSSARY "Indent
// amount") along with whether both tabs and spaces were mixed on this
// line, the only signal spec.md §3 gives for isIndentAmbiguous.
func (s *Scanner) measureIndent() (amount int, ambiguous bool) {
	start := s.offset
	sawSpace, sawTab := false, false
	for {
		switch s.ch {
		case ' ':
			amount++
			sawSpace = true
			s.next()
		case '\t':
			width := s.cfg.tabWidth()
			amount += width - (amount % width)
			sawTab = true
			s.next()
		case '\f':
			s.next()
		default:
			if amount > 0 {
				s.recordIndentStyle(string(s.src[start:s.offset]))
			}
			return amount, sawSpace && sawTab
		}
	}
}

// recordIndentStyle tallies a physical line's raw leading-whitespace text
// so Output.PredominantIndent can report the leading-whitespace string
// used most often across the file (spec.md §3 TokenizerOutput).
func (s *Scanner) recordIndentStyle(raw string) {
	s.indentStyles[raw]++
}

func isLineBreakByte(b byte) bool { return b == '\n' || b == '\r' }

// scanLineBreak consumes one physical line terminator (LF, CR, or CRLF)
// starting at s.ch, recording it for the line-span index and EOL-sequence
// frequency count regardless of whether a NewLine token is ultimately
// emitted for it.
func (s *Scanner) scanLineBreak() (eol token.EOLSequence, start, length int) {
	start = s.offset
	switch {
	case s.ch == '\r' && s.peekByte() == '\n':
		s.next()
		s.next()
		eol = token.EOLCarriageReturnLineFeed
	case s.ch == '\r':
		s.next()
		eol = token.EOLCarriageReturn
	default:
		s.next()
		eol = token.EOLLineFeed
	}
	length = s.offset - start
	s.eolCounts[eol]++
	s.lineStarts = append(s.lineStarts, s.offset)
	return
}

// advanceLineStart measures and applies indentation for each outermost
// physical line starting at the scanner's current position, skipping
// blank and comment-only lines (which never change the indent stack) and
// collapsing the newlines between them into a single emitted NewLine, per
// spec.md §4.3. It returns true once end of input is reached.
func (s *Scanner) advanceLineStart() bool {
	for {
		amount, ambiguous := s.measureIndent()
		switch {
		case s.ch == eof:
			return true
		case s.ch == '#':
			s.scanComment()
			if s.ch == eof {
				return true
			}
			if isLineBreak(s.ch) {
				eol, start, length := s.scanLineBreak()
				s.emitNewline(eol, start, length)
			}
		case isLineBreak(s.ch):
			eol, start, length := s.scanLineBreak()
			s.emitNewline(eol, start, length)
		case s.ch == '\\' && isLineBreakByte(s.peekByte()):
			s.next()
			s.scanLineBreak()
		default:
			s.applyIndent(amount, ambiguous)
			s.lineStart = false
			return false
		}
	}
}

// advanceBracketedLineStart is advanceLineStart's counterpart inside
// bracketed context (spec.md §4.3: "inside brackets, indentation is
// collected but suppressed"): leading whitespace is skipped without being
// measured, and line terminators are swallowed entirely rather than
// becoming NewLine tokens.
func (s *Scanner) advanceBracketedLineStart() bool {
	for {
		s.skipIntralineWhitespace()
		switch {
		case s.ch == eof:
			return true
		case s.ch == '#':
			s.scanComment()
			if s.ch == eof {
				return true
			}
			if isLineBreak(s.ch) {
				s.scanLineBreak()
			}
		case isLineBreak(s.ch):
			s.scanLineBreak()
		case s.ch == '\\' && isLineBreakByte(s.peekByte()):
			s.next()
			s.scanLineBreak()
		default:
			s.lineStart = false
			return false
		}
	}
}

// scanComment buffers a '#'-to-end-of-line comment (spec.md §4.3) without
// emitting a token for it; it attaches to whichever token is appended
// next, however many elided newlines or blank lines intervene.
func (s *Scanner) scanComment() {
	start := s.offset
	for s.ch != eof && !isLineBreak(s.ch) {
		s.next()
	}
	s.pendingComment = append(s.pendingComment, token.Comment{
		Start:  s.abs(start),
		Length: s.offset - start,
	})
}

// appendToken appends tok to the token stream, attaching (and clearing)
// any buffered comments per spec.md invariant 5.
func (s *Scanner) appendToken(tok token.Token) {
	if len(s.pendingComment) > 0 {
		tok.Comments = s.pendingComment
		s.pendingComment = nil
	}
	s.tokens = append(s.tokens, tok)
}

// emitNewline appends a NewLine token unless the preceding token is
// already a NewLine, implementing the "consecutive out-of-bracket
// newlines collapse into a single NewLine token (the first one wins for
// subtype)" rule of spec.md §4.3.
func (s *Scanner) emitNewline(eol token.EOLSequence, start, length int) {
	if n := len(s.tokens); n > 0 && s.tokens[n-1].Kind == token.NewLine {
		return
	}
	s.appendToken(token.Token{Kind: token.NewLine, Start: s.abs(start), Length: length, EOL: eol})
}

// applyIndent implements spec.md §4.3's indent-stack comparison. amount is
// the new line's tab-expanded indentation; ambiguous is only meaningful
// when amount pushes a new Indent level.
func (s *Scanner) applyIndent(amount int, ambiguous bool) {
	top := s.indentStack[len(s.indentStack)-1]
	switch {
	case amount == top:
		return
	case amount > top:
		s.indentStack = append(s.indentStack, amount)
		s.appendToken(token.Token{
			Kind:              token.Indent,
			Start:             s.abs(s.offset),
			IndentAmount:      amount,
			IsIndentAmbiguous: ambiguous,
		})
	default:
		for {
			s.indentStack = s.indentStack[:len(s.indentStack)-1]
			newTop := s.indentStack[len(s.indentStack)-1]
			if newTop <= amount {
				matches := newTop == amount
				reported := newTop
				if !matches {
					reported = amount
				}
				s.appendToken(token.Token{
					Kind:          token.Dedent,
					Start:         s.abs(s.offset),
					IndentAmount:  reported,
					MatchesIndent: matches,
				})
				return
			}
			s.appendToken(token.Token{
				Kind:          token.Dedent,
				Start:         s.abs(s.offset),
				IndentAmount:  newTop,
				MatchesIndent: true,
			})
		}
	}
}

// dispatchToken implements the leading-character dispatch table of
// spec.md §4.3. It is only called with s.ch positioned on a non-
// whitespace, non-eof character.
func (s *Scanner) dispatchToken() {
	switch {
	case isLineBreak(s.ch):
		eol, start, length := s.scanLineBreak()
		if s.bracketDepth == 0 {
			s.emitNewline(eol, start, length)
		}
		s.lineStart = true

	case s.ch == '#':
		s.scanComment()

	case s.ch == '\\':
		if isLineBreakByte(byte(s.peekByte())) {
			s.next()
			s.scanLineBreak()
			return
		}
		start := s.offset
		s.next()
		s.appendToken(token.Token{Kind: token.Invalid, Start: s.abs(start), Length: s.offset - start})

	case s.ch >= '0' && s.ch <= '9':
		s.appendToken(s.scanNumber())

	case s.ch == '.' && s.peekByte() >= '0' && s.peekByte() <= '9':
		s.appendToken(s.scanNumber())

	case s.ch == '\'' || s.ch == '"':
		s.appendToken(s.scanString(0, 0))

	case isIdentifierStart(s.ch):
		if prefixLen, flags, ok := s.tryStringPrefix(); ok {
			s.appendToken(s.scanString(prefixLen, flags))
		} else {
			s.appendToken(s.scanIdentifier())
		}

	default:
		s.appendToken(s.scanOperatorOrPunctuation())
	}
}

// scanIdentifier reads a maximal identifier-continue run and classifies
// it against the keyword table (spec.md §4.3, §4.7).
func (s *Scanner) scanIdentifier() token.Token {
	start := s.offset
	for isIdentifierContinue(s.ch) {
		s.next()
	}
	text := string(s.src[start:s.offset])
	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: token.Keyword, Start: s.abs(start), Length: s.offset - start, KeywordType: kw, Value: text}
	}
	return token.Token{Kind: token.Identifier, Start: s.abs(start), Length: s.offset - start, Value: text}
}

// twoByte reports whether the upcoming two bytes match a, b. The operator
// scanner below does not call it; it inspects s.ch and peekByte directly.
func (s *Scanner) twoByte(a, b byte) bool {
	return s.peekByte() == a && s.peekByteAt(1) == b
}

// scanOperatorOrPunctuation implements the maximal-munch operator table
// and fixed punctuation of spec.md §4.3, adjusting bracketDepth for the
// six bracket characters.
func (s *Scanner) scanOperatorOrPunctuation() token.Token {
	start := s.offset
	ch := s.ch
	s.next()

	tok := func(kind token.Kind) token.Token {
		return token.Token{Kind: kind, Start: s.abs(start), Length: s.offset - start}
	}
	op := func(o token.OperatorType) token.Token {
		return token.Token{Kind: token.Operator, Start: s.abs(start), Length: s.offset - start, OperatorType: o}
	}

	switch ch {
	case '(':
		s.bracketDepth++
		return tok(token.OpenParenthesis)
	case ')':
		s.decBracketDepth()
		return tok(token.CloseParenthesis)
	case '[':
		s.bracketDepth++
		return tok(token.OpenBracket)
	case ']':
		s.decBracketDepth()
		return tok(token.CloseBracket)
	case '{':
		s.bracketDepth++
		return tok(token.OpenCurlyBrace)
	case '}':
		s.decBracketDepth()
		return tok(token.CloseCurlyBrace)
	case ',':
		return tok(token.Comma)
	case ';':
		return tok(token.Semicolon)

	case '.':
		if s.ch == '.' && s.peekByte() == '.' {
			s.next()
			s.next()
			return tok(token.Ellipsis)
		}
		return tok(token.Dot)

	case ':':
		if s.ch == '=' {
			s.next()
			return op(token.OpWalrus)
		}
		return tok(token.Colon)

	case '-':
		switch {
		case s.ch == '>':
			s.next()
			return tok(token.Arrow)
		case s.ch == '=':
			s.next()
			return op(token.OpSubtractEqual)
		default:
			return op(token.OpSubtract)
		}

	case '+':
		if s.ch == '=' {
			s.next()
			return op(token.OpAddEqual)
		}
		return op(token.OpAdd)

	case '~':
		return op(token.OpBitwiseInvert)

	case '%':
		if s.ch == '=' {
			s.next()
			return op(token.OpModuloEqual)
		}
		return op(token.OpModulo)

	case '^':
		if s.ch == '=' {
			s.next()
			return op(token.OpBitwiseXorEqual)
		}
		return op(token.OpBitwiseXor)

	case '&':
		if s.ch == '=' {
			s.next()
			return op(token.OpBitwiseAndEqual)
		}
		return op(token.OpBitwiseAnd)

	case '|':
		if s.ch == '=' {
			s.next()
			return op(token.OpBitwiseOrEqual)
		}
		return op(token.OpBitwiseOr)

	case '@':
		if s.ch == '=' {
			s.next()
			return op(token.OpMatrixMultiplyEqual)
		}
		return op(token.OpMatrixMultiply)

	case '=':
		if s.ch == '=' {
			s.next()
			return op(token.OpEqualEqual)
		}
		return op(token.OpAssign)

	case '!':
		if s.ch == '=' {
			s.next()
			return op(token.OpNotEqual)
		}
		return tok(token.Invalid)

	case '<':
		switch {
		case s.ch == '<':
			s.next()
			if s.ch == '=' {
				s.next()
				return op(token.OpLeftShiftEqual)
			}
			return op(token.OpLeftShift)
		case s.ch == '=':
			s.next()
			return op(token.OpLessEqual)
		default:
			return op(token.OpLess)
		}

	case '>':
		switch {
		case s.ch == '>':
			s.next()
			if s.ch == '=' {
				s.next()
				return op(token.OpRightShiftEqual)
			}
			return op(token.OpRightShift)
		case s.ch == '=':
			s.next()
			return op(token.OpGreaterEqual)
		default:
			return op(token.OpGreater)
		}

	case '*':
		switch {
		case s.ch == '*':
			s.next()
			if s.ch == '=' {
				s.next()
				return op(token.OpPowerEqual)
			}
			return op(token.OpPower)
		case s.ch == '=':
			s.next()
			return op(token.OpMultiplyEqual)
		default:
			return op(token.OpMultiply)
		}

	case '/':
		switch {
		case s.ch == '/':
			s.next()
			if s.ch == '=' {
				s.next()
				return op(token.OpFloorDivideEqual)
			}
			return op(token.OpFloorDivide)
		case s.ch == '=':
			s.next()
			return op(token.OpDivideEqual)
		default:
			return op(token.OpDivide)
		}

	default:
		return tok(token.Invalid)
	}
}

func (s *Scanner) decBracketDepth() {
	if s.bracketDepth > 0 {
		s.bracketDepth--
	}
}

// finish closes out the token stream: a trailing NewLine is synthesized
// first if the stream does not already end on one, then any indentation
// still open is dedented back to column zero, then an EndOfStream token is
// appended. This matches Python's own end-of-file tokenization (NEWLINE,
// then any trailing DEDENTs, then ENDMARKER) — spec.md invariant 3's
// "immediately preceded by a NewLine" describes the common case where no
// dedent is pending at end of file; when one is, the trailing Dedent run
// sits between the NewLine and EndOfStream rather than dropping it.
func (s *Scanner) finish() {
	if n := len(s.tokens); n == 0 || s.tokens[n-1].Kind != token.NewLine {
		s.appendToken(token.Token{Kind: token.NewLine, Start: s.abs(s.offset), EOL: token.EOLImplied})
	}
	if s.bracketDepth == 0 {
		s.applyIndent(0, false)
	}
	s.appendToken(token.Token{Kind: token.EndOfStream, Start: s.abs(s.offset)})
}
