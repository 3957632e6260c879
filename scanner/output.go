package scanner

import "github.com/aldebaran-lang/pyscan/token"

// Output is the TokenizerOutput described in spec.md §3: the token range
// collection, the physical-line range collection, and the predominant
// EOL/indent styles observed while scanning.
type Output struct {
	Tokens            *token.RangeCollection
	TokenValues       []token.Token
	Lines             *token.RangeCollection
	PredominantEOL    token.EOLSequence
	PredominantIndent string
}

// Tokenize implements spec.md §5: a pure function from a byte slice (plus
// an offset/length window and Config) to a TokenizerOutput value.
func Tokenize(content []byte, startOffset, length int, cfg Config) *Output {
	src := content[startOffset : startOffset+length]
	s := newScanner(src, startOffset, cfg)
	s.trace("tokenize: %d bytes at offset %d", length, startOffset)
	s.run()
	return s.buildOutput()
}

func (s *Scanner) buildOutput() *Output {
	ranges := make([]token.TextRange, len(s.tokens))
	for i, t := range s.tokens {
		ranges[i] = token.TextRange{Start: t.Start, Length: t.Length}
	}

	lineRanges := make([]token.TextRange, 0, len(s.lineStarts))
	for i := 0; i < len(s.lineStarts); i++ {
		start := s.lineStarts[i]
		end := len(s.src)
		if i+1 < len(s.lineStarts) {
			end = s.lineStarts[i+1]
		}
		lineRanges = append(lineRanges, token.TextRange{Start: s.abs(start), Length: end - start})
	}

	return &Output{
		Tokens:            token.NewRangeCollection(ranges),
		TokenValues:       s.tokens,
		Lines:             token.NewRangeCollection(lineRanges),
		PredominantEOL:    predominantEOL(s.eolCounts),
		PredominantIndent: predominantIndent(s.indentStyles),
	}
}

// predominantEOL picks the most frequently observed EOLSequence, breaking
// ties toward LF (the common case, and a stable default for inputs with
// no line terminators at all).
func predominantEOL(counts map[token.EOLSequence]int) token.EOLSequence {
	best := token.EOLLineFeed
	bestCount := -1
	for _, eol := range []token.EOLSequence{token.EOLLineFeed, token.EOLCarriageReturnLineFeed, token.EOLCarriageReturn} {
		if c := counts[eol]; c > bestCount {
			best = eol
			bestCount = c
		}
	}
	return best
}

// predominantIndent picks the most frequently observed leading-whitespace
// string, counting the full leading whitespace of every line measured
// outside brackets that has any (blank and comment-only lines included).
// Empty when no such line was seen. Ties go to whichever entry map
// iteration reaches first, so they are not resolved deterministically.
func predominantIndent(styles map[string]int) string {
	best := ""
	bestCount := 0
	for style, count := range styles {
		if count > bestCount {
			best = style
			bestCount = count
		}
	}
	return best
}
