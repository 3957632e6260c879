// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner_test

import (
	"fmt"

	"github.com/aldebaran-lang/pyscan/scanner"
	"github.com/aldebaran-lang/pyscan/token"
)

func ExampleTokenize() {
	// src is the input that we want to tokenize. Unlike go/scanner's
	// ErrorHandler-based API, pyscan's Tokenize never reports an error:
	// every anomaly (an unterminated string, a stray backslash, ambiguous
	// indentation) is encoded directly in the token stream (spec.md §7).
	src := []byte("x = 1\n")

	out := scanner.Tokenize(src, 0, len(src), scanner.Config{})

	for _, tok := range out.TokenValues {
		fmt.Printf("%s\n", tok.Kind)
	}

	// output:
	// Identifier
	// Operator
	// Number
	// NewLine
	// EndOfStream
}

func ExampleUnescapeToken() {
	src := []byte(`"\x4d\x6f\x6f\x6e"`)
	out := scanner.Tokenize(src, 0, len(src), scanner.Config{})

	var str token.Token
	for _, tok := range out.TokenValues {
		if tok.Kind == token.String {
			str = tok
		}
	}

	u := scanner.UnescapeToken(str, nil)
	fmt.Println(u.Value)

	// output:
	// Moon
}
