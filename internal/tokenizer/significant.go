package tokenizer

import (
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-lex/pkg/lexer"
)

// SignificantTokenizer wraps a shape-core tokenizer and drops whitespace
// tokens, so a parser only sees tokens that carry meaning.
//
// Example:
//
//	Input:
//	  var x = 1;
//
//	Base tokens:
//	  "var", Whitespace, "x", Whitespace, "=", Whitespace, "1", ";"
//
//	Tokens emitted:
//	  "var", "x", "=", "1", ";"
type SignificantTokenizer struct {
	base    shapetokenizer.Tokenizer
	pending *shapetokenizer.Token // token read by Peek, not yet returned
	skipped int                   // whitespace tokens dropped since the last reset
}

// NewSignificantTokenizer wraps base.
func NewSignificantTokenizer(base shapetokenizer.Tokenizer) *SignificantTokenizer {
	return &SignificantTokenizer{base: base}
}

// NextToken returns the next non-whitespace token.
func (st *SignificantTokenizer) NextToken() (*shapetokenizer.Token, bool) {
	if st.pending != nil {
		token := st.pending
		st.pending = nil
		return token, true
	}
	for {
		token, ok := st.base.NextToken()
		if !ok {
			return nil, false
		}
		if token.Kind() == lexer.KindWhitespace {
			st.skipped++
			continue
		}
		return token, true
	}
}

// Peek returns the next non-whitespace token without consuming it.
func (st *SignificantTokenizer) Peek() (*shapetokenizer.Token, bool) {
	if st.pending != nil {
		return st.pending, true
	}
	token, ok := st.NextToken()
	if !ok {
		return nil, false
	}
	st.pending = token
	return token, true
}

// Skipped returns the number of whitespace tokens dropped since the last
// initialization.
func (st *SignificantTokenizer) Skipped() int {
	return st.skipped
}

// Initialize initializes the tokenizer with a string input.
func (st *SignificantTokenizer) Initialize(input string) {
	st.base.Initialize(input)
	st.Reset()
}

// InitializeFromStream initializes the tokenizer with a pre-configured stream.
func (st *SignificantTokenizer) InitializeFromStream(stream shapetokenizer.Stream) {
	st.base.InitializeFromStream(stream)
	st.Reset()
}

// Reset clears the lookahead and the skipped count.
func (st *SignificantTokenizer) Reset() {
	st.pending = nil
	st.skipped = 0
}
