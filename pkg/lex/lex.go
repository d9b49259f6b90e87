// Package lex tokenizes source text of the reference language.
//
// The language has separators, operators, keywords, booleans, integer and
// float literals (with radix prefixes and ' digit separators), character and
// string literals with escape sequences, and identifiers. Whitespace between
// tokens is skipped. Every token is reported with its byte offset and length,
// so the source can be reconstructed from the records and the skipped gaps.
//
// # Thread Safety
//
// Tokenize, TokenizeReader and Validate are safe for concurrent use. Each call
// builds its own engine. An engine returned by NewLexer may be shared by
// concurrent scans as long as nobody calls Add on it.
//
// # Example usage
//
//	matches, err := lex.Tokenize(`var x : char = '\n';`)
//	if err != nil {
//	    var lexErr *lexer.Error
//	    if errors.As(err, &lexErr) {
//	        // lexErr.Offset is the byte offset of the failure
//	    }
//	}
//	for _, m := range matches {
//	    fmt.Println(m.Offset, m.Token)
//	}
package lex

import (
	"fmt"
	"io"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-lex/internal/tokenizer"
	"github.com/shapestone/shape-lex/pkg/lexer"
)

type (
	// Token is a lexical token of the language.
	Token = tokenizer.Token
	// Kind is the lexical category of a token.
	Kind = tokenizer.Kind
	// Symbol identifies a separator, operator or keyword.
	Symbol = tokenizer.Symbol
	// Match is a token with its byte offset and length in the input.
	Match = lexer.Match[tokenizer.Token]
	// SignificantTokenizer is a shape-core tokenizer view without whitespace.
	SignificantTokenizer = tokenizer.SignificantTokenizer
)

const (
	KindSeparator  = tokenizer.KindSeparator
	KindOperator   = tokenizer.KindOperator
	KindKeyword    = tokenizer.KindKeyword
	KindBoolean    = tokenizer.KindBoolean
	KindInteger    = tokenizer.KindInteger
	KindFloat      = tokenizer.KindFloat
	KindCharacter  = tokenizer.KindCharacter
	KindString     = tokenizer.KindString
	KindIdentifier = tokenizer.KindIdentifier
)

// NewLexer returns an engine configured with the language recognizers. Use it
// to scan incrementally with ScanOne or to register extra recognizers with Add.
//
// Example:
//
//	eng := lex.NewLexer(lexer.WithLogger(slog.Default()))
//	tok, skip, n, err := eng.ScanOne("  return x;")
//	// tok is Keyword(Return), skip is 2, n is 6
func NewLexer(opts ...lexer.Option) *lexer.Engine[Token] {
	return tokenizer.NewLexer(opts...)
}

// NewShapeTokenizer returns a shape-core tokenizer running the language
// recognizers, for parsers built on shape-core.
//
// Token kinds are symbol names for fixed tokens ("Equals", "If") and kind
// names otherwise ("Integer", "Identifier"); values are the raw lexemes.
// Whitespace is emitted as lexer.KindWhitespace tokens. Streams must
// implement shapetokenizer.ByteStream, as the streams of
// shapetokenizer.NewStream do.
//
// Example:
//
//	tok := lex.NewShapeTokenizer()
//	tok.InitializeFromStream(shapetokenizer.NewStream("x == 1"))
//	for {
//	    token, ok := tok.NextToken()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(token.Kind(), token.ValueString())
//	}
func NewShapeTokenizer() shapetokenizer.Tokenizer {
	return tokenizer.NewShapeTokenizer()
}

// NewSignificantTokenizer wraps base so that whitespace tokens are dropped.
// It adds one token of lookahead with Peek.
//
// Example:
//
//	st := lex.NewSignificantTokenizer(lex.NewShapeTokenizer())
//	st.Initialize("var x = 1;")
//	token, _ := st.Peek() // "var"
func NewSignificantTokenizer(base shapetokenizer.Tokenizer) *SignificantTokenizer {
	return tokenizer.NewSignificantTokenizer(base)
}

// Tokenize scans the whole input and returns its tokens in source order.
//
// When the input cannot be tokenized completely, Tokenize returns the tokens
// recognized before the failure together with an error wrapping a
// *lexer.Error. errors.Is matches the error against the lexer sentinels:
//
//	_, err := lex.Tokenize(`s = "abc`)
//	errors.Is(err, lexer.ErrUnterminatedLiteral) // true
//
// Trailing whitespace is not an error.
func Tokenize(input string, opts ...lexer.Option) ([]Match, error) {
	matches, _, err := NewLexer(opts...).ScanAll(nil, input)
	if err != nil {
		return matches, fmt.Errorf("tokenize: %w", err)
	}
	return matches, nil
}

// TokenizeReader reads r to the end and tokenizes its contents.
//
// The reader is consumed completely before scanning starts; offsets in the
// returned records and errors are byte offsets into the data read.
func TokenizeReader(r io.Reader, opts ...lexer.Option) ([]Match, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Tokenize(string(data), opts...)
}

// Validate checks that input tokenizes completely.
//
// Returns nil if every byte of input is part of a token or skipped
// whitespace, or the error Tokenize would return.
//
// Example:
//
//	if err := lex.Validate(src); err != nil {
//	    fmt.Printf("Invalid source: %v\n", err)
//	}
func Validate(input string) error {
	_, err := Tokenize(input)
	return err
}
