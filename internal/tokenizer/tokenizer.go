package tokenizer

import (
	"unicode"
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-lex/pkg/lexer"
)

// Recognizers returns the recognizers of the language in registration order.
//
// Ordering is critical:
// 1. Separators (before operators; "::" is a separator)
// 2. Operators ("-" before numbers, so -17 is Minus followed by 17)
// 3. Keywords (before identifiers, rejected inside longer words)
// 4. Booleans (before identifiers)
// 5. Numbers
// 6. Character literals (after numbers, which use ' as digit separator)
// 7. String literals
// 8. Identifiers (last, matches any remaining word)
func Recognizers() []lexer.Recognizer[Token] {
	return []lexer.Recognizer[Token]{
		lexer.Fixed(separators),
		lexer.Fixed(operators),
		lexer.Bounded(keywords, lexer.WordRune),
		lexer.Bounded(booleans, lexer.WordRune),
		NumberRecognizer(),
		CharRecognizer(),
		StringRecognizer(),
		IdentifierRecognizer(),
	}
}

// NewLexer creates an engine for the language that skips Unicode whitespace
// between tokens.
func NewLexer(opts ...lexer.Option) *lexer.Engine[Token] {
	return lexer.New(Recognizers(), lexer.SkipWhitespace, opts...)
}

// NewShapeTokenizer creates a shape-core tokenizer running the same
// recognizers, for consumers built on shape-core. Token kinds are Token.Name
// values ("Equals", "If", "Integer", ...) and token values are raw lexemes;
// whitespace is emitted as lexer.KindWhitespace tokens.
func NewShapeTokenizer() shapetokenizer.Tokenizer {
	recs := Recognizers()
	matchers := make([]shapetokenizer.Matcher, 0, len(recs)+1)
	matchers = append(matchers, lexer.ShapeWhitespace(lexer.SkipWhitespace))
	for _, r := range recs {
		matchers = append(matchers, lexer.ShapeMatcher(r, Token.Name))
	}
	return shapetokenizer.NewTokenizerWithoutWhitespace(matchers...)
}

// NumberRecognizer matches integer and float literals.
//
// Grammar:
//
//	Number = [ Prefix ] Digit { Digit | "'" | "." } ;
//	Prefix = "0b" | "0B" | "0o" | "0O" | "0x" | "0X" ;
//
// Digits are those of the prefix radix (10 without a prefix). At most one
// decimal point is accepted, in radix 10 only. A separator may not start the
// literal, follow another separator or end the literal. The token text is the
// whole literal, prefix and separators included; converting it to a value is
// left to later stages.
//
// Examples: 42, 0x1F, 0b1010'0101, 12'345.678'9, 1.
func NumberRecognizer() lexer.Recognizer[Token] {
	return lexer.RecognizerFunc[Token](recognizeNumber)
}

func recognizeNumber(text string) (Token, int, error) {
	radix, start := lookupBase(text)
	digits := text[start:]

	consumed := 0
	point := false
	afterSeparator := true // no separator before the first digit
scan:
	for consumed < len(digits) {
		c := digits[consumed]
		switch {
		case digitValue(c) < radix:
			afterSeparator = false
		case c == digitSeparator && !afterSeparator:
			afterSeparator = true
		case c == decimalPoint && radix == 10 && !point && consumed > 0:
			point = true
		default:
			break scan
		}
		consumed++
	}

	if consumed == 0 || afterSeparator {
		return Token{}, 0, nil
	}

	n := start + consumed
	kind := KindInteger
	if point {
		kind = KindFloat
	}
	return Token{Kind: kind, Text: text[:n]}, n, nil
}

// digitValue returns the value of an ASCII digit in radix up to 36, or a value
// no radix accepts.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// IdentifierRecognizer matches identifiers.
//
// Grammar:
//
//	Identifier = ( "_" | Letter ) { "_" | Letter | DecimalDigit } ;
//
// Letters are Unicode letters; digits are ASCII 0-9. The end of input
// terminates an identifier like any other non-identifier rune.
func IdentifierRecognizer() lexer.Recognizer[Token] {
	return lexer.RecognizerFunc[Token](recognizeIdentifier)
}

func recognizeIdentifier(text string) (Token, int, error) {
	n := 0
	for i, r := range text {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !isDecimalDigit(r)) {
			break
		}
		n = i + utf8.RuneLen(r)
	}
	if n == 0 {
		return Token{}, 0, nil
	}
	return Token{Kind: KindIdentifier, Text: text[:n]}, n, nil
}

func isDecimalDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
