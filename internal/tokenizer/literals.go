package tokenizer

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-lex/pkg/lexer"
)

// CharRecognizer matches character literals.
//
// Grammar:
//
//	Character = "'" ( EscapeSequence | AnyRune ) "'" ;
//	EscapeSequence = "\\" ( "'" | '"' | "\\" | "0" | "t" | "r" | "n" ) | HexEscape ;
//	HexEscape = "\\x" HexDigit HexDigit ;
//
// A literal whose closing quote does not directly follow the body is not a
// match, and neither is an empty literal or a body that is not valid UTF-8.
// Input ending before the closing quote is an unterminated literal.
func CharRecognizer() lexer.Recognizer[Token] {
	return lexer.RecognizerFunc[Token](recognizeChar)
}

func recognizeChar(text string) (Token, int, error) {
	if !strings.HasPrefix(text, charQuote) {
		return Token{}, 0, nil
	}
	pos := len(charQuote)
	if pos == len(text) {
		return Token{}, 0, lexer.Errorf(lexer.UnterminatedLiteral, 0, "character literal")
	}

	r, n, escErr := decodeEscape(text[pos:])
	if escErr != nil {
		escErr.Offset += pos
		return Token{}, 0, escErr
	}
	escaped := n > 0
	if !escaped {
		r, n = utf8.DecodeRuneInString(text[pos:])
		if r == utf8.RuneError && n == 1 {
			return Token{}, 0, nil
		}
	}
	pos += n

	if pos == len(text) {
		if !escaped && text[pos-n:pos] == charQuote {
			// '' is an empty literal, not an open one
			return Token{}, 0, nil
		}
		return Token{}, 0, lexer.Errorf(lexer.UnterminatedLiteral, 0, "character literal")
	}
	if !strings.HasPrefix(text[pos:], charQuote) {
		return Token{}, 0, nil
	}
	pos += len(charQuote)
	return Token{Kind: KindCharacter, Char: r}, pos, nil
}

// StringRecognizer matches string literals of any length.
//
// Grammar:
//
//	String = '"' { EscapeSequence | AnyRune } '"' ;
//
// Escape sequences are those of CharRecognizer; a backslash that does not
// start one is kept verbatim. As with characters, a body that is not valid
// UTF-8 is not a match. The token text is the decoded contents without the
// quotes. Input ending before the closing quote is an unterminated literal
// reported at the opening quote.
func StringRecognizer() lexer.Recognizer[Token] {
	return lexer.RecognizerFunc[Token](recognizeString)
}

func recognizeString(text string) (Token, int, error) {
	if !strings.HasPrefix(text, stringQuote) {
		return Token{}, 0, nil
	}

	var value strings.Builder
	pos := len(stringQuote)
	for {
		// Jump over the literal run up to the next quote or backslash
		offset := -1
		if pos < len(text) {
			offset = shapetokenizer.FindEscapeOrQuote(bytesOf(text[pos:]))
		}
		if offset == -1 {
			return Token{}, 0, lexer.Errorf(lexer.UnterminatedLiteral, 0, "string literal")
		}
		run := text[pos : pos+offset]
		if !utf8.ValidString(run) {
			return Token{}, 0, nil
		}
		value.WriteString(run)
		pos += offset
		rest := text[pos:]

		if strings.HasPrefix(rest, stringQuote) {
			pos += len(stringQuote)
			return Token{Kind: KindString, Text: value.String()}, pos, nil
		}

		r, n, escErr := decodeEscape(rest)
		if escErr != nil {
			escErr.Offset += pos
			return Token{}, 0, escErr
		}
		if n > 0 {
			value.WriteRune(r)
			pos += n
			continue
		}

		// Unknown escape, keep the backslash
		value.WriteByte('\\')
		pos++
	}
}

// bytesOf views s as a byte slice without copying. The slice must not be
// modified.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// decodeEscape decodes the escape sequence at the start of text. It returns
// n == 0 when text does not start with one. Error offsets are relative to text.
func decodeEscape(text string) (r rune, n int, err *lexer.Error) {
	if r, n, ok := escapes.Lookup(text); ok {
		return r, n, nil
	}
	if !strings.HasPrefix(text, hexEscape) {
		return 0, 0, nil
	}

	digits := text[len(hexEscape):]
	for i := 0; i < hexEscapeDigits; i++ {
		if i == len(digits) {
			return 0, 0, lexer.Errorf(lexer.UnexpectedEndOfInput, len(text),
				"hex escape needs %d digits", hexEscapeDigits)
		}
		d := digitValue(digits[i])
		if d >= 16 {
			return 0, 0, lexer.Errorf(lexer.InvalidEscapeSequence, 0,
				"invalid hex digit %q", digits[i])
		}
		r = r<<4 | rune(d)
	}
	return r, len(hexEscape) + hexEscapeDigits, nil
}
