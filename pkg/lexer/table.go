package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pattern pairs a literal text with the token it produces.
type Pattern[T any] struct {
	Text  string
	Token T
}

// Table is an ordered list of patterns matched first-hit-wins.
//
// Order is significant: a pattern must come before any shorter pattern that is
// a prefix of it ("==" before "="), otherwise the longer one can never match.
type Table[T any] []Pattern[T]

// Lookup returns the token of the first pattern that is a prefix of text,
// along with the pattern length.
func (t Table[T]) Lookup(text string) (T, int, bool) {
	for _, p := range t {
		if strings.HasPrefix(text, p.Text) {
			return p.Token, len(p.Text), true
		}
	}
	var zero T
	return zero, 0, false
}

// Unreachable lists the patterns of a first-hit table that can never match
// because an earlier pattern is a prefix of them.
func (t Table[T]) Unreachable() []string {
	var out []string
	for i, p := range t {
		for _, earlier := range t[:i] {
			if strings.HasPrefix(p.Text, earlier.Text) {
				out = append(out, p.Text)
				break
			}
		}
	}
	return out
}

func (t Table[T]) mustBeNonEmpty() {
	for i, p := range t {
		if p.Text == "" {
			panic(fmt.Sprintf("lexer: empty pattern at index %d", i))
		}
	}
}

// Fixed returns a recognizer matching the first pattern of table that is a
// literal prefix of the input. It panics if table contains an empty pattern.
func Fixed[T any](table Table[T]) Recognizer[T] {
	table.mustBeNonEmpty()
	return RecognizerFunc[T](func(text string) (T, int, error) {
		tok, n, _ := table.Lookup(text)
		return tok, n, nil
	})
}

// WordRune reports whether r continues a word: a letter or a decimal digit.
func WordRune(r rune) bool {
	return unicode.IsLetter(r) || ('0' <= r && r <= '9')
}

// Bounded is like Fixed, but a pattern only matches when the rune following it
// does not satisfy boundary, so the keyword "if" is not found inside "iffy".
// End of input always counts as a boundary. A rejected pattern does not stop
// the search; later patterns of the table are still tried. A nil boundary
// means WordRune.
func Bounded[T any](table Table[T], boundary func(rune) bool) Recognizer[T] {
	table.mustBeNonEmpty()
	if boundary == nil {
		boundary = WordRune
	}
	return RecognizerFunc[T](func(text string) (T, int, error) {
		for _, p := range table {
			if !strings.HasPrefix(text, p.Text) {
				continue
			}
			if r, size := utf8.DecodeRuneInString(text[len(p.Text):]); size > 0 && boundary(r) {
				continue
			}
			return p.Token, len(p.Text), nil
		}
		var zero T
		return zero, 0, nil
	})
}
