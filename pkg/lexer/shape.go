package lexer

import (
	"unsafe"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// KindWhitespace is the kind of the tokens emitted by ShapeWhitespace.
const KindWhitespace = "Whitespace"

// ShapeMatcher adapts r to a shape-core matcher so recognizers can be
// registered with a shape-core tokenizer. kind names the shape token for a
// recognized T; the token value is the raw lexeme.
//
// Recognizers look at the whole remaining input, so only streams implementing
// shapetokenizer.ByteStream are matched. The remaining bytes are viewed in
// place; only the emitted lexeme is copied.
func ShapeMatcher[T any](r Recognizer[T], kind func(T) string) shapetokenizer.Matcher {
	return func(stream shapetokenizer.Stream) *shapetokenizer.Token {
		bs, ok := stream.(shapetokenizer.ByteStream)
		if !ok {
			return nil
		}
		text := remaining(bs)
		if text == "" {
			return nil
		}
		tok, n, err := r.Recognize(text)
		if err != nil || n <= 0 || n > len(text) {
			return nil
		}
		lexeme := []rune(text[:n])
		if !advance(bs, n) {
			return nil
		}
		return shapetokenizer.NewToken(kind(tok), lexeme)
	}
}

// ShapeWhitespace adapts skip to a shape-core matcher emitting KindWhitespace
// tokens, for use as the whitespace matcher of a shape-core tokenizer.
func ShapeWhitespace(skip SkipFunc) shapetokenizer.Matcher {
	return func(stream shapetokenizer.Stream) *shapetokenizer.Token {
		bs, ok := stream.(shapetokenizer.ByteStream)
		if !ok {
			return nil
		}
		text := remaining(bs)
		n := skip(text)
		if n <= 0 || n > len(text) {
			return nil
		}
		lexeme := []rune(text[:n])
		if !advance(bs, n) {
			return nil
		}
		return shapetokenizer.NewToken(KindWhitespace, lexeme)
	}
}

func advance(bs shapetokenizer.ByteStream, n int) bool {
	for i := 0; i < n; i++ {
		if _, ok := bs.NextByte(); !ok {
			return false
		}
	}
	return true
}

// remaining returns the unread bytes of bs as a string without copying them.
// RemainingBytes is a read-only view that the stream never mutates.
func remaining(bs shapetokenizer.ByteStream) string {
	b := bs.RemainingBytes()
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
