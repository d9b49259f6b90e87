// Package lexer provides a generic, table-driven lexical analysis engine.
//
// An Engine holds an ordered list of recognizers and a skip function. Scanning
// repeatedly skips ignorable text, offers the remainder to each recognizer in
// registration order and keeps the first one that matches. The engine knows
// nothing about the token type; languages plug in their own T and recognizers.
//
// Ordering is critical: recognizers, and the patterns inside a Table, are
// tried first-match-wins rather than longest-match. Register more specific
// recognizers before more general ones (keywords before identifiers) and list
// longer patterns before their prefixes ("==" before "=").
//
// # Thread Safety
//
// An Engine is not safe for concurrent mutation. Call Add only while building
// the engine; once scanning starts the engine is read-only and may be shared by
// concurrent scans.
//
// # Example
//
//	eng := lexer.New(recognizers, lexer.SkipWhitespace)
//	matches, consumed, err := eng.ScanAll(nil, input)
//	if err != nil {
//	    // input[consumed:] could not be tokenized
//	}
package lexer

import (
	"fmt"
	"log/slog"
	"slices"
)

// Recognizer attempts to match one token at the very start of text.
//
// A match is reported as n > 0 with a nil error. "No match" is n == 0 with a
// nil error, in which case the engine moves on to the next recognizer. A
// non-nil error means the recognizer claimed the position but found it
// malformed, e.g. an unterminated string; error offsets are relative to text.
// A recognizer must never report a zero-length match.
type Recognizer[T any] interface {
	Recognize(text string) (tok T, n int, err error)
}

// RecognizerFunc adapts an ordinary function to the Recognizer interface.
type RecognizerFunc[T any] func(text string) (T, int, error)

// Recognize calls f(text).
func (f RecognizerFunc[T]) Recognize(text string) (T, int, error) {
	return f(text)
}

// Match records one recognized token and its absolute position in the input.
type Match[T any] struct {
	Token  T
	Offset int
	Len    int
}

// End returns the offset just past the match.
func (m Match[T]) End() int { return m.Offset + m.Len }

// Text returns the matched span of src, the input the match was produced from.
func (m Match[T]) Text(src string) string { return src[m.Offset:m.End()] }

// Engine drives recognizers over input text.
type Engine[T any] struct {
	recognizers []Recognizer[T]
	skip        SkipFunc
	logger      *slog.Logger
}

// New creates an engine trying recognizers in the given order and using skip
// between tokens. A nil skip function skips nothing.
func New[T any](recognizers []Recognizer[T], skip SkipFunc, opts ...Option) *Engine[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if skip == nil {
		skip = SkipNone
	}
	return &Engine[T]{
		recognizers: slices.Clone(recognizers),
		skip:        skip,
		logger:      o.logger,
	}
}

// Add appends r; it is tried after every recognizer registered before it.
// Add must not be called while a scan is running.
func (e *Engine[T]) Add(r Recognizer[T]) {
	e.recognizers = append(e.recognizers, r)
}

// Attempt tries each recognizer on text in order and returns the first match.
// It does not skip anything itself.
//
// When nothing matches, the error is the first failure reported by a
// recognizer, or an error of kind NoMatch if none reported one. Empty text
// yields an error of kind UnexpectedEndOfInput.
func (e *Engine[T]) Attempt(text string) (T, int, error) {
	var zero T
	if text == "" {
		return zero, 0, &Error{Kind: UnexpectedEndOfInput}
	}

	var failure error
	for _, r := range e.recognizers {
		tok, n, err := r.Recognize(text)
		if err != nil {
			if failure == nil {
				failure = err
			}
			continue
		}
		if n == 0 {
			continue
		}
		if n < 0 || n > len(text) {
			panic(fmt.Sprintf("lexer: recognizer %T consumed %d of %d bytes", r, n, len(text)))
		}
		return tok, n, nil
	}

	if failure != nil {
		return zero, 0, failure
	}
	return zero, 0, &Error{Kind: NoMatch}
}

// ScanOne skips leading text with the skip function and attempts one token on
// the remainder. skip is reported even when err is non-nil. Error offsets are
// relative to text.
func (e *Engine[T]) ScanOne(text string) (tok T, skip, n int, err error) {
	skip = e.skip(text)
	if skip < 0 || skip > len(text) {
		panic(fmt.Sprintf("lexer: skip function returned %d for %d bytes", skip, len(text)))
	}
	tok, n, err = e.Attempt(text[skip:])
	if err != nil {
		err = shiftError(err, skip)
	}
	return tok, skip, n, err
}

// ScanAll tokenizes text, appending a Match for every token to dst, and
// returns the extended slice together with the number of bytes consumed.
//
// Scanning stops at the first position where no token can be produced. The
// consumed count then stops short of len(text) and err describes the failure
// with an absolute offset. Trailing skippable text is consumed without error,
// so input made only of whitespace yields no matches, consumed == len(text)
// and a nil error.
func (e *Engine[T]) ScanAll(dst []Match[T], text string) ([]Match[T], int, error) {
	consumed := 0
	for consumed < len(text) {
		tok, skip, n, err := e.ScanOne(text[consumed:])
		if err != nil {
			if consumed+skip == len(text) {
				consumed = len(text)
				break
			}
			err = shiftError(err, consumed)
			e.logger.Debug("scan stopped",
				"offset", consumed+skip,
				"consumed", consumed,
				"tokens", len(dst),
				"error", err)
			return dst, consumed, err
		}
		dst = append(dst, Match[T]{Token: tok, Offset: consumed + skip, Len: n})
		consumed += skip + n
	}
	return dst, consumed, nil
}
