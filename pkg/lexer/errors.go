package lexer

import "fmt"

// ErrorKind classifies why a position in the input did not produce a token.
type ErrorKind uint8

const (
	// NoMatch means no registered recognizer accepted the input.
	NoMatch ErrorKind = iota
	// UnterminatedLiteral means a quoted literal was opened but the input
	// ended before its closing quote.
	UnterminatedLiteral
	// UnexpectedEndOfInput means the input ended where more text was required.
	UnexpectedEndOfInput
	// InvalidEscapeSequence means an escape sequence was recognized by its
	// introducer but its body is malformed.
	InvalidEscapeSequence
)

var errorKindNames = [...]string{
	NoMatch:               "no match",
	UnterminatedLiteral:   "unterminated literal",
	UnexpectedEndOfInput:  "unexpected end of input",
	InvalidEscapeSequence: "invalid escape sequence",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error describes a failed scan position.
//
// Offset is a byte offset relative to the text passed to the call that
// returned the error. Engine.ScanAll rewrites it to an absolute offset into
// the scanned input.
type Error struct {
	Kind   ErrorKind
	Offset int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

// Is reports whether target is an *Error of the same kind. Offsets and
// details are ignored so the sentinel values below match any position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrNoMatch               = &Error{Kind: NoMatch}
	ErrUnterminatedLiteral   = &Error{Kind: UnterminatedLiteral}
	ErrUnexpectedEndOfInput  = &Error{Kind: UnexpectedEndOfInput}
	ErrInvalidEscapeSequence = &Error{Kind: InvalidEscapeSequence}
)

// Errorf returns an *Error of the given kind at offset with a formatted detail.
func Errorf(kind ErrorKind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// shiftError moves the offset of err forward by base. Errors that are not
// *Error pass through untouched.
func shiftError(err error, base int) error {
	le, ok := err.(*Error)
	if !ok || base == 0 {
		return err
	}
	shifted := *le
	shifted.Offset += base
	return &shifted
}
