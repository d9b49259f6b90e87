package lexer

import "unicode"

// SkipFunc reports how many leading bytes of text to bypass before the next
// token is attempted. It must return a value between 0 and len(text).
type SkipFunc func(text string) int

// SkipWhitespace skips every leading rune with the Unicode White_Space
// property. Invalid UTF-8 stops the run.
func SkipWhitespace(text string) int {
	for i, r := range text {
		if !unicode.Is(unicode.White_Space, r) {
			return i
		}
	}
	return len(text)
}

// SkipNone never skips anything.
func SkipNone(string) int { return 0 }
