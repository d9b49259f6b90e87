package tokenizer

import (
	"testing"
)

// TestDigitValue tests digitValue helper function
func TestDigitValue(t *testing.T) {
	tests := []struct {
		input    byte
		expected int
	}{
		{'0', 0},
		{'7', 7},
		{'9', 9},
		{'a', 10},
		{'f', 15},
		{'A', 10},
		{'F', 15},
		{'z', 35},
		{'Z', 35},
		{'\'', 36},
		{'.', 36},
		{' ', 36},
	}

	for _, tt := range tests {
		result := digitValue(tt.input)
		if result != tt.expected {
			t.Errorf("digitValue(%c) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

// TestIsDecimalDigit tests isDecimalDigit helper function
func TestIsDecimalDigit(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{'0', true},
		{'5', true},
		{'9', true},
		{'a', false},
		{'_', false},
		{'٣', false}, // ARABIC-INDIC DIGIT THREE
	}

	for _, tt := range tests {
		result := isDecimalDigit(tt.input)
		if result != tt.expected {
			t.Errorf("isDecimalDigit(%c) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

// TestLookupBase tests radix prefix detection
func TestLookupBase(t *testing.T) {
	tests := []struct {
		input     string
		radix     int
		prefixLen int
	}{
		{"0b101", 2, 2},
		{"0B1", 2, 2},
		{"0o17", 8, 2},
		{"0O7", 8, 2},
		{"0x1F", 16, 2},
		{"0X", 16, 2},
		{"0", 10, 0},
		{"012", 10, 0},
		{"b101", 10, 0},
		{"", 10, 0},
	}

	for _, tt := range tests {
		radix, prefixLen := lookupBase(tt.input)
		if radix != tt.radix || prefixLen != tt.prefixLen {
			t.Errorf("lookupBase(%q) = (%d, %d), want (%d, %d)",
				tt.input, radix, prefixLen, tt.radix, tt.prefixLen)
		}
	}
}

// TestDecodeEscape tests escape sequence decoding
func TestDecodeEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
		n        int
	}{
		{`\n`, '\n', 2},
		{`\t`, '\t', 2},
		{`\r`, '\r', 2},
		{`\0`, 0, 2},
		{`\'`, '\'', 2},
		{`\"`, '"', 2},
		{`\\`, '\\', 2},
		{`\x41`, 'A', 4},
		{`\xfF`, 0xff, 4},
		{`\x410`, 'A', 4},
		{`\q`, 0, 0},
		{`n`, 0, 0},
		{``, 0, 0},
	}

	for _, tt := range tests {
		r, n, err := decodeEscape(tt.input)
		if err != nil {
			t.Errorf("decodeEscape(%q) error: %v", tt.input, err)
			continue
		}
		if r != tt.expected || n != tt.n {
			t.Errorf("decodeEscape(%q) = (%q, %d), want (%q, %d)", tt.input, r, n, tt.expected, tt.n)
		}
	}
}

// TestTables_NoUnreachablePatterns tests that no table entry is shadowed by an
// earlier prefix
func TestTables_NoUnreachablePatterns(t *testing.T) {
	tables := map[string][]string{
		"separators": separators.Unreachable(),
		"operators":  operators.Unreachable(),
		"escapes":    escapes.Unreachable(),
	}

	for name, unreachable := range tables {
		if len(unreachable) != 0 {
			t.Errorf("%s: unreachable patterns %q", name, unreachable)
		}
	}
}

// TestKind_String tests kind names
func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindInvalid, "Invalid"},
		{KindOperator, "Operator"},
		{KindFloat, "Float"},
		{KindIdentifier, "Identifier"},
		{Kind(200), "Kind(200)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

// TestSymbol_String tests every declared symbol has a name
func TestSymbol_String(t *testing.T) {
	for s := NoSymbol; s <= ThisObj; s++ {
		if symbolNames[s] == "" {
			t.Errorf("symbol %d has no name", s)
		}
	}
	if got := Symbol(250).String(); got != "Symbol(250)" {
		t.Errorf("Symbol(250).String() = %q", got)
	}
}

// TestToken_String tests token formatting per kind
func TestToken_String(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
	}{
		{operator(Equals), "Operator(Equals)"},
		{separator(Scope), "Separator(Scope)"},
		{keyword(ThisType), "Keyword(ThisType)"},
		{Token{Kind: KindBoolean, Bool: true}, "Boolean(true)"},
		{Token{Kind: KindCharacter, Char: '\n'}, `Character('\n')`},
		{Token{Kind: KindInteger, Text: "0x1F"}, `Integer("0x1F")`},
		{Token{Kind: KindString, Text: "a\"b"}, `String("a\"b")`},
		{Token{Kind: KindIdentifier, Text: "x"}, `Identifier("x")`},
		{Token{}, "Invalid"},
	}

	for _, tt := range tests {
		if got := tt.token.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

// TestToken_NameAndIs tests symbol lookups on tokens
func TestToken_NameAndIs(t *testing.T) {
	eq := operator(Equals)
	if eq.Name() != "Equals" {
		t.Errorf("Name() = %q, want Equals", eq.Name())
	}
	if !eq.Is(Equals) || eq.Is(Assign) {
		t.Errorf("Is() mismatch for %v", eq)
	}

	id := Token{Kind: KindIdentifier, Text: "x"}
	if id.Name() != "Identifier" {
		t.Errorf("Name() = %q, want Identifier", id.Name())
	}
	if id.Is(NoSymbol) {
		t.Errorf("identifier must not match NoSymbol")
	}
}
