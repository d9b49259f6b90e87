package tokenizer

import "github.com/shapestone/shape-lex/pkg/lexer"

// Pattern tables are matched first-hit-wins. Every pattern must come before
// the shorter patterns that are prefixes of it ("::" before ":", "==" before
// "="); TestTables_NoUnreachablePatterns guards this.

var separators = lexer.Table[Token]{
	{".", separator(Period)},
	{",", separator(Comma)},
	{"::", separator(Scope)},
	{":", separator(Colon)},
	{";", separator(Semicolon)},
	{"(", separator(LParen)},
	{")", separator(RParen)},
	{"[", separator(LBracket)},
	{"]", separator(RBracket)},
	{"{", separator(LBrace)},
	{"}", separator(RBrace)},
}

var operators = lexer.Table[Token]{
	{"->", operator(ReturnType)},
	{"==", operator(Equals)},
	{"<>", operator(NotEqual)},
	{">=", operator(GreaterEqual)},
	{"<=", operator(LessEqual)},
	{"++", operator(Increment)},
	{"--", operator(Decrement)},
	{"!=", operator(ExclamationAssign)},
	{"&=", operator(AmpersandAssign)},
	{"|=", operator(PipeAssign)},
	{"^=", operator(CaretAssign)},
	{"+=", operator(PlusAssign)},
	{"-=", operator(MinusAssign)},
	{"*=", operator(StarAssign)},
	{"/=", operator(SlashAssign)},
	{"%=", operator(PercentAssign)},
	{"~=", operator(TildeAssign)},
	{"@=", operator(AtAssign)},
	{"#=", operator(PoundAssign)},
	{"$=", operator(DollarAssign)},
	{"=", operator(Assign)},
	{">", operator(Greater)},
	{"<", operator(Less)},
	{"!", operator(Exclamation)},
	{"&", operator(Ampersand)},
	{"|", operator(Pipe)},
	{"^", operator(Caret)},
	{"+", operator(Plus)},
	{"-", operator(Minus)},
	{"*", operator(Star)},
	{"/", operator(Slash)},
	{"%", operator(Percent)},
	{"~", operator(Tilde)},
	{"@", operator(At)},
	{"#", operator(Pound)},
	{"$", operator(Dollar)},
}

// keywords and booleans only match at a word boundary.
var keywords = lexer.Table[Token]{
	{"module", keyword(Module)},
	{"import", keyword(Import)},
	{"export", keyword(Export)},
	{"var", keyword(Var)},
	{"fun", keyword(Fun)},
	{"return", keyword(Return)},
	{"as", keyword(As)},
	{"is", keyword(Is)},
	{"type", keyword(Type)},
	{"match", keyword(Match)},
	{"if", keyword(If)},
	{"else", keyword(Else)},
	{"_", keyword(Discard)},
	{"This", keyword(ThisType)},
	{"this", keyword(ThisObj)},
}

var booleans = lexer.Table[Token]{
	{"true", Token{Kind: KindBoolean, Bool: true}},
	{"false", Token{Kind: KindBoolean, Bool: false}},
}

// escapes decodes the fixed escape sequences of character and string
// literals. Hex escapes are handled separately by decodeEscape.
var escapes = lexer.Table[rune]{
	{`\'`, '\''},
	{`\"`, '"'},
	{`\\`, '\\'},
	{`\0`, 0},
	{`\t`, '\t'},
	{`\r`, '\r'},
	{`\n`, '\n'},
}

const (
	charQuote       = "'"
	stringQuote     = `"`
	hexEscape       = `\x`
	hexEscapeDigits = 2

	digitSeparator = '\''
	decimalPoint   = '.'
)

// base maps literal prefixes to a radix.
type base struct {
	prefixes []string
	radix    int
}

var bases = []base{
	{[]string{"0b", "0B"}, 2},
	{[]string{"0o", "0O"}, 8},
	{[]string{"0x", "0X"}, 16},
}

// lookupBase returns the radix and prefix length of the first base whose
// prefix starts text, or radix 10 with no prefix.
func lookupBase(text string) (radix, prefixLen int) {
	for _, b := range bases {
		for _, p := range b.prefixes {
			if len(text) >= len(p) && text[:len(p)] == p {
				return b.radix, len(p)
			}
		}
	}
	return 10, 0
}
