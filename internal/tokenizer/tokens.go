// Package tokenizer provides the token model and recognizer set of the
// reference language, built on the generic engine in pkg/lexer.
package tokenizer

import "fmt"

// Kind is the lexical category of a token.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSeparator
	KindOperator
	KindKeyword
	KindBoolean    // Bool holds the value
	KindInteger    // Text holds the raw literal, e.g. "0x1F", "12'345"
	KindFloat      // Text holds the raw literal, e.g. "12'345.678'9"
	KindCharacter  // Char holds the decoded rune
	KindString     // Text holds the decoded contents, quotes removed
	KindIdentifier // Text holds the identifier
)

var kindNames = [...]string{
	KindInvalid:    "Invalid",
	KindSeparator:  "Separator",
	KindOperator:   "Operator",
	KindKeyword:    "Keyword",
	KindBoolean:    "Boolean",
	KindInteger:    "Integer",
	KindFloat:      "Float",
	KindCharacter:  "Character",
	KindString:     "String",
	KindIdentifier: "Identifier",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Symbol identifies a fixed token: a separator, operator or keyword.
type Symbol uint8

const (
	NoSymbol Symbol = iota

	// Separators
	Period    // .
	Comma     // ,
	Scope     // ::
	Colon     // :
	Semicolon // ;
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }

	// Operators
	ReturnType        // ->
	Equals            // ==
	NotEqual          // <>
	GreaterEqual      // >=
	LessEqual         // <=
	Increment         // ++
	Decrement         // --
	ExclamationAssign // !=
	AmpersandAssign   // &=
	PipeAssign        // |=
	CaretAssign       // ^=
	PlusAssign        // +=
	MinusAssign       // -=
	StarAssign        // *=
	SlashAssign       // /=
	PercentAssign     // %=
	TildeAssign       // ~=
	AtAssign          // @=
	PoundAssign       // #=
	DollarAssign      // $=
	Assign            // =
	Greater           // >
	Less              // <
	Exclamation       // !
	Ampersand         // &
	Pipe              // |
	Caret             // ^
	Plus              // +
	Minus             // -
	Star              // *
	Slash             // /
	Percent           // %
	Tilde             // ~
	At                // @
	Pound             // #
	Dollar            // $

	// Keywords
	Module   // module
	Import   // import
	Export   // export
	Var      // var
	Fun      // fun
	Return   // return
	As       // as
	Is       // is
	Type     // type
	Match    // match
	If       // if
	Else     // else
	Discard  // _
	ThisType // This
	ThisObj  // this
)

var symbolNames = [...]string{
	NoSymbol:          "NoSymbol",
	Period:            "Period",
	Comma:             "Comma",
	Scope:             "Scope",
	Colon:             "Colon",
	Semicolon:         "Semicolon",
	LParen:            "LParen",
	RParen:            "RParen",
	LBracket:          "LBracket",
	RBracket:          "RBracket",
	LBrace:            "LBrace",
	RBrace:            "RBrace",
	ReturnType:        "ReturnType",
	Equals:            "Equals",
	NotEqual:          "NotEqual",
	GreaterEqual:      "GreaterEqual",
	LessEqual:         "LessEqual",
	Increment:         "Increment",
	Decrement:         "Decrement",
	ExclamationAssign: "ExclamationAssign",
	AmpersandAssign:   "AmpersandAssign",
	PipeAssign:        "PipeAssign",
	CaretAssign:       "CaretAssign",
	PlusAssign:        "PlusAssign",
	MinusAssign:       "MinusAssign",
	StarAssign:        "StarAssign",
	SlashAssign:       "SlashAssign",
	PercentAssign:     "PercentAssign",
	TildeAssign:       "TildeAssign",
	AtAssign:          "AtAssign",
	PoundAssign:       "PoundAssign",
	DollarAssign:      "DollarAssign",
	Assign:            "Assign",
	Greater:           "Greater",
	Less:              "Less",
	Exclamation:       "Exclamation",
	Ampersand:         "Ampersand",
	Pipe:              "Pipe",
	Caret:             "Caret",
	Plus:              "Plus",
	Minus:             "Minus",
	Star:              "Star",
	Slash:             "Slash",
	Percent:           "Percent",
	Tilde:             "Tilde",
	At:                "At",
	Pound:             "Pound",
	Dollar:            "Dollar",
	Module:            "Module",
	Import:            "Import",
	Export:            "Export",
	Var:               "Var",
	Fun:               "Fun",
	Return:            "Return",
	As:                "As",
	Is:                "Is",
	Type:              "Type",
	Match:             "Match",
	If:                "If",
	Else:              "Else",
	Discard:           "Discard",
	ThisType:          "ThisType",
	ThisObj:           "ThisObj",
}

func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// Token is a lexical token. Which payload field is meaningful depends on Kind;
// Symbol is set for separators, operators and keywords only.
type Token struct {
	Kind   Kind
	Symbol Symbol
	Text   string
	Char   rune
	Bool   bool
}

func separator(s Symbol) Token { return Token{Kind: KindSeparator, Symbol: s} }
func operator(s Symbol) Token  { return Token{Kind: KindOperator, Symbol: s} }
func keyword(s Symbol) Token   { return Token{Kind: KindKeyword, Symbol: s} }

// Is reports whether t is the fixed token s.
func (t Token) Is(s Symbol) bool {
	return t.Symbol == s && t.Symbol != NoSymbol
}

// Name returns the symbol name of a fixed token and the kind name otherwise.
func (t Token) Name() string {
	if t.Symbol != NoSymbol {
		return t.Symbol.String()
	}
	return t.Kind.String()
}

func (t Token) String() string {
	switch t.Kind {
	case KindSeparator, KindOperator, KindKeyword:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Symbol)
	case KindBoolean:
		return fmt.Sprintf("%s(%t)", t.Kind, t.Bool)
	case KindCharacter:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Char)
	case KindInteger, KindFloat, KindString, KindIdentifier:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
