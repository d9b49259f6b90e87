package lex_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shapestone/shape-lex/pkg/lex"
	"github.com/shapestone/shape-lex/pkg/lexer"
)

func ExampleTokenize() {
	src := `x == '\n'`

	matches, err := lex.Tokenize(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, m := range matches {
		fmt.Printf("%d %-20v %s\n", m.Offset, m.Token, m.Text(src))
	}
	// Output:
	// 0 Identifier("x")      x
	// 2 Operator(Equals)     ==
	// 5 Character('\n')      '\n'
}

func ExampleTokenizeReader() {
	matches, err := lex.TokenizeReader(strings.NewReader("return 12'345.678'9;"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, m := range matches {
		fmt.Println(m.Token)
	}
	// Output:
	// Keyword(Return)
	// Float("12'345.678'9")
	// Separator(Semicolon)
}

func ExampleValidate() {
	err := lex.Validate(`s = "abc`)
	fmt.Println(err)
	fmt.Println(errors.Is(err, lexer.ErrUnterminatedLiteral))
	// Output:
	// tokenize: unterminated literal at offset 4: string literal
	// true
}

func ExampleNewLexer() {
	eng := lex.NewLexer()

	tok, skip, n, err := eng.ScanOne("  ifx = true")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tok, skip, n)
	// Output:
	// Identifier("ifx") 2 3
}
