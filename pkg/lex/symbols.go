package lex

import "github.com/shapestone/shape-lex/internal/tokenizer"

// Symbols of fixed tokens, for use with Token.Is.
const (
	NoSymbol = tokenizer.NoSymbol

	// Separators
	Period    = tokenizer.Period
	Comma     = tokenizer.Comma
	Scope     = tokenizer.Scope
	Colon     = tokenizer.Colon
	Semicolon = tokenizer.Semicolon
	LParen    = tokenizer.LParen
	RParen    = tokenizer.RParen
	LBracket  = tokenizer.LBracket
	RBracket  = tokenizer.RBracket
	LBrace    = tokenizer.LBrace
	RBrace    = tokenizer.RBrace

	// Operators
	ReturnType        = tokenizer.ReturnType
	Equals            = tokenizer.Equals
	NotEqual          = tokenizer.NotEqual
	GreaterEqual      = tokenizer.GreaterEqual
	LessEqual         = tokenizer.LessEqual
	Increment         = tokenizer.Increment
	Decrement         = tokenizer.Decrement
	ExclamationAssign = tokenizer.ExclamationAssign
	AmpersandAssign   = tokenizer.AmpersandAssign
	PipeAssign        = tokenizer.PipeAssign
	CaretAssign       = tokenizer.CaretAssign
	PlusAssign        = tokenizer.PlusAssign
	MinusAssign       = tokenizer.MinusAssign
	StarAssign        = tokenizer.StarAssign
	SlashAssign       = tokenizer.SlashAssign
	PercentAssign     = tokenizer.PercentAssign
	TildeAssign       = tokenizer.TildeAssign
	AtAssign          = tokenizer.AtAssign
	PoundAssign       = tokenizer.PoundAssign
	DollarAssign      = tokenizer.DollarAssign
	Assign            = tokenizer.Assign
	Greater           = tokenizer.Greater
	Less              = tokenizer.Less
	Exclamation       = tokenizer.Exclamation
	Ampersand         = tokenizer.Ampersand
	Pipe              = tokenizer.Pipe
	Caret             = tokenizer.Caret
	Plus              = tokenizer.Plus
	Minus             = tokenizer.Minus
	Star              = tokenizer.Star
	Slash             = tokenizer.Slash
	Percent           = tokenizer.Percent
	Tilde             = tokenizer.Tilde
	At                = tokenizer.At
	Pound             = tokenizer.Pound
	Dollar            = tokenizer.Dollar

	// Keywords
	Module       = tokenizer.Module
	Import       = tokenizer.Import
	Export       = tokenizer.Export
	Var          = tokenizer.Var
	Fun          = tokenizer.Fun
	Return       = tokenizer.Return
	As           = tokenizer.As
	Is           = tokenizer.Is
	Type         = tokenizer.Type
	MatchKeyword = tokenizer.Match // match; Match is the record type
	If           = tokenizer.If
	Else         = tokenizer.Else
	Discard      = tokenizer.Discard
	ThisType     = tokenizer.ThisType
	ThisObj      = tokenizer.ThisObj
)
