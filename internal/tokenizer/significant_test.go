package tokenizer

import (
	"testing"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireByteStream(t *testing.T) {
	t.Helper()
	if _, ok := shapetokenizer.NewStream("x").(shapetokenizer.ByteStream); !ok {
		t.Skip("shape-core string streams do not implement ByteStream")
	}
}

type shapeToken struct{ kind, value string }

func drain(next func() (*shapetokenizer.Token, bool)) []shapeToken {
	var got []shapeToken
	for {
		token, ok := next()
		if !ok {
			return got
		}
		got = append(got, shapeToken{token.Kind(), string(token.Value())})
	}
}

func TestShapeTokenizer(t *testing.T) {
	requireByteStream(t)

	tok := NewShapeTokenizer()
	tok.InitializeFromStream(shapetokenizer.NewStream(`if x == 0x1F { s = "a\tb"; }`))

	want := []shapeToken{
		{"If", "if"},
		{"Whitespace", " "},
		{"Identifier", "x"},
		{"Whitespace", " "},
		{"Equals", "=="},
		{"Whitespace", " "},
		{"Integer", "0x1F"},
		{"Whitespace", " "},
		{"LBrace", "{"},
		{"Whitespace", " "},
		{"Identifier", "s"},
		{"Whitespace", " "},
		{"Assign", "="},
		{"Whitespace", " "},
		{"String", `"a\tb"`},
		{"Semicolon", ";"},
		{"Whitespace", " "},
		{"RBrace", "}"},
	}
	assert.Equal(t, want, drain(tok.NextToken))
}

func TestSignificantTokenizer(t *testing.T) {
	requireByteStream(t)

	st := NewSignificantTokenizer(NewShapeTokenizer())
	st.InitializeFromStream(shapetokenizer.NewStream("var x = 1;\n"))

	want := []shapeToken{
		{"Var", "var"},
		{"Identifier", "x"},
		{"Assign", "="},
		{"Integer", "1"},
		{"Semicolon", ";"},
	}
	assert.Equal(t, want, drain(st.NextToken))
	assert.Equal(t, 4, st.Skipped())
}

func TestSignificantTokenizer_Peek(t *testing.T) {
	requireByteStream(t)

	st := NewSignificantTokenizer(NewShapeTokenizer())
	st.InitializeFromStream(shapetokenizer.NewStream("  a b"))

	peeked, ok := st.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", string(peeked.Value()))

	again, ok := st.Peek()
	require.True(t, ok)
	assert.Same(t, peeked, again)

	next, ok := st.NextToken()
	require.True(t, ok)
	assert.Same(t, peeked, next)

	next, ok = st.NextToken()
	require.True(t, ok)
	assert.Equal(t, "b", string(next.Value()))

	_, ok = st.Peek()
	assert.False(t, ok)
	assert.Equal(t, 2, st.Skipped())
}

func TestSignificantTokenizer_ReinitializeResets(t *testing.T) {
	requireByteStream(t)

	st := NewSignificantTokenizer(NewShapeTokenizer())
	st.InitializeFromStream(shapetokenizer.NewStream(" a b"))
	_, ok := st.Peek()
	require.True(t, ok)

	st.InitializeFromStream(shapetokenizer.NewStream("c"))
	assert.Equal(t, 0, st.Skipped())

	token, ok := st.NextToken()
	require.True(t, ok)
	assert.Equal(t, "c", string(token.Value()))
}
