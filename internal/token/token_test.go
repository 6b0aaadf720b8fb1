package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnodel/jslint/internal/sourcecode"
)

func TestIsAssignmentOperator(t *testing.T) {
	for _, k := range []Kind{Assign, PlusAssign, MinusAssign, StarAssign, SlashEqual,
		PercentAssign, StarStarAssign, ShlAssign, ShrAssign, UShrAssign, AndAssign,
		OrAssign, XorAssign, AndAndAssign, OrOrAssign, QuestionQuestionAssign} {
		assert.True(t, k.IsAssignmentOperator(), "%v should be an assignment operator", k)
	}

	for _, k := range []Kind{Plus, Minus, Eq, StrictEq, Ident, Comma, Arrow, Slash} {
		assert.False(t, k.IsAssignmentOperator(), "%v should not be an assignment operator", k)
	}
}

func TestReservedWords(t *testing.T) {
	assert.Equal(t, Function, ReservedWords["function"])
	assert.Equal(t, Let, ReservedWords["let"])
	assert.Equal(t, True, ReservedWords["true"])
	_, ok := ReservedWords["async"]
	assert.False(t, ok, "async is contextual, not reserved")
}

func TestContextualKeywords(t *testing.T) {
	assert.Equal(t, Async, ContextualKeywords["async"])
	assert.Equal(t, Of, ContextualKeywords["of"])
	_, ok := ContextualKeywords["function"]
	assert.False(t, ok, "function is reserved, not contextual")
}

func TestIdentifierEqual(t *testing.T) {
	a := Identifier{Span: sourcecode.Span{Begin: 0, End: 1}, Name: "x"}
	b := Identifier{Span: sourcecode.Span{Begin: 10, End: 11}, Name: "x"}
	c := Identifier{Span: sourcecode.Span{Begin: 0, End: 1}, Name: "y"}

	assert.True(t, a.Equal(b), "identifiers with the same Name but different spans are equal")
	assert.False(t, a.Equal(c))
}

func TestTokenBeginEnd(t *testing.T) {
	tok := Token{Kind: Ident, Span: sourcecode.Span{Begin: 3, End: 7}}
	assert.Equal(t, int32(3), tok.Begin())
	assert.Equal(t, int32(7), tok.End())
}
