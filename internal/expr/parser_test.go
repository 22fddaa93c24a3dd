package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-calc/tally/internal/common"
)

func TestParse_Precedence(t *testing.T) {
	tokens, err := Lex("2+3×4")
	require.NoError(t, err)

	node, err := Parse(tokens)
	require.NoError(t, err)

	// Multiplication must bind tighter: 2+(3×4), not (2+3)×4.
	root, ok := node.(BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TokenPlus, root.Op)

	left, ok := root.Left.(NumberLit)
	require.True(t, ok)
	assert.InDelta(t, 2, left.Value, 0)

	right, ok := root.Right.(BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TokenStar, right.Op)
}

func TestParse_LeftAssociative(t *testing.T) {
	tokens, err := Lex("10−3−4")
	require.NoError(t, err)

	node, err := Parse(tokens)
	require.NoError(t, err)

	// (10−3)−4: the right child of the root is the last operand.
	root, ok := node.(BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TokenMinus, root.Op)

	_, ok = root.Left.(BinaryExpr)
	assert.True(t, ok)
	_, ok = root.Right.(NumberLit)
	assert.True(t, ok)
}

func TestParse_UnarySign(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "leading minus", input: "−5+3"},
		{name: "sign after operator", input: "5×−2"},
		{name: "stacked signs", input: "2−−3"},
		{name: "unary plus", input: "+5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			require.NoError(t, err)

			_, err = Parse(tokens)
			assert.NoError(t, err)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "trailing operator", input: "5+"},
		{name: "lone operator", input: "+"},
		{name: "doubled multiply", input: "5××2"},
		{name: "adjacent numbers", input: "1 2"},
		{name: "trailing sign after operator", input: "5×−"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			require.NoError(t, err)

			_, err = Parse(tokens)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidExpression)
		})
	}
}
