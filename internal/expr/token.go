// Package expr implements a small arithmetic expression evaluator restricted to
// the calculator's keypad grammar: decimal numbers combined with + − × ÷ %.
package expr

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenNumber TokenType = iota
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenEOF
)

// Token represents a single lexer token.
type Token struct {
	Literal string
	Pos     int // byte offset in the input
	Type    TokenType
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q, %d)", t.Type, t.Literal, t.Pos)
}
