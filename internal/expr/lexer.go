package expr

import (
	"fmt"
	"unicode"

	"github.com/tally-calc/tally/internal/common"
)

// Operator glyphs as they appear on the keypad. The ASCII forms are accepted
// too so expressions can be typed on a plain keyboard or passed as CLI args.
const (
	GlyphDivide   = "÷"
	GlyphMultiply = "×"
	GlyphMinus    = "−"
	GlyphPlus     = "+"
	GlyphPercent  = "%"
)

// Lex tokenizes an arithmetic expression. Whitespace is skipped; any rune
// outside the keypad alphabet is an invalid-expression error.
func Lex(input string) ([]Token, error) {
	var tokens []Token

	runes := []rune(input)
	pos := 0
	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			pos += len(string(r))
			i++

		case r >= '0' && r <= '9' || r == '.':
			start := i
			startPos := pos
			dots := 0
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				if runes[i] == '.' {
					dots++
				}
				pos += len(string(runes[i]))
				i++
			}
			literal := string(runes[start:i])
			if dots > 1 {
				return nil, fmt.Errorf("%w: malformed number %q at position %d", common.ErrInvalidExpression, literal, startPos)
			}
			if literal == "." {
				return nil, fmt.Errorf("%w: lone decimal point at position %d", common.ErrInvalidExpression, startPos)
			}
			tokens = append(tokens, Token{Type: TokenNumber, Literal: literal, Pos: startPos})

		case r == '+':
			tokens = append(tokens, Token{Type: TokenPlus, Literal: string(r), Pos: pos})
			pos += len(string(r))
			i++

		case r == '-' || r == '−':
			tokens = append(tokens, Token{Type: TokenMinus, Literal: string(r), Pos: pos})
			pos += len(string(r))
			i++

		case r == '*' || r == '×':
			tokens = append(tokens, Token{Type: TokenStar, Literal: string(r), Pos: pos})
			pos += len(string(r))
			i++

		case r == '/' || r == '÷':
			tokens = append(tokens, Token{Type: TokenSlash, Literal: string(r), Pos: pos})
			pos += len(string(r))
			i++

		case r == '%':
			tokens = append(tokens, Token{Type: TokenPercent, Literal: string(r), Pos: pos})
			pos += len(string(r))
			i++

		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", common.ErrInvalidExpression, string(r), pos)
		}
	}

	tokens = append(tokens, Token{Type: TokenEOF, Pos: len(input)})
	return tokens, nil
}
