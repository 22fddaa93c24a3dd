package expr

import (
	"fmt"
	"strconv"

	"github.com/tally-calc/tally/internal/common"
)

// Parse builds an AST from lexed tokens. The grammar has two precedence
// levels, both left-associative:
//
//	expr    = term { ("+" | "−") term }
//	term    = unary { ("×" | "÷" | "%") unary }
//	unary   = { "+" | "−" } number
func Parse(tokens []Token) (Node, error) {
	p := &parser{tokens: tokens}

	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", common.ErrInvalidExpression, tok.Literal, tok.Pos)
	}
	return node, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek().Type
		if op != TokenPlus && op != TokenMinus {
			return left, nil
		}
		p.next()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek().Type
		if op != TokenStar && op != TokenSlash && op != TokenPercent {
			return left, nil
		}
		p.next()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	// Signs may stack: pressing − after × yields expressions like 5×−2.
	if op := p.peek().Type; op == TokenPlus || op == TokenMinus {
		p.next()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return UnaryExpr{Op: op, Operand: operand}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.next()
	if tok.Type != TokenNumber {
		if tok.Type == TokenEOF {
			return nil, fmt.Errorf("%w: unexpected end of expression", common.ErrInvalidExpression)
		}
		return nil, fmt.Errorf("%w: unexpected %q at position %d", common.ErrInvalidExpression, tok.Literal, tok.Pos)
	}

	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed number %q at position %d", common.ErrInvalidExpression, tok.Literal, tok.Pos)
	}
	return NumberLit{Value: value}, nil
}
