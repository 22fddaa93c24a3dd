package expr

import (
	"errors"
	"fmt"
	"math"

	"github.com/tally-calc/tally/internal/common"
)

// ErrOutOfRange reports a computation that overflowed float64.
var ErrOutOfRange = errors.New("result out of range")

// Evaluate lexes, parses and computes an expression in one step.
func Evaluate(input string) (float64, error) {
	tokens, err := Lex(input)
	if err != nil {
		return 0, err
	}

	node, err := Parse(tokens)
	if err != nil {
		return 0, err
	}

	value, err := Eval(node)
	if err != nil {
		return 0, err
	}

	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrOutOfRange
	}
	return value, nil
}

// Eval computes the value of an AST node.
func Eval(node Node) (float64, error) {
	switch n := node.(type) {
	case NumberLit:
		return n.Value, nil

	case UnaryExpr:
		operand, err := Eval(n.Operand)
		if err != nil {
			return 0, err
		}
		if n.Op == TokenMinus {
			return -operand, nil
		}
		return operand, nil

	case BinaryExpr:
		left, err := Eval(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return 0, err
		}
		return evalBinary(n.Op, left, right)

	default:
		return 0, fmt.Errorf("%w: unknown node %T", common.ErrInvalidExpression, node)
	}
}

func evalBinary(op TokenType, left, right float64) (float64, error) {
	switch op {
	case TokenPlus:
		return left + right, nil
	case TokenMinus:
		return left - right, nil
	case TokenStar:
		return left * right, nil
	case TokenSlash:
		if right == 0 {
			return 0, common.ErrDivisionByZero
		}
		return left / right, nil
	case TokenPercent:
		if right == 0 {
			return 0, fmt.Errorf("%w: remainder by zero", common.ErrDivisionByZero)
		}
		return flooredMod(left, right), nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %d", common.ErrInvalidExpression, op)
	}
}

// flooredMod computes the floored remainder, so the result takes the sign of
// the divisor: −2 % 3 = 1.
func flooredMod(left, right float64) float64 {
	m := math.Mod(left, right)
	if m != 0 && (m < 0) != (right < 0) {
		m += right
	}
	return m
}
