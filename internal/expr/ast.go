package expr

// Node is the interface all AST nodes implement.
type Node interface {
	nodeTag()
}

// NumberLit represents a number literal (integer or decimal).
type NumberLit struct {
	Value float64
}

// BinaryExpr represents a binary operation.
type BinaryExpr struct {
	Left  Node
	Right Node
	Op    TokenType // TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent
}

// UnaryExpr represents a signed operand like −5.
type UnaryExpr struct {
	Operand Node
	Op      TokenType // TokenPlus, TokenMinus
}

func (NumberLit) nodeTag()  {}
func (BinaryExpr) nodeTag() {}
func (UnaryExpr) nodeTag()  {}
