package tui

import "github.com/tally-calc/tally/internal/expr"

// ButtonKind selects the style and behavior of a keypad button.
type ButtonKind int

const (
	ButtonDigit ButtonKind = iota
	ButtonOperator
	ButtonClear
	ButtonBackspace
	ButtonEquals
)

// Button is one cell of the keypad grid.
type Button struct {
	Label string
	Kind  ButtonKind
	Span  int // grid columns occupied; 0 means 1
}

// keypad mirrors the classic desktop layout; "=" spans two cells.
var keypad = [][]Button{
	{
		{Label: "C", Kind: ButtonClear},
		{Label: "←", Kind: ButtonBackspace},
		{Label: expr.GlyphPercent, Kind: ButtonOperator},
		{Label: expr.GlyphDivide, Kind: ButtonOperator},
	},
	{
		{Label: "7"},
		{Label: "8"},
		{Label: "9"},
		{Label: expr.GlyphMultiply, Kind: ButtonOperator},
	},
	{
		{Label: "4"},
		{Label: "5"},
		{Label: "6"},
		{Label: expr.GlyphMinus, Kind: ButtonOperator},
	},
	{
		{Label: "1"},
		{Label: "2"},
		{Label: "3"},
		{Label: expr.GlyphPlus, Kind: ButtonOperator},
	},
	{
		{Label: "0"},
		{Label: "."},
		{Label: "=", Kind: ButtonEquals, Span: 2},
	},
}

// tokenForKey translates a typed key into the keypad token it stands for.
// ASCII operator keys map onto the display glyphs.
func tokenForKey(s string) (string, bool) {
	switch s {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		return s, true
	case "+":
		return expr.GlyphPlus, true
	case "-", "−":
		return expr.GlyphMinus, true
	case "*", "×":
		return expr.GlyphMultiply, true
	case "/", "÷":
		return expr.GlyphDivide, true
	case "%":
		return expr.GlyphPercent, true
	default:
		return "", false
	}
}
