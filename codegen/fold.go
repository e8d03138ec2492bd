package codegen

import (
	"math"

	"github.com/sergev/mesel/parser"
)

// Fold evaluates e at translation time when it is built only from numeric
// literals, unary minus and arithmetic operators. It reports false for
// anything else, and for operations Python would reject at run time
// (division by zero, complex powers).
func Fold(e parser.Expr) (float64, bool) {
	switch e := e.(type) {
	case *parser.NumberExpr:
		return e.Value, true
	case *parser.UnaryExpr:
		if e.Op != parser.TokenMinus {
			return 0, false
		}
		v, ok := Fold(e.Operand)
		return -v, ok
	case *parser.BinaryExpr:
		l, ok := Fold(e.Left)
		if !ok {
			return 0, false
		}
		r, ok := Fold(e.Right)
		if !ok {
			return 0, false
		}
		return foldBinary(e.Op, l, r)
	}
	return 0, false
}

func foldBinary(op parser.TokenType, l, r float64) (float64, bool) {
	var v float64
	switch op {
	case parser.TokenPlus:
		v = l + r
	case parser.TokenMinus:
		v = l - r
	case parser.TokenStar:
		v = l * r
	case parser.TokenSlash:
		if r == 0 {
			return 0, false
		}
		v = l / r
	case parser.TokenPercent:
		if r == 0 {
			return 0, false
		}
		v = floorMod(l, r)
	case parser.TokenStarStar:
		if l == 0 && r < 0 {
			return 0, false
		}
		if l < 0 && r != math.Trunc(r) {
			return 0, false
		}
		v = math.Pow(l, r)
	default:
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// floorMod matches Python's %, whose result takes the sign of the divisor.
func floorMod(l, r float64) float64 {
	m := math.Mod(l, r)
	if m != 0 && (m < 0) != (r < 0) {
		m += r
	}
	return m
}
