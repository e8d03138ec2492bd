package codegen

import (
	"math"
	"strconv"
	"strings"

	"github.com/sergev/mesel/parser"
)

// Python operator precedence, loosest first.
const (
	precOr = iota + 1
	precAnd
	precNot
	precCompare
	precSum
	precProduct
	precNeg
	precPower
	precAtom
)

type pyOp struct {
	text string
	prec int
}

var binaryOps = map[parser.TokenType]pyOp{
	parser.TokenOr:           {"or", precOr},
	parser.TokenAnd:          {"and", precAnd},
	parser.TokenEqualEqual:   {"==", precCompare},
	parser.TokenBangEqual:    {"!=", precCompare},
	parser.TokenGreater:      {">", precCompare},
	parser.TokenLess:         {"<", precCompare},
	parser.TokenGreaterEqual: {">=", precCompare},
	parser.TokenLessEqual:    {"<=", precCompare},
	parser.TokenPlus:         {"+", precSum},
	parser.TokenMinus:        {"-", precSum},
	parser.TokenStar:         {"*", precProduct},
	parser.TokenSlash:        {"/", precProduct},
	parser.TokenPercent:      {"%", precProduct},
	parser.TokenStarStar:     {"**", precPower},
}

func precedence(e parser.Expr) int {
	switch e := e.(type) {
	case *parser.BinaryExpr:
		if op, ok := binaryOps[e.Op]; ok {
			return op.prec
		}
	case *parser.UnaryExpr:
		if e.Op == parser.TokenNot {
			return precNot
		}
		return precNeg
	}
	return precAtom
}

// needsParens reports whether child must be parenthesized as an operand of
// an operator with precedence parent for Python to rebuild the same tree.
func needsParens(child parser.Expr, parent int, right bool) bool {
	p := precedence(child)
	switch {
	case p < parent:
		return true
	case p > parent:
		return false
	}
	switch parent {
	case precCompare:
		// a < b < c is a chained comparison in Python
		return true
	case precPower:
		return !right
	default:
		return right
	}
}

func (g *generator) operand(e parser.Expr, parent int, right bool) (string, error) {
	text, err := g.expr(e)
	if err != nil {
		return "", err
	}
	if needsParens(e, parent, right) {
		return "(" + text + ")", nil
	}
	return text, nil
}

func (g *generator) expr(expr parser.Expr) (string, error) {
	switch e := expr.(type) {
	case *parser.NumberExpr:
		return formatNumber(e.Value), nil
	case *parser.StringExpr:
		return `"` + e.Value + `"`, nil
	case *parser.IdentifierExpr:
		return e.Name, nil
	case *parser.UnaryExpr:
		switch e.Op {
		case parser.TokenMinus:
			operand, err := g.operand(e.Operand, precNeg, false)
			if err != nil {
				return "", err
			}
			return "-" + operand, nil
		case parser.TokenNot:
			operand, err := g.operand(e.Operand, precNot, false)
			if err != nil {
				return "", err
			}
			return "not " + operand, nil
		default:
			return "", errorf(e, "unsupported unary operator %s", e.Op)
		}
	case *parser.BinaryExpr:
		op, ok := binaryOps[e.Op]
		if !ok {
			return "", errorf(e, "unsupported binary operator %s", e.Op)
		}
		left, err := g.operand(e.Left, op.prec, false)
		if err != nil {
			return "", err
		}
		right, err := g.operand(e.Right, op.prec, true)
		if err != nil {
			return "", err
		}
		return left + " " + op.text + " " + right, nil
	default:
		return "", errorf(expr, "unsupported expression %T", expr)
	}
}

// bound renders a range() bound. Constant bounds are truncated toward zero
// here; anything else is converted by int() when the program runs.
func (g *generator) bound(e parser.Expr) (string, error) {
	if v, ok := Fold(e); ok {
		if t := math.Trunc(v); math.Abs(t) < 1<<53 {
			return strconv.FormatInt(int64(t), 10), nil
		}
	}
	text, err := g.expr(e)
	if err != nil {
		return "", err
	}
	return "int(" + text + ")", nil
}

// formatNumber spells v the way Python's repr does for floats.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "float('inf')"
	case math.IsInf(v, -1):
		return "float('-inf')"
	case math.IsNaN(v):
		return "float('nan')"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
