package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders a node as a compact S-expression, for example
// (program (assign x 100) (forward x)).
func Dump(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeList(sb *strings.Builder, head string, items ...Node) {
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, item := range items {
		sb.WriteByte(' ')
		writeNode(sb, item)
	}
	sb.WriteByte(')')
}

func writeStmts(sb *strings.Builder, head string, stmts []Stmt) {
	items := make([]Node, len(stmts))
	for i, stmt := range stmts {
		items[i] = stmt
	}
	writeList(sb, head, items...)
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		sb.WriteString("nil")
	case *Program:
		writeStmts(sb, "program", n.Stmts)
	case *BlockStmt:
		writeStmts(sb, "block", n.Stmts)
	case *AssignStmt:
		writeList(sb, "assign "+n.Name, n.Value)
	case *VarDecl:
		writeList(sb, fmt.Sprintf("declare %s %s", n.Type, n.Name), n.Value)
	case *BinaryExpr:
		writeList(sb, n.Op.String(), n.Left, n.Right)
	case *UnaryExpr:
		op := "-"
		if n.Op == TokenNot {
			op = "not"
		}
		writeList(sb, op, n.Operand)
	case *NumberExpr:
		sb.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *StringExpr:
		sb.WriteString(strconv.Quote(n.Value))
	case *IdentifierExpr:
		sb.WriteString(n.Name)
	case *PrintStmt:
		writeList(sb, "print", n.Expr)
	case *ForStmt:
		name := n.Var
		if name == "" {
			name = "_"
		}
		writeList(sb, "for "+name, n.Start, n.End, n.Body)
	case *WhileStmt:
		writeList(sb, "while", n.Cond, n.Body)
	case *IfStmt:
		if n.Else != nil {
			writeList(sb, "if", n.Cond, n.Then, n.Else)
		} else {
			writeList(sb, "if", n.Cond, n.Then)
		}
	case *BreakStmt:
		sb.WriteString("(break)")
	case *ContinueStmt:
		sb.WriteString("(continue)")
	case *ForwardStmt:
		writeOptional(sb, "forward", n.Distance)
	case *TurnStmt:
		writeOptional(sb, "turn", n.Angle)
	case *PenDownStmt:
		sb.WriteString("(pendown)")
	case *PenUpStmt:
		sb.WriteString("(penup)")
	case *ColorStmt:
		fmt.Fprintf(sb, "(color %s)", n.Color.ColorName())
	case *WidthStmt:
		writeList(sb, "width", n.Width)
	default:
		fmt.Fprintf(sb, "(unknown %T)", n)
	}
}

func writeOptional(sb *strings.Builder, head string, arg Expr) {
	if arg == nil {
		writeList(sb, head)
		return
	}
	writeList(sb, head, arg)
}
