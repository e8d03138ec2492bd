// Package codegen translates a parsed Mesel program into a Python program
// that draws with the standard turtle module.
package codegen

import (
	"fmt"

	"github.com/sergev/mesel/parser"
)

// Title is the caption of the drawing window.
const Title = "Mesel Turtle Graphics"

// Error reports an AST the generator cannot translate. The parser never
// produces such trees; hand-built ones can.
type Error struct {
	Pos parser.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

func errorf(n parser.Node, format string, args ...interface{}) error {
	var pos parser.Position
	if n != nil {
		pos = n.Pos()
	}
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Generate returns a complete Python program for prog: window setup,
// the translated statements and the event loop.
func Generate(prog *parser.Program) (string, error) {
	if prog == nil {
		prog = &parser.Program{}
	}
	g := &generator{}
	w := &g.w

	w.line("import turtle")
	w.line("def main():")
	w.indent()
	w.line("screen = turtle.Screen()")
	w.line("screen.setup(800, 600)")
	w.linef("screen.title('%s')", Title)
	w.line("screen.bgcolor('white')")
	w.line("screen.tracer(0)")
	w.line("t = turtle.Turtle()")
	w.line("t.speed(0)")
	w.line("t.pensize(2)")
	w.line("t.color('blue')")
	w.line("t.penup()")
	w.line("t.goto(0, 0)")
	w.line("t.pendown()")
	w.line("try:")
	w.indent()
	if err := g.stmts(prog.Stmts); err != nil {
		return "", err
	}
	w.line("screen.update()")
	w.line("screen.exitonclick()")
	w.dedent()
	w.line("except turtle.Terminator:")
	w.indent()
	w.line("pass")
	w.dedent()
	w.line("finally:")
	w.indent()
	w.line("try:")
	w.indent()
	w.line("screen.mainloop()")
	w.dedent()
	w.line("except:")
	w.indent()
	w.line("pass")
	w.dedent()
	w.dedent()
	w.dedent()
	w.blank()
	w.line("if __name__ == '__main__':")
	w.indent()
	w.line("main()")
	w.dedent()
	return w.String(), nil
}

// GenerateBody translates only the statements of prog, unindented.
func GenerateBody(prog *parser.Program) (string, error) {
	if prog == nil {
		return "", nil
	}
	g := &generator{}
	if err := g.stmts(prog.Stmts); err != nil {
		return "", err
	}
	return g.w.String(), nil
}

type generator struct {
	w writer
}

func (g *generator) stmts(stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if err := g.stmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// body emits a nested suite one level deeper, falling back to pass when
// the block translates to nothing.
func (g *generator) body(block *parser.BlockStmt) error {
	g.w.indent()
	defer g.w.dedent()
	mark := g.w.lines
	if block != nil {
		if err := g.stmts(block.Stmts); err != nil {
			return err
		}
	}
	if g.w.lines == mark {
		g.w.line("pass")
	}
	return nil
}

func (g *generator) stmt(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.BlockStmt:
		return g.stmts(s.Stmts)
	case *parser.AssignStmt:
		return g.assign(s.Name, s.Value)
	case *parser.VarDecl:
		return g.assign(s.Name, s.Value)
	case *parser.PrintStmt:
		return g.call("print", s.Expr)
	case *parser.ForStmt:
		return g.forStmt(s)
	case *parser.WhileStmt:
		cond, err := g.expr(s.Cond)
		if err != nil {
			return err
		}
		g.w.linef("while %s:", cond)
		return g.body(s.Body)
	case *parser.IfStmt:
		cond, err := g.expr(s.Cond)
		if err != nil {
			return err
		}
		g.w.linef("if %s:", cond)
		if err := g.body(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			g.w.line("else:")
			return g.body(s.Else)
		}
		return nil
	case *parser.BreakStmt:
		g.w.line("break")
		return nil
	case *parser.ContinueStmt:
		g.w.line("continue")
		return nil
	case *parser.ForwardStmt:
		return g.call("t.forward", s.Distance)
	case *parser.TurnStmt:
		return g.call("t.right", s.Angle)
	case *parser.PenDownStmt:
		g.w.line("t.pendown()")
		return nil
	case *parser.PenUpStmt:
		g.w.line("t.penup()")
		return nil
	case *parser.ColorStmt:
		name := s.Color.ColorName()
		if name == "" {
			return errorf(s, "unsupported color %s", s.Color)
		}
		g.w.linef("t.color('%s')", name)
		return nil
	case *parser.WidthStmt:
		return g.call("t.width", s.Width)
	default:
		return errorf(stmt, "unsupported statement %T", stmt)
	}
}

func (g *generator) assign(name string, value parser.Expr) error {
	text, err := g.expr(value)
	if err != nil {
		return err
	}
	g.w.linef("%s = %s", name, text)
	return nil
}

// call emits fn(arg), or fn() when the argument was omitted.
func (g *generator) call(fn string, arg parser.Expr) error {
	if arg == nil {
		g.w.linef("%s()", fn)
		return nil
	}
	text, err := g.expr(arg)
	if err != nil {
		return err
	}
	g.w.linef("%s(%s)", fn, text)
	return nil
}

func (g *generator) forStmt(s *parser.ForStmt) error {
	name := s.Var
	if name == "" {
		name = "_"
	}
	start, err := g.bound(s.Start)
	if err != nil {
		return err
	}
	end, err := g.bound(s.End)
	if err != nil {
		return err
	}
	g.w.linef("for %s in range(%s, %s):", name, start, end)
	return g.body(s.Body)
}
