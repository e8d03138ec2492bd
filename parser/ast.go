package parser

// Position tracks a source location within a Mesel source file.
type Position struct {
	Offset int // zero-based byte offset
	Line   int // one-based line number
	Column int // one-based column number (rune count)
}

// Node represents any AST node with a source position. The set of node
// types is closed: only types in this package implement it.
type Node interface {
	Pos() Position
	node()
}

// Stmt represents a statement inside a program or block.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed Mesel file.
type Program struct {
	Stmts []Stmt
}

func (*Program) Pos() Position { return Position{Line: 1, Column: 1} }
func (*Program) node()         {}

// IdentifierExpr refers to a variable.
type IdentifierExpr struct {
	Name string
	Posn Position
}

func (e *IdentifierExpr) Pos() Position { return e.Posn }
func (*IdentifierExpr) node()           {}
func (*IdentifierExpr) exprNode()       {}

// NumberExpr is a numeric literal. Every number is floating point and
// non-negative as written; unary minus stays a separate node.
type NumberExpr struct {
	Value float64
	Posn  Position
}

func (e *NumberExpr) Pos() Position { return e.Posn }
func (*NumberExpr) node()           {}
func (*NumberExpr) exprNode()       {}

// StringExpr is a double-quoted string literal with its raw text.
type StringExpr struct {
	Value string
	Posn  Position
}

func (e *StringExpr) Pos() Position { return e.Posn }
func (*StringExpr) node()           {}
func (*StringExpr) exprNode()       {}

// UnaryExpr represents prefix operator application: TokenMinus or TokenNot.
type UnaryExpr struct {
	Op      TokenType
	Operand Expr
	Posn    Position
}

func (e *UnaryExpr) Pos() Position { return e.Posn }
func (*UnaryExpr) node()           {}
func (*UnaryExpr) exprNode()       {}

// BinaryExpr represents infix operator application. Op is always the
// symbolic token type, also when the source spelled the keyword form.
type BinaryExpr struct {
	Op          TokenType
	Left, Right Expr
	Posn        Position
}

func (e *BinaryExpr) Pos() Position { return e.Posn }
func (*BinaryExpr) node()           {}
func (*BinaryExpr) exprNode()       {}

// BlockStmt is a ጀምር/ጨርስ-delimited statement list.
type BlockStmt struct {
	Stmts []Stmt
	Posn  Position
}

func (s *BlockStmt) Pos() Position { return s.Posn }
func (*BlockStmt) node()           {}
func (*BlockStmt) stmtNode()       {}

// AssignStmt declares or rebinds a variable.
type AssignStmt struct {
	Name  string
	Value Expr
	Posn  Position
}

func (s *AssignStmt) Pos() Position { return s.Posn }
func (*AssignStmt) node()           {}
func (*AssignStmt) stmtNode()       {}

// VarDecl is a typed declaration. The type is syntactic only.
type VarDecl struct {
	Name  string
	Type  TokenType // TokenNumberType or TokenStringType
	Value Expr
	Posn  Position
}

func (s *VarDecl) Pos() Position { return s.Posn }
func (*VarDecl) node()           {}
func (*VarDecl) stmtNode()       {}

// PrintStmt writes one expression to the console.
type PrintStmt struct {
	Expr Expr
	Posn Position
}

func (s *PrintStmt) Pos() Position { return s.Posn }
func (*PrintStmt) node()           {}
func (*PrintStmt) stmtNode()       {}

// ForStmt counts from Start up to End, exclusive. An empty Var marks the
// anonymous form.
type ForStmt struct {
	Var        string
	Start, End Expr
	Body       *BlockStmt
	Posn       Position
}

func (s *ForStmt) Pos() Position { return s.Posn }
func (*ForStmt) node()           {}
func (*ForStmt) stmtNode()       {}

// WhileStmt repeats while the condition is truthy.
type WhileStmt struct {
	Cond Expr
	Body *BlockStmt
	Posn Position
}

func (s *WhileStmt) Pos() Position { return s.Posn }
func (*WhileStmt) node()           {}
func (*WhileStmt) stmtNode()       {}

// IfStmt conditionally executes branches.
type IfStmt struct {
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt // may be nil
	Posn Position
}

func (s *IfStmt) Pos() Position { return s.Posn }
func (*IfStmt) node()           {}
func (*IfStmt) stmtNode()       {}

type BreakStmt struct {
	Posn Position
}

func (s *BreakStmt) Pos() Position { return s.Posn }
func (*BreakStmt) node()           {}
func (*BreakStmt) stmtNode()       {}

type ContinueStmt struct {
	Posn Position
}

func (s *ContinueStmt) Pos() Position { return s.Posn }
func (*ContinueStmt) node()           {}
func (*ContinueStmt) stmtNode()       {}

// ForwardStmt moves the turtle. Distance is nil when omitted.
type ForwardStmt struct {
	Distance Expr
	Posn     Position
}

func (s *ForwardStmt) Pos() Position { return s.Posn }
func (*ForwardStmt) node()           {}
func (*ForwardStmt) stmtNode()       {}

// TurnStmt rotates the turtle clockwise. Angle is nil when omitted.
type TurnStmt struct {
	Angle Expr
	Posn  Position
}

func (s *TurnStmt) Pos() Position { return s.Posn }
func (*TurnStmt) node()           {}
func (*TurnStmt) stmtNode()       {}

type PenDownStmt struct {
	Posn Position
}

func (s *PenDownStmt) Pos() Position { return s.Posn }
func (*PenDownStmt) node()           {}
func (*PenDownStmt) stmtNode()       {}

type PenUpStmt struct {
	Posn Position
}

func (s *PenUpStmt) Pos() Position { return s.Posn }
func (*PenUpStmt) node()           {}
func (*PenUpStmt) stmtNode()       {}

// ColorStmt selects one of the six pen colors.
type ColorStmt struct {
	Color TokenType
	Posn  Position
}

func (s *ColorStmt) Pos() Position { return s.Posn }
func (*ColorStmt) node()           {}
func (*ColorStmt) stmtNode()       {}

// WidthStmt sets the pen width.
type WidthStmt struct {
	Width Expr
	Posn  Position
}

func (s *WidthStmt) Pos() Position { return s.Posn }
func (*WidthStmt) node()           {}
func (*WidthStmt) stmtNode()       {}
