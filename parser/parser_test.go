package parser

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string, opts ...Option) *Program {
	t.Helper()
	prog, err := Parse(src, opts...)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return prog
}

func TestParseSquare(t *testing.T) {
	src := `
ቁጥር ርዝመት = 100
እድግ 4
    ሂድ ርዝመት
    ዙር 90
ጨርስ
`
	prog := mustParse(t, src)
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Stmts))
	}
	decl, ok := prog.Stmts[0].(*VarDecl)
	if !ok {
		t.Fatalf("expected VarDecl, got %T", prog.Stmts[0])
	}
	if decl.Name != "ርዝመት" || decl.Type != TokenNumberType {
		t.Fatalf("unexpected declaration %+v", decl)
	}
	loop, ok := prog.Stmts[1].(*ForStmt)
	if !ok {
		t.Fatalf("expected ForStmt, got %T", prog.Stmts[1])
	}
	if loop.Var != "" {
		t.Fatalf("expected anonymous loop, got variable %q", loop.Var)
	}
	start, ok := loop.Start.(*NumberExpr)
	if !ok || start.Value != 0 {
		t.Fatalf("expected start 0, got %s", Dump(loop.Start))
	}
	end, ok := loop.End.(*NumberExpr)
	if !ok || end.Value != 4 {
		t.Fatalf("expected end 4, got %s", Dump(loop.End))
	}
	if len(loop.Body.Stmts) != 2 {
		t.Fatalf("expected 2 statements in body, got %d", len(loop.Body.Stmts))
	}
	if loop.Pos().Line != 3 || loop.Pos().Column != 1 {
		t.Fatalf("unexpected loop position %+v", loop.Pos())
	}
}

func TestParseDump(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "precedence",
			src:  "ያሳይ 10 + 5 * 2",
			want: "(program (print (+ 10 (* 5 2))))",
		},
		{
			name: "left associative",
			src:  "ያሳይ 10 - 4 - 3",
			want: "(program (print (- (- 10 4) 3)))",
		},
		{
			name: "parentheses",
			src:  "ያሳይ (1 + 2) * 3",
			want: "(program (print (* (+ 1 2) 3)))",
		},
		{
			name: "power applies once",
			src:  "ያሳይ 2 ** 3 ** 2",
			want: "(program (print (** 2 3)))",
		},
		{
			name: "unary",
			src:  "ያሳይ - - x",
			want: "(program (print (- (- x))))",
		},
		{
			name: "comparison below term",
			src:  "ያሳይ a + 1 >= b == c",
			want: "(program (print (== (>= (+ a 1) b) c)))",
		},
		{
			name: "logical",
			src:  "ያሳይ አይደለም a እና b ወይም c",
			want: "(program (print (ወይም (እና (not a) b) c)))",
		},
		{
			name: "keyword operators",
			src:  "ያሳይ 1 ደምር 2 አባዛ 3 ቀንስ 4 ክፈል 5 ቀሪ 6 ደረጃ 2",
			want: "(program (print (- (+ 1 (* 2 3)) (% (/ 4 5) (** 6 2)))))",
		},
		{
			name: "named for",
			src:  "እድግ i = 1, n + 1 ያሳይ i ጨርስ",
			want: "(program (for i 1 (+ n 1) (block (print i))))",
		},
		{
			name: "if else",
			src:  "ከሆነ x > 1 ሂድ 10 ጨርስ ካልሆነ ዙር 90 ጨርስ",
			want: "(program (if (> x 1) (block (forward 10)) (block (turn 90))))",
		},
		{
			name: "while with break and continue",
			src:  "ድገም x < 3 አስቀምጥ x = x + 1 ቀጥል ተው ጨርስ",
			want: "(program (while (< x 3) (block (assign x (+ x 1)) (continue) (break))))",
		},
		{
			name: "pen and color",
			src:  "ስዕል_አቁም ቀለም ቀይ ስፋት 3 ስዕል_ጀምር",
			want: "(program (penup) (color red) (width 3) (pendown))",
		},
		{
			name: "string declaration",
			src:  `ፊደል ስም = "ሰላም" ያሳይ ስም`,
			want: `(program (declare ፊደል ስም "ሰላም") (print ስም))`,
		},
		{
			name: "explicit block",
			src:  "ጀምር ሂድ 1 ጨርስ",
			want: "(program (block (forward 1)))",
		},
		{
			name: "argument omitted before end",
			src:  "እድግ 2 ሂድ ጨርስ\nጀምር ዙር\nጨርስ",
			want: "(program (for _ 0 2 (block (forward))) (block (turn)))",
		},
		{
			name: "stray tokens are skipped",
			src:  "ሂድ 10 ) ጨርስ , ዙር 90",
			want: "(program (forward 10) (turn 90))",
		},
		{
			name: "empty",
			src:  "# nothing here\n",
			want: "(program)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prog := mustParse(t, tc.src)
			if got := Dump(prog); got != tc.want {
				t.Fatalf("Dump => %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseKeywordOperatorsMatchSymbols(t *testing.T) {
	pairs := [][2]string{
		{"ያሳይ a ደምር b", "ያሳይ a + b"},
		{"ያሳይ a ቀንስ b", "ያሳይ a - b"},
		{"ያሳይ a አባዛ b", "ያሳይ a * b"},
		{"ያሳይ a ክፈል b", "ያሳይ a / b"},
		{"ያሳይ a ቀሪ b", "ያሳይ a % b"},
		{"ያሳይ a ደረጃ b", "ያሳይ a ** b"},
	}
	for _, pair := range pairs {
		keyword := Dump(mustParse(t, pair[0]))
		symbol := Dump(mustParse(t, pair[1]))
		if keyword != symbol {
			t.Errorf("%q => %s, but %q => %s", pair[0], keyword, pair[1], symbol)
		}
	}
}

func TestParseStrictRejectsStrayTokens(t *testing.T) {
	_, err := Parse("ሂድ 10 ) ዙር 90", WithStrict())
	if err == nil || !strings.Contains(err.Error(), "unexpected token outside statement") {
		t.Fatalf("expected strict-mode error, got %v", err)
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Found != TokenRParen || parseErr.Pos.Column != 7 {
		t.Fatalf("unexpected error details %+v", parseErr)
	}
	if got := err.Error(); got != "1:7: unexpected token outside statement, found )" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		wantErr    string
		incomplete bool
	}{
		{
			name:       "missing end",
			src:        "እድግ 4\n ሂድ 10",
			wantErr:    "expected ጨርስ to close block opened at 1:1",
			incomplete: true,
		},
		{
			name:       "open if",
			src:        "ከሆነ x > 1",
			wantErr:    "found EOF",
			incomplete: true,
		},
		{
			name:       "unterminated string",
			src:        `ያሳይ "abc`,
			wantErr:    "unterminated string literal",
			incomplete: true,
		},
		{
			name:    "bad color",
			src:     "ቀለም ሰላም",
			wantErr: "1:5: expected color after ቀለም, found identifier",
		},
		{
			name:    "missing variable",
			src:     "አስቀምጥ = 5",
			wantErr: "expected variable name after አስቀምጥ",
		},
		{
			name:    "missing assign operator",
			src:     "ቁጥር x 5",
			wantErr: "expected '=' after variable name, found number",
		},
		{
			name:    "missing comma",
			src:     "እድግ i = 0 10 ጨርስ",
			wantErr: "expected ',' after start value",
		},
		{
			name:    "missing paren",
			src:     "ያሳይ (1 + 2 ሂድ",
			wantErr: "expected ')' after expression",
		},
		{
			name:    "forward before another statement",
			src:     "ሂድ ዙር 90",
			wantErr: "1:4: expected expression, found ዙር",
		},
		{
			name:       "forward at end of input",
			src:        "ሂድ",
			wantErr:    "expected expression, found EOF",
			incomplete: true,
		},
		{
			name:    "missing expression",
			src:     "ያሳይ * 2",
			wantErr: "expected expression, found *",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.src)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
			if IsIncomplete(err) != tc.incomplete {
				t.Fatalf("IsIncomplete(%v) = %v, want %v", err, IsIncomplete(err), tc.incomplete)
			}
		})
	}
}

func TestParseTokensAddsMissingEOF(t *testing.T) {
	tokens := []Token{
		{Type: TokenForward, Lexeme: "ሂድ", Pos: Position{Line: 1, Column: 1}},
		{Type: TokenNumber, Lexeme: "5", Pos: Position{Offset: 7, Line: 1, Column: 4}},
	}
	prog, err := ParseTokens(tokens)
	if err != nil {
		t.Fatalf("ParseTokens returned error: %v", err)
	}
	if got, want := Dump(prog), "(program (forward 5))"; got != want {
		t.Fatalf("Dump => %s, want %s", got, want)
	}
}
