package codegen

import (
	"testing"

	"github.com/sergev/mesel/parser"
)

func parseExpr(t *testing.T, src string) parser.Expr {
	t.Helper()
	prog, err := parser.Parse("ያሳይ " + src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return prog.Stmts[0].(*parser.PrintStmt).Expr
}

func TestFold(t *testing.T) {
	cases := []struct {
		src  string
		want float64
		ok   bool
	}{
		{"4", 4, true},
		{"-4", -4, true},
		{"2 + 3 * 4", 14, true},
		{"(2 + 3) * 4", 20, true},
		{"7 / 2", 3.5, true},
		{"2 ** 10", 1024, true},
		{"-7 % 3", 2, true},
		{"7 % -3", -2, true},
		{"7 ቀሪ 3", 1, true},
		{"(-8) ** 2", 64, true},
		{"x", 0, false},
		{"x + 1", 0, false},
		{"1 / 0", 0, false},
		{"1 % 0", 0, false},
		{"0 ** -1", 0, false},
		{"(-8) ** 0.5", 0, false},
		{"10 ** 400", 0, false},
		{"1 < 2", 0, false},
		{"አይደለም 1", 0, false},
		{`"ሰላም"`, 0, false},
	}
	for _, tc := range cases {
		got, ok := Fold(parseExpr(t, tc.src))
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("Fold(%s) = %v, %v; want %v, %v", tc.src, got, ok, tc.want, tc.ok)
		}
	}
}
