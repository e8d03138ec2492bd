package pycheck

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckAcceptsTurtleProgram(t *testing.T) {
	src := `import turtle
def main():
    t = turtle.Turtle()
    try:
        size = 100.0
        for _ in range(0, int(size / 25.0)):
            t.forward(size)
            t.right(90.0)
        while size > 0.0 and not size == 3.0:
            size = size - 10.0
            if size < 50.0:
                break
            else:
                continue
        print((-2.0) ** 2.0)
    except turtle.Terminator:
        pass
    finally:
        try:
            pass
        except:
            pass

if __name__ == '__main__':
    main()
`
	if err := Check(src); err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
}

func TestCheckReportsSyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unbalanced paren", "print((1.0 + 2.0)\n"},
		{"missing suite", "for _ in range(0, 4):\nprint(1)\n"},
		{"newline in string", "x = \"a\nb\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(tc.src)
			if err == nil {
				t.Fatalf("expected syntax error")
			}
			var checkErr *Error
			if !errors.As(err, &checkErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if checkErr.Unwrap() == nil || !strings.HasPrefix(err.Error(), "generated Python does not parse: ") {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}
