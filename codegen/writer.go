package codegen

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

// writer accumulates Python source lines. Nesting is tracked by an explicit
// depth counter; callers pair every indent with a dedent.
type writer struct {
	sb    strings.Builder
	depth int
	lines int
}

func (w *writer) indent() {
	w.depth++
}

func (w *writer) dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

func (w *writer) line(text string) {
	for i := 0; i < w.depth; i++ {
		w.sb.WriteString(indentUnit)
	}
	w.sb.WriteString(text)
	w.sb.WriteByte('\n')
	w.lines++
}

func (w *writer) linef(format string, args ...interface{}) {
	w.line(fmt.Sprintf(format, args...))
}

func (w *writer) blank() {
	w.sb.WriteByte('\n')
}

func (w *writer) String() string {
	return w.sb.String()
}
