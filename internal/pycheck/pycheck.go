// Package pycheck verifies that generated Python source parses.
package pycheck

import (
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// Error wraps the syntax error reported by the Python parser.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "generated Python does not parse: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Check parses src as a Python module without executing it.
func Check(src string) error {
	if _, err := parser.Parse(strings.NewReader(src), "<mesel>", py.ExecMode); err != nil {
		return &Error{Err: err}
	}
	return nil
}
