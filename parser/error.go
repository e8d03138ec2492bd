package parser

import (
	"errors"
	"fmt"
)

// LexicalError reports source text the lexer cannot classify.
type LexicalError struct {
	Pos Position
	Msg string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// ParseError reports a token the grammar does not allow at its position.
type ParseError struct {
	Pos   Position
	Found TokenType
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s, found %s", e.Pos.Line, e.Pos.Column, e.Msg, e.Found)
}

// Error represents a parser error with optional metadata.
type Error struct {
	Err        error
	Incomplete bool
}

func (e *Error) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newIncompleteError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Err:        err,
		Incomplete: true,
	}
}

// IsIncomplete reports whether the supplied error represents incomplete input:
// an unterminated string or a block still open at end of input.
func IsIncomplete(err error) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Incomplete
	}
	return false
}
