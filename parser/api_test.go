package parser

import (
	"errors"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestParseReaderHandlesIOReturns(t *testing.T) {
	if _, err := ParseReader(failingReader{}); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected underlying IO error, got %v", err)
	}

	prog, err := ParseReader(strings.NewReader("ቁጥር x = 5\nሂድ x\n"))
	if err != nil {
		t.Fatalf("ParseReader returned error: %v", err)
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected two statements from reader, got %d", len(prog.Stmts))
	}
}

func TestIsIncompleteSeesThroughWrapping(t *testing.T) {
	_, err := Parse("ጀምር ሂድ 1")
	if err == nil {
		t.Fatalf("expected error for open block")
	}
	wrapped := errors.Join(errors.New("context"), err)
	if !IsIncomplete(wrapped) {
		t.Fatalf("expected wrapped error to stay incomplete: %v", wrapped)
	}
	var parseErr *ParseError
	if !errors.As(wrapped, &parseErr) || parseErr.Found != TokenEOF {
		t.Fatalf("expected ParseError at EOF, got %v", wrapped)
	}
	if IsIncomplete(errors.New("plain")) {
		t.Fatalf("plain errors are never incomplete")
	}
}

func TestOptionsAreIndependent(t *testing.T) {
	src := "ሂድ 1 , ዙር 2"
	if _, err := Parse(src); err != nil {
		t.Fatalf("lenient Parse returned error: %v", err)
	}
	if _, err := Parse(src, WithStrict()); err == nil {
		t.Fatalf("expected strict Parse to fail")
	}
	if _, err := Parse(src, nil); err != nil {
		t.Fatalf("nil option should be ignored: %v", err)
	}
}
