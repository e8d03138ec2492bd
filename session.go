package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/sergev/mesel/codegen"
	"github.com/sergev/mesel/parser"
	"github.com/sergev/mesel/translate"
)

// session accumulates source entered line by line. Lines are buffered in
// pending until they form complete statements; each translated chunk is
// appended to chunks.
type session struct {
	parseOpts []parser.Option
	opts      []translate.Option
	pending   strings.Builder
	chunks    []string
	reopened  string // chunk moved back into pending by a following ካልሆነ
	openIf    bool   // the last chunk ends in ከሆነ without ካልሆነ
}

func newSession(parseOpts []parser.Option, opts []translate.Option) *session {
	return &session{parseOpts: parseOpts, opts: opts}
}

// feed adds one input line. When the buffered lines are still incomplete it
// reports more; otherwise it returns the Python statements they translate to.
// A ካልሆነ line right after a chunk ending in ከሆነ reopens that chunk, and the
// returned code then holds the whole if statement.
func (s *session) feed(line string) (code string, more bool, err error) {
	if s.pending.Len() == 0 && s.openIf && startsWithElse(line) {
		n := len(s.chunks) - 1
		s.reopened = s.chunks[n]
		s.chunks = s.chunks[:n]
		s.pending.WriteString(s.reopened)
	}
	s.pending.WriteString(line)
	s.pending.WriteString("\n")
	src := s.pending.String()

	prog, err := parser.Parse(src, s.parseOpts...)
	if err != nil {
		if parser.IsIncomplete(err) {
			return "", true, nil
		}
		err = s.locate(err)
		s.abort()
		return "", false, err
	}
	code, err = codegen.GenerateBody(prog)
	if err != nil {
		err = s.locate(err)
		s.abort()
		return "", false, err
	}
	s.pending.Reset()
	s.reopened = ""
	if len(prog.Stmts) == 0 && len(s.chunks) > 0 {
		// Blank lines and comments stay with the previous chunk so that a
		// later ካልሆነ still finds its ከሆነ.
		s.chunks[len(s.chunks)-1] += src
		return "", false, nil
	}
	s.chunks = append(s.chunks, src)
	s.openIf = endsInOpenIf(prog)
	return code, false, nil
}

// abort drops buffered input and restores a chunk reopened for ካልሆነ.
func (s *session) abort() {
	s.pending.Reset()
	if s.reopened != "" {
		s.chunks = append(s.chunks, s.reopened)
		s.reopened = ""
	}
}

// locate moves error positions from the pending chunk to the session
// source, which starts after the lines of the accepted chunks.
func (s *session) locate(err error) error {
	base := strings.Count(s.source(), "\n")
	if base == 0 {
		return err
	}
	var lexErr *parser.LexicalError
	if errors.As(err, &lexErr) {
		lexErr.Pos.Line += base
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		parseErr.Pos.Line += base
	}
	var genErr *codegen.Error
	if errors.As(err, &genErr) {
		genErr.Pos.Line += base
	}
	return err
}

func startsWithElse(line string) bool {
	var first parser.Token
	seen := false
	_, _ = parser.Tokenize(line, parser.WithTrace(func(tok parser.Token) {
		if !seen {
			first, seen = tok, true
		}
	}))
	return seen && first.Type == parser.TokenElse
}

func endsInOpenIf(prog *parser.Program) bool {
	n := len(prog.Stmts)
	if n == 0 {
		return false
	}
	ifStmt, ok := prog.Stmts[n-1].(*parser.IfStmt)
	return ok && ifStmt.Else == nil
}

func (s *session) continuing() bool {
	return s.pending.Len() > 0
}

func (s *session) source() string {
	return strings.Join(s.chunks, "")
}

func (s *session) program() (string, error) {
	return translate.String(s.source(), s.opts...)
}

func (s *session) reset() {
	s.pending.Reset()
	s.chunks = nil
	s.reopened = ""
	s.openIf = false
}

// command runs a colon command. It reports quit for :quit.
func (s *session) command(ctx context.Context, name string, out io.Writer) (quit bool, err error) {
	switch name {
	case ":quit", ":q":
		return true, nil
	case ":reset":
		s.reset()
		return false, nil
	case ":show":
		code, err := s.program()
		if err != nil {
			return false, err
		}
		_, err = io.WriteString(out, code)
		return false, err
	case ":run":
		return false, translate.RunSource(ctx, s.source(), s.opts...)
	default:
		return false, fmt.Errorf("unknown command %s (try :run, :show, :reset or :quit)", name)
	}
}

func runSession(s *session) error {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := sessionHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		prompt := "mesel> "
		if s.continuing() {
			prompt = ".... "
		}
		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				s.abort()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return nil
			default:
				return fmt.Errorf("read error: %w", err)
			}
		}

		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			state.AppendHistory(trimmed)
		}
		if strings.HasPrefix(trimmed, ":") && !s.continuing() {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			quit, err := s.command(ctx, trimmed, os.Stdout)
			stop()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			if quit {
				return nil
			}
			continue
		}

		code, _, err := s.feed(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Print(code)
	}
}

func sessionHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".mesel_history")
}
