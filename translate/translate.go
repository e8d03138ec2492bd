// Package translate runs the Mesel pipeline on strings, readers and files,
// and executes the generated Python programs.
package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sergev/mesel/codegen"
	"github.com/sergev/mesel/internal/pycheck"
	"github.com/sergev/mesel/parser"
)

// ErrNoInterpreter is returned when no Python interpreter can be found.
var ErrNoInterpreter = errors.New("no python interpreter found on PATH")

// Option adjusts a translation.
type Option func(*options)

type options struct {
	parseOpts   []parser.Option
	verify      bool
	interpreter string
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

func newOptions(opts []Option) *options {
	o := &options{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithStrict rejects tokens that cannot start a statement.
func WithStrict() Option {
	return func(o *options) { o.parseOpts = append(o.parseOpts, parser.WithStrict()) }
}

// WithTrace calls fn for every token the lexer produces.
func WithTrace(fn func(parser.Token)) Option {
	return func(o *options) { o.parseOpts = append(o.parseOpts, parser.WithTrace(fn)) }
}

// WithVerify parses the generated Python before returning it.
func WithVerify() Option {
	return func(o *options) { o.verify = true }
}

// WithInterpreter selects the program used to run generated code.
func WithInterpreter(path string) Option {
	return func(o *options) { o.interpreter = path }
}

// WithStdio connects a run to the given streams instead of the process's own.
func WithStdio(in io.Reader, out, errw io.Writer) Option {
	return func(o *options) {
		o.stdin = in
		o.stdout = out
		o.stderr = errw
	}
}

func (o *options) translate(src string) (string, error) {
	tokens, err := parser.Tokenize(src, o.parseOpts...)
	if err != nil {
		return "", err
	}
	prog, err := parser.ParseTokens(tokens, o.parseOpts...)
	if err != nil {
		return "", err
	}
	code, err := codegen.Generate(prog)
	if err != nil {
		return "", err
	}
	if o.verify {
		if err := pycheck.Check(code); err != nil {
			return "", err
		}
	}
	return code, nil
}

// String translates Mesel source text into a Python program.
func String(src string, opts ...Option) (string, error) {
	return newOptions(opts).translate(src)
}

// Reader translates Mesel source read from r.
func Reader(r io.Reader, opts ...Option) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return String(string(data), opts...)
}

// OutputPath derives the default output file for a source path by replacing
// its extension with .py.
func OutputPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".py"
}

// File translates the source file in and writes the program to out, or to
// OutputPath(in) when out is empty. It returns the path written.
func File(in, out string, opts ...Option) (string, error) {
	return newOptions(opts).file(in, out)
}

func (o *options) file(in, out string) (string, error) {
	if out == "" {
		out = OutputPath(in)
	}
	if filepath.Clean(in) == filepath.Clean(out) {
		return "", fmt.Errorf("%s: output would overwrite the source file", in)
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return "", err
	}
	code, err := o.translate(string(data))
	if err != nil {
		return "", sourceError(in, err)
	}
	if err := os.WriteFile(out, []byte(code), 0o644); err != nil {
		return "", err
	}
	return out, nil
}

// sourceError prefixes err with the source path, joining positioned errors
// as path:line:column.
func sourceError(path string, err error) error {
	var (
		lexErr   *parser.LexicalError
		parseErr *parser.ParseError
		genErr   *codegen.Error
	)
	if errors.As(err, &lexErr) || errors.As(err, &parseErr) || errors.As(err, &genErr) {
		return fmt.Errorf("%s:%w", path, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}

// RunFile translates in next to the source, as File does, and runs the result.
func RunFile(ctx context.Context, in string, opts ...Option) error {
	o := newOptions(opts)
	script, err := o.file(in, "")
	if err != nil {
		return err
	}
	return o.run(ctx, script)
}

// RunSource translates src into a scratch file in the temporary directory,
// runs it and removes it afterwards.
func RunSource(ctx context.Context, src string, opts ...Option) error {
	o := newOptions(opts)
	code, err := o.translate(src)
	if err != nil {
		return err
	}
	script := filepath.Join(os.TempDir(), "mesel-"+uuid.NewString()+".py")
	if err := os.WriteFile(script, []byte(code), 0o600); err != nil {
		return err
	}
	defer os.Remove(script)
	return o.run(ctx, script)
}

func (o *options) run(ctx context.Context, script string) error {
	interp, err := o.lookInterpreter()
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, interp, script)
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", script, err)
	}
	return nil
}

func (o *options) lookInterpreter() (string, error) {
	if o.interpreter != "" {
		return o.interpreter, nil
	}
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNoInterpreter
}
