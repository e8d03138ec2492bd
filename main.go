package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/sergev/mesel/parser"
	"github.com/sergev/mesel/translate"
)

const usage = `usage:
  mesel [-strict] [-check] [-tokens] [-ast] <input> [output]
  mesel run [-strict] [-check] [-python path] <input>
  mesel [-strict]    interactive session, or stdin to stdout when not a terminal
`

func main() {
	logger := log.New(os.Stderr, "mesel: ", 0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, logger)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Print(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	if len(args) > 0 && args[0] == "run" {
		return runCommand(ctx, args[1:], stdin, stdout, logger)
	}
	return translateCommand(args, stdin, stdout, logger)
}

func newFlagSet(name string, logger *log.Logger) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(logger.Writer())
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	return fs
}

func translateCommand(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	fs := newFlagSet("mesel", logger)
	strict := fs.Bool("strict", false, "reject tokens that cannot start a statement")
	check := fs.Bool("check", false, "verify that the generated Python parses")
	tokens := fs.Bool("tokens", false, "log every token to stderr")
	dump := fs.Bool("ast", false, "print the syntax tree before translating")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []translate.Option
	var parseOpts []parser.Option
	if *strict {
		opts = append(opts, translate.WithStrict())
		parseOpts = append(parseOpts, parser.WithStrict())
	}
	if *check {
		opts = append(opts, translate.WithVerify())
	}
	if *tokens {
		opts = append(opts, translate.WithTrace(func(tok parser.Token) {
			logger.Printf("%d:%d %s %q", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Lexeme)
		}))
	}

	switch fs.NArg() {
	case 0:
		if isInteractive(stdin) {
			return runSession(newSession(parseOpts, opts))
		}
		code, err := translate.Reader(stdin, opts...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, code)
		return err
	case 1, 2:
	default:
		fs.Usage()
		return errors.New("too many arguments")
	}

	in := fs.Arg(0)
	if *dump {
		if err := printTree(stdout, in, parseOpts); err != nil {
			return err
		}
	}
	out, err := translate.File(in, fs.Arg(1), opts...)
	if err != nil {
		return err
	}
	info, err := os.Stat(out)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "translated %s -> %s (%s)\n", in, out, humanize.Bytes(uint64(info.Size())))
	return nil
}

func printTree(w io.Writer, path string, opts []parser.Option) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	prog, err := parser.ParseReader(f, opts...)
	if err != nil {
		return fmt.Errorf("%s:%w", path, err)
	}
	_, err = fmt.Fprintln(w, parser.Dump(prog))
	return err
}

func runCommand(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	fs := newFlagSet("mesel run", logger)
	strict := fs.Bool("strict", false, "reject tokens that cannot start a statement")
	check := fs.Bool("check", false, "verify that the generated Python parses")
	python := fs.String("python", "", "interpreter used to run the program")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("run needs exactly one input file")
	}

	opts := []translate.Option{translate.WithStdio(stdin, stdout, logger.Writer())}
	if *strict {
		opts = append(opts, translate.WithStrict())
	}
	if *check {
		opts = append(opts, translate.WithVerify())
	}
	if *python != "" {
		opts = append(opts, translate.WithInterpreter(*python))
	}
	return translate.RunFile(ctx, fs.Arg(0), opts...)
}

func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
