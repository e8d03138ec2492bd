package parser

import "io"

// Option adjusts lexing and parsing.
type Option func(*config)

type config struct {
	strict bool
	trace  func(Token)
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithStrict makes tokens that cannot start a statement a ParseError
// instead of skipping them.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

// WithTrace registers a hook called for each token as the lexer produces it.
func WithTrace(fn func(Token)) Option {
	return func(c *config) { c.trace = fn }
}

// Tokenize splits Mesel source text into tokens. The result always ends
// with exactly one EOF token.
func Tokenize(src string, opts ...Option) ([]Token, error) {
	cfg := newConfig(opts)
	lx := newLexer(src)
	lx.trace = cfg.trace
	return lx.tokenize()
}

// Parse translates source text into a Program AST.
func Parse(src string, opts ...Option) (*Program, error) {
	tokens, err := Tokenize(src, opts...)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, opts...)
}

// ParseReader consumes Mesel source from an io.Reader and returns its AST.
func ParseReader(r io.Reader, opts ...Option) (*Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), opts...)
}
