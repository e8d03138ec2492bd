package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	src    string
	pos    int
	line   int
	column int
	trace  func(Token)
}

func newLexer(src string) *lexer {
	return &lexer{
		src:    src,
		line:   1,
		column: 1,
	}
}

type runeState struct {
	pos    int
	line   int
	column int
}

func (lx *lexer) mark() runeState {
	return runeState{
		pos:    lx.pos,
		line:   lx.line,
		column: lx.column,
	}
}

func (lx *lexer) restore(state runeState) {
	lx.pos = state.pos
	lx.line = state.line
	lx.column = state.column
}

func (lx *lexer) readRune() (rune, runeState, error) {
	state := lx.mark()
	if lx.pos >= len(lx.src) {
		return 0, state, io.EOF
	}
	r, w := utf8.DecodeRuneInString(lx.src[lx.pos:])
	if r == utf8.RuneError && w == 1 {
		return 0, state, &LexicalError{
			Pos: positionFromState(state),
			Msg: fmt.Sprintf("invalid UTF-8 encoding at byte %d", lx.pos),
		}
	}
	lx.pos += w
	if r == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
	return r, state, nil
}

func (lx *lexer) match(expected rune) bool {
	state := lx.mark()
	r, _, err := lx.readRune()
	if err != nil {
		return false
	}
	if r != expected {
		lx.restore(state)
		return false
	}
	return true
}

func (lx *lexer) skipWhitespace() error {
	for {
		r, state, err := lx.readRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '#':
			if err := lx.skipComment(); err != nil {
				return err
			}
		default:
			lx.restore(state)
			return nil
		}
	}
}

// skipComment stops before the terminating newline.
func (lx *lexer) skipComment() error {
	for {
		r, state, err := lx.readRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if r == '\n' {
			lx.restore(state)
			return nil
		}
	}
}

func (lx *lexer) tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := lx.nextToken()
		if err != nil {
			return nil, err
		}
		if lx.trace != nil {
			lx.trace(tok)
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (lx *lexer) nextToken() (Token, error) {
	if err := lx.skipWhitespace(); err != nil {
		return Token{}, err
	}

	start := lx.mark()
	r, _, err := lx.readRune()
	if err == io.EOF {
		return simpleToken(TokenEOF, "", start), nil
	}
	if err != nil {
		return Token{}, err
	}

	switch {
	case isDigit(r):
		lexeme, err := lx.scanNumber(r, start)
		if err != nil {
			return Token{}, err
		}
		return simpleToken(TokenNumber, lexeme, start), nil
	case r == '"':
		value, err := lx.scanString(start)
		if err != nil {
			return Token{}, err
		}
		return simpleToken(TokenString, value, start), nil
	case isIdentifierStart(r):
		lexeme, err := lx.scanIdentifier(r)
		if err != nil {
			return Token{}, err
		}
		return makeIdentifierToken(lexeme, start), nil
	}

	switch r {
	case '=':
		if lx.match('=') {
			return simpleToken(TokenEqualEqual, "==", start), nil
		}
		return simpleToken(TokenAssignOp, "=", start), nil
	case '!':
		if lx.match('=') {
			return simpleToken(TokenBangEqual, "!=", start), nil
		}
	case '>':
		if lx.match('=') {
			return simpleToken(TokenGreaterEqual, ">=", start), nil
		}
		return simpleToken(TokenGreater, ">", start), nil
	case '<':
		if lx.match('=') {
			return simpleToken(TokenLessEqual, "<=", start), nil
		}
		return simpleToken(TokenLess, "<", start), nil
	case '*':
		if lx.match('*') {
			return simpleToken(TokenStarStar, "**", start), nil
		}
		return simpleToken(TokenStar, "*", start), nil
	case '+':
		return simpleToken(TokenPlus, "+", start), nil
	case '-':
		return simpleToken(TokenMinus, "-", start), nil
	case '/':
		return simpleToken(TokenSlash, "/", start), nil
	case '%':
		return simpleToken(TokenPercent, "%", start), nil
	case '(':
		return simpleToken(TokenLParen, "(", start), nil
	case ')':
		return simpleToken(TokenRParen, ")", start), nil
	case '{':
		return simpleToken(TokenLBrace, "{", start), nil
	case '}':
		return simpleToken(TokenRBrace, "}", start), nil
	case ',':
		return simpleToken(TokenComma, ",", start), nil
	}

	return Token{}, &LexicalError{
		Pos: positionFromState(start),
		Msg: fmt.Sprintf("invalid character %q", r),
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isEthiopic(r rune) bool {
	return r >= 0x1200 && r <= 0x137F
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || isEthiopic(r)
}

func isIdentifierPart(r rune) bool {
	return unicode.IsLetter(r) || isEthiopic(r) || unicode.IsDigit(r) || unicode.IsNumber(r) || r == '_'
}

func (lx *lexer) scanIdentifier(initial rune) (string, error) {
	var builder strings.Builder
	builder.WriteRune(initial)
	for {
		r, state, err := lx.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if !isIdentifierPart(r) {
			lx.restore(state)
			break
		}
		builder.WriteRune(r)
	}
	return builder.String(), nil
}

func (lx *lexer) scanNumber(initial rune, start runeState) (string, error) {
	var builder strings.Builder
	builder.WriteRune(initial)
	dots := 0
	for {
		r, state, err := lx.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if r == '.' {
			dots++
		} else if !isDigit(r) {
			lx.restore(state)
			break
		}
		builder.WriteRune(r)
	}
	lexeme := builder.String()
	if dots > 1 {
		return "", &LexicalError{
			Pos: positionFromState(start),
			Msg: fmt.Sprintf("malformed number %q", lexeme),
		}
	}
	return lexeme, nil
}

func (lx *lexer) scanString(start runeState) (string, error) {
	var builder strings.Builder
	for {
		r, _, err := lx.readRune()
		if err == io.EOF {
			return "", newIncompleteError(&LexicalError{
				Pos: positionFromState(start),
				Msg: "unterminated string literal",
			})
		}
		if err != nil {
			return "", err
		}
		if r == '"' {
			return builder.String(), nil
		}
		builder.WriteRune(r)
	}
}

func makeIdentifierToken(lexeme string, start runeState) Token {
	if keywordType, ok := keywordToken(lexeme); ok {
		return simpleToken(keywordType, lexeme, start)
	}
	return simpleToken(TokenIdentifier, lexeme, start)
}

func simpleToken(tt TokenType, lexeme string, start runeState) Token {
	return Token{
		Type:   tt,
		Lexeme: lexeme,
		Pos:    positionFromState(start),
	}
}

func positionFromState(state runeState) Position {
	return Position{
		Offset: state.pos,
		Line:   state.line,
		Column: state.column,
	}
}
