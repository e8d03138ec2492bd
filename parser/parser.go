package parser

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseTokens builds a Program from a token sequence produced by Tokenize.
// A sequence missing its EOF terminator is treated as if it had one.
func ParseTokens(tokens []Token, opts ...Option) (*Program, error) {
	cfg := newConfig(opts)
	p := &parser{
		tokens: terminate(tokens),
		strict: cfg.strict,
	}
	return p.parseProgram()
}

type parser struct {
	tokens []Token
	pos    int
	strict bool
}

func terminate(tokens []Token) []Token {
	if n := len(tokens); n > 0 && tokens[n-1].Type == TokenEOF {
		return tokens
	}
	eof := Token{Type: TokenEOF, Pos: Position{Line: 1, Column: 1}}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		eof.Pos = last.Pos
		eof.Pos.Offset += len(last.Lexeme)
	}
	out := make([]Token, 0, len(tokens)+1)
	out = append(out, tokens...)
	return append(out, eof)
}

func (p *parser) curr() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *parser) atEnd() bool {
	return p.curr().Type == TokenEOF
}

func (p *parser) check(tt TokenType) bool {
	return p.curr().Type == tt
}

func (p *parser) advance() Token {
	tok := p.curr()
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

// match consumes the current token when it has one of the given types.
func (p *parser) match(types ...TokenType) (Token, bool) {
	for _, tt := range types {
		if p.check(tt) {
			return p.advance(), true
		}
	}
	return Token{}, false
}

func (p *parser) expect(tt TokenType, format string, args ...interface{}) (Token, error) {
	if !p.check(tt) {
		return Token{}, p.errorf(format, args...)
	}
	return p.advance(), nil
}

func (p *parser) parseProgram() (*Program, error) {
	prog := &Program{}
	stmts, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	prog.Stmts = stmts
	return prog, nil
}

// parseStatements collects statements until EOF, or until ጨርስ when inBlock
// is set. Tokens that cannot start a statement are skipped unless the
// parser is strict.
func (p *parser) parseStatements(inBlock bool) ([]Stmt, error) {
	var stmts []Stmt
	for !p.atEnd() {
		if inBlock && p.check(TokenEnd) {
			break
		}
		if p.check(TokenNewline) {
			p.advance()
			continue
		}
		if !isStatementStart(p.curr().Type) {
			if p.strict {
				return nil, p.errorf("unexpected token outside statement")
			}
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func isStatementStart(tt TokenType) bool {
	switch tt {
	case TokenAssign,
		TokenNumberType,
		TokenStringType,
		TokenBegin,
		TokenFor,
		TokenWhile,
		TokenIf,
		TokenBreak,
		TokenContinue,
		TokenPrint,
		TokenForward,
		TokenTurn,
		TokenPenDown,
		TokenPenUp,
		TokenColor,
		TokenWidth:
		return true
	}
	return false
}

func (p *parser) parseBlock(start Token) (*BlockStmt, error) {
	stmts, err := p.parseStatements(true)
	if err != nil {
		return nil, err
	}
	for p.check(TokenNewline) {
		p.advance()
	}
	if _, err := p.expect(TokenEnd, "expected %s to close block opened at %d:%d", TokenEnd, start.Pos.Line, start.Pos.Column); err != nil {
		return nil, err
	}
	return &BlockStmt{
		Stmts: stmts,
		Posn:  start.Pos,
	}, nil
}

func (p *parser) parseStatement() (Stmt, error) {
	switch p.curr().Type {
	case TokenAssign:
		return p.parseAssignStmt()
	case TokenNumberType, TokenStringType:
		return p.parseVarDecl()
	case TokenBegin:
		block, err := p.parseBlock(p.advance())
		if err != nil {
			return nil, err
		}
		return block, nil
	case TokenFor:
		return p.parseForStmt()
	case TokenWhile:
		return p.parseWhileStmt()
	case TokenIf:
		return p.parseIfStmt()
	case TokenBreak:
		return &BreakStmt{Posn: p.advance().Pos}, nil
	case TokenContinue:
		return &ContinueStmt{Posn: p.advance().Pos}, nil
	case TokenPrint:
		tok := p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &PrintStmt{Expr: expr, Posn: tok.Pos}, nil
	case TokenForward, TokenTurn:
		return p.parseMoveStmt()
	case TokenPenDown:
		return &PenDownStmt{Posn: p.advance().Pos}, nil
	case TokenPenUp:
		return &PenUpStmt{Posn: p.advance().Pos}, nil
	case TokenColor:
		return p.parseColorStmt()
	case TokenWidth:
		tok := p.advance()
		width, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &WidthStmt{Width: width, Posn: tok.Pos}, nil
	default:
		return nil, p.errorf("expected statement")
	}
}

func (p *parser) parseAssignStmt() (Stmt, error) {
	tok := p.advance()
	nameTok, err := p.expect(TokenIdentifier, "expected variable name after %s", tok.Type)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenAssignOp, "expected '=' after variable name"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &AssignStmt{
		Name:  nameTok.Lexeme,
		Value: value,
		Posn:  tok.Pos,
	}, nil
}

func (p *parser) parseVarDecl() (Stmt, error) {
	tok := p.advance()
	nameTok, err := p.expect(TokenIdentifier, "expected variable name after %s", tok.Type)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenAssignOp, "expected '=' after variable name"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &VarDecl{
		Name:  nameTok.Lexeme,
		Type:  tok.Type,
		Value: value,
		Posn:  tok.Pos,
	}, nil
}

func (p *parser) parseForStmt() (Stmt, error) {
	forTok := p.advance()
	if p.check(TokenNumber) {
		numTok := p.advance()
		end, err := numberLiteral(numTok)
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock(forTok)
		if err != nil {
			return nil, err
		}
		return &ForStmt{
			Start: &NumberExpr{Value: 0, Posn: numTok.Pos},
			End:   end,
			Body:  body,
			Posn:  forTok.Pos,
		}, nil
	}
	varTok, err := p.expect(TokenIdentifier, "expected variable name after %s", forTok.Type)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenAssignOp, "expected '=' after variable name"); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenComma, "expected ',' after start value"); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(forTok)
	if err != nil {
		return nil, err
	}
	return &ForStmt{
		Var:   varTok.Lexeme,
		Start: start,
		End:   end,
		Body:  body,
		Posn:  forTok.Pos,
	}, nil
}

func (p *parser) parseWhileStmt() (Stmt, error) {
	whTok := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock(whTok)
	if err != nil {
		return nil, err
	}
	return &WhileStmt{
		Cond: cond,
		Body: body,
		Posn: whTok.Pos,
	}, nil
}

func (p *parser) parseIfStmt() (Stmt, error) {
	ifTok := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock(ifTok)
	if err != nil {
		return nil, err
	}
	var elseBlock *BlockStmt
	if elseTok, ok := p.match(TokenElse); ok {
		elseBlock, err = p.parseBlock(elseTok)
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{
		Cond: cond,
		Then: thenBlock,
		Else: elseBlock,
		Posn: ifTok.Pos,
	}, nil
}

// parseMoveStmt handles ሂድ and ዙር, whose argument may be left out right
// before a line break or ጨርስ.
func (p *parser) parseMoveStmt() (Stmt, error) {
	tok := p.advance()
	var arg Expr
	// The argument may be left out only right before ጨርስ.
	if !p.check(TokenNewline) && !p.check(TokenEnd) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arg = expr
	}
	if tok.Type == TokenTurn {
		return &TurnStmt{Angle: arg, Posn: tok.Pos}, nil
	}
	return &ForwardStmt{Distance: arg, Posn: tok.Pos}, nil
}

func (p *parser) parseColorStmt() (Stmt, error) {
	tok := p.advance()
	if !p.curr().Type.IsColor() {
		return nil, p.errorf("expected color after %s", tok.Type)
	}
	return &ColorStmt{
		Color: p.advance().Type,
		Posn:  tok.Pos,
	}, nil
}

func (p *parser) parseExpression() (Expr, error) {
	return p.parseLogicalOr()
}

// parseBinary parses one left-associative precedence level.
func (p *parser) parseBinary(next func() (Expr, error), ops ...TokenType) (Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		opTok, ok := p.match(ops...)
		if !ok {
			return left, nil
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op:    symbolicOp(opTok.Type),
			Left:  left,
			Right: right,
			Posn:  opTok.Pos,
		}
	}
}

func (p *parser) parseLogicalOr() (Expr, error) {
	return p.parseBinary(p.parseLogicalAnd, TokenOr)
}

func (p *parser) parseLogicalAnd() (Expr, error) {
	return p.parseBinary(p.parseEquality, TokenAnd)
}

func (p *parser) parseEquality() (Expr, error) {
	return p.parseBinary(p.parseComparison, TokenEqualEqual, TokenBangEqual)
}

func (p *parser) parseComparison() (Expr, error) {
	return p.parseBinary(p.parseTerm, TokenGreater, TokenLess, TokenGreaterEqual, TokenLessEqual)
}

func (p *parser) parseTerm() (Expr, error) {
	return p.parseBinary(p.parseFactor, TokenPlus, TokenMinus, TokenAdd, TokenSubtract)
}

func (p *parser) parseFactor() (Expr, error) {
	return p.parseBinary(p.parsePower, TokenStar, TokenSlash, TokenPercent, TokenMultiply, TokenDivide, TokenModulo)
}

// parsePower applies ** at most once: 2**3**2 stops after 2**3.
func (p *parser) parsePower() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	opTok, ok := p.match(TokenStarStar, TokenPower)
	if !ok {
		return left, nil
	}
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{
		Op:    TokenStarStar,
		Left:  left,
		Right: right,
		Posn:  opTok.Pos,
	}, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if opTok, ok := p.match(TokenMinus, TokenNot); ok {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{
			Op:      opTok.Type,
			Operand: operand,
			Posn:    opTok.Pos,
		}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	switch p.curr().Type {
	case TokenNumber:
		num, err := numberLiteral(p.advance())
		if err != nil {
			return nil, err
		}
		return num, nil
	case TokenString:
		tok := p.advance()
		return &StringExpr{
			Value: tok.Lexeme,
			Posn:  tok.Pos,
		}, nil
	case TokenIdentifier:
		tok := p.advance()
		return &IdentifierExpr{
			Name: tok.Lexeme,
			Posn: tok.Pos,
		}, nil
	case TokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errorf("expected expression")
	}
}

func numberLiteral(tok Token) (*NumberExpr, error) {
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &ParseError{
			Pos:   tok.Pos,
			Found: tok.Type,
			Msg:   fmt.Sprintf("invalid number %q", tok.Lexeme),
		}
	}
	return &NumberExpr{
		Value: value,
		Posn:  tok.Pos,
	}, nil
}

// symbolicOp maps the Ethiopic arithmetic keywords onto their symbols.
func symbolicOp(tt TokenType) TokenType {
	switch tt {
	case TokenAdd:
		return TokenPlus
	case TokenSubtract:
		return TokenMinus
	case TokenMultiply:
		return TokenStar
	case TokenDivide:
		return TokenSlash
	case TokenModulo:
		return TokenPercent
	case TokenPower:
		return TokenStarStar
	default:
		return tt
	}
}

// errorf reports the current token. Running out of tokens marks the error
// as incomplete so interactive callers can ask for more input.
func (p *parser) errorf(format string, args ...interface{}) error {
	tok := p.curr()
	err := &ParseError{
		Pos:   tok.Pos,
		Found: tok.Type,
		Msg:   fmt.Sprintf(format, args...),
	}
	if tok.Type == TokenEOF {
		return newIncompleteError(err)
	}
	return err
}
