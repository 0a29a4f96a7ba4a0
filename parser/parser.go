package parser

import (
	"strconv"

	"github.com/npillmayer/gcl/ast"
	"github.com/npillmayer/gcl/scanner"
)

// Option configures a parse run.
type Option func(*config)

type config struct {
	eof    scanner.Token
	hasEOF bool
}

// WithEOF sets the end-of-input token to report for errors at the end of
// input. If it is not set, the parser positions an end-of-input token just
// behind the last input token. Use scanner.EOFToken to create one.
func WithEOF(eof scanner.Token) Option {
	return func(c *config) {
		c.eof = eof
		c.hasEOF = true
	}
}

// Parse creates an AST from a token sequence, as produced by scanner.Tokenize.
// Trivia tokens (comments, whitespace, newlines) are ignored.
//
// If the sequence contains tokens of kind scanner.Unknown, Parse fails with a
// *LexicalError for the first of them, before parsing starts. Otherwise Parse
// either returns a program or fails with a *SyntaxError for the first token
// which does not fit the grammar. No partial AST is returned on failure.
func Parse(tokens []scanner.Token, opts ...Option) (*ast.Program, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	tokens = withoutTrivia(tokens)
	if errs := scanner.Errors(tokens); len(errs) > 0 {
		tracer().Debugf("%d lexical error(s), first is %v", len(errs), errs[0])
		return nil, &LexicalError{Token: errs[0]}
	}
	if !cfg.hasEOF {
		cfg.eof = scanner.EOFAfter(tokens)
	}
	p := &parser{cursor: NewCursor(tokens, cfg.eof)}
	prog, err := p.program()
	if err != nil {
		tracer().Debugf("parse failed: %v", err)
		return nil, err
	}
	tracer().Debugf("parsed program with %d statement(s)", len(prog.Body))
	return prog, nil
}

// ParseSource tokenizes source and parses it. It returns the tokens in any
// case, so that clients are able to list them alongside an error.
func ParseSource(source string) ([]scanner.Token, *ast.Program, error) {
	tokens := scanner.Tokenize(source)
	prog, err := Parse(tokens, WithEOF(scanner.EOFToken(source)))
	return tokens, prog, err
}

func withoutTrivia(tokens []scanner.Token) []scanner.Token {
	for i, t := range tokens {
		if t.Kind.IsTrivia() || t.Kind == scanner.EOF {
			filtered := append([]scanner.Token{}, tokens[:i]...)
			for _, t := range tokens[i+1:] {
				if !t.Kind.IsTrivia() && t.Kind != scanner.EOF {
					filtered = append(filtered, t)
				}
			}
			return filtered
		}
	}
	return tokens
}

// --- Recursive descent -----------------------------------------------------

type parser struct {
	cursor *Cursor
}

// program ::= stmt_list
func (p *parser) program() (*ast.Program, error) {
	body, err := p.stmtList()
	if err != nil {
		return nil, err
	}
	if !p.cursor.AtEOF() {
		return nil, syntaxError(p.cursor.Peek(), "unexpected token in statement")
	}
	return &ast.Program{Body: body}, nil
}

// startsStatement is true if the current token may start a statement.
func (p *parser) startsStatement() bool {
	tok := p.cursor.Peek()
	return tok.Kind == scanner.Identifier || tok.IsKeyword("if") || tok.IsKeyword("do")
}

// stmt_list ::= stmt ( ';'? stmt )* ';'?
//
// The list ends, without consuming, at the first token which cannot start a
// statement. Each statement may be followed by one ';'.
func (p *parser) stmtList() ([]ast.Stmt, error) {
	stmts := []ast.Stmt{}
	for p.startsStatement() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if !p.cursor.Match(scanner.Semicolon, "") {
			continue
		}
		p.cursor.Next()
		if p.cursor.Match(scanner.Semicolon, "") {
			return nil, syntaxError(p.cursor.Peek(), "unexpected token in statement")
		}
	}
	return stmts, nil
}

// stmt ::= if_stmt | do_stmt | assignment
func (p *parser) statement() (ast.Stmt, error) {
	tok := p.cursor.Peek()
	tracer().Debugf("statement starting with %v", tok)
	switch {
	case tok.IsKeyword("if"):
		guards, err := p.guarded("if", "fi")
		if err != nil {
			return nil, err
		}
		return &ast.If{Guards: guards}, nil
	case tok.IsKeyword("do"):
		guards, err := p.guarded("do", "od")
		if err != nil {
			return nil, err
		}
		return &ast.Do{Guards: guards}, nil
	case tok.Kind == scanner.Identifier:
		return p.assignment()
	}
	return nil, syntaxError(tok, "unexpected token in statement")
}

// if_stmt ::= 'if' guard_list 'fi'
// do_stmt ::= 'do' guard_list 'od'
func (p *parser) guarded(open, close string) ([]*ast.Guard, error) {
	if _, err := p.cursor.Expect(scanner.Keyword, open); err != nil {
		return nil, err
	}
	guards, err := p.guardList()
	if err != nil {
		return nil, err
	}
	if tok := p.cursor.Peek(); !tok.IsKeyword(close) {
		return nil, syntaxError(tok, "expected '%s' to close '%s'", close, open)
	}
	p.cursor.Next()
	return guards, nil
}

// guard_list ::= guard ( '|' guard )*
func (p *parser) guardList() ([]*ast.Guard, error) {
	var guards []*ast.Guard
	for {
		g, err := p.guard()
		if err != nil {
			return nil, err
		}
		guards = append(guards, g)
		if !p.cursor.Match(scanner.Bar, "") {
			return guards, nil
		}
		p.cursor.Next()
	}
}

// guard ::= expr '->' stmt_list
func (p *parser) guard() (*ast.Guard, error) {
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !p.cursor.Match(scanner.Arrow, "") {
		return nil, syntaxError(p.cursor.Peek(), "expected '->' in guard")
	}
	p.cursor.Next()
	body, err := p.stmtList()
	if err != nil {
		return nil, err
	}
	return &ast.Guard{Cond: cond, Body: body}, nil
}

// assignment ::= IDENT ':=' expr
func (p *parser) assignment() (*ast.Assign, error) {
	target, err := p.cursor.Expect(scanner.Identifier, "")
	if err != nil {
		return nil, err
	}
	if !p.cursor.Match(scanner.Assign, "") {
		return nil, syntaxError(p.cursor.Peek(), "expected ':=' in assignment")
	}
	p.cursor.Next()
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Target: target.Text, Expr: expr}, nil
}

// --- Expressions -----------------------------------------------------------

// expr ::= equality
func (p *parser) expr() (ast.Expr, error) {
	return p.binary(ast.EqualityPrec)
}

// binary parses one tier of binary operators of precedence prec:
//
//	tier(prec) ::= tier(prec+1) ( op(prec) tier(prec+1) )*
//
// Operands are folded into left-nested BinaryOps.
func (p *parser) binary(prec int) (ast.Expr, error) {
	if prec > ast.MultiplyPrec {
		return p.factor()
	}
	left, err := p.binary(prec + 1)
	if err != nil {
		return nil, err
	}
	for p.operatorOf(prec) {
		op := p.cursor.Next()
		right, err := p.binary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: ast.Operator(op.Text), Left: left, Right: right}
	}
	return left, nil
}

// operatorOf is true if the current token is an operator of precedence prec.
func (p *parser) operatorOf(prec int) bool {
	tok := p.cursor.Peek()
	return tok.Kind == scanner.Operator && ast.Operator(tok.Text).Precedence() == prec
}

// factor ::= NUMBER | IDENT | '(' expr ')'
func (p *parser) factor() (ast.Expr, error) {
	tok := p.cursor.Peek()
	switch tok.Kind {
	case scanner.Number:
		value, err := strconv.ParseInt(scanner.ASCIIDigits(tok.Text), 10, 64)
		if err != nil {
			return nil, syntaxError(tok, "number literal out of range")
		}
		p.cursor.Next()
		return &ast.Number{Value: value}, nil
	case scanner.Identifier:
		p.cursor.Next()
		return &ast.Ident{Name: tok.Text}, nil
	case scanner.LParen:
		p.cursor.Next()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.cursor.Match(scanner.RParen, "") {
			return nil, syntaxError(p.cursor.Peek(), "missing closing ')'")
		}
		p.cursor.Next()
		return e, nil
	}
	return nil, syntaxError(tok, "unexpected token in factor")
}
