package ast

import (
	"strconv"
	"strings"
)

// Indent is the indentation used by Print for nested statement lists.
const Indent = "    "

// Print renders an AST as GCL source text.
//
// Statements are printed one per line and separated by ';'. Guards of an
// if/do statement start on their own line, bodies are indented. Expressions
// are parenthesized only where precedence or left-associativity require it,
// so that parsing the output yields a structurally equal tree.
//
//	x := (1 + 2) * 3;
//	if x > 0 ->
//	    y := 1
//	| x <= 0 ->
//	    y := 0
//	fi
func Print(n Node) string {
	p := &printer{}
	switch n := n.(type) {
	case *Program:
		if len(n.Body) > 0 {
			p.stmts(n.Body, 0)
			p.WriteString("\n")
		}
	case Stmt:
		p.stmt(n, 0)
	case *Guard:
		p.guard(n, 0)
	case Expr:
		p.expr(n, LowestPrec)
	}
	return p.String()
}

type printer struct {
	strings.Builder
}

func (p *printer) indent(level int) {
	p.WriteString(strings.Repeat(Indent, level))
}

func (p *printer) stmts(stmts []Stmt, level int) {
	for i, s := range stmts {
		if i > 0 {
			p.WriteString(";\n")
		}
		p.indent(level)
		p.stmt(s, level)
	}
}

func (p *printer) stmt(s Stmt, level int) {
	switch s := s.(type) {
	case *Assign:
		p.WriteString(s.Target)
		p.WriteString(" := ")
		p.expr(s.Expr, LowestPrec)
	case *If:
		p.guarded("if", "fi", s.Guards, level)
	case *Do:
		p.guarded("do", "od", s.Guards, level)
	}
}

func (p *printer) guarded(open, close string, guards []*Guard, level int) {
	p.WriteString(open)
	p.WriteString(" ")
	for i, g := range guards {
		if i > 0 {
			p.WriteString("\n")
			p.indent(level)
			p.WriteString("| ")
		}
		p.guard(g, level)
	}
	p.WriteString("\n")
	p.indent(level)
	p.WriteString(close)
}

func (p *printer) guard(g *Guard, level int) {
	p.expr(g.Cond, LowestPrec)
	p.WriteString(" ->")
	if len(g.Body) > 0 {
		p.WriteString("\n")
		p.stmts(g.Body, level+1)
	}
}

// expr prints e, wrapping it in parentheses if its precedence is below prec.
func (p *printer) expr(e Expr, prec int) {
	switch e := e.(type) {
	case *Number:
		p.WriteString(strconv.FormatInt(e.Value, 10))
	case *Ident:
		p.WriteString(e.Name)
	case *BinaryOp:
		own := e.Op.Precedence()
		paren := own < prec
		if paren {
			p.WriteString("(")
		}
		p.expr(e.Left, own)
		p.WriteString(" ")
		p.WriteString(string(e.Op))
		p.WriteString(" ")
		p.expr(e.Right, own+1) // left-associative: equal precedence on the right needs parens
		if paren {
			p.WriteString(")")
		}
	}
}
