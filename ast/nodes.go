package ast

import "fmt"

// Node is implemented by all AST node types.
type Node interface {
	NodeType() string // tag of the node, e.g. "Assign"
	fmt.Stringer
}

// Stmt is implemented by statement nodes: *If, *Do and *Assign.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes: *BinaryOp, *Number and *Ident.
type Expr interface {
	Node
	exprNode()
}

// --- Operators -------------------------------------------------------------

// Operator is the symbol of a binary operation.
type Operator string

// Binary operators of GCL.
const (
	Eq  Operator = "=="
	Neq Operator = "!="
	Lt  Operator = "<"
	Gt  Operator = ">"
	Leq Operator = "<="
	Geq Operator = ">="
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
)

// Precedence levels, lowest first. All levels are left-associative.
const (
	LowestPrec   = 0
	EqualityPrec = 1
	RelationPrec = 2
	AdditivePrec = 3
	MultiplyPrec = 4
	PrimaryPrec  = 5 // literals, identifiers, parenthesized expressions
)

// Precedence returns the binding strength of op, or LowestPrec for
// strings which are not operators.
func (op Operator) Precedence() int {
	switch op {
	case Eq, Neq:
		return EqualityPrec
	case Lt, Gt, Leq, Geq:
		return RelationPrec
	case Add, Sub:
		return AdditivePrec
	case Mul, Div:
		return MultiplyPrec
	}
	return LowestPrec
}

// Valid is true for the operators of GCL.
func (op Operator) Valid() bool {
	return op.Precedence() != LowestPrec
}

// --- Nodes -----------------------------------------------------------------

// Program is the root of an AST.
type Program struct {
	Body []Stmt
}

// If is a guarded selection: if g1 | g2 | … fi
type If struct {
	Guards []*Guard // at least one
}

// Do is a guarded repetition: do g1 | g2 | … od
type Do struct {
	Guards []*Guard // at least one
}

// Guard is a guarded command: cond -> body
type Guard struct {
	Cond Expr
	Body []Stmt // may be empty
}

// Assign is an assignment: target := expr
type Assign struct {
	Target string
	Expr   Expr
}

// BinaryOp is a binary operation.
type BinaryOp struct {
	Op          Operator
	Left, Right Expr
}

// Number is an integer literal.
type Number struct {
	Value int64
}

// Ident is a reference to a variable.
type Ident struct {
	Name string
}

func (*If) stmtNode()     {}
func (*Do) stmtNode()     {}
func (*Assign) stmtNode() {}

func (*BinaryOp) exprNode() {}
func (*Number) exprNode()   {}
func (*Ident) exprNode()    {}

func (*Program) NodeType() string  { return "Program" }
func (*If) NodeType() string       { return "If" }
func (*Do) NodeType() string       { return "Do" }
func (*Guard) NodeType() string    { return "Guard" }
func (*Assign) NodeType() string   { return "Assign" }
func (*BinaryOp) NodeType() string { return "BinaryOp" }
func (*Number) NodeType() string   { return "Number" }
func (*Ident) NodeType() string    { return "Ident" }

// String methods render nodes in a compact, Lisp-like notation, which is
// mainly useful for tracing and test output.

func (p *Program) String() string {
	return fmt.Sprintf("(program%s)", stmtsString(p.Body))
}

func (n *If) String() string {
	return fmt.Sprintf("(if%s)", guardsString(n.Guards))
}

func (n *Do) String() string {
	return fmt.Sprintf("(do%s)", guardsString(n.Guards))
}

func (g *Guard) String() string {
	return fmt.Sprintf("(-> %s%s)", g.Cond, stmtsString(g.Body))
}

func (a *Assign) String() string {
	return fmt.Sprintf("(:= %s %s)", a.Target, a.Expr)
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Op, b.Left, b.Right)
}

func (n *Number) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func (id *Ident) String() string {
	return id.Name
}

func stmtsString(stmts []Stmt) string {
	s := ""
	for _, stmt := range stmts {
		s += " " + stmt.String()
	}
	return s
}

func guardsString(guards []*Guard) string {
	s := ""
	for _, g := range guards {
		s += " " + g.String()
	}
	return s
}
