package ast

// Children returns the direct children of n in source order. Nil children
// are omitted.
func Children(n Node) []Node {
	var kids []Node
	add := func(c Node) {
		if c != nil {
			kids = append(kids, c)
		}
	}
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Body {
			add(s)
		}
	case *If:
		for _, g := range n.Guards {
			if g != nil {
				kids = append(kids, g)
			}
		}
	case *Do:
		for _, g := range n.Guards {
			if g != nil {
				kids = append(kids, g)
			}
		}
	case *Guard:
		add(n.Cond)
		for _, s := range n.Body {
			add(s)
		}
	case *Assign:
		add(n.Expr)
	case *BinaryOp:
		add(n.Left)
		add(n.Right)
	}
	return kids
}

// Inspect traverses an AST in depth-first order: it starts by calling f(n);
// n must not be nil. If f returns true, Inspect invokes f recursively for each
// of the non-nil children of n.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Count returns the number of nodes per node type within the tree rooted at n.
func Count(n Node) map[string]int {
	counts := make(map[string]int)
	Inspect(n, func(n Node) bool {
		counts[n.NodeType()]++
		return true
	})
	return counts
}
