package ast

import (
	"encoding/json"

	"github.com/cnf/structhash"
)

// Record is the serializable form of a node: a tagged map with key "node"
// holding the node type.
//
//	{"node": "BinaryOp", "op": "+", "left": {...}, "right": {...}}
type Record map[string]interface{}

// ToRecord converts an AST into nested records.
func ToRecord(n Node) Record {
	switch n := n.(type) {
	case *Program:
		return Record{"node": n.NodeType(), "body": stmtRecords(n.Body)}
	case *If:
		return Record{"node": n.NodeType(), "guards": guardRecords(n.Guards)}
	case *Do:
		return Record{"node": n.NodeType(), "guards": guardRecords(n.Guards)}
	case *Guard:
		return Record{"node": n.NodeType(), "cond": ToRecord(n.Cond), "body": stmtRecords(n.Body)}
	case *Assign:
		return Record{"node": n.NodeType(), "target": n.Target, "expr": ToRecord(n.Expr)}
	case *BinaryOp:
		return Record{"node": n.NodeType(), "op": string(n.Op), "left": ToRecord(n.Left), "right": ToRecord(n.Right)}
	case *Number:
		return Record{"node": n.NodeType(), "value": n.Value}
	case *Ident:
		return Record{"node": n.NodeType(), "name": n.Name}
	}
	return nil
}

func stmtRecords(stmts []Stmt) []Record {
	recs := make([]Record, 0, len(stmts))
	for _, s := range stmts {
		recs = append(recs, ToRecord(s))
	}
	return recs
}

func guardRecords(guards []*Guard) []Record {
	recs := make([]Record, 0, len(guards))
	for _, g := range guards {
		recs = append(recs, ToRecord(g))
	}
	return recs
}

func (p *Program) MarshalJSON() ([]byte, error)  { return json.Marshal(ToRecord(p)) }
func (n *If) MarshalJSON() ([]byte, error)       { return json.Marshal(ToRecord(n)) }
func (n *Do) MarshalJSON() ([]byte, error)       { return json.Marshal(ToRecord(n)) }
func (g *Guard) MarshalJSON() ([]byte, error)    { return json.Marshal(ToRecord(g)) }
func (a *Assign) MarshalJSON() ([]byte, error)   { return json.Marshal(ToRecord(a)) }
func (b *BinaryOp) MarshalJSON() ([]byte, error) { return json.Marshal(ToRecord(b)) }
func (n *Number) MarshalJSON() ([]byte, error)   { return json.Marshal(ToRecord(n)) }
func (id *Ident) MarshalJSON() ([]byte, error)   { return json.Marshal(ToRecord(id)) }

// --- Structural hashing ----------------------------------------------------

// shape is a homogenous mirror of an AST, suitable for hashing.
// Fields have to be exported for structhash.
type shape struct {
	Type  string
	Op    string
	Name  string
	Value int64
	Kids  []shape
}

func shapeOf(n Node) shape {
	sh := shape{Type: n.NodeType()}
	switch n := n.(type) {
	case *Program:
		sh.Kids = stmtShapes(n.Body)
	case *If:
		sh.Kids = guardShapes(n.Guards)
	case *Do:
		sh.Kids = guardShapes(n.Guards)
	case *Guard:
		sh.Kids = append([]shape{shapeOf(n.Cond)}, stmtShapes(n.Body)...)
	case *Assign:
		sh.Name = n.Target
		sh.Kids = []shape{shapeOf(n.Expr)}
	case *BinaryOp:
		sh.Op = string(n.Op)
		sh.Kids = []shape{shapeOf(n.Left), shapeOf(n.Right)}
	case *Number:
		sh.Value = n.Value
	case *Ident:
		sh.Name = n.Name
	}
	return sh
}

func stmtShapes(stmts []Stmt) []shape {
	shapes := make([]shape, len(stmts))
	for i, s := range stmts {
		shapes[i] = shapeOf(s)
	}
	return shapes
}

func guardShapes(guards []*Guard) []shape {
	shapes := make([]shape, len(guards))
	for i, g := range guards {
		shapes[i] = shapeOf(g)
	}
	return shapes
}

// Fingerprint returns a hash of the structure of an AST. Structurally equal
// trees have equal fingerprints.
func Fingerprint(n Node) (string, error) {
	return structhash.Hash(shapeOf(n), 1)
}
