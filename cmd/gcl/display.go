package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/gcl/ast"
	"github.com/npillmayer/gcl/scanner"
	"github.com/pterm/pterm"
)

// tokenTable renders tokens as a table with a header row.
func tokenTable(w io.Writer, tokens []scanner.Token) error {
	data := pterm.TableData{{"Pos", "Kind", "Text", "Offset"}}
	for _, t := range tokens {
		data = append(data, []string{
			fmt.Sprintf("%d:%d", t.Line, t.Column),
			t.Kind.String(),
			fmt.Sprintf("%q", t.Text),
			fmt.Sprintf("%d", t.Offset),
		})
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// astTree renders an AST as a tree on the terminal.
func astTree(w io.Writer, n ast.Node) error {
	root := pterm.NewTreeFromLeveledList(leveledNode(n, pterm.LeveledList{}, 0))
	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, s)
	return err
}

func leveledNode(n ast.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  nodeLabel(n),
	})
	for _, c := range ast.Children(n) {
		ll = leveledNode(c, ll, level+1)
	}
	return ll
}

func nodeLabel(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Assign:
		return "Assign " + n.Target
	case *ast.BinaryOp:
		return "BinaryOp " + string(n.Op)
	case *ast.Number:
		return fmt.Sprintf("Number %d", n.Value)
	case *ast.Ident:
		return "Ident " + n.Name
	}
	return n.NodeType()
}
