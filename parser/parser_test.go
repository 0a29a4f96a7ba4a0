package parser

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/npillmayer/gcl/ast"
	"github.com/npillmayer/gcl/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func num(v int64) *ast.Number   { return &ast.Number{Value: v} }
func id(name string) *ast.Ident { return &ast.Ident{Name: name} }
func assign(target string, e ast.Expr) *ast.Assign {
	return &ast.Assign{Target: target, Expr: e}
}
func bin(op ast.Operator, l, r ast.Expr) *ast.BinaryOp {
	return &ast.BinaryOp{Op: op, Left: l, Right: r}
}
func guard(cond ast.Expr, body ...ast.Stmt) *ast.Guard {
	if body == nil {
		body = []ast.Stmt{}
	}
	return &ast.Guard{Cond: cond, Body: body}
}
func program(body ...ast.Stmt) *ast.Program {
	if body == nil {
		body = []ast.Stmt{}
	}
	return &ast.Program{Body: body}
}

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	_, prog, err := ParseSource(input)
	if err != nil {
		t.Fatalf("input %q: unexpected error: %v", input, err)
	}
	return prog
}

func TestParseEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	prog, err := Parse(scanner.Tokenize(""))
	if err != nil {
		t.Fatalf("expected empty input to parse, have %v", err)
	}
	if prog == nil || len(prog.Body) != 0 {
		t.Errorf("expected empty program, have %v", prog)
	}
}

func TestParseExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		expr  ast.Expr
	}{
		{"x := 1 - 2 - 3", bin(ast.Sub, bin(ast.Sub, num(1), num(2)), num(3))},
		{"x := 1 + 2 * 3", bin(ast.Add, num(1), bin(ast.Mul, num(2), num(3)))},
		{"x := (1 + 2) * 3", bin(ast.Mul, bin(ast.Add, num(1), num(2)), num(3))},
		{"x := 8 / 4 / 2", bin(ast.Div, bin(ast.Div, num(8), num(4)), num(2))},
		{"x := a < b == c > d", bin(ast.Eq, bin(ast.Lt, id("a"), id("b")), bin(ast.Gt, id("c"), id("d")))},
		{"x := a + b <= c * d != e", bin(ast.Neq,
			bin(ast.Leq, bin(ast.Add, id("a"), id("b")), bin(ast.Mul, id("c"), id("d"))),
			id("e"))},
		{"x := ((y))", id("y")},
		{"x := ٤٢ * 2", bin(ast.Mul, num(42), num(2))},
		{"x := a >= 1 - (2 - 3)", bin(ast.Geq, id("a"), bin(ast.Sub, num(1), bin(ast.Sub, num(2), num(3))))},
	} {
		expected := program(assign("x", test.expr))
		if prog := parse(t, test.input); !reflect.DeepEqual(prog, expected) {
			t.Errorf("test %d: %q parsed to %v, expected %v", i, test.input, prog, expected)
		}
	}
}

func TestParseGuards(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	prog := parse(t, "if x > 0 -> y := 1 | x <= 0 -> y := 0 fi")
	expected := program(&ast.If{Guards: []*ast.Guard{
		guard(bin(ast.Gt, id("x"), num(0)), assign("y", num(1))),
		guard(bin(ast.Leq, id("x"), num(0)), assign("y", num(0))),
	}})
	if !reflect.DeepEqual(prog, expected) {
		t.Errorf("parsed to %v, expected %v", prog, expected)
	}
	ifStmt := prog.Body[0].(*ast.If)
	if len(ifStmt.Guards) != 2 || len(ifStmt.Guards[0].Body) != 1 || len(ifStmt.Guards[1].Body) != 1 {
		t.Errorf("expected 2 guards with one statement each, have %v", ifStmt)
	}
}

func TestParseNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	input := `
	// Euclid
	a := 12; b := 18;
	do a > b -> a := a - b
	 | b > a -> b := b - a;
	           if b == 0 -> skip := 1 fi;
	od;
	gcd := a
	`
	expected := program(
		assign("a", num(12)),
		assign("b", num(18)),
		&ast.Do{Guards: []*ast.Guard{
			guard(bin(ast.Gt, id("a"), id("b")), assign("a", bin(ast.Sub, id("a"), id("b")))),
			guard(bin(ast.Gt, id("b"), id("a")),
				assign("b", bin(ast.Sub, id("b"), id("a"))),
				&ast.If{Guards: []*ast.Guard{
					guard(bin(ast.Eq, id("b"), num(0)), assign("skip", num(1))),
				}},
			),
		}},
		assign("gcd", id("a")),
	)
	if prog := parse(t, input); !reflect.DeepEqual(prog, expected) {
		t.Errorf("parsed to %v, expected %v", prog, expected)
	}
}

func TestParseEmptyGuardBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	expected := program(&ast.Do{Guards: []*ast.Guard{guard(id("x"))}})
	if prog := parse(t, "do x -> od"); !reflect.DeepEqual(prog, expected) {
		t.Errorf("parsed to %v, expected %v", prog, expected)
	}
	parse(t, "if a -> x := 1; | b -> y := 2; fi;")
	parse(t, "x := 1;")
}

func TestParseOptionalSemicolons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	for i, test := range []struct {
		input    string
		expected *ast.Program
	}{
		{"x := 1\ny := 2", program(assign("x", num(1)), assign("y", num(2)))},
		{"x := 1 y := 2;", program(assign("x", num(1)), assign("y", num(2)))},
		{"do a -> x := 1 if b -> y := 1 fi od", program(&ast.Do{Guards: []*ast.Guard{
			guard(id("a"),
				assign("x", num(1)),
				&ast.If{Guards: []*ast.Guard{guard(id("b"), assign("y", num(1)))}},
			),
		}})},
		{"do a > b -> a := a - b if b == 0 -> c := 1 fi od", program(&ast.Do{Guards: []*ast.Guard{
			guard(bin(ast.Gt, id("a"), id("b")),
				assign("a", bin(ast.Sub, id("a"), id("b"))),
				&ast.If{Guards: []*ast.Guard{guard(bin(ast.Eq, id("b"), num(0)), assign("c", num(1)))}},
			),
		}})},
	} {
		if prog := parse(t, test.input); !reflect.DeepEqual(prog, test.expected) {
			t.Errorf("test %d: %q parsed to %v, expected %v", i, test.input, prog, test.expected)
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	for i, test := range []struct {
		input   string
		message string
		kind    scanner.TokKind
		text    string
		col     int
	}{
		{"if x > 0 -> y := 1", "expected 'fi' to close 'if'", scanner.EOF, "", 19},
		{"do x -> y := 1", "expected 'od' to close 'do'", scanner.EOF, "", 15},
		{"do x -> y := 1 fi", "expected 'od' to close 'do'", scanner.Keyword, "fi", 16},
		{"x 1", "expected ':=' in assignment", scanner.Number, "1", 3},
		{"if x fi", "expected '->' in guard", scanner.Keyword, "fi", 6},
		{"x := (1 + 2", "missing closing ')'", scanner.EOF, "", 12},
		{"x := ;", "unexpected token in factor", scanner.Semicolon, ";", 6},
		{"if fi", "unexpected token in factor", scanner.Keyword, "fi", 4},
		{"x := 1;; y := 2", "unexpected token in statement", scanner.Semicolon, ";", 8},
		{"; x := 1", "unexpected token in statement", scanner.Semicolon, ";", 1},
		{"x := 1 )", "unexpected token in statement", scanner.RParen, ")", 8},
		{"then x := 1", "unexpected token in statement", scanner.Keyword, "then", 1},
		{"fi", "unexpected token in statement", scanner.Keyword, "fi", 1},
		{"x := 99999999999999999999", "number literal out of range", scanner.Number, "99999999999999999999", 6},
	} {
		_, prog, err := ParseSource(test.input)
		if err == nil {
			t.Errorf("test %d: expected %q to fail, parsed to %v", i, test.input, prog)
			continue
		}
		if prog != nil {
			t.Errorf("test %d: expected no partial AST, have %v", i, prog)
		}
		synErr, ok := err.(*SyntaxError)
		if !ok {
			t.Errorf("test %d: expected syntax error, have %T: %v", i, err, err)
			continue
		}
		if synErr.Message != test.message {
			t.Errorf("test %d: expected message %q, have %q", i, test.message, synErr.Message)
		}
		tok := synErr.Offender()
		if tok.Kind != test.kind || tok.Text != test.text || tok.Line != 1 || tok.Column != test.col {
			t.Errorf("test %d: expected offender %s %q at 1:%d, have %v", i, test.kind, test.text, test.col, tok)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	_, _, err := ParseSource("if x > 0 -> y := 1")
	expected := "syntax error at 1:19: expected 'fi' to close 'if', found end of input"
	if err == nil || err.Error() != expected {
		t.Errorf("expected error %q, have %v", expected, err)
	}
	_, _, err = ParseSource("x := 1 @ 2")
	expected = `lexical error at 1:8: unrecognized character "@"`
	if err == nil || err.Error() != expected {
		t.Errorf("expected error %q, have %v", expected, err)
	}
}

func TestLexicalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	_, _, err := ParseSource("x := 1 @ 2")
	lexErr, ok := err.(*LexicalError)
	if !ok {
		t.Fatalf("expected lexical error, have %T: %v", err, err)
	}
	if tok := lexErr.Offender(); tok.Text != "@" || tok.Line != 1 || tok.Column != 8 || tok.Kind != scanner.Unknown {
		t.Errorf("expected '@' at 1:8, have %v", tok)
	}
	// lexical errors take priority over syntax errors, and the first one is reported
	_, _, err = ParseSource(":= := x\n  # $")
	if e, ok := AsAnalysisError(err); !ok || e.Kind() != Lexical || e.Offender().Text != "#" || e.Offender().Line != 2 {
		t.Errorf("expected lexical error for '#' in line 2, have %v", err)
	}
}

func TestAsAnalysisError(t *testing.T) {
	_, _, err := ParseSource("x :=")
	wrapped := fmt.Errorf("analysis of %q failed: %w", "x :=", err)
	e, ok := AsAnalysisError(wrapped)
	if !ok || e.Kind() != Syntactic || e.Offender().Kind != scanner.EOF {
		t.Errorf("expected wrapped syntax error at end of input, have %v", wrapped)
	}
	if _, ok := AsAnalysisError(fmt.Errorf("other")); ok {
		t.Errorf("expected other errors not to be analysis errors")
	}
}

func TestParseIgnoresTrivia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.parser")
	defer teardown()
	//
	source := "x := 1 // set x\ny := x"
	prog, err := Parse(scanner.ScanAll(source), WithEOF(scanner.EOFToken(source)))
	if err != nil {
		t.Fatal(err)
	}
	if expected := parse(t, source); !reflect.DeepEqual(prog, expected) {
		t.Errorf("expected trivia to be ignored, have %v", prog)
	}
}

func TestConcurrentParsing(t *testing.T) {
	inputs := []string{
		"x := 1 + 2 * 3",
		"if x > 0 -> y := 1 | x <= 0 -> y := 0 fi",
		"do i < 10 -> i := i + 1 od",
		"x := 1 @ 2",
	}
	expected := make([]string, len(inputs))
	for i, input := range inputs {
		_, prog, err := ParseSource(input)
		expected[i] = fmt.Sprintf("%v|%v", prog, err)
	}
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, input := range inputs {
				_, prog, err := ParseSource(input)
				if have := fmt.Sprintf("%v|%v", prog, err); have != expected[i] {
					t.Errorf("concurrent parse of %q differs: %s", input, have)
				}
			}
		}()
	}
	wg.Wait()
}
