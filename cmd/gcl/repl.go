package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gcl/ast"
	"github.com/npillmayer/gcl/parser"
	"github.com/npillmayer/gcl/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Analyze programs interactively",
	Long: `Repl reads programs line by line and prints their AST, pretty-printed as
GCL source. A line ending in '\' is continued on the next line.

Commands:
  :tokens   toggle the token table
  :tree     toggle the tree view of the AST
  :quit     leave (as does <ctrl>D)`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	rl, err := readline.New("gcl> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Welcome to the GCL REPL")
	tracer().Infof("Quit with <ctrl>D")
	intp := &Intp{repl: rl, out: rl.Stdout()}
	intp.REPL()
	return nil
}

// Intp is the interactive analyzer.
type Intp struct {
	repl       *readline.Instance
	out        io.Writer
	showTokens bool
	showTree   bool
	pending    []string // continued lines
	lastPrint  string   // fingerprint of the last program
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if quit := intp.Eval(line); quit {
			break
		}
		if len(intp.pending) > 0 {
			intp.repl.SetPrompt("...> ")
		} else {
			intp.repl.SetPrompt("gcl> ")
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval handles one line of input. It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(intp.pending) == 0 {
		switch trimmed {
		case "":
			return false
		case ":quit", ":q":
			return true
		case ":tokens":
			intp.showTokens = !intp.showTokens
			pterm.Info.Println(fmt.Sprintf("token table %s", onOff(intp.showTokens)))
			return false
		case ":tree":
			intp.showTree = !intp.showTree
			pterm.Info.Println(fmt.Sprintf("tree view %s", onOff(intp.showTree)))
			return false
		}
	}
	if strings.HasSuffix(trimmed, `\`) {
		intp.pending = append(intp.pending, strings.TrimSuffix(trimmed, `\`))
		return false
	}
	source := strings.Join(append(intp.pending, line), "\n")
	intp.pending = nil
	intp.analyze(source)
	return false
}

func (intp *Intp) analyze(source string) {
	tokens, prog, err := parser.ParseSource(source)
	if intp.showTokens {
		if err := tokenTable(intp.out, tokens); err != nil {
			tracer().Errorf("cannot display tokens: %v", err)
		}
	}
	if err != nil {
		if e, ok := parser.AsAnalysisError(err); ok {
			pterm.Error.Println(e.Error())
			intp.pointAt(source, e.Offender())
		} else {
			pterm.Error.Println(err.Error())
		}
		return
	}
	if intp.showTree {
		if err := astTree(intp.out, prog); err != nil {
			tracer().Errorf("cannot display tree: %v", err)
		}
	}
	pterm.Info.Println(strings.TrimSuffix(ast.Print(prog), "\n"))
	if fp, err := ast.Fingerprint(prog); err == nil {
		if fp == intp.lastPrint {
			tracer().Infof("same structure as previous program")
		}
		intp.lastPrint = fp
	}
}

// pointAt prints the source line of tok and underlines the token. Tokens
// at end of input get a single marker.
func (intp *Intp) pointAt(source string, tok scanner.Token) {
	lines := strings.Split(source, "\n")
	if tok.Line < 1 || tok.Line > len(lines) {
		return
	}
	width := 1
	if span := tok.Span(); span.To() <= uint64(len(source)) {
		if n := utf8.RuneCountInString(source[span.From():span.To()]); n > 1 {
			width = n
		}
	}
	fmt.Fprintln(intp.out, "  "+lines[tok.Line-1])
	fmt.Fprintln(intp.out, "  "+strings.Repeat(" ", tok.Column-1)+strings.Repeat("^", width))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
