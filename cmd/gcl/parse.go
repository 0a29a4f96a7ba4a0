package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/gcl/ast"
	"github.com/npillmayer/gcl/parser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseOpts struct {
	expr   string
	format string
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Show the abstract syntax tree of a program",
	Long: `Parse analyzes a program and prints its abstract syntax tree.

Formats are "tree" (terminal tree view), "json", "yaml" and "source" (the
program pretty-printed). Analysis errors exit with status 2.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOpts.expr, "expr", "e", "", "program text")
	parseCmd.Flags().StringVarP(&parseOpts.format, "format", "f", "", "output format [tree|json|yaml|source] (default from config)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args, parseOpts.expr)
	if err != nil {
		return err
	}
	format := parseOpts.format
	if format == "" {
		format = conf.Output.Format
	}
	_, prog, err := parser.ParseSource(source)
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	tracer().Debugf("parsed: %v", prog)
	return writeAST(cmd.OutOrStdout(), prog, format)
}

func writeAST(w io.Writer, prog *ast.Program, format string) error {
	switch format {
	case "tree":
		return astTree(w, prog)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(prog)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.ToRecord(prog)); err != nil {
			return err
		}
		return enc.Close()
	case "source":
		_, err := io.WriteString(w, ast.Print(prog))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
