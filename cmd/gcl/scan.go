package main

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/gcl/scanner"
	"github.com/npillmayer/gcl/scanner/lexmach"
	"github.com/spf13/cobra"
)

var scanOpts struct {
	expr   string
	engine string
	all    bool
	asJSON bool
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "List the tokens of a program",
	Long: `Scan tokenizes a program and lists its tokens with their positions.

Engine "ordered" is the reference tokenizer. Engine "dfa" is a tokenizer
compiled to a DFA; it uses longest-match semantics and therefore differs
for inputs like "12abc".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanOpts.expr, "expr", "e", "", "program text")
	scanCmd.Flags().StringVar(&scanOpts.engine, "engine", "", "tokenizer [ordered|dfa] (default from config)")
	scanCmd.Flags().BoolVar(&scanOpts.all, "all", false, "include comments, whitespace and newlines (ordered engine only)")
	scanCmd.Flags().BoolVar(&scanOpts.asJSON, "json", false, "output tokens as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args, scanOpts.expr)
	if err != nil {
		return err
	}
	engine := scanOpts.engine
	if engine == "" {
		engine = conf.Output.Engine
	}
	tokens, err := tokenize(source, engine, scanOpts.all)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if scanOpts.asJSON {
		if tokens == nil {
			tokens = []scanner.Token{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	}
	if err := tokenTable(out, tokens); err != nil {
		return err
	}
	if errs := scanner.Errors(tokens); len(errs) > 0 {
		return &exitError{code: 2, err: fmt.Errorf("%d unrecognized character(s), first at %d:%d",
			len(errs), errs[0].Line, errs[0].Column)}
	}
	return nil
}

func tokenize(source, engine string, all bool) ([]scanner.Token, error) {
	switch engine {
	case "ordered":
		if all {
			return scanner.ScanAll(source), nil
		}
		return scanner.Tokenize(source), nil
	case "dfa":
		if all {
			return nil, fmt.Errorf("flag --all is not supported by engine dfa")
		}
		tokenizer, err := lexmach.NewTokenizer()
		if err != nil {
			return nil, err
		}
		return tokenizer.Tokenize(source)
	}
	return nil, fmt.Errorf("unknown tokenizer engine %q", engine)
}
