package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/gcl/config"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

var (
	configFile string
	traceLevel string
	conf       = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gcl",
	Short: "Lexer and parser for the Guarded Command Language",
	Long: `gcl tokenizes and parses programs in Dijkstra's Guarded Command Language.

Commands:
  scan     list the tokens of a program
  parse    show the abstract syntax tree of a program
  report   write an analysis report
  serve    offer analysis over HTTP
  repl     analyze programs interactively
`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of gcl",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gcl %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level [Debug|Info|Error]")
	rootCmd.AddCommand(versionCmd)
}

// tracingKeys are the keys of all packages of gcl.
var tracingKeys = []string{"gcl.cli", "gcl.scanner", "gcl.parser", "gcl.report", "gcl.server"}

// setup loads the configuration and sets up logging and display.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	c, err := config.Load(configFile)
	if err != nil {
		return err
	}
	conf = c
	if traceLevel != "" {
		conf.Trace = traceLevel
	}
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(conf.Trace))
	}
	tracer().Debugf("configuration loaded from %q", configFile)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// readSource returns the program text from -e, a file argument, or stdin.
func readSource(cmd *cobra.Command, args []string, expr string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("cannot read source: %w", err)
	}
	return strings.TrimPrefix(string(b), "\ufeff"), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		var e *exitError
		if errors.As(err, &e) {
			os.Exit(e.code)
		}
		os.Exit(1)
	}
}
