package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/gcl/report"
	"github.com/spf13/cobra"
)

var reportOpts struct {
	expr   string
	output string
	format string
	title  string
}

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Write an analysis report for a program",
	Long: `Report tokenizes and parses a program and writes the tokens together with
the AST, or the analysis error, as a paginated text report. Formats "json"
and "yaml" write the same analysis as data.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOpts.expr, "expr", "e", "", "program text")
	reportCmd.Flags().StringVarP(&reportOpts.output, "output", "o", "", "output file (default stdout)")
	reportCmd.Flags().StringVarP(&reportOpts.format, "format", "f", "text", "report format [text|json|yaml]")
	reportCmd.Flags().StringVar(&reportOpts.title, "title", "", "report title (default from config)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) (err error) {
	source, err := readSource(cmd, args, reportOpts.expr)
	if err != nil {
		return err
	}
	title := reportOpts.title
	if title == "" {
		title = conf.Report.Title
	}
	a := report.Analyze(title, source)
	var w io.Writer = cmd.OutOrStdout()
	if reportOpts.output != "" {
		f, ferr := os.Create(reportOpts.output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	switch reportOpts.format {
	case "text":
		layout := report.Layout{PageLines: conf.Report.PageLines, LineWidth: conf.Report.LineWidth}
		err = report.WriteText(w, a, layout)
	case "json":
		err = report.WriteJSON(w, a)
	case "yaml":
		err = report.WriteYAML(w, a)
	default:
		return fmt.Errorf("unknown report format %q", reportOpts.format)
	}
	if err == nil && reportOpts.output != "" {
		tracer().Infof("report %s written to %s", a.ID, reportOpts.output)
	}
	return err
}
