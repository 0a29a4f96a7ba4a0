package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/gcl/ast"
	"github.com/npillmayer/gcl/parser"
	"github.com/npillmayer/gcl/scanner"
	"gopkg.in/yaml.v3"
)

// ParseFailed is the headline of reports for programs which did not parse.
const ParseFailed = "Parse failed - see tokens / lexical errors"

// Analysis is the outcome of tokenizing and parsing a program. Exactly one of
// AST and Error is set.
type Analysis struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Generated   time.Time       `json:"generated" yaml:"generated"`
	Source      string          `json:"source" yaml:"source"`
	Tokens      []scanner.Token `json:"tokens" yaml:"tokens"`
	AST         ast.Record      `json:"ast,omitempty" yaml:"ast,omitempty"`
	Fingerprint string          `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Error       *Failure        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failure describes why a program could not be parsed.
type Failure struct {
	Kind    string        `json:"kind" yaml:"kind"` // "lexical error" or "syntax error"
	Message string        `json:"message" yaml:"message"`
	Token   scanner.Token `json:"token" yaml:"token"`
}

// Analyze tokenizes and parses source. It never fails; parse errors are
// recorded in the analysis.
func Analyze(title, source string) *Analysis {
	tokens, prog, err := parser.ParseSource(source)
	a := &Analysis{
		ID:        uuid.New().String(),
		Title:     title,
		Generated: time.Now().UTC(),
		Source:    source,
		Tokens:    tokens,
	}
	if a.Tokens == nil {
		a.Tokens = []scanner.Token{}
	}
	if err != nil {
		a.Error = failureFrom(err)
		tracer().Infof("analysis %s: %v", a.ID, err)
		return a
	}
	a.AST = ast.ToRecord(prog)
	if fp, err := ast.Fingerprint(prog); err == nil {
		a.Fingerprint = fp
	} else {
		tracer().Errorf("cannot fingerprint AST: %v", err)
	}
	tracer().Debugf("analysis %s: %d tokens, %d statements", a.ID, len(tokens), len(prog.Body))
	return a
}

func failureFrom(err error) *Failure {
	if e, ok := parser.AsAnalysisError(err); ok {
		return &Failure{Kind: e.Kind().String(), Message: e.Error(), Token: e.Offender()}
	}
	return &Failure{Kind: "error", Message: err.Error()}
}

// OK is true if the program has been parsed successfully.
func (a *Analysis) OK() bool {
	return a.Error == nil
}

// WriteJSON writes an analysis as indented JSON.
func WriteJSON(w io.Writer, a *Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("report: cannot encode analysis as JSON: %w", err)
	}
	return nil
}

// WriteYAML writes an analysis as a YAML document.
func WriteYAML(w io.Writer, a *Analysis) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("report: cannot encode analysis as YAML: %w", err)
	}
	return enc.Close()
}
