package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/npillmayer/gcl/ast"
	"github.com/npillmayer/gcl/parser"
	"github.com/npillmayer/gcl/report"
	"github.com/npillmayer/gcl/scanner"
)

const usage = `GCL analysis service

POST /scan     form field "code": tokens as JSON
POST /parse    form field "code": AST and tokens as JSON
POST /report   form field "code": text report for download
`

// parseResponse is the body of a /parse response.
type parseResponse struct {
	OK      bool            `json:"ok"`
	AST     *ast.Program    `json:"ast,omitempty"`
	Message string          `json:"message,omitempty"`
	Token   *scanner.Token  `json:"token,omitempty"`
	Tokens  []scanner.Token `json:"tokens"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, usage)
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	code, ok := s.source(w, r)
	if !ok {
		return
	}
	tokens := scanner.Tokenize(code)
	if tokens == nil {
		tokens = []scanner.Token{}
	}
	writeJSON(w, http.StatusOK, tokens)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	code, ok := s.source(w, r)
	if !ok {
		return
	}
	tokens, prog, err := parser.ParseSource(code)
	if tokens == nil {
		tokens = []scanner.Token{}
	}
	if err != nil {
		resp := parseResponse{Message: err.Error(), Tokens: tokens}
		if e, ok := parser.AsAnalysisError(err); ok {
			tok := e.Offender()
			resp.Token = &tok
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{OK: true, AST: prog, Tokens: tokens})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	code, ok := s.source(w, r)
	if !ok {
		return
	}
	a := report.Analyze(s.title, code)
	var buf bytes.Buffer
	if err := report.WriteText(&buf, a, s.layout); err != nil {
		tracer().Errorf("report %s: %v", a.ID, err)
		http.Error(w, "cannot create report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="gcl_report.txt"`)
	w.Write(buf.Bytes())
}

// source extracts the program text from a POST request. If it returns false,
// an error response has been sent already.
func (s *Server) source(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return "", false
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.conf.MaxSourceBytes)
	if err := r.ParseForm(); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, fmt.Sprintf("cannot read form: %v", err), status)
		return "", false
	}
	return r.PostForm.Get("code"), true
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("cannot encode response: %v", err)
	}
}
