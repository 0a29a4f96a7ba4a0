package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Layout controls pagination of text reports.
type Layout struct {
	PageLines int // lines per page, including the page header
	LineWidth int // longer lines are truncated
}

// DefaultLayout approximates an A4 page printed in a small fixed-width font.
var DefaultLayout = Layout{PageLines: 64, LineWidth: 100}

func (l Layout) normalized() Layout {
	if l.PageLines < 8 {
		l.PageLines = DefaultLayout.PageLines
	}
	if l.LineWidth < 20 {
		l.LineWidth = DefaultLayout.LineWidth
	}
	return l
}

// WriteText writes a paginated plain-text report of an analysis: a header,
// the token listing and, starting on a new page, the AST as indented JSON or
// the parse failure.
func WriteText(w io.Writer, a *Analysis, layout Layout) error {
	p := &pager{w: w, layout: layout.normalized()}
	p.line(a.Title)
	p.line(fmt.Sprintf("Generated: %s", a.Generated.UTC().Format("2006-01-02 15:04:05Z")))
	p.line(fmt.Sprintf("Report:    %s", a.ID))
	p.line("")
	p.line("Tokens:")
	for _, t := range a.Tokens {
		p.line(fmt.Sprintf("%d:%d  %-10s  %s", t.Line, t.Column, t.Kind, t.Text))
	}
	p.line("")
	p.line("Token statistics:")
	for _, kc := range TokenStats(a.Tokens) {
		p.line(fmt.Sprintf("  %-10s  %d", kc.Kind, kc.Count))
	}
	p.newPage()
	if a.Error != nil {
		p.line(ParseFailed)
		p.line("")
		p.line(a.Error.Message)
	} else {
		p.line("AST (JSON):")
		js, err := json.MarshalIndent(a.AST, "", "  ")
		if err != nil {
			return fmt.Errorf("report: cannot encode AST: %w", err)
		}
		for _, l := range strings.Split(string(js), "\n") {
			p.line(l)
		}
		if a.Fingerprint != "" {
			p.line("")
			p.line("Fingerprint: " + a.Fingerprint)
		}
	}
	tracer().Debugf("report %s: %d page(s)", a.ID, p.page)
	return p.err
}

// pager writes lines and inserts a form feed whenever a page is full.
// The first write error sticks and ends output.
type pager struct {
	w      io.Writer
	layout Layout
	lines  int // lines on current page
	page   int
	err    error
}

func (p *pager) line(s string) {
	if p.err != nil {
		return
	}
	if p.page == 0 {
		p.page = 1
	}
	if p.lines >= p.layout.PageLines {
		p.newPage()
	}
	if r := []rune(s); len(r) > p.layout.LineWidth {
		s = string(r[:p.layout.LineWidth])
	}
	_, p.err = io.WriteString(p.w, s+"\n")
	p.lines++
}

func (p *pager) newPage() {
	if p.err != nil || p.lines == 0 {
		return
	}
	_, p.err = io.WriteString(p.w, "\f")
	p.lines = 0
	p.page++
}
