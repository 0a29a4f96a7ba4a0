package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/gcl/config"
	"github.com/npillmayer/gcl/report"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func post(t *testing.T, h http.Handler, path, code string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"code": {code}}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.server")
	defer teardown()
	//
	h := New(config.Default()).Handler()
	rec := post(t, h, "/scan", "x := 1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, have %d", rec.Code)
	}
	var tokens []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &tokens); err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 || tokens[1]["kind"] != "Assign" || tokens[2]["column"] != 6.0 {
		t.Errorf("unexpected tokens %v", tokens)
	}
	rec = post(t, h, "/scan", "")
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty token list, have %s", body)
	}
}

func TestScanOffsetsAreBytes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.server")
	defer teardown()
	//
	rec := post(t, New(config.Default()).Handler(), "/scan", "é := x")
	var tokens []struct {
		Kind   string `json:"kind"`
		Text   string `json:"text"`
		Column int    `json:"column"`
		Offset int    `json:"offset"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tokens); err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, have %v", tokens)
	}
	expected := []struct {
		text           string
		column, offset int
	}{
		{"é", 1, 0}, {":=", 3, 3}, {"x", 6, 6},
	}
	for i, want := range expected {
		if tokens[i].Text != want.text || tokens[i].Column != want.column || tokens[i].Offset != want.offset {
			t.Errorf("token %d: expected %q at column %d, offset %d, have %+v",
				i, want.text, want.column, want.offset, tokens[i])
		}
	}
}

func TestParseOK(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.server")
	defer teardown()
	//
	rec := post(t, New(config.Default()).Handler(), "/parse", "if x > 0 -> y := 1 | x <= 0 -> y := 0 fi")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, have %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OK     bool                     `json:"ok"`
		AST    map[string]interface{}   `json:"ast"`
		Tokens []map[string]interface{} `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.OK || resp.AST["node"] != "Program" || len(resp.Tokens) != 17 {
		t.Errorf("unexpected response %s", rec.Body.String())
	}
	ifNode := resp.AST["body"].([]interface{})[0].(map[string]interface{})
	if guards := ifNode["guards"].([]interface{}); len(guards) != 2 {
		t.Errorf("expected 2 guards, have %d", len(guards))
	}
}

func TestParseError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.server")
	defer teardown()
	//
	rec := post(t, New(config.Default()).Handler(), "/parse", "x := 1 @ 2")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, have %d", rec.Code)
	}
	var resp struct {
		OK      bool                   `json:"ok"`
		Message string                 `json:"message"`
		Token   map[string]interface{} `json:"token"`
		Tokens  []interface{}          `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.OK || !strings.Contains(resp.Message, "unrecognized character") {
		t.Errorf("unexpected response %s", rec.Body.String())
	}
	if resp.Token["text"] != "@" || resp.Token["column"] != 8.0 || len(resp.Tokens) != 5 {
		t.Errorf("expected offending token '@' at column 8, have %v", resp.Token)
	}
}

func TestReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.server")
	defer teardown()
	//
	rec := post(t, New(config.Default()).Handler(), "/report", "x := (1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, have %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "gcl_report.txt") {
		t.Errorf("expected attachment gcl_report.txt, have %q", cd)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, config.Default().Report.Title) || !strings.Contains(body, report.ParseFailed) {
		t.Errorf("unexpected report:\n%s", body)
	}
}

func TestMethodsAndRoutes(t *testing.T) {
	h := New(config.Default()).Handler()
	for _, test := range []struct {
		method, path string
		status       int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodPost, "/", http.StatusMethodNotAllowed},
		{http.MethodGet, "/parse", http.StatusMethodNotAllowed},
		{http.MethodGet, "/export", http.StatusNotFound},
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(test.method, test.path, nil))
		if rec.Code != test.status {
			t.Errorf("%s %s: expected status %d, have %d", test.method, test.path, test.status, rec.Code)
		}
	}
}

func TestSourceLimit(t *testing.T) {
	conf := config.Default()
	conf.Server.MaxSourceBytes = 16
	rec := post(t, New(conf).Handler(), "/scan", strings.Repeat("x := 1; ", 10))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, have %d", rec.Code)
	}
}

func TestServeAndShutdown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcl.server")
	defer teardown()
	//
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(config.Default()).Serve(ctx, ln)
	}()
	resp, err := http.PostForm("http://"+ln.Addr().String()+"/scan", url.Values{"code": {"x"}})
	if err != nil {
		cancel()
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `"Identifier"`) {
		t.Errorf("unexpected response %s", body)
	}
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, have %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("server did not shut down")
	}
}
