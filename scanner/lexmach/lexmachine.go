package lexmach

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/gcl"
	"github.com/npillmayer/gcl/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'gcl.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gcl.scanner")
}

// Literal lexemes and their token kinds, in declaration order.
var literals = []struct {
	lexeme string
	kind   scanner.TokKind
}{
	{"->", scanner.Arrow},
	{":=", scanner.Assign},
	{"==", scanner.Operator},
	{"<=", scanner.Operator},
	{">=", scanner.Operator},
	{"!=", scanner.Operator},
	{"+", scanner.Operator},
	{"-", scanner.Operator},
	{"*", scanner.Operator},
	{"/", scanner.Operator},
	{"<", scanner.Operator},
	{">", scanner.Operator},
	{"(", scanner.LParen},
	{")", scanner.RParen},
	{";", scanner.Semicolon},
	{"|", scanner.Bar},
}

var keywords = []string{"if", "then", "else", "fi", "do", "od"}

var (
	dfa     *lexmachine.Lexer
	dfaErr  error
	dfaOnce sync.Once // monitors one-time compilation of the DFA
)

func compileDFA() (*lexmachine.Lexer, error) {
	dfaOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`//[^\n]*`), Skip)
		lexer.Add([]byte(`\n`), Skip)
		lexer.Add([]byte(`( |\t|\r)+`), Skip)
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit.lexeme, ""), "\\")
			lexer.Add([]byte(r), MakeToken(lit.kind))
		}
		for _, kw := range keywords { // keywords have to precede identifiers
			lexer.Add([]byte(kw), MakeToken(scanner.Keyword))
		}
		lexer.Add([]byte(`[0-9]+`), MakeToken(scanner.Number))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), MakeToken(scanner.Identifier))
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			dfaErr = err
			return
		}
		dfa = lexer
	})
	return dfa, dfaErr
}

// Tokenizer is a GCL tokenizer backed by a lexmachine DFA.
type Tokenizer struct {
	lexer *lexmachine.Lexer
}

// NewTokenizer creates a tokenizer. It will return an error if compiling the DFA failed.
func NewTokenizer() (*Tokenizer, error) {
	lexer, err := compileDFA()
	if err != nil {
		return nil, err
	}
	return &Tokenizer{lexer: lexer}, nil
}

// Tokenize converts source into a sequence of tokens, with the same conventions
// as scanner.Tokenize: trivia is skipped, unrecognized runes are returned as
// tokens of kind Unknown. An error is returned only if lexmachine fails for
// reasons other than unrecognized input.
func (t *Tokenizer) Tokenize(source string) ([]scanner.Token, error) {
	scan, err := t.lexer.Scanner([]byte(source))
	if err != nil {
		return nil, err
	}
	var tokens []scanner.Token
	pos := gcl.Position{Line: 1, Column: 1}
	emit := func(kind scanner.TokKind, offset int, lexeme string) {
		pos = scanner.Advance(pos, source[pos.Offset:offset])
		tokens = append(tokens, scanner.Token{
			Kind:   kind,
			Text:   lexeme,
			Line:   pos.Line,
			Column: pos.Column,
			Offset: offset,
		})
	}
	for tok, err, eof := scan.Next(); !eof; tok, err, eof = scan.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			_, w := utf8.DecodeRuneInString(source[ui.StartTC:])
			tracer().Debugf("unconsumed input at byte %d", ui.StartTC)
			emit(scanner.Unknown, ui.StartTC, source[ui.StartTC:ui.StartTC+w])
			scan.TC = ui.StartTC + w
			continue
		} else if err != nil {
			return tokens, fmt.Errorf("lexmachine scanner failed: %w", err)
		}
		if tok == nil {
			continue
		}
		token := tok.(*lexmachine.Token)
		emit(scanner.TokKind(token.Type), token.TC, string(token.Lexeme))
	}
	return tokens, nil
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// of the given kind.
func MakeToken(kind scanner.TokKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}
