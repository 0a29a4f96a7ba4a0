package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/gcl"
)

// --- Matchers --------------------------------------------------------------

// A matchFunc inspects input at byte position at and returns the length in
// bytes of the lexeme it accepts, or 0 if it does not accept.
type matchFunc func(input string, at int) int

type matcher struct {
	kind  TokKind
	match matchFunc
}

// keywords of GCL. 'then' and 'else' are reserved, but not used by the grammar.
var keywords = []string{"if", "then", "else", "fi", "do", "od"}

// operators, two-character operators first.
var operators = []string{"==", "<=", ">=", "!=", "+", "-", "*", "/", "<", ">"}

// matchers are tried in order, the first one accepting input wins.
// Unknown accepts any rune and therefore has to be last.
var matchers = []matcher{
	{Comment, comment},
	{Newline, literal("\n")},
	{Whitespace, whitespace},
	{Arrow, literal("->")},
	{Assign, literal(":=")},
	{Operator, oneOf(operators...)},
	{LParen, literal("(")},
	{RParen, literal(")")},
	{Semicolon, literal(";")},
	{Bar, literal("|")},
	{Keyword, wholeWord(oneOf(keywords...))},
	{Number, wholeWord(digits)},
	{Identifier, identifier},
	{Unknown, anyRune},
}

func literal(lit string) matchFunc {
	return func(input string, at int) int {
		if strings.HasPrefix(input[at:], lit) {
			return len(lit)
		}
		return 0
	}
}

// oneOf accepts the first of lits which is a prefix of the input.
func oneOf(lits ...string) matchFunc {
	return func(input string, at int) int {
		for _, lit := range lits {
			if strings.HasPrefix(input[at:], lit) {
				return len(lit)
			}
		}
		return 0
	}
}

// comment accepts '//' up to, but not including, the end of the line.
func comment(input string, at int) int {
	if !strings.HasPrefix(input[at:], "//") {
		return 0
	}
	if nl := strings.IndexByte(input[at:], '\n'); nl >= 0 {
		return nl
	}
	return len(input) - at
}

func whitespace(input string, at int) int {
	n := 0
	for at+n < len(input) {
		switch input[at+n] {
		case ' ', '\t', '\r':
			n++
			continue
		}
		break
	}
	return n
}

// digits accepts a run of decimal digits of any script, e.g. "42" or "٤٢".
func digits(input string, at int) int {
	n := 0
	for at+n < len(input) {
		r, w := utf8.DecodeRuneInString(input[at+n:])
		if !unicode.IsDigit(r) {
			break
		}
		n += w
	}
	return n
}

func identifier(input string, at int) int {
	if at >= len(input) || !(isLetter(input[at]) || input[at] == '_') {
		return 0
	}
	n := 1
	for at+n < len(input) {
		c := input[at+n]
		if !(isLetter(c) || isDigit(c) || c == '_') {
			break
		}
		n++
	}
	return n
}

func anyRune(input string, at int) int {
	_, w := utf8.DecodeRuneInString(input[at:])
	return w
}

// wholeWord restricts a matcher to lexemes which are neither preceded nor
// followed by a word rune. This keeps 'ifx' from being split into keyword 'if'
// and identifier 'x'.
func wholeWord(m matchFunc) matchFunc {
	return func(input string, at int) int {
		if at > 0 {
			if r, _ := utf8.DecodeLastRuneInString(input[:at]); isWordRune(r) {
				return 0
			}
		}
		n := m(input, at)
		if n == 0 {
			return 0
		}
		if at+n < len(input) {
			if r, _ := utf8.DecodeRuneInString(input[at+n:]); isWordRune(r) {
				return 0
			}
		}
		return n
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// isWordRune is true for letters, numbers of all kinds (including
// superscripts and roman numerals) and '_'.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// match finds the first matcher accepting input at position at.
func match(input string, at int) (TokKind, int) {
	for _, m := range matchers {
		if n := m.match(input, at); n > 0 {
			return m.kind, n
		}
	}
	panic("scanner: no matcher accepted input") // unreachable, anyRune always matches
}

// --- Scanning --------------------------------------------------------------

// scan walks over the complete input and calls emit for every lexeme,
// including trivia.
func scan(input string, emit func(Token)) {
	pos := gcl.Position{Line: 1, Column: 1}
	for pos.Offset < len(input) {
		kind, n := match(input, pos.Offset)
		lexeme := input[pos.Offset : pos.Offset+n]
		emit(Token{
			Kind:   kind,
			Text:   lexeme,
			Line:   pos.Line,
			Column: pos.Column,
			Offset: pos.Offset,
		})
		pos = Advance(pos, lexeme)
	}
}

// Tokenize converts source into a sequence of tokens. It never fails:
// unrecognized runes are reported as tokens of kind Unknown, and scanning
// continues behind them. Comments, newlines and whitespace are not part of
// the result.
//
// Tokens are ordered by strictly increasing offset. Empty input results in
// an empty sequence.
func Tokenize(source string) []Token {
	tokens := make([]Token, 0, len(source)/3+1)
	scan(source, func(tok Token) {
		if tok.Kind.IsTrivia() {
			return
		}
		if tok.Kind == Unknown {
			tracer().Debugf("unrecognized input %q at %s", tok.Text, tok.Position())
		}
		tokens = append(tokens, tok)
	})
	tracer().Debugf("scanned %d bytes into %d tokens", len(source), len(tokens))
	return tokens
}

// ScanAll is like Tokenize, but includes comments, newlines and whitespace.
// The lexemes of the result concatenate to the source.
func ScanAll(source string) []Token {
	var tokens []Token
	scan(source, func(tok Token) {
		tokens = append(tokens, tok)
	})
	return tokens
}

// EOFToken returns an end-of-input token, positioned just behind the last
// rune of source.
func EOFToken(source string) Token {
	end := Advance(gcl.Position{Line: 1, Column: 1}, source)
	return Token{Kind: EOF, Line: end.Line, Column: end.Column, Offset: end.Offset}
}

// EOFAfter returns an end-of-input token positioned just behind the last of
// tokens. Trailing trivia of the source is not accounted for; use EOFToken if
// the source is at hand.
func EOFAfter(tokens []Token) Token {
	if len(tokens) == 0 {
		return Token{Kind: EOF, Line: 1, Column: 1}
	}
	end := tokens[len(tokens)-1].end()
	return Token{Kind: EOF, Line: end.Line, Column: end.Column, Offset: end.Offset}
}

// Errors returns all tokens of kind Unknown.
func Errors(tokens []Token) []Token {
	var errs []Token
	for _, t := range tokens {
		if t.Kind == Unknown {
			errs = append(errs, t)
		}
	}
	return errs
}

// ASCIIDigits converts the text of a Number token to ASCII decimal digits,
// e.g. "٤٢" to "42". Runes which are not decimal digits are kept as they are.
func ASCIIDigits(text string) string {
	ascii := true
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		if v, ok := digitValue(r); ok {
			b.WriteByte(byte('0' + v))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// digitValue returns the value of a decimal digit. Unicode arranges decimal
// digits in contiguous runs from 0 to 9, and every range of unicode.Nd starts
// with a zero.
func digitValue(r rune) (int, bool) {
	if r < utf8.RuneSelf {
		if isDigit(byte(r)) {
			return int(r - '0'), true
		}
		return 0, false
	}
	for _, rng := range unicode.Nd.R16 {
		if rune(rng.Lo) <= r && r <= rune(rng.Hi) && (r-rune(rng.Lo))%rune(rng.Stride) == 0 {
			return int((r-rune(rng.Lo))/rune(rng.Stride)) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if rune(rng.Lo) <= r && r <= rune(rng.Hi) && (r-rune(rng.Lo))%rune(rng.Stride) == 0 {
			return int((r-rune(rng.Lo))/rune(rng.Stride)) % 10, true
		}
	}
	return 0, false
}
