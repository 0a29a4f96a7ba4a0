package parser

import (
	"github.com/npillmayer/gcl/scanner"
)

// Cursor is a movable read position over a token sequence. The sequence is
// terminated by an end-of-input token, which is returned for every read
// past the end.
type Cursor struct {
	tokens []scanner.Token // last token is EOF
	pos    int
}

// NewCursor creates a cursor at the first of tokens. eof is the end-of-input
// token to append; it is forced to kind scanner.EOF.
func NewCursor(tokens []scanner.Token, eof scanner.Token) *Cursor {
	eof.Kind, eof.Text = scanner.EOF, ""
	toks := make([]scanner.Token, len(tokens), len(tokens)+1)
	copy(toks, tokens)
	return &Cursor{tokens: append(toks, eof)}
}

// Peek returns the current token without advancing.
func (c *Cursor) Peek() scanner.Token {
	return c.tokens[c.pos]
}

// Pos returns the index of the current token.
func (c *Cursor) Pos() int {
	return c.pos
}

// AtEOF is true if all tokens have been consumed.
func (c *Cursor) AtEOF() bool {
	return c.Peek().Kind == scanner.EOF
}

// Match is true if the current token is of the given kind and, unless text is
// empty, has the given text.
func (c *Cursor) Match(kind scanner.TokKind, text string) bool {
	return c.Peek().Is(kind, text)
}

// Next returns the current token and advances. The cursor never moves past
// the end-of-input token.
func (c *Cursor) Next() scanner.Token {
	tok := c.tokens[c.pos]
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return tok
}

// Expect returns the current token and advances, if the token is of the given
// kind and, unless text is empty, has the given text. Otherwise it returns a
// *SyntaxError for the current token and does not advance.
func (c *Cursor) Expect(kind scanner.TokKind, text string) (scanner.Token, error) {
	tok := c.Peek()
	if tok.Kind != kind {
		return tok, syntaxError(tok, "expected token type %s", kind)
	}
	if text != "" && tok.Text != text {
		return tok, syntaxError(tok, "expected '%s'", text)
	}
	return c.Next(), nil
}
