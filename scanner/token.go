package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/gcl"
)

// TokKind is the category of a token. The set of kinds is closed.
type TokKind int8

// Token kinds. Comment, Newline and Whitespace are produced by ScanAll only,
// EOF is produced for parsers only (see EOFToken).
const (
	EOF TokKind = iota
	Comment
	Newline
	Whitespace
	Arrow      // ->
	Assign     // :=
	Operator   // == != <= >= < > + - * /
	LParen     // (
	RParen     // )
	Semicolon  // ;
	Bar        // |
	Keyword    // if then else fi do od
	Number     // 123
	Identifier // x_1
	Unknown    // any unrecognized rune
)

var kindNames = [...]string{
	EOF:        "EOF",
	Comment:    "Comment",
	Newline:    "Newline",
	Whitespace: "Whitespace",
	Arrow:      "Arrow",
	Assign:     "Assign",
	Operator:   "Operator",
	LParen:     "LParen",
	RParen:     "RParen",
	Semicolon:  "Semicolon",
	Bar:        "Bar",
	Keyword:    "Keyword",
	Number:     "Number",
	Identifier: "Identifier",
	Unknown:    "Unknown",
}

func (k TokKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokKind(%d)", int8(k))
	}
	return kindNames[k]
}

// IsTrivia is true for kinds which are never passed to a parser.
func (k TokKind) IsTrivia() bool {
	return k == Comment || k == Newline || k == Whitespace
}

// MarshalText lets token kinds serialize by name.
func (k TokKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *TokKind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = TokKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", string(text))
}

// Token is a classified, position-tagged lexeme.
// Positions refer to the start of the lexeme.
type Token struct {
	Kind   TokKind `json:"kind" yaml:"kind"`
	Text   string  `json:"text" yaml:"text"`
	Line   int     `json:"line" yaml:"line"`     // 1-based
	Column int     `json:"column" yaml:"column"` // 1-based, in runes
	Offset int     `json:"offset" yaml:"offset"` // 0-based, in bytes
}

// Span returns the byte span this token covers.
func (t Token) Span() gcl.Span {
	return gcl.Span{uint64(t.Offset), uint64(t.Offset + len(t.Text))}
}

// Position returns the start position of the token.
func (t Token) Position() gcl.Position {
	return gcl.Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// Is checks a token for kind and text. An empty text matches any text.
func (t Token) Is(kind TokKind, text string) bool {
	return t.Kind == kind && (text == "" || t.Text == text)
}

// IsKeyword is a shortcut for t.Is(Keyword, kw).
func (t Token) IsKeyword(kw string) bool {
	return t.Is(Keyword, kw)
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("<%s @%s>", t.Kind, t.Position())
	}
	return fmt.Sprintf("<%s %q @%s>", t.Kind, t.Text, t.Position())
}

// end returns the position just behind the token.
func (t Token) end() gcl.Position {
	return Advance(t.Position(), t.Text)
}

// Advance moves a position over text. Newlines increment the line number and
// reset the column to 1, every other rune increments the column.
// Alternative tokenizers use it to compute positions from byte offsets.
func Advance(pos gcl.Position, text string) gcl.Position {
	for _, r := range text {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	pos.Offset += len(text)
	return pos
}

// runeCount is a shortcut for utf8.RuneCountInString.
func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
