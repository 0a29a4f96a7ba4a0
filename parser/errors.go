package parser

import (
	"errors"
	"fmt"

	"github.com/npillmayer/gcl/scanner"
)

// ErrorKind distinguishes the two kinds of analysis errors.
type ErrorKind int

// Kinds of analysis errors.
const (
	Lexical ErrorKind = iota + 1
	Syntactic
)

func (k ErrorKind) String() string {
	switch k {
	case Lexical:
		return "lexical error"
	case Syntactic:
		return "syntax error"
	}
	return "error"
}

// AnalysisError is implemented by *LexicalError and *SyntaxError.
type AnalysisError interface {
	error
	Kind() ErrorKind
	Offender() scanner.Token // the token which caused the error
}

// LexicalError reports an unrecognized character.
type LexicalError struct {
	Token scanner.Token // token of kind scanner.Unknown
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s at %d:%d: unrecognized character %q",
		Lexical, e.Token.Line, e.Token.Column, e.Token.Text)
}

// Kind is part of interface AnalysisError.
func (e *LexicalError) Kind() ErrorKind { return Lexical }

// Offender is part of interface AnalysisError.
func (e *LexicalError) Offender() scanner.Token { return e.Token }

// SyntaxError reports a token sequence which does not match the grammar.
type SyntaxError struct {
	Message string
	Token   scanner.Token // offending token, may be of kind scanner.EOF
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s, found %s", Syntactic,
		e.Token.Line, e.Token.Column, e.Message, describe(e.Token))
}

// Kind is part of interface AnalysisError.
func (e *SyntaxError) Kind() ErrorKind { return Syntactic }

// Offender is part of interface AnalysisError.
func (e *SyntaxError) Offender() scanner.Token { return e.Token }

var _ AnalysisError = (*LexicalError)(nil)
var _ AnalysisError = (*SyntaxError)(nil)

// AsAnalysisError unwraps err to an AnalysisError, if possible.
func AsAnalysisError(err error) (AnalysisError, bool) {
	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		return lexErr, true
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return synErr, true
	}
	return nil, false
}

func syntaxError(tok scanner.Token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Token:   tok,
	}
}

func describe(tok scanner.Token) string {
	if tok.Kind == scanner.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s '%s'", tok.Kind, tok.Text)
}
