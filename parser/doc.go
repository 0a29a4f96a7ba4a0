/*
Package parser implements a recursive-descent parser for GCL.

Grammar

	program    ::= stmt_list
	stmt_list  ::= ( stmt ';'? )*
	stmt       ::= if_stmt | do_stmt | assignment
	if_stmt    ::= 'if' guard_list 'fi'
	do_stmt    ::= 'do' guard_list 'od'
	guard_list ::= guard ( '|' guard )*
	guard      ::= expr '->' stmt_list
	assignment ::= IDENT ':=' expr
	expr       ::= equality
	equality   ::= relational ( ( '==' | '!=' ) relational )*
	relational ::= additive ( ( '<' | '>' | '<=' | '>=' ) additive )*
	additive   ::= term ( ( '+' | '-' ) term )*
	term       ::= factor ( ( '*' | '/' ) factor )*
	factor     ::= NUMBER | IDENT | '(' expr ')'

A statement list may be empty. It ends without consuming input at end of
input, at 'fi' or 'od', or at any token which cannot start a statement.
Each statement may be followed by a ';', so statements may as well be
separated by newlines only. Two consecutive ';' are an error. All binary operators are left-associative.

Errors

Parsing is all-or-nothing. The first problem aborts the parse and is returned
as either a *LexicalError (the token sequence contains an unrecognized
character; these take priority) or a *SyntaxError. Both carry the offending
token, from which kind, text, line and column may be recovered.

	prog, err := parser.Parse(scanner.Tokenize(source))
	if e, ok := parser.AsAnalysisError(err); ok {
		tok := e.Offender()
		fmt.Printf("%d:%d: %s\n", tok.Line, tok.Column, e.Error())
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gcl.parser'.
func tracer() tracing.Trace {
	return tracing.Select("gcl.parser")
}
