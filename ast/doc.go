/*
Package ast declares the types used to represent abstract syntax trees for
GCL programs.

The tree is heterogeneous: every kind of node has its own Go type, and the
sealed interfaces Stmt and Expr restrict which nodes may appear where.

	Program  { Body []Stmt }
	If       { Guards []*Guard }          Stmt
	Do       { Guards []*Guard }          Stmt
	Assign   { Target string; Expr Expr } Stmt
	Guard    { Cond Expr; Body []Stmt }
	BinaryOp { Op Operator; Left, Right Expr } Expr
	Number   { Value int64 }              Expr
	Ident    { Name string }              Expr

Nodes are created once by the parser and never modified afterwards.

Trees may be printed back to GCL source (Print), converted to tagged records
for serialization (ToRecord), walked (Inspect) and compared by structure
(Fingerprint).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast
