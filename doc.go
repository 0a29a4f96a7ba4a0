/*
Package gcl is a toolbox for analyzing programs written in a small dialect of
Dijkstra's Guarded Command Language (GCL).

GCL knows assignments, guarded selection (if … fi) and guarded repetition
(do … od). Alternatives are separated by '|':

    if x > 0 -> y := 1
     | x <= 0 -> y := 0
    fi

Package structure is as follows:

■ scanner: Package scanner converts source text into a sequence of position-tagged
tokens. Sub-package lexmach provides an alternative, DFA-based tokenizer.

■ parser: Package parser implements a recursive-descent parser, producing an
abstract syntax tree or the first lexical/syntax error.

■ ast: Package ast defines the node types of the abstract syntax tree, together
with a printer and tree utilities.

■ report, server, config: presentation glue, consuming tokens and ASTs as plain data.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gcl
