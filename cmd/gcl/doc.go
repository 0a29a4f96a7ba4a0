/*
Command gcl tokenizes and parses programs in the Guarded Command Language.

	gcl scan   [file]        list tokens
	gcl parse  [file]        show the AST as a tree, JSON, YAML or GCL source
	gcl report [file]        write a paginated analysis report
	gcl serve                offer analysis over HTTP
	gcl repl                 analyze programs interactively

Source is read from stdin if no file (or "-") is given. Flag -e takes the
program text from the command line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gcl.cli'
func tracer() tracing.Trace {
	return tracing.Select("gcl.cli")
}
