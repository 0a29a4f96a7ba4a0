/*
Package report bundles the results of analyzing a GCL program, i.e. tokens,
AST or error, into an Analysis and renders it for humans and machines.

The text rendering is a paginated listing, meant for printing or for download
from the HTTP server. Pages are separated by form feeds. It lists the tokens
first; the AST, as indented JSON, starts on a fresh page.

	a := report.Analyze("Euclid", source)
	report.WriteText(os.Stdout, a, report.DefaultLayout)

Analyses may as well be written as JSON or YAML.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gcl.report'.
func tracer() tracing.Trace {
	return tracing.Select("gcl.report")
}
