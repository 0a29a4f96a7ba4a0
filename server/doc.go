/*
Package server offers GCL analysis over HTTP.

All analysis endpoints accept a form-encoded POST request with the program
text in field "code":

	POST /scan     token list as JSON
	POST /parse    {"ok": true, "ast": …, "tokens": […]}, or status 400 and
	               {"ok": false, "message": …, "token": …, "tokens": […]}
	POST /report   plain-text report as attachment "gcl_report.txt"
	GET  /         usage text

Tokens carry "line" and "column" counted in characters, both 1-based, and
"offset", the 0-based byte offset into the UTF-8 encoded program text.

Every request is analyzed independently; the server keeps no state between
requests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package server

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gcl.server'.
func tracer() tracing.Trace {
	return tracing.Select("gcl.server")
}
