/*
Package scanner converts GCL source text into a sequence of tokens.

Scanning is a single left-to-right pass. At every position an ordered list of
matchers is tried, and the first matcher accepting input wins. Order is
significant: keywords are tried before identifiers, and two-character operators
like '<=' are tried before their one-character prefixes. The last matcher
accepts any single rune, which guarantees progress; such runes are reported
as tokens of kind Unknown, never as an error.

	tokens := scanner.Tokenize("x := 1 + y // comment")
	for _, tok := range tokens {
		fmt.Printf("%s %-10s %q\n", tok.Position(), tok.Kind, tok.Text)
	}

Comments, newlines and whitespace are consumed for position bookkeeping but not
emitted by Tokenize. Clients interested in these (e.g., for highlighting)
use ScanAll.

Sub-package lexmach provides a DFA-based tokenizer for the same token classes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gcl.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gcl.scanner")
}
