/*
Package lexmach provides a GCL tokenizer built with the lexmachine scanner
generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The tokenizer accepts the same token classes as scanner.Tokenize, but lexmachine
compiles them into a DFA which selects the longest match (ties broken by
declaration order). The results are identical for all inputs except where
scanner.Tokenize applies its whole-word rule for numbers and keywords, and
for decimal digits outside of ASCII:

	input      scanner.Tokenize                 lexmach
	"12abc"    Unknown 1, Unknown 2, Ident abc  Number 12, Ident abc
	"1if"      Unknown 1, Ident if              Number 1, Keyword if
	"٣"        Number ٣                         Unknown ٣

Clients use it like this:

	tokenizer, err := lexmach.NewTokenizer()
	if err != nil {
		// do error handling
	}
	tokens, err := tokenizer.Tokenize("x := 1")

The DFA is compiled once per process and shared between tokenizers; scanners
are created per input, making tokenizers safe for concurrent use.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
