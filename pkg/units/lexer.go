package units

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Rules are the lexical rules of a length literal such as `6in`, `-30.5mm`
// or `2.5 cm`. Grammars embedding Literal extend these rules with their own
// punctuation.
var Rules = []lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	// Numbers, optionally signed
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)`},

	// Unit suffixes, longest spelling first
	{Name: "Unit", Pattern: `(?i)(mm|cm|inches|inch|in|m|")`},
}

// LengthLexer tokenizes a single length literal
var LengthLexer = lexer.MustSimple(Rules)
