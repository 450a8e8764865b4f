package mountlang

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/routerjig/pkg/units"
)

// MountLexer tokenizes screw-hole lists and rail declarations.
// It extends the length literal rules with the list punctuation.
var MountLexer = lexer.MustSimple(append(append([]lexer.SimpleRule(nil), units.Rules...),
	lexer.SimpleRule{Name: "Semicolon", Pattern: `;`},
	lexer.SimpleRule{Name: "Colon", Pattern: `:`},
	lexer.SimpleRule{Name: "Comma", Pattern: `,`},
))
