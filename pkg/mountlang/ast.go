// Package mountlang parses the router mounting mini-languages:
//
//	screws: x,y,diam[,diam2];x,y,diam[,diam2];...
//	rails:  angle[,angle...]:r1:r2:diam[:diam2]
//
// Lengths are unit literals (see package units); angles are plain degrees.
// The grammar accepts any tuple length; arity is checked by the consumer.
package mountlang

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/routerjig/pkg/units"
)

// ScrewList is a semicolon separated list of screw tuples
type ScrewList struct {
	Holes []*ScrewTuple `parser:"( @@ ( Semicolon @@ )* )?"`
}

// ScrewTuple is one comma separated screw-hole description
type ScrewTuple struct {
	Pos    lexer.Position
	Fields []*units.Literal `parser:"@@ ( Comma @@ )*"`
}

// RailDecl declares rails at one or more angles sharing the same geometry
type RailDecl struct {
	Angles []float64        `parser:"@Number ( Comma @Number )*"`
	Fields []*units.Literal `parser:"( Colon @@ )*"`
}
