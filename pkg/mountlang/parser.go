package mountlang

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// Parser reads screw lists and rail declarations
type Parser struct {
	screws *participle.Parser[ScrewList]
	rails  *participle.Parser[RailDecl]
}

// NewParser creates a new mounting-feature parser
func NewParser() (*Parser, error) {
	screws, err := participle.Build[ScrewList](
		participle.Lexer(MountLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build screw parser: %w", err)
	}

	rails, err := participle.Build[RailDecl](
		participle.Lexer(MountLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build rail parser: %w", err)
	}

	return &Parser{screws: screws, rails: rails}, nil
}

// ParseScrews parses a screw-hole list
func (p *Parser) ParseScrews(input string) (*ScrewList, error) {
	list, err := p.screws.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return list, nil
}

// ParseRails parses a rail declaration
func (p *Parser) ParseRails(input string) (*RailDecl, error) {
	decl, err := p.rails.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return decl, nil
}
