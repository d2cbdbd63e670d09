package abi

import (
	"fmt"
	"strings"
)

// TypeDescriptor is the abstract result of parsing a type expression: a name
// plus ordered nested parameters. It carries no semantics; arity and
// known-type checks happen in the mapper.
type TypeDescriptor struct {
	Name           string
	TypeParameters []TypeDescriptor
}

// IsGeneric reports whether the descriptor was written with type parameters.
func (d TypeDescriptor) IsGeneric() bool {
	return len(d.TypeParameters) > 0
}

// String renders the descriptor back into canonical expression form.
func (d TypeDescriptor) String() string {
	if !d.IsGeneric() {
		return d.Name
	}
	params := make([]string, len(d.TypeParameters))
	for i, p := range d.TypeParameters {
		params[i] = p.String()
	}
	return d.Name + "<" + strings.Join(params, ",") + ">"
}

// ParseTypeExpression parses a textual type signature, e.g.
// "VarArgs<MultiArg<i32,bytes>>" or "array8<BigUint>", into a descriptor
// tree. Whitespace is insignificant and a trailing comma before '>' is
// tolerated, matching the convention found in interface descriptions.
func ParseTypeExpression(expression string) (TypeDescriptor, error) {
	p := &exprParser{input: expression}
	descriptor, err := p.parseExpression()
	if err != nil {
		return TypeDescriptor{}, err
	}
	p.skipWhitespace()
	if p.pos != len(p.input) {
		return TypeDescriptor{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, p.rest(), p.pos)
	}
	return descriptor, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseExpression() (TypeDescriptor, error) {
	p.skipWhitespace()

	name := p.parseIdentifier()
	if name == "" {
		return TypeDescriptor{}, fmt.Errorf("%w: empty identifier at offset %d", ErrParse, p.pos)
	}

	descriptor := TypeDescriptor{Name: name}

	p.skipWhitespace()
	if !p.consume('<') {
		return descriptor, nil
	}

	for {
		param, err := p.parseExpression()
		if err != nil {
			return TypeDescriptor{}, err
		}
		descriptor.TypeParameters = append(descriptor.TypeParameters, param)

		p.skipWhitespace()
		switch {
		case p.consume(','):
			p.skipWhitespace()
			// Tolerate a trailing comma right before the closing bracket.
			if p.consume('>') {
				return descriptor, nil
			}
		case p.consume('>'):
			return descriptor, nil
		default:
			return TypeDescriptor{}, fmt.Errorf("%w: expected ',' or '>' at offset %d", ErrParse, p.pos)
		}
	}
}

func (p *exprParser) parseIdentifier() string {
	start := p.pos
	for p.pos < len(p.input) && isIdentifierChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *exprParser) consume(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *exprParser) skipWhitespace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) rest() string {
	const window = 8
	end := min(p.pos+window, len(p.input))
	return p.input[p.pos:end]
}

func isIdentifierChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}
