package decl

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseTypeRef parses the source spelling of a type reference, e.g.
// "Text", "Optional<Int32>", "Outcome<User, UserError>", "Map<Text, Int64>"
// or "facet.Context". An empty string parses to the zero TypeRef (unit).
func ParseTypeRef(s string) (TypeRef, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "Unit" {
		if s == "Unit" {
			return TypeRef{Name: "Unit"}, nil
		}
		return TypeRef{}, nil
	}
	p := &typeParser{in: s}
	ref, err := p.parse()
	if err != nil {
		return TypeRef{}, err
	}
	p.skipSpace()
	if p.pos != len(p.in) {
		return TypeRef{}, fmt.Errorf("unexpected %q at position %d in type %q", p.in[p.pos:], p.pos, s)
	}
	return ref, nil
}

type typeParser struct {
	in  string
	pos int
}

func (p *typeParser) parse() (TypeRef, error) {
	ident, err := p.qualifiedIdent()
	if err != nil {
		return TypeRef{}, err
	}
	ref := TypeRef{Name: ident}
	if i := strings.LastIndexByte(ident, '.'); i >= 0 {
		ref.Qualifier = ident[:i]
		ref.Name = ident[i+1:]
	}
	p.skipSpace()
	if p.pos < len(p.in) && p.in[p.pos] == '<' {
		p.pos++
		for {
			arg, err := p.parse()
			if err != nil {
				return TypeRef{}, err
			}
			ref.Args = append(ref.Args, arg)
			p.skipSpace()
			if p.pos >= len(p.in) {
				return TypeRef{}, fmt.Errorf("unterminated type arguments in %q", p.in)
			}
			if p.in[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.in[p.pos] == '>' {
				p.pos++
				break
			}
			return TypeRef{}, fmt.Errorf("unexpected %q at position %d in type %q", string(p.in[p.pos]), p.pos, p.in)
		}
	}
	return ref, nil
}

func (p *typeParser) qualifiedIdent() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) {
		r := rune(p.in[p.pos])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == ':' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", fmt.Errorf("expected type name at position %d in %q", p.pos, p.in)
	}
	// "::" separators normalize to "."
	ident := strings.ReplaceAll(p.in[start:p.pos], "::", ".")
	if strings.HasPrefix(ident, ".") || strings.HasSuffix(ident, ".") {
		return "", fmt.Errorf("malformed qualified name %q in %q", ident, p.in)
	}
	return ident, nil
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.in) && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t') {
		p.pos++
	}
}
