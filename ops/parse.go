/*
 *	Copyright 2025 The TensorIR Authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package ops

import (
	"strings"
	"unicode"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/tensorir/tensorir/ir"
)

// Parse converts a schema string to an ir.Schema. The grammar:
//
//	schema   = name "(" [ arg { "," arg } ] ")" "->" returns
//	arg      = type ident
//	returns  = type | "(" type { "," type } ")"
//	type     = term { "|" term }
//	term     = base { "?" | "[]" }
//	base     = "Tensor" | "Device" | "int" | "float" | "bool" | "str" | "None"
//
// Examples:
//
//	add(Tensor self, Tensor other) -> Tensor
//	to_device(Tensor self, Device? device) -> Tensor
//	chunk(Tensor self, int chunks) -> Tensor[]
func Parse(schema string) (*ir.Schema, error) {
	p := &parser{input: schema}
	s, err := p.parseSchema()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing schema %q", schema)
	}
	return s, nil
}

// MustParse is like Parse but panics on a malformed schema string. It is
// meant for compiled-in schema tables.
func MustParse(schema string) *ir.Schema {
	s, err := Parse(schema)
	if err != nil {
		exceptions.Panicf("ops.MustParse: %+v", err)
	}
	return s
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(format string, args ...any) error {
	return errors.Errorf("at offset %d: "+format, append([]any{p.pos}, args...)...)
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// peek returns the next non-space byte without consuming it, or 0 at the end.
func (p *parser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) accept(c byte) bool {
	if p.peek() != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) expect(c byte) error {
	if !p.accept(c) {
		return p.errorf("expected %q", string(c))
	}
	return nil
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (p *parser) ident() (string, error) {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) && isIdentRune(rune(p.input[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected identifier")
	}
	return p.input[start:p.pos], nil
}

func (p *parser) parseSchema() (*ir.Schema, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	s := &ir.Schema{Name: name}
	for p.peek() != ')' {
		if len(s.Args) > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		argType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		argName, err := p.ident()
		if err != nil {
			return nil, err
		}
		s.Args = append(s.Args, ir.Argument{Name: argName, Type: argType})
	}
	p.pos++ // consume ')'.
	p.skipSpaces()
	if !strings.HasPrefix(p.input[p.pos:], "->") {
		return nil, p.errorf("expected \"->\"")
	}
	p.pos += 2
	if s.Returns, err = p.parseReturns(); err != nil {
		return nil, err
	}
	if p.peek() != 0 {
		return nil, p.errorf("unexpected trailing input")
	}
	return s, nil
}

func (p *parser) parseReturns() ([]ir.Type, error) {
	if !p.accept('(') {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return []ir.Type{t}, nil
	}
	var rets []ir.Type
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		rets = append(rets, t)
		if p.accept(')') {
			return rets, nil
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseType() (ir.Type, error) {
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.peek() != '|' {
		return t, nil
	}
	alts := []ir.Type{t}
	for p.accept('|') {
		alt, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
	}
	return ir.Union(alts...), nil
}

func (p *parser) parseTerm() (ir.Type, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	var t ir.Type
	switch name {
	case "Tensor":
		t = ir.Tensor()
	case "Device":
		t = ir.DeviceObj
	case "int":
		t = ir.Int
	case "float":
		t = ir.Float
	case "bool":
		t = ir.Bool
	case "str":
		t = ir.Str
	case "None":
		t = ir.NoneType
	default:
		return nil, p.errorf("unknown type %q", name)
	}
	for {
		switch {
		case p.accept('?'):
			t = ir.Optional(t)
		case p.accept('['):
			if err := p.expect(']'); err != nil {
				return nil, err
			}
			t = ir.List(t)
		default:
			return t, nil
		}
	}
}
