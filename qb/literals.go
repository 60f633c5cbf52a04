// Copyright 2025 Gel Data Inc. and the contributors.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package qb

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/geldata/edgeql-go/edgeql"
	"github.com/geldata/edgeql-go/schema"
)

// Bool is a literal std::bool AST node.
type Bool bool

func (b Bool) Equals(n Node) bool {
	b2, ok := n.(Bool)
	return ok && b == b2
}

func (b Bool) symbols() symset { return nil }
func (b Bool) walk(Visitor)    {}

func (b Bool) Type() schema.Path { return schema.Bool }

func (b Bool) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (b Bool) atomic()                       {}

func (b Bool) text(p *printer) {
	if b {
		p.buf.WriteString("true")
	} else {
		p.buf.WriteString("false")
	}
}

// Int is a literal std::int64 AST node.
type Int int64

func (i Int) Equals(n Node) bool {
	i2, ok := n.(Int)
	return ok && i == i2
}

func (i Int) symbols() symset { return nil }
func (i Int) walk(Visitor)    {}

func (i Int) Type() schema.Path { return schema.Int64 }

func (i Int) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (i Int) atomic()                       {}

func (i Int) text(p *printer) {
	v := int64(i)
	if p.redact {
		v = redactInt(v)
	}
	var buf [32]byte
	p.buf.Write(strconv.AppendInt(buf[:0], v, 10))
}

// Float is a literal std::float64 AST node.
type Float float64

func (f Float) Equals(n Node) bool {
	f2, ok := n.(Float)
	return ok && f == f2
}

func (f Float) symbols() symset { return nil }
func (f Float) walk(Visitor)    {}

func (f Float) Type() schema.Path { return schema.Float64 }

func (f Float) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (f Float) atomic()                       {}

func (f Float) text(p *printer) {
	v := float64(f)
	if p.redact {
		v = redactFloat(v)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	// the literal must contain a point or exponent, or the server
	// front end would read it back as an integer
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	p.buf.WriteString(s)
}

// BigInt is a literal std::bigint AST node; it renders with the
// EdgeQL "n" suffix (e.g. 123n).
type BigInt big.Int

// NewBigInt builds a BigInt literal from an int64.
func NewBigInt(v int64) *BigInt {
	return (*BigInt)(big.NewInt(v))
}

// ParseBigInt builds a BigInt literal from decimal digits.
func ParseBigInt(s string) (*BigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("qb: invalid bigint literal %q", s)
	}
	return (*BigInt)(v), nil
}

func (b *BigInt) Equals(n Node) bool {
	b2, ok := n.(*BigInt)
	return ok && (*big.Int)(b).Cmp((*big.Int)(b2)) == 0
}

func (b *BigInt) symbols() symset { return nil }
func (b *BigInt) walk(Visitor)    {}

func (b *BigInt) Type() schema.Path { return schema.BigInt }

func (b *BigInt) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (b *BigInt) atomic()                       {}

func (b *BigInt) text(p *printer) {
	if p.redact {
		p.buf.WriteString(strconv.FormatInt(redactBytes((*big.Int)(b).Bytes()), 10))
	} else {
		p.buf.WriteString((*big.Int)(b).String())
	}
	p.buf.WriteByte('n')
}

// Decimal is a literal std::decimal AST node. The source text is kept
// verbatim so the literal round-trips byte-exactly; it renders with
// the "n" suffix (e.g. 3.14n).
type Decimal struct {
	repr string
}

// ParseDecimal validates s as a decimal number and returns the
// literal.
func ParseDecimal(s string) (Decimal, error) {
	if _, ok := new(big.Rat).SetString(s); !ok || strings.ContainsAny(s, "/") {
		return Decimal{}, fmt.Errorf("qb: invalid decimal literal %q", s)
	}
	return Decimal{repr: s}, nil
}

func (d Decimal) Equals(n Node) bool {
	d2, ok := n.(Decimal)
	return ok && d.repr == d2.repr
}

func (d Decimal) symbols() symset { return nil }
func (d Decimal) walk(Visitor)    {}

func (d Decimal) Type() schema.Path { return schema.Decimal }

func (d Decimal) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (d Decimal) atomic()                       {}

func (d Decimal) text(p *printer) {
	if p.redact {
		p.buf.WriteString(strconv.FormatInt(redactBytes([]byte(d.repr)), 10))
	} else {
		p.buf.WriteString(d.repr)
	}
	p.buf.WriteByte('n')
}

// Bytes is a literal std::bytes AST node.
type Bytes []byte

func (b Bytes) Equals(n Node) bool {
	b2, ok := n.(Bytes)
	return ok && bytes.Equal(b, b2)
}

func (b Bytes) symbols() symset { return nil }
func (b Bytes) walk(Visitor)    {}

func (b Bytes) Type() schema.Path { return schema.Bytes }

func (b Bytes) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (b Bytes) atomic()                       {}

func (b Bytes) text(p *printer) {
	v := []byte(b)
	if p.redact {
		v = []byte(redactString(string(b)))
	}
	p.buf.WriteString(edgeql.QuoteBytes(v))
}

// Str is a literal std::str AST node.
type Str string

func (s Str) Equals(n Node) bool {
	s2, ok := n.(Str)
	return ok && s == s2
}

func (s Str) symbols() symset { return nil }
func (s Str) walk(Visitor)    {}

func (s Str) Type() schema.Path { return schema.Str }

func (s Str) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (s Str) atomic()                       {}

func (s Str) text(p *printer) {
	v := string(s)
	if p.redact {
		v = redactString(v)
	}
	p.buf.WriteString(edgeql.QuoteString(v))
}

// UUID is a literal std::uuid AST node; it renders in cast form,
// <std::uuid>'...'.
type UUID uuid.UUID

func (u UUID) Equals(n Node) bool {
	u2, ok := n.(UUID)
	return ok && u == u2
}

func (u UUID) symbols() symset { return nil }
func (u UUID) walk(Visitor)    {}

func (u UUID) Type() schema.Path { return schema.UUID }

func (u UUID) precedence() edgeql.Precedence { return edgeql.CastPrecedence }

func (u UUID) text(p *printer) {
	v := uuid.UUID(u)
	if p.redact {
		v = redactUUID(v)
	}
	p.buf.WriteString("<std::uuid>")
	p.buf.WriteString(edgeql.QuoteString(v.String()))
}

// Set is a set literal, e.g. {1, 2, 3}.
type Set struct {
	items []Expr
	typ   schema.Path
	refs  symset
}

// NewSet builds a set literal; typ is the element type tag.
func NewSet(typ schema.Path, items ...Expr) *Set {
	sets := make([]symset, len(items))
	for i, it := range items {
		sets[i] = it.symbols()
	}
	return &Set{items: items, typ: typ, refs: union(sets...)}
}

// Items returns the element expressions.
func (s *Set) Items() []Expr { return s.items }

func (s *Set) Equals(n Node) bool {
	s2, ok := n.(*Set)
	if !ok || len(s.items) != len(s2.items) || s.typ != s2.typ {
		return false
	}
	for i := range s.items {
		if !s.items[i].Equals(s2.items[i]) {
			return false
		}
	}
	return true
}

func (s *Set) symbols() symset { return s.refs }

func (s *Set) walk(v Visitor) {
	for i := range s.items {
		Walk(v, s.items[i])
	}
}

func (s *Set) Type() schema.Path { return s.typ }

func (s *Set) precedence() edgeql.Precedence { return edgeql.SetPrecedence }
func (s *Set) atomic()                       {}

func (s *Set) text(p *printer) {
	commaPrec := edgeql.PrecedenceOf(edgeql.Comma)
	p.buf.WriteByte('{')
	for i, it := range s.items {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		parens := !isAtomic(it) && it.precedence().Level < commaPrec.Level
		p.operand(it, parens)
	}
	p.buf.WriteByte('}')
}
