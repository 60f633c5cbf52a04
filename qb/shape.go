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
	"github.com/geldata/edgeql-go/edgeql"
	"github.com/geldata/edgeql-go/schema"
)

// SplatKind distinguishes the two projection splats.
type SplatKind int

const (
	SplatNone       SplatKind = iota
	SplatStar                 // * (all immediate fields)
	SplatDoubleStar           // ** (all fields, recursively)
)

func (k SplatKind) String() string {
	switch k {
	case SplatStar:
		return "*"
	case SplatDoubleStar:
		return "**"
	default:
		return ""
	}
}

// ShapeElement is one projected field: a splat, a bare name, or a
// computed/aliased override. Origin, when set, is the schema type the
// element applies to; an origin different from the shape's source type
// renders with [IS Origin] narrowing.
type ShapeElement struct {
	Name   string
	Value  Expr
	Splat  SplatKind
	Origin schema.Path
}

// SplatElement projects all fields of origin.
func SplatElement(kind SplatKind, origin schema.Path) ShapeElement {
	invariant(kind != SplatNone, "SplatElement requires a splat kind")
	return ShapeElement{Splat: kind, Origin: origin}
}

// NamedElement projects the field unchanged.
func NamedElement(name string) ShapeElement {
	return ShapeElement{Name: name}
}

// ComputedElement projects "name := value".
func ComputedElement(name string, value Expr) ShapeElement {
	return ShapeElement{Name: name, Value: value}
}

func (e ShapeElement) equals(o ShapeElement) bool {
	return e.Name == o.Name && e.Splat == o.Splat &&
		e.Origin == o.Origin && Equal(nodeOrNil(e.Value), nodeOrNil(o.Value))
}

func nodeOrNil(e Expr) Node {
	if e == nil {
		return nil
	}
	return e
}

// Shape is an ordered list of projected fields.
type Shape struct {
	elems []ShapeElement
	refs  symset
}

// NewShape builds a shape; at least one element is required.
func NewShape(elems ...ShapeElement) *Shape {
	invariant(len(elems) > 0, "Shape requires at least one element")
	var sets []symset
	for _, e := range elems {
		if e.Value != nil {
			sets = append(sets, e.Value.symbols())
		}
	}
	return &Shape{elems: elems, refs: union(sets...)}
}

// Elements returns the projected fields in order.
func (s *Shape) Elements() []ShapeElement { return s.elems }

func (s *Shape) Equals(n Node) bool {
	s2, ok := n.(*Shape)
	if !ok || len(s.elems) != len(s2.elems) {
		return false
	}
	for i := range s.elems {
		if !s.elems[i].equals(s2.elems[i]) {
			return false
		}
	}
	return true
}

func (s *Shape) symbols() symset { return s.refs }

func (s *Shape) walk(v Visitor) {
	for i := range s.elems {
		if s.elems[i].Value != nil {
			Walk(v, s.elems[i].Value)
		}
	}
}

// text renders the shape without source context (insert shapes).
func (s *Shape) text(p *printer) {
	s.render(p, nil)
}

// isBareRead reports whether value is "the field name read unchanged
// from source": a single path step off the shape's own subject.
// Such an override collapses to the bare field name.
func isBareRead(name string, value Expr, source Expr) bool {
	if source == nil {
		return false
	}
	pt, ok := value.(*Path)
	if !ok || pt.Name() != name || pt.IsLinkProp() {
		return false
	}
	switch src := pt.Source().(type) {
	case *PathPrefix:
		return src.Type() == source.Type()
	case *SchemaSet:
		return src.Type() == source.Type()
	default:
		return false
	}
}

func (s *Shape) render(p *printer, source Expr) {
	var srcType schema.Path
	if source != nil {
		srcType = source.Type()
	}
	assignPrec := edgeql.PrecedenceOf(edgeql.Assign)
	p.buf.WriteString("{\n")
	for _, e := range s.elems {
		p.buf.WriteString("  ")
		narrowed := !e.Origin.IsZero() && e.Origin != srcType
		switch {
		case e.Splat != SplatNone:
			if narrowed {
				p.buf.WriteString("[IS ")
				p.buf.WriteString(e.Origin.String())
				p.buf.WriteString("].")
			}
			p.buf.WriteString(e.Splat.String())
		case e.Value == nil || isBareRead(e.Name, e.Value, source):
			if narrowed {
				p.buf.WriteString("[IS ")
				p.buf.WriteString(e.Origin.String())
				p.buf.WriteString("].")
			}
			p.buf.WriteString(edgeql.QuoteIdent(e.Name))
		default:
			p.buf.WriteString(edgeql.QuoteIdent(e.Name))
			p.buf.WriteString(" := ")
			p.operand(e.Value, needRightParens(assignPrec, e.Value))
		}
		p.buf.WriteString(",\n")
	}
	p.buf.WriteByte('}')
}

// ShapeOp applies a shape to a subject expression: "subject {...}".
type ShapeOp struct {
	subject Expr
	shape   *Shape
	scope   *Scope
	refs    symset
}

// NewShapeOp builds "subject {shape}" with a fresh scope; computed
// shape elements may reference the subject through symbols bound to
// that scope.
func NewShapeOp(subject Expr, shape *Shape) *ShapeOp {
	op := &ShapeOp{subject: subject, shape: shape, scope: NewScope()}
	op.scope.owner = op
	op.refs = union(subject.symbols(), shape.symbols()).minusScope(op.scope)
	return op
}

// Subject returns the projected expression.
func (o *ShapeOp) Subject() Expr { return o.subject }

// Shape returns the projection.
func (o *ShapeOp) Shape() *Shape { return o.shape }

// Scope returns the operation's binding scope.
func (o *ShapeOp) Scope() *Scope { return o.scope }

func (o *ShapeOp) Equals(n Node) bool {
	o2, ok := n.(*ShapeOp)
	return ok && o.subject.Equals(o2.subject) && o.shape.Equals(o2.shape)
}

func (o *ShapeOp) symbols() symset { return o.refs }

func (o *ShapeOp) walk(v Visitor) {
	Walk(v, o.subject)
	o.shape.walk(v)
}

func (o *ShapeOp) Type() schema.Path { return o.subject.Type() }

func (o *ShapeOp) precedence() edgeql.Precedence { return edgeql.SetPrecedence }
func (o *ShapeOp) atomic()                       {}

func (o *ShapeOp) text(p *printer) {
	p.operand(o.subject, needLeftParens(o.precedence(), o.subject))
	p.buf.WriteByte(' ')
	o.shape.render(p, o.subject)
}
