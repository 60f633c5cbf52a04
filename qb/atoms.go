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

// Ident is a bare quoted identifier.
type Ident string

func (i Ident) Equals(n Node) bool {
	i2, ok := n.(Ident)
	return ok && i == i2
}

func (i Ident) symbols() symset { return nil }
func (i Ident) walk(Visitor)    {}

func (i Ident) Type() schema.Path { return schema.Path{} }

func (i Ident) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (i Ident) atomic()                       {}

func (i Ident) text(p *printer) {
	p.buf.WriteString(edgeql.QuoteIdent(string(i)))
}

// Variable is a placeholder symbol bound by an enclosing statement.
// It renders as the textual name assigned in the active ScopeContext;
// rendering a Variable with no entry in the table fails the render
// with an UnboundSymbolError.
type Variable struct {
	scope *Scope
	typ   schema.Path
}

// NewVariable returns a fresh symbol owned by scope.
func NewVariable(scope *Scope, typ schema.Path) *Variable {
	invariant(scope != nil, "Variable requires a scope")
	return &Variable{scope: scope, typ: typ}
}

// Scope returns the scope that owns (binds) this symbol.
func (v *Variable) Scope() *Scope { return v.scope }

func (v *Variable) Equals(n Node) bool { return n == Node(v) }

func (v *Variable) symbols() symset  { return singleton(v) }
func (v *Variable) refScope() *Scope { return v.scope }
func (v *Variable) walk(Visitor)     {}

func (v *Variable) Type() schema.Path { return v.typ }

func (v *Variable) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (v *Variable) atomic()                       {}

func (v *Variable) text(p *printer) {
	name, ok := p.scope.lookup(v)
	if !ok {
		if p.err == nil {
			p.err = &UnboundSymbolError{Var: v}
		}
		return
	}
	p.buf.WriteString(edgeql.QuoteIdent(name))
}

// PathPrefix marks the implicit subject of the enclosing statement, so
// a path rooted in it renders as ".field" rather than "Type.field".
type PathPrefix struct {
	scope *Scope
	typ   schema.Path
}

// NewPathPrefix returns the implicit-subject marker for scope.
func NewPathPrefix(scope *Scope, typ schema.Path) *PathPrefix {
	invariant(scope != nil, "PathPrefix requires a scope")
	return &PathPrefix{scope: scope, typ: typ}
}

// Scope returns the statement scope the prefix refers to.
func (pp *PathPrefix) Scope() *Scope { return pp.scope }

func (pp *PathPrefix) Equals(n Node) bool { return n == Node(pp) }

func (pp *PathPrefix) symbols() symset  { return singleton(pp) }
func (pp *PathPrefix) refScope() *Scope { return pp.scope }
func (pp *PathPrefix) walk(Visitor)     {}

func (pp *PathPrefix) Type() schema.Path { return pp.typ }

func (pp *PathPrefix) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (pp *PathPrefix) atomic()                       {}

// the prefix itself emits nothing; the dot comes from path joining
func (pp *PathPrefix) text(p *printer) {}

// SchemaSet is a reference to the whole object set of a schema type,
// e.g. "default::Movie".
type SchemaSet struct {
	typ schema.Path
}

// NewSchemaSet returns the set reference for the named type.
func NewSchemaSet(typ schema.Path) *SchemaSet {
	invariant(!typ.IsZero(), "SchemaSet requires a type name")
	return &SchemaSet{typ: typ}
}

func (s *SchemaSet) Equals(n Node) bool {
	s2, ok := n.(*SchemaSet)
	return ok && s.typ == s2.typ
}

func (s *SchemaSet) symbols() symset { return nil }
func (s *SchemaSet) walk(Visitor)    {}

func (s *SchemaSet) Type() schema.Path { return s.typ }

func (s *SchemaSet) precedence() edgeql.Precedence { return edgeql.AtomPrecedence }
func (s *SchemaSet) atomic()                       {}

func (s *SchemaSet) text(p *printer) {
	p.buf.WriteString(s.typ.String())
}

// Path is a dotted-step accessor; chains of Path nodes form "a.b.c".
type Path struct {
	source Expr
	name   string
	lprop  bool
	typ    schema.Path
	refs   symset
}

// NewPath builds source.name. When source is a PathPrefix the
// dependency on the enclosing statement is resolved structurally by
// statement nesting, so it is not reported as a free symbol.
func NewPath(source Expr, name string, typ schema.Path) *Path {
	return newPath(source, name, false, typ)
}

// NewLinkProp builds source.@name (a link-property step).
func NewLinkProp(source Expr, name string, typ schema.Path) *Path {
	return newPath(source, name, true, typ)
}

func newPath(source Expr, name string, lprop bool, typ schema.Path) *Path {
	invariant(source != nil, "Path requires a source")
	var refs symset
	if _, isPrefix := source.(*PathPrefix); !isPrefix {
		refs = source.symbols()
	}
	return &Path{source: source, name: name, lprop: lprop, typ: typ, refs: refs}
}

// Source returns the step's source expression.
func (pt *Path) Source() Expr { return pt.source }

// Name returns the step name.
func (pt *Path) Name() string { return pt.name }

// IsLinkProp reports whether the step is a link-property access.
func (pt *Path) IsLinkProp() bool { return pt.lprop }

func (pt *Path) Equals(n Node) bool {
	p2, ok := n.(*Path)
	return ok && pt.name == p2.name && pt.lprop == p2.lprop &&
		pt.typ == p2.typ && pt.source.Equals(p2.source)
}

func (pt *Path) symbols() symset { return pt.refs }

func (pt *Path) walk(v Visitor) {
	Walk(v, pt.source)
}

func (pt *Path) Type() schema.Path { return pt.typ }

func (pt *Path) precedence() edgeql.Precedence { return edgeql.PathPrecedence }
func (pt *Path) atomic()                       {}

func (pt *Path) text(p *printer) {
	// walk the chain of sources to the root, then emit the steps in
	// root-to-leaf order
	var steps []*Path
	cur := Expr(pt)
	for {
		step, ok := cur.(*Path)
		if !ok {
			break
		}
		steps = append(steps, step)
		cur = step.source
	}
	p.operand(cur, needLeftParens(edgeql.PathPrecedence, cur))
	for i := len(steps) - 1; i >= 0; i-- {
		p.buf.WriteByte('.')
		if steps[i].lprop {
			p.buf.WriteByte('@')
		}
		p.buf.WriteString(edgeql.QuoteIdent(steps[i].name))
	}
}
