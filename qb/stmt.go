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

// stmtCore holds the pieces every statement form shares: the keyword,
// the subject expression, the statement's own scope, and the implicit
// subject symbol bound to that scope.
type stmtCore struct {
	keyword edgeql.Token
	subject Expr
	scope   *Scope
	subjVar *Variable

	// refs is the statement's free symbol set; mustBind records
	// whether any clause references subjVar, which forces the
	// synthesized FOR binding at render time.
	refs     symset
	mustBind bool
}

func (s *stmtCore) init(keyword edgeql.Token, owner Node, subject Expr) {
	s.keyword = keyword
	s.subject = subject
	s.scope = &Scope{owner: owner}
	s.subjVar = NewVariable(s.scope, subject.Type())
}

// recompute refreshes refs and mustBind from the subject plus the
// given clause symbol sets.
func (s *stmtCore) recompute(clauses ...symset) {
	all := union(append(clauses, s.subject.symbols())...)
	s.refs = all.minusScope(s.scope)
	s.mustBind = bindsSelf(union(clauses...), s.scope)
}

// bindsSelf reports whether refs contains a Variable owned by sc.
// PathPrefix references to sc do not count; they render as leading-dot
// paths and need no textual binding.
func bindsSelf(refs symset, sc *Scope) bool {
	for r := range refs {
		if r.refScope() != sc {
			continue
		}
		if _, ok := r.(*Variable); ok {
			return true
		}
	}
	return false
}

// Subject returns the statement's subject expression.
func (s *stmtCore) Subject() Expr { return s.subject }

// Scope returns the statement's binding scope.
func (s *stmtCore) Scope() *Scope { return s.scope }

// Var returns the statement's implicit subject symbol. Clauses built
// against it force the FOR-bound rendering of the statement.
func (s *stmtCore) Var() *Variable { return s.subjVar }

func (s *stmtCore) symbols() symset         { return s.refs }
func (s *stmtCore) stmtToken() edgeql.Token { return s.keyword }
func (s *stmtCore) Type() schema.Path       { return s.subject.Type() }

func (s *stmtCore) precedence() edgeql.Precedence {
	return edgeql.PrecedenceOf(s.keyword)
}

// renderBound emits the synthesized binding wrapper
// "FOR v IN (subject) UNION (body)".
func (s *stmtCore) renderBound(p *printer, body func(*printer)) {
	p.buf.WriteString("FOR ")
	s.subjVar.text(p)
	p.buf.WriteString(" IN (")
	s.subject.text(p)
	p.buf.WriteString(") UNION (")
	body(p)
	p.buf.WriteByte(')')
}

// SelectStmt is "SELECT subject" plus optional FILTER, ORDER BY,
// LIMIT and OFFSET clauses. The With* methods in builder.go produce
// edited copies; the statement itself is immutable.
type SelectStmt struct {
	stmtCore
	implicit bool
	filter   *Filter
	orderBy  *OrderBy
	limit    *Limit
	offset   *Offset
}

// NewSelect builds an explicit "SELECT subject" with no clauses.
func NewSelect(subject Expr) *SelectStmt {
	return newSelect(subject, false)
}

// newImplicitSelect builds the SELECT wrapper the clause-fusing
// helpers synthesize around non-statement expressions; an implicit
// wrapper is transparent for further clause fusion.
func newImplicitSelect(subject Expr) *SelectStmt {
	return newSelect(subject, true)
}

func newSelect(subject Expr, implicit bool) *SelectStmt {
	st := &SelectStmt{implicit: implicit}
	st.init(edgeql.Select, st, subject)
	st.recompute()
	return st
}

// Implicit reports whether this statement was synthesized as a clause
// carrier rather than written by the caller.
func (s *SelectStmt) Implicit() bool { return s.implicit }

// Filter returns the FILTER clause, or nil.
func (s *SelectStmt) Filter() *Filter { return s.filter }

// OrderBy returns the ORDER BY clause, or nil.
func (s *SelectStmt) OrderBy() *OrderBy { return s.orderBy }

// Limit returns the LIMIT clause, or nil.
func (s *SelectStmt) Limit() *Limit { return s.limit }

// Offset returns the OFFSET clause, or nil.
func (s *SelectStmt) Offset() *Offset { return s.offset }

func (s *SelectStmt) clauseSets() []symset {
	var sets []symset
	if s.filter != nil {
		sets = append(sets, s.filter.symbols())
	}
	if s.orderBy != nil {
		sets = append(sets, s.orderBy.symbols())
	}
	if s.limit != nil {
		sets = append(sets, s.limit.symbols())
	}
	if s.offset != nil {
		sets = append(sets, s.offset.symbols())
	}
	return sets
}

func (s *SelectStmt) Equals(n Node) bool {
	s2, ok := n.(*SelectStmt)
	if !ok || s.implicit != s2.implicit || !s.subject.Equals(s2.subject) {
		return false
	}
	if (s.filter == nil) != (s2.filter == nil) ||
		(s.orderBy == nil) != (s2.orderBy == nil) ||
		(s.limit == nil) != (s2.limit == nil) ||
		(s.offset == nil) != (s2.offset == nil) {
		return false
	}
	if s.filter != nil && !s.filter.Equals(s2.filter) {
		return false
	}
	if s.orderBy != nil && !s.orderBy.Equals(s2.orderBy) {
		return false
	}
	if s.limit != nil && !s.limit.Equals(s2.limit) {
		return false
	}
	if s.offset != nil && !s.offset.Equals(s2.offset) {
		return false
	}
	return true
}

func (s *SelectStmt) walk(v Visitor) {
	Walk(v, s.subject)
	if s.filter != nil {
		s.filter.walk(v)
	}
	if s.orderBy != nil {
		s.orderBy.walk(v)
	}
	if s.limit != nil {
		s.limit.walk(v)
	}
	if s.offset != nil {
		s.offset.walk(v)
	}
}

func (s *SelectStmt) textClauses(p *printer) {
	if s.filter != nil {
		p.buf.WriteByte(' ')
		s.filter.text(p)
	}
	if s.orderBy != nil {
		p.buf.WriteByte(' ')
		s.orderBy.text(p)
	}
	if s.limit != nil {
		p.buf.WriteByte(' ')
		s.limit.text(p)
	}
	if s.offset != nil {
		p.buf.WriteByte(' ')
		s.offset.text(p)
	}
}

func (s *SelectStmt) text(p *printer) {
	if s.mustBind {
		s.renderBound(p, func(p *printer) {
			p.buf.WriteString("SELECT ")
			s.subjVar.text(p)
			s.textClauses(p)
		})
		return
	}
	p.buf.WriteString("SELECT ")
	p.operand(s.subject, needRightParens(s.precedence(), s.subject))
	s.textClauses(p)
}

// InsertStmt is "INSERT Type" or "INSERT Type {shape}". The subject is
// always the inserted object type's schema set; an insert never needs
// the FOR binding since its shape cannot reference the object being
// created.
type InsertStmt struct {
	stmtCore
	shape *Shape
}

// NewInsert builds an insert of typ; shape may be nil for an insert of
// all defaults.
func NewInsert(typ schema.Path, shape *Shape) *InsertStmt {
	st := &InsertStmt{shape: shape}
	st.init(edgeql.Insert, st, NewSchemaSet(typ))
	if shape != nil {
		st.recompute(shape.symbols())
	} else {
		st.recompute()
	}
	return st
}

// Shape returns the inserted field values, or nil.
func (s *InsertStmt) Shape() *Shape { return s.shape }

func (s *InsertStmt) Equals(n Node) bool {
	s2, ok := n.(*InsertStmt)
	if !ok || !s.subject.Equals(s2.subject) {
		return false
	}
	if (s.shape == nil) != (s2.shape == nil) {
		return false
	}
	return s.shape == nil || s.shape.Equals(s2.shape)
}

func (s *InsertStmt) walk(v Visitor) {
	Walk(v, s.subject)
	if s.shape != nil {
		s.shape.walk(v)
	}
}

func (s *InsertStmt) text(p *printer) {
	p.buf.WriteString("INSERT ")
	s.subject.text(p)
	if s.shape != nil {
		p.buf.WriteByte(' ')
		s.shape.text(p)
	}
}

// UpdateStmt is "UPDATE subject [FILTER ...] SET {shape}".
type UpdateStmt struct {
	stmtCore
	filter *Filter
	shape  *Shape
}

// NewUpdate builds an update of subject; the SET shape is required,
// the filter may be nil.
func NewUpdate(subject Expr, filter *Filter, shape *Shape) *UpdateStmt {
	invariant(shape != nil, "Update requires a SET shape")
	st := &UpdateStmt{filter: filter, shape: shape}
	st.init(edgeql.Update, st, subject)
	if filter != nil {
		st.recompute(filter.symbols(), shape.symbols())
	} else {
		st.recompute(shape.symbols())
	}
	return st
}

// Filter returns the FILTER clause, or nil.
func (s *UpdateStmt) Filter() *Filter { return s.filter }

// Shape returns the SET shape.
func (s *UpdateStmt) Shape() *Shape { return s.shape }

func (s *UpdateStmt) Equals(n Node) bool {
	s2, ok := n.(*UpdateStmt)
	if !ok || !s.subject.Equals(s2.subject) || !s.shape.Equals(s2.shape) {
		return false
	}
	if (s.filter == nil) != (s2.filter == nil) {
		return false
	}
	return s.filter == nil || s.filter.Equals(s2.filter)
}

func (s *UpdateStmt) walk(v Visitor) {
	Walk(v, s.subject)
	if s.filter != nil {
		s.filter.walk(v)
	}
	s.shape.walk(v)
}

func (s *UpdateStmt) textBody(p *printer, subject Expr) {
	p.buf.WriteString("UPDATE ")
	p.operand(subject, needRightParens(s.precedence(), subject))
	if s.filter != nil {
		p.buf.WriteByte(' ')
		s.filter.text(p)
	}
	p.buf.WriteString(" SET ")
	// collapse checks run against the original subject even when the
	// statement renders through its bound symbol
	s.shape.render(p, s.subject)
}

func (s *UpdateStmt) text(p *printer) {
	if s.mustBind {
		s.renderBound(p, func(p *printer) {
			s.textBody(p, s.subjVar)
		})
		return
	}
	s.textBody(p, s.subject)
}

// DeleteStmt is "DELETE subject". Deleting a filtered subset is
// expressed by deleting a filtered select.
type DeleteStmt struct {
	stmtCore
}

// NewDelete builds a delete of subject.
func NewDelete(subject Expr) *DeleteStmt {
	st := &DeleteStmt{}
	st.init(edgeql.Delete, st, subject)
	st.recompute()
	return st
}

func (s *DeleteStmt) Equals(n Node) bool {
	s2, ok := n.(*DeleteStmt)
	return ok && s.subject.Equals(s2.subject)
}

func (s *DeleteStmt) walk(v Visitor) {
	Walk(v, s.subject)
}

func (s *DeleteStmt) text(p *printer) {
	p.buf.WriteString("DELETE ")
	p.operand(s.subject, needRightParens(s.precedence(), s.subject))
}

// ForStmt is "FOR v IN (iter) UNION (body)". The body is built by a
// callback receiving the iteration symbol, so every body reference to
// it is bound to the statement's scope by construction.
type ForStmt struct {
	iter    Expr
	body    Expr
	scope   *Scope
	iterVar *Variable
	refs    symset
}

// NewFor builds an explicit iteration over iter; body receives the
// per-element symbol and returns the element expression.
func NewFor(iter Expr, body func(*Variable) Expr) *ForStmt {
	st := &ForStmt{iter: iter, scope: &Scope{}}
	st.scope.owner = st
	st.iterVar = NewVariable(st.scope, iter.Type())
	st.body = body(st.iterVar)
	st.refs = union(iter.symbols(), st.body.symbols()).minusScope(st.scope)
	return st
}

// Iter returns the iterated expression.
func (s *ForStmt) Iter() Expr { return s.iter }

// Body returns the per-element expression.
func (s *ForStmt) Body() Expr { return s.body }

// Scope returns the statement's binding scope.
func (s *ForStmt) Scope() *Scope { return s.scope }

// Var returns the iteration symbol.
func (s *ForStmt) Var() *Variable { return s.iterVar }

func (s *ForStmt) Equals(n Node) bool {
	s2, ok := n.(*ForStmt)
	return ok && s.iter.Equals(s2.iter) && s.body.Equals(s2.body)
}

func (s *ForStmt) symbols() symset { return s.refs }

func (s *ForStmt) walk(v Visitor) {
	Walk(v, s.iter)
	Walk(v, s.body)
}

func (s *ForStmt) Type() schema.Path { return s.body.Type() }

func (s *ForStmt) stmtToken() edgeql.Token { return edgeql.For }

func (s *ForStmt) precedence() edgeql.Precedence {
	return edgeql.PrecedenceOf(edgeql.For)
}

func (s *ForStmt) text(p *printer) {
	p.buf.WriteString("FOR ")
	s.iterVar.text(p)
	p.buf.WriteString(" IN (")
	s.iter.text(p)
	p.buf.WriteString(") UNION (")
	s.body.text(p)
	p.buf.WriteByte(')')
}
