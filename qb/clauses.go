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
)

// Filter is a FILTER clause: an ordered list of predicates folded
// into one AND-chain at render time.
type Filter struct {
	preds []Expr
	refs  symset
}

// NewFilter builds a filter clause; at least one predicate is
// required.
func NewFilter(preds ...Expr) *Filter {
	invariant(len(preds) > 0, "Filter requires at least one predicate")
	sets := make([]symset, len(preds))
	for i, e := range preds {
		sets[i] = e.symbols()
	}
	return &Filter{preds: preds, refs: union(sets...)}
}

// withMore returns a new clause with additional predicates appended.
func (f *Filter) withMore(preds []Expr) *Filter {
	all := make([]Expr, 0, len(f.preds)+len(preds))
	all = append(all, f.preds...)
	all = append(all, preds...)
	return NewFilter(all...)
}

// Predicates returns the accumulated predicates in call order.
func (f *Filter) Predicates() []Expr { return f.preds }

func (f *Filter) Equals(n Node) bool {
	f2, ok := n.(*Filter)
	if !ok || len(f.preds) != len(f2.preds) {
		return false
	}
	for i := range f.preds {
		if !f.preds[i].Equals(f2.preds[i]) {
			return false
		}
	}
	return true
}

func (f *Filter) symbols() symset { return f.refs }

func (f *Filter) walk(v Visitor) {
	for i := range f.preds {
		Walk(v, f.preds[i])
	}
}

func (f *Filter) text(p *printer) {
	fexpr := f.preds[0]
	for _, pred := range f.preds[1:] {
		fexpr = And(fexpr, pred)
	}
	p.buf.WriteString("FILTER ")
	fexpr.text(p)
}

// Direction is an ORDER BY sort direction.
type Direction int

const (
	DefaultDirection Direction = iota
	Asc
	Desc
)

func (d Direction) String() string {
	switch d {
	case Asc:
		return "ASC"
	case Desc:
		return "DESC"
	default:
		return ""
	}
}

// EmptyPlacement controls where empty values sort.
type EmptyPlacement int

const (
	DefaultEmpty EmptyPlacement = iota
	EmptyFirst
	EmptyLast
)

func (e EmptyPlacement) String() string {
	switch e {
	case EmptyFirst:
		return "EMPTY FIRST"
	case EmptyLast:
		return "EMPTY LAST"
	default:
		return ""
	}
}

// OrderByElem is one sort key with its optional direction and
// empty-value placement.
type OrderByElem struct {
	Expr      Expr
	Direction Direction
	Empty     EmptyPlacement
}

func (e OrderByElem) equals(o OrderByElem) bool {
	return e.Direction == o.Direction && e.Empty == o.Empty &&
		e.Expr.Equals(o.Expr)
}

// OrderBy is an ORDER BY clause: sort keys folded into one THEN-chain
// preserving call order.
type OrderBy struct {
	elems []OrderByElem
	refs  symset
}

// NewOrderBy builds an order-by clause; at least one sort key is
// required.
func NewOrderBy(elems ...OrderByElem) *OrderBy {
	invariant(len(elems) > 0, "OrderBy requires at least one sort key")
	sets := make([]symset, len(elems))
	for i, e := range elems {
		sets[i] = e.Expr.symbols()
	}
	return &OrderBy{elems: elems, refs: union(sets...)}
}

// withMore returns a new clause with additional sort keys appended.
func (o *OrderBy) withMore(elems []OrderByElem) *OrderBy {
	all := make([]OrderByElem, 0, len(o.elems)+len(elems))
	all = append(all, o.elems...)
	all = append(all, elems...)
	return NewOrderBy(all...)
}

// Elems returns the sort keys in call order.
func (o *OrderBy) Elems() []OrderByElem { return o.elems }

func (o *OrderBy) Equals(n Node) bool {
	o2, ok := n.(*OrderBy)
	if !ok || len(o.elems) != len(o2.elems) {
		return false
	}
	for i := range o.elems {
		if !o.elems[i].equals(o2.elems[i]) {
			return false
		}
	}
	return true
}

func (o *OrderBy) symbols() symset { return o.refs }

func (o *OrderBy) walk(v Visitor) {
	for i := range o.elems {
		Walk(v, o.elems[i].Expr)
	}
}

func (o *OrderBy) text(p *printer) {
	thenPrec := edgeql.PrecedenceOf(edgeql.Then)
	p.buf.WriteString("ORDER BY ")
	for i, e := range o.elems {
		if i > 0 {
			p.buf.WriteString(" THEN ")
		}
		p.operand(e.Expr, needLeftParens(thenPrec, e.Expr))
		if e.Direction != DefaultDirection {
			p.buf.WriteByte(' ')
			p.buf.WriteString(e.Direction.String())
		}
		if e.Empty != DefaultEmpty {
			p.buf.WriteByte(' ')
			p.buf.WriteString(e.Empty.String())
		}
	}
}

// Limit is a LIMIT clause.
type Limit struct {
	limit Expr
	refs  symset
}

// NewLimit builds a limit clause.
func NewLimit(limit Expr) *Limit {
	return &Limit{limit: limit, refs: limit.symbols()}
}

// Expr returns the limit expression.
func (l *Limit) Expr() Expr { return l.limit }

func (l *Limit) Equals(n Node) bool {
	l2, ok := n.(*Limit)
	return ok && l.limit.Equals(l2.limit)
}

func (l *Limit) symbols() symset { return l.refs }

func (l *Limit) walk(v Visitor) {
	Walk(v, l.limit)
}

func (l *Limit) text(p *printer) {
	p.buf.WriteString("LIMIT ")
	prec := edgeql.PrecedenceOf(edgeql.Limit)
	p.operand(l.limit, needRightParens(prec, l.limit))
}

// Offset is an OFFSET clause.
type Offset struct {
	offset Expr
	refs   symset
}

// NewOffset builds an offset clause.
func NewOffset(offset Expr) *Offset {
	return &Offset{offset: offset, refs: offset.symbols()}
}

// Expr returns the offset expression.
func (o *Offset) Expr() Expr { return o.offset }

func (o *Offset) Equals(n Node) bool {
	o2, ok := n.(*Offset)
	return ok && o.offset.Equals(o2.offset)
}

func (o *Offset) symbols() symset { return o.refs }

func (o *Offset) walk(v Visitor) {
	Walk(v, o.offset)
}

func (o *Offset) text(p *printer) {
	p.buf.WriteString("OFFSET ")
	prec := edgeql.PrecedenceOf(edgeql.Offset)
	p.operand(o.offset, needRightParens(prec, o.offset))
}

// minFold merges an existing limit/offset expression with a new one
// into std::min({old, new}): the tightest cap wins.
func minFold(old, next Expr) Expr {
	typ := next.Type()
	return NewFuncCall("std::min", typ,
		[]Expr{NewSet(typ, old, next)}, nil)
}
