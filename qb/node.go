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
	"strconv"
	"strings"

	"github.com/geldata/edgeql-go/edgeql"
	"github.com/geldata/edgeql-go/schema"
)

// Node is an expression AST node. Nodes are immutable once
// constructed; "editing" produces a new node.
type Node interface {
	// Equals reports whether this node is structurally equivalent
	// to another node. Symbols compare by identity.
	Equals(Node) bool

	// symbols returns the free symbol set cached at construction.
	symbols() symset

	text(p *printer)
	walk(Visitor)
}

// Expr is a Node that yields a value: it has a place in the operator
// precedence table and carries an opaque static type tag supplied by
// schema reflection.
type Expr interface {
	Node

	// Type returns the static result type of the expression.
	// The zero Path means no static type is known.
	Type() schema.Path

	precedence() edgeql.Precedence
}

// AtomicExpr is satisfied by self-delimiting expressions (identifiers,
// literals, paths, calls, shapes); the renderer never parenthesizes
// them regardless of context.
type AtomicExpr interface {
	Expr
	atomic()
}

// Stmt is satisfied by the five statement forms.
type Stmt interface {
	Expr
	stmtToken() edgeql.Token
}

// Equal returns whether a and b are equivalent; either may be nil.
func Equal(a, b Node) bool {
	if a == nil {
		return b == nil
	}
	return b != nil && a.Equals(b)
}

// Visitor is the argument to Walk; its Visit method is invoked for
// each node encountered. If the returned visitor w is not nil, Walk
// visits each child of the node with w, followed by w.Visit(nil).
//
// (see also: ast.Visitor)
type Visitor interface {
	Visit(Node) Visitor
}

// Walk traverses an AST in depth-first order.
func Walk(v Visitor, n Node) {
	w := v.Visit(n)
	if w != nil {
		n.walk(w)
		w.Visit(nil)
	}
}

// symref is the internal face of a placeholder node: a symbol owned
// by some scope. Symbols are compared by identity, never by value.
type symref interface {
	Expr
	refScope() *Scope
}

// symset is a set of free symbol references. A nil symset is the
// empty set.
type symset map[symref]struct{}

func singleton(r symref) symset {
	return symset{r: struct{}{}}
}

// union returns the union of the given sets (nil when empty).
func union(sets ...symset) symset {
	var out symset
	for _, s := range sets {
		for r := range s {
			if out == nil {
				out = make(symset, len(s))
			}
			out[r] = struct{}{}
		}
	}
	return out
}

// minusScope returns s without the symbols local to sc.
func (s symset) minusScope(sc *Scope) symset {
	var out symset
	for r := range s {
		if r.refScope() == sc {
			continue
		}
		if out == nil {
			out = make(symset, len(s))
		}
		out[r] = struct{}{}
	}
	return out
}

// hasScope reports whether any symbol in s is owned by sc.
func (s symset) hasScope(sc *Scope) bool {
	for r := range s {
		if r.refScope() == sc {
			return true
		}
	}
	return false
}

// Scope is an identity-only lexical binding domain owned by one
// statement or shape operation. Scopes have no behavior beyond
// identity; the owner back-reference is non-owning.
type Scope struct {
	owner Node
}

// NewScope returns a fresh scope with no owner; it backs expressions
// built outside any statement context.
func NewScope() *Scope { return &Scope{} }

// Owner returns the statement or shape operation the scope was
// created with, or nil. Statement copies produced by the With*
// builders share their original's scope so symbols stay bound across
// derivation; on such a copy, Owner reports the statement the chain
// started from, not the copy itself.
func (s *Scope) Owner() Node { return s.owner }

// ScopeContext is the render-time binding table mapping bound symbols
// to their chosen textual names. It is built once per top-level render
// pass; a name, once assigned to a symbol, is never changed within
// that pass.
type ScopeContext struct {
	names map[*Variable]string
	next  int
}

// NewScopeContext returns an empty binding table.
func NewScopeContext() *ScopeContext {
	return &ScopeContext{names: make(map[*Variable]string)}
}

// assign returns the name bound to v, choosing a fresh one on first
// sight.
func (c *ScopeContext) assign(v *Variable) string {
	if name, ok := c.names[v]; ok {
		return name
	}
	name := "_v" + strconv.Itoa(c.next)
	c.next++
	c.names[v] = name
	return name
}

// lookup returns the name bound to v, if any.
func (c *ScopeContext) lookup(v *Variable) (string, bool) {
	name, ok := c.names[v]
	return name, ok
}

// printer carries the output buffer and per-render state through the
// recursive text calls. The first error wins; rendering after an
// error is a no-op at the top level.
type printer struct {
	buf    strings.Builder
	scope  *ScopeContext
	redact bool
	err    error
}

// operand renders e, parenthesized when parens is set.
func (p *printer) operand(e Expr, parens bool) {
	if parens {
		p.buf.WriteByte('(')
	}
	e.text(p)
	if parens {
		p.buf.WriteByte(')')
	}
}

func isAtomic(e Expr) bool {
	_, ok := e.(AtomicExpr)
	return ok
}

// needLeftParens applies the precedence table to a left operand;
// atomic operands are exempt unconditionally.
func needLeftParens(prod edgeql.Precedence, operand Expr) bool {
	if isAtomic(operand) {
		return false
	}
	return edgeql.NeedLeftParens(prod, operand.precedence())
}

// needRightParens is the right-operand analog of needLeftParens.
func needRightParens(prod edgeql.Precedence, operand Expr) bool {
	if isAtomic(operand) {
		return false
	}
	return edgeql.NeedRightParens(prod, operand.precedence())
}
