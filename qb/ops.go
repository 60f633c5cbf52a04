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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/geldata/edgeql-go/edgeql"
	"github.com/geldata/edgeql-go/schema"
)

// PrefixOp is a unary prefix operation, e.g. NOT x or DISTINCT x.
type PrefixOp struct {
	op   edgeql.Token
	expr Expr
	typ  schema.Path
	refs symset
}

// NewPrefixOp builds "op expr"; typ is the static result type.
func NewPrefixOp(op edgeql.Token, expr Expr, typ schema.Path) *PrefixOp {
	return &PrefixOp{op: op, expr: expr, typ: typ, refs: expr.symbols()}
}

// Op returns the operator token.
func (o *PrefixOp) Op() edgeql.Token { return o.op }

// Expr returns the operand.
func (o *PrefixOp) Expr() Expr { return o.expr }

func (o *PrefixOp) Equals(n Node) bool {
	o2, ok := n.(*PrefixOp)
	return ok && o.op == o2.op && o.typ == o2.typ && o.expr.Equals(o2.expr)
}

func (o *PrefixOp) symbols() symset { return o.refs }

func (o *PrefixOp) walk(v Visitor) {
	Walk(v, o.expr)
}

func (o *PrefixOp) Type() schema.Path { return o.typ }

func (o *PrefixOp) precedence() edgeql.Precedence {
	return edgeql.PrecedenceOf(o.op)
}

func (o *PrefixOp) text(p *printer) {
	p.buf.WriteString(o.op.String())
	p.buf.WriteByte(' ')
	p.operand(o.expr, needRightParens(o.precedence(), o.expr))
}

// InfixOp is a binary infix operation.
type InfixOp struct {
	op           edgeql.Token
	lexpr, rexpr Expr
	typ          schema.Path
	refs         symset
}

// NewInfixOp builds "lexpr op rexpr"; typ is the static result type.
func NewInfixOp(lexpr Expr, op edgeql.Token, rexpr Expr, typ schema.Path) *InfixOp {
	return &InfixOp{
		op:    op,
		lexpr: lexpr,
		rexpr: rexpr,
		typ:   typ,
		refs:  union(lexpr.symbols(), rexpr.symbols()),
	}
}

// Op returns the operator token.
func (o *InfixOp) Op() edgeql.Token { return o.op }

// LExpr returns the left operand.
func (o *InfixOp) LExpr() Expr { return o.lexpr }

// RExpr returns the right operand.
func (o *InfixOp) RExpr() Expr { return o.rexpr }

func (o *InfixOp) Equals(n Node) bool {
	o2, ok := n.(*InfixOp)
	return ok && o.op == o2.op && o.typ == o2.typ &&
		o.lexpr.Equals(o2.lexpr) && o.rexpr.Equals(o2.rexpr)
}

func (o *InfixOp) symbols() symset { return o.refs }

func (o *InfixOp) walk(v Visitor) {
	Walk(v, o.lexpr)
	Walk(v, o.rexpr)
}

func (o *InfixOp) Type() schema.Path { return o.typ }

func (o *InfixOp) precedence() edgeql.Precedence {
	return edgeql.PrecedenceOf(o.op)
}

func (o *InfixOp) text(p *printer) {
	prec := o.precedence()
	p.operand(o.lexpr, needLeftParens(prec, o.lexpr))
	p.buf.WriteByte(' ')
	p.buf.WriteString(o.op.String())
	p.buf.WriteByte(' ')
	p.operand(o.rexpr, needRightParens(prec, o.rexpr))
}

// IndexOp is the subscript operation lexpr[rexpr].
type IndexOp struct {
	lexpr, rexpr Expr
	typ          schema.Path
	refs         symset
}

// NewIndexOp builds "lexpr[rexpr]".
func NewIndexOp(lexpr, rexpr Expr, typ schema.Path) *IndexOp {
	return &IndexOp{
		lexpr: lexpr,
		rexpr: rexpr,
		typ:   typ,
		refs:  union(lexpr.symbols(), rexpr.symbols()),
	}
}

// LExpr returns the indexed expression.
func (o *IndexOp) LExpr() Expr { return o.lexpr }

// RExpr returns the index expression.
func (o *IndexOp) RExpr() Expr { return o.rexpr }

func (o *IndexOp) Equals(n Node) bool {
	o2, ok := n.(*IndexOp)
	return ok && o.typ == o2.typ &&
		o.lexpr.Equals(o2.lexpr) && o.rexpr.Equals(o2.rexpr)
}

func (o *IndexOp) symbols() symset { return o.refs }

func (o *IndexOp) walk(v Visitor) {
	Walk(v, o.lexpr)
	Walk(v, o.rexpr)
}

func (o *IndexOp) Type() schema.Path { return o.typ }

func (o *IndexOp) precedence() edgeql.Precedence { return edgeql.IndexPrecedence }

func (o *IndexOp) text(p *printer) {
	p.operand(o.lexpr, needLeftParens(o.precedence(), o.lexpr))
	p.buf.WriteByte('[')
	// the brackets delimit the index; no inner parens ever needed
	o.rexpr.text(p)
	p.buf.WriteByte(']')
}

// CastOp renders as <Type>expr and binds tightest of all operators.
type CastOp struct {
	toType schema.Path
	expr   Expr
	refs   symset
}

// NewCast builds "<to>expr".
func NewCast(to schema.Path, expr Expr) *CastOp {
	invariant(!to.IsZero(), "CastOp requires a target type")
	return &CastOp{toType: to, expr: expr, refs: expr.symbols()}
}

// Expr returns the operand.
func (o *CastOp) Expr() Expr { return o.expr }

func (o *CastOp) Equals(n Node) bool {
	o2, ok := n.(*CastOp)
	return ok && o.toType == o2.toType && o.expr.Equals(o2.expr)
}

func (o *CastOp) symbols() symset { return o.refs }

func (o *CastOp) walk(v Visitor) {
	Walk(v, o.expr)
}

func (o *CastOp) Type() schema.Path { return o.toType }

func (o *CastOp) precedence() edgeql.Precedence { return edgeql.CastPrecedence }

func (o *CastOp) text(p *printer) {
	p.buf.WriteByte('<')
	p.buf.WriteString(o.toType.String())
	p.buf.WriteByte('>')
	p.operand(o.expr, needRightParens(o.precedence(), o.expr))
}

// FuncCall is a function call with positional and keyword arguments.
type FuncCall struct {
	fname  string
	args   []Expr
	kwargs map[string]Expr
	typ    schema.Path
	refs   symset
}

// NewFuncCall builds "fname(args..., kw := expr...)"; fname may be
// schema-qualified ("std::min"). Keyword arguments render in name
// order for deterministic output.
func NewFuncCall(fname string, typ schema.Path, args []Expr, kwargs map[string]Expr) *FuncCall {
	sets := make([]symset, 0, len(args)+len(kwargs))
	for _, a := range args {
		sets = append(sets, a.symbols())
	}
	for _, a := range kwargs {
		sets = append(sets, a.symbols())
	}
	return &FuncCall{
		fname:  fname,
		args:   args,
		kwargs: kwargs,
		typ:    typ,
		refs:   union(sets...),
	}
}

// Name returns the function name.
func (c *FuncCall) Name() string { return c.fname }

// Args returns the positional arguments.
func (c *FuncCall) Args() []Expr { return c.args }

func (c *FuncCall) Equals(n Node) bool {
	c2, ok := n.(*FuncCall)
	if !ok || c.fname != c2.fname || c.typ != c2.typ ||
		len(c.args) != len(c2.args) || len(c.kwargs) != len(c2.kwargs) {
		return false
	}
	for i := range c.args {
		if !c.args[i].Equals(c2.args[i]) {
			return false
		}
	}
	for k, v := range c.kwargs {
		v2, ok := c2.kwargs[k]
		if !ok || !v.Equals(v2) {
			return false
		}
	}
	return true
}

func (c *FuncCall) symbols() symset { return c.refs }

func (c *FuncCall) walk(v Visitor) {
	for i := range c.args {
		Walk(v, c.args[i])
	}
	names := maps.Keys(c.kwargs)
	slices.Sort(names)
	for _, k := range names {
		Walk(v, c.kwargs[k])
	}
}

func (c *FuncCall) Type() schema.Path { return c.typ }

func (c *FuncCall) precedence() edgeql.Precedence { return edgeql.CallPrecedence }
func (c *FuncCall) atomic()                       {}

func (c *FuncCall) text(p *printer) {
	commaPrec := edgeql.PrecedenceOf(edgeql.Comma)
	p.buf.WriteString(c.fname)
	p.buf.WriteByte('(')
	n := 0
	for _, a := range c.args {
		if n > 0 {
			p.buf.WriteString(", ")
		}
		n++
		parens := !isAtomic(a) && a.precedence().Level < commaPrec.Level
		p.operand(a, parens)
	}
	names := maps.Keys(c.kwargs)
	slices.Sort(names)
	for _, k := range names {
		if n > 0 {
			p.buf.WriteString(", ")
		}
		n++
		p.buf.WriteString(edgeql.QuoteIdent(k))
		p.buf.WriteString(" := ")
		a := c.kwargs[k]
		parens := !isAtomic(a) && a.precedence().Level < commaPrec.Level
		p.operand(a, parens)
	}
	p.buf.WriteByte(')')
}

// Convenience constructors for the common boolean compositions.

// And yields "left AND right".
func And(left, right Expr) *InfixOp {
	return NewInfixOp(left, edgeql.And, right, schema.Bool)
}

// Or yields "left OR right".
func Or(left, right Expr) *InfixOp {
	return NewInfixOp(left, edgeql.Or, right, schema.Bool)
}

// Not yields "NOT expr".
func Not(expr Expr) *PrefixOp {
	return NewPrefixOp(edgeql.Not, expr, schema.Bool)
}
