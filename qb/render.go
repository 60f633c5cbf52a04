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
	"github.com/geldata/edgeql-go/schema"
)

// ExprCompatible is implemented by values that know how to present
// themselves as an expression (generated model types, field aliases,
// and so on).
type ExprCompatible interface {
	EdgeQLExpr() Expr
}

// AsExpr coerces x into an Expr. Expressions pass through unchanged;
// anything else must implement ExprCompatible.
func AsExpr(x any) (Expr, error) {
	switch v := x.(type) {
	case Expr:
		return v, nil
	case ExprCompatible:
		e := v.EdgeQLExpr()
		if e == nil {
			return nil, &CompatibilityError{Value: x}
		}
		return e, nil
	default:
		return nil, &CompatibilityError{Value: x}
	}
}

// binder walks an expression before rendering and assigns names to
// every symbol that will be textually bound: FOR iteration variables
// and the subject symbols of statements forced into the FOR-bound
// form. Outer statements bind before inner ones.
type binder struct {
	ctx *ScopeContext
}

func (b *binder) Visit(n Node) Visitor {
	switch s := n.(type) {
	case nil:
		return nil
	case *ForStmt:
		b.ctx.assign(s.iterVar)
	case *SelectStmt:
		if s.mustBind {
			b.ctx.assign(s.subjVar)
		}
	case *UpdateStmt:
		if s.mustBind {
			b.ctx.assign(s.subjVar)
		}
	}
	return b
}

func render(e Expr, ctx *ScopeContext, redact bool) (string, error) {
	if ctx == nil {
		// no outer bindings: name the symbols e binds itself, so a
		// self-contained statement renders without a toplevel pass
		ctx = NewScopeContext()
		Walk(&binder{ctx: ctx}, e)
	}
	p := &printer{scope: ctx, redact: redact}
	e.text(p)
	if p.err != nil {
		return "", p.err
	}
	return p.buf.String(), nil
}

// EdgeQL renders e against an existing binding table. A nil ctx
// starts from no outer bindings: symbols e binds itself (FOR
// iteration variables, FOR-bound statement subjects) are named before
// rendering, and any symbol still without a binding makes it fail
// with an UnboundSymbolError.
func EdgeQL(e Expr, ctx *ScopeContext) (string, error) {
	return render(e, ctx, false)
}

// Redacted is EdgeQL with every literal replaced by a deterministic
// hash of itself, for logs and error reports.
func Redacted(e Expr, ctx *ScopeContext) (string, error) {
	return render(e, ctx, true)
}

// SplatFunc produces the default projection shape for an object type,
// or nil when the type has none.
type SplatFunc func(schema.Path) *Shape

// ToplevelEdgeQL turns x into a complete query: coerce to an
// expression, apply the default shape to a bare schema set, wrap
// non-statements in an implicit SELECT, bind symbols, and render. It
// returns the query text and the result type.
func ToplevelEdgeQL(x any, splat SplatFunc) (string, schema.Path, error) {
	return toplevel(x, splat, false)
}

// ToplevelRedacted is ToplevelEdgeQL with literal redaction.
func ToplevelRedacted(x any, splat SplatFunc) (string, schema.Path, error) {
	return toplevel(x, splat, true)
}

func toplevel(x any, splat SplatFunc, redact bool) (string, schema.Path, error) {
	e, err := AsExpr(x)
	if err != nil {
		return "", schema.Path{}, err
	}
	if ss, ok := e.(*SchemaSet); ok && splat != nil {
		if sh := splat(ss.Type()); sh != nil {
			e = NewShapeOp(ss, sh)
		}
	}
	typ := e.Type()
	if _, ok := e.(Stmt); !ok {
		e = newImplicitSelect(e)
	}
	ctx := NewScopeContext()
	Walk(&binder{ctx: ctx}, e)
	text, err := render(e, ctx, redact)
	if err != nil {
		return "", schema.Path{}, err
	}
	return text, typ, nil
}
