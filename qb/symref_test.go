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
	"testing"

	"github.com/geldata/edgeql-go/edgeql"
	"github.com/geldata/edgeql-go/schema"
)

func TestFreeSymbols(t *testing.T) {
	sc := NewScope()
	v := NewVariable(sc, schema.Str)

	e := eq(v, Str("x"))
	if _, ok := e.symbols()[v]; !ok {
		t.Error("expression does not report its symbol as free")
	}

	// binding the symbol's scope to a statement closes it over
	st := NewSelect(obj("Person"))
	st = st.WithFilter(eq(strProp(st.Var(), "name"), Str("x")))
	if len(st.symbols()) != 0 {
		t.Errorf("statement leaks its own symbol: %d free", len(st.symbols()))
	}
	if !st.mustBind {
		t.Error("self-referencing statement does not require binding")
	}

	// a leading-dot prefix is scope-local but needs no textual binding
	st2 := NewSelect(obj("Person"))
	pre := NewPathPrefix(st2.Scope(), personType)
	st2 = st2.WithFilter(eq(strProp(pre, "name"), Str("x")))
	if len(st2.symbols()) != 0 {
		t.Errorf("statement leaks its path prefix: %d free", len(st2.symbols()))
	}
	if st2.mustBind {
		t.Error("path prefix alone must not force binding")
	}
}

func TestFreeSymbolsNested(t *testing.T) {
	// an inner statement referencing an outer FOR variable stays open
	// until the FOR itself closes over it
	var inner *SelectStmt
	outer := NewFor(NewSet(schema.Str, Str("a")), func(x *Variable) Expr {
		s := NewSelect(obj("Person"))
		s = s.WithFilter(eq(strProp(s.Var(), "name"), x))
		inner = s
		return s
	})

	if _, ok := inner.symbols()[outer.Var()]; !ok {
		t.Error("inner statement does not report the outer symbol as free")
	}
	if len(inner.symbols()) != 1 {
		t.Errorf("inner statement free set has %d entries, want 1", len(inner.symbols()))
	}
	if len(outer.symbols()) != 0 {
		t.Errorf("outer statement leaks symbols: %d free", len(outer.symbols()))
	}
}

// countVisitor counts visited non-nil nodes.
type countVisitor int

func (c *countVisitor) Visit(n Node) Visitor {
	if n == nil {
		return nil
	}
	*c++
	return c
}

func TestWalk(t *testing.T) {
	e := arith(Int(1), edgeql.Plus, Int(2))
	var c countVisitor
	Walk(&c, e)
	if c != 3 {
		t.Errorf("visited %d nodes, want 3", c)
	}
}
