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

	"github.com/google/uuid"

	"github.com/geldata/edgeql-go/edgeql"
	"github.com/geldata/edgeql-go/schema"
)

var (
	movieType  = schema.NewPath("default", "Movie")
	personType = schema.NewPath("default", "Person")
)

func obj(name string) *SchemaSet {
	return NewSchemaSet(schema.NewPath("default", name))
}

func strProp(src Expr, name string) *Path {
	return NewPath(src, name, schema.Str)
}

func arith(l Expr, op edgeql.Token, r Expr) *InfixOp {
	return NewInfixOp(l, op, r, schema.Int64)
}

func eq(l, r Expr) *InfixOp {
	return NewInfixOp(l, edgeql.Eq, r, schema.Bool)
}

func decimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestString(t *testing.T) {
	testcases := []struct {
		in   Expr
		want string
	}{
		{
			Int(42),
			"42",
		},
		{
			Float(1),
			"1.0",
		},
		{
			Float(2.5),
			"2.5",
		},
		{
			Bool(true),
			"true",
		},
		{
			Str("it's"),
			`'it\'s'`,
		},
		{
			NewBigInt(123),
			"123n",
		},
		{
			decimal("3.14"),
			"3.14n",
		},
		{
			Bytes{'a', 0x00},
			`b'a\x00'`,
		},
		{
			UUID(uuid.MustParse("759637d8-6635-11e9-b9d4-098002d459d5")),
			"<std::uuid>'759637d8-6635-11e9-b9d4-098002d459d5'",
		},
		{
			NewSet(schema.Int64, Int(1), Int(2), Int(3)),
			"{1, 2, 3}",
		},
		{
			arith(Int(1), edgeql.Plus, arith(Int(2), edgeql.Mul, Int(3))),
			"1 + 2 * 3",
		},
		{
			arith(arith(Int(1), edgeql.Plus, Int(2)), edgeql.Mul, Int(3)),
			"(1 + 2) * 3",
		},
		{
			// left-associative chains stay flat on the left...
			arith(arith(Int(1), edgeql.Minus, Int(2)), edgeql.Minus, Int(3)),
			"1 - 2 - 3",
		},
		{
			// ...but an equal-precedence right operand must keep its
			// grouping visible
			arith(Int(1), edgeql.Minus, arith(Int(2), edgeql.Minus, Int(3))),
			"1 - (2 - 3)",
		},
		{
			// exponentiation associates to the right
			arith(Int(2), edgeql.Pow, arith(Int(3), edgeql.Pow, Int(2))),
			"2 ^ 3 ^ 2",
		},
		{
			arith(arith(Int(2), edgeql.Pow, Int(3)), edgeql.Pow, Int(2)),
			"(2 ^ 3) ^ 2",
		},
		{
			NewInfixOp(Bool(true), edgeql.And,
				NewInfixOp(Bool(false), edgeql.Or, Bool(true), schema.Bool),
				schema.Bool),
			"true AND (false OR true)",
		},
		{
			// comparisons are non-associative
			eq(Int(1), eq(Int(2), Int(3))),
			"1 = (2 = 3)",
		},
		{
			NewInfixOp(Str("a"), edgeql.Coalesce,
				NewInfixOp(Str("b"), edgeql.Coalesce, Str("c"), schema.Str),
				schema.Str),
			"'a' ?? 'b' ?? 'c'",
		},
		{
			NewInfixOp(Str("a"), edgeql.Concat, Str("b"), schema.Str),
			"'a' ++ 'b'",
		},
		{
			strProp(strProp(obj("Movie"), "director"), "name"),
			"default::Movie.director.name",
		},
		{
			NewLinkProp(strProp(obj("Person"), "friends"), "strength", schema.Float64),
			"default::Person.friends.@strength",
		},
		{
			NewCast(schema.Int64, arith(Int(1), edgeql.Plus, Int(2))),
			"<std::int64>(1 + 2)",
		},
		{
			NewCast(schema.Str, Int(1)),
			"<std::str>1",
		},
		{
			NewIndexOp(strProp(obj("Movie"), "title"), Int(0), schema.Str),
			"default::Movie.title[0]",
		},
		{
			NewFuncCall("std::str_pad_start", schema.Str,
				[]Expr{Str("x")},
				map[string]Expr{"fill": Str(" "), "count": Int(3)}),
			"std::str_pad_start('x', count := 3, fill := ' ')",
		},
		{
			NewFuncCall("std::count", schema.Int64, []Expr{obj("Movie")}, nil),
			"std::count(default::Movie)",
		},
		{
			// comparison binds tighter than NOT
			Not(eq(Int(1), Int(2))),
			"NOT 1 = 2",
		},
		{
			NewPrefixOp(edgeql.Distinct, NewSet(schema.Int64, Int(1), Int(2)), schema.Int64),
			"DISTINCT {1, 2}",
		},
		{
			NewPrefixOp(edgeql.Exists, NewSelect(obj("Movie")), schema.Bool),
			"EXISTS (SELECT default::Movie)",
		},
		{
			NewInfixOp(obj("Movie"), edgeql.Union, obj("Person"),
				schema.NewPath("std", "Object")),
			"default::Movie UNION default::Person",
		},
		{
			// a union binds looser than the comma position, so it is
			// parenthesized when it appears as a call argument
			NewFuncCall("std::count", schema.Int64,
				[]Expr{NewInfixOp(obj("Movie"), edgeql.Union, obj("Person"),
					schema.NewPath("std", "Object"))},
				nil),
			"std::count((default::Movie UNION default::Person))",
		},
		{
			NewSet(schema.Int64,
				NewInfixOp(Int(1), edgeql.Union, Int(2), schema.Int64),
				Int(3)),
			"{(1 UNION 2), 3}",
		},
	}
	for i := range testcases {
		got, err := EdgeQL(testcases[i].in, nil)
		if err != nil {
			t.Fatalf("testcase %d: %v", i, err)
		}
		want := testcases[i].want
		if got != want {
			t.Errorf("testcase %d: got  %q", i, got)
			t.Errorf("testcase %d: want %q", i, want)
		}
		if !testcases[i].in.Equals(testcases[i].in) {
			t.Errorf("testcase %d: not self-equal", i)
		}
	}
}
