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

func TestShapeRender(t *testing.T) {
	originType := schema.NewPath("default", "Origin")
	pre := NewPathPrefix(NewScope(), movieType)

	testcases := []struct {
		in   Expr
		want string
	}{
		{
			NewShapeOp(obj("Movie"), NewShape(
				SplatElement(SplatStar, movieType),
			)),
			"SELECT default::Movie {\n  *,\n}",
		},
		{
			// a splat against a supertype narrows explicitly
			NewShapeOp(obj("Movie"), NewShape(
				SplatElement(SplatDoubleStar, originType),
			)),
			"SELECT default::Movie {\n  [IS default::Origin].**,\n}",
		},
		{
			NewShapeOp(obj("Movie"), NewShape(
				NamedElement("title"),
				NamedElement("year"),
			)),
			"SELECT default::Movie {\n  title,\n  year,\n}",
		},
		{
			// reading a field of the subject under its own name
			// collapses to the bare name
			NewShapeOp(obj("Movie"), NewShape(
				ComputedElement("title", strProp(obj("Movie"), "title")),
			)),
			"SELECT default::Movie {\n  title,\n}",
		},
		{
			NewShapeOp(obj("Movie"), NewShape(
				ComputedElement("title", strProp(pre, "title")),
			)),
			"SELECT default::Movie {\n  title,\n}",
		},
		{
			// an alias never collapses
			NewShapeOp(obj("Movie"), NewShape(
				ComputedElement("name", strProp(obj("Movie"), "title")),
			)),
			"SELECT default::Movie {\n  name := default::Movie.title,\n}",
		},
		{
			NewShapeOp(obj("Person"), NewShape(
				ComputedElement("display", NewInfixOp(
					strProp(NewPathPrefix(NewScope(), personType), "first"),
					edgeql.Concat,
					strProp(NewPathPrefix(NewScope(), personType), "last"),
					schema.Str)),
			)),
			"SELECT default::Person {\n  display := .first ++ .last,\n}",
		},
		{
			// a name needing quoting stays quoted in both forms
			NewShapeOp(obj("Movie"), NewShape(
				NamedElement("limit"),
				ComputedElement("select", Int(1)),
			)),
			"SELECT default::Movie {\n  `limit`,\n  `select` := 1,\n}",
		},
	}
	for i := range testcases {
		got, _, err := ToplevelEdgeQL(testcases[i].in, nil)
		if err != nil {
			t.Fatalf("testcase %d: %v", i, err)
		}
		want := testcases[i].want
		if got != want {
			t.Errorf("testcase %d: got  %q", i, got)
			t.Errorf("testcase %d: want %q", i, want)
		}
	}
}

func TestShapeOpType(t *testing.T) {
	op := NewShapeOp(obj("Movie"), NewShape(NamedElement("title")))
	if op.Type() != movieType {
		t.Errorf("shape op type %q, want %q", op.Type(), movieType)
	}
	if !op.Equals(NewShapeOp(obj("Movie"), NewShape(NamedElement("title")))) {
		t.Error("structurally equal shape ops do not compare equal")
	}
	if op.Equals(NewShapeOp(obj("Movie"), NewShape(NamedElement("year")))) {
		t.Error("different shapes compare equal")
	}
}
