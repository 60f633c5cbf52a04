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

package qb_test

import (
	"testing"

	"github.com/geldata/edgeql-go/qb"
	"github.com/geldata/edgeql-go/schema"
)

func TestSplatCache(t *testing.T) {
	movieType := schema.NewPath("default", "Movie")
	reg := schema.NewRegistry(&schema.ObjectType{
		Name: movieType,
		Pointers: map[string]schema.Pointer{
			"title": {Type: schema.Str, Kind: schema.Property, Cardinality: schema.One},
			"year":  {Type: schema.Int64, Kind: schema.Property, Cardinality: schema.AtMostOne},
			"age": {Type: schema.Int64, Kind: schema.Property,
				Cardinality: schema.AtMostOne, Computed: true},
			"director": {Type: schema.NewPath("default", "Person"),
				Kind: schema.Link, Cardinality: schema.One},
		},
	})
	cache := qb.NewSplatCache(reg)

	got, typ, err := qb.ToplevelEdgeQL(qb.NewSchemaSet(movieType), cache.Shape)
	if err != nil {
		t.Fatal(err)
	}
	// computed properties and links are left out; the rest sorts by name
	want := "SELECT default::Movie {\n  title,\n  year,\n}"
	if got != want {
		t.Errorf("got  %q", got)
		t.Errorf("want %q", want)
	}
	if typ != movieType {
		t.Errorf("result type %q, want %q", typ, movieType)
	}

	// repeated lookups hit the memoized shape
	if cache.Shape(movieType) != cache.Shape(movieType) {
		t.Error("shape not memoized")
	}

	// unknown types degrade to a plain splat
	unknown := schema.NewPath("default", "Unknown")
	got, _, err = qb.ToplevelEdgeQL(qb.NewSchemaSet(unknown), cache.Shape)
	if err != nil {
		t.Fatal(err)
	}
	want = "SELECT default::Unknown {\n  *,\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
