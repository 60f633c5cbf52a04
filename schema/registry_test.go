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

package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const reflectionDump = `
- name: default::Movie
  id: 759637d8-6635-11e9-b9d4-098002d459d5
  pointers:
    title:
      type: std::str
      kind: Property
      cardinality: One
    year:
      type: std::int64
      kind: Property
      cardinality: AtMostOne
    director:
      type: default::Person
      kind: Link
      cardinality: One
      properties:
        credit:
          type: std::str
          kind: Property
          cardinality: AtMostOne
- name: default::Person
  pointers:
    name:
      type: std::str
      kind: Property
      cardinality: One
    age:
      type: std::int64
      kind: Property
      cardinality: AtMostOne
      computed: true
`

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry([]byte(reflectionDump))
	if err != nil {
		t.Fatal(err)
	}

	movie, ok := reg.Lookup(NewPath("default", "Movie"))
	if !ok {
		t.Fatal("default::Movie not found")
	}
	want := map[string]Pointer{
		"title": {Type: Str, Kind: Property, Cardinality: One},
		"year":  {Type: Int64, Kind: Property, Cardinality: AtMostOne},
		"director": {
			Type:        NewPath("default", "Person"),
			Kind:        Link,
			Cardinality: One,
			Properties: map[string]Pointer{
				"credit": {Type: Str, Kind: Property, Cardinality: AtMostOne},
			},
		},
	}
	if diff := cmp.Diff(want, movie.Pointers, cmp.AllowUnexported(Path{})); diff != "" {
		t.Errorf("pointers mismatch (-want +got):\n%s", diff)
	}
	if movie.ID.String() != "759637d8-6635-11e9-b9d4-098002d459d5" {
		t.Errorf("unexpected type id %s", movie.ID)
	}

	ptrs, ok := reg.Pointers(NewPath("default", "Person"))
	if !ok {
		t.Fatal("default::Person not found")
	}
	if !ptrs["age"].Computed {
		t.Error("computed flag lost")
	}
	if !ptrs["age"].Cardinality.IsOptional() {
		t.Error("AtMostOne should be optional")
	}
	if ptrs["age"].Cardinality.IsMulti() {
		t.Error("AtMostOne should not be multi")
	}

	if _, ok := reg.Lookup(NewPath("default", "Nope")); ok {
		t.Error("lookup of unknown type succeeded")
	}
}

func TestLoadRegistryErrors(t *testing.T) {
	if _, err := LoadRegistry([]byte("{")); err == nil {
		t.Error("malformed document accepted")
	}
	if _, err := LoadRegistry([]byte("- pointers: {}")); err == nil {
		t.Error("nameless entry accepted")
	}
}
