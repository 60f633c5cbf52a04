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
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPath(t *testing.T) {
	p := NewPath("default", "sub", "Movie")
	if got, want := p.String(), "default::sub::Movie"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := p.Module(), "default::sub"; got != want {
		t.Errorf("Module() = %q, want %q", got, want)
	}
	if got, want := p.Name(), "Movie"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"default", "sub", "Movie"}, p.Parts()); diff != "" {
		t.Errorf("Parts() mismatch (-want +got):\n%s", diff)
	}

	if p != ParsePath("default::sub::Movie") {
		t.Error("ParsePath result not comparable to NewPath result")
	}

	var zero Path
	if !zero.IsZero() || p.IsZero() {
		t.Error("IsZero misreports")
	}
	if zero.Parts() != nil {
		t.Errorf("zero path Parts() = %v, want nil", zero.Parts())
	}

	bare := ParsePath("Movie")
	if bare.Module() != "" || bare.Name() != "Movie" {
		t.Errorf("bare path split into %q / %q", bare.Module(), bare.Name())
	}
}

func TestPathJSON(t *testing.T) {
	in := NewPath("std", "int64")
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `"std::int64"`; got != want {
		t.Errorf("marshaled to %s, want %s", got, want)
	}
	var out Path
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip changed %q into %q", in, out)
	}
}
