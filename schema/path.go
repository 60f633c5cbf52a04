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

// Package schema is the reflection surface consumed by the query
// builder: opaque schema type tags plus the pointer metadata needed to
// compute default shapes. The query builder core never interprets
// these values beyond equality.
package schema

import (
	"encoding/json"
	"strings"
)

// Path is a fully qualified schema name such as "std::int64" or
// "default::Movie". The zero Path means "no static type known".
// Paths are comparable with ==.
type Path struct {
	name string
}

// NewPath builds a Path from name parts, e.g. NewPath("std", "bool").
func NewPath(parts ...string) Path {
	return Path{name: strings.Join(parts, "::")}
}

// ParsePath parses a "mod::name" string into a Path.
func ParsePath(s string) Path {
	return Path{name: s}
}

// Parts splits the path back into its "::"-separated components.
func (p Path) Parts() []string {
	if p.name == "" {
		return nil
	}
	return strings.Split(p.name, "::")
}

// Module returns everything up to the final component.
func (p Path) Module() string {
	if i := strings.LastIndex(p.name, "::"); i >= 0 {
		return p.name[:i]
	}
	return ""
}

// Name returns the final component.
func (p Path) Name() string {
	if i := strings.LastIndex(p.name, "::"); i >= 0 {
		return p.name[i+2:]
	}
	return p.name
}

// String returns the "::"-joined schema name.
func (p Path) String() string { return p.name }

// IsZero reports whether p carries no type at all.
func (p Path) IsZero() bool { return p.name == "" }

func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.name)
}

func (p *Path) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &p.name)
}

// Well-known std scalar types used by the literal nodes.
var (
	Bool    = NewPath("std", "bool")
	Int64   = NewPath("std", "int64")
	Float64 = NewPath("std", "float64")
	BigInt  = NewPath("std", "bigint")
	Decimal = NewPath("std", "decimal")
	Bytes   = NewPath("std", "bytes")
	Str     = NewPath("std", "str")
	UUID    = NewPath("std", "uuid")
)
