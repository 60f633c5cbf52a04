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
	"fmt"

	"github.com/google/uuid"
	"sigs.k8s.io/yaml"
)

// Cardinality describes how many values a pointer may hold.
type Cardinality string

const (
	Empty      Cardinality = "Empty"
	AtMostOne  Cardinality = "AtMostOne"
	One        Cardinality = "One"
	Many       Cardinality = "Many"
	AtLeastOne Cardinality = "AtLeastOne"
)

// IsMulti reports whether the pointer may hold more than one value.
func (c Cardinality) IsMulti() bool {
	return c == Many || c == AtLeastOne
}

// IsOptional reports whether the pointer may hold no value.
func (c Cardinality) IsOptional() bool {
	return c == AtMostOne || c == Many || c == Empty
}

// PointerKind distinguishes object links from scalar properties.
type PointerKind string

const (
	Link     PointerKind = "Link"
	Property PointerKind = "Property"
)

// Pointer is the reflection record for one link or property.
type Pointer struct {
	Type        Path               `json:"type"`
	Kind        PointerKind        `json:"kind"`
	Cardinality Cardinality        `json:"cardinality"`
	Computed    bool               `json:"computed,omitempty"`
	Readonly    bool               `json:"readonly,omitempty"`
	Properties  map[string]Pointer `json:"properties,omitempty"`
}

// ObjectType is the reflection record for one object type.
type ObjectType struct {
	ID       uuid.UUID          `json:"id,omitempty"`
	Name     Path               `json:"name"`
	Pointers map[string]Pointer `json:"pointers"`
}

// Resolver yields pointer reflection for object types. The query
// builder consumes it only through the default-splat callback.
type Resolver interface {
	Pointers(Path) (map[string]Pointer, bool)
}

// Registry is an in-memory type catalog, typically loaded from a
// reflection dump produced by schema introspection.
type Registry struct {
	types map[Path]*ObjectType
}

// NewRegistry builds a registry from already-decoded object types.
func NewRegistry(types ...*ObjectType) *Registry {
	r := &Registry{types: make(map[Path]*ObjectType, len(types))}
	for _, t := range types {
		r.types[t.Name] = t
	}
	return r
}

// LoadRegistry decodes a YAML (or JSON) reflection dump: a list of
// object type records.
func LoadRegistry(data []byte) (*Registry, error) {
	var types []*ObjectType
	if err := yaml.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("schema: decoding registry: %w", err)
	}
	for i, t := range types {
		if t == nil || t.Name.IsZero() {
			return nil, fmt.Errorf("schema: registry entry %d has no name", i)
		}
	}
	return NewRegistry(types...), nil
}

// Lookup returns the reflection record for the named type.
func (r *Registry) Lookup(p Path) (*ObjectType, bool) {
	t, ok := r.types[p]
	return t, ok
}

// Pointers implements Resolver.
func (r *Registry) Pointers(p Path) (map[string]Pointer, bool) {
	t, ok := r.types[p]
	if !ok {
		return nil, false
	}
	return t.Pointers, true
}
