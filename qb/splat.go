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
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/geldata/edgeql-go/schema"
)

// SplatCache builds and memoizes per-type default projection shapes
// from schema reflection. The default shape names every non-computed
// property in sorted order; links are left out so a default fetch
// stays single-object. Safe for concurrent use.
type SplatCache struct {
	res schema.Resolver

	mu     sync.Mutex
	shapes map[schema.Path]*Shape
}

func NewSplatCache(res schema.Resolver) *SplatCache {
	return &SplatCache{res: res, shapes: make(map[schema.Path]*Shape)}
}

// Shape returns the default projection for typ. Types unknown to the
// resolver fall back to a plain * splat.
func (c *SplatCache) Shape(typ schema.Path) *Shape {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sh, ok := c.shapes[typ]; ok {
		return sh
	}
	sh := c.build(typ)
	c.shapes[typ] = sh
	return sh
}

func (c *SplatCache) build(typ schema.Path) *Shape {
	ptrs, ok := c.res.Pointers(typ)
	if !ok {
		return NewShape(SplatElement(SplatStar, typ))
	}
	names := maps.Keys(ptrs)
	slices.Sort(names)
	var elems []ShapeElement
	for _, name := range names {
		ptr := ptrs[name]
		if ptr.Kind != schema.Property || ptr.Computed {
			continue
		}
		elems = append(elems, NamedElement(name))
	}
	if len(elems) == 0 {
		return NewShape(SplatElement(SplatStar, typ))
	}
	return NewShape(elems...)
}
