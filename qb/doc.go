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

// Package qb implements the EdgeQL query builder core: an immutable
// expression AST, the scope/symbol-binding model, and the
// precedence-aware renderer that turns a tree of expressions into
// query text.
//
// Trees are built bottom-up with the New* constructors; every node
// caches the set of free symbols it references at construction time.
// The critical entry points are ToplevelEdgeQL, which coerces a value
// into an expression, wraps it into a statement if necessary and
// renders it, and Walk, which allows a caller to examine a built tree.
package qb
