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

import "fmt"

// CompatibilityError indicates a value that could not be coerced into
// the expression AST. It is always a caller bug; there is nothing to
// retry.
type CompatibilityError struct {
	Value any
}

func (e *CompatibilityError) Error() string {
	return fmt.Sprintf("qb: %T cannot be converted to an Expr", e.Value)
}

// UnboundSymbolError indicates a Variable with no assigned name in the
// active binding table at render time: a reference escaped the
// iteration construct that was supposed to bind it.
type UnboundSymbolError struct {
	Var *Variable
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("qb: unbound variable of type %s", e.Var.Type())
}

// invariant panics when cond is false. Invariant breaks are bugs in
// this package or its direct callers, never user-correctable input
// conditions, so they fail loudly instead of returning an error.
func invariant(cond bool, msg string) {
	if !cond {
		panic("qb: invariant violation: " + msg)
	}
}
