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

// WithFilter returns a copy of s with preds appended to its FILTER
// clause. The copy shares the original's scope and subject symbol, so
// predicates built against s.Var() stay bound.
func (s *SelectStmt) WithFilter(preds ...Expr) *SelectStmt {
	dup := *s
	if dup.filter == nil {
		dup.filter = NewFilter(preds...)
	} else {
		dup.filter = dup.filter.withMore(preds)
	}
	dup.recompute(dup.clauseSets()...)
	return &dup
}

// WithOrderBy returns a copy of s with elems appended to its ORDER BY
// clause; repeated calls accumulate into one THEN-chain in call order.
func (s *SelectStmt) WithOrderBy(elems ...OrderByElem) *SelectStmt {
	dup := *s
	if dup.orderBy == nil {
		dup.orderBy = NewOrderBy(elems...)
	} else {
		dup.orderBy = dup.orderBy.withMore(elems)
	}
	dup.recompute(dup.clauseSets()...)
	return &dup
}

// WithLimit returns a copy of s limited to limit rows. When s already
// has a LIMIT, the two fold into std::min so the tighter bound wins.
func (s *SelectStmt) WithLimit(limit Expr) *SelectStmt {
	dup := *s
	if dup.limit == nil {
		dup.limit = NewLimit(limit)
	} else {
		dup.limit = NewLimit(minFold(dup.limit.Expr(), limit))
	}
	dup.recompute(dup.clauseSets()...)
	return &dup
}

// WithOffset returns a copy of s with the given OFFSET. A repeated
// OFFSET folds into std::min, mirroring the LIMIT merge.
func (s *SelectStmt) WithOffset(offset Expr) *SelectStmt {
	dup := *s
	if dup.offset == nil {
		dup.offset = NewOffset(offset)
	} else {
		dup.offset = NewOffset(minFold(dup.offset.Expr(), offset))
	}
	dup.recompute(dup.clauseSets()...)
	return &dup
}

// WithFilter returns a copy of s with preds appended to its FILTER
// clause; predicates built against s.Var() stay bound and force the
// FOR-bound rendering.
func (s *UpdateStmt) WithFilter(preds ...Expr) *UpdateStmt {
	dup := *s
	if dup.filter == nil {
		dup.filter = NewFilter(preds...)
	} else {
		dup.filter = dup.filter.withMore(preds)
	}
	dup.recompute(dup.filter.symbols(), dup.shape.symbols())
	return &dup
}

// AddFilter fuses preds into x: a select statement gains (or extends)
// its FILTER clause, anything else is first wrapped in an implicit
// SELECT.
func AddFilter(x Expr, preds ...Expr) *SelectStmt {
	st, ok := x.(*SelectStmt)
	if !ok {
		st = newImplicitSelect(x)
	}
	return st.WithFilter(preds...)
}

// AddOrderBy fuses sort keys into x. Repeated calls accumulate into
// one THEN-chain in call order; if x is already limited or offset, the
// ordering applies to the truncated result, so a fresh outer SELECT is
// synthesized instead.
func AddOrderBy(x Expr, elems ...OrderByElem) *SelectStmt {
	st, ok := x.(*SelectStmt)
	if !ok || st.limit != nil || st.offset != nil {
		st = newImplicitSelect(x)
	}
	return st.WithOrderBy(elems...)
}

// AddLimit fuses a LIMIT into x, wrapping non-select expressions in an
// implicit SELECT.
func AddLimit(x Expr, limit Expr) *SelectStmt {
	st, ok := x.(*SelectStmt)
	if !ok {
		st = newImplicitSelect(x)
	}
	return st.WithLimit(limit)
}

// AddOffset fuses an OFFSET into x, wrapping non-select expressions in
// an implicit SELECT.
func AddOffset(x Expr, offset Expr) *SelectStmt {
	st, ok := x.(*SelectStmt)
	if !ok {
		st = newImplicitSelect(x)
	}
	return st.WithOffset(offset)
}
