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

// Package edgeql holds the lexical surface of generated queries:
// keyword and operator tokens, the operator precedence table, and
// identifier/literal quoting.
package edgeql

// Token is an EdgeQL keyword or operator token.
type Token int

const (
	// statement keywords
	Select Token = iota
	Insert
	Update
	Delete
	For

	// clause keywords
	Filter
	OrderBy
	Limit
	Offset
	Then

	// set operators
	Union
	Except
	Intersect

	// punctuation
	Comma
	Assign // :=
	LBrace
	LBracket

	// logical operators
	Or
	And
	Not

	// pattern and membership operators
	Like
	ILike
	NotLike
	NotILike
	In
	NotIn

	// type checks
	Is
	IsNot

	// comparison operators
	Eq       // =
	Ne       // !=
	CoalEq   // ?=
	CoalNe   // ?!=
	Lt       // <
	Le       // <=
	Gt       // >
	Ge       // >=
	Coalesce // ??

	// arithmetic and string operators
	Concat   // ++
	Plus     // +
	Minus    // -
	Mul      // *
	Div      // /
	FloorDiv // //
	Mod      // %
	Pow      // ^

	Distinct
	Exists

	maxToken
)

func (t Token) String() string {
	switch t {
	case Select:
		return "SELECT"
	case Insert:
		return "INSERT"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	case For:
		return "FOR"
	case Filter:
		return "FILTER"
	case OrderBy:
		return "ORDER BY"
	case Limit:
		return "LIMIT"
	case Offset:
		return "OFFSET"
	case Then:
		return "THEN"
	case Union:
		return "UNION"
	case Except:
		return "EXCEPT"
	case Intersect:
		return "INTERSECT"
	case Comma:
		return ","
	case Assign:
		return ":="
	case LBrace:
		return "{"
	case LBracket:
		return "["
	case Or:
		return "OR"
	case And:
		return "AND"
	case Not:
		return "NOT"
	case Like:
		return "LIKE"
	case ILike:
		return "ILIKE"
	case NotLike:
		return "NOT LIKE"
	case NotILike:
		return "NOT ILIKE"
	case In:
		return "IN"
	case NotIn:
		return "NOT IN"
	case Is:
		return "IS"
	case IsNot:
		return "IS NOT"
	case Eq:
		return "="
	case Ne:
		return "!="
	case CoalEq:
		return "?="
	case CoalNe:
		return "?!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Coalesce:
		return "??"
	case Concat:
		return "++"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case FloorDiv:
		return "//"
	case Mod:
		return "%"
	case Pow:
		return "^"
	case Distinct:
		return "DISTINCT"
	case Exists:
		return "EXISTS"
	default:
		return "<unknown token>"
	}
}

// Assoc is an operator associativity class.
type Assoc int

const (
	NonAssoc Assoc = iota
	LeftAssoc
	RightAssoc
)

// Precedence is an operator-table category; Level only ever
// participates in ordering comparisons, never in arithmetic.
type Precedence struct {
	Level int
	Assoc Assoc
}

// Precedence levels, loosest-binding first. The relative order follows
// the EdgeQL grammar; the gaps are meaningless.
const (
	levelStmt = 10 * (iota + 1)
	levelClause
	levelThen
	// set operators sit below the comma position, so a bare union
	// passed as a call argument or set element keeps its parentheses
	levelUnion
	levelIntersect
	levelComma
	levelAssign
	levelOr
	levelAnd
	levelNot
	levelPattern
	levelIs
	levelCmp
	levelCoalesce
	levelAdd
	levelMul
	levelPow
	levelUnary
	levelBrace
	levelIndex
	levelPath
	levelCast
	levelAtom
)

var precedence = map[Token]Precedence{
	Select: {levelStmt, NonAssoc},
	Insert: {levelStmt, NonAssoc},
	Update: {levelStmt, NonAssoc},
	Delete: {levelStmt, NonAssoc},
	For:    {levelStmt, NonAssoc},

	Filter:  {levelClause, NonAssoc},
	OrderBy: {levelClause, NonAssoc},
	Limit:   {levelClause, NonAssoc},
	Offset:  {levelClause, NonAssoc},
	Then:    {levelThen, LeftAssoc},

	Comma:  {levelComma, LeftAssoc},
	Assign: {levelAssign, RightAssoc},

	Union:     {levelUnion, LeftAssoc},
	Except:    {levelUnion, LeftAssoc},
	Intersect: {levelIntersect, LeftAssoc},

	Or:  {levelOr, LeftAssoc},
	And: {levelAnd, LeftAssoc},
	Not: {levelNot, RightAssoc},

	Like:     {levelPattern, NonAssoc},
	ILike:    {levelPattern, NonAssoc},
	NotLike:  {levelPattern, NonAssoc},
	NotILike: {levelPattern, NonAssoc},
	In:       {levelPattern, NonAssoc},
	NotIn:    {levelPattern, NonAssoc},

	Is:    {levelIs, NonAssoc},
	IsNot: {levelIs, NonAssoc},

	Eq:     {levelCmp, NonAssoc},
	Ne:     {levelCmp, NonAssoc},
	CoalEq: {levelCmp, NonAssoc},
	CoalNe: {levelCmp, NonAssoc},
	Lt:     {levelCmp, NonAssoc},
	Le:     {levelCmp, NonAssoc},
	Gt:     {levelCmp, NonAssoc},
	Ge:     {levelCmp, NonAssoc},

	Coalesce: {levelCoalesce, RightAssoc},

	Concat: {levelAdd, LeftAssoc},
	Plus:   {levelAdd, LeftAssoc},
	Minus:  {levelAdd, LeftAssoc},

	Mul:      {levelMul, LeftAssoc},
	Div:      {levelMul, LeftAssoc},
	FloorDiv: {levelMul, LeftAssoc},
	Mod:      {levelMul, LeftAssoc},

	Pow: {levelPow, RightAssoc},

	Distinct: {levelUnary, RightAssoc},
	Exists:   {levelUnary, RightAssoc},

	LBrace:   {levelBrace, NonAssoc},
	LBracket: {levelIndex, LeftAssoc},
}

// Fixed precedence categories for productions that are not keyed by a
// single operator token.
var (
	SetPrecedence   = Precedence{levelBrace, NonAssoc}
	IndexPrecedence = Precedence{levelIndex, LeftAssoc}
	PathPrecedence  = Precedence{levelPath, LeftAssoc}
	CastPrecedence  = Precedence{levelCast, RightAssoc}
	CallPrecedence  = Precedence{levelAtom, NonAssoc}
	AtomPrecedence  = Precedence{levelAtom, NonAssoc}
)

// PrecedenceOf returns the precedence of the production headed by t.
func PrecedenceOf(t Token) Precedence {
	p, ok := precedence[t]
	if !ok {
		panic("edgeql: no precedence for token " + t.String())
	}
	return p
}

// NeedLeftParens reports whether a left operand with precedence left
// must be parenthesized inside a production with precedence prod.
// Only a left-associative production may take an unparenthesized
// equal-precedence left operand.
func NeedLeftParens(prod, left Precedence) bool {
	if left.Level != prod.Level {
		return left.Level < prod.Level
	}
	return prod.Assoc != LeftAssoc
}

// NeedRightParens is the right-operand analog of NeedLeftParens.
func NeedRightParens(prod, right Precedence) bool {
	if right.Level != prod.Level {
		return right.Level < prod.Level
	}
	return prod.Assoc != RightAssoc
}
