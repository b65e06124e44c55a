// Copyright 2022 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package formula

import "math/big"

var trueExpr = &Expr{Kind: KBoolConst, BoolVal: true}
var falseExpr = &Expr{Kind: KBoolConst, BoolVal: false}

// TRUE is the Boolean constant true.
func TRUE() *Expr { return trueExpr }

// FALSE is the Boolean constant false.
func FALSE() *Expr { return falseExpr }

// Bool returns the Boolean constant for v.
func Bool(v bool) *Expr {
	if v {
		return trueExpr
	}
	return falseExpr
}

// BVConst returns a fixed-width bitvector constant.
func BVConst(v uint64, width int) *Expr {
	return &Expr{Kind: KBVConst, BVVal: new(big.Int).SetUint64(v), BVWidth: width}
}

// Symbol returns a variable reference of the given sort.
func Symbol(name string, s Sort) *Expr {
	return &Expr{Kind: KVar, Var: &Var{Name: name, Sort: s}}
}

// SymbolOf returns a variable reference for v.
func SymbolOf(v Var) *Expr { return &Expr{Kind: KVar, Var: &v} }

// Not negates a Boolean expression, collapsing double negation and
// constants.
func Not(e *Expr) *Expr {
	if IsTrue(e) {
		return FALSE()
	}
	if IsFalse(e) {
		return TRUE()
	}
	if e.Kind == KNot {
		return e.Args[0]
	}
	return &Expr{Kind: KNot, Args: []*Expr{e}}
}

// And conjoins, flattening nested conjunctions and dropping TRUE operands;
// any FALSE operand collapses the whole conjunction to FALSE.
func And(es ...*Expr) *Expr {
	var flat []*Expr
	for _, e := range es {
		if IsFalse(e) {
			return FALSE()
		}
		if IsTrue(e) {
			continue
		}
		if e.Kind == KAnd {
			flat = append(flat, e.Args...)
		} else {
			flat = append(flat, e)
		}
	}
	switch len(flat) {
	case 0:
		return TRUE()
	case 1:
		return flat[0]
	default:
		return &Expr{Kind: KAnd, Args: flat}
	}
}

// Or disjoins, flattening nested disjunctions and dropping FALSE operands;
// any TRUE operand collapses the whole disjunction to TRUE.
func Or(es ...*Expr) *Expr {
	var flat []*Expr
	for _, e := range es {
		if IsTrue(e) {
			return TRUE()
		}
		if IsFalse(e) {
			continue
		}
		if e.Kind == KOr {
			flat = append(flat, e.Args...)
		} else {
			flat = append(flat, e)
		}
	}
	switch len(flat) {
	case 0:
		return FALSE()
	case 1:
		return flat[0]
	default:
		return &Expr{Kind: KOr, Args: flat}
	}
}

// Implies returns a => b.
func Implies(a, b *Expr) *Expr {
	if IsFalse(a) || IsTrue(b) {
		return TRUE()
	}
	if IsTrue(a) {
		return b
	}
	return &Expr{Kind: KImplies, Args: []*Expr{a, b}}
}

// Iff returns a <=> b for Boolean a, b.
func Iff(a, b *Expr) *Expr {
	return &Expr{Kind: KIff, Args: []*Expr{a, b}}
}

// Equals returns a = b for non-Boolean a, b (bitvectors, arrays).
func Equals(a, b *Expr) *Expr {
	return &Expr{Kind: KEquals, Args: []*Expr{a, b}}
}

// EqualsOrIff picks Iff for Boolean-sorted operands and Equals otherwise,
// mirroring pySMT's EqualsOrIff helper that the original uses throughout
// the unroller and simple-path encoder.
func EqualsOrIff(a, b *Expr) *Expr {
	if a.Sort().Kind == SortBool {
		return Iff(a, b)
	}
	return Equals(a, b)
}

// Apply builds a named n-ary operator application (bvadd, bvnot, select,
// store, ...) with an explicit result sort.
func Apply(op string, result Sort, args ...*Expr) *Expr {
	return &Expr{Kind: KApply, Op: op, ResultSort: result, Args: args}
}

// BVAdd, BVNot and Xor are the small set of domain operators exercised by
// the counter/toggle/XOR test fixtures; width is taken from the first
// argument.
func BVAdd(a, b *Expr) *Expr {
	return Apply("bvadd", a.Sort(), a, b)
}

func BVNot(a *Expr) *Expr {
	return Apply("bvnot", a.Sort(), a)
}

func Xor(a, b *Expr) *Expr {
	return Not(Iff(a, b))
}
