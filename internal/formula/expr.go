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

// Kind tags the shape of an Expr node.
type Kind int

const (
	KBoolConst Kind = iota
	KBVConst
	KVar
	KNot
	KAnd
	KOr
	KImplies
	KIff
	KEquals
	KApply // generic named operator (bvadd, bvnot, select, store, ...)
)

// Expr is a formula tree node. It is built exclusively through the
// constructors in this package (And, Or, Not, Symbol, ...) so that the
// invariants each constructor maintains (flattening, constant folding of
// TRUE/FALSE) always hold.
type Expr struct {
	Kind Kind

	BoolVal bool
	BVVal   *big.Int
	BVWidth int

	Var *Var

	Op         string
	ResultSort Sort
	Args       []*Expr
}

// Sort reports the sort an expression evaluates to.
func (e *Expr) Sort() Sort {
	switch e.Kind {
	case KBoolConst, KNot, KAnd, KOr, KImplies, KIff, KEquals:
		return BoolSort()
	case KBVConst:
		return BVSort(e.BVWidth)
	case KVar:
		return e.Var.Sort
	case KApply:
		return e.ResultSort
	default:
		return BoolSort()
	}
}

// IsTrue reports whether e is the Boolean constant true.
func IsTrue(e *Expr) bool { return e != nil && e.Kind == KBoolConst && e.BoolVal }

// IsFalse reports whether e is the Boolean constant false.
func IsFalse(e *Expr) bool { return e != nil && e.Kind == KBoolConst && !e.BoolVal }
