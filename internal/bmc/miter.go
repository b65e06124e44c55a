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

package bmc

import (
	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/ts"
)

const (
	prefixSys1 = "sys1."
	prefixSys2 = "sys2."
)

// CombinedSystem builds the equivalence-miter product of c.HTS against
// other: both systems get their variables prefixed (sys1./sys2.) into one
// HTS, their shared inputs are equated unconditionally, their shared
// outputs and (when symbolicInit) shared state variables are equated
// conditionally, and a fresh Boolean eq_S1_S2 is wired to hold exactly
// when the miter condition holds. symbolicInit=false constrains each
// system to its own initial states instead of leaving init symbolic; the
// two initial states are not equated with each other.
func (c *Checker) CombinedSystem(other *ts.HTS, symbolicInit bool) (*ts.HTS, *formula.Expr) {
	vars1 := c.HTS.Vars()
	vars2 := other.Vars()

	map1 := prefixMap(vars1, prefixSys1)
	map2 := prefixMap(vars2, prefixSys2)

	init1 := formula.TRUE()
	init2 := formula.TRUE()
	if !symbolicInit {
		init1 = formula.Substitute(c.HTS.SingleInit(), map1)
		init2 = formula.Substitute(other.SingleInit(), map2)
	}

	product := ts.NewHTS("eq", c.HTS.Logic)
	product.AddTS(ts.TS{
		Vars:      renameVars(vars1, prefixSys1),
		StateVars: renameVars(c.HTS.StateVars(), prefixSys1),
		Inputs:    renameVars(c.HTS.Inputs(), prefixSys1),
		Outputs:   renameVars(c.HTS.Outputs(), prefixSys1),
		Init:      init1,
		Trans:     formula.Substitute(c.HTS.SingleTrans(), map1),
		Invar:     formula.Substitute(c.HTS.SingleInvar(), map1),
		Comment:   "sys1",
	})
	product.AddTS(ts.TS{
		Vars:      renameVars(vars2, prefixSys2),
		StateVars: renameVars(other.StateVars(), prefixSys2),
		Inputs:    renameVars(other.Inputs(), prefixSys2),
		Outputs:   renameVars(other.Outputs(), prefixSys2),
		Init:      init2,
		Trans:     formula.Substitute(other.SingleTrans(), map2),
		Invar:     formula.Substitute(other.SingleInvar(), map2),
		Comment:   "sys2",
	})

	inputs := ts.IntersectVars(c.HTS.Inputs(), other.Inputs())
	outputs := ts.IntersectVars(c.HTS.Outputs(), other.Outputs())

	eqInputs := equateAcross(inputs)
	eqOutputs := equateAcross(outputs)

	var eqStates *formula.Expr = formula.TRUE()
	if symbolicInit {
		eqStates = equateAcross(ts.IntersectVars(c.HTS.StateVars(), other.StateVars()))
	}

	miterVar := formula.Var{Name: "eq_S1_S2", Sort: formula.BoolSort()}
	miterOut := formula.SymbolOf(miterVar)

	var miterCond *formula.Expr
	if symbolicInit {
		miterCond = formula.Iff(miterOut, formula.Implies(eqStates, eqOutputs))
	} else {
		miterCond = formula.Iff(miterOut, eqOutputs)
	}

	product.AddTS(ts.TS{
		Vars:    []formula.Var{miterVar},
		Init:    formula.TRUE(),
		Trans:   formula.TRUE(),
		Invar:   formula.And(eqInputs, miterCond),
		Comment: "equivalence miter",
	})

	return product, miterOut
}

// prefixMap builds the rename table for one system's variables (current
// and next-state flavors) into a product system's prefixed vocabulary.
func prefixMap(vars []formula.Var, prefix string) map[string]*formula.Var {
	m := make(map[string]*formula.Var, len(vars)*2)
	for _, v := range vars {
		m[v.Name] = &formula.Var{Name: formula.Prefix(v.Name, prefix), Sort: v.Sort}
		m[formula.PrimeName(v.Name)] = &formula.Var{Name: formula.PrimeName(formula.Prefix(v.Name, prefix)), Sort: v.Sort}
	}
	return m
}

func renameVars(vars []formula.Var, prefix string) []formula.Var {
	out := make([]formula.Var, len(vars))
	for i, v := range vars {
		out[i] = formula.Var{Name: formula.Prefix(v.Name, prefix), Sort: v.Sort}
	}
	return out
}

func equateAcross(vars []formula.Var) *formula.Expr {
	var conj []*formula.Expr
	for _, v := range vars {
		a := formula.Symbol(formula.Prefix(v.Name, prefixSys1), v.Sort)
		b := formula.Symbol(formula.Prefix(v.Name, prefixSys2), v.Sort)
		conj = append(conj, formula.EqualsOrIff(a, b))
	}
	return formula.And(conj...)
}
