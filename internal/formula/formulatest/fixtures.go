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

// Package formulatest provides small, hand-built transition systems used
// across the strategy and orchestrator tests (and by the CLI's demo
// system argument, in lieu of the HDL/source front-end that would normally
// build an HTS — that front-end is an external collaborator, out of
// scope here).
package formulatest

import (
	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/ts"
)

// Counter builds a width-bit wraparound counter (c' = c + 1, c starts at
// 0) together with the safety property "c never reaches its maximum
// value" — which a bounded search finds violated at t = 2^width - 1.
func Counter(width int) (*ts.HTS, *formula.Expr) {
	sort := formula.BVSort(width)
	c := formula.Var{Name: "c", Sort: sort}

	hts := ts.NewHTS("counter", "QF_BV")
	hts.AddTS(ts.TS{
		Vars:      []formula.Var{c},
		StateVars: []formula.Var{c},
		Init:      formula.Equals(formula.SymbolOf(c), formula.BVConst(0, width)),
		Trans:     formula.Equals(formula.Symbol(formula.PrimeName(c.Name), sort), formula.BVAdd(formula.SymbolOf(c), formula.BVConst(1, width))),
		Invar:     formula.TRUE(),
	})

	maxVal := uint64(1)<<uint(width) - 1
	prop := formula.Not(formula.Equals(formula.SymbolOf(c), formula.BVConst(maxVal, width)))
	return hts, prop
}

// Counter8 is Counter(3) — a small enough width that the brute-force test
// engine (internal/solver/solvertest) can enumerate it, used as the CLI's
// "counter" demo system.
func Counter8() (*ts.HTS, *formula.Expr) { return Counter(3) }

// Toggle builds a single Boolean state bit that flips every step
// (b' = !b), together with the (always true) safety property that b
// stays Boolean — a trivial invariant a k-induction prover discharges at
// t=0 without ever finding a counterexample, used to exercise the Prove
// path.
func Toggle() (*ts.HTS, *formula.Expr) {
	b := formula.Var{Name: "b", Sort: formula.BoolSort()}

	hts := ts.NewHTS("toggle", "QF_BV")
	hts.AddTS(ts.TS{
		Vars:      []formula.Var{b},
		StateVars: []formula.Var{b},
		Init:      formula.Equals(formula.SymbolOf(b), formula.Bool(false)),
		Trans:     formula.Iff(formula.Symbol(formula.PrimeName(b.Name), formula.BoolSort()), formula.Not(formula.SymbolOf(b))),
		Invar:     formula.TRUE(),
	})

	prop := formula.TRUE()
	return hts, prop
}

// XorSim builds a system with two Boolean inputs and one Boolean state
// bit that latches their XOR (y' = a xor b, y starts false),
// together with the cover formula "y is true" that a simulation run
// reaches at t = 1 by picking differing input values.
func XorSim() (*ts.HTS, *formula.Expr) {
	a := formula.Var{Name: "a", Sort: formula.BoolSort()}
	b := formula.Var{Name: "b", Sort: formula.BoolSort()}
	y := formula.Var{Name: "y", Sort: formula.BoolSort()}

	hts := ts.NewHTS("xor_sim", "QF_BV")
	hts.AddTS(ts.TS{
		Vars:      []formula.Var{a, b, y},
		StateVars: []formula.Var{y},
		Inputs:    []formula.Var{a, b},
		Init:      formula.Equals(formula.SymbolOf(y), formula.Bool(false)),
		Trans:     formula.Iff(formula.Symbol(formula.PrimeName(y.Name), formula.BoolSort()), formula.Xor(formula.SymbolOf(a), formula.SymbolOf(b))),
		Invar:     formula.TRUE(),
	})

	cover := formula.SymbolOf(y)
	return hts, cover
}
