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

import "github.com/gorse-io/bmc/internal/formula"

// SimplePath asserts that the state at kEnd differs from the state at
// every earlier time in [kStart, kEnd) — the loop-freedom side condition
// the FWD strategy's k-induction prover adds to its step case. It builds
// timed symbols directly (TS.get_timed) rather than substituting through
// the varmap cache, matching the original, since it needs symbols at
// specific times regardless of which direction the active search is
// unrolling.
func SimplePath(vars []formula.Var, kEnd, kStart int) *formula.Expr {
	if kEnd == kStart {
		return formula.TRUE()
	}

	endState := timedSymbols(vars, kEnd)
	var conjuncts []*formula.Expr
	for t := kStart; t < kEnd; t++ {
		conjuncts = append(conjuncts, statesDiffer(endState, timedSymbols(vars, t)))
	}
	return formula.And(conjuncts...)
}

func timedSymbols(vars []formula.Var, t int) []*formula.Expr {
	out := make([]*formula.Expr, len(vars))
	for i, v := range vars {
		out[i] = formula.Symbol(formula.TimedName(v.Name, t), v.Sort)
	}
	return out
}

func statesDiffer(a, b []*formula.Expr) *formula.Expr {
	var disjuncts []*formula.Expr
	for i := range a {
		disjuncts = append(disjuncts, formula.Not(formula.EqualsOrIff(a[i], b[i])))
	}
	return formula.Or(disjuncts...)
}
