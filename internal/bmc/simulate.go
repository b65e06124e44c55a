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
	"github.com/google/uuid"

	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/solver"
)

// Simulate drives the system toward cover (or, if cover is TRUE, simply
// runs k steps) and reports TRUE with a trace if a run was found, FALSE on
// deadlock. NU dispatches to the step-by-step simulator; every other
// strategy instead searches for a counterexample to Not(cover) the normal
// way — reaching cover is, from the solver's point of view, the same
// search as violating its negation.
func (c *Checker) Simulate(cover *formula.Expr, k int) (Verdict, *Trace, error) {
	c.lastCallID = uuid.New()

	var res SearchResult
	var err error
	if c.Config.Strategy == NU {
		c.ti.Init(c.HTS.Vars(), 1, false)
		res, err = c.simNoUnroll(cover, k, true)
	} else {
		c.ti.Init(c.HTS.Vars(), k, c.Config.Strategy != FWD)
		if formula.IsTrue(cover) {
			c.Config.Incremental = false
			res, err = c.solveFwd(formula.Not(cover), k, false)
		} else {
			res, err = c.solve(formula.Not(cover), k, 0, nil)
		}
	}
	if err != nil {
		return VerdictUnknown, nil, err
	}

	if res.Depth > -1 {
		remapped := remapModel(c.HTS.Vars(), res.Model, res.Depth, c.Config.Strategy)
		trace, err := c.buildTrace(remapped, res.Depth)
		if err != nil {
			return VerdictUnknown, nil, err
		}
		return VerdictTrue, trace, nil
	}
	return VerdictFalse, nil, nil
}

// simNoUnroll is the NU strategy: it picks one initial state, freezes it
// as a formula pinning every relevant variable's value, and walks forward
// one step at a time (an incremental window of exactly one transition,
// re-pinned on each step) rather than unrolling the whole horizon at
// once. It reports a deadlock (-1) the moment no successor state exists.
func (c *Checker) simNoUnroll(cover *formula.Expr, k int, allVars bool) (SearchResult, error) {
	init := c.HTS.SingleInit()
	invar := c.HTS.SingleInvar()
	trans := c.HTS.SingleTrans()

	trans01 := Unroll(c.ti, trans, invar, 1, 0)
	cover1 := c.ti.AtTime(cover, 1)

	var relevant []formula.Var
	if allVars {
		relevant = c.HTS.Vars()
	} else {
		relevant = unionDistinct(c.HTS.StateVars(), c.HTS.Inputs(), c.HTS.Outputs())
	}

	fullModel := solver.Model{}

	c.solver.Reset()
	if err := c.solver.Assert(formula.And(c.ti.AtTime(init, 0), c.ti.AtTime(invar, 0)), "pick initial state"); err != nil {
		return SearchResult{}, err
	}
	res, err := c.solver.CheckSat()
	if err != nil {
		return SearchResult{}, err
	}
	if res != solver.Sat {
		return SearchResult{Depth: -1}, nil
	}

	values0, err := c.solver.GetValues(timedNames(relevant, 0))
	if err != nil {
		return SearchResult{}, err
	}
	for name, val := range values0 {
		fullModel[name] = val
	}
	pinned := pinAtTime(relevant, 0, values0)

	c.solver.Reset()
	if err := c.solver.Assert(trans01, "transition window"); err != nil {
		return SearchResult{}, err
	}
	if err := c.solver.Assert(c.ti.AtTime(invar, 0), "invar at 0"); err != nil {
		return SearchResult{}, err
	}

	for t := 1; t <= k; t++ {
		c.solver.Push()
		if err := c.solver.Assert(pinned, "pin previous state"); err != nil {
			return SearchResult{}, err
		}

		res, err := c.solver.CheckSat()
		if err != nil {
			return SearchResult{}, err
		}
		if res != solver.Sat {
			return SearchResult{Depth: -1, Model: fullModel}, nil
		}

		values1, err := c.solver.GetValues(timedNames(relevant, 1))
		if err != nil {
			return SearchResult{}, err
		}
		for _, v := range relevant {
			fullModel[formula.TimedName(v.Name, t)] = values1[formula.TimedName(v.Name, 1)]
		}
		pinned = pinAtTimeFrom(relevant, values1)

		if !formula.IsTrue(cover) {
			if err := c.solver.Assert(pinAtTime(relevant, 1, values1), "pin reached state"); err != nil {
				return SearchResult{}, err
			}
			if err := c.solver.Assert(cover1, "cover reached"); err != nil {
				return SearchResult{}, err
			}
			coverRes, err := c.solver.CheckSat()
			if err != nil {
				return SearchResult{}, err
			}
			if coverRes == solver.Sat {
				// Pop before returning, unlike the ported sim_no_unroll (which
				// leaves the pushed cover-check frame on the stack on this
				// path): c.solver is Reset() at the top of every subsequent
				// call, so the unpopped frame is never actually read back, and
				// popping here keeps the push/pop depth balanced regardless.
				c.solver.Pop()
				return SearchResult{Depth: t, Model: fullModel}, nil
			}
		}
		c.solver.Pop()
	}
	return SearchResult{Depth: k, Model: fullModel}, nil
}

func timedNames(vars []formula.Var, t int) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = formula.TimedName(v.Name, t)
	}
	return out
}

func pinAtTime(vars []formula.Var, t int, values solver.Model) *formula.Expr {
	var conj []*formula.Expr
	for _, v := range vars {
		name := formula.TimedName(v.Name, t)
		conj = append(conj, formula.EqualsOrIff(formula.Symbol(name, v.Sort), values[name]))
	}
	return formula.And(conj...)
}

// pinAtTimeFrom pins time-0 symbols to the values a step assigned at
// time 1 — the renaming that lets the next step's solve re-pin the window
// without re-declaring or re-unrolling it.
func pinAtTimeFrom(vars []formula.Var, values1 solver.Model) *formula.Expr {
	var conj []*formula.Expr
	for _, v := range vars {
		name0 := formula.TimedName(v.Name, 0)
		val := values1[formula.TimedName(v.Name, 1)]
		conj = append(conj, formula.EqualsOrIff(formula.Symbol(name0, v.Sort), val))
	}
	return formula.And(conj...)
}

func unionDistinct(groups ...[]formula.Var) []formula.Var {
	seen := map[string]bool{}
	var out []formula.Var
	for _, g := range groups {
		for _, v := range g {
			if seen[v.Name] {
				continue
			}
			seen[v.Name] = true
			out = append(out, v)
		}
	}
	return out
}
