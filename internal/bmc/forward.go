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
	"fmt"

	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/solver"
)

// solveIncFwd is the FWD strategy: incremental forward unrolling, with an
// optional k-induction side channel on a second solver instance
// (Config.Prove) that can discharge the property early without finding a
// counterexample.
func solveIncFwd(c *Checker, prop *formula.Expr, k, kMin int) (SearchResult, error) {
	c.solver.Reset()
	if c.Config.Prove {
		c.indSolver.Reset()
	}

	init := c.HTS.SingleInit()
	trans := c.HTS.SingleTrans()
	invar := c.HTS.SingleInvar()

	if c.Config.Simplify {
		init, trans, invar = formula.Simplify(init), formula.Simplify(trans), formula.Simplify(invar)
	}

	if err := c.solver.Assert(c.ti.AtTime(formula.And(init, invar), 0), "init and invar at time 0"); err != nil {
		return SearchResult{}, err
	}
	if c.Config.Prove {
		if err := c.indSolver.Assert(c.ti.AtTime(invar, 0), "invar only at time 0"); err != nil {
			return SearchResult{}, err
		}
	}

	nextProp := formula.HasNext(prop)
	if nextProp {
		if k < 1 {
			panic(&ConfigError{Msg: "a next-state property requires a horizon of at least 1"})
		}
		if kMin < 1 {
			kMin = 1
		}
	}

	propAcc := formula.FALSE()
	for t := 0; t <= k; t++ {
		c.solver.Push()

		if kMin > 0 {
			if !nextProp || t > 0 {
				tProp := t
				if nextProp {
					tProp = t - 1
				}
				propAcc = formula.Or(propAcc, c.ti.AtTime(formula.Not(prop), tProp))
			}
		} else {
			propAcc = c.ti.AtTime(formula.Not(prop), t)
		}
		if err := c.solver.Assert(propAcc, fmt.Sprintf("not property up to time %d", t)); err != nil {
			return SearchResult{}, err
		}

		if t >= kMin {
			res, err := c.solver.CheckSat()
			if err != nil {
				return SearchResult{}, err
			}
			if res == solver.Sat {
				model, err := c.solver.GetModel()
				if err != nil {
					return SearchResult{}, err
				}
				return SearchResult{Depth: t, Model: model}, nil
			}
		}

		c.solver.Pop()

		transT := Unroll(c.ti, trans, invar, t+1, t)
		if err := c.solver.Assert(transT, fmt.Sprintf("unroll step %d", t)); err != nil {
			return SearchResult{}, err
		}

		if c.Config.Prove {
			if err := c.indSolver.Assert(transT, "unroll step (induction)"); err != nil {
				return SearchResult{}, err
			}
			if err := c.indSolver.Assert(SimplePath(c.HTS.Vars(), t, 0), "simple path"); err != nil {
				return SearchResult{}, err
			}

			c.indSolver.Push()
			if err := c.indSolver.Assert(c.ti.AtTime(formula.Not(prop), t), "negated property at induction step"); err != nil {
				return SearchResult{}, err
			}
			if t >= kMin {
				res, err := c.indSolver.CheckSat()
				if err != nil {
					return SearchResult{}, err
				}
				if res == solver.Unsat {
					return SearchResult{Depth: t, Proved: true}, nil
				}
			}
			c.indSolver.Pop()
			if err := c.indSolver.Assert(c.ti.AtTime(prop, t), "assume property holds at time"); err != nil {
				return SearchResult{}, err
			}
		}
	}

	return SearchResult{Depth: -1}, nil
}

// solveFwd is the non-incremental forward search: for each candidate depth
// it resets the solver and re-asserts the whole unrolling from scratch.
// shortest selects whether every depth from 0 is tried (looking for the
// shortest counterexample) or only k itself.
func (c *Checker) solveFwd(prop *formula.Expr, k int, shortest bool) (SearchResult, error) {
	init := c.HTS.SingleInit()
	trans := c.HTS.SingleTrans()
	invar := c.HTS.SingleInvar()

	start := 0
	if !shortest {
		start = k
	}

	for t := start; t <= k; t++ {
		c.solver.Reset()
		if err := c.solver.Assert(c.ti.AtTime(formula.And(init, invar), 0), "init and invar at time 0"); err != nil {
			return SearchResult{}, err
		}
		if err := c.solver.Assert(Unroll(c.ti, trans, invar, t, 0), fmt.Sprintf("unroll to %d", t)); err != nil {
			return SearchResult{}, err
		}
		if err := c.solver.Assert(c.ti.AtTime(formula.Not(prop), t), fmt.Sprintf("not property at %d", t)); err != nil {
			return SearchResult{}, err
		}

		res, err := c.solver.CheckSat()
		if err != nil {
			return SearchResult{}, err
		}
		if res == solver.Sat {
			model, err := c.solver.GetModel()
			if err != nil {
				return SearchResult{}, err
			}
			return SearchResult{Depth: t, Model: model}, nil
		}
	}
	return SearchResult{Depth: -1}, nil
}
