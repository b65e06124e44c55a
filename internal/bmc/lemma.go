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
	"github.com/gorse-io/bmc/internal/logx"
	"github.com/gorse-io/bmc/internal/solver"
)

// addLemmas checks each candidate lemma in order, keeping the ones that
// are both implied by init and inductive over trans, and short-circuits
// as soon as the holding set implies prop. It only writes the holding set
// into HTS.Assumptions on the path that runs the loop to completion —
// exactly CoSA's add_lemmas, including the asymmetry where an early
// "lemmas already imply the property" return skips that write, since the
// caller is about to report TRUE regardless of what HTS.Assumptions holds.
func (c *Checker) addLemmas(prop *formula.Expr, lemmas []*formula.Expr) (bool, error) {
	var holding []*formula.Expr
	for i, lemma := range lemmas {
		ok, err := c.checkLemma(lemma)
		if err != nil {
			return false, err
		}
		if !ok {
			logx.Debugf("lemma %d does not hold", i+1)
			continue
		}

		holding = append(holding, lemma)
		implies, err := c.checkLemmasImply(prop, holding)
		if err != nil {
			return false, err
		}
		if implies {
			return true, nil
		}
	}

	c.HTS.Assumptions = formula.And(holding...)
	return false, nil
}

// checkLemma runs the two checks that make a candidate lemma an inductive
// invariant: it must be implied by the initial states (init check), and
// preserved by one step of the transition relation (step check).
func (c *Checker) checkLemma(lemma *formula.Expr) (bool, error) {
	init := c.HTS.SingleInit()
	trans := c.HTS.SingleTrans()
	invar := c.HTS.SingleInvar()

	initWithInvar := formula.And(init, invar)

	c.solver.Reset()
	initCheck := c.ti.AtTime(formula.Not(formula.Implies(initWithInvar, lemma)), 0)
	if err := c.solver.Assert(initCheck, "lemma init check"); err != nil {
		return false, err
	}
	res, err := c.solver.CheckSat()
	if err != nil {
		return false, err
	}
	if res == solver.Sat {
		return false, nil
	}

	transWithInvar := formula.And(trans, invar, formula.ToNext(invar))

	c.solver.Reset()
	stepCheck := c.ti.AtTime(formula.And(transWithInvar, lemma, formula.Not(formula.ToNext(lemma))), 0)
	if err := c.solver.Assert(stepCheck, "lemma step check"); err != nil {
		return false, err
	}
	res, err = c.solver.CheckSat()
	if err != nil {
		return false, err
	}
	return res != solver.Sat, nil
}

// checkLemmasImply reports whether the conjunction of the currently
// holding lemmas already implies prop, without timestamping either side —
// this check is asked directly over the base (un-timed) vocabulary, the
// same way the original leaves it unwrapped by at_time.
func (c *Checker) checkLemmasImply(prop *formula.Expr, holding []*formula.Expr) (bool, error) {
	c.solver.Reset()
	check := formula.Not(formula.Implies(formula.And(holding...), prop))
	if err := c.solver.Assert(check, "holding lemmas imply property"); err != nil {
		return false, err
	}
	res, err := c.solver.CheckSat()
	if err != nil {
		return false, err
	}
	return res == solver.Unsat, nil
}
