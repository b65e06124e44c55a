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

// solveIncZZ is the ZZ strategy: forward and backward unrolling meet in
// the middle. Every step first checks the two halves built so far under a
// meeting equivalence; afterwards even steps extend the forward half and
// odd steps extend the backward half. Like BWD, it rejects next-state
// properties.
func solveIncZZ(c *Checker, prop *formula.Expr, k, kMin int) (SearchResult, error) {
	if formula.HasNext(prop) {
		panic(&ConfigError{Msg: "ZZ strategy does not support next-state properties"})
	}
	c.solver.Reset()

	init := c.HTS.SingleInit()
	trans := c.HTS.SingleTrans()
	invar := c.HTS.SingleInvar()
	vars := c.HTS.Vars()

	if err := c.solver.Assert(c.ti.AtTime(formula.And(init, invar), 0), "init and invar at time 0"); err != nil {
		return SearchResult{}, err
	}
	if err := c.solver.Assert(c.ti.AtPtime(formula.And(formula.Not(prop), invar), -1), "negated property at pseudo-time -1"); err != nil {
		return SearchResult{}, err
	}

	for t := 0; t <= k; t++ {
		c.solver.Push()
		even := t%2 == 0
		th := t / 2

		var eqs []*formula.Expr
		for _, v := range vars {
			sym := formula.SymbolOf(v)
			if even {
				eqs = append(eqs, formula.EqualsOrIff(c.ti.AtTime(sym, th), c.ti.AtPtime(sym, th-1)))
			} else {
				eqs = append(eqs, formula.EqualsOrIff(c.ti.AtTime(sym, th+1), c.ti.AtPtime(sym, th-1)))
			}
		}
		if err := c.solver.Assert(formula.And(eqs...), fmt.Sprintf("forward/backward meeting equivalence at step %d", t)); err != nil {
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
		c.solver.Pop()

		if even {
			if err := c.solver.Assert(Unroll(c.ti, trans, invar, th+1, th), fmt.Sprintf("forward unroll step %d", t)); err != nil {
				return SearchResult{}, err
			}
		} else {
			if err := c.solver.Assert(Unroll(c.ti, trans, invar, th, th+1), fmt.Sprintf("backward unroll step %d", t)); err != nil {
				return SearchResult{}, err
			}
		}
	}
	return SearchResult{Depth: -1}, nil
}
