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

// solveIncBwd is the BWD strategy: it fixes the negated property at
// pseudo-time -1 once, then incrementally unrolls backward looking for a
// reachable init state. It rejects next-state properties: there is no
// forward direction here to anchor them to.
func solveIncBwd(c *Checker, prop *formula.Expr, k, kMin int) (SearchResult, error) {
	if formula.HasNext(prop) {
		panic(&ConfigError{Msg: "BWD strategy does not support next-state properties"})
	}
	c.solver.Reset()

	init := c.HTS.SingleInit()
	trans := c.HTS.SingleTrans()
	invar := c.HTS.SingleInvar()

	if err := c.solver.Assert(c.ti.AtPtime(formula.And(formula.Not(prop), invar), -1), "negated property at pseudo-time -1"); err != nil {
		return SearchResult{}, err
	}

	for t := 0; t <= k; t++ {
		c.solver.Push()
		if err := c.solver.Assert(c.ti.AtPtime(init, t-1), fmt.Sprintf("init at pseudo-time %d", t-1)); err != nil {
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

		if err := c.solver.Assert(Unroll(c.ti, trans, invar, t, t+1), fmt.Sprintf("backward unroll step %d", t)); err != nil {
			return SearchResult{}, err
		}
	}
	return SearchResult{Depth: -1}, nil
}
