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

// FsmCheck tests whether the checker's own HTS is deterministic: it builds
// the equivalence miter of the system against itself with symbolic
// (non-deterministic) init, and searches up to horizon k for two runs that
// agree on every current-state variable but disagree on the miter. No
// counterexample within k steps means the system looks deterministic out
// to that horizon.
//
// The horizon is an explicit parameter here rather than captured from an
// enclosing scope — the original's fsm_check built its varmap cache from
// a variable named k that fsm_check itself never defined, a latent bug in
// the source this ports from. Threading k through the call avoids it.
func (c *Checker) FsmCheck(k int) (bool, *Trace, error) {
	product, miterVar := c.CombinedSystem(c.HTS, true)

	prodChecker := &Checker{
		HTS:       product,
		Config:    c.Config,
		Printer:   c.Printer,
		ti:        NewTimeIndexer(),
		solver:    c.solver,
		indSolver: c.indSolver,
	}
	prodChecker.ti.Init(product.Vars(), k, c.Config.Strategy != FWD)

	res, err := prodChecker.solve(miterVar, k, 0, nil)
	if err != nil {
		return false, nil, err
	}
	if res.Depth > -1 {
		remapped := remapModel(product.Vars(), res.Model, res.Depth, c.Config.Strategy)
		trace, err := prodChecker.buildTrace(remapped, res.Depth)
		if err != nil {
			return false, nil, err
		}
		return false, trace, nil
	}
	return true, nil, nil
}
