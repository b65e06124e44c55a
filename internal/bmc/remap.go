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
	"github.com/samber/lo"

	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/solver"
)

// remapModel translates a solver model back into the canonical forward
// time frame (var@0, var@1, ...) regardless of which strategy produced it.
// FWD and NU models are already in that frame; BWD and ZZ models mix in
// pseudo-time (var#t) entries that need pairing back to forward names.
func remapModel(vars []formula.Var, model solver.Model, k int, strategy Strategy) solver.Model {
	switch strategy {
	case BWD:
		return remapBwd(vars, model, k)
	case ZZ:
		return remapZZ(vars, model, k)
	default:
		return model
	}
}

// remapBwd rebuilds every forward-time entry var@t from the pseudo-time
// entry var#(k-t) the backward search actually populated.
func remapBwd(vars []formula.Var, model solver.Model, k int) solver.Model {
	var pairs []lo.Tuple2[string, *formula.Expr]
	for _, v := range vars {
		for t := 0; t <= k; t++ {
			pairs = append(pairs, lo.Tuple2[string, *formula.Expr]{
				A: formula.TimedName(v.Name, t),
				B: model[formula.PtimedName(v.Name, k-t)],
			})
		}
	}
	out := solver.Model{}
	for _, p := range pairs {
		out[p.A] = p.B
	}
	return out
}

// remapZZ starts from the model as-is (its forward half, var@0..var@k/2,
// is already in canonical form) and overwrites the back half with the
// pseudo-time entries the backward-unrolling steps populated.
func remapZZ(vars []formula.Var, model solver.Model, k int) solver.Model {
	out := solver.Model{}
	for name, val := range model {
		out[name] = val
	}

	var pairs []lo.Tuple2[string, *formula.Expr]
	for _, v := range vars {
		for t := k/2 + 1; t <= k; t++ {
			pairs = append(pairs, lo.Tuple2[string, *formula.Expr]{
				A: formula.TimedName(v.Name, t),
				B: model[formula.PtimedName(v.Name, k-t)],
			})
		}
	}
	for _, p := range pairs {
		out[p.A] = p.B
	}
	return out
}
