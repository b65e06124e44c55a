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

// Unroll conjoins one copy of trans and invar per step between kStart and
// kEnd. Direction is decided once, by comparing kStart and kEnd: when
// kStart <= kEnd the unrolling runs forward (at_time), otherwise it runs
// backward (at_ptime) — the same single comparison CoSA's unroll() makes
// before swapping to the smaller/larger bound for the loop.
func Unroll(ti *TimeIndexer, trans, invar *formula.Expr, kEnd, kStart int) *formula.Expr {
	forward := kStart <= kEnd
	lo, hi := kStart, kEnd
	if !forward {
		lo, hi = kEnd, kStart
	}

	var conjuncts []*formula.Expr
	for t := lo; t < hi; t++ {
		if forward {
			conjuncts = append(conjuncts, ti.AtTime(trans, t), ti.AtTime(invar, t+1))
		} else {
			conjuncts = append(conjuncts, ti.AtPtime(trans, t), ti.AtPtime(invar, t))
		}
	}
	return formula.And(conjuncts...)
}
