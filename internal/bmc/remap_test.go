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
	"testing"

	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/solver"
)

func TestRemapBwdPairsPseudoTimeBackToForward(t *testing.T) {
	v := formula.Var{Name: "c", Sort: formula.BVSort(4)}
	model := solver.Model{
		formula.PtimedName("c", 3): formula.BVConst(0, 4),
		formula.PtimedName("c", 2): formula.BVConst(1, 4),
		formula.PtimedName("c", 1): formula.BVConst(2, 4),
		formula.PtimedName("c", 0): formula.BVConst(3, 4),
	}

	got := remapBwd([]formula.Var{v}, model, 3)
	for t, want := range map[int]uint64{0: 0, 1: 1, 2: 2, 3: 3} {
		val, ok := got[formula.TimedName("c", t)]
		if !ok {
			t.Fatalf("remapBwd() missing c@%d", t)
		}
		if val.BVVal.Uint64() != want {
			t.Errorf("remapBwd() c@%d = %d, want %d", t, val.BVVal.Uint64(), want)
		}
	}
}

func TestRemapZZKeepsForwardHalfAndOverwritesBackHalf(t *testing.T) {
	v := formula.Var{Name: "c", Sort: formula.BVSort(4)}
	model := solver.Model{
		formula.TimedName("c", 0):  formula.BVConst(10, 4),
		formula.TimedName("c", 1):  formula.BVConst(11, 4),
		formula.PtimedName("c", 0): formula.BVConst(20, 4),
		formula.PtimedName("c", 1): formula.BVConst(21, 4),
	}

	got := remapZZ([]formula.Var{v}, model, 3)

	if got[formula.TimedName("c", 0)].BVVal.Uint64() != 10 {
		t.Errorf("remapZZ() should keep the forward-half entry c@0 untouched")
	}
	if got[formula.TimedName("c", 2)].BVVal.Uint64() != 21 {
		t.Errorf("remapZZ() c@2 = %v, want the pseudo-time entry c#1 = 21", got[formula.TimedName("c", 2)])
	}
	if got[formula.TimedName("c", 3)].BVVal.Uint64() != 20 {
		t.Errorf("remapZZ() c@3 = %v, want the pseudo-time entry c#0 = 20", got[formula.TimedName("c", 3)])
	}
}

func TestRemapModelDispatchesByStrategy(t *testing.T) {
	v := formula.Var{Name: "c", Sort: formula.BVSort(4)}
	model := solver.Model{formula.TimedName("c", 0): formula.BVConst(5, 4)}
	got := remapModel([]formula.Var{v}, model, 0, FWD)
	if len(got) != 1 || got[formula.TimedName("c", 0)].BVVal.Uint64() != 5 {
		t.Errorf("remapModel(FWD) should return the model unchanged, got %v", got)
	}
}
