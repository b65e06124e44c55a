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
)

func TestTimeIndexerAtTimeRenamesCurrentAndNext(t *testing.T) {
	v := formula.Var{Name: "c", Sort: formula.BVSort(4)}
	ti := NewTimeIndexer()
	ti.Init([]formula.Var{v}, 3, false)

	e := formula.Equals(formula.Symbol(formula.PrimeName("c"), v.Sort), formula.SymbolOf(v))
	got := ti.AtTime(e, 2)

	names := formula.FreeVarNames(got)
	want := []string{"c@2", "c@3"}
	if len(names) != 2 {
		t.Fatalf("FreeVarNames(AtTime(c'=c, 2)) = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("FreeVarNames(AtTime(c'=c, 2)) = %v, want %v", names, want)
		}
	}
}

func TestTimeIndexerAtTimeOutOfRangePanics(t *testing.T) {
	v := formula.Var{Name: "c", Sort: formula.BVSort(4)}
	ti := NewTimeIndexer()
	ti.Init([]formula.Var{v}, 2, false)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("AtTime(_, 10) should panic on an unbuilt index")
		}
		if _, ok := r.(*CacheMissError); !ok {
			t.Fatalf("AtTime(_, 10) panicked with %T, want *CacheMissError", r)
		}
	}()
	ti.AtTime(formula.SymbolOf(v), 10)
}

func TestTimeIndexerBackwardRangeIncludesMinusOne(t *testing.T) {
	v := formula.Var{Name: "c", Sort: formula.BVSort(4)}
	ti := NewTimeIndexer()
	ti.Init([]formula.Var{v}, 2, true)

	got := ti.AtPtime(formula.SymbolOf(v), -1)
	names := formula.FreeVarNames(got)
	if len(names) != 1 || names[0] != "c#-1" {
		t.Fatalf("AtPtime(c, -1) = %v, want [c#-1]", names)
	}

	got = ti.AtPtime(formula.SymbolOf(v), 3)
	names = formula.FreeVarNames(got)
	if len(names) != 1 || names[0] != "c#3" {
		t.Fatalf("AtPtime(c, horizon+1) = %v, want [c#3]", names)
	}
}

func TestTimeIndexerNoBackwardMeansCacheMiss(t *testing.T) {
	v := formula.Var{Name: "c", Sort: formula.BVSort(4)}
	ti := NewTimeIndexer()
	ti.Init([]formula.Var{v}, 2, false)

	defer func() {
		if recover() == nil {
			t.Fatalf("AtPtime should panic when Init was called with buildBackward=false")
		}
	}()
	ti.AtPtime(formula.SymbolOf(v), 0)
}
