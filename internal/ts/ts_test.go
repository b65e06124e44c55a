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

package ts

import (
	"testing"

	"github.com/gorse-io/bmc/internal/formula"
)

func twoSubHTS() *HTS {
	a := formula.Var{Name: "a", Sort: formula.BoolSort()}
	b := formula.Var{Name: "b", Sort: formula.BoolSort()}

	h := NewHTS("combo", "QF_BV")
	h.AddTS(TS{
		Vars:      []formula.Var{a},
		StateVars: []formula.Var{a},
		Init:      formula.SymbolOf(a),
		Trans:     formula.TRUE(),
		Invar:     formula.SymbolOf(a),
	})
	h.AddTS(TS{
		Vars:      []formula.Var{a, b},
		StateVars: []formula.Var{b},
		Init:      formula.Not(formula.SymbolOf(b)),
		Trans:     formula.TRUE(),
		Invar:     formula.TRUE(),
	})
	return h
}

func TestSingleInitTransInvarConjoinAllSubSystems(t *testing.T) {
	h := twoSubHTS()

	init := formula.ConjunctivePartition(h.SingleInit())
	if len(init) != 2 {
		t.Fatalf("SingleInit() has %d conjuncts, want 2", len(init))
	}

	invar := formula.ConjunctivePartition(h.SingleInvar())
	if len(invar) != 1 {
		t.Fatalf("SingleInvar() has %d conjuncts, want 1 (sub-invars TRUE dropped, Assumptions TRUE dropped)", len(invar))
	}
}

func TestSingleInvarIncludesAssumptions(t *testing.T) {
	h := twoSubHTS()
	lemma := formula.Equals(formula.Symbol("x", formula.BVSort(2)), formula.BVConst(0, 2))
	h.Assumptions = lemma

	invar := formula.ConjunctivePartition(h.SingleInvar())
	found := false
	for _, c := range invar {
		if c == lemma {
			found = true
		}
	}
	if !found {
		t.Errorf("SingleInvar() does not include HTS.Assumptions")
	}
}

func TestVarsDeduplicatesByNameKeepingFirstSeenOrder(t *testing.T) {
	h := twoSubHTS()
	vars := h.Vars()
	if len(vars) != 2 {
		t.Fatalf("Vars() = %v, want 2 deduplicated entries", vars)
	}
	if vars[0].Name != "a" || vars[1].Name != "b" {
		t.Errorf("Vars() = %v, want [a, b] in first-seen order", vars)
	}
}

func TestStateVarsUnion(t *testing.T) {
	h := twoSubHTS()
	sv := h.StateVars()
	if len(sv) != 2 {
		t.Fatalf("StateVars() = %v, want [a, b]", sv)
	}
}

func TestIntersectVarsKeepsAOrdering(t *testing.T) {
	a := formula.Var{Name: "a", Sort: formula.BoolSort()}
	b := formula.Var{Name: "b", Sort: formula.BoolSort()}
	c := formula.Var{Name: "c", Sort: formula.BoolSort()}

	got := IntersectVars([]formula.Var{c, b, a}, []formula.Var{a, b})
	if len(got) != 2 {
		t.Fatalf("IntersectVars() = %v, want 2 elements", got)
	}
	if got[0].Name != "b" || got[1].Name != "a" {
		t.Errorf("IntersectVars() = %v, want [b, a] (a's order, filtered to shared names)", got)
	}
}
