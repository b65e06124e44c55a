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

package formula

import "testing"

func TestSubstituteRenamesFreeVars(t *testing.T) {
	x := Symbol("x", BoolSort())
	y := Symbol("y", BoolSort())
	e := And(x, Not(y))

	m := map[string]*Var{"x": {Name: "x@0", Sort: BoolSort()}}
	got := Substitute(e, m)

	names := FreeVarNames(got)
	want := []string{"x@0", "y"}
	if len(names) != len(want) {
		t.Fatalf("FreeVarNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("FreeVarNames() = %v, want %v", names, want)
		}
	}
}

func TestSubstituteLeavesUntouchedNodesUnchanged(t *testing.T) {
	x := Symbol("x", BoolSort())
	e := And(x, TRUE())
	got := Substitute(e, map[string]*Var{"z": {Name: "z@0", Sort: BoolSort()}})
	if got != e {
		t.Fatalf("Substitute with no matching keys should return the same node")
	}
}

func TestHasNext(t *testing.T) {
	cases := []struct {
		name string
		expr *Expr
		want bool
	}{
		{"no prime", And(Symbol("x", BoolSort()), Symbol("y", BoolSort())), false},
		{"with prime", Equals(Symbol(PrimeName("x"), BVSort(4)), BVConst(1, 4)), true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasNext(tt.expr); got != tt.want {
				t.Errorf("HasNext() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConjunctivePartition(t *testing.T) {
	a, b, c := Symbol("a", BoolSort()), Symbol("b", BoolSort()), Symbol("c", BoolSort())
	parts := ConjunctivePartition(And(a, b, c))
	if len(parts) != 3 {
		t.Fatalf("ConjunctivePartition(And(a,b,c)) has %d parts, want 3", len(parts))
	}

	single := ConjunctivePartition(a)
	if len(single) != 1 || single[0] != a {
		t.Fatalf("ConjunctivePartition(a) = %v, want [a]", single)
	}
}

func TestAndOrConstantFolding(t *testing.T) {
	x := Symbol("x", BoolSort())
	if And(x, TRUE()) != x {
		t.Errorf("And(x, TRUE) should simplify to x")
	}
	if !IsFalse(And(x, FALSE())) {
		t.Errorf("And(x, FALSE) should be FALSE")
	}
	if !IsTrue(Or(x, TRUE())) {
		t.Errorf("Or(x, TRUE) should be TRUE")
	}
	if Or(x, FALSE()) != x {
		t.Errorf("Or(x, FALSE) should simplify to x")
	}
}

func TestToNextPreservesSort(t *testing.T) {
	c := Var{Name: "c", Sort: BVSort(3)}
	e := Equals(SymbolOf(c), BVConst(0, 3))
	next := ToNext(e)

	fv := FreeVars(next)
	v, ok := fv["c'"]
	if !ok {
		t.Fatalf("ToNext(c=0) did not produce a c' variable, got %v", FreeVarNames(next))
	}
	if !v.Sort.Equal(BVSort(3)) {
		t.Errorf("ToNext changed sort: got %v, want BV(3)", v.Sort)
	}
}

func TestEqualsOrIffPicksByOperandSort(t *testing.T) {
	boolEq := EqualsOrIff(Symbol("a", BoolSort()), Symbol("b", BoolSort()))
	if boolEq.Kind != KIff {
		t.Errorf("EqualsOrIff(bool, bool) = %v, want KIff", boolEq.Kind)
	}
	bvEq := EqualsOrIff(Symbol("a", BVSort(4)), Symbol("b", BVSort(4)))
	if bvEq.Kind != KEquals {
		t.Errorf("EqualsOrIff(bv, bv) = %v, want KEquals", bvEq.Kind)
	}
}
