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

func TestNameTransforms(t *testing.T) {
	if got := PrimeName("c"); got != "c'" {
		t.Errorf("PrimeName(c) = %q, want c'", got)
	}
	if got := PrevName("c"); got != "c^" {
		t.Errorf("PrevName(c) = %q, want c^", got)
	}
	if got := TimedName("c", 3); got != "c@3" {
		t.Errorf("TimedName(c, 3) = %q, want c@3", got)
	}
	if got := PtimedName("c", -1); got != "c#-1" {
		t.Errorf("PtimedName(c, -1) = %q, want c#-1", got)
	}
	if got := Prefix("c", "sys1."); got != "sys1.c" {
		t.Errorf("Prefix(c, sys1.) = %q, want sys1.c", got)
	}
}

func TestIsPrimeName(t *testing.T) {
	if !IsPrimeName(PrimeName("c")) {
		t.Errorf("IsPrimeName(PrimeName(c)) = false, want true")
	}
	if IsPrimeName("c") {
		t.Errorf("IsPrimeName(c) = true, want false")
	}
}

func TestSortEqual(t *testing.T) {
	if !BVSort(4).Equal(BVSort(4)) {
		t.Errorf("BVSort(4) should equal BVSort(4)")
	}
	if BVSort(4).Equal(BVSort(8)) {
		t.Errorf("BVSort(4) should not equal BVSort(8)")
	}
	if BoolSort().Equal(BVSort(1)) {
		t.Errorf("BoolSort should not equal BVSort(1)")
	}
}

func TestSortString(t *testing.T) {
	if BoolSort().String() != "Bool" {
		t.Errorf("BoolSort().String() = %q, want Bool", BoolSort().String())
	}
	if BVSort(8).String() != "(_ BitVec 8)" {
		t.Errorf("BVSort(8).String() = %q, want (_ BitVec 8)", BVSort(8).String())
	}
}
