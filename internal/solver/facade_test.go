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

package solver_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/solver"
	"github.com/gorse-io/bmc/internal/solver/solvertest"
)

func TestFacadeAssertDeclaresEachFreeVarOnce(t *testing.T) {
	dir := t.TempDir()
	trace := filepath.Join(dir, "trace.smt2")

	f := solver.New("main", solvertest.New)
	f.TraceFile = trace
	f.Reset()

	x := formula.Symbol("x", formula.BoolSort())
	if err := f.Assert(formula.And(x, x), "x and x"); err != nil {
		t.Fatalf("Assert() error = %v", err)
	}
	if err := f.Assert(x, "x again"); err != nil {
		t.Fatalf("Assert() error = %v", err)
	}
	f.Exit()

	data, err := os.ReadFile(trace)
	if err != nil {
		t.Fatalf("reading trace file: %v", err)
	}
	content := string(data)
	if n := strings.Count(content, "(declare-fun x "); n != 1 {
		t.Errorf("trace declares x %d times, want 1 (declarations dedup within scope)", n)
	}
}

func TestFacadePopRestoresDeclarationScope(t *testing.T) {
	dir := t.TempDir()
	trace := filepath.Join(dir, "trace.smt2")

	f := solver.New("main", solvertest.New)
	f.TraceFile = trace
	f.Reset()

	x := formula.Symbol("x", formula.BoolSort())
	y := formula.Symbol("y", formula.BoolSort())

	if err := f.Assert(x, ""); err != nil {
		t.Fatalf("Assert() error = %v", err)
	}
	f.Push()
	if err := f.Assert(y, ""); err != nil {
		t.Fatalf("Assert() error = %v", err)
	}
	f.Pop()
	if err := f.Assert(y, ""); err != nil {
		t.Fatalf("Assert() error = %v", err)
	}
	f.Exit()

	data, err := os.ReadFile(trace)
	if err != nil {
		t.Fatalf("reading trace file: %v", err)
	}
	if n := strings.Count(string(data), "(declare-fun y "); n != 2 {
		t.Errorf("trace declares y %d times, want 2 (Pop forgets declarations made after the matching Push)", n)
	}
}

func TestFacadeCheckSatRoundTrip(t *testing.T) {
	f := solver.New("main", solvertest.New)
	f.Reset()

	c := formula.Var{Name: "c", Sort: formula.BVSort(3)}
	if err := f.Assert(formula.Equals(formula.SymbolOf(c), formula.BVConst(5, 3)), ""); err != nil {
		t.Fatalf("Assert() error = %v", err)
	}
	res, err := f.CheckSat()
	if err != nil {
		t.Fatalf("CheckSat() error = %v", err)
	}
	if res != solver.Sat {
		t.Fatalf("CheckSat() = %v, want Sat", res)
	}
	val, err := f.GetValue("c")
	if err != nil {
		t.Fatalf("GetValue() error = %v", err)
	}
	if val.BVVal.Uint64() != 5 {
		t.Errorf("GetValue(c) = %d, want 5", val.BVVal.Uint64())
	}
}

func TestFacadeSkipSolvingNeverQueriesTheEngine(t *testing.T) {
	f := solver.New("main", solvertest.New)
	f.SkipSolving = true
	f.Reset()

	c := formula.Var{Name: "c", Sort: formula.BVSort(3)}
	if err := f.Assert(formula.Equals(formula.SymbolOf(c), formula.BVConst(5, 3)), ""); err != nil {
		t.Fatalf("Assert() error = %v", err)
	}
	res, err := f.CheckSat()
	if err != nil {
		t.Fatalf("CheckSat() error = %v", err)
	}
	if res != solver.Unknown {
		t.Errorf("CheckSat() with SkipSolving = %v, want Unknown", res)
	}
	if _, err := f.GetModel(); err == nil {
		t.Errorf("GetModel() with SkipSolving should error")
	}
}
