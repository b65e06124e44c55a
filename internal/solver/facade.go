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

package solver

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/gorse-io/bmc/internal/formula"
)

// Facade is CoSA's TraceSolver ported to Go: it owns the solver Engine, an
// optional SMT-LIB trace file, and the declare-fun bookkeeping that keeps
// the trace file free of duplicate declarations across push/pop.
type Facade struct {
	Name        string
	Logic       string
	TraceFile   string
	SkipSolving bool

	newEngine func() Engine
	engine    Engine

	declared  map[string]bool
	declStack []map[string]bool

	traceF *os.File
	trace  *bufio.Writer
}

// New builds a Facade around an Engine factory; the factory is invoked once
// immediately and again on every Clear.
func New(name string, newEngine func() Engine) *Facade {
	f := &Facade{Name: name, newEngine: newEngine, engine: newEngine(), declared: map[string]bool{}}
	return f
}

// Clear discards the underlying engine and builds a fresh one, the way
// CoSA's TraceSolver.clear() does when a search wants a cold solver.
func (f *Facade) Clear() {
	f.engine.Exit()
	f.engine = f.newEngine()
	f.declared = map[string]bool{}
	f.declStack = nil
}

// Reset clears assertions on the current engine and (re)opens the trace
// file, writing the set-logic preamble.
func (f *Facade) Reset() {
	f.engine.Reset()
	f.declared = map[string]bool{}
	f.declStack = nil
	f.closeTrace()
	if f.TraceFile == "" {
		return
	}
	tf, err := os.Create(f.TraceFile)
	if err != nil {
		return
	}
	f.traceF = tf
	f.trace = bufio.NewWriter(tf)
	logic := f.Logic
	if logic == "" {
		logic = "QF_ABV"
	}
	f.writeLine(fmt.Sprintf("(set-logic %s)", logic))
}

// Push saves the declaration set and pushes both the engine (unless
// SkipSolving) and the trace file.
func (f *Facade) Push() {
	if !f.SkipSolving {
		f.engine.Push()
	}
	snap := make(map[string]bool, len(f.declared))
	for k := range f.declared {
		snap[k] = true
	}
	f.declStack = append(f.declStack, snap)
	f.writeLine("(push 1)")
}

// Pop restores the declaration set and pops both the engine (unless
// SkipSolving) and the trace file.
func (f *Facade) Pop() {
	if !f.SkipSolving {
		f.engine.Pop()
	}
	n := len(f.declStack) - 1
	if n >= 0 {
		f.declared = f.declStack[n]
		f.declStack = f.declStack[:n]
	}
	f.writeLine("(pop 1)")
}

// Assert declares any free variable not yet seen in the current scope,
// then asserts e (one (assert ...) line per top-level conjunct, matching
// CoSA's _add_assertion) on the engine (unless SkipSolving) and in the
// trace file.
func (f *Facade) Assert(e *formula.Expr, comment string) error {
	if err := f.declareFreeVars(e); err != nil {
		return err
	}
	if comment != "" {
		f.writeLine(";; " + comment)
	}
	for _, conjunct := range formula.ConjunctivePartition(e) {
		f.writeLine(fmt.Sprintf("(assert %s)", print(conjunct)))
	}
	f.writeLine("")
	if !f.SkipSolving {
		f.engine.Assert(e)
	}
	return nil
}

func (f *Facade) declareFreeVars(e *formula.Expr) error {
	fv := formula.FreeVars(e)
	names := make([]string, 0, len(fv))
	for n := range fv {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, name := range names {
		if f.declared[name] {
			continue
		}
		line, err := declareFun(fv[name])
		if err != nil {
			return err
		}
		f.writeLine(line)
		f.declared[name] = true
	}
	return nil
}

// CheckSat writes (check-sat) to the trace and, unless SkipSolving,
// forwards to the engine.
func (f *Facade) CheckSat() (Result, error) {
	f.writeLine("(check-sat)")
	f.writeLine("")
	if f.SkipSolving {
		return Unknown, nil
	}
	return f.engine.CheckSat()
}

// GetModel returns the full model from the last Sat check-sat.
func (f *Facade) GetModel() (Model, error) {
	if f.SkipSolving {
		return nil, fmt.Errorf("solver: GetModel called with skip-solving enabled")
	}
	return f.engine.GetModel()
}

// GetValue returns the value the last Sat check-sat assigned to name.
func (f *Facade) GetValue(name string) (*formula.Expr, error) {
	if f.SkipSolving {
		return nil, fmt.Errorf("solver: GetValue called with skip-solving enabled")
	}
	return f.engine.GetValue(name)
}

// GetValues returns the values assigned to a set of names.
func (f *Facade) GetValues(names []string) (Model, error) {
	out := Model{}
	for _, name := range names {
		v, err := f.GetValue(name)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

func (f *Facade) writeLine(s string) {
	if f.trace == nil {
		return
	}
	fmt.Fprintln(f.trace, s)
}

func (f *Facade) closeTrace() {
	if f.trace != nil {
		f.trace.Flush()
	}
	if f.traceF != nil {
		f.traceF.Close()
	}
	f.trace = nil
	f.traceF = nil
}

// Exit tears down the engine and flushes the trace file.
func (f *Facade) Exit() {
	f.engine.Exit()
	f.closeTrace()
}
