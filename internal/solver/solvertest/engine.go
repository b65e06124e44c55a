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

// Package solvertest is a brute-force stand-in for the real, opaque SMT
// solver (solver.Engine), used only by tests. It enumerates assignments
// over the small Boolean/bitvector variable sets the BMC test fixtures
// declare and checks each against the asserted formulas with
// formula.Eval. It is not a general decision procedure and is never
// imported by production code.
package solvertest

import (
	"errors"
	"sort"

	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/solver"
)

var errNoModel = errors.New("solvertest: no model available")

// Engine implements solver.Engine by brute force.
type Engine struct {
	frames [][]*formula.Expr
	model  solver.Model
}

// New returns a fresh brute-force engine.
func New() solver.Engine { return &Engine{frames: [][]*formula.Expr{{}}} }

func (e *Engine) Reset() {
	e.frames = [][]*formula.Expr{{}}
	e.model = nil
}

func (e *Engine) Push() {
	e.frames = append(e.frames, []*formula.Expr{})
}

func (e *Engine) Pop() {
	if len(e.frames) > 1 {
		e.frames = e.frames[:len(e.frames)-1]
	}
	e.model = nil
}

func (e *Engine) Assert(f *formula.Expr) {
	n := len(e.frames) - 1
	e.frames[n] = append(e.frames[n], f)
	e.model = nil
}

func (e *Engine) Exit() {}

func (e *Engine) asserted() []*formula.Expr {
	var out []*formula.Expr
	for _, fr := range e.frames {
		out = append(out, fr...)
	}
	return out
}

// CheckSat enumerates every assignment of the free variables of the
// asserted formulas and returns the first one that satisfies them all.
func (e *Engine) CheckSat() (solver.Result, error) {
	asserted := e.asserted()

	vars := map[string]*formula.Var{}
	for _, f := range asserted {
		for name, v := range formula.FreeVars(f) {
			vars[name] = v
		}
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	model, ok, err := search(names, vars, asserted, 0, solver.Model{})
	if err != nil {
		return solver.Unknown, err
	}
	if !ok {
		e.model = nil
		return solver.Unsat, nil
	}
	e.model = model
	return solver.Sat, nil
}

func (e *Engine) GetModel() (solver.Model, error) {
	if e.model == nil {
		return nil, errNoModel
	}
	return e.model, nil
}

func (e *Engine) GetValue(name string) (*formula.Expr, error) {
	if e.model == nil {
		return nil, errNoModel
	}
	v, ok := e.model[name]
	if !ok {
		return nil, errNoModel
	}
	return v, nil
}

func search(names []string, vars map[string]*formula.Var, asserted []*formula.Expr, i int, env solver.Model) (solver.Model, bool, error) {
	if i == len(names) {
		evalEnv := make(map[string]*formula.Expr, len(env))
		for k, v := range env {
			evalEnv[k] = v
		}
		for _, f := range asserted {
			v, err := formula.Eval(f, evalEnv)
			if err != nil {
				return nil, false, err
			}
			if !formula.IsTrue(v) {
				return nil, false, nil
			}
		}
		cp := make(solver.Model, len(env))
		for k, v := range env {
			cp[k] = v
		}
		return cp, true, nil
	}

	name := names[i]
	for _, val := range domain(vars[name].Sort) {
		env[name] = val
		if model, ok, err := search(names, vars, asserted, i+1, env); err != nil {
			return nil, false, err
		} else if ok {
			return model, true, nil
		}
	}
	delete(env, name)
	return nil, false, nil
}

func domain(s formula.Sort) []*formula.Expr {
	switch s.Kind {
	case formula.SortBool:
		return []*formula.Expr{formula.FALSE(), formula.TRUE()}
	case formula.SortBV:
		n := uint64(1) << uint(s.Width)
		out := make([]*formula.Expr, n)
		for i := uint64(0); i < n; i++ {
			out[i] = formula.BVConst(i, s.Width)
		}
		return out
	default:
		return nil
	}
}
