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

// Package solver is the façade over an external, opaque SMT solver. The
// solver itself (msat, z3, ...) is a consumed collaborator — Engine is the
// seam an actual binding would implement; this package owns only the
// push/pop bookkeeping, SMT-LIB trace-file writing and declare-fun
// tracking CoSA's TraceSolver performs around whatever solver answers the
// queries.
package solver

import "github.com/gorse-io/bmc/internal/formula"

// Result is the three-valued answer to a check-sat query.
type Result int

const (
	Unknown Result = iota
	Sat
	Unsat
)

// Model maps a timed variable name to the constant expression the solver
// assigned it.
type Model map[string]*formula.Expr

// Engine is the minimal surface the façade drives. A real binding talks to
// an external solver process or library; Engine is the interface that
// binding would implement.
type Engine interface {
	Reset()
	Push()
	Pop()
	Assert(f *formula.Expr)
	CheckSat() (Result, error)
	GetModel() (Model, error)
	GetValue(name string) (*formula.Expr, error)
	Exit()
}
