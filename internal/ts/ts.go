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

// Package ts holds the transition-system data model the BMC engine
// operates on: a single TS (init/trans/invar over a variable set) and the
// HTS that flattens several TS instances into one. Building an HTS from a
// hardware or software description is the job of an external front-end;
// this package only stores and flattens what the front-end produced.
package ts

import "github.com/gorse-io/bmc/internal/formula"

// TS is one transition system: an initial-state predicate, a transition
// relation (over current and primed variables) and a state invariant,
// together with the variable partition it declares.
type TS struct {
	Vars       []formula.Var
	StateVars  []formula.Var
	Inputs     []formula.Var
	Outputs    []formula.Var
	Init       *formula.Expr
	Trans      *formula.Expr
	Invar      *formula.Expr
	Comment    string
}

// HTS is a hierarchical transition system: a named collection of TS
// instances that together describe one design, plus an accumulator for
// lemmas the lemma pipeline has proved k-inductive.
type HTS struct {
	Name        string
	Logic       string
	Sub         []TS
	Assumptions *formula.Expr
}

// NewHTS returns an empty HTS of the given name and SMT-LIB logic.
func NewHTS(name, logic string) *HTS {
	return &HTS{Name: name, Logic: logic, Assumptions: formula.TRUE()}
}

// AddTS appends a sub-system.
func (h *HTS) AddTS(t TS) { h.Sub = append(h.Sub, t) }

// SingleInit conjoins every sub-system's init predicate.
func (h *HTS) SingleInit() *formula.Expr {
	args := make([]*formula.Expr, len(h.Sub))
	for i, t := range h.Sub {
		args[i] = t.Init
	}
	return formula.And(args...)
}

// SingleTrans conjoins every sub-system's transition relation.
func (h *HTS) SingleTrans() *formula.Expr {
	args := make([]*formula.Expr, len(h.Sub))
	for i, t := range h.Sub {
		args[i] = t.Trans
	}
	return formula.And(args...)
}

// SingleInvar conjoins every sub-system's invariant together with the
// lemmas the lemma pipeline has accumulated into Assumptions (I4):
// holding lemmas strengthen the invariant for every subsequent search.
func (h *HTS) SingleInvar() *formula.Expr {
	args := make([]*formula.Expr, 0, len(h.Sub)+1)
	for _, t := range h.Sub {
		args = append(args, t.Invar)
	}
	args = append(args, h.Assumptions)
	return formula.And(args...)
}

// Vars is the union of every sub-system's declared variables, deduplicated
// by name and returned in first-seen order for determinism.
func (h *HTS) Vars() []formula.Var { return unionVars(subVars(h, func(t TS) []formula.Var { return t.Vars })) }

// StateVars is the union of every sub-system's state variables.
func (h *HTS) StateVars() []formula.Var {
	return unionVars(subVars(h, func(t TS) []formula.Var { return t.StateVars }))
}

// Inputs is the union of every sub-system's input variables.
func (h *HTS) Inputs() []formula.Var {
	return unionVars(subVars(h, func(t TS) []formula.Var { return t.Inputs }))
}

// Outputs is the union of every sub-system's output variables.
func (h *HTS) Outputs() []formula.Var {
	return unionVars(subVars(h, func(t TS) []formula.Var { return t.Outputs }))
}

func subVars(h *HTS, pick func(TS) []formula.Var) [][]formula.Var {
	out := make([][]formula.Var, len(h.Sub))
	for i, t := range h.Sub {
		out[i] = pick(t)
	}
	return out
}

func unionVars(groups [][]formula.Var) []formula.Var {
	var out []formula.Var
	seen := map[string]bool{}
	for _, g := range groups {
		for _, v := range g {
			if seen[v.Name] {
				continue
			}
			seen[v.Name] = true
			out = append(out, v)
		}
	}
	return out
}

// IntersectVars returns the variables present in both a and b, matched by
// name, keeping a's ordering — used by the equivalence miter to find the
// shared input/output/state vocabulary between two systems.
func IntersectVars(a, b []formula.Var) []formula.Var {
	inB := map[string]bool{}
	for _, v := range b {
		inB[v.Name] = true
	}
	var out []formula.Var
	for _, v := range a {
		if inB[v.Name] {
			out = append(out, v)
		}
	}
	return out
}
