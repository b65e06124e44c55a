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

import "sort"

// FreeVars collects every distinct variable referenced by e, keyed by name.
func FreeVars(e *Expr) map[string]*Var {
	out := map[string]*Var{}
	collectFreeVars(e, out)
	return out
}

func collectFreeVars(e *Expr, out map[string]*Var) {
	if e == nil {
		return
	}
	if e.Kind == KVar {
		out[e.Var.Name] = e.Var
		return
	}
	for _, a := range e.Args {
		collectFreeVars(a, out)
	}
}

// FreeVarNames returns the sorted names of e's free variables, used where a
// deterministic iteration order matters (trace rendering, declare-fun
// emission).
func FreeVarNames(e *Expr) []string {
	fv := FreeVars(e)
	names := make([]string, 0, len(fv))
	for n := range fv {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// HasNext reports whether e references any next-state (primed) variable.
func HasNext(e *Expr) bool {
	for name := range FreeVars(e) {
		if IsPrimeName(name) {
			return true
		}
	}
	return false
}

// Substitute rebuilds e replacing every KVar node whose name is a key of m
// with a reference to the mapped variable. Nodes untouched by the
// substitution are returned unchanged (no spurious copies).
func Substitute(e *Expr, m map[string]*Var) *Expr {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KVar:
		if v, ok := m[e.Var.Name]; ok {
			return &Expr{Kind: KVar, Var: v}
		}
		return e
	case KBoolConst, KBVConst:
		return e
	default:
		args := make([]*Expr, len(e.Args))
		changed := false
		for i, a := range e.Args {
			na := Substitute(a, m)
			args[i] = na
			if na != a {
				changed = true
			}
		}
		if !changed {
			return e
		}
		cp := *e
		cp.Args = args
		return &cp
	}
}

// ToNext substitutes every unprimed free variable x in e with its
// next-state flavor x', preserving sort; variables that already carry the
// prime suffix are left as they are. Used by the lemma pipeline's step
// check.
func ToNext(e *Expr) *Expr {
	fv := FreeVars(e)
	m := make(map[string]*Var, len(fv))
	for name, v := range fv {
		if IsPrimeName(name) {
			continue
		}
		m[name] = &Var{Name: PrimeName(name), Sort: v.Sort}
	}
	return Substitute(e, m)
}

// ConjunctivePartition splits a top-level conjunction into its conjuncts;
// a non-conjunction formula is returned as a single-element slice.
func ConjunctivePartition(e *Expr) []*Expr {
	if e.Kind == KAnd {
		return e.Args
	}
	return []*Expr{e}
}

// Simplify applies a small set of constant-folding and identity rewrites
// bottom-up. It is not a decision procedure — just the cheap rewrites the
// And/Or/Not/Implies constructors already do, reapplied after
// substitution so that e.g. at_time(TRUE ∧ x, 0) comes back out as x@0.
func Simplify(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KBoolConst, KBVConst, KVar:
		return e
	case KNot:
		return Not(Simplify(e.Args[0]))
	case KAnd:
		args := make([]*Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = Simplify(a)
		}
		return And(args...)
	case KOr:
		args := make([]*Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = Simplify(a)
		}
		return Or(args...)
	case KImplies:
		return Implies(Simplify(e.Args[0]), Simplify(e.Args[1]))
	case KIff:
		a, b := Simplify(e.Args[0]), Simplify(e.Args[1])
		if a == b {
			return TRUE()
		}
		return Iff(a, b)
	case KEquals:
		a, b := Simplify(e.Args[0]), Simplify(e.Args[1])
		if a.Kind == KBVConst && b.Kind == KBVConst {
			return Bool(a.BVVal.Cmp(b.BVVal) == 0)
		}
		return Equals(a, b)
	case KApply:
		args := make([]*Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = Simplify(a)
		}
		cp := *e
		cp.Args = args
		return &cp
	default:
		return e
	}
}
