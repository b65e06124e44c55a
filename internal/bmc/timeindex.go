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

import "github.com/gorse-io/bmc/internal/formula"

// TimeIndexer owns the varmap cache (fwdmap/bwdmap) CoSA builds once per
// search and reuses across every at_time/at_ptime call in that search. It
// maps a base variable name to its current, next ('), and previous (^)
// flavors at a given time index, in one substitution map per index so a
// single Substitute pass handles all three flavors at once.
type TimeIndexer struct {
	fwd map[int]map[string]*formula.Var
	bwd map[int]map[string]*formula.Var
}

// NewTimeIndexer returns an empty indexer; Init must be called before
// AtTime/AtPtime.
func NewTimeIndexer() *TimeIndexer {
	return &TimeIndexer{fwd: map[int]map[string]*formula.Var{}, bwd: map[int]map[string]*formula.Var{}}
}

// Init rebuilds the varmap cache for a search over the given variables up
// to horizon. fwdmap is built for time indices 0..horizon+1; if
// buildBackward is set (any strategy other than FWD), bwdmap is also built
// for pseudo-time indices -1..horizon+1.
func (ti *TimeIndexer) Init(vars []formula.Var, horizon int, buildBackward bool) {
	ti.fwd = map[int]map[string]*formula.Var{}
	ti.bwd = map[int]map[string]*formula.Var{}

	for t := 0; t <= horizon+1; t++ {
		m := map[string]*formula.Var{}
		for _, v := range vars {
			m[v.Name] = &formula.Var{Name: formula.TimedName(v.Name, t), Sort: v.Sort}
			m[formula.PrimeName(v.Name)] = &formula.Var{Name: formula.TimedName(v.Name, t+1), Sort: v.Sort}
			m[formula.PrevName(v.Name)] = &formula.Var{Name: formula.TimedName(v.Name, t-1), Sort: v.Sort}
		}
		ti.fwd[t] = m
	}

	if !buildBackward {
		return
	}
	for t := -1; t <= horizon+1; t++ {
		m := map[string]*formula.Var{}
		for _, v := range vars {
			m[v.Name] = &formula.Var{Name: formula.PtimedName(v.Name, t), Sort: v.Sort}
			m[formula.PrimeName(v.Name)] = &formula.Var{Name: formula.PtimedName(v.Name, t-1), Sort: v.Sort}
			m[formula.PrevName(v.Name)] = &formula.Var{Name: formula.PtimedName(v.Name, t+1), Sort: v.Sort}
		}
		ti.bwd[t] = m
	}
}

// AtTime substitutes f's current/next/previous variables with their
// forward time-indexed flavor at t. Panics with CacheMissError if Init was
// never called for this index.
func (ti *TimeIndexer) AtTime(f *formula.Expr, t int) *formula.Expr {
	m, ok := ti.fwd[t]
	if !ok {
		panic(&CacheMissError{Time: t})
	}
	return formula.Substitute(f, m)
}

// AtPtime substitutes f's current/next/previous variables with their
// backward (pseudo-)time-indexed flavor at t. Panics with CacheMissError
// if Init was never called with buildBackward for this index.
func (ti *TimeIndexer) AtPtime(f *formula.Expr, t int) *formula.Expr {
	m, ok := ti.bwd[t]
	if !ok {
		panic(&CacheMissError{Time: t})
	}
	return formula.Substitute(f, m)
}
