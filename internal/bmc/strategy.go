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

// SearchResult is returned by every incremental strategy's core search
// loop (and by the non-incremental forward search).
type SearchResult struct {
	// Depth is the time index a counterexample was found at, or -1 if the
	// search exhausted the horizon without finding one.
	Depth int
	// Model is the raw (not yet remapped) solver model for a Sat result.
	Model map[string]*formula.Expr
	// Proved is set when the FWD strategy's k-induction side channel
	// discharged the property instead of finding a counterexample.
	Proved bool
}

// incrementalSearch is the shape every incremental strategy implements:
// search for a counterexample to prop up to horizon k, never reporting one
// shorter than kMin.
type incrementalSearch func(c *Checker, prop *formula.Expr, k, kMin int) (SearchResult, error)

// strategies is the registry of incremental search implementations, kept
// in the same shape as the teacher's ArchParser registry
// (map[string]Interface plus Register/Get functions): one dispatch point,
// one place to add a new strategy.
var strategies = map[Strategy]incrementalSearch{}

func registerStrategy(s Strategy, fn incrementalSearch) { strategies[s] = fn }

func init() {
	registerStrategy(FWD, solveIncFwd)
	registerStrategy(BWD, solveIncBwd)
	registerStrategy(ZZ, solveIncZZ)
}

// getStrategy panics with a *ConfigError for an unknown strategy, the same
// way its siblings (backward.go, forward.go, zigzag.go) panic for the other
// configuration mistakes in this bucket — a caller asked the engine to do
// something it structurally cannot, not something that failed at runtime.
func getStrategy(s Strategy) incrementalSearch {
	fn, ok := strategies[s]
	if !ok {
		panic(&ConfigError{Msg: "unknown or unsupported incremental strategy: " + string(s)})
	}
	return fn
}
