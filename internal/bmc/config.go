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

// Package bmc is the bounded model checking engine: time-indexing, the
// unroller and simple-path encoder, the four search strategies, the lemma
// pipeline, the model remapper, and the orchestrator (safety, simulate,
// fsm_check, the equivalence miter) built on top of them.
package bmc

// Strategy selects which symbolic unrolling scheme an incremental search
// uses. It is a tagged variant dispatched through a small registry
// (strategy.go), the same registry-of-interchangeable-implementations
// shape the teacher uses for its architecture backends.
type Strategy string

const (
	FWD Strategy = "FWD"
	BWD Strategy = "BWD"
	ZZ  Strategy = "ZZ"
	NU  Strategy = "NU"
)

// Verdict is the three-valued result of a safety or simulation search.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictTrue
	VerdictFalse
)

func (v Verdict) String() string {
	switch v {
	case VerdictTrue:
		return "TRUE"
	case VerdictFalse:
		return "FALSE"
	default:
		return "UNKNOWN"
	}
}

// Config mirrors CoSA's BMCConfig: the knobs that select a strategy,
// toggle incrementality and k-induction, and control tracing.
type Config struct {
	Incremental bool
	Strategy    Strategy
	SolverName  string
	FullTrace   bool
	Prefix      string
	SMT2File    string
	Simplify    bool
	VCDTrace    bool
	Prove       bool
	SkipSolving bool
}

// DefaultConfig mirrors BMCConfig.__init__'s defaults.
func DefaultConfig() *Config {
	return &Config{
		Incremental: true,
		Strategy:    FWD,
		SolverName:  "msat",
		Prefix:      "bmc",
	}
}

// StrategyDescriptions documents the four strategies, mirroring
// BMCConfig.get_strategies() in the original.
func StrategyDescriptions() map[Strategy]string {
	return map[Strategy]string{
		FWD: "Forward symbolic unrolling, with optional k-induction",
		BWD: "Backward symbolic unrolling",
		ZZ:  "Zig-zag symbolic unrolling, alternating forward and backward",
		NU:  "No unrolling: step-by-step simulation only",
	}
}
