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

import (
	"testing"

	"github.com/gorse-io/bmc/internal/formula/formulatest"
	"github.com/gorse-io/bmc/internal/solver/solvertest"
)

func TestSafetyFindsCounterexampleAcrossStrategies(t *testing.T) {
	for _, strategy := range []Strategy{FWD, BWD, ZZ} {
		t.Run(string(strategy), func(t *testing.T) {
			hts, prop := formulatest.Counter(3)
			cfg := DefaultConfig()
			cfg.Strategy = strategy

			checker := NewChecker(hts, cfg, solvertest.New)
			verdict, trace, depth, err := checker.Safety(prop, 7, 0, nil)
			if err != nil {
				t.Fatalf("Safety() error = %v", err)
			}
			if verdict != VerdictFalse {
				t.Fatalf("Safety() verdict = %v, want FALSE", verdict)
			}
			if depth != 7 {
				t.Fatalf("Safety() depth = %d, want 7", depth)
			}
			if trace == nil || trace.Length != 7 {
				t.Fatalf("Safety() trace = %+v, want length 7", trace)
			}
		})
	}
}

func TestSafetyProvesTrivialInvariant(t *testing.T) {
	hts, prop := formulatest.Toggle()
	cfg := DefaultConfig()
	cfg.Strategy = FWD
	cfg.Prove = true

	checker := NewChecker(hts, cfg, solvertest.New)
	verdict, trace, _, err := checker.Safety(prop, 3, 0, nil)
	if err != nil {
		t.Fatalf("Safety() error = %v", err)
	}
	if verdict != VerdictTrue {
		t.Fatalf("Safety() verdict = %v, want TRUE", verdict)
	}
	if trace != nil {
		t.Fatalf("Safety() trace = %+v, want nil for a proved property", trace)
	}
}

func TestSafetyRespectsKMin(t *testing.T) {
	hts, prop := formulatest.Counter(3)
	cfg := DefaultConfig()
	cfg.Strategy = FWD

	checker := NewChecker(hts, cfg, solvertest.New)
	verdict, _, depth, err := checker.Safety(prop, 7, 7, nil)
	if err != nil {
		t.Fatalf("Safety() error = %v", err)
	}
	if verdict != VerdictFalse || depth != 7 {
		t.Fatalf("Safety(kMin=7) = (%v, depth %d), want (FALSE, 7)", verdict, depth)
	}
}
