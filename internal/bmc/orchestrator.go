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
	"fmt"

	"github.com/google/uuid"

	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/solver"
	"github.com/gorse-io/bmc/internal/ts"
)

// Trace is a rendered counterexample or simulation trace. Rendering itself
// (human-readable columns, VCD) is an external collaborator's job —
// Trace just carries what that collaborator produced plus the raw model
// it was built from, for callers that want to inspect values directly.
type Trace struct {
	Length int
	Model  solver.Model
	Human  string
	VCD    string
}

// TracePrinter renders a remapped model into human-readable and/or VCD
// form. It is a consumed external interface (spec §6); Checker calls it
// but never implements it.
type TracePrinter interface {
	Print(hts *ts.HTS, model solver.Model, length int) (human, vcd string, err error)
}

// Checker is CoSA's BMC class: an HTS, a configuration, the solver façade
// (and a second façade for k-induction when Config.Prove is set), and the
// time-indexer every search shares.
type Checker struct {
	HTS     *ts.HTS
	Config  *Config
	Printer TracePrinter

	solver    *solver.Facade
	indSolver *solver.Facade
	ti        *TimeIndexer

	lastCallID uuid.UUID
}

// NewChecker builds a Checker. newEngine is invoked to create the
// underlying (opaque) SMT engine for the main solver and, if
// cfg.Prove is set, a second one for the k-induction side channel.
func NewChecker(hts *ts.HTS, cfg *Config, newEngine func() solver.Engine) *Checker {
	c := &Checker{HTS: hts, Config: cfg, ti: NewTimeIndexer()}

	c.solver = solver.New("main", newEngine)
	c.solver.Logic = hts.Logic
	c.solver.SkipSolving = cfg.SkipSolving
	c.solver.TraceFile = cfg.SMT2File

	if cfg.Prove {
		c.indSolver = solver.New("induction", newEngine)
		c.indSolver.Logic = hts.Logic
		c.indSolver.SkipSolving = cfg.SkipSolving
		if cfg.SMT2File != "" {
			c.indSolver.TraceFile = cfg.SMT2File + ".induction.smt2"
		}
	}
	return c
}

// solve runs the lemma pipeline (if any lemmas were given) and then
// dispatches to the configured strategy, exactly as CoSA's BMC.solve does:
// lemmas first, then incremental-vs-non-incremental, then strategy.
func (c *Checker) solve(prop *formula.Expr, k, kMin int, lemmas []*formula.Expr) (SearchResult, error) {
	if len(lemmas) > 0 {
		implied, err := c.addLemmas(prop, lemmas)
		if err != nil {
			return SearchResult{}, err
		}
		if implied {
			return SearchResult{Depth: 0, Proved: true}, nil
		}
	}

	if c.Config.Incremental {
		fn := getStrategy(c.Config.Strategy)
		return fn(c, prop, k, kMin)
	}
	return c.solveFwd(prop, k, true)
}

// Safety is the main entry point: search for a counterexample to prop up
// to horizon k, never reporting one shorter than kMin, optionally guided
// by a set of candidate lemmas.
func (c *Checker) Safety(prop *formula.Expr, k, kMin int, lemmas []*formula.Expr) (Verdict, *Trace, int, error) {
	c.lastCallID = uuid.New()
	c.ti.Init(c.HTS.Vars(), k, c.Config.Strategy != FWD)

	res, err := c.solve(prop, k, kMin, lemmas)
	if err != nil {
		return VerdictUnknown, nil, -1, err
	}

	if res.Proved {
		return VerdictTrue, nil, res.Depth, nil
	}
	if res.Depth > -1 {
		remapped := remapModel(c.HTS.Vars(), res.Model, res.Depth, c.Config.Strategy)
		trace, err := c.buildTrace(remapped, res.Depth)
		if err != nil {
			return VerdictUnknown, nil, -1, err
		}
		return VerdictFalse, trace, res.Depth, nil
	}
	return VerdictUnknown, nil, -1, nil
}

func (c *Checker) buildTrace(model solver.Model, length int) (*Trace, error) {
	trace := &Trace{Length: length, Model: model}
	if c.Printer == nil {
		return trace, nil
	}
	human, vcd, err := c.Printer.Print(c.HTS, model, length)
	if err != nil {
		return nil, fmt.Errorf("bmc: rendering trace: %w", err)
	}
	trace.Human = human
	trace.VCD = vcd
	return trace, nil
}
