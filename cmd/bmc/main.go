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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gorse-io/bmc/internal/bmc"
	"github.com/gorse-io/bmc/internal/config"
	"github.com/gorse-io/bmc/internal/formula"
	"github.com/gorse-io/bmc/internal/formula/formulatest"
	"github.com/gorse-io/bmc/internal/logx"
	"github.com/gorse-io/bmc/internal/solver/solvertest"
	"github.com/gorse-io/bmc/internal/ts"
)

// systems is the registry of demo transition systems the CLI can run
// against. Building an HTS from an actual hardware/software description
// is the job of an external front-end this engine doesn't implement, so
// the CLI instead exercises the engine against a few hand-built fixtures
// shared with the test suite (internal/formula/formulatest).
var systems = map[string]func() (*ts.HTS, *formula.Expr){
	"counter": formulatest.Counter8,
	"toggle":  formulatest.Toggle,
	"xor":     formulatest.XorSim,
}

var cfgFile string
var cfg = bmc.DefaultConfig()
var horizon int
var kMin int
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bmc",
	Short: "Bounded model checking engine for symbolic transition systems",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logx.SetLevel(logx.LevelDebug)
		}
		if cfgFile != "" {
			f, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			typed := map[string]string{}
			cmd.Flags().Visit(func(fl *pflag.Flag) { typed[fl.Name] = fl.Value.String() })
			f.Merge(cfg)
			for name, val := range typed {
				if err := cmd.Flags().Set(name, val); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "optional YAML config file")
	pf.StringVar((*string)(&cfg.Strategy), "strategy", string(bmc.FWD), "search strategy: FWD, BWD, ZZ, NU")
	pf.BoolVar(&cfg.Incremental, "incremental", cfg.Incremental, "use the incremental strategy loop")
	pf.StringVar(&cfg.SolverName, "solver", cfg.SolverName, "underlying SMT solver name")
	pf.BoolVar(&cfg.Prove, "prove", cfg.Prove, "attempt k-induction alongside the FWD search")
	pf.BoolVar(&cfg.Simplify, "simplify", cfg.Simplify, "simplify init/trans/invar before asserting them")
	pf.StringVar(&cfg.SMT2File, "smt2file", "", "write an SMT-LIB trace of every assertion to this file")
	pf.BoolVar(&cfg.VCDTrace, "vcd", cfg.VCDTrace, "render counterexample traces as VCD")
	pf.BoolVar(&cfg.FullTrace, "full-trace", cfg.FullTrace, "render every variable in the trace, not just named ones")
	pf.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "prefix for generated trace/log files")
	pf.BoolVar(&cfg.SkipSolving, "skip-solving", cfg.SkipSolving, "write the SMT-LIB trace without querying the solver")
	pf.IntVar(&horizon, "k", 10, "search horizon")
	pf.IntVar(&kMin, "k-min", 0, "shortest counterexample depth to report")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(checkCmd, simulateCmd, fsmCheckCmd, miterCmd)
}

func loadSystem(name string) (*ts.HTS, *formula.Expr, error) {
	build, ok := systems[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown system %q (available: counter, toggle, xor)", name)
	}
	hts, f := build()
	return hts, f, nil
}

var checkCmd = &cobra.Command{
	Use:   "check <system>",
	Short: "Run a safety search against a demo system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hts, prop, err := loadSystem(args[0])
		if err != nil {
			return err
		}
		checker := bmc.NewChecker(hts, cfg, solvertest.New)
		verdict, trace, depth, err := checker.Safety(prop, horizon, kMin, nil)
		if err != nil {
			return err
		}
		fmt.Printf("verdict: %s (depth %d)\n", verdict, depth)
		if trace != nil {
			fmt.Printf("trace length: %d\n", trace.Length)
		}
		return nil
	},
}

var coverSystem string

var simulateCmd = &cobra.Command{
	Use:   "simulate <system>",
	Short: "Simulate a demo system toward its built-in cover condition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hts, cover, err := loadSystem(args[0])
		if err != nil {
			return err
		}
		checker := bmc.NewChecker(hts, cfg, solvertest.New)
		verdict, trace, err := checker.Simulate(cover, horizon)
		if err != nil {
			return err
		}
		fmt.Printf("verdict: %s\n", verdict)
		if trace != nil {
			fmt.Printf("trace length: %d\n", trace.Length)
		}
		return nil
	},
}

var fsmCheckCmd = &cobra.Command{
	Use:   "fsm-check <system>",
	Short: "Check whether a demo system's transition relation is deterministic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hts, _, err := loadSystem(args[0])
		if err != nil {
			return err
		}
		checker := bmc.NewChecker(hts, cfg, solvertest.New)
		deterministic, trace, err := checker.FsmCheck(horizon)
		if err != nil {
			return err
		}
		fmt.Printf("deterministic: %v\n", deterministic)
		if trace != nil {
			fmt.Printf("trace length: %d\n", trace.Length)
		}
		return nil
	},
}

var miterCmd = &cobra.Command{
	Use:   "miter <system1> <system2>",
	Short: "Check equivalence of two demo systems via the product miter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hts1, _, err := loadSystem(args[0])
		if err != nil {
			return err
		}
		hts2, _, err := loadSystem(args[1])
		if err != nil {
			return err
		}
		checker := bmc.NewChecker(hts1, cfg, solvertest.New)
		product, miterVar := checker.CombinedSystem(hts2, false)
		prodChecker := bmc.NewChecker(product, cfg, solvertest.New)
		verdict, trace, depth, err := prodChecker.Safety(miterVar, horizon, 0, nil)
		if err != nil {
			return err
		}
		fmt.Printf("equivalent: %v (depth %d)\n", verdict == bmc.VerdictUnknown || verdict == bmc.VerdictTrue, depth)
		if trace != nil {
			fmt.Printf("trace length: %d\n", trace.Length)
		}
		return nil
	},
}

// run executes rootCmd and recovers the *bmc.ConfigError/*bmc.CacheMissError
// panics the engine raises for configuration mistakes (unknown strategy, NU
// outside simulation, a horizon too small for a next-state property, BWD/ZZ
// against a next-state property, a varmap cache miss) — the single call
// boundary where those panics are supposed to turn into a clean exit rather
// than an unrecovered stack trace, matching spec.md §7's "reported and
// aborts the search".
func run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *bmc.ConfigError, *bmc.CacheMissError:
				err = fmt.Errorf("%v", e)
			default:
				panic(r)
			}
		}
	}()
	return rootCmd.Execute()
}

func main() {
	if err := run(); err != nil {
		logx.Fatalf("%v", err)
	}
}
