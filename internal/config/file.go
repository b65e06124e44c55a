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

// Package config loads an optional YAML file of BMCConfig overrides,
// merged under whatever the CLI's flags already set (cmd/bmc always wins:
// a flag the user actually typed overrides the file).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gorse-io/bmc/internal/bmc"
)

// File is the subset of bmc.Config a YAML file may set. Pointer fields
// distinguish "absent from the file" from "explicitly set to the zero
// value" so Merge only overrides what the file actually mentions.
type File struct {
	Incremental *bool        `yaml:"incremental"`
	Strategy    *bmc.Strategy `yaml:"strategy"`
	SolverName  *string      `yaml:"solver_name"`
	FullTrace   *bool        `yaml:"full_trace"`
	Prefix      *string      `yaml:"prefix"`
	SMT2File    *string      `yaml:"smt2_file"`
	Simplify    *bool        `yaml:"simplify"`
	VCDTrace    *bool        `yaml:"vcd_trace"`
	Prove       *bool        `yaml:"prove"`
	SkipSolving *bool        `yaml:"skip_solving"`
}

// Load reads and parses a YAML config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &f, nil
}

// Merge applies f's fields onto cfg, skipping any field f doesn't set.
func (f *File) Merge(cfg *bmc.Config) {
	if f == nil {
		return
	}
	if f.Incremental != nil {
		cfg.Incremental = *f.Incremental
	}
	if f.Strategy != nil {
		cfg.Strategy = *f.Strategy
	}
	if f.SolverName != nil {
		cfg.SolverName = *f.SolverName
	}
	if f.FullTrace != nil {
		cfg.FullTrace = *f.FullTrace
	}
	if f.Prefix != nil {
		cfg.Prefix = *f.Prefix
	}
	if f.SMT2File != nil {
		cfg.SMT2File = *f.SMT2File
	}
	if f.Simplify != nil {
		cfg.Simplify = *f.Simplify
	}
	if f.VCDTrace != nil {
		cfg.VCDTrace = *f.VCDTrace
	}
	if f.Prove != nil {
		cfg.Prove = *f.Prove
	}
	if f.SkipSolving != nil {
		cfg.SkipSolving = *f.SkipSolving
	}
}
