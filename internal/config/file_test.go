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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gorse-io/bmc/internal/bmc"
)

func TestLoadAndMergeOnlyOverridesSetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bmc.yaml")
	yamlContent := "strategy: BWD\nprove: true\n"
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := bmc.DefaultConfig()
	wantSolverName := cfg.SolverName
	f.Merge(cfg)

	if cfg.Strategy != bmc.BWD {
		t.Errorf("Merge() Strategy = %v, want BWD", cfg.Strategy)
	}
	if !cfg.Prove {
		t.Errorf("Merge() Prove = false, want true")
	}
	if cfg.SolverName != wantSolverName {
		t.Errorf("Merge() overwrote SolverName to %q, want it untouched (%q)", cfg.SolverName, wantSolverName)
	}
}

func TestMergeNilFileIsANoop(t *testing.T) {
	cfg := bmc.DefaultConfig()
	before := *cfg
	var f *File
	f.Merge(cfg)
	if *cfg != before {
		t.Errorf("Merge(nil) modified cfg: got %+v, want %+v", *cfg, before)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load() of a missing file should error")
	}
}
