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

// Package logx is a small leveled logger wrapping the standard library's
// log.Logger, styled after the teacher's stderr-first error reporting
// (fmt.Fprintln(os.Stderr, ...) followed by os.Exit(1) in main.go) and
// CoSA's Logger.log/Logger.error verbosity levels.
package logx

import (
	"fmt"
	"log"
	"os"
)

// Level is a verbosity threshold, low to high.
type Level int

const (
	LevelError Level = iota
	LevelInfo
	LevelDebug
)

var (
	verbosity = LevelInfo
	std       = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLevel sets the process-wide verbosity threshold.
func SetLevel(l Level) { verbosity = l }

func logAt(l Level, format string, args ...interface{}) {
	if l > verbosity {
		return
	}
	std.Output(3, fmt.Sprintf(format, args...))
}

// Infof logs at the default verbosity.
func Infof(format string, args ...interface{}) { logAt(LevelInfo, format, args...) }

// Debugf logs only when verbosity has been raised, the level CoSA's lemma
// pipeline uses to report a dropped lemma without aborting the run.
func Debugf(format string, args ...interface{}) { logAt(LevelDebug, format, args...) }

// Errorf always logs, regardless of verbosity.
func Errorf(format string, args ...interface{}) { logAt(LevelError, format, args...) }

// Fatalf logs and exits the process with status 1 — the shape of the
// teacher's top-level main() reporting a translate failure.
func Fatalf(format string, args ...interface{}) {
	logAt(LevelError, format, args...)
	os.Exit(1)
}
