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

// ConfigError marks a programmer/configuration mistake: an unknown
// strategy, NU selected outside simulation, a horizon too small for a
// next-state property, or BWD/ZZ asked to check a next-state property.
// These panic rather than return an error — the caller gave the engine an
// instruction it cannot carry out, not a runtime failure.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "bmc: " + e.Msg }

// CacheMissError marks a variable requested from the time-index varmap
// cache at a time index the cache was never built for — a bug in the
// caller, since Init always covers the full search horizon.
type CacheMissError struct {
	Var  string
	Time int
}

func (e *CacheMissError) Error() string {
	return "bmc: varmap cache miss for variable at time index"
}
