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

package formula

import (
	"fmt"
	"strings"
)

const (
	primeSuffix  = "'"
	prevSuffix   = "^"
	timedSep     = "@"
	ptimedSep    = "#"
)

// PrimeName is the next-state flavor of a base variable name: V'.
func PrimeName(name string) string { return name + primeSuffix }

// PrevName is the previous-state flavor of a base variable name: V^.
func PrevName(name string) string { return name + prevSuffix }

// IsPrimeName reports whether name already carries the next-state suffix.
func IsPrimeName(name string) bool { return strings.HasSuffix(name, primeSuffix) }

// TimedName is the forward time-indexed flavor: V@t.
func TimedName(name string, t int) string { return fmt.Sprintf("%s%s%d", name, timedSep, t) }

// PtimedName is the backward (pseudo-)time-indexed flavor: V#t.
func PtimedName(name string, t int) string { return fmt.Sprintf("%s%s%d", name, ptimedSep, t) }

// Prefix qualifies a base name with a component prefix, used by the
// equivalence miter to disambiguate the two systems being compared
// (sys1.V, sys2.V).
func Prefix(name, prefix string) string { return prefix + name }
