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

// Var is a symbolic variable: a name paired with a sort. Base names never
// carry the suffixes used by the name transforms in names.go (') (prime), ^
// (previous), @ or # (time-indexed) — that invariant is the caller's
// responsibility, the same way CoSA's encoders never hand a timed symbol
// back to a name transform.
type Var struct {
	Name string
	Sort Sort
}
