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

// Package formula implements the symbolic variable and expression layer the
// BMC engine operates over: the SMT-LIB QF_ABV family (Boolean, bitvector,
// and bitvector-indexed-by-bitvector arrays), plus the deterministic name
// transforms that give every symbolic variable its current/next/previous
// and time-indexed flavors.
package formula

import "fmt"

// SortKind is the tag of a Sort.
type SortKind int

const (
	SortBool SortKind = iota
	SortBV
	SortArray
)

// Sort is the type of a symbolic variable or expression: Bool, a
// fixed-width bitvector, or an array of bitvector-indexed bitvectors.
type Sort struct {
	Kind       SortKind
	Width      int // meaningful for SortBV
	IndexWidth int // meaningful for SortArray
	ElemWidth  int // meaningful for SortArray
}

// BoolSort returns the Boolean sort.
func BoolSort() Sort { return Sort{Kind: SortBool} }

// BVSort returns a fixed-width bitvector sort.
func BVSort(width int) Sort { return Sort{Kind: SortBV, Width: width} }

// ArraySort returns an array sort indexed and valued by bitvectors.
func ArraySort(indexWidth, elemWidth int) Sort {
	return Sort{Kind: SortArray, IndexWidth: indexWidth, ElemWidth: elemWidth}
}

func (s Sort) String() string {
	switch s.Kind {
	case SortBool:
		return "Bool"
	case SortBV:
		return fmt.Sprintf("(_ BitVec %d)", s.Width)
	case SortArray:
		return fmt.Sprintf("(Array (_ BitVec %d) (_ BitVec %d))", s.IndexWidth, s.ElemWidth)
	default:
		return "?"
	}
}

func (s Sort) Equal(o Sort) bool {
	return s.Kind == o.Kind && s.Width == o.Width && s.IndexWidth == o.IndexWidth && s.ElemWidth == o.ElemWidth
}
