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

package solver

import (
	"fmt"

	"github.com/gorse-io/bmc/internal/formula"
)

// TranslationError is returned when a formula or sort cannot be rendered
// as SMT-LIB — it fires for a bitvector of non-positive width or an array
// whose index or element width is non-positive, since formula.Sort only
// ever constructs the three QF_ABV sorts.
type TranslationError struct {
	Detail string
}

func (e *TranslationError) Error() string { return "smtlib: " + e.Detail }

// declareFun renders a (declare-fun name () sort) line.
func declareFun(v *formula.Var) (string, error) {
	if v.Sort.Kind == formula.SortBV && v.Sort.Width <= 0 {
		return "", &TranslationError{Detail: fmt.Sprintf("variable %q has non-positive bitvector width", v.Name)}
	}
	if v.Sort.Kind == formula.SortArray && (v.Sort.IndexWidth <= 0 || v.Sort.ElemWidth <= 0) {
		return "", &TranslationError{Detail: fmt.Sprintf("variable %q has non-positive array sort width", v.Name)}
	}
	return fmt.Sprintf("(declare-fun %s () %s)", v.Name, v.Sort.String()), nil
}

// print renders e as an SMT-LIB s-expression.
func print(e *formula.Expr) string {
	switch e.Kind {
	case formula.KBoolConst:
		if e.BoolVal {
			return "true"
		}
		return "false"
	case formula.KBVConst:
		return fmt.Sprintf("(_ bv%s %d)", e.BVVal.String(), e.BVWidth)
	case formula.KVar:
		return e.Var.Name
	case formula.KNot:
		return fmt.Sprintf("(not %s)", print(e.Args[0]))
	case formula.KAnd:
		return printNary("and", e.Args)
	case formula.KOr:
		return printNary("or", e.Args)
	case formula.KImplies:
		return fmt.Sprintf("(=> %s %s)", print(e.Args[0]), print(e.Args[1]))
	case formula.KIff:
		return fmt.Sprintf("(= %s %s)", print(e.Args[0]), print(e.Args[1]))
	case formula.KEquals:
		return fmt.Sprintf("(= %s %s)", print(e.Args[0]), print(e.Args[1]))
	case formula.KApply:
		return printNary(e.Op, e.Args)
	default:
		return "?"
	}
}

func printNary(op string, args []*formula.Expr) string {
	s := "(" + op
	for _, a := range args {
		s += " " + print(a)
	}
	return s + ")"
}
