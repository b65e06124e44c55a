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
	"math/big"
)

// Eval evaluates e to a constant given a total assignment env of every
// free variable to a constant. It exists for the brute-force test engine
// (internal/solver/solvertest) that stands in for the real, opaque SMT
// solver in unit tests — it is not used by the production search loops,
// which only ever ask the solver façade.
func Eval(e *Expr, env map[string]*Expr) (*Expr, error) {
	switch e.Kind {
	case KBoolConst, KBVConst:
		return e, nil
	case KVar:
		v, ok := env[e.Var.Name]
		if !ok {
			return nil, fmt.Errorf("eval: unbound variable %q", e.Var.Name)
		}
		return v, nil
	case KNot:
		a, err := Eval(e.Args[0], env)
		if err != nil {
			return nil, err
		}
		return Bool(!a.BoolVal), nil
	case KAnd:
		for _, arg := range e.Args {
			v, err := Eval(arg, env)
			if err != nil {
				return nil, err
			}
			if !v.BoolVal {
				return FALSE(), nil
			}
		}
		return TRUE(), nil
	case KOr:
		for _, arg := range e.Args {
			v, err := Eval(arg, env)
			if err != nil {
				return nil, err
			}
			if v.BoolVal {
				return TRUE(), nil
			}
		}
		return FALSE(), nil
	case KImplies:
		a, err := Eval(e.Args[0], env)
		if err != nil {
			return nil, err
		}
		if !a.BoolVal {
			return TRUE(), nil
		}
		return Eval(e.Args[1], env)
	case KIff:
		a, err := Eval(e.Args[0], env)
		if err != nil {
			return nil, err
		}
		b, err := Eval(e.Args[1], env)
		if err != nil {
			return nil, err
		}
		return Bool(a.BoolVal == b.BoolVal), nil
	case KEquals:
		a, err := Eval(e.Args[0], env)
		if err != nil {
			return nil, err
		}
		b, err := Eval(e.Args[1], env)
		if err != nil {
			return nil, err
		}
		return Bool(valueEqual(a, b)), nil
	case KApply:
		args := make([]*Expr, len(e.Args))
		for i, a := range e.Args {
			v, err := Eval(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return applyOp(e.Op, e.ResultSort, args)
	default:
		return nil, fmt.Errorf("eval: unsupported expression kind %d", e.Kind)
	}
}

func valueEqual(a, b *Expr) bool {
	if a.Kind == KBoolConst && b.Kind == KBoolConst {
		return a.BoolVal == b.BoolVal
	}
	if a.Kind == KBVConst && b.Kind == KBVConst {
		return a.BVVal.Cmp(b.BVVal) == 0
	}
	return false
}

func applyOp(op string, result Sort, args []*Expr) (*Expr, error) {
	mask := bvMask(result.Width)
	switch op {
	case "bvadd":
		v := new(big.Int).Add(args[0].BVVal, args[1].BVVal)
		v.And(v, mask)
		return &Expr{Kind: KBVConst, BVVal: v, BVWidth: result.Width}, nil
	case "bvnot":
		v := new(big.Int).Not(args[0].BVVal)
		v.And(v, mask)
		return &Expr{Kind: KBVConst, BVVal: v, BVWidth: result.Width}, nil
	default:
		return nil, fmt.Errorf("eval: unsupported operator %q", op)
	}
}

func bvMask(width int) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
}
