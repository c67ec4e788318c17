package can

import (
	"fmt"
	"maps"
	"slices"

	"tagcore/internal/types"
)

// Walk visits e and every expression below it in source order. Returning
// false from fn skips the children of that node.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch x := e.(type) {
	case *Var, *Int:
	case *Call:
		Walk(x.Fn.Value, fn)
		for _, a := range x.Args {
			Walk(a.Value.Value, fn)
		}
	case *Tag:
		for _, a := range x.Args {
			Walk(a.Value.Value, fn)
		}
	case *If:
		for _, br := range x.Branches {
			Walk(br.Cond.Value, fn)
			Walk(br.Then.Value, fn)
		}
		Walk(x.FinalElse.Value, fn)
	case *Closure:
		Walk(x.Body.Value, fn)
	default:
		panic(fmt.Sprintf("can: unexpected expression %T", e))
	}
}

// Variables lists every type variable a definition mentions, once per
// syntactic slot, in source order. A well-formed def never lists the same
// variable twice.
func Variables(d Def) []types.Variable {
	out := []types.Variable{d.ExprVar}
	out = append(out, slices.Sorted(maps.Values(d.PatternVars))...)
	Walk(d.Expr.Value, func(e Expr) bool {
		out = appendExprVars(out, e)
		return true
	})
	return out
}

func appendExprVars(out []types.Variable, e Expr) []types.Variable {
	switch x := e.(type) {
	case *Var:
	case *Int:
		out = append(out, x.Var)
	case *Call:
		out = append(out, x.FnVar, x.RetVar)
		for _, a := range x.Args {
			out = append(out, a.Var)
		}
	case *Tag:
		out = append(out, x.VariantVar, x.ExtVar)
		for _, a := range x.Args {
			out = append(out, a.Var)
		}
	case *If:
		out = append(out, x.CondVar, x.BranchVar)
	case *Closure:
		out = append(out, x.FunctionVar, x.ReturnVar)
		for _, a := range x.Args {
			out = append(out, a.Var)
		}
	}
	return out
}

// DuplicateVariableError reports a type variable reused across two slots.
type DuplicateVariableError struct {
	Var types.Variable
}

func (e *DuplicateVariableError) Error() string {
	return fmt.Sprintf("type variable %v is used by more than one syntactic position", e.Var)
}

// CheckVariables verifies that no variable occurs twice across defs and
// that none is NoVariable. It returns the number of distinct variables.
func CheckVariables(defs []Def) (int, error) {
	seen := make(map[types.Variable]struct{}, 64)
	for _, d := range defs {
		for _, v := range Variables(d) {
			if v == types.NoVariable {
				return len(seen), fmt.Errorf("definition uses NoVariable")
			}
			if _, dup := seen[v]; dup {
				return len(seen), &DuplicateVariableError{Var: v}
			}
			seen[v] = struct{}{}
		}
	}
	return len(seen), nil
}
