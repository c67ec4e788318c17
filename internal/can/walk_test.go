package can

import (
	"errors"
	"testing"

	"tagcore/internal/types"
)

func TestWalkVisitsEveryNode(t *testing.T) {
	d := BuiltinDefs(types.NewVarStore())[3]
	counts := map[string]int{}
	Walk(d.Expr.Value, func(e Expr) bool {
		switch e.(type) {
		case *Closure:
			counts["closure"]++
		case *If:
			counts["if"]++
		case *Call:
			counts["call"]++
		case *Var:
			counts["var"]++
		case *Int:
			counts["int"]++
		case *Tag:
			counts["tag"]++
		}
		return true
	})
	// \n -> if Int.isLt 0 n then n else Num.neg n
	want := map[string]int{"closure": 1, "if": 1, "call": 2, "var": 5, "int": 1}
	for k, v := range want {
		if counts[k] != v {
			t.Fatalf("%s: got %d, want %d (all=%v)", k, counts[k], v, counts)
		}
	}
}

func TestWalkPrune(t *testing.T) {
	d := BuiltinDefs(types.NewVarStore())[0]
	visited := 0
	Walk(d.Expr.Value, func(e Expr) bool {
		visited++
		_, isClosure := e.(*Closure)
		return !isClosure
	})
	if visited != 1 {
		t.Fatalf("expected pruning at the closure, visited %d", visited)
	}
}

func TestCheckVariablesReportsDuplicate(t *testing.T) {
	store := types.NewVarStore()
	d := BuiltinDefs(store)[3]
	c := d.Expr.Value.(*Closure)
	c.ReturnVar = c.FunctionVar

	_, err := CheckVariables([]Def{d})
	var dup *DuplicateVariableError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateVariableError, got %v", err)
	}
	if dup.Var != c.FunctionVar {
		t.Fatalf("duplicate reported for %v, want %v", dup.Var, c.FunctionVar)
	}
}

func TestCheckVariablesRejectsNoVariable(t *testing.T) {
	d := BuiltinDefs(types.NewVarStore())[1]
	d.ExprVar = types.NoVariable
	if _, err := CheckVariables([]Def{d}); err == nil {
		t.Fatalf("expected error for NoVariable")
	}
}
