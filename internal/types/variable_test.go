package types

import "testing"

func TestVarStoreIsMonotonic(t *testing.T) {
	s := NewVarStore()
	seen := make(map[Variable]struct{})
	prev := NoVariable
	for i := 0; i < 1000; i++ {
		v := s.Fresh()
		if v == NoVariable {
			t.Fatalf("Fresh returned NoVariable")
		}
		if v <= prev {
			t.Fatalf("variables must increase: %v after %v", v, prev)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate variable %v", v)
		}
		seen[v] = struct{}{}
		prev = v
	}
	if s.Count() != 1000 {
		t.Fatalf("Count = %d, want 1000", s.Count())
	}
}

func TestVarStoreFromOffset(t *testing.T) {
	s := NewVarStoreFrom(100)
	if got := s.Peek(); got != 100 {
		t.Fatalf("Peek = %v, want 100", got)
	}
	if got := s.Fresh(); got != 100 {
		t.Fatalf("Fresh = %v, want 100", got)
	}
	if s.Count() != 1 {
		t.Fatalf("Count = %d, want 1", s.Count())
	}
	if NewVarStoreFrom(NoVariable).Peek() != 1 {
		t.Fatalf("zero start must be bumped to 1")
	}
}

func TestIndependentStoresDoNotShareState(t *testing.T) {
	a, b := NewVarStore(), NewVarStore()
	a.Fresh()
	a.Fresh()
	if b.Fresh() != 1 {
		t.Fatalf("stores must be independent")
	}
}
