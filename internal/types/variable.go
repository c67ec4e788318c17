package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Variable identifies a type variable awaiting unification.
type Variable uint32

// NoVariable marks the absence of a type variable.
const NoVariable Variable = 0

func (v Variable) String() string {
	return fmt.Sprintf("'%d", uint32(v))
}

// VarStore hands out fresh type variables for one module's compilation.
//
// Variables are allocated from a monotonically increasing counter, so two
// calls to Fresh never return the same value. A VarStore is not safe for
// concurrent use: modules compiled in parallel must each own their own store.
type VarStore struct {
	next  Variable
	first Variable
}

// NewVarStore returns a store whose first variable is 1.
func NewVarStore() *VarStore {
	return NewVarStoreFrom(1)
}

// NewVarStoreFrom returns a store starting at first. Callers that reserve a
// prefix of variables for builtin types start after it.
func NewVarStoreFrom(first Variable) *VarStore {
	if first == NoVariable {
		first = 1
	}
	return &VarStore{next: first, first: first}
}

// Fresh allocates a new type variable.
func (s *VarStore) Fresh() Variable {
	v := s.next
	if v == ^Variable(0) {
		panic("types: type variable space exhausted")
	}
	s.next++
	return v
}

// Peek returns the variable the next call to Fresh will return.
func (s *VarStore) Peek() Variable {
	return s.next
}

// Count returns how many variables have been allocated so far.
func (s *VarStore) Count() int {
	n, err := safecast.Conv[int](uint32(s.next - s.first))
	if err != nil {
		panic(fmt.Errorf("types: variable count overflow: %w", err))
	}
	return n
}
