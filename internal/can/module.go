package can

import (
	"fmt"
	"slices"

	"tagcore/internal/symbols"
	"tagcore/internal/types"
)

// Module is the canonical form of one compilation unit.
type Module struct {
	Name string
	Defs []Def
}

// MergeErrorKind enumerates reasons builtins cannot be merged.
type MergeErrorKind uint8

const (
	// MergeErrShadowsBuiltin means a user def already binds a builtin symbol.
	MergeErrShadowsBuiltin MergeErrorKind = iota + 1
	MergeErrAlreadyMerged
)

// MergeError reports why MergeBuiltins refused a module.
type MergeError struct {
	Kind   MergeErrorKind
	Module string
	Symbol symbols.Symbol
}

func (e *MergeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case MergeErrShadowsBuiltin:
		return fmt.Sprintf("module %s: definition of %s shadows a builtin", e.Module, e.Symbol)
	case MergeErrAlreadyMerged:
		return fmt.Sprintf("module %s: builtins already merged", e.Module)
	default:
		return fmt.Sprintf("module %s: merge error kind=%d", e.Module, e.Kind)
	}
}

// MergeBuiltins prepends the builtin definitions to the module so inference
// sees them as ordinary code. It must run before inference and must use the
// same store the rest of the module allocates from.
func (m *Module) MergeBuiltins(vars *types.VarStore) error {
	builtin := BuiltinSymbols()
	if m.hasPrefix(builtin) {
		return &MergeError{Kind: MergeErrAlreadyMerged, Module: m.Name}
	}
	for i := range m.Defs {
		sym, ok := m.Defs[i].Symbol()
		if ok && slices.Contains(builtin, sym) {
			return &MergeError{Kind: MergeErrShadowsBuiltin, Module: m.Name, Symbol: sym}
		}
	}
	m.Defs = append(BuiltinDefs(vars), m.Defs...)
	return nil
}

func (m *Module) hasPrefix(syms []symbols.Symbol) bool {
	if len(m.Defs) < len(syms) {
		return false
	}
	for i, want := range syms {
		if got, ok := m.Defs[i].Symbol(); !ok || got != want {
			return false
		}
	}
	return true
}

// Lookup returns the definition binding sym.
func (m *Module) Lookup(sym symbols.Symbol) (*Def, bool) {
	for i := range m.Defs {
		if s, ok := m.Defs[i].Symbol(); ok && s == sym {
			return &m.Defs[i], true
		}
	}
	return nil, false
}
