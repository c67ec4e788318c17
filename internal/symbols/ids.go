package symbols

import "fmt"

// ModuleID identifies the builtin module that owns a symbol.
type ModuleID uint8

const (
	// NoModuleID marks the absence of an owning module.
	NoModuleID ModuleID = iota
	ModuleNum
	ModuleInt
	ModuleList
)

func (m ModuleID) String() string {
	switch m {
	case ModuleNum:
		return "Num"
	case ModuleInt:
		return "Int"
	case ModuleList:
		return "List"
	default:
		return fmt.Sprintf("Module(%d)", m)
	}
}

// Symbol identifies a well-known builtin binding. Symbols are plain integers so
// they can be compared, hashed and switched on without touching the name table.
type Symbol uint32

const (
	// NoSymbol marks the absence of a symbol reference.
	NoSymbol Symbol = 0
)

// IsValid reports whether the symbol refers to a catalogued binding.
func (s Symbol) IsValid() bool { return s != NoSymbol && int(s) < len(catalog) }
