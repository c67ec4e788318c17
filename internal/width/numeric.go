package width

import (
	"fmt"

	"tagcore/internal/symbols"
	"tagcore/internal/target"
)

// Numeric is either an integer or a float width, as resolved from a type
// symbol at a call site.
type Numeric struct {
	Int     IntWidth
	Float   FloatWidth
	IsFloat bool
}

// TryFromSymbol resolves any fixed-width numeric type symbol.
func TryFromSymbol(sym symbols.Symbol) (Numeric, bool) {
	if w, ok := IntWidthFromSymbol(sym); ok {
		return Numeric{Int: w}, true
	}
	if w, ok := FloatWidthFromSymbol(sym); ok {
		return Numeric{Float: w, IsFloat: true}, true
	}
	return Numeric{}, false
}

// Parse accepts "u8".."i128" and "f32".."f128".
func Parse(s string) (Numeric, error) {
	if w, err := ParseIntWidth(s); err == nil {
		return Numeric{Int: w}, nil
	}
	if w, err := ParseFloatWidth(s); err == nil {
		return Numeric{Float: w, IsFloat: true}, nil
	}
	return Numeric{}, fmt.Errorf("unknown numeric width %q", s)
}

// StackSize returns the size of the numeric in bytes.
func (n Numeric) StackSize() uint32 {
	if n.IsFloat {
		return n.Float.StackSize()
	}
	return n.Int.StackSize()
}

// AlignmentBytes returns the alignment of the numeric on info.
func (n Numeric) AlignmentBytes(info target.Info) uint32 {
	if n.IsFloat {
		return n.Float.AlignmentBytes(info)
	}
	return n.Int.AlignmentBytes(info)
}

// TypeName returns the lowercase type name.
func (n Numeric) TypeName() string {
	if n.IsFloat {
		return n.Float.TypeName()
	}
	return n.Int.TypeName()
}

func (n Numeric) String() string { return n.TypeName() }

// All returns every fixed-width numeric, floats first.
func All() []Numeric {
	out := make([]Numeric, 0, 3+IntWidthCount)
	for _, w := range FloatWidths() {
		out = append(out, Numeric{Float: w, IsFloat: true})
	}
	for _, w := range IntWidths() {
		out = append(out, Numeric{Int: w})
	}
	return out
}
