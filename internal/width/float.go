package width

import (
	"fmt"

	"tagcore/internal/symbols"
	"tagcore/internal/target"
)

// FloatWidth is the precision of a binary floating-point number.
type FloatWidth uint8

const (
	F32 FloatWidth = iota
	F64
	F128
)

// FloatWidths returns every float width in ordinal order.
func FloatWidths() []FloatWidth {
	return []FloatWidth{F32, F64, F128}
}

// Valid reports whether w is one of the declared widths.
func (w FloatWidth) Valid() bool { return w <= F128 }

// StackSize returns the in-memory size of w in bytes.
func (w FloatWidth) StackSize() uint32 {
	switch w {
	case F32:
		return 4
	case F64:
		return 8
	case F128:
		return 16
	default:
		panic(fmt.Sprintf("width: invalid FloatWidth %d", w))
	}
}

// AlignmentBytes returns the alignment of w on the given target.
func (w FloatWidth) AlignmentBytes(info target.Info) uint32 {
	switch w {
	case F32:
		return 4
	case F64:
		return eightByteAlignment(info)
	case F128:
		return 16
	default:
		panic(fmt.Sprintf("width: invalid FloatWidth %d", w))
	}
}

// TypeName returns the lowercase type name used in intrinsic symbols.
func (w FloatWidth) TypeName() string {
	switch w {
	case F32:
		return "f32"
	case F64:
		return "f64"
	case F128:
		return "f128"
	default:
		return fmt.Sprintf("FloatWidth(%d)", w)
	}
}

func (w FloatWidth) String() string { return w.TypeName() }

// FloatWidthFromSymbol maps a numeric type symbol to its float width.
// F128 has no language-level spelling.
func FloatWidthFromSymbol(sym symbols.Symbol) (FloatWidth, bool) {
	switch sym {
	case symbols.NumF64, symbols.NumBinary64, symbols.NumAtBinary64:
		return F64, true
	case symbols.NumF32, symbols.NumBinary32, symbols.NumAtBinary32:
		return F32, true
	default:
		return 0, false
	}
}

// ParseFloatWidth parses a lowercase type name such as "f64".
func ParseFloatWidth(s string) (FloatWidth, error) {
	for _, w := range FloatWidths() {
		if w.TypeName() == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown float width %q", s)
}

// DecWidth is the single fixed-point decimal width.
type DecWidth uint8

const (
	Dec DecWidth = iota
)
