package width

import (
	"fmt"

	"tagcore/internal/symbols"
	"tagcore/internal/target"
)

// IntWidth is the bit width and signedness of a fixed-size integer.
// The ordinal order (unsigned ascending, then signed ascending) is relied on
// by the intrinsic tables.
type IntWidth uint8

const (
	U8 IntWidth = iota
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128
)

// IntWidthCount is the number of integer widths.
const IntWidthCount = 10

// IntWidths returns every integer width in ordinal order.
func IntWidths() []IntWidth {
	return []IntWidth{U8, U16, U32, U64, U128, I8, I16, I32, I64, I128}
}

// Valid reports whether w is one of the declared widths.
func (w IntWidth) Valid() bool { return w <= I128 }

// IsSigned reports whether w is a signed width.
func (w IntWidth) IsSigned() bool {
	switch w {
	case I8, I16, I32, I64, I128:
		return true
	default:
		return false
	}
}

// StackSize returns the in-memory size of w in bytes.
func (w IntWidth) StackSize() uint32 {
	switch w {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32:
		return 4
	case U64, I64:
		return 8
	case U128, I128:
		return 16
	default:
		panic(fmt.Sprintf("width: invalid IntWidth %d", w))
	}
}

// Bits returns the bit count of w.
func (w IntWidth) Bits() uint32 { return w.StackSize() * 8 }

// AlignmentBytes returns the alignment of w on the given target. Only the
// 64-bit widths depend on the architecture.
func (w IntWidth) AlignmentBytes(info target.Info) uint32 {
	switch w {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32:
		return 4
	case U64, I64:
		return eightByteAlignment(info)
	case U128, I128:
		return 16
	default:
		panic(fmt.Sprintf("width: invalid IntWidth %d", w))
	}
}

// TypeName returns the lowercase type name used in intrinsic symbols.
func (w IntWidth) TypeName() string {
	switch w {
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I128:
		return "i128"
	default:
		return fmt.Sprintf("IntWidth(%d)", w)
	}
}

func (w IntWidth) String() string { return w.TypeName() }

// Unsigned returns the unsigned width with the same size as w.
func (w IntWidth) Unsigned() IntWidth {
	if w.IsSigned() {
		return w - I8
	}
	return w
}

// Signed returns the signed width with the same size as w.
func (w IntWidth) Signed() IntWidth {
	if w.IsSigned() {
		return w
	}
	return w + I8
}

// IntWidthFromSymbol maps a numeric type symbol to its integer width. The
// user-facing name, the long alias and the internal "@" name of a type all
// map to the same width.
func IntWidthFromSymbol(sym symbols.Symbol) (IntWidth, bool) {
	switch sym {
	case symbols.NumI128, symbols.NumSigned128, symbols.NumAtSigned128:
		return I128, true
	case symbols.NumI64, symbols.NumSigned64, symbols.NumAtSigned64:
		return I64, true
	case symbols.NumI32, symbols.NumSigned32, symbols.NumAtSigned32:
		return I32, true
	case symbols.NumI16, symbols.NumSigned16, symbols.NumAtSigned16:
		return I16, true
	case symbols.NumI8, symbols.NumSigned8, symbols.NumAtSigned8:
		return I8, true
	case symbols.NumU128, symbols.NumUnsigned128, symbols.NumAtUnsigned128:
		return U128, true
	case symbols.NumU64, symbols.NumUnsigned64, symbols.NumAtUnsigned64:
		return U64, true
	case symbols.NumU32, symbols.NumUnsigned32, symbols.NumAtUnsigned32:
		return U32, true
	case symbols.NumU16, symbols.NumUnsigned16, symbols.NumAtUnsigned16:
		return U16, true
	case symbols.NumU8, symbols.NumUnsigned8, symbols.NumAtUnsigned8:
		return U8, true
	default:
		return 0, false
	}
}

// ParseIntWidth parses a lowercase type name such as "i64".
func ParseIntWidth(s string) (IntWidth, error) {
	for _, w := range IntWidths() {
		if w.TypeName() == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown integer width %q", s)
}

// eightByteAlignment is the one place that knows 32-bit x86 aligns 64-bit
// scalars to 4 bytes.
func eightByteAlignment(info target.Info) uint32 {
	switch info.Architecture {
	case target.X86_64, target.Aarch64, target.Arm, target.Wasm32:
		return 8
	case target.X86_32:
		return 4
	default:
		panic(fmt.Sprintf("width: unhandled architecture %v", info.Architecture))
	}
}
