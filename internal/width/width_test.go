package width

import (
	"testing"

	"tagcore/internal/symbols"
	"tagcore/internal/target"
)

func TestIntStackSizeMatchesBits(t *testing.T) {
	wantBits := map[IntWidth]uint32{
		U8: 8, U16: 16, U32: 32, U64: 64, U128: 128,
		I8: 8, I16: 16, I32: 32, I64: 64, I128: 128,
	}
	for _, w := range IntWidths() {
		size := w.StackSize()
		switch size {
		case 1, 2, 4, 8, 16:
		default:
			t.Fatalf("%v: unexpected stack size %d", w, size)
		}
		if size != wantBits[w]/8 {
			t.Fatalf("%v: stack size %d, want %d", w, size, wantBits[w]/8)
		}
		if w.Bits() != wantBits[w] {
			t.Fatalf("%v: bits %d, want %d", w, w.Bits(), wantBits[w])
		}
	}
}

func TestFloatStackSize(t *testing.T) {
	want := map[FloatWidth]uint32{F32: 4, F64: 8, F128: 16}
	for _, w := range FloatWidths() {
		if got := w.StackSize(); got != want[w] {
			t.Fatalf("%v: stack size %d, want %d", w, got, want[w])
		}
	}
}

func TestEightByteAlignmentDependsOnArchitecture(t *testing.T) {
	for _, arch := range target.All() {
		info := target.Info{Architecture: arch}
		want := uint32(8)
		if arch == target.X86_32 {
			want = 4
		}
		for _, w := range []IntWidth{U64, I64} {
			if got := w.AlignmentBytes(info); got != want {
				t.Fatalf("%v on %v: alignment %d, want %d", w, arch, got, want)
			}
		}
		if got := F64.AlignmentBytes(info); got != want {
			t.Fatalf("f64 on %v: alignment %d, want %d", arch, got, want)
		}
	}
}

func TestOtherWidthsAlignToStackSize(t *testing.T) {
	for _, arch := range target.All() {
		info := target.Info{Architecture: arch}
		for _, w := range IntWidths() {
			if w.StackSize() == 8 {
				continue
			}
			if w.AlignmentBytes(info) != w.StackSize() {
				t.Fatalf("%v on %v: alignment %d != size %d", w, arch, w.AlignmentBytes(info), w.StackSize())
			}
		}
		for _, w := range []FloatWidth{F32, F128} {
			if w.AlignmentBytes(info) != w.StackSize() {
				t.Fatalf("%v on %v: alignment %d != size %d", w, arch, w.AlignmentBytes(info), w.StackSize())
			}
		}
	}
}

func TestAlignmentPanicsOnUnknownArchitecture(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for an unhandled architecture")
		}
	}()
	U64.AlignmentBytes(target.Info{})
}

func TestIsSigned(t *testing.T) {
	for _, w := range IntWidths() {
		want := w >= I8
		if w.IsSigned() != want {
			t.Fatalf("%v: IsSigned = %v", w, w.IsSigned())
		}
		if w.Signed().StackSize() != w.StackSize() || w.Unsigned().StackSize() != w.StackSize() {
			t.Fatalf("%v: sign flip changed size", w)
		}
		if !w.Signed().IsSigned() || w.Unsigned().IsSigned() {
			t.Fatalf("%v: Signed/Unsigned mismatch", w)
		}
	}
}

func TestTryFromSymbolAliasesAgree(t *testing.T) {
	families := []struct {
		syms []symbols.Symbol
		want Numeric
	}{
		{[]symbols.Symbol{symbols.NumF64, symbols.NumBinary64, symbols.NumAtBinary64}, Numeric{Float: F64, IsFloat: true}},
		{[]symbols.Symbol{symbols.NumF32, symbols.NumBinary32, symbols.NumAtBinary32}, Numeric{Float: F32, IsFloat: true}},
		{[]symbols.Symbol{symbols.NumI128, symbols.NumSigned128, symbols.NumAtSigned128}, Numeric{Int: I128}},
		{[]symbols.Symbol{symbols.NumI64, symbols.NumSigned64, symbols.NumAtSigned64}, Numeric{Int: I64}},
		{[]symbols.Symbol{symbols.NumI32, symbols.NumSigned32, symbols.NumAtSigned32}, Numeric{Int: I32}},
		{[]symbols.Symbol{symbols.NumI16, symbols.NumSigned16, symbols.NumAtSigned16}, Numeric{Int: I16}},
		{[]symbols.Symbol{symbols.NumI8, symbols.NumSigned8, symbols.NumAtSigned8}, Numeric{Int: I8}},
		{[]symbols.Symbol{symbols.NumU128, symbols.NumUnsigned128, symbols.NumAtUnsigned128}, Numeric{Int: U128}},
		{[]symbols.Symbol{symbols.NumU64, symbols.NumUnsigned64, symbols.NumAtUnsigned64}, Numeric{Int: U64}},
		{[]symbols.Symbol{symbols.NumU32, symbols.NumUnsigned32, symbols.NumAtUnsigned32}, Numeric{Int: U32}},
		{[]symbols.Symbol{symbols.NumU16, symbols.NumUnsigned16, symbols.NumAtUnsigned16}, Numeric{Int: U16}},
		{[]symbols.Symbol{symbols.NumU8, symbols.NumUnsigned8, symbols.NumAtUnsigned8}, Numeric{Int: U8}},
	}
	for _, fam := range families {
		for _, sym := range fam.syms {
			got, ok := TryFromSymbol(sym)
			if !ok || got != fam.want {
				t.Fatalf("TryFromSymbol(%v) = %v,%v want %v", sym, got, ok, fam.want)
			}
		}
	}
}

func TestTryFromSymbolIsTotal(t *testing.T) {
	for _, sym := range append(symbols.All(), symbols.NoSymbol) {
		TryFromSymbol(sym)
	}
	for _, sym := range []symbols.Symbol{symbols.NumDec, symbols.ListGet, symbols.NoSymbol} {
		if _, ok := TryFromSymbol(sym); ok {
			t.Fatalf("%v must not resolve to a width", sym)
		}
	}
}

func TestParse(t *testing.T) {
	for _, n := range All() {
		got, err := Parse(n.TypeName())
		if err != nil || got != n {
			t.Fatalf("Parse(%q) = %v,%v", n.TypeName(), got, err)
		}
	}
	if _, err := Parse("i7"); err == nil {
		t.Fatalf("expected error for i7")
	}
}
