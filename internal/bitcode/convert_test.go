package bitcode

import (
	"testing"

	"tagcore/internal/width"
)

func TestConversionTableNaming(t *testing.T) {
	for _, dst := range width.IntWidths() {
		for _, src := range width.IntWidths() {
			name, err := NumIntToIntCheckingMax.Resolve(src, dst)
			if err != nil {
				t.Fatalf("%v->%v: %v", src, dst, err)
			}
			want := "roc_builtins.num.int_to_" + dst.TypeName() + "_checking_max." + src.TypeName()
			if name != want {
				t.Fatalf("%v->%v: got %q, want %q", src, dst, name, want)
			}
			name, err = NumIntToIntCheckingMaxAndMin.Resolve(src, dst)
			if err != nil {
				t.Fatalf("%v->%v: %v", src, dst, err)
			}
			want = "roc_builtins.num.int_to_" + dst.TypeName() + "_checking_max_and_min." + src.TypeName()
			if name != want {
				t.Fatalf("%v->%v: got %q, want %q", src, dst, name, want)
			}
		}
	}
}

func TestConversionTableHasNoCollisions(t *testing.T) {
	seen := make(map[string]struct{})
	for _, table := range []IntToIntrinsicName{NumIntToIntCheckingMax, NumIntToIntCheckingMaxAndMin} {
		for _, dst := range table.Options {
			for _, name := range dst.Options {
				if name == "" {
					continue
				}
				if _, dup := seen[name]; dup {
					t.Fatalf("duplicate conversion name %q", name)
				}
				seen[name] = struct{}{}
			}
		}
	}
	if len(seen) != 2*width.IntWidthCount*width.IntWidthCount {
		t.Fatalf("expected %d names, got %d", 2*width.IntWidthCount*width.IntWidthCount, len(seen))
	}
}

func TestConversionCheckFor(t *testing.T) {
	cases := []struct {
		src, dst width.IntWidth
		want     ConversionCheck
	}{
		{width.U8, width.U64, ConversionLossless},
		{width.I8, width.I64, ConversionLossless},
		{width.U8, width.I16, ConversionLossless},
		{width.U64, width.U64, ConversionLossless},
		{width.U64, width.U8, ConversionCheckMax},
		{width.U8, width.I8, ConversionCheckMax},
		{width.U64, width.I64, ConversionCheckMax},
		{width.I64, width.I8, ConversionCheckMaxAndMin},
		{width.I8, width.U64, ConversionCheckMaxAndMin},
		{width.I128, width.U8, ConversionCheckMaxAndMin},
	}
	for _, tc := range cases {
		if got := ConversionCheckFor(tc.src, tc.dst); got != tc.want {
			t.Fatalf("%v->%v: got %v, want %v", tc.src, tc.dst, got, tc.want)
		}
	}
}

func TestCheckedConversionPicksTable(t *testing.T) {
	name, check, err := CheckedConversion(width.U64, width.U8)
	if err != nil || check != ConversionCheckMax || name != "roc_builtins.num.int_to_u8_checking_max.u64" {
		t.Fatalf("u64->u8: %q %v %v", name, check, err)
	}
	name, check, err = CheckedConversion(width.I32, width.U16)
	if err != nil || check != ConversionCheckMaxAndMin || name != "roc_builtins.num.int_to_u16_checking_max_and_min.i32" {
		t.Fatalf("i32->u16: %q %v %v", name, check, err)
	}
	name, check, err = CheckedConversion(width.U16, width.U32)
	if err != nil || check != ConversionLossless || name != "" {
		t.Fatalf("u16->u32: %q %v %v", name, check, err)
	}
	if _, err := NumIntToIntCheckingMax.Resolve(width.U8, width.IntWidth(42)); err == nil {
		t.Fatalf("invalid destination must fail")
	}
}
