package bitcode

import "tagcore/internal/width"

// FloatIntrinsic fills the three float slots with base + ".f32" etc.
func FloatIntrinsic(base string) IntrinsicName {
	var out IntrinsicName
	for _, w := range width.FloatWidths() {
		out.Options[floatSlot(w)] = base + "." + w.TypeName()
	}
	return out
}

// IntIntrinsic fills the ten integer slots with base + ".u8" ... ".i128".
// Both families share the one runtime name; only the suffix differs.
func IntIntrinsic(base string) IntrinsicName {
	var out IntrinsicName
	for _, w := range width.IntWidths() {
		out.Options[intSlot(w)] = base + "." + w.TypeName()
	}
	return out
}

// LLVMIntIntrinsic fills the integer slots the way LLVM names its
// intrinsics: the type suffix is ".i8" ... ".i128" for both families because
// LLVM integer types carry no sign, so signedness lives in the base name.
func LLVMIntIntrinsic(signed, unsigned string) IntrinsicName {
	var out IntrinsicName
	for _, w := range width.IntWidths() {
		base := unsigned
		if w.IsSigned() {
			base = signed
		}
		out.Options[intSlot(w)] = base + "." + llvmIntType(w)
	}
	return out
}

func llvmIntType(w width.IntWidth) string {
	return w.Signed().TypeName()
}
