package bitcode

import "tagcore/internal/width"

// IntToIntrinsicName holds the checked integer conversions of one checking
// mode. The outer index is the destination width; each entry is an integer
// table keyed by the source width, so
//
//	t.Options[dst].Int(src)
//
// names the function converting a src value into dst.
type IntToIntrinsicName struct {
	Options [width.IntWidthCount]IntrinsicName
}

// IntToIntIntrinsic builds a conversion table whose per-destination base
// name is prefix + dst.TypeName() + suffix.
func IntToIntIntrinsic(prefix, suffix string) IntToIntrinsicName {
	var out IntToIntrinsicName
	for _, dst := range width.IntWidths() {
		out.Options[dst] = IntIntrinsic(prefix + dst.TypeName() + suffix)
	}
	return out
}

// ForDestination returns the source-keyed table converting into dst.
func (t IntToIntrinsicName) ForDestination(dst width.IntWidth) (IntrinsicName, error) {
	if !dst.Valid() {
		return IntrinsicName{}, &LookupError{Kind: LookupErrInvalidWidth, Width: dst.TypeName()}
	}
	return t.Options[dst], nil
}

// Resolve returns the symbol converting a src value into dst.
func (t IntToIntrinsicName) Resolve(src, dst width.IntWidth) (string, error) {
	table, err := t.ForDestination(dst)
	if err != nil {
		return "", err
	}
	name, err := table.Int(src)
	if err != nil {
		return "", withOp(err, "int_to_"+dst.TypeName())
	}
	return name, nil
}

const (
	intToIntPrefix          = Namespace + ".num.int_to_"
	checkingMaxSuffix       = "_checking_max"
	checkingMaxAndMinSuffix = "_checking_max_and_min"
)

// Checked conversion tables.
var (
	NumIntToIntCheckingMax       = IntToIntIntrinsic(intToIntPrefix, checkingMaxSuffix)
	NumIntToIntCheckingMaxAndMin = IntToIntIntrinsic(intToIntPrefix, checkingMaxAndMinSuffix)
)

// ConversionCheck says which bounds a conversion must verify at runtime.
type ConversionCheck uint8

const (
	// ConversionLossless needs no check: every source value fits.
	ConversionLossless ConversionCheck = iota
	// ConversionCheckMax needs only an upper-bound check.
	ConversionCheckMax
	// ConversionCheckMaxAndMin needs both bounds checked.
	ConversionCheckMaxAndMin
)

func (c ConversionCheck) String() string {
	switch c {
	case ConversionLossless:
		return "lossless"
	case ConversionCheckMax:
		return "checking_max"
	case ConversionCheckMaxAndMin:
		return "checking_max_and_min"
	default:
		return "unknown"
	}
}

// ConversionCheckFor classifies converting src into dst.
//
// Unsigned sources are never below zero, so only the upper bound can fail.
// Signed sources may be negative, and there is no min-only table, so any
// lossy conversion from a signed source checks both bounds.
func ConversionCheckFor(src, dst width.IntWidth) ConversionCheck {
	switch {
	case src.IsSigned() == dst.IsSigned() && dst.Bits() >= src.Bits():
		return ConversionLossless
	case !src.IsSigned() && dst.IsSigned() && dst.Bits() > src.Bits():
		return ConversionLossless
	case !src.IsSigned():
		return ConversionCheckMax
	default:
		return ConversionCheckMaxAndMin
	}
}

// CheckedConversion picks the table for src -> dst and resolves the symbol.
// Lossless conversions need no call and return an empty name.
func CheckedConversion(src, dst width.IntWidth) (string, ConversionCheck, error) {
	check := ConversionCheckFor(src, dst)
	switch check {
	case ConversionCheckMax:
		name, err := NumIntToIntCheckingMax.Resolve(src, dst)
		return name, check, err
	case ConversionCheckMaxAndMin:
		name, err := NumIntToIntCheckingMaxAndMin.Resolve(src, dst)
		return name, check, err
	default:
		return "", check, nil
	}
}
