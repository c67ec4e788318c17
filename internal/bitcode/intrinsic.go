package bitcode

import (
	"errors"
	"fmt"

	"tagcore/internal/width"
)

// Slot layout of IntrinsicName: slot 0 is the decimal width, slots 1-3 the
// float widths, slots 4-13 the integer widths (unsigned ascending, then
// signed ascending). The integer slots follow width.IntWidth ordinals.
const (
	decSlot   = 0
	floatBase = 1
	intBase   = 4
	slotCount = intBase + width.IntWidthCount
)

// IntrinsicName maps every numeric width to the runtime symbol implementing
// one operation at that width. An empty slot means the operation does not
// exist at that width.
type IntrinsicName struct {
	Options [slotCount]string
}

func floatSlot(w width.FloatWidth) int { return floatBase + int(w) }

func intSlot(w width.IntWidth) int { return intBase + int(w) }

// Dec returns the symbol for the decimal width.
func (n IntrinsicName) Dec() (string, error) {
	return n.slot(decSlot, "dec")
}

// Float returns the symbol for the float width w.
func (n IntrinsicName) Float(w width.FloatWidth) (string, error) {
	if !w.Valid() {
		return "", &LookupError{Kind: LookupErrInvalidWidth, Width: w.TypeName()}
	}
	return n.slot(floatSlot(w), w.TypeName())
}

// Int returns the symbol for the integer width w.
func (n IntrinsicName) Int(w width.IntWidth) (string, error) {
	if !w.Valid() {
		return "", &LookupError{Kind: LookupErrInvalidWidth, Width: w.TypeName()}
	}
	return n.slot(intSlot(w), w.TypeName())
}

// Numeric dispatches to Float or Int.
func (n IntrinsicName) Numeric(w width.Numeric) (string, error) {
	if w.IsFloat {
		return n.Float(w.Float)
	}
	return n.Int(w.Int)
}

// Populated reports how many slots carry a symbol.
func (n IntrinsicName) Populated() int {
	count := 0
	for _, opt := range n.Options {
		if opt != "" {
			count++
		}
	}
	return count
}

func (n IntrinsicName) slot(idx int, label string) (string, error) {
	name := n.Options[idx]
	if name == "" {
		return "", &LookupError{Kind: LookupErrEmptySlot, Width: label, Slot: idx}
	}
	return name, nil
}

// LookupErrorKind enumerates intrinsic lookup failures.
type LookupErrorKind uint8

const (
	// LookupErrEmptySlot means the operation has no symbol at the width.
	LookupErrEmptySlot LookupErrorKind = iota + 1
	LookupErrInvalidWidth
	LookupErrUnknownOp
)

// LookupError reports a width or operation the catalog cannot resolve.
// Code generation only asks for widths an operation supports, so seeing one
// means an upstream invariant was broken.
type LookupError struct {
	Kind  LookupErrorKind
	Op    string
	Width string
	Slot  int
}

func (e *LookupError) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := e.Op
	if op == "" {
		op = "intrinsic"
	}
	switch e.Kind {
	case LookupErrEmptySlot:
		return fmt.Sprintf("%s has no %s variant (slot %d)", op, e.Width, e.Slot)
	case LookupErrInvalidWidth:
		return fmt.Sprintf("%s: invalid width %s", op, e.Width)
	case LookupErrUnknownOp:
		return fmt.Sprintf("unknown intrinsic operation %q", op)
	default:
		return fmt.Sprintf("intrinsic lookup error kind=%d op=%s", e.Kind, op)
	}
}

func withOp(err error, op string) error {
	var le *LookupError
	if errors.As(err, &le) && le.Op == "" {
		cp := *le
		cp.Op = op
		return &cp
	}
	return err
}
