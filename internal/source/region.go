package source

import "fmt"

// Region is a line/column range inside a module's text. Synthesized code has
// no textual origin and carries the zero region.
type Region struct {
	StartLine uint32
	EndLine   uint32
	StartCol  uint16
	EndCol    uint16
}

// ZeroRegion returns the "no location" sentinel.
func ZeroRegion() Region { return Region{} }

// IsZero reports whether r is the "no location" sentinel.
func (r Region) IsZero() bool { return r == Region{} }

func (r Region) String() string {
	if r.IsZero() {
		return "<no region>"
	}
	return fmt.Sprintf("%d:%d-%d:%d", r.StartLine, r.StartCol, r.EndLine, r.EndCol)
}

// Cover returns the smallest region containing both r and other.
func (r Region) Cover(other Region) Region {
	if r.IsZero() {
		return other
	}
	if other.IsZero() {
		return r
	}
	if other.StartLine < r.StartLine || (other.StartLine == r.StartLine && other.StartCol < r.StartCol) {
		r.StartLine, r.StartCol = other.StartLine, other.StartCol
	}
	if other.EndLine > r.EndLine || (other.EndLine == r.EndLine && other.EndCol > r.EndCol) {
		r.EndLine, r.EndCol = other.EndLine, other.EndCol
	}
	return r
}

// Located wraps a value with the region it came from.
type Located[T any] struct {
	Region Region
	Value  T
}

// At attaches an explicit region to value.
func At[T any](region Region, value T) Located[T] {
	return Located[T]{Region: region, Value: value}
}

// NoRegion wraps value with the zero region.
func NoRegion[T any](value T) Located[T] {
	return Located[T]{Region: ZeroRegion(), Value: value}
}
