// Package eval is a small tree-walking evaluator over the canonical AST. It
// runs synthesized builtins against the unchecked primitives they delegate to.
package eval

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"tagcore/internal/can"
	"tagcore/internal/symbols"
)

// ValueKind identifies the runtime shape of a Value.
type ValueKind uint8

const (
	// VKInvalid represents an invalid value.
	VKInvalid ValueKind = iota
	VKInt
	VKBool
	VKList
	VKTag
	VKClosure
	VKPrimitive
)

func (k ValueKind) String() string {
	switch k {
	case VKInvalid:
		return "invalid"
	case VKInt:
		return "int"
	case VKBool:
		return "bool"
	case VKList:
		return "list"
	case VKTag:
		return "tag"
	case VKClosure:
		return "closure"
	case VKPrimitive:
		return "primitive"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// Value is a runtime value. Only the fields matching Kind are meaningful.
type Value struct {
	Kind    ValueKind
	Int     int64
	Bool    bool
	Elems   []Value     // VKList
	Tag     can.TagName // VKTag
	Payload []Value     // VKTag
	Fn      *Closure    // VKClosure
	Sym     symbols.Symbol
}

// Closure is a function value produced by evaluating a canonical closure.
type Closure struct {
	Name   symbols.Symbol
	Params []symbols.Symbol
	Body   can.Expr
	Env    map[symbols.Symbol]Value
}

// MakeInt creates an integer value.
func MakeInt(n int64) Value { return Value{Kind: VKInt, Int: n} }

// MakeBool creates a boolean value.
func MakeBool(b bool) Value { return Value{Kind: VKBool, Bool: b} }

// MakeList creates a list value from ints.
func MakeList(elems ...int64) Value {
	vals := make([]Value, 0, len(elems))
	for _, n := range elems {
		vals = append(vals, MakeInt(n))
	}
	return Value{Kind: VKList, Elems: vals}
}

// MakeTag creates a tag value.
func MakeTag(name can.TagName, payload ...Value) Value {
	return Value{Kind: VKTag, Tag: name, Payload: payload}
}

// Ok wraps v in the Ok tag.
func Ok(v Value) Value { return MakeTag(can.TagOk, v) }

// Err wraps the named error tag in Err.
func Err(name can.TagName) Value { return MakeTag(can.TagErr, MakeTag(name)) }

// IsZero reports whether v is the invalid value.
func (v Value) IsZero() bool { return v.Kind == VKInvalid }

// Equal compares values structurally. Functions compare by identity.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case VKInvalid:
		return true
	case VKInt:
		return v.Int == other.Int
	case VKBool:
		return v.Bool == other.Bool
	case VKList:
		return slices.EqualFunc(v.Elems, other.Elems, Value.Equal)
	case VKTag:
		return v.Tag == other.Tag && slices.EqualFunc(v.Payload, other.Payload, Value.Equal)
	case VKClosure:
		return v.Fn == other.Fn
	case VKPrimitive:
		return v.Sym == other.Sym
	default:
		return false
	}
}

// String renders v in source syntax: `Ok 20`, `Err OutOfBounds`, `[1, 2]`.
func (v Value) String() string {
	switch v.Kind {
	case VKInvalid:
		return "<invalid>"
	case VKInt:
		return strconv.FormatInt(v.Int, 10)
	case VKBool:
		if v.Bool {
			return "Bool.true"
		}
		return "Bool.false"
	case VKList:
		parts := make([]string, 0, len(v.Elems))
		for _, e := range v.Elems {
			parts = append(parts, e.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case VKTag:
		if len(v.Payload) == 0 {
			return string(v.Tag)
		}
		parts := []string{string(v.Tag)}
		for _, p := range v.Payload {
			s := p.String()
			if p.Kind == VKTag && len(p.Payload) > 0 {
				s = "(" + s + ")"
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " ")
	case VKClosure:
		if v.Fn != nil && v.Fn.Name.IsValid() {
			return "<closure " + v.Fn.Name.String() + ">"
		}
		return "<closure>"
	case VKPrimitive:
		return "<primitive " + v.Sym.String() + ">"
	default:
		return fmt.Sprintf("<unknown:%d>", v.Kind)
	}
}
