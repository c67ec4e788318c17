// Package llvm renders extern declarations for the bitcode intrinsics a
// module calls, at concrete widths.
package llvm

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"tagcore/internal/bitcode"
	"tagcore/internal/target"
	"tagcore/internal/width"
)

// Param is one declared parameter with the storage facts the caller needs
// to spill or pass it.
type Param struct {
	Type  string
	Size  uint32
	Align uint32
}

// IntrinsicDecl is a `declare` line for one resolved intrinsic.
type IntrinsicDecl struct {
	Name   string
	Ret    string
	Params []Param
}

// Render formats the declaration followed by a comment listing each
// parameter's size and alignment.
func (d IntrinsicDecl) Render() string {
	types := make([]string, 0, len(d.Params))
	layout := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		types = append(types, p.Type)
		layout = append(layout, fmt.Sprintf("%s size=%d align=%d", p.Type, p.Size, p.Align))
	}
	line := fmt.Sprintf("declare %s @%s(%s)", d.Ret, d.Name, strings.Join(types, ", "))
	if len(layout) > 0 {
		line += " ; " + strings.Join(layout, ", ")
	}
	return line
}

// IntType returns the LLVM integer type for w. LLVM integers carry no sign.
func IntType(w width.IntWidth) string {
	return fmt.Sprintf("i%d", w.Bits())
}

// FloatType returns the LLVM floating point type for w.
func FloatType(w width.FloatWidth) string {
	switch w {
	case width.F32:
		return "float"
	case width.F64:
		return "double"
	case width.F128:
		return "fp128"
	default:
		panic(fmt.Sprintf("llvm: invalid float width %d", w))
	}
}

func intParam(w width.IntWidth, info target.Info) Param {
	return Param{Type: IntType(w), Size: w.StackSize(), Align: w.AlignmentBytes(info)}
}

func floatParam(w width.FloatWidth, info target.Info) Param {
	return Param{Type: FloatType(w), Size: w.StackSize(), Align: w.AlignmentBytes(info)}
}

// OverflowDecl declares an LLVM `*.with.overflow` intrinsic from table at
// width w. The result pairs the wrapped value with the overflow bit.
func OverflowDecl(table bitcode.IntrinsicName, w width.IntWidth, info target.Info) (IntrinsicDecl, error) {
	name, err := table.Int(w)
	if err != nil {
		return IntrinsicDecl{}, err
	}
	p := intParam(w, info)
	return IntrinsicDecl{
		Name:   name,
		Ret:    fmt.Sprintf("{ %s, i1 }", p.Type),
		Params: []Param{p, p},
	}, nil
}

// IntDecl declares a width-suffixed integer builtin taking arity operands
// of width w and returning ret.
func IntDecl(table bitcode.IntrinsicName, w width.IntWidth, arity int, ret string, info target.Info) (IntrinsicDecl, error) {
	name, err := table.Int(w)
	if err != nil {
		return IntrinsicDecl{}, err
	}
	params := make([]Param, arity)
	for i := range params {
		params[i] = intParam(w, info)
	}
	return IntrinsicDecl{Name: name, Ret: ret, Params: params}, nil
}

// FloatDecl declares a width-suffixed float builtin taking arity operands
// of width w and returning ret.
func FloatDecl(table bitcode.IntrinsicName, w width.FloatWidth, arity int, ret string, info target.Info) (IntrinsicDecl, error) {
	name, err := table.Float(w)
	if err != nil {
		return IntrinsicDecl{}, err
	}
	params := make([]Param, arity)
	for i := range params {
		params[i] = floatParam(w, info)
	}
	return IntrinsicDecl{Name: name, Ret: ret, Params: params}, nil
}

// ConversionDecl declares the checked conversion from src to dst. ok is
// false when the conversion is lossless and needs no call.
func ConversionDecl(src, dst width.IntWidth, info target.Info) (decl IntrinsicDecl, ok bool, err error) {
	name, check, err := bitcode.CheckedConversion(src, dst)
	if err != nil {
		return IntrinsicDecl{}, false, err
	}
	if check == bitcode.ConversionLossless {
		return IntrinsicDecl{}, false, nil
	}
	return IntrinsicDecl{
		Name:   name,
		Ret:    IntType(dst),
		Params: []Param{intParam(src, info)},
	}, true, nil
}

// ErrStrLayout is returned for operations taking or returning a RocStr,
// whose layout is not modelled here.
var ErrStrLayout = errors.New("RocStr operand has no modelled layout")

// EntryDecl declares catalog entry e at width w following e.Sig.
func EntryDecl(e bitcode.Entry, w width.Numeric, info target.Info) (IntrinsicDecl, error) {
	if e.Kind == bitcode.EntryPlain {
		return IntrinsicDecl{}, fmt.Errorf("%s is not width-indexed", e.Op)
	}
	name, err := e.Table.Numeric(w)
	if err != nil {
		return IntrinsicDecl{}, err
	}
	if e.Sig.Param == bitcode.ShapeStr || e.Sig.Ret == bitcode.ShapeStr {
		return IntrinsicDecl{}, fmt.Errorf("%s %s: %w", name, e.Sig, ErrStrLayout)
	}
	p, err := shapeParam(e.Sig.Param, w, info)
	if err != nil {
		return IntrinsicDecl{}, fmt.Errorf("%s: %w", name, err)
	}
	params := make([]Param, e.Sig.Arity)
	for i := range params {
		params[i] = p
	}
	var ret string
	switch e.Sig.Ret {
	case bitcode.ShapeOverflow:
		ret = fmt.Sprintf("{ %s, i1 }", numericParam(w, info).Type)
	default:
		r, err := shapeParam(e.Sig.Ret, w, info)
		if err != nil {
			return IntrinsicDecl{}, fmt.Errorf("%s: %w", name, err)
		}
		ret = r.Type
	}
	return IntrinsicDecl{Name: name, Ret: ret, Params: params}, nil
}

func numericParam(w width.Numeric, info target.Info) Param {
	if w.IsFloat {
		return floatParam(w.Float, info)
	}
	return intParam(w.Int, info)
}

func shapeParam(s bitcode.Shape, w width.Numeric, info target.Info) (Param, error) {
	switch s {
	case bitcode.ShapeWidth:
		return numericParam(w, info), nil
	case bitcode.ShapeBool:
		return Param{Type: "i1", Size: 1, Align: 1}, nil
	default:
		return Param{}, fmt.Errorf("no LLVM type for %s", s)
	}
}

// RenderDecls renders decls sorted by name, one per line, dropping repeats.
func RenderDecls(decls []IntrinsicDecl) string {
	sorted := append([]IntrinsicDecl(nil), decls...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	var sb strings.Builder
	last := ""
	for _, d := range sorted {
		if d.Name == last {
			continue
		}
		last = d.Name
		sb.WriteString(d.Render())
		sb.WriteByte('\n')
	}
	return sb.String()
}
