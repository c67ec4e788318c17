package bitcode

import (
	"sort"
	"strings"
	"sync"
)

// EntryKind tells which recipe produced a catalog entry.
type EntryKind uint8

const (
	EntryPlain EntryKind = iota + 1
	EntryFloat
	EntryInt
	EntryLLVMInt
)

func (k EntryKind) String() string {
	switch k {
	case EntryPlain:
		return "plain"
	case EntryFloat:
		return "float"
	case EntryInt:
		return "int"
	case EntryLLVMInt:
		return "llvm-int"
	default:
		return "unknown"
	}
}

// Shape is the kind of value an operand or result of a width-indexed
// operation has.
type Shape uint8

const (
	ShapeNone Shape = iota
	// ShapeWidth is a scalar of the width the symbol is resolved at.
	ShapeWidth
	// ShapeBool is an i1.
	ShapeBool
	// ShapeStr is a RocStr passed by reference. Its layout is not modelled here.
	ShapeStr
	// ShapeOverflow is a { width, i1 } pair.
	ShapeOverflow
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeWidth:
		return "width"
	case ShapeBool:
		return "bool"
	case ShapeStr:
		return "str"
	case ShapeOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Signature describes the operands and result of a width-indexed operation.
// Every operand has the same shape.
type Signature struct {
	Arity uint8
	Param Shape
	Ret   Shape
}

func (s Signature) String() string {
	params := make([]string, s.Arity)
	for i := range params {
		params[i] = s.Param.String()
	}
	return "(" + strings.Join(params, ", ") + ") -> " + s.Ret.String()
}

var (
	sigUnary     = Signature{Arity: 1, Param: ShapeWidth, Ret: ShapeWidth}
	sigBinary    = Signature{Arity: 2, Param: ShapeWidth, Ret: ShapeWidth}
	sigPredicate = Signature{Arity: 1, Param: ShapeWidth, Ret: ShapeBool}
	sigToStr     = Signature{Arity: 1, Param: ShapeWidth, Ret: ShapeStr}
	sigFromStr   = Signature{Arity: 1, Param: ShapeStr, Ret: ShapeWidth}
	sigOverflow  = Signature{Arity: 2, Param: ShapeWidth, Ret: ShapeOverflow}
)

// Entry is one operation of the catalog. Plain entries carry Symbol; the
// others carry a width-indexed Table and its Sig.
type Entry struct {
	Op     string
	Kind   EntryKind
	Symbol string
	Table  IntrinsicName
	Sig    Signature
}

// Names returns every non-empty symbol of the entry.
func (e Entry) Names() []string {
	if e.Kind == EntryPlain {
		return []string{e.Symbol}
	}
	out := make([]string, 0, e.Table.Populated())
	for _, opt := range e.Table.Options {
		if opt != "" {
			out = append(out, opt)
		}
	}
	return out
}

func table(op string, kind EntryKind, t IntrinsicName, sig Signature) Entry {
	return Entry{Op: op, Kind: kind, Table: t, Sig: sig}
}

func plain(sym string) Entry {
	return Entry{Op: strings.TrimPrefix(sym, Namespace+"."), Kind: EntryPlain, Symbol: sym}
}

var catalogOnce = sync.OnceValues(func() ([]Entry, map[string]int) {
	entries := []Entry{
		table("num.asin", EntryFloat, NumAsin, sigUnary),
		table("num.acos", EntryFloat, NumAcos, sigUnary),
		table("num.atan", EntryFloat, NumAtan, sigUnary),
		table("num.is_finite", EntryFloat, NumIsFinite, sigPredicate),
		table("num.pow_int", EntryInt, NumPowInt, sigBinary),
		table("num.div_ceil", EntryInt, NumDivCeil, sigBinary),
		table("num.round", EntryFloat, NumRound, sigUnary),
		table("str.from_int", EntryInt, StrFromInt, sigToStr),
		table("str.to_int", EntryInt, StrToInt, sigFromStr),
		table("str.to_float", EntryFloat, StrToFloat, sigFromStr),
		table("llvm.add_with_overflow", EntryLLVMInt, LLVMAddWithOverflow, sigOverflow),
		table("llvm.sub_with_overflow", EntryLLVMInt, LLVMSubWithOverflow, sigOverflow),
		table("llvm.mul_with_overflow", EntryLLVMInt, LLVMMulWithOverflow, sigOverflow),
	}
	for _, sym := range []string{
		NumBytesToU16, NumBytesToU32,
		StrInit, StrCountSegments, StrConcat, StrJoinWith, StrSplitInPlace,
		StrCountGraphemeClusters, StrStartsWith, StrStartsWithCodePt, StrEndsWith,
		StrNumberOfBytes, StrFromFloat, StrToDecimal, StrEqual, StrToUTF8,
		StrFromUTF8, StrFromUTF8Range, StrRepeat, StrTrim, StrTrimLeft, StrTrimRight,
		DictHash, DictHashStr, DictLen, DictEmpty, DictInsert, DictRemove,
		DictContains, DictGet, DictElementsRc, DictKeys, DictValues, DictUnion,
		DictDifference, DictIntersection, DictWalk, SetFromList,
		ListMap, ListMap2, ListMap3, ListMap4, ListMapWithIndex, ListKeepIf,
		ListKeepOks, ListKeepErrs, ListWalk, ListWalkUntil, ListWalkBackwards,
		ListContains, ListRepeat, ListAppend, ListPrepend, ListSublist, ListDropAt,
		ListSwap, ListSingle, ListJoin, ListRange, ListReverse, ListSortWith,
		ListConcat, ListReplace, ListReplaceInPlace, ListAny, ListAll, ListFindUnsafe,
		DecFromStr, DecFromF64, DecEq, DecNeq, DecNegate, DecAddWithOverflow,
		DecSubWithOverflow, DecMulWithOverflow, DecDiv,
		UtilsTestPanic, UtilsIncref, UtilsDecref, UtilsDecrefCheckNull,
		UtilsExpectFailed, UtilsGetExpectFailures, UtilsDeinitFailures,
	} {
		entries = append(entries, plain(sym))
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Op < entries[j].Op })
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Op] = i
	}
	return entries, index
})

// Catalog returns every named operation sorted by Op. The slice is a copy.
func Catalog() []Entry {
	entries, _ := catalogOnce()
	return append([]Entry(nil), entries...)
}

// ByName finds an operation by its short name ("num.pow_int") or by its
// fully qualified base ("roc_builtins.num.pow_int").
func ByName(op string) (Entry, error) {
	entries, index := catalogOnce()
	key := strings.TrimPrefix(strings.TrimSpace(op), Namespace+".")
	if i, ok := index[key]; ok {
		return entries[i], nil
	}
	return Entry{}, &LookupError{Kind: LookupErrUnknownOp, Op: op}
}
