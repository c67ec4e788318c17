package symbols

import "strings"

// Numeric type symbols. Every fixed-width type is reachable under three
// spellings: the user-facing name, the long-form alias and the compiler
// internal "@" name.
const (
	NumU8 Symbol = iota + 1
	NumUnsigned8
	NumAtUnsigned8
	NumU16
	NumUnsigned16
	NumAtUnsigned16
	NumU32
	NumUnsigned32
	NumAtUnsigned32
	NumU64
	NumUnsigned64
	NumAtUnsigned64
	NumU128
	NumUnsigned128
	NumAtUnsigned128
	NumI8
	NumSigned8
	NumAtSigned8
	NumI16
	NumSigned16
	NumAtSigned16
	NumI32
	NumSigned32
	NumAtSigned32
	NumI64
	NumSigned64
	NumAtSigned64
	NumI128
	NumSigned128
	NumAtSigned128
	NumF32
	NumBinary32
	NumAtBinary32
	NumF64
	NumBinary64
	NumAtBinary64
	NumDec

	// Functions and the argument bindings of synthesized builtins.
	NumLt
	NumNeg
	IntLt
	IntNeqI64
	IntDiv
	IntDivUnsafe
	IntDivArgNumerator
	IntDivArgDenominator
	IntAbs
	IntAbsArg
	ListLen
	ListIsEmpty
	ListGet
	ListGetUnsafe
	ListGetArgList
	ListGetArgIndex
	ListFirst
	ListFirstArg

	symbolCount
)

type entry struct {
	module ModuleID
	ident  string
	// local symbols are closure parameters; they print unqualified and are
	// not reachable through Lookup.
	local bool
}

var catalog = [symbolCount]entry{
	NumU8:            {ModuleNum, "U8", false},
	NumUnsigned8:     {ModuleNum, "Unsigned8", false},
	NumAtUnsigned8:   {ModuleNum, "@Unsigned8", false},
	NumU16:           {ModuleNum, "U16", false},
	NumUnsigned16:    {ModuleNum, "Unsigned16", false},
	NumAtUnsigned16:  {ModuleNum, "@Unsigned16", false},
	NumU32:           {ModuleNum, "U32", false},
	NumUnsigned32:    {ModuleNum, "Unsigned32", false},
	NumAtUnsigned32:  {ModuleNum, "@Unsigned32", false},
	NumU64:           {ModuleNum, "U64", false},
	NumUnsigned64:    {ModuleNum, "Unsigned64", false},
	NumAtUnsigned64:  {ModuleNum, "@Unsigned64", false},
	NumU128:          {ModuleNum, "U128", false},
	NumUnsigned128:   {ModuleNum, "Unsigned128", false},
	NumAtUnsigned128: {ModuleNum, "@Unsigned128", false},
	NumI8:            {ModuleNum, "I8", false},
	NumSigned8:       {ModuleNum, "Signed8", false},
	NumAtSigned8:     {ModuleNum, "@Signed8", false},
	NumI16:           {ModuleNum, "I16", false},
	NumSigned16:      {ModuleNum, "Signed16", false},
	NumAtSigned16:    {ModuleNum, "@Signed16", false},
	NumI32:           {ModuleNum, "I32", false},
	NumSigned32:      {ModuleNum, "Signed32", false},
	NumAtSigned32:    {ModuleNum, "@Signed32", false},
	NumI64:           {ModuleNum, "I64", false},
	NumSigned64:      {ModuleNum, "Signed64", false},
	NumAtSigned64:    {ModuleNum, "@Signed64", false},
	NumI128:          {ModuleNum, "I128", false},
	NumSigned128:     {ModuleNum, "Signed128", false},
	NumAtSigned128:   {ModuleNum, "@Signed128", false},
	NumF32:           {ModuleNum, "F32", false},
	NumBinary32:      {ModuleNum, "Binary32", false},
	NumAtBinary32:    {ModuleNum, "@Binary32", false},
	NumF64:           {ModuleNum, "F64", false},
	NumBinary64:      {ModuleNum, "Binary64", false},
	NumAtBinary64:    {ModuleNum, "@Binary64", false},
	NumDec:           {ModuleNum, "Dec", false},

	NumLt:                {ModuleNum, "isLt", false},
	NumNeg:               {ModuleNum, "neg", false},
	IntLt:                {ModuleInt, "isLt", false},
	IntNeqI64:            {ModuleInt, "#neqI64", false},
	IntDiv:               {ModuleInt, "div", false},
	IntDivUnsafe:         {ModuleInt, "#divUnsafe", false},
	IntDivArgNumerator:   {ModuleInt, "numerator", true},
	IntDivArgDenominator: {ModuleInt, "denominator", true},
	IntAbs:               {ModuleInt, "abs", false},
	IntAbsArg:            {ModuleInt, "n", true},
	ListLen:              {ModuleList, "len", false},
	ListIsEmpty:          {ModuleList, "isEmpty", false},
	ListGet:              {ModuleList, "get", false},
	ListGetUnsafe:        {ModuleList, "#getUnsafe", false},
	ListGetArgList:       {ModuleList, "list", true},
	ListGetArgIndex:      {ModuleList, "index", true},
	ListFirst:            {ModuleList, "first", false},
	ListFirstArg:         {ModuleList, "list", true},
}

var byQualifiedName = func() map[string]Symbol {
	m := make(map[string]Symbol, len(catalog))
	for i := range catalog {
		sym := Symbol(i)
		if sym == NoSymbol || catalog[i].local {
			continue
		}
		m[sym.String()] = sym
	}
	return m
}()

// Module returns the owning module of s.
func (s Symbol) Module() ModuleID {
	if !s.IsValid() {
		return NoModuleID
	}
	return catalog[s].module
}

// Ident returns the unqualified identifier of s.
func (s Symbol) Ident() string {
	if !s.IsValid() {
		return ""
	}
	return catalog[s].ident
}

// IsLocal reports whether s is a closure parameter rather than a top-level binding.
func (s Symbol) IsLocal() bool {
	return s.IsValid() && catalog[s].local
}

// String renders "Module.ident" for top-level symbols and the bare identifier
// for parameters.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "<no symbol>"
	}
	e := catalog[s]
	if e.local {
		return e.ident
	}
	return e.module.String() + "." + e.ident
}

// Lookup resolves a qualified name such as "Num.@Binary64".
func Lookup(qualified string) (Symbol, bool) {
	sym, ok := byQualifiedName[strings.TrimSpace(qualified)]
	return sym, ok
}

// All returns every catalogued symbol in ID order.
func All() []Symbol {
	out := make([]Symbol, 0, len(catalog)-1)
	for i := 1; i < len(catalog); i++ {
		out = append(out, Symbol(i))
	}
	return out
}
