package can

import (
	"tagcore/internal/symbols"
	"tagcore/internal/types"
)

// Tags produced by the synthesized builtins.
const (
	TagOk           TagName = "Ok"
	TagErr          TagName = "Err"
	TagOutOfBounds  TagName = "OutOfBounds"
	TagListWasEmpty TagName = "ListWasEmpty"
	TagDivByZero    TagName = "DivByZero"
)

// BuiltinDefs returns the builtins that must exist as real definitions rather
// than as code generator primitives.
//
// List.get has the type
//
//	List.get : List elem, Int -> Result elem [OutOfBounds]*
//
// Its error union is open, so the discriminant of OutOfBounds depends on
// what the union unifies with at each call site: [Foo, OutOfBounds] gives it
// 1, [OutOfBounds, Qux] gives it 0. Code generation cannot hardcode that
// number. Instead the builtin is an ordinary def that bounds-checks and then
// delegates to List.#getUnsafe, and it goes through inference and
// monomorphization like user code. The unchecked delegates involve no open
// unions and stay hardcoded in code generation.
//
// Every variable in the returned defs comes from vars.
func BuiltinDefs(vars *types.VarStore) []Def {
	b := newBuilder(vars)
	return []Def{
		b.listGet(),
		b.listFirst(),
		b.intDiv(),
		b.intAbs(),
	}
}

// BuiltinSymbols lists the symbols BuiltinDefs binds, in order.
func BuiltinSymbols() []symbols.Symbol {
	return []symbols.Symbol{symbols.ListGet, symbols.ListFirst, symbols.IntDiv, symbols.IntAbs}
}

// List.get : List elem, Int -> Result elem [OutOfBounds]*
func (b *builder) listGet() Def {
	list, index := symbols.ListGetArgList, symbols.ListGetArgIndex
	return b.defn(symbols.ListGet, []symbols.Symbol{list, index},
		b.ifThenElse(
			// index < List.len list
			b.call(symbols.NumLt, ref(index), b.call(symbols.ListLen, ref(list))),
			b.tag(TagOk, b.call(symbols.ListGetUnsafe, ref(list), ref(index))),
			b.tag(TagErr, b.tag(TagOutOfBounds)),
		),
	)
}

// List.first : List elem -> Result elem [ListWasEmpty]*
//
// The guard tests for emptiness, so the error is the then-branch.
// TODO: switch to a `when` on the Bool once it exists so the non-empty case
// can come first for branch prediction.
func (b *builder) listFirst() Def {
	list := symbols.ListFirstArg
	return b.defn(symbols.ListFirst, []symbols.Symbol{list},
		b.ifThenElse(
			b.call(symbols.ListIsEmpty, ref(list)),
			b.tag(TagErr, b.tag(TagListWasEmpty)),
			b.tag(TagOk, b.call(symbols.ListGetUnsafe, ref(list), b.int(0))),
		),
	)
}

// Int.div : Int, Int -> Result Int [DivByZero]*
func (b *builder) intDiv() Def {
	num, den := symbols.IntDivArgNumerator, symbols.IntDivArgDenominator
	return b.defn(symbols.IntDiv, []symbols.Symbol{num, den},
		b.ifThenElse(
			b.call(symbols.IntNeqI64, ref(den), b.int(0)),
			b.tag(TagOk, b.call(symbols.IntDivUnsafe, ref(num), ref(den))),
			b.tag(TagErr, b.tag(TagDivByZero)),
		),
	)
}

// Int.abs : Int -> Int
func (b *builder) intAbs() Def {
	n := symbols.IntAbsArg
	return b.defn(symbols.IntAbs, []symbols.Symbol{n},
		b.ifThenElse(
			// 0 < n
			b.call(symbols.IntLt, b.int(0), ref(n)),
			ref(n),
			b.call(symbols.NumNeg, ref(n)),
		),
	)
}
