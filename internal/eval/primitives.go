package eval

import (
	"math"

	"tagcore/internal/symbols"
)

type primitive struct {
	arity int
	fn    func(ev *evaluator, args []Value) (Value, error)
}

// primitives are the unchecked operations the code generator provides
// directly. They trust their callers: a bad index or a zero divisor is an
// evaluation error rather than a tag.
var primitives = map[symbols.Symbol]primitive{
	symbols.NumLt: {2, func(ev *evaluator, args []Value) (Value, error) {
		a, b, err := ev.ints(symbols.NumLt, args)
		if err != nil {
			return Value{}, err
		}
		return MakeBool(a < b), nil
	}},
	symbols.IntLt: {2, func(ev *evaluator, args []Value) (Value, error) {
		a, b, err := ev.ints(symbols.IntLt, args)
		if err != nil {
			return Value{}, err
		}
		return MakeBool(a < b), nil
	}},
	symbols.IntNeqI64: {2, func(ev *evaluator, args []Value) (Value, error) {
		a, b, err := ev.ints(symbols.IntNeqI64, args)
		if err != nil {
			return Value{}, err
		}
		return MakeBool(a != b), nil
	}},
	symbols.NumNeg: {1, func(ev *evaluator, args []Value) (Value, error) {
		n, err := ev.int(symbols.NumNeg, args[0])
		if err != nil {
			return Value{}, err
		}
		if n == math.MinInt64 {
			return Value{}, ev.fail(ErrOverflow, "negating %d overflows", n)
		}
		return MakeInt(-n), nil
	}},
	symbols.IntDivUnsafe: {2, func(ev *evaluator, args []Value) (Value, error) {
		a, b, err := ev.ints(symbols.IntDivUnsafe, args)
		if err != nil {
			return Value{}, err
		}
		if b == 0 {
			return Value{}, ev.fail(ErrDivByZero, "unchecked division of %d by zero", a)
		}
		if a == math.MinInt64 && b == -1 {
			return Value{}, ev.fail(ErrOverflow, "%d / -1 overflows", a)
		}
		// Truncates toward zero.
		return MakeInt(a / b), nil
	}},
	symbols.ListLen: {1, func(ev *evaluator, args []Value) (Value, error) {
		elems, err := ev.list(symbols.ListLen, args[0])
		if err != nil {
			return Value{}, err
		}
		return MakeInt(int64(len(elems))), nil
	}},
	symbols.ListIsEmpty: {1, func(ev *evaluator, args []Value) (Value, error) {
		elems, err := ev.list(symbols.ListIsEmpty, args[0])
		if err != nil {
			return Value{}, err
		}
		return MakeBool(len(elems) == 0), nil
	}},
	symbols.ListGetUnsafe: {2, func(ev *evaluator, args []Value) (Value, error) {
		elems, err := ev.list(symbols.ListGetUnsafe, args[0])
		if err != nil {
			return Value{}, err
		}
		i, err := ev.int(symbols.ListGetUnsafe, args[1])
		if err != nil {
			return Value{}, err
		}
		if i < 0 || i >= int64(len(elems)) {
			return Value{}, ev.fail(ErrOutOfBounds, "index %d out of range for length %d", i, len(elems))
		}
		return elems[i], nil
	}},
}

// Primitives lists the symbols the evaluator implements natively.
func Primitives() []symbols.Symbol {
	out := make([]symbols.Symbol, 0, len(primitives))
	for _, sym := range symbols.All() {
		if _, ok := primitives[sym]; ok {
			out = append(out, sym)
		}
	}
	return out
}

func (ev *evaluator) int(fn symbols.Symbol, v Value) (int64, error) {
	if v.Kind != VKInt {
		return 0, ev.fail(ErrTypeMismatch, "%s expects an int, got %s", fn, v.Kind)
	}
	return v.Int, nil
}

func (ev *evaluator) ints(fn symbols.Symbol, args []Value) (int64, int64, error) {
	a, err := ev.int(fn, args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := ev.int(fn, args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func (ev *evaluator) list(fn symbols.Symbol, v Value) ([]Value, error) {
	if v.Kind != VKList {
		return nil, ev.fail(ErrTypeMismatch, "%s expects a list, got %s", fn, v.Kind)
	}
	return v.Elems, nil
}
