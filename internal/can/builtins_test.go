package can

import (
	"testing"

	"tagcore/internal/symbols"
	"tagcore/internal/types"
)

func TestBuiltinDefsAllocateDistinctVariables(t *testing.T) {
	store := types.NewVarStore()
	defs := BuiltinDefs(store)
	if len(defs) != 4 {
		t.Fatalf("expected 4 builtin defs, got %d", len(defs))
	}
	n, err := CheckVariables(defs)
	if err != nil {
		t.Fatalf("CheckVariables: %v", err)
	}
	if n != store.Count() {
		t.Fatalf("defs mention %d variables, store allocated %d", n, store.Count())
	}
}

func TestBuiltinDefsContinueFromStore(t *testing.T) {
	store := types.NewVarStore()
	for range 100 {
		store.Fresh()
	}
	first := store.Peek()
	for _, d := range BuiltinDefs(store) {
		for _, v := range Variables(d) {
			if v < first {
				t.Fatalf("variable %v allocated before builtins ran (first=%v)", v, first)
			}
		}
	}
}

func TestBuiltinDefsTwiceShareNoVariables(t *testing.T) {
	store := types.NewVarStore()
	defs := append(BuiltinDefs(store), BuiltinDefs(store)...)
	if _, err := CheckVariables(defs); err != nil {
		t.Fatalf("CheckVariables over two builds: %v", err)
	}
}

func TestBuiltinDefsOrderAndNames(t *testing.T) {
	defs := BuiltinDefs(types.NewVarStore())
	want := BuiltinSymbols()
	for i, d := range defs {
		sym, ok := d.Symbol()
		if !ok {
			t.Fatalf("def %d has no identifier pattern", i)
		}
		if sym != want[i] {
			t.Fatalf("def %d binds %s, want %s", i, sym, want[i])
		}
		c, ok := d.Expr.Value.(*Closure)
		if !ok {
			t.Fatalf("%s: expected closure, got %T", sym, d.Expr.Value)
		}
		if c.Name != sym {
			t.Fatalf("%s: closure name %s", sym, c.Name)
		}
		if c.Recursive != NotRecursive {
			t.Fatalf("%s: closure should be non-recursive, got %s", sym, c.Recursive)
		}
		if len(d.PatternVars) != 0 {
			t.Fatalf("%s: unexpected pattern vars %v", sym, d.PatternVars)
		}
	}
}

func TestBuiltinDefsCarryNoRegions(t *testing.T) {
	for _, d := range BuiltinDefs(types.NewVarStore()) {
		if !d.Pattern.Region.IsZero() || !d.Expr.Region.IsZero() {
			t.Fatalf("def %v carries a region", d.Pattern.Value)
		}
		c := d.Expr.Value.(*Closure)
		if !c.Body.Region.IsZero() {
			t.Fatalf("closure body carries region %s", c.Body.Region)
		}
		for _, a := range c.Args {
			if !a.Pattern.Region.IsZero() {
				t.Fatalf("parameter carries region %s", a.Pattern.Region)
			}
		}
	}
}

// body returns the single if-then-else a builtin closure consists of.
func body(t *testing.T, d Def) (*Closure, *If) {
	t.Helper()
	c, ok := d.Expr.Value.(*Closure)
	if !ok {
		t.Fatalf("expected closure, got %T", d.Expr.Value)
	}
	x, ok := c.Body.Value.(*If)
	if !ok {
		t.Fatalf("expected if body, got %T", c.Body.Value)
	}
	if len(x.Branches) != 1 {
		t.Fatalf("expected one branch, got %d", len(x.Branches))
	}
	return c, x
}

func params(t *testing.T, c *Closure) []symbols.Symbol {
	t.Helper()
	out := make([]symbols.Symbol, 0, len(c.Args))
	for _, a := range c.Args {
		id, ok := a.Pattern.Value.(*Identifier)
		if !ok {
			t.Fatalf("expected identifier pattern, got %T", a.Pattern.Value)
		}
		out = append(out, id.Symbol)
	}
	return out
}

func expectCall(t *testing.T, e Expr, fn symbols.Symbol, nargs int) *Call {
	t.Helper()
	c, ok := e.(*Call)
	if !ok {
		t.Fatalf("expected call to %s, got %T", fn, e)
	}
	v, ok := c.Fn.Value.(*Var)
	if !ok || v.Symbol != fn {
		t.Fatalf("expected callee %s, got %#v", fn, c.Fn.Value)
	}
	if len(c.Args) != nargs {
		t.Fatalf("%s: expected %d args, got %d", fn, nargs, len(c.Args))
	}
	if c.CalledVia != CalledViaSpace {
		t.Fatalf("%s: called via %d", fn, c.CalledVia)
	}
	return c
}

func expectVar(t *testing.T, e Expr, sym symbols.Symbol) {
	t.Helper()
	v, ok := e.(*Var)
	if !ok || v.Symbol != sym {
		t.Fatalf("expected var %s, got %#v", sym, e)
	}
}

func expectInt(t *testing.T, e Expr, want int64) {
	t.Helper()
	n, ok := e.(*Int)
	if !ok || n.Value != want {
		t.Fatalf("expected literal %d, got %#v", want, e)
	}
}

// expectErrTag checks for `Err name` and returns nothing else.
func expectErrTag(t *testing.T, e Expr, name TagName) {
	t.Helper()
	outer, ok := e.(*Tag)
	if !ok || outer.Name != TagErr || len(outer.Args) != 1 {
		t.Fatalf("expected Err tag, got %#v", e)
	}
	inner, ok := outer.Args[0].Value.Value.(*Tag)
	if !ok || inner.Name != name || len(inner.Args) != 0 {
		t.Fatalf("expected payload %s, got %#v", name, outer.Args[0].Value.Value)
	}
}

// expectOkTag checks for `Ok payload` and returns the payload.
func expectOkTag(t *testing.T, e Expr) Expr {
	t.Helper()
	tag, ok := e.(*Tag)
	if !ok || tag.Name != TagOk || len(tag.Args) != 1 {
		t.Fatalf("expected Ok tag, got %#v", e)
	}
	return tag.Args[0].Value.Value
}

func TestListGetShape(t *testing.T) {
	c, x := body(t, BuiltinDefs(types.NewVarStore())[0])
	ps := params(t, c)
	if len(ps) != 2 || ps[0] != symbols.ListGetArgList || ps[1] != symbols.ListGetArgIndex {
		t.Fatalf("unexpected params %v", ps)
	}

	cond := expectCall(t, x.Branches[0].Cond.Value, symbols.NumLt, 2)
	expectVar(t, cond.Args[0].Value.Value, symbols.ListGetArgIndex)
	length := expectCall(t, cond.Args[1].Value.Value, symbols.ListLen, 1)
	expectVar(t, length.Args[0].Value.Value, symbols.ListGetArgList)

	get := expectCall(t, expectOkTag(t, x.Branches[0].Then.Value), symbols.ListGetUnsafe, 2)
	expectVar(t, get.Args[0].Value.Value, symbols.ListGetArgList)
	expectVar(t, get.Args[1].Value.Value, symbols.ListGetArgIndex)

	expectErrTag(t, x.FinalElse.Value, TagOutOfBounds)
}

func TestListFirstShape(t *testing.T) {
	c, x := body(t, BuiltinDefs(types.NewVarStore())[1])
	ps := params(t, c)
	if len(ps) != 1 || ps[0] != symbols.ListFirstArg {
		t.Fatalf("unexpected params %v", ps)
	}

	cond := expectCall(t, x.Branches[0].Cond.Value, symbols.ListIsEmpty, 1)
	expectVar(t, cond.Args[0].Value.Value, symbols.ListFirstArg)

	// The emptiness guard puts the error first.
	expectErrTag(t, x.Branches[0].Then.Value, TagListWasEmpty)

	get := expectCall(t, expectOkTag(t, x.FinalElse.Value), symbols.ListGetUnsafe, 2)
	expectVar(t, get.Args[0].Value.Value, symbols.ListFirstArg)
	expectInt(t, get.Args[1].Value.Value, 0)
}

func TestIntDivShape(t *testing.T) {
	c, x := body(t, BuiltinDefs(types.NewVarStore())[2])
	ps := params(t, c)
	if len(ps) != 2 || ps[0] != symbols.IntDivArgNumerator || ps[1] != symbols.IntDivArgDenominator {
		t.Fatalf("unexpected params %v", ps)
	}

	cond := expectCall(t, x.Branches[0].Cond.Value, symbols.IntNeqI64, 2)
	expectVar(t, cond.Args[0].Value.Value, symbols.IntDivArgDenominator)
	expectInt(t, cond.Args[1].Value.Value, 0)

	div := expectCall(t, expectOkTag(t, x.Branches[0].Then.Value), symbols.IntDivUnsafe, 2)
	expectVar(t, div.Args[0].Value.Value, symbols.IntDivArgNumerator)
	expectVar(t, div.Args[1].Value.Value, symbols.IntDivArgDenominator)

	expectErrTag(t, x.FinalElse.Value, TagDivByZero)
}

func TestIntAbsShape(t *testing.T) {
	c, x := body(t, BuiltinDefs(types.NewVarStore())[3])
	ps := params(t, c)
	if len(ps) != 1 || ps[0] != symbols.IntAbsArg {
		t.Fatalf("unexpected params %v", ps)
	}

	// 0 < n, so zero itself takes the else branch.
	cond := expectCall(t, x.Branches[0].Cond.Value, symbols.IntLt, 2)
	expectInt(t, cond.Args[0].Value.Value, 0)
	expectVar(t, cond.Args[1].Value.Value, symbols.IntAbsArg)

	expectVar(t, x.Branches[0].Then.Value, symbols.IntAbsArg)

	neg := expectCall(t, x.FinalElse.Value, symbols.NumNeg, 1)
	expectVar(t, neg.Args[0].Value.Value, symbols.IntAbsArg)
}

func TestListGetVariableCount(t *testing.T) {
	store := types.NewVarStore()
	d := BuiltinDefs(store)[0]
	// 2 params, function and return vars, the def's own var, the if's two,
	// Num.isLt and List.len calls (4+3), Ok (3) with List.#getUnsafe (4),
	// Err (3) with OutOfBounds (2).
	const want = 2 + 2 + 1 + 2 + 7 + 7 + 5
	if got := len(Variables(d)); got != want {
		t.Fatalf("List.get mentions %d variables, want %d", got, want)
	}
}
