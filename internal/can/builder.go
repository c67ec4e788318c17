package can

import (
	"tagcore/internal/source"
	"tagcore/internal/symbols"
	"tagcore/internal/types"
)

// builder assembles canonical definitions. Every type variable it hands out
// comes from the module's store, so no two syntactic positions share one.
type builder struct {
	vars *types.VarStore
}

func newBuilder(vars *types.VarStore) *builder {
	return &builder{vars: vars}
}

func noRegion(e Expr) source.Located[Expr] {
	return source.NoRegion(e)
}

func (b *builder) fresh() types.Variable {
	return b.vars.Fresh()
}

func (b *builder) args(exprs []Expr) []Arg {
	out := make([]Arg, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, Arg{Var: b.fresh(), Value: noRegion(e)})
	}
	return out
}

func ref(sym symbols.Symbol) Expr {
	return &Var{Symbol: sym}
}

func (b *builder) int(v int64) Expr {
	return &Int{Var: b.fresh(), Value: v}
}

// call applies fn to args.
func (b *builder) call(fn symbols.Symbol, args ...Expr) Expr {
	return &Call{
		FnVar:     b.fresh(),
		Fn:        noRegion(ref(fn)),
		RetVar:    b.fresh(),
		Args:      b.args(args),
		CalledVia: CalledViaSpace,
	}
}

// tag constructs `name args...` in an open union.
func (b *builder) tag(name TagName, args ...Expr) Expr {
	return &Tag{
		VariantVar: b.fresh(),
		ExtVar:     b.fresh(),
		Name:       name,
		Args:       b.args(args),
	}
}

// ifThenElse builds `if cond then thenExpr else elseExpr`.
func (b *builder) ifThenElse(cond, thenExpr, elseExpr Expr) Expr {
	return &If{
		CondVar:   b.fresh(),
		BranchVar: b.fresh(),
		Branches: []IfBranch{{
			Cond: noRegion(cond),
			Then: noRegion(thenExpr),
		}},
		FinalElse: noRegion(elseExpr),
	}
}

// defn binds name to a non-recursive closure over params.
func (b *builder) defn(name symbols.Symbol, params []symbols.Symbol, body Expr) Def {
	closureArgs := make([]PatternArg, 0, len(params))
	for _, p := range params {
		closureArgs = append(closureArgs, PatternArg{
			Var:     b.fresh(),
			Pattern: source.NoRegion[Pattern](&Identifier{Symbol: p}),
		})
	}
	closure := &Closure{
		FunctionVar: b.fresh(),
		Name:        name,
		Recursive:   NotRecursive,
		Args:        closureArgs,
		Body:        noRegion(body),
		ReturnVar:   b.fresh(),
	}
	return Def{
		Pattern:     source.NoRegion[Pattern](&Identifier{Symbol: name}),
		Expr:        noRegion(closure),
		ExprVar:     b.fresh(),
		PatternVars: map[symbols.Symbol]types.Variable{},
	}
}
