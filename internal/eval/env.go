package eval

import (
	"fmt"

	"tagcore/internal/can"
	"tagcore/internal/symbols"
)

const maxDepth = 512

// Env holds top-level bindings. It is not safe for concurrent use.
type Env struct {
	globals map[symbols.Symbol]Value
}

// NewEnv returns an environment with only the primitives bound.
func NewEnv() *Env {
	return &Env{globals: make(map[symbols.Symbol]Value, 8)}
}

// NewBuiltinEnv returns an environment with defs defined in order.
func NewBuiltinEnv(defs []can.Def) (*Env, error) {
	env := NewEnv()
	for i := range defs {
		if err := env.Define(defs[i]); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// Define evaluates a top-level definition and binds its symbol.
func (e *Env) Define(d can.Def) error {
	sym, ok := d.Symbol()
	if !ok {
		return fmt.Errorf("eval: definition without identifier pattern")
	}
	ev := e.evaluator()
	v, err := ev.eval(d.Expr.Value, nil)
	if err != nil {
		return fmt.Errorf("define %s: %w", sym, err)
	}
	e.globals[sym] = v
	return nil
}

// Lookup returns the value bound to sym, if any.
func (e *Env) Lookup(sym symbols.Symbol) (Value, bool) {
	if v, ok := e.globals[sym]; ok {
		return v, true
	}
	if _, ok := primitives[sym]; ok {
		return Value{Kind: VKPrimitive, Sym: sym}, true
	}
	return Value{}, false
}

// Call applies the function bound to sym.
func (e *Env) Call(sym symbols.Symbol, args ...Value) (Value, error) {
	ev := e.evaluator()
	fn, ok := e.Lookup(sym)
	if !ok {
		return Value{}, ev.fail(ErrUnbound, "%s is not defined", sym)
	}
	return ev.apply(fn, args)
}

func (e *Env) evaluator() *evaluator {
	return &evaluator{env: e}
}

type evaluator struct {
	env   *Env
	stack []symbols.Symbol
}

type locals map[symbols.Symbol]Value

func (ev *evaluator) lookup(sym symbols.Symbol, scope locals) (Value, error) {
	if v, ok := scope[sym]; ok {
		return v, nil
	}
	if v, ok := ev.env.Lookup(sym); ok {
		return v, nil
	}
	return Value{}, ev.fail(ErrUnbound, "%s is not defined", sym)
}

func (ev *evaluator) eval(e can.Expr, scope locals) (Value, error) {
	switch x := e.(type) {
	case *can.Var:
		return ev.lookup(x.Symbol, scope)
	case *can.Int:
		return MakeInt(x.Value), nil
	case *can.Tag:
		payload, err := ev.evalArgs(x.Args, scope)
		if err != nil {
			return Value{}, err
		}
		return MakeTag(x.Name, payload...), nil
	case *can.Call:
		fn, err := ev.eval(x.Fn.Value, scope)
		if err != nil {
			return Value{}, err
		}
		args, err := ev.evalArgs(x.Args, scope)
		if err != nil {
			return Value{}, err
		}
		return ev.apply(fn, args)
	case *can.If:
		for _, br := range x.Branches {
			cond, err := ev.eval(br.Cond.Value, scope)
			if err != nil {
				return Value{}, err
			}
			if cond.Kind != VKBool {
				return Value{}, ev.fail(ErrTypeMismatch, "if condition is %s, not bool", cond.Kind)
			}
			if cond.Bool {
				return ev.eval(br.Then.Value, scope)
			}
		}
		return ev.eval(x.FinalElse.Value, scope)
	case *can.Closure:
		params := make([]symbols.Symbol, 0, len(x.Args))
		for _, a := range x.Args {
			id, ok := a.Pattern.Value.(*can.Identifier)
			if !ok {
				return Value{}, ev.fail(ErrUnsupported, "closure parameter pattern %T", a.Pattern.Value)
			}
			params = append(params, id.Symbol)
		}
		captured := make(map[symbols.Symbol]Value, len(scope))
		for k, v := range scope {
			captured[k] = v
		}
		return Value{Kind: VKClosure, Fn: &Closure{
			Name:   x.Name,
			Params: params,
			Body:   x.Body.Value,
			Env:    captured,
		}}, nil
	default:
		return Value{}, ev.fail(ErrUnsupported, "expression %T", e)
	}
}

func (ev *evaluator) evalArgs(args []can.Arg, scope locals) ([]Value, error) {
	out := make([]Value, 0, len(args))
	for _, a := range args {
		v, err := ev.eval(a.Value.Value, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (ev *evaluator) apply(fn Value, args []Value) (Value, error) {
	if len(ev.stack) >= maxDepth {
		return Value{}, ev.fail(ErrStackOverflow, "call depth exceeds %d", maxDepth)
	}
	switch fn.Kind {
	case VKPrimitive:
		p := primitives[fn.Sym]
		if len(args) != p.arity {
			return Value{}, ev.fail(ErrArity, "%s takes %d arguments, got %d", fn.Sym, p.arity, len(args))
		}
		ev.stack = append(ev.stack, fn.Sym)
		defer ev.pop()
		return p.fn(ev, args)
	case VKClosure:
		c := fn.Fn
		if len(args) != len(c.Params) {
			return Value{}, ev.fail(ErrArity, "%s takes %d arguments, got %d", c.Name, len(c.Params), len(args))
		}
		scope := make(locals, len(c.Env)+len(args))
		for k, v := range c.Env {
			scope[k] = v
		}
		for i, p := range c.Params {
			scope[p] = args[i]
		}
		ev.stack = append(ev.stack, c.Name)
		defer ev.pop()
		return ev.eval(c.Body, scope)
	default:
		return Value{}, ev.fail(ErrNotCallable, "cannot call %s", fn.Kind)
	}
}

func (ev *evaluator) pop() {
	ev.stack = ev.stack[:len(ev.stack)-1]
}
