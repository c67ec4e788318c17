// Package can holds the canonical AST: the fully resolved, type-variable
// annotated form of a module that type inference consumes.
package can

import (
	"tagcore/internal/source"
	"tagcore/internal/symbols"
	"tagcore/internal/types"
)

// Expr is a canonical expression. The set of forms is closed: Var, Int,
// Call, Tag, If and Closure. Consumers switch over them exhaustively.
type Expr interface {
	exprNode()
}

// Pattern is a canonical pattern. Identifier is the only form builtins use.
type Pattern interface {
	patternNode()
}

// CalledVia records the surface syntax a call came from.
type CalledVia uint8

const (
	// CalledViaSpace is ordinary juxtaposition: `f x y`.
	CalledViaSpace CalledVia = iota
	CalledViaBinOp
	CalledViaUnaryOp
)

// Recursive marks whether a closure refers to itself.
type Recursive uint8

const (
	NotRecursive Recursive = iota
	IsRecursive
	TailRecursive
)

func (r Recursive) String() string {
	switch r {
	case NotRecursive:
		return "not-recursive"
	case IsRecursive:
		return "recursive"
	case TailRecursive:
		return "tail-recursive"
	default:
		return "unknown"
	}
}

// TagName is a global tag such as Ok or OutOfBounds.
type TagName string

// Var references a bound symbol.
type Var struct {
	Symbol symbols.Symbol
}

// Int is an integer literal whose precision is left to inference.
type Int struct {
	Var   types.Variable
	Value int64
}

// Arg is one argument slot of a call or tag, with its own type variable.
type Arg struct {
	Var   types.Variable
	Value source.Located[Expr]
}

// Call applies Fn to Args. FnVar types the callee, RetVar the result.
type Call struct {
	FnVar     types.Variable
	Fn        source.Located[Expr]
	RetVar    types.Variable
	Args      []Arg
	CalledVia CalledVia
}

// Tag constructs a tag-union value. ExtVar is the open "rest" of the union,
// which is what lets the tag's discriminant be decided per call site.
type Tag struct {
	VariantVar types.Variable
	ExtVar     types.Variable
	Name       TagName
	Args       []Arg
}

// IfBranch is one `if cond then body` arm.
type IfBranch struct {
	Cond source.Located[Expr]
	Then source.Located[Expr]
}

// If is a chain of guarded branches with a mandatory else.
type If struct {
	CondVar   types.Variable
	BranchVar types.Variable
	Branches  []IfBranch
	FinalElse source.Located[Expr]
}

// PatternArg is a closure parameter with its type variable.
type PatternArg struct {
	Var     types.Variable
	Pattern source.Located[Pattern]
}

// Closure is a lambda. Name is the symbol the closure is bound to.
type Closure struct {
	FunctionVar types.Variable
	Name        symbols.Symbol
	Recursive   Recursive
	Args        []PatternArg
	Body        source.Located[Expr]
	ReturnVar   types.Variable
}

func (*Var) exprNode()     {}
func (*Int) exprNode()     {}
func (*Call) exprNode()    {}
func (*Tag) exprNode()     {}
func (*If) exprNode()      {}
func (*Closure) exprNode() {}

// Identifier binds a single symbol.
type Identifier struct {
	Symbol symbols.Symbol
}

func (*Identifier) patternNode() {}

// Def is a top-level definition. Builtin defs carry no annotation: their
// types are inferred like any unannotated user function.
type Def struct {
	Pattern     source.Located[Pattern]
	Expr        source.Located[Expr]
	ExprVar     types.Variable
	PatternVars map[symbols.Symbol]types.Variable
}

// Symbol returns the symbol bound by an identifier pattern.
func (d *Def) Symbol() (symbols.Symbol, bool) {
	if d == nil {
		return symbols.NoSymbol, false
	}
	id, ok := d.Pattern.Value.(*Identifier)
	if !ok || id == nil {
		return symbols.NoSymbol, false
	}
	return id.Symbol, true
}
