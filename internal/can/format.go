package can

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a definition in source-like syntax:
//
//	List.get = \list, index ->
//	    if Num.isLt index (List.len list) then
//	        Ok (List.#getUnsafe list index)
//	    else
//	        Err OutOfBounds
func Format(d Def) string {
	var sb strings.Builder
	p := printer{sb: &sb}
	p.def(d)
	return sb.String()
}

type printer struct {
	sb     *strings.Builder
	indent int
}

func (p *printer) line(format string, args ...any) {
	p.sb.WriteString(strings.Repeat("    ", p.indent))
	fmt.Fprintf(p.sb, format, args...)
	p.sb.WriteByte('\n')
}

func (p *printer) def(d Def) {
	name := "_"
	if sym, ok := d.Symbol(); ok {
		name = sym.String()
	}
	closure, ok := d.Expr.Value.(*Closure)
	if !ok {
		p.line("%s = %s", name, inline(d.Expr.Value))
		return
	}
	params := make([]string, 0, len(closure.Args))
	for _, a := range closure.Args {
		params = append(params, patternString(a.Pattern.Value))
	}
	p.line("%s = \\%s ->", name, strings.Join(params, ", "))
	p.indent++
	p.block(closure.Body.Value)
	p.indent--
}

func (p *printer) block(e Expr) {
	x, ok := e.(*If)
	if !ok {
		p.line("%s", inline(e))
		return
	}
	for i, br := range x.Branches {
		kw := "if"
		if i > 0 {
			kw = "else if"
		}
		p.line("%s %s then", kw, inline(br.Cond.Value))
		p.indent++
		p.block(br.Then.Value)
		p.indent--
	}
	p.line("else")
	p.indent++
	p.block(x.FinalElse.Value)
	p.indent--
}

func patternString(pat Pattern) string {
	switch x := pat.(type) {
	case *Identifier:
		return x.Symbol.String()
	default:
		return "_"
	}
}

func inline(e Expr) string {
	switch x := e.(type) {
	case *Var:
		return x.Symbol.String()
	case *Int:
		return strconv.FormatInt(x.Value, 10)
	case *Call:
		parts := []string{operand(x.Fn.Value)}
		for _, a := range x.Args {
			parts = append(parts, operand(a.Value.Value))
		}
		return strings.Join(parts, " ")
	case *Tag:
		parts := []string{string(x.Name)}
		for _, a := range x.Args {
			parts = append(parts, operand(a.Value.Value))
		}
		return strings.Join(parts, " ")
	case *If:
		var sb strings.Builder
		for _, br := range x.Branches {
			fmt.Fprintf(&sb, "if %s then %s else ", inline(br.Cond.Value), inline(br.Then.Value))
		}
		sb.WriteString(inline(x.FinalElse.Value))
		return sb.String()
	case *Closure:
		params := make([]string, 0, len(x.Args))
		for _, a := range x.Args {
			params = append(params, patternString(a.Pattern.Value))
		}
		return fmt.Sprintf("\\%s -> %s", strings.Join(params, ", "), inline(x.Body.Value))
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

// operand parenthesizes applications used as arguments.
func operand(e Expr) string {
	switch x := e.(type) {
	case *Call, *If, *Closure:
		return "(" + inline(e) + ")"
	case *Tag:
		if len(x.Args) > 0 {
			return "(" + inline(e) + ")"
		}
	}
	return inline(e)
}
