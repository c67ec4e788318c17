package eval

import (
	"fmt"
	"strings"

	"tagcore/internal/symbols"
)

// ErrorCode identifies why evaluation stopped.
type ErrorCode int

// Stable error codes - do not change values.
const (
	ErrTypeMismatch  ErrorCode = 2001 // EV2001: operand of the wrong kind
	ErrUnbound       ErrorCode = 2002 // EV2002: symbol has no value
	ErrArity         ErrorCode = 2003 // EV2003: wrong number of arguments
	ErrOutOfBounds   ErrorCode = 2004 // EV2004: unchecked index out of range
	ErrDivByZero     ErrorCode = 2005 // EV2005: unchecked division by zero
	ErrOverflow      ErrorCode = 2006 // EV2006: integer overflow
	ErrNotCallable   ErrorCode = 2007 // EV2007: callee is not a function
	ErrStackOverflow ErrorCode = 2008 // EV2008: call depth exceeded
	ErrUnsupported   ErrorCode = 2999 // EV2999: expression form not handled
)

func (c ErrorCode) String() string {
	return fmt.Sprintf("EV%d", c)
}

// Error is a runtime failure. Backtrace lists the functions being applied,
// innermost first.
type Error struct {
	Code      ErrorCode
	Message   string
	Backtrace []symbols.Symbol
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.Backtrace) == 0 {
		return fmt.Sprintf("eval %s: %s", e.Code, e.Message)
	}
	names := make([]string, 0, len(e.Backtrace))
	for _, s := range e.Backtrace {
		names = append(names, s.String())
	}
	return fmt.Sprintf("eval %s: %s (in %s)", e.Code, e.Message, strings.Join(names, " <- "))
}

func (ev *evaluator) fail(code ErrorCode, format string, args ...any) *Error {
	bt := make([]symbols.Symbol, 0, len(ev.stack))
	for i := len(ev.stack) - 1; i >= 0; i-- {
		bt = append(bt, ev.stack[i])
	}
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Backtrace: bt}
}
