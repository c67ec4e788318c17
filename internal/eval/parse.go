package eval

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue reads a command-line argument. Integers parse as ints; a
// bracketed or comma-separated sequence such as "[1,2]", "1,2,3" or "[]"
// parses as a list of ints.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	bracketed := strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
	if bracketed {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if !bracketed && !strings.Contains(s, ",") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse %q: %w", s, err)
		}
		return MakeInt(n), nil
	}
	if s == "" {
		return MakeList(), nil
	}
	parts := strings.Split(s, ",")
	elems := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse list element %q: %w", p, err)
		}
		elems = append(elems, n)
	}
	return MakeList(elems...), nil
}
