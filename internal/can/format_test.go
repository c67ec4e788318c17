package can

import (
	"testing"

	"tagcore/internal/types"
)

func TestFormatBuiltins(t *testing.T) {
	defs := BuiltinDefs(types.NewVarStore())
	tests := []struct {
		name string
		def  Def
		want string
	}{
		{
			name: "List.get",
			def:  defs[0],
			want: "List.get = \\list, index ->\n" +
				"    if Num.isLt index (List.len list) then\n" +
				"        Ok (List.#getUnsafe list index)\n" +
				"    else\n" +
				"        Err OutOfBounds\n",
		},
		{
			name: "List.first",
			def:  defs[1],
			want: "List.first = \\list ->\n" +
				"    if List.isEmpty list then\n" +
				"        Err ListWasEmpty\n" +
				"    else\n" +
				"        Ok (List.#getUnsafe list 0)\n",
		},
		{
			name: "Int.div",
			def:  defs[2],
			want: "Int.div = \\numerator, denominator ->\n" +
				"    if Int.#neqI64 denominator 0 then\n" +
				"        Ok (Int.#divUnsafe numerator denominator)\n" +
				"    else\n" +
				"        Err DivByZero\n",
		},
		{
			name: "Int.abs",
			def:  defs[3],
			want: "Int.abs = \\n ->\n" +
				"    if Int.isLt 0 n then\n" +
				"        n\n" +
				"    else\n" +
				"        Num.neg n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.def); got != tt.want {
				t.Fatalf("Format mismatch\n--- got ---\n%s--- want ---\n%s", got, tt.want)
			}
		})
	}
}
