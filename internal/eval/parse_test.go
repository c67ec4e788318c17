package eval

import "testing"

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"5", MakeInt(5)},
		{"-5", MakeInt(-5)},
		{"10,20,30", MakeList(10, 20, 30)},
		{"[10, 20]", MakeList(10, 20)},
		{"[]", MakeList()},
		{"[7]", MakeList(7)},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("ParseValue(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "x", "1,,2", "[a]"} {
		if _, err := ParseValue(bad); err == nil {
			t.Fatalf("ParseValue(%q) should fail", bad)
		}
	}
}
