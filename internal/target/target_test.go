package target

import "testing"

func TestParseArchitectureAliases(t *testing.T) {
	cases := map[string]Architecture{
		"x86_64":  X86_64,
		"amd64":   X86_64,
		"386":     X86_32,
		"x86_32":  X86_32,
		"arm64":   Aarch64,
		"aarch64": Aarch64,
		"arm":     Arm,
		"wasm32":  Wasm32,
		" WASM ":  Wasm32,
	}
	for in, want := range cases {
		got, err := ParseArchitecture(in)
		if err != nil {
			t.Fatalf("ParseArchitecture(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseArchitecture(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseArchitecture("riscv64"); err == nil {
		t.Fatalf("expected error for unsupported architecture")
	}
}

func TestArchitectureRoundTripsThroughString(t *testing.T) {
	for _, arch := range All() {
		if !arch.Valid() {
			t.Fatalf("%v reported invalid", arch)
		}
		got, err := ParseArchitecture(arch.String())
		if err != nil || got != arch {
			t.Fatalf("round trip %v: got %v err %v", arch, got, err)
		}
	}
	if Architecture(0).Valid() {
		t.Fatalf("zero architecture must be invalid")
	}
}

func TestPtrWidth(t *testing.T) {
	want := map[Architecture]uint32{X86_64: 8, Aarch64: 8, X86_32: 4, Arm: 4, Wasm32: 4}
	for arch, w := range want {
		if got := (Info{Architecture: arch}).PtrWidth(); got != w {
			t.Fatalf("%v: ptr width %d, want %d", arch, got, w)
		}
	}
}
