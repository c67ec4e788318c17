package target

import (
	"fmt"
	"runtime"
	"strings"
)

// Architecture identifies the instruction set a module is compiled for.
type Architecture uint8

const (
	X86_64 Architecture = iota + 1
	X86_32
	Aarch64
	Arm
	Wasm32
)

// All returns every supported architecture in declaration order.
func All() []Architecture {
	return []Architecture{X86_64, X86_32, Aarch64, Arm, Wasm32}
}

func (a Architecture) String() string {
	switch a {
	case X86_64:
		return "x86_64"
	case X86_32:
		return "x86_32"
	case Aarch64:
		return "aarch64"
	case Arm:
		return "arm"
	case Wasm32:
		return "wasm32"
	default:
		return fmt.Sprintf("Architecture(%d)", a)
	}
}

// Valid reports whether a names one of the supported architectures.
func (a Architecture) Valid() bool {
	return a >= X86_64 && a <= Wasm32
}

// PtrWidth returns the pointer size in bytes.
func (a Architecture) PtrWidth() uint32 {
	switch a {
	case X86_64, Aarch64:
		return 8
	case X86_32, Arm, Wasm32:
		return 4
	default:
		panic(fmt.Sprintf("target: unhandled architecture %d", a))
	}
}

// ParseArchitecture accepts the usual spellings, including GOARCH names.
func ParseArchitecture(s string) (Architecture, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x86_64", "x86-64", "amd64":
		return X86_64, nil
	case "x86_32", "x86-32", "i386", "386":
		return X86_32, nil
	case "aarch64", "arm64":
		return Aarch64, nil
	case "arm":
		return Arm, nil
	case "wasm32", "wasm":
		return Wasm32, nil
	default:
		return 0, fmt.Errorf("unknown architecture %q (expected: x86_64|x86_32|aarch64|arm|wasm32)", s)
	}
}

// Info is the read-only description of the compilation target. It is owned by
// the compiler session and passed by value into width queries.
type Info struct {
	Architecture Architecture
}

// PtrWidth returns the pointer size of the target in bytes.
func (i Info) PtrWidth() uint32 {
	return i.Architecture.PtrWidth()
}

func (i Info) String() string {
	return i.Architecture.String()
}

// Host describes the machine the compiler itself is running on.
func Host() (Info, error) {
	arch, err := ParseArchitecture(runtime.GOARCH)
	if err != nil {
		return Info{}, fmt.Errorf("unsupported host: %w", err)
	}
	return Info{Architecture: arch}, nil
}
