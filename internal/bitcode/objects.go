package bitcode

import (
	"errors"
	"fmt"
	"strings"

	"tagcore/internal/target"
)

// Paths to the precompiled builtins objects. Release builds set them with
//
//	go build -ldflags "-X tagcore/internal/bitcode.HostObjectPath=... -X tagcore/internal/bitcode.Wasm32ObjectPath=..."
var (
	HostObjectPath   = ""
	Wasm32ObjectPath = ""
)

// ErrObjectPathUnset is returned when neither the build nor the project
// configuration provided an object for the requested target.
var ErrObjectPathUnset = errors.New("builtins object path was not set at build time")

// ObjectPaths locates the builtins object for each supported target family.
type ObjectPaths struct {
	Host   string
	Wasm32 string
}

// BuildObjectPaths returns the paths baked in by the linker.
func BuildObjectPaths() ObjectPaths {
	return ObjectPaths{
		Host:   strings.TrimSpace(HostObjectPath),
		Wasm32: strings.TrimSpace(Wasm32ObjectPath),
	}
}

// WithOverrides replaces the paths that are non-empty in other.
func (p ObjectPaths) WithOverrides(other ObjectPaths) ObjectPaths {
	if other.Host != "" {
		p.Host = other.Host
	}
	if other.Wasm32 != "" {
		p.Wasm32 = other.Wasm32
	}
	return p
}

// For returns the object that must be linked for arch.
func (p ObjectPaths) For(arch target.Architecture) (string, error) {
	var path, env string
	switch arch {
	case target.Wasm32:
		path, env = p.Wasm32, "Wasm32ObjectPath"
	case target.X86_64, target.X86_32, target.Aarch64, target.Arm:
		path, env = p.Host, "HostObjectPath"
	default:
		return "", fmt.Errorf("no builtins object for architecture %v", arch)
	}
	if path == "" {
		return "", fmt.Errorf("%v (%s): %w", arch, env, ErrObjectPathUnset)
	}
	return path, nil
}
