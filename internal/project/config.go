// Package project loads the tagcore.toml / tagcore.yaml build configuration.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"tagcore/internal/bitcode"
	"tagcore/internal/target"
)

// Config is the parsed project configuration.
type Config struct {
	Target   TargetConfig   `toml:"target" yaml:"target"`
	Builtins BuiltinsConfig `toml:"builtins" yaml:"builtins"`
	Build    BuildConfig    `toml:"build" yaml:"build"`
	Trace    TraceConfig    `toml:"trace" yaml:"trace"`
}

// TargetConfig selects the compilation target. An empty Arch means the host.
type TargetConfig struct {
	Arch string `toml:"arch" yaml:"arch" validate:"omitempty,arch"`
}

// BuiltinsConfig overrides the precompiled builtins object paths baked in
// at build time.
type BuiltinsConfig struct {
	HostObject   string `toml:"host_object" yaml:"host_object"`
	Wasm32Object string `toml:"wasm32_object" yaml:"wasm32_object"`
}

// BuildConfig controls builtin synthesis.
type BuildConfig struct {
	Jobs    int      `toml:"jobs" yaml:"jobs" validate:"gte=0,lte=256"`
	Modules []string `toml:"modules" yaml:"modules" validate:"unique,dive,required,alphanum"`
}

// TraceConfig sets the default trace level.
type TraceConfig struct {
	Level string `toml:"level" yaml:"level" validate:"omitempty,oneof=off error phase detail debug"`
}

// File is a loaded config with its location.
type File struct {
	Path   string
	Root   string
	Config Config
}

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("arch", func(fl validator.FieldLevel) bool {
		_, err := target.ParseArchitecture(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("project: register arch validation: %v", err))
	}
	return v
}

// Load reads and validates the config at path. The format follows the
// file extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	return &File{Path: abs, Root: filepath.Dir(abs), Config: cfg}, nil
}

// Discover finds the nearest config above startDir and loads it. ok is false
// when there is none.
func Discover(startDir string) (file *File, ok bool, err error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	file, err = Load(path)
	if err != nil {
		return nil, true, err
	}
	return file, true, nil
}

// Parse decodes data as TOML (".toml") or YAML (".yaml", ".yml") and
// validates the result.
func Parse(data []byte, ext string) (Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: %q fails %q", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// TargetInfo resolves the configured target, falling back to the host.
func (c *Config) TargetInfo() (target.Info, error) {
	if strings.TrimSpace(c.Target.Arch) == "" {
		return target.Host()
	}
	arch, err := target.ParseArchitecture(c.Target.Arch)
	if err != nil {
		return target.Info{}, err
	}
	return target.Info{Architecture: arch}, nil
}

// ObjectPaths returns the build-time object paths with config overrides.
// Relative override paths are taken relative to root.
func (c *Config) ObjectPaths(root string) bitcode.ObjectPaths {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) || root == "" {
			return p
		}
		return filepath.Join(root, p)
	}
	return bitcode.BuildObjectPaths().WithOverrides(bitcode.ObjectPaths{
		Host:   abs(c.Builtins.HostObject),
		Wasm32: abs(c.Builtins.Wasm32Object),
	})
}
