package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Fatalf("Version should have a default value")
	}
}

func TestStringFallsBackToDev(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "  "
	if got := String(); got != "dev" {
		t.Fatalf("String() = %q", got)
	}
	Version = " 1.2.3 "
	if got := String(); got != "1.2.3" {
		t.Fatalf("String() = %q", got)
	}
}

func TestColoredWithoutColorIsPlain(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = origVersion, origNoColor })
	color.NoColor = true

	for _, v := range []string{"0.1.0-dev", "1.2.3", "1.2.3-rc.1+build.123", "nightly"} {
		Version = v
		if got := Colored(); got != v {
			t.Fatalf("Colored() = %q, want %q", got, v)
		}
	}
}

func TestColoredHighlightsParts(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = origVersion, origNoColor })
	color.NoColor = false

	Version = "1.2.3"
	if got := Colored(); got == "1.2.3" {
		t.Fatalf("expected escape codes, got plain %q", got)
	}
}
