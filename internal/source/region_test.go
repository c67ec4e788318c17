package source

import "testing"

func TestNoRegionUsesSentinel(t *testing.T) {
	loc := NoRegion(42)
	if !loc.Region.IsZero() {
		t.Fatalf("expected zero region, got %v", loc.Region)
	}
	if loc.Value != 42 {
		t.Fatalf("value lost: %v", loc.Value)
	}
	if loc.Region.String() != "<no region>" {
		t.Fatalf("unexpected rendering %q", loc.Region.String())
	}
}

func TestRegionCover(t *testing.T) {
	a := Region{StartLine: 2, StartCol: 4, EndLine: 2, EndCol: 9}
	b := Region{StartLine: 1, StartCol: 1, EndLine: 2, EndCol: 5}
	got := a.Cover(b)
	want := Region{StartLine: 1, StartCol: 1, EndLine: 2, EndCol: 9}
	if got != want {
		t.Fatalf("Cover = %v, want %v", got, want)
	}
	if ZeroRegion().Cover(a) != a || a.Cover(ZeroRegion()) != a {
		t.Fatalf("zero region must be the identity for Cover")
	}
}

func TestAtKeepsRegion(t *testing.T) {
	r := Region{StartLine: 3, EndLine: 3, StartCol: 1, EndCol: 2}
	if got := At(r, "x"); got.Region != r || got.Value != "x" {
		t.Fatalf("At lost data: %+v", got)
	}
}
