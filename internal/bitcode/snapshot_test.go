package bitcode

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestSnapshotRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	snap, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if snap.Namespace != Namespace {
		t.Fatalf("namespace %q", snap.Namespace)
	}
	catalog := Catalog()
	if len(snap.Entries) != len(catalog) {
		t.Fatalf("entries %d, want %d", len(snap.Entries), len(catalog))
	}
	for i, want := range catalog {
		got, err := snap.Entry(i)
		if err != nil {
			t.Fatalf("entry %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("entry %d: got %+v, want %+v", i, got, want)
		}
	}
	if len(snap.Conversions) != 2 || snap.Conversions[0].Options[3][4] != "roc_builtins.num.int_to_u64_checking_max.u8" {
		t.Fatalf("conversion tables not preserved: %+v", snap.Conversions)
	}
}

func TestReadSnapshotRejectsOtherSchema(t *testing.T) {
	data, err := msgpack.Marshal(&Snapshot{Schema: snapshotSchemaVersion + 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := ReadSnapshot(bytes.NewReader(data)); err == nil {
		t.Fatalf("expected schema mismatch error")
	}
}
