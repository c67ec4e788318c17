package bitcode

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Snapshot format changes
const snapshotSchemaVersion uint16 = 2

// Snapshot is the serialized catalog handed to out-of-process backends.
type Snapshot struct {
	Schema      uint16
	Namespace   string
	Count       uint32
	Entries     []SnapshotEntry
	Conversions []SnapshotConversion
}

// SnapshotEntry mirrors Entry with the slot array flattened.
type SnapshotEntry struct {
	Op      string
	Kind    uint8
	Symbol  string   `msgpack:",omitempty"`
	Options []string `msgpack:",omitempty"`
	Arity   uint8    `msgpack:",omitempty"`
	Param   uint8    `msgpack:",omitempty"`
	Ret     uint8    `msgpack:",omitempty"`
}

// SnapshotConversion stores one checked-conversion table, destination-major.
type SnapshotConversion struct {
	Check   string
	Options [][]string
}

// NewSnapshot captures the current catalog.
func NewSnapshot() (*Snapshot, error) {
	entries := Catalog()
	count, err := safecast.Conv[uint32](len(entries))
	if err != nil {
		return nil, fmt.Errorf("catalog size overflow: %w", err)
	}
	snap := &Snapshot{
		Schema:    snapshotSchemaVersion,
		Namespace: Namespace,
		Count:     count,
		Entries:   make([]SnapshotEntry, 0, len(entries)),
	}
	for _, e := range entries {
		se := SnapshotEntry{Op: e.Op, Kind: uint8(e.Kind)}
		if e.Kind == EntryPlain {
			se.Symbol = e.Symbol
		} else {
			se.Options = e.Table.Options[:]
			se.Arity, se.Param, se.Ret = e.Sig.Arity, uint8(e.Sig.Param), uint8(e.Sig.Ret)
		}
		snap.Entries = append(snap.Entries, se)
	}
	for _, conv := range []struct {
		check ConversionCheck
		table IntToIntrinsicName
	}{
		{ConversionCheckMax, NumIntToIntCheckingMax},
		{ConversionCheckMaxAndMin, NumIntToIntCheckingMaxAndMin},
	} {
		sc := SnapshotConversion{Check: conv.check.String()}
		for _, dst := range conv.table.Options {
			sc.Options = append(sc.Options, append([]string(nil), dst.Options[:]...))
		}
		snap.Conversions = append(snap.Conversions, sc)
	}
	return snap, nil
}

// Entry rebuilds the in-memory entry at index i.
func (s *Snapshot) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(s.Entries) {
		return Entry{}, fmt.Errorf("snapshot entry %d out of range", i)
	}
	se := s.Entries[i]
	e := Entry{Op: se.Op, Kind: EntryKind(se.Kind), Symbol: se.Symbol}
	if e.Kind != EntryPlain {
		if len(se.Options) != slotCount {
			return Entry{}, fmt.Errorf("snapshot entry %q: %d slots, want %d", se.Op, len(se.Options), slotCount)
		}
		copy(e.Table.Options[:], se.Options)
		e.Sig = Signature{Arity: se.Arity, Param: Shape(se.Param), Ret: Shape(se.Ret)}
	}
	return e, nil
}

// WriteSnapshot encodes the current catalog to w.
func WriteSnapshot(w io.Writer) error {
	snap, err := NewSnapshot()
	if err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(snap)
}

// ReadSnapshot decodes a catalog written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("snapshot schema %d, want %d", snap.Schema, snapshotSchemaVersion)
	}
	if int(snap.Count) != len(snap.Entries) {
		return nil, fmt.Errorf("snapshot count %d does not match %d entries", snap.Count, len(snap.Entries))
	}
	return &snap, nil
}
