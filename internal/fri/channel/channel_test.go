package channel

import (
	"testing"

	"github.com/vybium/fri-commit/internal/fri/core"
)

func TestChannelRecordLookupRoundTrip(t *testing.T) {
	// Invariant 7: record(k, r); lookup(k) == r.
	ch := New(1)
	key := core.BLS12381Field.NewElementFromInt64(5)
	var root core.Digest
	root[0] = 0xab

	ch.Record(key, root)

	got, ok := ch.Lookup(key)
	if !ok {
		t.Fatal("expected lookup to find a recorded root")
	}
	if got != root {
		t.Errorf("got %x, want %x", got, root)
	}
}

func TestChannelLookupMiss(t *testing.T) {
	ch := New(1)
	key := core.BLS12381Field.NewElementFromInt64(5)

	_, ok := ch.Lookup(key)
	if ok {
		t.Error("expected lookup miss on an unrecorded key")
	}
}

func TestChannelRecordOverwritesSilently(t *testing.T) {
	ch := New(1)
	key := core.BLS12381Field.Zero()

	var first, second core.Digest
	first[0] = 1
	second[0] = 2

	ch.Record(key, first)
	ch.Record(key, second)

	got, ok := ch.Lookup(key)
	if !ok {
		t.Fatal("expected a recorded root")
	}
	if got != second {
		t.Errorf("expected later record to win: got %x, want %x", got, second)
	}
}

func TestChannelDeterministicForSameSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 10; i++ {
		ca := a.GetChallenge(core.BLS12381Field)
		cb := b.GetChallenge(core.BLS12381Field)
		if !ca.Equal(cb) {
			t.Fatalf("draw %d: challenges diverged between channels with the same seed", i)
		}
	}
}

func TestChannelDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 5; i++ {
		if a.GetIndex() != b.GetIndex() {
			same = false
		}
	}
	if same {
		t.Error("expected channels with different seeds to draw different indices")
	}
}
