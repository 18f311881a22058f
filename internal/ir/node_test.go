package ir

import (
	"testing"

	"github.com/aize-lang/aizec/internal/position"
)

func TestNewID_AllocatesDistinctIncreasingIDs(t *testing.T) {
	ResetIDs()
	a := NewID()
	b := NewID()
	if a == b {
		t.Fatal("expected two calls to NewID to return distinct IDs")
	}
	if !(a < b) {
		t.Fatalf("a=%d, b=%d, want a < b", a, b)
	}
}

func TestResetIDs_RestartsCounter(t *testing.T) {
	ResetIDs()
	first := NewID()
	ResetIDs()
	second := NewID()
	if first != second {
		t.Fatalf("first=%d, second=%d, want equal after ResetIDs", first, second)
	}
}

func TestBase_IDAndPos(t *testing.T) {
	ResetIDs()
	pos := position.BuiltinPosition{Name: "test"}
	b := newBase(pos)
	if b.ID() == 0 {
		t.Fatal("expected a non-zero node ID")
	}
	if b.Pos() != position.Position(pos) {
		t.Fatalf("Pos() = %v, want %v", b.Pos(), pos)
	}
}

func TestBase_DistinctInstancesGetDistinctIDs(t *testing.T) {
	pos := position.NoPosition{}
	a := newBase(pos)
	b := newBase(pos)
	if a.ID() == b.ID() {
		t.Fatal("expected distinct base instances to receive distinct node IDs")
	}
}
