package passes

import "testing"

func TestRegister_AddFoldsIntoNamedSequences(t *testing.T) {
	r := NewRegister()
	a := &TreePass{PassName: "A", Visit: func(*Program) error { return nil }}
	b := &TreePass{PassName: "B", Visit: func(*Program) error { return nil }}

	r.Add(a, "Default")
	r.Add(b, "Default")

	seq := r.Sequence("Default")
	if len(seq.Passes) != 2 {
		t.Fatalf("len(seq.Passes) = %d, want 2", len(seq.Passes))
	}
	if r.Get("A") != Pass(a) {
		t.Fatal("expected Get to return the registered pass by name")
	}
}

func TestRegister_Sequence_CreatesEmptyOnFirstReference(t *testing.T) {
	r := NewRegister()
	seq := r.Sequence("Fresh")
	if seq == nil || len(seq.Passes) != 0 {
		t.Fatalf("expected a fresh empty sequence, got %+v", seq)
	}
	if r.Sequence("Fresh") != seq {
		t.Fatal("expected repeated lookups to return the same sequence")
	}
}

func TestRegister_Get_PanicsWhenUnregistered(t *testing.T) {
	r := NewRegister()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic looking up an unregistered pass")
		}
	}()
	r.Get("Nonexistent")
}
