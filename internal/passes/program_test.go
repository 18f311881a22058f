package passes

import "testing"

func TestProgram_AddExtension_PanicsOnDuplicateKey(t *testing.T) {
	p := newTestProgram()
	p.AddExtension("symbols")

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when adding the same extension key twice")
		}
	}()
	p.AddExtension("symbols")
}

func TestProgram_Extension_PanicsWhenNeverAdded(t *testing.T) {
	p := newTestProgram()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic reading an extension that was never added")
		}
	}()
	p.Extension("symbols")
}

func TestProgram_HasExtension(t *testing.T) {
	p := newTestProgram()
	if p.HasExtension("symbols") {
		t.Fatal("expected HasExtension to be false before AddExtension")
	}
	p.AddExtension("symbols")
	if !p.HasExtension("symbols") {
		t.Fatal("expected HasExtension to be true after AddExtension")
	}
}
