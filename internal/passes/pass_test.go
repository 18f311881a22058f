package passes

import (
	"errors"
	"testing"

	"github.com/aize-lang/aizec/internal/ir"
)

func newTestProgram() *Program {
	return NewProgram(&ir.Program{})
}

func TestTreePass_CanRun_RequiresPassesAndExtensions(t *testing.T) {
	p := newTestProgram()
	pass := &TreePass{
		PassName:           "NeedsThings",
		RequiredPasses:     []string{"Earlier"},
		RequiredExtensions: []string{"ext"},
	}
	if pass.CanRun(p) {
		t.Fatal("expected CanRun to be false before requirements are met")
	}

	p.markRun("Earlier")
	if pass.CanRun(p) {
		t.Fatal("expected CanRun to still be false without the required extension")
	}

	p.AddExtension("ext")
	if !pass.CanRun(p) {
		t.Fatal("expected CanRun to be true once every requirement is met")
	}
}

func TestTreePass_RunPass_MarksRunAndSuccessful(t *testing.T) {
	p := newTestProgram()
	ran := false
	pass := &TreePass{
		PassName: "Visiting",
		Visit:    func(*Program) error { ran = true; return nil },
	}

	if pass.WasSuccessful() {
		t.Fatal("expected WasSuccessful to be false before RunPass")
	}
	if err := pass.RunPass(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatal("expected Visit to have run")
	}
	if !pass.WasSuccessful() {
		t.Fatal("expected WasSuccessful to be true after a clean RunPass")
	}
	if !p.hasRun("Visiting") {
		t.Fatal("expected the program to record this pass as run")
	}
}

func TestTreePass_RunPass_PropagatesErrorWithoutMarkingRun(t *testing.T) {
	p := newTestProgram()
	wantErr := errors.New("boom")
	pass := &TreePass{
		PassName: "Failing",
		Visit:    func(*Program) error { return wantErr },
	}

	if err := pass.RunPass(p); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if pass.WasSuccessful() {
		t.Fatal("expected WasSuccessful to stay false after a failed RunPass")
	}
	if p.hasRun("Failing") {
		t.Fatal("expected a failed pass not to be marked as run")
	}
}

func TestSequence_CanRun_WhenAnyMemberCan(t *testing.T) {
	p := newTestProgram()
	blocked := &TreePass{PassName: "Blocked", RequiredPasses: []string{"Never"}}
	ready := &TreePass{PassName: "Ready"}
	seq := NewSequence("Seq", blocked, ready)

	if !seq.CanRun(p) {
		t.Fatal("expected the sequence to be runnable once any member is")
	}
}

func TestSequence_RunPass_DrainsEveryMember(t *testing.T) {
	p := newTestProgram()
	var order []string
	first := &TreePass{
		PassName: "First",
		Visit:    func(*Program) error { order = append(order, "First"); return nil },
	}
	second := &TreePass{
		PassName:       "Second",
		RequiredPasses: []string{"First"},
		Visit:          func(*Program) error { order = append(order, "Second"); return nil },
	}
	seq := NewSequence("Seq", second, first)

	if err := seq.RunPass(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "First" || order[1] != "Second" {
		t.Fatalf("order = %v, want [First Second]", order)
	}
	if !p.hasRun("Seq") {
		t.Fatal("expected the sequence itself to be marked as run")
	}
}
