package passes

// Pass is anything the scheduler can run: a single analysis pass or a named
// group of them.
type Pass interface {
	Name() string
	CanRun(p *Program) bool
	RunPass(p *Program) error
}

// TreePass is a single analysis pass that walks the IR tree once. Concrete
// passes are TreePass values whose Visit function does the actual walk
// using ir.Walk or its own recursion as the pass's scoping needs require:
// keep one generic walk helper, and let passes that need scope-aware
// recursion, like the resolver, walk by hand instead of forcing that
// recursion through the generic helper.
type TreePass struct {
	PassName           string
	RequiredPasses     []string
	RequiredExtensions []string
	Visit              func(p *Program) error
	successful         bool
}

func (t *TreePass) Name() string { return t.PassName }

// CanRun reports whether every required pass has already completed and
// every required extension has already been added.
func (t *TreePass) CanRun(p *Program) bool {
	for _, req := range t.RequiredPasses {
		if !p.hasRun(req) {
			return false
		}
	}
	for _, ext := range t.RequiredExtensions {
		if !p.HasExtension(ext) {
			return false
		}
	}
	return true
}

func (t *TreePass) RunPass(p *Program) error {
	if err := t.Visit(p); err != nil {
		return err
	}
	t.successful = true
	p.markRun(t.PassName)
	return nil
}

// WasSuccessful reports whether the last RunPass call completed without
// error.
func (t *TreePass) WasSuccessful() bool { return t.successful }

// Sequence is a named, ordered-but-independently-scheduled group of passes:
// it is runnable as soon as any member pass is, and running it drains the
// whole group through its own Scheduler.
type Sequence struct {
	SeqName string
	Passes  []Pass
}

func NewSequence(name string, members ...Pass) *Sequence {
	return &Sequence{SeqName: name, Passes: members}
}

func (s *Sequence) Name() string { return s.SeqName }

func (s *Sequence) CanRun(p *Program) bool {
	for _, member := range s.Passes {
		if member.CanRun(p) {
			return true
		}
	}
	return false
}

func (s *Sequence) RunPass(p *Program) error {
	scheduler := NewScheduler(p, append([]Pass(nil), s.Passes...))
	if err := scheduler.RunScheduled(); err != nil {
		return err
	}
	p.markRun(s.SeqName)
	return nil
}
