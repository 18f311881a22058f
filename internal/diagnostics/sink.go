package diagnostics

import "fmt"

// Message is anything the sink can accumulate and later render. Concrete
// families (DefinitionError, TypeCheckingError, FlowError, ...) live in
// internal/analysis and internal/imports, close to the code that raises
// them, the way aizec keeps DefinitionError etc. inside default_analysis.py
// rather than in its generic error module.
type Message interface {
	Level() Level
	Display(r *Reporter)
}

// Thresholds are the three inclusive-lower-bound cutoffs controlling a
// Sink's behavior. Default: ThrowAt=Never, ImmediateFlushAt=Fatal, FailAt=Error.
type Thresholds struct {
	ThrowAt          Level
	ImmediateFlushAt Level
	FailAt           Level
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		ThrowAt:          LevelNever,
		ImmediateFlushAt: LevelFatal,
		FailAt:           LevelError,
	}
}

// Thrown is raised by Sink.Handle when a message's level reaches ThrowAt.
type Thrown struct {
	Message Message
}

func (t *Thrown) Error() string {
	return fmt.Sprintf("diagnostics: thrown message at level %s", t.Message.Level())
}

// FailFlag is raised after a flush observes messages at or above FailAt. The
// driver is expected to convert this into a non-zero exit code.
type FailFlag struct {
	Culprits []Message
}

func (f *FailFlag) Error() string {
	return fmt.Sprintf("diagnostics: %d message(s) at or above the fail threshold", len(f.Culprits))
}

// Sink buffers messages and flushes them through a Reporter. It is an
// explicit value threaded through the pass pipeline, not a package-level
// singleton — a departure from aizec's MessageHandler made deliberately so
// multiple
// compilations (e.g. concurrent LSP requests) never share state.
type Sink struct {
	reporter   *Reporter
	thresholds Thresholds
	messages   []Message
	flushing   bool
}

func NewSink(reporter *Reporter, thresholds Thresholds) *Sink {
	return &Sink{reporter: reporter, thresholds: thresholds}
}

// Handle accumulates msg, throwing or immediately flushing per thresholds.
// It panics with *Thrown when the throw threshold is met, matching the
// exception-based control flow aizec's handle_message uses to unwind out of
// a pass; callers that want to catch this should recover() at the pass
// boundary (passes.Scheduler.RunScheduled does not recover it).
func (s *Sink) Handle(msg Message) {
	if msg.Level() >= s.thresholds.ThrowAt {
		panic(&Thrown{Message: msg})
	}
	s.messages = append(s.messages, msg)
	if msg.Level() >= s.thresholds.ImmediateFlushAt {
		s.Flush()
	}
}

// Flush is re-entrant-safe: a Flush triggered while another Flush is already
// running (e.g. Handle called from within Display) is a no-op, matching
// MessageHandler's is_flushing guard.
func (s *Sink) Flush() {
	if s.flushing {
		return
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	var culprits []Message
	for i, msg := range s.messages {
		msg.Display(s.reporter)
		if i+1 < len(s.messages) {
			s.reporter.Separate()
		}
		if msg.Level() >= s.thresholds.FailAt {
			culprits = append(culprits, msg)
		}
	}
	s.reporter.Flush()
	s.messages = nil

	if len(culprits) > 0 {
		panic(&FailFlag{Culprits: culprits})
	}
}

// Messages returns everything accumulated since the last Flush, without
// flushing. Useful for tests asserting on message counts.
func (s *Sink) Messages() []Message {
	return s.messages
}
