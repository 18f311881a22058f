package passes

// Register is a name-keyed catalog of passes, with the ability to fold
// individual passes into named Sequences at registration time. Unlike the
// Python original's process-wide singleton, Register is an explicit value
// a driver constructs, consistent with this codebase's
// choice to never hide mutable compiler state behind package globals
// (mirrors diagnostics.Sink).
type Register struct {
	passes    map[string]Pass
	sequences map[string]*Sequence
}

func NewRegister() *Register {
	return &Register{passes: make(map[string]Pass), sequences: make(map[string]*Sequence)}
}

// Sequence returns the named sequence, creating it empty if this is the
// first reference to it.
func (r *Register) Sequence(name string) *Sequence {
	seq, ok := r.sequences[name]
	if !ok {
		seq = NewSequence(name)
		r.sequences[name] = seq
	}
	return seq
}

// Add registers p under its own name, optionally folding it into the named
// sequences (created on demand).
func (r *Register) Add(p Pass, toSequences ...string) Pass {
	r.passes[p.Name()] = p
	for _, seqName := range toSequences {
		seq := r.Sequence(seqName)
		seq.Passes = append(seq.Passes, p)
	}
	return p
}

// Get returns the pass registered under name, panicking if none was —
// looking up an unregistered pass by name is always a caller bug, since
// pass names are fixed at compile time.
func (r *Register) Get(name string) Pass {
	p, ok := r.passes[name]
	if !ok {
		panic("passes: no pass registered as " + name)
	}
	return p
}
