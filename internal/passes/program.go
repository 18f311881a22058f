// Package passes implements the pass framework: a
// pass declares the passes and extensions it requires, a scheduler runs
// whatever pass is currently runnable until none are left or nothing can
// make progress.
package passes

import "github.com/aize-lang/aizec/internal/ir"

// Program is the mutable compilation unit every pass operates on: the IR
// tree itself, the set of passes that have already completed, and the
// extension tables those passes attached.
type Program struct {
	IR         *ir.Program
	ranPasses  map[string]bool
	extensions map[string]*ir.Extension
}

func NewProgram(program *ir.Program) *Program {
	return &Program{
		IR:         program,
		ranPasses:  make(map[string]bool),
		extensions: make(map[string]*ir.Extension),
	}
}

func (p *Program) hasRun(name string) bool { return p.ranPasses[name] }
func (p *Program) markRun(name string)     { p.ranPasses[name] = true }

// AddExtension registers a new, empty extension table under key, panicking
// if one is already registered there — a pass should only ever add its own
// extension once.
func (p *Program) AddExtension(key string) *ir.Extension {
	if _, exists := p.extensions[key]; exists {
		panic("passes: extension " + key + " already added")
	}
	ext := ir.NewExtension(key)
	p.extensions[key] = ext
	return ext
}

// HasExtension reports whether an extension has been added under key.
func (p *Program) HasExtension(key string) bool {
	_, ok := p.extensions[key]
	return ok
}

// Extension returns the extension registered under key, panicking if it was
// never added — the pass that reads it should have declared it as a
// required extension so this can never happen in a correctly scheduled run.
func (p *Program) Extension(key string) *ir.Extension {
	ext, ok := p.extensions[key]
	if !ok {
		panic("passes: extension " + key + " has not been added yet; declare it as required")
	}
	return ext
}
