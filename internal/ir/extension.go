package ir

import "fmt"

// slotKey addresses one (node, named slot) cell inside an Extension. Most
// node kinds only ever populate one slot ("expr", "stmt", ...); a few, like
// the analysis passes' shared "decl" slot used by VarDecl/Function/Lambda,
// reuse the same slot name across otherwise-unrelated node kinds.
type slotKey struct {
	node NodeID
	slot string
}

// Extension is a side-table of analysis-derived data keyed by IR node. IR
// nodes carry only syntactic content plus Position; everything a pass
// computes is attached here instead. Extension is set-once per (node, slot):
// a second Set on the same cell is a programmer error, not a silent
// overwrite.
type Extension struct {
	name    string
	general any
	hasGen  bool
	cells   map[slotKey]any
}

// NewExtension creates an empty Extension. name is used only in error
// messages.
func NewExtension(name string) *Extension {
	return &Extension{name: name, cells: make(map[slotKey]any)}
}

// SetGeneral populates the extension's single "general" slot (e.g.
// InitSymbols stashes the built-in integer type table there). It may be set
// only once.
func SetGeneral[T any](e *Extension, value T) {
	if e.hasGen {
		panic(fmt.Errorf("extension %s: general slot already set", e.name))
	}
	e.general = value
	e.hasGen = true
}

// General reads the extension's "general" slot, panicking if it was never
// set.
func General[T any](e *Extension) T {
	if !e.hasGen {
		panic(fmt.Errorf("extension %s: general slot read before being set", e.name))
	}
	return e.general.(T)
}

// Set populates the (node, slot) cell. Setting the same cell twice panics —
// callers that legitimately need to replace a value (there are none in this
// pipeline) must go through a different slot name.
func Set[T any](e *Extension, node Node, slot string, value T) {
	key := slotKey{node: node.ID(), slot: slot}
	if _, exists := e.cells[key]; exists {
		panic(fmt.Errorf("extension %s: slot %q already set for node %d", e.name, slot, node.ID()))
	}
	e.cells[key] = value
}

// Get reads the (node, slot) cell, panicking with a descriptive error if it
// was never set for that (node, slot).
func Get[T any](e *Extension, node Node, slot string) T {
	key := slotKey{node: node.ID(), slot: slot}
	v, ok := e.cells[key]
	if !ok {
		panic(fmt.Errorf("extension %s: node %T (id %d) has no data for slot %q", e.name, node, node.ID(), slot))
	}
	return v.(T)
}

// Has reports whether the (node, slot) cell has been populated, without
// panicking. Used by passes that need to branch on whether an earlier,
// optional pass ran.
func Has(e *Extension, node Node, slot string) bool {
	_, ok := e.cells[slotKey{node: node.ID(), slot: slot}]
	return ok
}
