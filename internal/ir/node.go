// Package ir defines the intermediate representation every analysis pass
// operates on: a fixed tree of node kinds plus the extension side-tables
// that carry everything the passes compute. No pass after lowering mutates
// a node's syntactic fields, except the resolver's Call->MethodCall rewrite,
// the resolver's replacement of child expressions with implicit
// CastInt/CastUnion nodes, and the mangler's Function.Name overwrite.
package ir

import (
	"sync/atomic"

	"github.com/aize-lang/aizec/internal/position"
)

// NodeID is a stable, dense identifier for an IR node, used as the key into
// every Extension table instead of the node pointer itself. This avoids
// identity-based hashing and keeps the IR free of reference cycles.
type NodeID uint64

var idCounter uint64

// NewID allocates the next NodeID. Lowering is the only caller in ordinary
// use; tests that need reproducible IDs across runs should call ResetIDs
// first.
func NewID() NodeID {
	return NodeID(atomic.AddUint64(&idCounter, 1))
}

// ResetIDs restarts the global ID counter at zero. Only meant for tests that
// assert on exact NodeID values.
func ResetIDs() {
	atomic.StoreUint64(&idCounter, 0)
}

// Node is the base interface every IR node satisfies: a stable identity for
// extension lookups and the position it was lowered from.
type Node interface {
	ID() NodeID
	Pos() position.Position
}

// base is embedded by every concrete node type to provide Node for free.
type base struct {
	id  NodeID
	pos position.Position
}

func newBase(pos position.Position) base {
	return base{id: NewID(), pos: pos}
}

func (b base) ID() NodeID             { return b.id }
func (b base) Pos() position.Position { return b.pos }
