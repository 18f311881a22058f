// Package symbols implements the scoped symbol table: three disjoint
// dictionaries per namespace (variables, types, namespaces), nearest-first
// lookup up the parent chain, and the structural subtyping rules that drive
// unification.
package symbols

import (
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/position"
)

// Symbol is anything a name can resolve to: a variable, a type, or a
// namespace. Declarer is the IR node that introduced it, used by
// diagnostics to point back at source.
type Symbol interface {
	Name() string
	Declarer() ir.Node
	Position() position.Position
	Namespace() *NamespaceSymbol
	setNamespace(ns *NamespaceSymbol)
}

type base struct {
	name      string
	declarer  ir.Node
	pos       position.Position
	namespace *NamespaceSymbol
}

func (s *base) Name() string                  { return s.name }
func (s *base) Declarer() ir.Node             { return s.declarer }
func (s *base) Position() position.Position   { return s.pos }
func (s *base) Namespace() *NamespaceSymbol   { return s.namespace }
func (s *base) setNamespace(ns *NamespaceSymbol) { s.namespace = ns }

// VariableSymbol is anything nameable in value position: locals, params,
// functions, methods.
type VariableSymbol struct {
	base
	Type TypeSymbol
}

func NewVariableSymbol(name string, declarer ir.Node, typ TypeSymbol, pos position.Position) *VariableSymbol {
	return &VariableSymbol{base: base{name: name, declarer: declarer, pos: pos}, Type: typ}
}

// NewErroredVariableSymbol stands in for a variable whose declaration could
// not be resolved, so downstream lookups of it don't cascade further errors.
func NewErroredVariableSymbol(declarer ir.Node, pos position.Position) *VariableSymbol {
	return NewVariableSymbol("<errored value>", declarer, NewErroredTypeSymbol(declarer, pos), pos)
}
