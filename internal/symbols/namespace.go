package symbols

import (
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/position"
)

// DuplicateSymbolError is raised by a Define* call when as_name is already
// bound in the immediate namespace.
type DuplicateSymbolError struct {
	New, Old Symbol
}

func (e *DuplicateSymbolError) Error() string {
	return "duplicate symbol: " + e.New.Name()
}

// FailedLookupError is raised by a Lookup* call that found nothing.
type FailedLookupError struct {
	Name string
}

func (e *FailedLookupError) Error() string {
	return "undefined name: " + e.Name
}

// NamespaceSymbol is a scope: three disjoint dictionaries (values, types,
// namespaces) plus a link to its enclosing namespace.
type NamespaceSymbol struct {
	base
	values     map[string]*VariableSymbol
	types      map[string]TypeSymbol
	namespaces map[string]*NamespaceSymbol
	errored    bool
}

func NewNamespaceSymbol(name string, declarer ir.Node, pos position.Position) *NamespaceSymbol {
	return &NamespaceSymbol{
		base:       base{name: name, declarer: declarer, pos: pos},
		values:     make(map[string]*VariableSymbol),
		types:      make(map[string]TypeSymbol),
		namespaces: make(map[string]*NamespaceSymbol),
	}
}

// NewErroredNamespaceSymbol stands in for a namespace that failed to
// resolve (an unresolvable GetNamespace), so a lookup against it can be
// skipped silently instead of cascading into an unrelated "undefined name"
// error.
func NewErroredNamespaceSymbol(declarer ir.Node, pos position.Position) *NamespaceSymbol {
	ns := NewNamespaceSymbol("<errored namespace>", declarer, pos)
	ns.errored = true
	return ns
}

// Errored reports whether this namespace stands in for a resolution
// failure.
func (n *NamespaceSymbol) Errored() bool { return n.errored }

// Parents returns this namespace and each of its ancestors, nearest first
// unless nearestFirst is false.
func (n *NamespaceSymbol) Parents(nearestFirst bool) []*NamespaceSymbol {
	var parents []*NamespaceSymbol
	for curr := n; curr != nil; curr = curr.namespace {
		parents = append(parents, curr)
	}
	if !nearestFirst {
		for i, j := 0, len(parents)-1; i < j; i, j = i+1, j-1 {
			parents[i], parents[j] = parents[j], parents[i]
		}
	}
	return parents
}

// Root walks up to the outermost enclosing namespace.
func (n *NamespaceSymbol) Root() *NamespaceSymbol {
	curr := n
	for curr.namespace != nil {
		curr = curr.namespace
	}
	return curr
}

func (n *NamespaceSymbol) lookupChain(here bool, nearest bool) []*NamespaceSymbol {
	if here {
		return []*NamespaceSymbol{n}
	}
	return n.Parents(nearest)
}

// LookupValue searches the parent chain (nearest namespace first, unless
// configured otherwise) for a visible value binding.
func (n *NamespaceSymbol) LookupValue(name string, here, nearest bool) (*VariableSymbol, error) {
	for _, ns := range n.lookupChain(here, nearest) {
		if sym, ok := ns.values[name]; ok {
			return sym, nil
		}
	}
	return nil, &FailedLookupError{Name: name}
}

// LookupType searches the parent chain for a visible type binding.
func (n *NamespaceSymbol) LookupType(name string, here, nearest bool) (TypeSymbol, error) {
	for _, ns := range n.lookupChain(here, nearest) {
		if sym, ok := ns.types[name]; ok {
			return sym, nil
		}
	}
	return nil, &FailedLookupError{Name: name}
}

// LookupNamespace searches the parent chain for a visible namespace
// binding.
func (n *NamespaceSymbol) LookupNamespace(name string, here, nearest bool) (*NamespaceSymbol, error) {
	for _, ns := range n.lookupChain(here, nearest) {
		if sym, ok := ns.namespaces[name]; ok {
			return sym, nil
		}
	}
	return nil, &FailedLookupError{Name: name}
}

// DefineValue binds value under asName (value.Name() if empty) in this
// namespace. When visible is false the binding is recorded only so
// value.Namespace() resolves, and it cannot be looked up — the shape import
// resolution uses to bind a source's own top-level names into scope without
// letting them shadow an importer's own declarations.
func (n *NamespaceSymbol) DefineValue(value *VariableSymbol, asName string, visible bool) error {
	if asName == "" {
		asName = value.Name()
	}
	if visible {
		if old, exists := n.values[asName]; exists {
			return &DuplicateSymbolError{New: value, Old: old}
		}
		n.values[asName] = value
	}
	value.setNamespace(n)
	return nil
}

// DefineType binds a type symbol, following the same visible semantics as
// DefineValue.
func (n *NamespaceSymbol) DefineType(typ TypeSymbol, asName string, visible bool) error {
	if asName == "" {
		asName = typ.Name()
	}
	if visible {
		if old, exists := n.types[asName]; exists {
			return &DuplicateSymbolError{New: typ, Old: old}
		}
		n.types[asName] = typ
	}
	typ.setNamespace(n)
	return nil
}

// DefineNamespace binds a child namespace. isParent controls whether child
// becomes a parent-chain link of this namespace for lookup purposes — a
// source's own imported-into namespace is bound visible but not parenting,
// so its names are reachable by explicit `::` but don't leak into plain
// lookups.
func (n *NamespaceSymbol) DefineNamespace(child *NamespaceSymbol, asName string, visible, isParent bool) error {
	if asName == "" {
		asName = child.Name()
	}
	if visible {
		if old, exists := n.namespaces[asName]; exists {
			return &DuplicateSymbolError{New: child, Old: old}
		}
		n.namespaces[asName] = child
	}
	if isParent {
		child.setNamespace(n)
	}
	return nil
}
