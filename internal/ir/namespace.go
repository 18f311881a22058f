package ir

import "github.com/aize-lang/aizec/internal/position"

// Namespace is the IR shape of a namespace-position expression, used only by
// GetStaticAttr.
type Namespace interface {
	Node
	isNamespace()
}

// GetNamespace names a namespace by identifier, e.g. the `shapes` in
// `shapes::Circle`.
type GetNamespace struct {
	base
	Name string
}

func NewGetNamespace(name string, pos position.Position) *GetNamespace {
	return &GetNamespace{base: newBase(pos), Name: name}
}
func (*GetNamespace) isNamespace() {}

// MalformedNamespace marks a namespace-position AST expression lowering
// could not recognize.
type MalformedNamespace struct {
	base
}

func NewMalformedNamespace(pos position.Position) *MalformedNamespace {
	return &MalformedNamespace{base: newBase(pos)}
}
func (*MalformedNamespace) isNamespace() {}
