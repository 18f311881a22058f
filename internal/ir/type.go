package ir

import "github.com/aize-lang/aizec/internal/position"

// Type is the IR shape of a type expression as written in source (or
// synthesized by the resolver). It carries no resolved meaning itself — that
// lives in the SymbolData extension, keyed by the Type node — it only
// records which syntactic shape produced it.
type Type interface {
	Node
	isType()
}

// GetType is a named type reference, e.g. `int32` or a struct/union name.
type GetType struct {
	base
	Name string
}

func NewGetType(name string, pos position.Position) *GetType {
	return &GetType{base: newBase(pos), Name: name}
}
func (*GetType) isType() {}

// FuncType is a lambda-shaped type annotation, e.g. `(int32) -> bool`.
type FuncType struct {
	base
	Params []Type
	Ret    Type
}

func NewFuncType(params []Type, ret Type, pos position.Position) *FuncType {
	return &FuncType{base: newBase(pos), Params: params, Ret: ret}
}
func (*FuncType) isType() {}

// TupleType is a tuple-shaped type annotation, e.g. `(int32, bool)`.
type TupleType struct {
	base
	Items []Type
}

func NewTupleType(items []Type, pos position.Position) *TupleType {
	return &TupleType{base: newBase(pos), Items: items}
}
func (*TupleType) isType() {}

// NoType stands for an omitted annotation; the resolver treats it as
// "infer from the value expression".
type NoType struct {
	base
}

func NewNoType(pos position.Position) *NoType {
	return &NoType{base: newBase(pos)}
}
func (*NoType) isType() {}

// GeneratedType is a synthetic Type node the resolver creates to attach a
// resolved TypeSymbol to an implicit cast (CastInt/CastUnion) that has no
// corresponding source syntax.
type GeneratedType struct {
	base
}

func NewGeneratedType(pos position.Position) *GeneratedType {
	return &GeneratedType{base: newBase(pos)}
}
func (*GeneratedType) isType() {}

// MalformedType marks a type-position AST expression that lowering could not
// recognize as any of the above shapes.
type MalformedType struct {
	base
}

func NewMalformedType(pos position.Position) *MalformedType {
	return &MalformedType{base: newBase(pos)}
}
func (*MalformedType) isType() {}
