package symbols

import (
	"fmt"
	"strings"

	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/position"
)

// TypeSymbol is anything nameable in type position. IsSuperOf implements the
// structural subtyping rules.
type TypeSymbol interface {
	Symbol
	ClassName() string
	IsSuperOf(sub TypeSymbol) bool
	String() string
}

type typeBase struct {
	base
}

// ErroredTypeSymbol is the poison value produced when a type fails to
// resolve. It is never a super of, nor a sub of, anything else — including
// itself — so one error never cascades into a chain of unrelated ones.
type ErroredTypeSymbol struct{ typeBase }

func NewErroredTypeSymbol(declarer ir.Node, pos position.Position) *ErroredTypeSymbol {
	return &ErroredTypeSymbol{typeBase{base{name: "<errored type>", declarer: declarer, pos: pos}}}
}
func (*ErroredTypeSymbol) ClassName() string                { return "<errored>" }
func (*ErroredTypeSymbol) IsSuperOf(sub TypeSymbol) bool     { return false }
func (e *ErroredTypeSymbol) String() string                  { return e.name }

// AggTypeSymbol is the shared shape of struct and union types: a name and a
// method table, keyed by method name.
type AggTypeSymbol struct {
	typeBase
	Funcs map[string]*VariableSymbol
}

// AggFuncs returns the method table shared by every aggregate type kind.
// Promoted onto StructTypeSymbol, UnionTypeSymbol and UnionVariantTypeSymbol
// through their embedded AggTypeSymbol.
func (a *AggTypeSymbol) AggFuncs() map[string]*VariableSymbol { return a.Funcs }

// Aggregate is anything with a method table: every struct, union and union
// variant type. The resolver's attribute lookup uses this instead of a type
// switch over the three concrete kinds.
type Aggregate interface {
	TypeSymbol
	AggFuncs() map[string]*VariableSymbol
}

// StructTypeSymbol is a nominal product type. Two StructTypeSymbols are
// never related by subtyping even if structurally identical — nominal
// identity is pointer identity.
type StructTypeSymbol struct {
	AggTypeSymbol
	Fields map[string]FieldEntry
	// FieldOrder preserves declaration order for the struct's fields, since
	// Fields alone (a Go map) cannot: constructor argument matching and
	// field-access indexing both need a stable position per field name.
	FieldOrder []string
}

// FieldEntry pairs a field's type with the position it was declared at, for
// diagnostics.
type FieldEntry struct {
	Type TypeSymbol
	Pos  position.Position
}

func NewStructTypeSymbol(name string, fields map[string]FieldEntry, fieldOrder []string, funcs map[string]*VariableSymbol, declarer ir.Node, pos position.Position) *StructTypeSymbol {
	return &StructTypeSymbol{
		AggTypeSymbol: AggTypeSymbol{typeBase: typeBase{base{name: name, declarer: declarer, pos: pos}}, Funcs: funcs},
		Fields:        fields,
		FieldOrder:    fieldOrder,
	}
}

// FieldIndex returns the declared position of name among the struct's
// fields, or -1 if name is not a field.
func (s *StructTypeSymbol) FieldIndex(name string) int {
	for i, n := range s.FieldOrder {
		if n == name {
			return i
		}
	}
	return -1
}
func (*StructTypeSymbol) ClassName() string { return "a struct" }
func (s *StructTypeSymbol) IsSuperOf(sub TypeSymbol) bool {
	other, ok := sub.(*StructTypeSymbol)
	return ok && other == s
}
func (s *StructTypeSymbol) String() string { return "struct " + s.name }

// UnionVariantTypeSymbol is one constructible arm of a UnionTypeSymbol.
type UnionVariantTypeSymbol struct {
	AggTypeSymbol
	Union    *UnionTypeSymbol
	Variant  string
	Index    int
	Contains TypeSymbol
}

func NewUnionVariantTypeSymbol(name, variant string, index int, contains TypeSymbol, union *UnionTypeSymbol, declarer ir.Node, pos position.Position) *UnionVariantTypeSymbol {
	return &UnionVariantTypeSymbol{
		AggTypeSymbol: AggTypeSymbol{typeBase: typeBase{base{name: name, declarer: declarer, pos: pos}}, Funcs: union.Funcs},
		Union:         union,
		Variant:       variant,
		Index:         index,
		Contains:      contains,
	}
}
func (*UnionVariantTypeSymbol) ClassName() string { return "a union variant" }
func (v *UnionVariantTypeSymbol) IsSuperOf(sub TypeSymbol) bool {
	other, ok := sub.(*UnionVariantTypeSymbol)
	return ok && other == v
}
func (v *UnionVariantTypeSymbol) String() string { return fmt.Sprintf("%s variant %s", v.Union, v.Variant) }

// UnionTypeSymbol is a nominal sum type. It is a super of its own variants
// (but the reverse does not hold) and of itself, never of another union.
type UnionTypeSymbol struct {
	AggTypeSymbol
	Variants     map[string]FieldEntry
	VariantTypes map[string]*UnionVariantTypeSymbol
}

func NewUnionTypeSymbol(name string, variants map[string]FieldEntry, variantTypes map[string]*UnionVariantTypeSymbol, funcs map[string]*VariableSymbol, declarer ir.Node, pos position.Position) *UnionTypeSymbol {
	return &UnionTypeSymbol{
		AggTypeSymbol: AggTypeSymbol{typeBase: typeBase{base{name: name, declarer: declarer, pos: pos}}, Funcs: funcs},
		Variants:      variants,
		VariantTypes:  variantTypes,
	}
}
func (*UnionTypeSymbol) ClassName() string { return "a union" }
func (u *UnionTypeSymbol) IsSuperOf(sub TypeSymbol) bool {
	if other, ok := sub.(*UnionTypeSymbol); ok && other == u {
		return true
	}
	if variant, ok := sub.(*UnionVariantTypeSymbol); ok {
		return u.IsSuperOf(variant.Union)
	}
	return false
}
func (u *UnionTypeSymbol) String() string { return "union " + u.name }

// IntTypeSymbol is a fixed-width integer type. A wider same-signedness
// integer is a super of a narrower one.
type IntTypeSymbol struct {
	typeBase
	Signed  bool
	BitSize int
}

func NewIntTypeSymbol(name string, signed bool, bitSize int, declarer ir.Node, pos position.Position) *IntTypeSymbol {
	return &IntTypeSymbol{typeBase{base{name: name, declarer: declarer, pos: pos}}, signed, bitSize}
}
func (*IntTypeSymbol) ClassName() string { return "an integer" }
func (i *IntTypeSymbol) IsSuperOf(sub TypeSymbol) bool {
	other, ok := sub.(*IntTypeSymbol)
	return ok && other.Signed == i.Signed && other.BitSize <= i.BitSize
}
func (i *IntTypeSymbol) String() string { return i.name }

// TupleTypeSymbol is a structural product type: componentwise-covariant,
// same-arity.
type TupleTypeSymbol struct {
	typeBase
	Items []TypeSymbol
}

func NewTupleTypeSymbol(items []TypeSymbol, declarer ir.Node, pos position.Position) *TupleTypeSymbol {
	return &TupleTypeSymbol{typeBase{base{name: "<tuple type>", declarer: declarer, pos: pos}}, items}
}
func (*TupleTypeSymbol) ClassName() string { return "a tuple" }
func (t *TupleTypeSymbol) IsSuperOf(sub TypeSymbol) bool {
	other, ok := sub.(*TupleTypeSymbol)
	if !ok || len(other.Items) != len(t.Items) {
		return false
	}
	for i, item := range t.Items {
		if !item.IsSuperOf(other.Items[i]) {
			return false
		}
	}
	return true
}
func (t *TupleTypeSymbol) String() string {
	parts := make([]string, len(t.Items))
	for i, item := range t.Items {
		parts[i] = item.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FunctionTypeSymbol is a structural function type: contravariant in
// parameters, covariant in return type.
type FunctionTypeSymbol struct {
	typeBase
	Params []TypeSymbol
	Ret    TypeSymbol
}

func NewFunctionTypeSymbol(params []TypeSymbol, ret TypeSymbol, declarer ir.Node, pos position.Position) *FunctionTypeSymbol {
	return &FunctionTypeSymbol{typeBase{base{name: "<function type>", declarer: declarer, pos: pos}}, params, ret}
}
func (*FunctionTypeSymbol) ClassName() string { return "a function" }
func (f *FunctionTypeSymbol) IsSuperOf(sub TypeSymbol) bool {
	other, ok := sub.(*FunctionTypeSymbol)
	if !ok || len(other.Params) != len(f.Params) {
		return false
	}
	for i, superParam := range f.Params {
		// Reversed on purpose: parameters are contravariant.
		if !other.Params[i].IsSuperOf(superParam) {
			return false
		}
	}
	return f.Ret.IsSuperOf(other.Ret)
}
func (f *FunctionTypeSymbol) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), f.Ret)
}
