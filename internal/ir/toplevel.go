package ir

import "github.com/aize-lang/aizec/internal/position"

// Program is the root IR node: the complete set of sources the front end was
// asked to compile. The built-ins have no source of their own; InitSymbols
// defines them in the root "program" namespace.
type Program struct {
	base
	Sources []*Source
}

func NewProgram(sources []*Source, pos position.Position) *Program {
	return &Program{base: newBase(pos), Sources: sources}
}

// Source is one compiled file: its own namespace, holding an ordered list of
// top-level declarations plus the imports that anchor names into other
// sources' namespaces.
type Source struct {
	base
	Path    string
	Imports []*Import
	Body    []TopLevel
}

func NewSource(path string, imports []*Import, body []TopLevel, pos position.Position) *Source {
	return &Source{base: newBase(pos), Path: path, Imports: imports, Body: body}
}

// TopLevel is anything that can appear directly inside a Source's body.
type TopLevel interface {
	Node
	isTopLevel()
}

// FuncAttr is a declaration-site attribute recognized on functions and
// methods, e.g. `#link_in("libc")` on an extern declaration.
// The backend is the only consumer; the front end only records it.
type FuncAttr struct {
	Name string
	Args []string
}

// Param is a function or lambda parameter: a name plus its type annotation.
type Param struct {
	base
	Name string
	Ann  Type
}

func NewParam(name string, ann Type, pos position.Position) *Param {
	return &Param{base: newBase(pos), Name: name, Ann: ann}
}

// Import anchors a name into this source's namespace from either another
// project source (by path) or an intrinsic/std anchor name.
type Import struct {
	base
	Anchor string
}

func NewImport(anchor string, pos position.Position) *Import {
	return &Import{base: newBase(pos), Anchor: anchor}
}
func (*Import) isTopLevel() {}

// Function is a top-level or aggregate-method function declaration.
type Function struct {
	base
	Name   string
	Params []*Param
	Ret    Type
	Body   []Stmt
	Attrs  []FuncAttr
}

func NewFunction(name string, params []*Param, ret Type, body []Stmt, attrs []FuncAttr, pos position.Position) *Function {
	return &Function{base: newBase(pos), Name: name, Params: params, Ret: ret, Body: body, Attrs: attrs}
}
func (*Function) isTopLevel() {}

// AggField is one field of a Struct.
type AggField struct {
	base
	Name string
	Ann  Type
}

func NewAggField(name string, ann Type, pos position.Position) *AggField {
	return &AggField{base: newBase(pos), Name: name, Ann: ann}
}

// AggFunc is a method declared inside a Struct or Union body. It carries its
// own Function node plus whether it was declared static (no implicit self
// parameter).
type AggFunc struct {
	base
	Func   *Function
	Static bool
}

func NewAggFunc(fn *Function, static bool, pos position.Position) *AggFunc {
	return &AggFunc{base: newBase(pos), Func: fn, Static: static}
}

// Struct is a nominal product type declaration.
type Struct struct {
	base
	Name    string
	Fields  []*AggField
	Methods []*AggFunc
}

func NewStruct(name string, fields []*AggField, methods []*AggFunc, pos position.Position) *Struct {
	return &Struct{base: newBase(pos), Name: name, Fields: fields, Methods: methods}
}
func (*Struct) isTopLevel() {}

// Variant is one arm of a Union: a name plus the single type it carries
// when constructed. A multi-value payload is itself a TupleType; lowering
// gives a payload-less variant an empty TupleType.
type Variant struct {
	base
	Name string
	Ann  Type
}

func NewVariant(name string, ann Type, pos position.Position) *Variant {
	return &Variant{base: newBase(pos), Name: name, Ann: ann}
}

// Union is a nominal sum type declaration.
type Union struct {
	base
	Name     string
	Variants []*Variant
	Methods  []*AggFunc
}

func NewUnion(name string, variants []*Variant, methods []*AggFunc, pos position.Position) *Union {
	return &Union{base: newBase(pos), Name: name, Variants: variants, Methods: methods}
}
func (*Union) isTopLevel() {}
