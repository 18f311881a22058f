// Package ast defines the parser's output contract: an
// untyped, unresolved tree shaped like the IR but without any of the
// resolver's distinctions between expression, type and namespace position —
// the same AST node can be read as any of the three depending on where
// lowering encounters it. The parser and lexer that produce this tree are
// out of scope for this module; ast exists so lowering has a concrete input
// type to translate from.
package ast

import "github.com/aize-lang/aizec/internal/position"

// Node is the base interface every AST node satisfies.
type Node interface {
	Pos() position.Position
}

type base struct {
	pos position.Position
}

func (b base) Pos() position.Position { return b.pos }

// Program is the parser's top-level output: one parsed file per Source.
type Program struct {
	base
	Sources []*Source
}

func NewProgram(sources []*Source, pos position.Position) *Program {
	return &Program{base: base{pos}, Sources: sources}
}

// Source is one parsed file.
type Source struct {
	base
	SourceRef position.Source
	TopLevels []TopLevel
}

func NewSource(ref position.Source, topLevels []TopLevel, pos position.Position) *Source {
	return &Source{base: base{pos}, SourceRef: ref, TopLevels: topLevels}
}

// TopLevel is anything the parser accepts directly inside a source body.
type TopLevel interface {
	Node
	isTopLevel()
}

// Import names another source to bind into this one's namespace, either by
// project-relative path or by a reserved anchor keyword handled by the
// import-resolution pass.
type Import struct {
	base
	Path string
}

func NewImport(path string, pos position.Position) *Import { return &Import{base: base{pos}, Path: path} }
func (*Import) isTopLevel()                                 {}

// Param is a function or lambda parameter as written: a name plus an
// annotation expression, which may be nil when omitted.
type Param struct {
	base
	Name       string
	Annotation Expr
}

func NewParam(name string, ann Expr, pos position.Position) *Param {
	return &Param{base: base{pos}, Name: name, Annotation: ann}
}

// FuncAttr is a bare or argument-taking declaration attribute, e.g.
// `#link_in("libc")`.
type FuncAttr struct {
	base
	Name string
	Args []string
}

func NewFuncAttr(name string, args []string, pos position.Position) *FuncAttr {
	return &FuncAttr{base: base{pos}, Name: name, Args: args}
}

// Function is a top-level function declaration.
type Function struct {
	base
	Name       string
	Params     []*Param
	Ret        Expr
	Body       []Stmt
	Attributes []*FuncAttr
}

func NewFunction(name string, params []*Param, ret Expr, body []Stmt, attrs []*FuncAttr, pos position.Position) *Function {
	return &Function{base: base{pos}, Name: name, Params: params, Ret: ret, Body: body, Attributes: attrs}
}
func (*Function) isTopLevel() {}

// AggBodyStmt is anything that can appear in a struct or union body: a field
// or a method.
type AggBodyStmt interface {
	Node
	isAggBodyStmt()
}

// AggregateField is a field declaration inside a struct body.
type AggregateField struct {
	base
	Name       string
	Annotation Expr
}

func NewAggregateField(name string, ann Expr, pos position.Position) *AggregateField {
	return &AggregateField{base: base{pos}, Name: name, Annotation: ann}
}
func (*AggregateField) isAggBodyStmt() {}

// AggregateFunction is a method declaration inside a struct or union body.
type AggregateFunction struct {
	base
	Name   string
	Params []*Param
	Ret    Expr
	Body   []Stmt
	Static bool
}

func NewAggregateFunction(name string, params []*Param, ret Expr, body []Stmt, static bool, pos position.Position) *AggregateFunction {
	return &AggregateFunction{base: base{pos}, Name: name, Params: params, Ret: ret, Body: body, Static: static}
}
func (*AggregateFunction) isAggBodyStmt() {}

// Struct is a nominal product type declaration.
type Struct struct {
	base
	Name string
	Body []AggBodyStmt
}

func NewStruct(name string, body []AggBodyStmt, pos position.Position) *Struct {
	return &Struct{base: base{pos}, Name: name, Body: body}
}
func (*Struct) isTopLevel() {}

// Variant is one arm of a union declaration, written as a name plus a
// payload type expression (a single type or a tuple type), or a nil Type
// when the variant carries no payload.
type Variant struct {
	base
	Name string
	Type Expr
}

func NewVariant(name string, typ Expr, pos position.Position) *Variant {
	return &Variant{base: base{pos}, Name: name, Type: typ}
}

// Union is a nominal sum type declaration.
type Union struct {
	base
	Name     string
	Variants []*Variant
	Funcs    []*AggregateFunction
}

func NewUnion(name string, variants []*Variant, funcs []*AggregateFunction, pos position.Position) *Union {
	return &Union{base: base{pos}, Name: name, Variants: variants, Funcs: funcs}
}
func (*Union) isTopLevel() {}
