// Package analysis implements the semantic passes: builtin/namespace
// initialization, type and function declaration, the symbol resolver (by
// far the largest pass), and name mangling. Package passes supplies the
// scheduling framework these run under.
package analysis

import (
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/symbols"
)

// SymbolDataKey names the extension every pass in this package shares,
// mirroring the single SymbolData extension the original analysis threads
// through InitSymbols, DeclareTypes, DeclareFunctions and ResolveSymbols.
const SymbolDataKey = "symdata"

// BuiltinData is the extension's general slot: the integer type table
// InitSymbols populates, keyed by bit size, that every later pass needing a
// fixed-width int type reads back (e.g. the resolver's literal typing).
type BuiltinData struct {
	UInt map[int]*symbols.IntTypeSymbol
	SInt map[int]*symbols.IntTypeSymbol
}

func SetBuiltins(ext *ir.Extension, data BuiltinData) { ir.SetGeneral(ext, data) }
func Builtins(ext *ir.Extension) BuiltinData           { return ir.General[BuiltinData](ext) }

type ProgramData struct{ Builtins *symbols.NamespaceSymbol }
type SourceData struct{ Globals *symbols.NamespaceSymbol }
type FunctionData struct {
	Symbol    *symbols.VariableSymbol
	Namespace *symbols.NamespaceSymbol
	Attrs     []string
}
type ParamData struct{ Symbol *symbols.VariableSymbol }
type StmtData struct{ IsTerminal bool }
type ExprData struct {
	ReturnType symbols.TypeSymbol
	IsLVal     bool
}
type CompareData struct{ IsSigned bool }
type ArithmeticData struct{ IsSigned bool }
type GetVarData struct {
	Symbol     *symbols.VariableSymbol
	IsFunction bool
}
type SetVarData struct{ Symbol *symbols.VariableSymbol }

// GetAttrData records what a GetAttr resolved to: either a struct field
// (Index into the struct's declared field order) or a method looked up on
// any aggregate's method table (IsMethod, Func).
type GetAttrData struct {
	AggType  symbols.TypeSymbol
	Index    int
	IsMethod bool
	Func     *symbols.VariableSymbol
}
type SetAttrData struct {
	StructType *symbols.StructTypeSymbol
	Index      int
}

// CastIntData records the widening an implicit integer cast performs.
type CastIntData struct {
	FromBits, ToBits int
	IsSigned         bool
}

// CastUnionData records which variant a cast-to-union wraps.
type CastUnionData struct {
	Variant *symbols.UnionVariantTypeSymbol
	Union   *symbols.UnionTypeSymbol
}

// MethodCallData records the method a MethodCall resolves to — MethodCall
// nodes are synthesized by the resolver from a Call on a method attribute,
// so this is always set alongside the node's creation, never separately.
type MethodCallData struct{ Func *symbols.VariableSymbol }

// IsData records which union and variant an Is check matches against.
type IsData struct {
	Union   *symbols.UnionTypeSymbol
	Variant *symbols.UnionVariantTypeSymbol
}

// LambdaData mirrors FunctionData for a Lambda's synthesized declaration.
type LambdaData struct {
	Symbol    *symbols.VariableSymbol
	Type      *symbols.FunctionTypeSymbol
	Namespace *symbols.NamespaceSymbol
}

// IntrinsicKind distinguishes the reserved intrinsic names the compiler
// recognizes. Only integer-width conversion is implemented.
type IntrinsicKind int

const IntrinsicIntConversion IntrinsicKind = iota

type IntrinsicData struct {
	Kind             IntrinsicKind
	FromBits, ToBits int
}
type GetStaticAttrData struct{ ResolvedValue *symbols.VariableSymbol }
type TypeData struct{ ResolvedType symbols.TypeSymbol }
type NamespaceData struct{ ResolvedNamespace *symbols.NamespaceSymbol }

// DeclData is shared across VarDecl, Function and Lambda: whatever
// introduced a new variable binding, keyed under the same "decl" slot name
// regardless of node kind, grounded in symbol_data.py's DeclData using
// Extension.ext directly instead of a per-kind method.
type DeclData struct {
	Declares *symbols.VariableSymbol
	Type     symbols.TypeSymbol
}

func SetProgram(ext *ir.Extension, n *ir.Program, d ProgramData)   { ir.Set(ext, n, "program", d) }
func Program(ext *ir.Extension, n *ir.Program) ProgramData         { return ir.Get[ProgramData](ext, n, "program") }
func SetSource(ext *ir.Extension, n *ir.Source, d SourceData)      { ir.Set(ext, n, "source", d) }
func SourceOf(ext *ir.Extension, n *ir.Source) SourceData          { return ir.Get[SourceData](ext, n, "source") }
func SetFunction(ext *ir.Extension, n *ir.Function, d FunctionData) {
	ir.Set(ext, n, "function", d)
}
func FunctionOf(ext *ir.Extension, n *ir.Function) FunctionData {
	return ir.Get[FunctionData](ext, n, "function")
}
func SetParam(ext *ir.Extension, n *ir.Param, d ParamData) { ir.Set(ext, n, "param", d) }
func ParamOf(ext *ir.Extension, n *ir.Param) ParamData      { return ir.Get[ParamData](ext, n, "param") }
func SetStmt(ext *ir.Extension, n ir.Stmt, d StmtData)     { ir.Set(ext, n, "stmt", d) }
func StmtOf(ext *ir.Extension, n ir.Stmt) StmtData         { return ir.Get[StmtData](ext, n, "stmt") }
func HasStmt(ext *ir.Extension, n ir.Stmt) bool            { return ir.Has(ext, n, "stmt") }
func SetExpr(ext *ir.Extension, n ir.Expr, d ExprData)     { ir.Set(ext, n, "expr", d) }
func ExprOf(ext *ir.Extension, n ir.Expr) ExprData         { return ir.Get[ExprData](ext, n, "expr") }
func HasExpr(ext *ir.Extension, n ir.Expr) bool            { return ir.Has(ext, n, "expr") }
func SetCompare(ext *ir.Extension, n *ir.Compare, d CompareData) {
	ir.Set(ext, n, "compare", d)
}
func CompareOf(ext *ir.Extension, n *ir.Compare) CompareData {
	return ir.Get[CompareData](ext, n, "compare")
}
func SetArithmetic(ext *ir.Extension, n *ir.Arithmetic, d ArithmeticData) {
	ir.Set(ext, n, "arithmetic", d)
}
func ArithmeticOf(ext *ir.Extension, n *ir.Arithmetic) ArithmeticData {
	return ir.Get[ArithmeticData](ext, n, "arithmetic")
}
func SetGetVar(ext *ir.Extension, n *ir.GetVar, d GetVarData) { ir.Set(ext, n, "get_var", d) }
func GetVarOf(ext *ir.Extension, n *ir.GetVar) GetVarData      { return ir.Get[GetVarData](ext, n, "get_var") }
func SetSetVar(ext *ir.Extension, n *ir.SetVar, d SetVarData) { ir.Set(ext, n, "set_var", d) }
func SetVarOf(ext *ir.Extension, n *ir.SetVar) SetVarData      { return ir.Get[SetVarData](ext, n, "set_var") }
func SetGetAttr(ext *ir.Extension, n *ir.GetAttr, d GetAttrData) {
	ir.Set(ext, n, "get_attr", d)
}
func GetAttrOf(ext *ir.Extension, n *ir.GetAttr) GetAttrData {
	return ir.Get[GetAttrData](ext, n, "get_attr")
}
func SetSetAttr(ext *ir.Extension, n *ir.SetAttr, d SetAttrData) {
	ir.Set(ext, n, "set_attr", d)
}
func SetAttrOf(ext *ir.Extension, n *ir.SetAttr) SetAttrData {
	return ir.Get[SetAttrData](ext, n, "set_attr")
}
func SetIntrinsic(ext *ir.Extension, n *ir.Intrinsic, d IntrinsicData) {
	ir.Set(ext, n, "intrinsic", d)
}
func IntrinsicOf(ext *ir.Extension, n *ir.Intrinsic) IntrinsicData {
	return ir.Get[IntrinsicData](ext, n, "intrinsic")
}
func SetGetStaticAttr(ext *ir.Extension, n *ir.GetStaticAttr, d GetStaticAttrData) {
	ir.Set(ext, n, "get_static_attr", d)
}
func GetStaticAttrOf(ext *ir.Extension, n *ir.GetStaticAttr) GetStaticAttrData {
	return ir.Get[GetStaticAttrData](ext, n, "get_static_attr")
}
func SetCastInt(ext *ir.Extension, n *ir.CastInt, d CastIntData) { ir.Set(ext, n, "cast_int", d) }
func CastIntOf(ext *ir.Extension, n *ir.CastInt) CastIntData {
	return ir.Get[CastIntData](ext, n, "cast_int")
}
func SetCastUnion(ext *ir.Extension, n *ir.CastUnion, d CastUnionData) {
	ir.Set(ext, n, "cast_union", d)
}
func CastUnionOf(ext *ir.Extension, n *ir.CastUnion) CastUnionData {
	return ir.Get[CastUnionData](ext, n, "cast_union")
}
func SetMethodCall(ext *ir.Extension, n *ir.MethodCall, d MethodCallData) {
	ir.Set(ext, n, "method_call", d)
}
func MethodCallOf(ext *ir.Extension, n *ir.MethodCall) MethodCallData {
	return ir.Get[MethodCallData](ext, n, "method_call")
}
func SetIs(ext *ir.Extension, n *ir.Is, d IsData) { ir.Set(ext, n, "is", d) }
func IsOf(ext *ir.Extension, n *ir.Is) IsData      { return ir.Get[IsData](ext, n, "is") }
func SetLambda(ext *ir.Extension, n *ir.Lambda, d LambdaData) { ir.Set(ext, n, "lambda", d) }
func LambdaOf(ext *ir.Extension, n *ir.Lambda) LambdaData {
	return ir.Get[LambdaData](ext, n, "lambda")
}
func SetType(ext *ir.Extension, n ir.Type, d TypeData) { ir.Set(ext, n, "type", d) }
func TypeOf(ext *ir.Extension, n ir.Type) TypeData      { return ir.Get[TypeData](ext, n, "type") }
func SetNamespace(ext *ir.Extension, n ir.Namespace, d NamespaceData) {
	ir.Set(ext, n, "namespace", d)
}
func NamespaceOf(ext *ir.Extension, n ir.Namespace) NamespaceData {
	return ir.Get[NamespaceData](ext, n, "namespace")
}
func SetDecl(ext *ir.Extension, n ir.Node, d DeclData) { ir.Set(ext, n, "decl", d) }
func DeclOf(ext *ir.Extension, n ir.Node) DeclData      { return ir.Get[DeclData](ext, n, "decl") }
func HasDecl(ext *ir.Extension, n ir.Node) bool         { return ir.Has(ext, n, "decl") }

// UnionData and StructData record the TypeSymbol DeclareTypes created for an
// aggregate declaration, keyed off the declaring IR node so DeclareFunctions
// and the resolver can look it back up.
type UnionData struct{ UnionType *symbols.UnionTypeSymbol }
type StructData struct{ StructType *symbols.StructTypeSymbol }

func SetUnion(ext *ir.Extension, n *ir.Union, d UnionData) { ir.Set(ext, n, "union", d) }
func UnionOf(ext *ir.Extension, n *ir.Union) UnionData      { return ir.Get[UnionData](ext, n, "union") }
func SetStruct(ext *ir.Extension, n *ir.Struct, d StructData) { ir.Set(ext, n, "struct", d) }
func StructOf(ext *ir.Extension, n *ir.Struct) StructData      { return ir.Get[StructData](ext, n, "struct") }

// AggFunc shares FunctionData's shape: DeclareFunctions stamps the same
// (symbol, namespace) pair whether a function is top-level or a method.
func SetAggFunc(ext *ir.Extension, n *ir.AggFunc, d FunctionData) { ir.Set(ext, n, "agg_func", d) }
func AggFuncOf(ext *ir.Extension, n *ir.AggFunc) FunctionData      { return ir.Get[FunctionData](ext, n, "agg_func") }

// ResolvedType creates a GeneratedType node stamped with typ, for use by
// unify's implicit-cast insertion.
func ResolvedType(ext *ir.Extension, typ symbols.TypeSymbol, pos ir.Node) *ir.GeneratedType {
	gen := ir.NewGeneratedType(pos.Pos())
	SetType(ext, gen, TypeData{ResolvedType: typ})
	return gen
}
