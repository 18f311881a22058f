package lowering

import (
	"testing"

	"github.com/aize-lang/aizec/internal/ast"
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/position"
)

func TestLower_FunctionWithParamsAndReturn(t *testing.T) {
	ret := ast.NewReturnStmt(ast.NewGetVarExpr("a", position.NoPosition{}), position.NoPosition{})
	fn := ast.NewFunction("add", []*ast.Param{
		ast.NewParam("a", ast.NewGetVarExpr("int32", position.NoPosition{}), position.NoPosition{}),
		ast.NewParam("b", nil, position.NoPosition{}),
	}, ast.NewGetVarExpr("int32", position.NoPosition{}), []ast.Stmt{ret}, nil, position.NoPosition{})
	src := ast.NewSource(position.NewStreamSource("a"), []ast.TopLevel{fn}, position.NoPosition{})
	program := ast.NewProgram([]*ast.Source{src}, position.NoPosition{})

	out := Lower(program)
	if len(out.Sources) != 1 {
		t.Fatalf("got %d sources, want 1", len(out.Sources))
	}
	if len(out.Sources[0].Body) != 1 {
		t.Fatalf("got %d top-levels, want 1", len(out.Sources[0].Body))
	}
	irFn, ok := out.Sources[0].Body[0].(*ir.Function)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ir.Function", out.Sources[0].Body[0])
	}
	if irFn.Name != "add" || len(irFn.Params) != 2 {
		t.Fatalf("irFn = %+v, want Name=add and 2 params", irFn)
	}
	if _, ok := irFn.Params[0].Ann.(*ir.GetType); !ok {
		t.Fatalf("Params[0].Ann = %T, want *ir.GetType", irFn.Params[0].Ann)
	}
	if _, ok := irFn.Params[1].Ann.(*ir.NoType); !ok {
		t.Fatalf("Params[1].Ann = %T, want *ir.NoType for an omitted annotation", irFn.Params[1].Ann)
	}
	if _, ok := irFn.Body[0].(*ir.Return); !ok {
		t.Fatalf("Body[0] = %T, want *ir.Return", irFn.Body[0])
	}
}

func TestLower_ImportIsCollectedSeparatelyFromBody(t *testing.T) {
	imp := ast.NewImport("other", position.NoPosition{})
	src := ast.NewSource(position.NewStreamSource("a"), []ast.TopLevel{imp}, position.NoPosition{})
	program := ast.NewProgram([]*ast.Source{src}, position.NoPosition{})

	out := Lower(program)
	irSource := out.Sources[0]
	if len(irSource.Imports) != 1 {
		t.Fatalf("got %d imports, want 1", len(irSource.Imports))
	}
	if irSource.Imports[0].Anchor != "other" {
		t.Fatalf("Imports[0].Anchor = %q, want %q", irSource.Imports[0].Anchor, "other")
	}
	if len(irSource.Body) != 1 {
		t.Fatalf("expected the import to also appear in Body, got %d entries", len(irSource.Body))
	}
}

func TestLower_StructFieldsAndMethodsSplitByKind(t *testing.T) {
	field := ast.NewAggregateField("x", ast.NewGetVarExpr("int32", position.NoPosition{}), position.NoPosition{})
	selfParam := ast.NewParam("self", ast.NewGetVarExpr("S", position.NoPosition{}), position.NoPosition{})
	method := ast.NewAggregateFunction("touch", []*ast.Param{selfParam}, ast.NewGetVarExpr("int32", position.NoPosition{}),
		[]ast.Stmt{ast.NewReturnStmt(ast.NewIntLiteral(0, position.NoPosition{}), position.NoPosition{})}, false, position.NoPosition{})
	structNode := ast.NewStruct("S", []ast.AggBodyStmt{field, method}, position.NoPosition{})
	src := ast.NewSource(position.NewStreamSource("a"), []ast.TopLevel{structNode}, position.NoPosition{})
	program := ast.NewProgram([]*ast.Source{src}, position.NoPosition{})

	out := Lower(program)
	irStruct, ok := out.Sources[0].Body[0].(*ir.Struct)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ir.Struct", out.Sources[0].Body[0])
	}
	if len(irStruct.Fields) != 1 || irStruct.Fields[0].Name != "x" {
		t.Fatalf("Fields = %+v, want one field named x", irStruct.Fields)
	}
	if len(irStruct.Methods) != 1 || irStruct.Methods[0].Func.Name != "touch" {
		t.Fatalf("Methods = %+v, want one method named touch", irStruct.Methods)
	}
}

func TestLower_UnionVariantWithTuplePayloadBecomesTupleType(t *testing.T) {
	payload := ast.NewTupleExpr([]ast.Expr{
		ast.NewGetVarExpr("int32", position.NoPosition{}),
		ast.NewGetVarExpr("int32", position.NoPosition{}),
	}, position.NoPosition{})
	variant := ast.NewVariant("Point", payload, position.NoPosition{})
	unionNode := ast.NewUnion("Shape", []*ast.Variant{variant}, nil, position.NoPosition{})
	src := ast.NewSource(position.NewStreamSource("a"), []ast.TopLevel{unionNode}, position.NoPosition{})
	program := ast.NewProgram([]*ast.Source{src}, position.NoPosition{})

	out := Lower(program)
	irUnion, ok := out.Sources[0].Body[0].(*ir.Union)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ir.Union", out.Sources[0].Body[0])
	}
	if len(irUnion.Variants) != 1 {
		t.Fatalf("got %d variants, want 1", len(irUnion.Variants))
	}
	tuple, ok := irUnion.Variants[0].Ann.(*ir.TupleType)
	if !ok {
		t.Fatalf("Variants[0].Ann = %T, want *ir.TupleType for a tuple payload", irUnion.Variants[0].Ann)
	}
	if len(tuple.Items) != 2 {
		t.Fatalf("got %d items for the tuple payload, want 2", len(tuple.Items))
	}
}

func TestLower_UnionVariantWithoutPayloadGetsEmptyTuple(t *testing.T) {
	variant := ast.NewVariant("Empty", nil, position.NoPosition{})
	unionNode := ast.NewUnion("Shape", []*ast.Variant{variant}, nil, position.NoPosition{})
	src := ast.NewSource(position.NewStreamSource("a"), []ast.TopLevel{unionNode}, position.NoPosition{})
	program := ast.NewProgram([]*ast.Source{src}, position.NoPosition{})

	out := Lower(program)
	irUnion := out.Sources[0].Body[0].(*ir.Union)
	tuple, ok := irUnion.Variants[0].Ann.(*ir.TupleType)
	if !ok {
		t.Fatalf("Variants[0].Ann = %T, want a synthesized *ir.TupleType for a payload-less variant", irUnion.Variants[0].Ann)
	}
	if len(tuple.Items) != 0 {
		t.Fatalf("got %d items, want 0 for a payload-less variant", len(tuple.Items))
	}
}

func TestLower_UnionVariantWithScalarPayloadStaysScalar(t *testing.T) {
	variant := ast.NewVariant("Wrapped", ast.NewGetVarExpr("int32", position.NoPosition{}), position.NoPosition{})
	unionNode := ast.NewUnion("Shape", []*ast.Variant{variant}, nil, position.NoPosition{})
	src := ast.NewSource(position.NewStreamSource("a"), []ast.TopLevel{unionNode}, position.NoPosition{})
	program := ast.NewProgram([]*ast.Source{src}, position.NoPosition{})

	out := Lower(program)
	irUnion := out.Sources[0].Body[0].(*ir.Union)
	getType, ok := irUnion.Variants[0].Ann.(*ir.GetType)
	if !ok {
		t.Fatalf("Variants[0].Ann = %T, want *ir.GetType for a scalar payload", irUnion.Variants[0].Ann)
	}
	if getType.Name != "int32" {
		t.Fatalf("Variants[0].Ann.Name = %q, want %q", getType.Name, "int32")
	}
}

func TestLower_IfWithoutElseGetsEmptyBlock(t *testing.T) {
	ifStmt := ast.NewIfStmt(ast.NewIntLiteral(1, position.NoPosition{}),
		ast.NewReturnStmt(ast.NewIntLiteral(1, position.NoPosition{}), position.NoPosition{}), nil, position.NoPosition{})
	fn := ast.NewFunction("f", nil, ast.NewGetVarExpr("int32", position.NoPosition{}), []ast.Stmt{ifStmt}, nil, position.NoPosition{})
	src := ast.NewSource(position.NewStreamSource("a"), []ast.TopLevel{fn}, position.NoPosition{})
	program := ast.NewProgram([]*ast.Source{src}, position.NoPosition{})

	out := Lower(program)
	irFn := out.Sources[0].Body[0].(*ir.Function)
	irIf := irFn.Body[0].(*ir.If)
	block, ok := irIf.Else.(*ir.Block)
	if !ok {
		t.Fatalf("If.Else = %T, want a synthesized *ir.Block", irIf.Else)
	}
	if len(block.Stmts) != 0 {
		t.Fatalf("synthesized else block has %d statements, want 0", len(block.Stmts))
	}
}

func TestLower_ExpressionFormsCoverEveryKind(t *testing.T) {
	obj := ast.NewGetVarExpr("self", position.NoPosition{})
	exprs := []ast.Expr{
		ast.NewIntLiteral(1, position.NoPosition{}),
		ast.NewGetVarExpr("x", position.NoPosition{}),
		ast.NewSetVarExpr("x", ast.NewIntLiteral(1, position.NoPosition{}), position.NoPosition{}),
		ast.NewGetAttrExpr(obj, "field", position.NoPosition{}),
		ast.NewSetAttrExpr(obj, "field", ast.NewIntLiteral(1, position.NoPosition{}), position.NoPosition{}),
		ast.NewGetStaticAttrExpr(ast.NewGetVarExpr("shapes", position.NoPosition{}), "Circle", position.NoPosition{}),
		ast.NewCompareExpr("==", ast.NewIntLiteral(1, position.NoPosition{}), ast.NewIntLiteral(2, position.NoPosition{}), position.NoPosition{}),
		ast.NewArithmeticExpr("+", ast.NewIntLiteral(1, position.NoPosition{}), ast.NewIntLiteral(2, position.NoPosition{}), position.NoPosition{}),
		ast.NewNegExpr(ast.NewIntLiteral(1, position.NoPosition{}), position.NoPosition{}),
		ast.NewNewExpr(ast.NewGetVarExpr("S", position.NoPosition{}), nil, position.NoPosition{}),
		ast.NewCallExpr(ast.NewGetVarExpr("f", position.NoPosition{}), nil, position.NoPosition{}),
		ast.NewIntrinsicExpr("int_cast", nil, position.NoPosition{}),
		ast.NewLambdaExpr([]*ast.Param{ast.NewParam("x", nil, position.NoPosition{})}, ast.NewIntLiteral(1, position.NoPosition{}), position.NoPosition{}),
		ast.NewTupleExpr([]ast.Expr{ast.NewIntLiteral(1, position.NoPosition{}), ast.NewIntLiteral(2, position.NoPosition{})}, position.NoPosition{}),
		ast.NewIsExpr(ast.NewGetVarExpr("x", position.NoPosition{}), "A", "bound", position.NoPosition{}),
	}
	want := []any{
		&ir.Int{}, &ir.GetVar{}, &ir.SetVar{}, &ir.GetAttr{}, &ir.SetAttr{}, &ir.GetStaticAttr{},
		&ir.Compare{}, &ir.Arithmetic{}, &ir.Negate{}, &ir.New{}, &ir.Call{}, &ir.Intrinsic{},
		&ir.Lambda{}, &ir.Tuple{}, &ir.Is{},
	}
	for i, e := range exprs {
		got := lowerExpr(e)
		gotType, wantType := typeName(got), typeName(want[i])
		if gotType != wantType {
			t.Fatalf("expr %d: lowerExpr(%T) = %s, want %s", i, e, gotType, wantType)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *ir.Int:
		return "*ir.Int"
	case *ir.GetVar:
		return "*ir.GetVar"
	case *ir.SetVar:
		return "*ir.SetVar"
	case *ir.GetAttr:
		return "*ir.GetAttr"
	case *ir.SetAttr:
		return "*ir.SetAttr"
	case *ir.GetStaticAttr:
		return "*ir.GetStaticAttr"
	case *ir.Compare:
		return "*ir.Compare"
	case *ir.Arithmetic:
		return "*ir.Arithmetic"
	case *ir.Negate:
		return "*ir.Negate"
	case *ir.New:
		return "*ir.New"
	case *ir.Call:
		return "*ir.Call"
	case *ir.Intrinsic:
		return "*ir.Intrinsic"
	case *ir.Lambda:
		return "*ir.Lambda"
	case *ir.Tuple:
		return "*ir.Tuple"
	case *ir.Is:
		return "*ir.Is"
	default:
		return "unknown"
	}
}

func TestLower_TypeAnnotationForms(t *testing.T) {
	if _, ok := lowerAnn(nil).(*ir.NoType); !ok {
		t.Fatal("expected a nil annotation to lower to *ir.NoType")
	}
	if _, ok := lowerType(ast.NewGetVarExpr("int32", position.NoPosition{})).(*ir.GetType); !ok {
		t.Fatal("expected a bare identifier type to lower to *ir.GetType")
	}
	funcType := lowerType(ast.NewLambdaExpr(
		[]*ast.Param{ast.NewParam("a", ast.NewGetVarExpr("int32", position.NoPosition{}), position.NoPosition{})},
		ast.NewGetVarExpr("int32", position.NoPosition{}), position.NoPosition{}))
	if ft, ok := funcType.(*ir.FuncType); !ok || len(ft.Params) != 1 {
		t.Fatalf("lowerType(lambda) = %+v, want a *ir.FuncType with 1 param", funcType)
	}
	tupleType := lowerType(ast.NewTupleExpr([]ast.Expr{
		ast.NewGetVarExpr("int32", position.NoPosition{}),
		ast.NewGetVarExpr("int32", position.NoPosition{}),
	}, position.NoPosition{}))
	if tt, ok := tupleType.(*ir.TupleType); !ok || len(tt.Items) != 2 {
		t.Fatalf("lowerType(tuple) = %+v, want a *ir.TupleType with 2 items", tupleType)
	}
	if _, ok := lowerType(ast.NewIntLiteral(1, position.NoPosition{})).(*ir.MalformedType); !ok {
		t.Fatal("expected an expression with no type-position meaning to lower to *ir.MalformedType")
	}
}

func TestLower_StaticAttrNamespaceForms(t *testing.T) {
	ns := lowerNamespace(ast.NewGetVarExpr("shapes", position.NoPosition{}))
	if getNs, ok := ns.(*ir.GetNamespace); !ok || getNs.Name != "shapes" {
		t.Fatalf("lowerNamespace(identifier) = %+v, want *ir.GetNamespace{Name: shapes}", ns)
	}
	malformed := lowerNamespace(ast.NewIntLiteral(1, position.NoPosition{}))
	if _, ok := malformed.(*ir.MalformedNamespace); !ok {
		t.Fatalf("lowerNamespace(non-identifier) = %T, want *ir.MalformedNamespace", malformed)
	}
}
