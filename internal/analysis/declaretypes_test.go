package analysis

import (
	"bytes"
	"testing"

	"github.com/aize-lang/aizec/internal/diagnostics"
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/passes"
	"github.com/aize-lang/aizec/internal/position"
	"github.com/aize-lang/aizec/internal/symbols"
)

func newTestProgram(t *testing.T, sources ...*ir.Source) (*passes.Program, *ir.Extension, *diagnostics.Sink) {
	t.Helper()
	irProgram := ir.NewProgram(sources, position.NoPosition{})
	p := passes.NewProgram(irProgram)
	if err := InitSymbols.RunPass(p); err != nil {
		t.Fatalf("InitSymbols failed: %v", err)
	}
	reporter := diagnostics.NewReporter(&bytes.Buffer{})
	sink := diagnostics.NewSink(reporter, diagnostics.DefaultThresholds())
	return p, p.Extension(SymbolDataKey), sink
}

func sinkHasErrors(sink *diagnostics.Sink) bool {
	return len(sink.Messages()) > 0
}

func TestDeclareTypes_StructDefinesFieldsInOrder(t *testing.T) {
	structNode := ir.NewStruct("Point", []*ir.AggField{
		ir.NewAggField("x", ir.NewGetType("int32", position.NoPosition{}), position.NoPosition{}),
		ir.NewAggField("y", ir.NewGetType("int32", position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	source := ir.NewSource("a.aize", nil, []ir.TopLevel{structNode}, position.NoPosition{})

	p, ext, sink := newTestProgram(t, source)
	pass := DeclareTypes(sink)
	if err := pass.RunPass(p); err != nil {
		t.Fatalf("DeclareTypes failed: %v", err)
	}
	if sinkHasErrors(sink) {
		t.Fatalf("unexpected diagnostics")
	}

	structType := StructOf(ext, structNode).StructType
	if structType.FieldOrder[0] != "x" || structType.FieldOrder[1] != "y" {
		t.Fatalf("FieldOrder = %v, want [x y]", structType.FieldOrder)
	}
	if structType.FieldIndex("y") != 1 {
		t.Fatalf("FieldIndex(y) = %d, want 1", structType.FieldIndex("y"))
	}
}

func TestDeclareTypes_StructDuplicateFieldReported(t *testing.T) {
	structNode := ir.NewStruct("Dup", []*ir.AggField{
		ir.NewAggField("x", ir.NewGetType("int32", position.NoPosition{}), position.NoPosition{}),
		ir.NewAggField("x", ir.NewGetType("int32", position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	source := ir.NewSource("a.aize", nil, []ir.TopLevel{structNode}, position.NoPosition{})

	p, ext, sink := newTestProgram(t, source)
	pass := DeclareTypes(sink)
	if err := pass.RunPass(p); err != nil {
		t.Fatalf("DeclareTypes failed: %v", err)
	}
	if !sinkHasErrors(sink) {
		t.Fatal("expected a duplicate-field diagnostic")
	}

	structType := StructOf(ext, structNode).StructType
	if len(structType.FieldOrder) != 1 {
		t.Fatalf("FieldOrder = %v, want exactly one survivor", structType.FieldOrder)
	}
}

func TestDeclareTypes_UnionBuildsVariantTypesKeyedByName(t *testing.T) {
	unionNode := ir.NewUnion("Shape", []*ir.Variant{
		ir.NewVariant("Circle", ir.NewGetType("int32", position.NoPosition{}), position.NoPosition{}),
		ir.NewVariant("Square", ir.NewGetType("int32", position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	source := ir.NewSource("a.aize", nil, []ir.TopLevel{unionNode}, position.NoPosition{})

	p, ext, sink := newTestProgram(t, source)
	pass := DeclareTypes(sink)
	if err := pass.RunPass(p); err != nil {
		t.Fatalf("DeclareTypes failed: %v", err)
	}
	if sinkHasErrors(sink) {
		t.Fatal("unexpected diagnostics")
	}

	unionType := UnionOf(ext, unionNode).UnionType
	if len(unionType.VariantTypes) != 2 {
		t.Fatalf("VariantTypes has %d entries, want 2", len(unionType.VariantTypes))
	}
	circle, ok := unionType.VariantTypes["Circle"]
	if !ok {
		t.Fatal("expected a VariantTypes entry for Circle")
	}
	square, ok := unionType.VariantTypes["Square"]
	if !ok {
		t.Fatal("expected a VariantTypes entry for Square")
	}
	if circle.Index != 0 || square.Index != 1 {
		t.Fatalf("Index = %d, %d, want 0, 1", circle.Index, square.Index)
	}
	if circle == square {
		t.Fatal("expected each variant to get its own distinct UnionVariantTypeSymbol")
	}
	if !unionType.IsSuperOf(circle) || !unionType.IsSuperOf(square) {
		t.Fatal("expected the union type to be a supertype of each of its own variants")
	}
}

func TestDeclareTypes_UnionDuplicateVariantReported(t *testing.T) {
	unionNode := ir.NewUnion("Dup", []*ir.Variant{
		ir.NewVariant("A", ir.NewTupleType(nil, position.NoPosition{}), position.NoPosition{}),
		ir.NewVariant("A", ir.NewTupleType(nil, position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	source := ir.NewSource("a.aize", nil, []ir.TopLevel{unionNode}, position.NoPosition{})

	p, ext, sink := newTestProgram(t, source)
	pass := DeclareTypes(sink)
	if err := pass.RunPass(p); err != nil {
		t.Fatalf("DeclareTypes failed: %v", err)
	}
	if !sinkHasErrors(sink) {
		t.Fatal("expected a duplicate-variant diagnostic")
	}

	unionType := UnionOf(ext, unionNode).UnionType
	if len(unionType.VariantTypes) != 1 {
		t.Fatalf("VariantTypes has %d entries, want exactly one survivor", len(unionType.VariantTypes))
	}
}

func TestDeclareTypes_ImportBindsUnderDerivedName(t *testing.T) {
	libSource := ir.NewSource("lib.aize", nil, nil, position.NoPosition{})
	importNode := ir.NewImport("lib.aize", position.NoPosition{})
	mainSource := ir.NewSource("main.aize", []*ir.Import{importNode}, []ir.TopLevel{importNode}, position.NoPosition{})

	p, ext, sink := newTestProgram(t, libSource, mainSource)
	pass := DeclareTypes(sink)
	if err := pass.RunPass(p); err != nil {
		t.Fatalf("DeclareTypes failed: %v", err)
	}
	if sinkHasErrors(sink) {
		t.Fatal("unexpected diagnostics")
	}

	mainGlobals := SourceOf(ext, mainSource).Globals
	found, err := mainGlobals.LookupNamespace("lib", true, true)
	if err != nil {
		t.Fatalf("expected the import to be bound as 'lib': %v", err)
	}
	if found != SourceOf(ext, libSource).Globals {
		t.Fatal("expected the bound namespace to be the imported source's globals")
	}
}

func TestDeclareTypes_SelfImportReported(t *testing.T) {
	importNode := ir.NewImport("a.aize", position.NoPosition{})
	source := ir.NewSource("a.aize", []*ir.Import{importNode}, []ir.TopLevel{importNode}, position.NoPosition{})

	p, _, sink := newTestProgram(t, source)
	pass := DeclareTypes(sink)
	if err := pass.RunPass(p); err != nil {
		t.Fatalf("DeclareTypes failed: %v", err)
	}
	if !sinkHasErrors(sink) {
		t.Fatal("expected a self-import diagnostic")
	}
}

func TestResolveTypeRef_TupleAndFuncTypesResolveRecursively(t *testing.T) {
	source := ir.NewSource("a.aize", nil, nil, position.NoPosition{})
	p, ext, _ := newTestProgram(t, source)
	globals := SourceOf(ext, source).Globals

	tupleAnn := ir.NewTupleType([]ir.Type{
		ir.NewGetType("int32", position.NoPosition{}),
		ir.NewGetType("bool", position.NoPosition{}),
	}, position.NoPosition{})
	resolved := resolveTypeRef(ext, globals, tupleAnn)
	tuple, ok := resolved.(*symbols.TupleTypeSymbol)
	if !ok {
		t.Fatalf("resolved = %T, want *symbols.TupleTypeSymbol", resolved)
	}
	if len(tuple.Items) != 2 {
		t.Fatalf("tuple has %d items, want 2", len(tuple.Items))
	}

	funcAnn := ir.NewFuncType([]ir.Type{
		ir.NewGetType("int32", position.NoPosition{}),
	}, ir.NewGetType("bool", position.NoPosition{}), position.NoPosition{})
	resolvedFunc := resolveTypeRef(ext, globals, funcAnn)
	fn, ok := resolvedFunc.(*symbols.FunctionTypeSymbol)
	if !ok {
		t.Fatalf("resolved = %T, want *symbols.FunctionTypeSymbol", resolvedFunc)
	}
	if len(fn.Params) != 1 {
		t.Fatalf("fn has %d params, want 1", len(fn.Params))
	}
}
