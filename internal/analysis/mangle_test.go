package analysis

import (
	"testing"

	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/position"
)

func runMangleOn(t *testing.T, sources ...*ir.Source) *ir.Extension {
	t.Helper()
	p, ext, sink := newTestProgram(t, sources...)
	if err := DeclareTypes(sink).RunPass(p); err != nil {
		t.Fatalf("DeclareTypes failed: %v", err)
	}
	if err := DeclareFunctions(sink).RunPass(p); err != nil {
		t.Fatalf("DeclareFunctions failed: %v", err)
	}
	if err := ResolveSymbols(sink).RunPass(p); err != nil {
		t.Fatalf("ResolveSymbols failed: %v", err)
	}
	if err := Mangle().RunPass(p); err != nil {
		t.Fatalf("Mangle failed: %v", err)
	}
	if sinkHasErrors(sink) {
		t.Fatalf("unexpected diagnostics: %v", sink.Messages())
	}
	return ext
}

func TestMangle_TopLevelFunctionGetsDeterministicName(t *testing.T) {
	fn := ir.NewFunction("f", nil, intType(), []ir.Stmt{
		ir.NewReturn(ir.NewInt(1, position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	source := ir.NewSource("a.aize", nil, []ir.TopLevel{fn}, position.NoPosition{})

	ext := runMangleOn(t, source)
	want := "aize_S0_F1f"
	if fn.Name != want {
		t.Fatalf("fn.Name = %q, want %q", fn.Name, want)
	}
	if MangledOf(ext, fn).Name != want {
		t.Fatalf("MangledOf(fn).Name = %q, want %q", MangledOf(ext, fn).Name, want)
	}
}

func TestMangle_SecondSourceGetsNextSourceNumber(t *testing.T) {
	fnA := ir.NewFunction("a", nil, intType(), []ir.Stmt{
		ir.NewReturn(ir.NewInt(1, position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	sourceA := ir.NewSource("a.aize", nil, []ir.TopLevel{fnA}, position.NoPosition{})

	fnB := ir.NewFunction("b", nil, intType(), []ir.Stmt{
		ir.NewReturn(ir.NewInt(1, position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	sourceB := ir.NewSource("b.aize", nil, []ir.TopLevel{fnB}, position.NoPosition{})

	runMangleOn(t, sourceA, sourceB)
	if fnA.Name != "aize_S0_F1a" {
		t.Fatalf("fnA.Name = %q, want %q", fnA.Name, "aize_S0_F1a")
	}
	if fnB.Name != "aize_S1_F1b" {
		t.Fatalf("fnB.Name = %q, want %q", fnB.Name, "aize_S1_F1b")
	}
}

func TestMangle_StructAndMethodGetDistinctMangledNames(t *testing.T) {
	selfParam := ir.NewParam("self", ir.NewGetType("S", position.NoPosition{}), position.NoPosition{})
	method := ir.NewFunction("touch", []*ir.Param{selfParam}, intType(), []ir.Stmt{
		ir.NewReturn(ir.NewInt(0, position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	aggFunc := ir.NewAggFunc(method, false, position.NoPosition{})
	structNode := ir.NewStruct("S", nil, []*ir.AggFunc{aggFunc}, position.NoPosition{})
	source := ir.NewSource("a.aize", nil, []ir.TopLevel{structNode}, position.NoPosition{})

	ext := runMangleOn(t, source)

	structMangled := MangledOf(ext, structNode).Name
	wantStruct := "aize_S0_T1S"
	if structMangled != wantStruct {
		t.Fatalf("struct mangled name = %q, want %q", structMangled, wantStruct)
	}

	methodMangled := MangledOf(ext, aggFunc).Name
	if methodMangled == "" {
		t.Fatal("expected the method to receive a mangled name")
	}
	if methodMangled == structMangled {
		t.Fatal("expected the method's mangled name to differ from its struct's")
	}
	if method.Name != methodMangled {
		t.Fatalf("method.Func.Name = %q, want it overwritten to %q", method.Name, methodMangled)
	}
}

func TestMangle_UnionVariantsGetDistinctMangledNames(t *testing.T) {
	circle := ir.NewVariant("Circle", ir.NewTupleType(nil, position.NoPosition{}), position.NoPosition{})
	square := ir.NewVariant("Square", ir.NewTupleType(nil, position.NoPosition{}), position.NoPosition{})
	unionNode := ir.NewUnion("Shape", []*ir.Variant{circle, square}, nil, position.NoPosition{})
	source := ir.NewSource("a.aize", nil, []ir.TopLevel{unionNode}, position.NoPosition{})

	ext := runMangleOn(t, source)

	circleMangled := MangledOf(ext, circle).Name
	squareMangled := MangledOf(ext, square).Name
	if circleMangled == "" || squareMangled == "" {
		t.Fatal("expected both variants to receive mangled names")
	}
	if circleMangled == squareMangled {
		t.Fatal("expected each variant to get its own distinct mangled name despite sharing the union as Declarer")
	}
}

func TestMangle_SameSourcePathReusesSameSourceNumber(t *testing.T) {
	fn1 := ir.NewFunction("f", nil, intType(), []ir.Stmt{
		ir.NewReturn(ir.NewInt(1, position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	fn2 := ir.NewFunction("g", nil, intType(), []ir.Stmt{
		ir.NewReturn(ir.NewInt(1, position.NoPosition{}), position.NoPosition{}),
	}, nil, position.NoPosition{})
	source := ir.NewSource("a.aize", nil, []ir.TopLevel{fn1, fn2}, position.NoPosition{})

	runMangleOn(t, source)
	if fn1.Name != "aize_S0_F1f" || fn2.Name != "aize_S0_F1g" {
		t.Fatalf("fn1.Name=%q fn2.Name=%q, want both under source number 0", fn1.Name, fn2.Name)
	}
}
