package analysis

import (
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/passes"
	"github.com/aize-lang/aizec/internal/position"
	"github.com/aize-lang/aizec/internal/symbols"
)

// InitSymbols is the first pass to run: it creates the
// root "program" namespace holding the seven built-in integer types, then a
// per-source global namespace parented under it, and attaches the
// SymbolData extension (with the BuiltinData record stored in it) that
// every later pass in this package requires.
var InitSymbols = &passes.TreePass{
	PassName: "InitSymbols",
	Visit:    runInitSymbols,
}

func runInitSymbols(p *passes.Program) error {
	ext := p.AddExtension(SymbolDataKey)

	builtinNamespace := symbols.NewNamespaceSymbol("program", p.IR, position.NoPosition{})
	SetProgram(ext, p.IR, ProgramData{Builtins: builtinNamespace})

	defInt := func(name string, signed bool, bits int) *symbols.IntTypeSymbol {
		i := symbols.NewIntTypeSymbol(name, signed, bits, p.IR, position.NoPosition{})
		_ = builtinNamespace.DefineType(i, "", true)
		return i
	}

	uint1 := defInt("bool", false, 1)
	uint8 := defInt("uint8", false, 8)
	uint32 := defInt("uint32", false, 32)
	uint64 := defInt("uint64", false, 64)
	int8 := defInt("int8", true, 8)
	int32 := defInt("int32", true, 32)
	int64 := defInt("int64", true, 64)

	SetBuiltins(ext, BuiltinData{
		UInt: map[int]*symbols.IntTypeSymbol{1: uint1, 8: uint8, 32: uint32, 64: uint64},
		SInt: map[int]*symbols.IntTypeSymbol{8: int8, 32: int32, 64: int64},
	})

	for _, source := range p.IR.Sources {
		globalNamespace := symbols.NewNamespaceSymbol("source "+source.Path, source, position.SourcePosition{Name: source.Path})
		_ = builtinNamespace.DefineNamespace(globalNamespace, "", false, true)
		SetSource(ext, source, SourceData{Globals: globalNamespace})
	}
	return nil
}

// boolType, uintType and sintType are small helpers the resolver and
// declaration passes use to go from "a literal of N bits" to the
// corresponding builtin IntTypeSymbol.
func uintType(ext *ir.Extension, bits int) *symbols.IntTypeSymbol { return Builtins(ext).UInt[bits] }
func sintType(ext *ir.Extension, bits int) *symbols.IntTypeSymbol { return Builtins(ext).SInt[bits] }
func boolType(ext *ir.Extension) *symbols.IntTypeSymbol            { return Builtins(ext).UInt[1] }
