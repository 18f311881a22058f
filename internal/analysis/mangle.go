package analysis

import (
	"strconv"
	"strings"

	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/passes"
	"github.com/aize-lang/aizec/internal/symbols"
)

// MangledData carries the externally-linkable name the Mangle pass computed
// for a declaration. A Function's own Name field is also overwritten with
// it, since the backend reads that field directly when emitting calls;
// everything else's mangled name lives only here, keeping the source name
// on the node for diagnostics that still run after this pass.
type MangledData struct{ Name string }

const mangledSlot = "mangled"

func SetMangled(ext *ir.Extension, n ir.Node, data MangledData) {
	ir.Set(ext, n, mangledSlot, data)
}

func MangledOf(ext *ir.Extension, n ir.Node) MangledData {
	return ir.Get[MangledData](ext, n, mangledSlot)
}

// mangler assigns deterministic external names by walking a symbol's
// enclosing namespaces outward to the program root, numbering each source
// path the first time its namespace is reached.
type mangler struct {
	ext        *ir.Extension
	sourceNums map[string]int
}

func newMangler(ext *ir.Extension) *mangler {
	return &mangler{ext: ext, sourceNums: make(map[string]int)}
}

// mangleSymbol implements the scheme a program's, a source's, a function's,
// a value's and a type's mangled name are each built from: program -> "aize",
// source -> "_S{n}" under a per-path counter, function/method -> "_F{len}{name}",
// value -> "_V{len}{name}", type -> "_T{len}{name}" (each suffixed onto its
// enclosing namespace's own mangled name).
func (m *mangler) mangleSymbol(symbol symbols.Symbol) string {
	switch s := symbol.(type) {
	case symbols.TypeSymbol:
		return m.mangleSymbol(s.Namespace()) + "_T" + strconv.Itoa(len(s.Name())) + s.Name()
	case *symbols.VariableSymbol:
		return m.mangleSymbol(s.Namespace()) + "_V" + strconv.Itoa(len(s.Name())) + s.Name()
	case *symbols.NamespaceSymbol:
		switch {
		case strings.HasPrefix(s.Name(), "program"):
			return "aize"
		case strings.HasPrefix(s.Name(), "source"):
			path := strings.TrimSpace(strings.TrimPrefix(s.Name(), "source"))
			num, seen := m.sourceNums[path]
			if !seen {
				num = len(m.sourceNums)
				m.sourceNums[path] = num
			}
			return m.mangleSymbol(s.Namespace()) + "_S" + strconv.Itoa(num)
		case strings.HasPrefix(s.Name(), "function"):
			name := strings.TrimSpace(strings.TrimPrefix(s.Name(), "function"))
			return m.mangleSymbol(s.Namespace()) + "_F" + strconv.Itoa(len(name)) + name
		default:
			panic("analysis: cannot mangle namespace " + s.Name())
		}
	default:
		panic("analysis: cannot mangle symbol")
	}
}

// Mangle is the final pass in the default sequence: it assigns every
// top-level function, method, struct, union and union variant its
// deterministic external name. Mangling visits sources in program order, so
// the per-path source counter (and thus every mangled name) is identical
// across runs for a fixed set of source files.
func Mangle() *passes.TreePass {
	return &passes.TreePass{
		PassName:           "Mangle",
		RequiredPasses:     []string{"InitSymbols", "DeclareTypes", "DeclareFunctions", "ResolveSymbols"},
		RequiredExtensions: []string{SymbolDataKey},
		Visit: func(p *passes.Program) error {
			ext := p.Extension(SymbolDataKey)
			m := newMangler(ext)
			for _, source := range p.IR.Sources {
				mangleSource(m, ext, source)
			}
			return nil
		},
	}
}

func mangleSource(m *mangler, ext *ir.Extension, source *ir.Source) {
	for _, tl := range source.Body {
		switch n := tl.(type) {
		case *ir.Function:
			mangleFunction(m, ext, n)
		case *ir.Struct:
			mangleStruct(m, ext, n)
		case *ir.Union:
			mangleUnion(m, ext, n)
		case *ir.Import:
			// Imported names were declared, and so mangled, in their own
			// source; nothing to do here.
		}
	}
}

func mangleFunction(m *mangler, ext *ir.Extension, fn *ir.Function) {
	data := FunctionOf(ext, fn)
	// The function's own _F segment comes from its namespace symbol ("function
	// f"), not its value symbol - mangling data.Symbol would route through the
	// *VariableSymbol case and emit a _V segment instead.
	mangled := m.mangleSymbol(data.Namespace)
	fn.Name = mangled
	SetMangled(ext, fn, MangledData{Name: mangled})
}

func mangleAggFunc(m *mangler, ext *ir.Extension, method *ir.AggFunc) {
	data := AggFuncOf(ext, method)
	mangled := m.mangleSymbol(data.Namespace)
	method.Func.Name = mangled
	SetMangled(ext, method, MangledData{Name: mangled})
}

func mangleStruct(m *mangler, ext *ir.Extension, s *ir.Struct) {
	structType := StructOf(ext, s).StructType
	SetMangled(ext, s, MangledData{Name: m.mangleSymbol(structType)})
	for _, method := range s.Methods {
		mangleAggFunc(m, ext, method)
	}
}

func mangleUnion(m *mangler, ext *ir.Extension, u *ir.Union) {
	unionType := UnionOf(ext, u).UnionType
	SetMangled(ext, u, MangledData{Name: m.mangleSymbol(unionType)})
	// unionType.VariantTypes' symbols all share u as their Declarer(), so
	// each variant's mangled name is keyed on its own *ir.Variant node
	// instead - the only node identity that's actually unique per variant.
	for _, variant := range u.Variants {
		if vt, ok := unionType.VariantTypes[variant.Name]; ok {
			SetMangled(ext, variant, MangledData{Name: m.mangleSymbol(vt)})
		}
	}
	for _, method := range u.Methods {
		mangleAggFunc(m, ext, method)
	}
}
