package analysis

import (
	"github.com/aize-lang/aizec/internal/diagnostics"
	"github.com/aize-lang/aizec/internal/imports"
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/passes"
	"github.com/aize-lang/aizec/internal/symbols"
)

// DeclareTypes declares every struct, union and variant type name into its
// source's global namespace, and binds each Import as a non-parenting child
// namespace under a name derived from the imported path.
func DeclareTypes(sink *diagnostics.Sink) *passes.TreePass {
	return &passes.TreePass{
		PassName:           "DeclareTypes",
		RequiredPasses:     []string{"InitSymbols"},
		RequiredExtensions: []string{SymbolDataKey},
		Visit: func(p *passes.Program) error {
			ext := p.Extension(SymbolDataKey)

			sourceNamespaces := make(map[string]*symbols.NamespaceSymbol, len(p.IR.Sources))
			for _, source := range p.IR.Sources {
				sourceNamespaces[source.Path] = SourceOf(ext, source).Globals
			}

			for _, source := range p.IR.Sources {
				declareTypesSource(sink, ext, sourceNamespaces, source)
			}
			return nil
		},
	}
}

func declareTypesSource(sink *diagnostics.Sink, ext *ir.Extension, sourceNamespaces map[string]*symbols.NamespaceSymbol, source *ir.Source) {
	globals := SourceOf(ext, source).Globals
	for _, tl := range source.Body {
		switch n := tl.(type) {
		case *ir.Import:
			declareTypesImport(sink, sourceNamespaces, source.Path, globals, n)
		case *ir.Union:
			declareTypesUnion(sink, ext, globals, n)
		case *ir.Struct:
			declareTypesStruct(sink, ext, globals, n)
		case *ir.Function:
			// Declared in DeclareFunctions.
		}
	}
}

func declareTypesImport(sink *diagnostics.Sink, sourceNamespaces map[string]*symbols.NamespaceSymbol, ownPath string, globals *symbols.NamespaceSymbol, imp *ir.Import) {
	target, name, msg := imports.Resolve(sourceNamespaces, ownPath, imp.Anchor, imp.Pos())
	if msg != nil {
		sink.Handle(msg)
		return
	}
	if err := globals.DefineNamespace(target, name, true, false); err != nil {
		if dup, ok := err.(*symbols.DuplicateSymbolError); ok {
			sink.Handle(NameExisting(imp.Pos(), dup.Old))
		}
	}
}

func declareTypesUnion(sink *diagnostics.Sink, ext *ir.Extension, scope *symbols.NamespaceSymbol, union *ir.Union) {
	type variantInfo struct {
		typ symbols.TypeSymbol
		pos ir.Node
	}
	seen := make(map[string]variantInfo)
	order := make([]string, 0, len(union.Variants))
	for _, variant := range union.Variants {
		if existing, dup := seen[variant.Name]; dup {
			sink.Handle(AttrRepeated("Variant", variant.Pos(), existing.pos.Pos(), variant.Name))
			continue
		}
		contains := resolveVariantType(ext, scope, variant)
		seen[variant.Name] = variantInfo{typ: contains, pos: variant}
		order = append(order, variant.Name)
	}

	unionType := symbols.NewUnionTypeSymbol(union.Name, nil, nil, map[string]*symbols.VariableSymbol{}, union, union.Pos())
	variants := make(map[string]symbols.FieldEntry, len(order))
	for _, name := range order {
		variants[name] = symbols.FieldEntry{Type: seen[name].typ, Pos: seen[name].pos.Pos()}
	}
	unionType.Variants = variants

	if err := scope.DefineType(unionType, "", true); err != nil {
		if dup, ok := err.(*symbols.DuplicateSymbolError); ok {
			sink.Handle(NameExisting(union.Pos(), dup.Old))
		}
	}

	variantTypes := make(map[string]*symbols.UnionVariantTypeSymbol, len(order))
	for i, name := range order {
		vt := symbols.NewUnionVariantTypeSymbol(name, name, i, variants[name].Type, unionType, union, variants[name].Pos)
		variantTypes[name] = vt
		if err := scope.DefineType(vt, "", true); err != nil {
			if dup, ok := err.(*symbols.DuplicateSymbolError); ok {
				sink.Handle(NameExisting(vt.Position(), dup.Old))
			}
		}
	}
	unionType.VariantTypes = variantTypes

	SetUnion(ext, union, UnionData{UnionType: unionType})
}

// resolveVariantType resolves a variant's single payload annotation, the
// direct counterpart of default_analysis.py's visit_union binding
// variant.contains to one resolved type - only a literal tuple annotation
// (ir.TupleType) produces a TupleTypeSymbol; a scalar annotation stays
// scalar.
func resolveVariantType(ext *ir.Extension, scope *symbols.NamespaceSymbol, variant *ir.Variant) symbols.TypeSymbol {
	return resolveTypeRef(ext, scope, variant.Ann)
}

func declareTypesStruct(sink *diagnostics.Sink, ext *ir.Extension, scope *symbols.NamespaceSymbol, s *ir.Struct) {
	fields := make(map[string]symbols.FieldEntry, len(s.Fields))
	order := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		if existing, dup := fields[field.Name]; dup {
			sink.Handle(AttrRepeated("field", field.Pos(), existing.Pos, field.Name))
			continue
		}
		fields[field.Name] = symbols.FieldEntry{Type: resolveTypeRef(ext, scope, field.Ann), Pos: field.Pos()}
		order = append(order, field.Name)
	}
	structType := symbols.NewStructTypeSymbol(s.Name, fields, order, map[string]*symbols.VariableSymbol{}, s, s.Pos())
	if err := scope.DefineType(structType, "", true); err != nil {
		if dup, ok := err.(*symbols.DuplicateSymbolError); ok {
			sink.Handle(NameExisting(s.Pos(), dup.Old))
		}
	}
	SetStruct(ext, s, StructData{StructType: structType})
}

// resolveTypeRef resolves a type annotation against scope without the full
// unify machinery the resolver needs — DeclareTypes only needs a type's
// identity, not to typecheck an expression against it.
func resolveTypeRef(ext *ir.Extension, scope *symbols.NamespaceSymbol, t ir.Type) symbols.TypeSymbol {
	switch n := t.(type) {
	case *ir.GetType:
		sym, err := scope.LookupType(n.Name, false, true)
		if err != nil {
			sym = symbols.NewErroredTypeSymbol(n, n.Pos())
		}
		SetType(ext, n, TypeData{ResolvedType: sym})
		return sym
	case *ir.TupleType:
		items := make([]symbols.TypeSymbol, len(n.Items))
		for i, item := range n.Items {
			items[i] = resolveTypeRef(ext, scope, item)
		}
		resolved := symbols.NewTupleTypeSymbol(items, n, n.Pos())
		SetType(ext, n, TypeData{ResolvedType: resolved})
		return resolved
	case *ir.FuncType:
		params := make([]symbols.TypeSymbol, len(n.Params))
		for i, param := range n.Params {
			params[i] = resolveTypeRef(ext, scope, param)
		}
		ret := resolveTypeRef(ext, scope, n.Ret)
		resolved := symbols.NewFunctionTypeSymbol(params, ret, n, n.Pos())
		SetType(ext, n, TypeData{ResolvedType: resolved})
		return resolved
	case *ir.NoType:
		resolved := symbols.NewErroredTypeSymbol(n, n.Pos())
		SetType(ext, n, TypeData{ResolvedType: resolved})
		return resolved
	case *ir.MalformedType:
		resolved := symbols.NewErroredTypeSymbol(n, n.Pos())
		SetType(ext, n, TypeData{ResolvedType: resolved})
		return resolved
	default:
		panic("analysis: unknown type node in resolveTypeRef")
	}
}
