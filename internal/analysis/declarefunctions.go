package analysis

import (
	"github.com/aize-lang/aizec/internal/diagnostics"
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/passes"
	"github.com/aize-lang/aizec/internal/symbols"
)

// DeclareFunctions declares every function's type and binding: top-level
// functions into their source's namespace, methods into their aggregate's
// method table, with the agg-func self-parameter rule enforced, grounded in
// default_analysis.py's visit_agg_func: a method must declare at least one
// parameter, and its first parameter's annotation is ignored in favor of
// binding it to the enclosing aggregate type.
func DeclareFunctions(sink *diagnostics.Sink) *passes.TreePass {
	return &passes.TreePass{
		PassName:           "DeclareFunctions",
		RequiredPasses:     []string{"InitSymbols", "DeclareTypes"},
		RequiredExtensions: []string{SymbolDataKey},
		Visit: func(p *passes.Program) error {
			ext := p.Extension(SymbolDataKey)
			for _, source := range p.IR.Sources {
				declareFunctionsSource(sink, ext, source)
			}
			return nil
		},
	}
}

func declareFunctionsSource(sink *diagnostics.Sink, ext *ir.Extension, source *ir.Source) {
	globals := SourceOf(ext, source).Globals
	for _, tl := range source.Body {
		switch n := tl.(type) {
		case *ir.Union:
			declareFunctionsUnion(sink, ext, globals, n)
		case *ir.Struct:
			declareFunctionsStruct(sink, ext, globals, n)
		case *ir.Function:
			declareFunction(sink, ext, globals, n, false)
		}
	}
}

func declareFunctionsUnion(sink *diagnostics.Sink, ext *ir.Extension, scope *symbols.NamespaceSymbol, union *ir.Union) {
	unionType := UnionOf(ext, union).UnionType
	funcs := make(map[string]*symbols.VariableSymbol, len(union.Methods))
	for _, method := range union.Methods {
		if entry, dup := unionType.Variants[method.Func.Name]; dup {
			sink.Handle(AttrRepeated("field", method.Pos(), entry.Pos, method.Func.Name))
			continue
		}
		if existing, dup := funcs[method.Func.Name]; dup {
			sink.Handle(NameExisting(method.Pos(), existing))
			continue
		}
		value := declareAggFunc(sink, ext, scope, unionType, method)
		funcs[method.Func.Name] = value
	}
	unionType.Funcs = funcs
}

func declareFunctionsStruct(sink *diagnostics.Sink, ext *ir.Extension, scope *symbols.NamespaceSymbol, s *ir.Struct) {
	structType := StructOf(ext, s).StructType
	funcs := make(map[string]*symbols.VariableSymbol, len(s.Methods))
	for _, method := range s.Methods {
		if entry, dup := structType.Fields[method.Func.Name]; dup {
			sink.Handle(AttrRepeated("field", method.Pos(), entry.Pos, method.Func.Name))
			continue
		}
		if existing, dup := funcs[method.Func.Name]; dup {
			sink.Handle(NameExisting(method.Pos(), existing))
			continue
		}
		value := declareAggFunc(sink, ext, scope, structType, method)
		funcs[method.Func.Name] = value
	}
	structType.Funcs = funcs
}

func declareAggFunc(sink *diagnostics.Sink, ext *ir.Extension, scope *symbols.NamespaceSymbol, agg symbols.TypeSymbol, method *ir.AggFunc) *symbols.VariableSymbol {
	var selfType symbols.TypeSymbol
	if !method.Static {
		if len(method.Func.Params) < 1 {
			sink.Handle(&TypeCheckingError{Msg: "Expected at least 1 parameter (self)", Pos: method.Pos()})
		} else {
			selfType = agg
		}
	}
	value, namespace := buildFunction(ext, scope, method.Func, selfType)
	// A method's value is never looked up by bare name at top level, but
	// mangling still walks value.Namespace() outward to the program root, so
	// it needs a namespace recorded even though it stays invisible to lookup.
	_ = scope.DefineValue(value, "<method "+method.Func.Name+">", false)
	SetAggFunc(ext, method, FunctionData{Symbol: value, Namespace: namespace})
	return value
}

func declareFunction(sink *diagnostics.Sink, ext *ir.Extension, scope *symbols.NamespaceSymbol, fn *ir.Function, isMethod bool) {
	value, namespace := buildFunction(ext, scope, fn, nil)
	if err := scope.DefineValue(value, "", true); err != nil {
		if dup, ok := err.(*symbols.DuplicateSymbolError); ok {
			sink.Handle(NameExisting(fn.Pos(), dup.Old))
		}
	}
	attrs := make([]string, len(fn.Attrs))
	for i, a := range fn.Attrs {
		attrs[i] = a.Name
	}
	SetFunction(ext, fn, FunctionData{Symbol: value, Namespace: namespace, Attrs: attrs})
}

// buildFunction resolves a function's signature into a FunctionTypeSymbol,
// declares a VariableSymbol for every parameter, and declares its own
// parameter namespace — shared by top-level functions and methods, so the
// same function-building logic serves Function and AggFunc alike. Lambdas
// are built separately by the resolver's resolveLambda.
//
// selfType, when non-nil, is a method's receiver type: param 0's own
// annotation is ignored in favor of it, since a method's first parameter is
// bound to the enclosing aggregate rather than whatever it was annotated
// with. Resolving it through selfType instead of resolveTypeRef avoids
// stamping that annotation node's type twice.
func buildFunction(ext *ir.Extension, scope *symbols.NamespaceSymbol, fn *ir.Function, selfType symbols.TypeSymbol) (*symbols.VariableSymbol, *symbols.NamespaceSymbol) {
	paramTypes := make([]symbols.TypeSymbol, len(fn.Params))
	for i, param := range fn.Params {
		var paramType symbols.TypeSymbol
		if i == 0 && selfType != nil {
			paramType = selfType
		} else {
			paramType = resolveTypeRef(ext, scope, param.Ann)
		}
		paramTypes[i] = paramType
		SetParam(ext, param, ParamData{Symbol: symbols.NewVariableSymbol(param.Name, param, paramType, param.Pos())})
	}
	retType := resolveTypeRef(ext, scope, fn.Ret)
	funcType := symbols.NewFunctionTypeSymbol(paramTypes, retType, fn, fn.Pos())
	funcValue := symbols.NewVariableSymbol(fn.Name, fn, funcType, fn.Pos())
	funcNamespace := symbols.NewNamespaceSymbol("function "+fn.Name, fn, fn.Pos())
	_ = scope.DefineNamespace(funcNamespace, "", false, true)
	SetDecl(ext, fn, DeclData{Declares: funcValue, Type: funcType})
	return funcValue, funcNamespace
}
