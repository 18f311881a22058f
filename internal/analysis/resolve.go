package analysis

import (
	"strconv"
	"strings"

	"github.com/aize-lang/aizec/internal/diagnostics"
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/passes"
	"github.com/aize-lang/aizec/internal/symbols"
)

// typeClass names a predicate used by the resolver's "expected one of these
// kinds" checks, standing in for default_analysis.py's expect_type_cls
// taking a variadic list of Python classes — Go has no class objects to
// pass around, so each one is a name plus a type-assertion predicate.
type typeClass struct {
	Name string
	Is   func(symbols.TypeSymbol) bool
}

var (
	classInt = typeClass{"an integer", func(t symbols.TypeSymbol) bool {
		_, ok := t.(*symbols.IntTypeSymbol)
		return ok
	}}
	classStruct = typeClass{"a struct", func(t symbols.TypeSymbol) bool {
		_, ok := t.(*symbols.StructTypeSymbol)
		return ok
	}}
	classUnion = typeClass{"a union", func(t symbols.TypeSymbol) bool {
		_, ok := t.(*symbols.UnionTypeSymbol)
		return ok
	}}
	classUnionVariant = typeClass{"a union variant", func(t symbols.TypeSymbol) bool {
		_, ok := t.(*symbols.UnionVariantTypeSymbol)
		return ok
	}}
	classFunction = typeClass{"a function", func(t symbols.TypeSymbol) bool {
		_, ok := t.(*symbols.FunctionTypeSymbol)
		return ok
	}}
	classAgg = typeClass{"a struct or union", func(t symbols.TypeSymbol) bool {
		_, ok := t.(symbols.Aggregate)
		return ok
	}}
)

func joinClassNames(classes []typeClass) string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}

// funcCtx is the function the resolver is currently inside, mirroring
// default_analysis.py's ResolveSymbols._current_func/_current_func_type
// pair kept by its in_function contextmanager.
type funcCtx struct {
	fn       ir.Node
	funcType *symbols.FunctionTypeSymbol
}

// resolver is the ResolveSymbols pass's per-run state: the scope stack, the
// unifier it delegates implicit casts to, and which function (if any) is
// currently being walked.
type resolver struct {
	sink    *diagnostics.Sink
	ext     *ir.Extension
	table   *symbols.Table
	unifier *unifier
	current *funcCtx
}

// ResolveSymbols is the pass that gives every expression a type, binds every
// name to the symbol it refers to, and checks control flow always
// terminates with a value. It is by far the largest pass, the direct
// counterpart of default_analysis.py's ResolveSymbols.
func ResolveSymbols(sink *diagnostics.Sink) *passes.TreePass {
	return &passes.TreePass{
		PassName:           "ResolveSymbols",
		RequiredPasses:     []string{"InitSymbols", "DeclareTypes", "DeclareFunctions"},
		RequiredExtensions: []string{SymbolDataKey},
		Visit: func(p *passes.Program) error {
			ext := p.Extension(SymbolDataKey)
			r := &resolver{
				sink:    sink,
				ext:     ext,
				table:   symbols.NewTable(),
				unifier: newUnifier(sink, ext),
			}
			r.resolveProgram(p.IR)
			return nil
		},
	}
}

func (r *resolver) resolveProgram(program *ir.Program) {
	close := r.table.Enter(Program(r.ext, program).Builtins)
	defer close()
	for _, source := range program.Sources {
		r.resolveSource(source)
	}
}

func (r *resolver) resolveSource(source *ir.Source) {
	close := r.table.Enter(SourceOf(r.ext, source).Globals)
	defer close()
	for _, tl := range source.Body {
		switch n := tl.(type) {
		case *ir.Union:
			r.resolveUnion(n)
		case *ir.Struct:
			r.resolveStruct(n)
		case *ir.Function:
			r.resolveFunction(n)
		case *ir.Import:
			// Bound in DeclareTypes; nothing left to resolve.
		}
	}
}

func (r *resolver) resolveUnion(union *ir.Union) {
	for _, method := range union.Methods {
		r.resolveAggFunc(method)
	}
}

func (r *resolver) resolveStruct(s *ir.Struct) {
	for _, method := range s.Methods {
		r.resolveAggFunc(method)
	}
}

func (r *resolver) resolveAggFunc(method *ir.AggFunc) {
	data := AggFuncOf(r.ext, method)
	r.resolveFunctionBody(method.Func, data)
}

func (r *resolver) resolveFunction(fn *ir.Function) {
	data := FunctionOf(r.ext, fn)
	r.resolveFunctionBody(fn, data)
}

// resolveFunctionBody binds every parameter into the function's own
// namespace, walks its body statements accumulating terminality, and
// reports a FlowError when the body does not always terminate in a return —
// shared between top-level functions and methods, which carry identical
// FunctionData shapes.
func (r *resolver) resolveFunctionBody(fn *ir.Function, data FunctionData) {
	funcType := data.Symbol.Type.(*symbols.FunctionTypeSymbol)

	close := r.table.Enter(data.Namespace)
	old := r.current
	r.current = &funcCtx{fn: fn, funcType: funcType}

	for _, param := range fn.Params {
		r.defineValue(ParamOf(r.ext, param).Symbol, data.Namespace)
	}

	terminal := false
	for _, stmt := range fn.Body {
		r.resolveStmt(stmt)
		if StmtOf(r.ext, stmt).IsTerminal {
			terminal = true
		}
	}

	r.current = old
	close()

	if !terminal {
		r.sink.Handle(NotAllPathsReturn(fn.Pos()))
	}
}

func (r *resolver) currentFuncType() *symbols.FunctionTypeSymbol {
	if r.current == nil {
		panic("analysis: resolver used outside any function context")
	}
	return r.current.funcType
}

// defineValue binds symbol into ns (the current namespace, if nil),
// reporting a DefinitionError on a name collision instead of propagating
// the error: duplicate declarations are diagnostics, not hard failures
// that abort the pass.
func (r *resolver) defineValue(symbol *symbols.VariableSymbol, ns *symbols.NamespaceSymbol) {
	if ns == nil {
		ns = r.table.Current()
	}
	if err := ns.DefineValue(symbol, "", true); err != nil {
		if dup, ok := err.(*symbols.DuplicateSymbolError); ok {
			r.sink.Handle(NameExisting(symbol.Position(), dup.Old))
		}
	}
}

func (r *resolver) lookupValue(name string, node ir.Node) *symbols.VariableSymbol {
	sym, err := r.table.LookupValue(name, false, true)
	if err != nil {
		r.sink.Handle(NameUndefined(node.Pos(), name))
		return symbols.NewErroredVariableSymbol(node, node.Pos())
	}
	return sym
}

// classify checks typ against classes, reporting a TypeCheckingError naming
// every allowed class when it matches none and isn't itself already
// Errored. matched is true exactly when typ can be used as-is; when false,
// errored holds the value to propagate instead, the direct counterpart of
// default_analysis.py's expect_type_cls.
func (r *resolver) classify(typ symbols.TypeSymbol, declarer ir.Node, classes ...typeClass) (errored symbols.TypeSymbol, matched bool) {
	for _, c := range classes {
		if c.Is(typ) {
			return nil, true
		}
	}
	if _, ok := typ.(*symbols.ErroredTypeSymbol); ok {
		return typ, false
	}
	r.sink.Handle(&TypeCheckingError{Msg: "Expected " + joinClassNames(classes) + ", got " + typ.ClassName(), Pos: declarer.Pos()})
	return symbols.NewErroredTypeSymbol(declarer, declarer.Pos()), false
}

func (r *resolver) expectExprClass(e ir.Expr, classes ...typeClass) (symbols.TypeSymbol, bool) {
	return r.classify(ExprOf(r.ext, e).ReturnType, e, classes...)
}

func (r *resolver) expectTypeClass(t ir.Type, classes ...typeClass) (symbols.TypeSymbol, bool) {
	return r.classify(TypeOf(r.ext, t).ResolvedType, t, classes...)
}

// --- statements -------------------------------------------------------

func (r *resolver) resolveStmt(s ir.Stmt) {
	switch n := s.(type) {
	case *ir.VarDecl:
		r.resolveVarDecl(n)
	case *ir.Block:
		r.resolveBlock(n)
	case *ir.If:
		r.resolveIf(n)
	case *ir.While:
		r.resolveWhile(n)
	case *ir.ExprStmt:
		r.resolveExprStmt(n)
	case *ir.Return:
		r.resolveReturn(n)
	default:
		panic("analysis: unknown statement kind in resolver")
	}
}

func (r *resolver) resolveVarDecl(n *ir.VarDecl) {
	_, isNoType := n.Ann.(*ir.NoType)

	var declType symbols.TypeSymbol
	if !isNoType {
		declType = resolveTypeRef(r.ext, r.table.Current(), n.Ann)
	}

	n.Value = r.resolveExpr(n.Value)

	if isNoType {
		// An omitted annotation infers from the initializer: NoType is the
		// resolver's cue to derive a type rather than look
		// one up).
		declType = ExprOf(r.ext, n.Value).ReturnType
		SetType(r.ext, n.Ann, TypeData{ResolvedType: declType})
	} else {
		n.Value = r.unifier.unifyType(n.Value, declType, n, nil)
	}

	symbol := symbols.NewVariableSymbol(n.Name, n, declType, n.Pos())
	r.defineValue(symbol, nil)

	SetStmt(r.ext, n, StmtData{IsTerminal: false})
	SetDecl(r.ext, n, DeclData{Declares: symbol, Type: declType})
}

func (r *resolver) resolveBlock(n *ir.Block) {
	terminal := false
	for _, stmt := range n.Stmts {
		r.resolveStmt(stmt)
		if StmtOf(r.ext, stmt).IsTerminal {
			terminal = true
		}
	}
	SetStmt(r.ext, n, StmtData{IsTerminal: terminal})
}

func (r *resolver) resolveIf(n *ir.If) {
	n.Cond = r.resolveExpr(n.Cond)
	n.Cond = r.unifier.unifyType(n.Cond, boolType(r.ext), n, nil)

	// Else before then, matching default_analysis.py's visit_if — a
	// deliberate ordering, not an accident, since the then-branch is
	// visited first in source order everywhere else in the language.
	r.resolveStmt(n.Else)
	r.resolveStmt(n.Then)

	terminal := StmtOf(r.ext, n.Then).IsTerminal && StmtOf(r.ext, n.Else).IsTerminal
	SetStmt(r.ext, n, StmtData{IsTerminal: terminal})
}

func (r *resolver) resolveWhile(n *ir.While) {
	n.Cond = r.resolveExpr(n.Cond)
	n.Cond = r.unifier.unifyType(n.Cond, boolType(r.ext), n, nil)

	r.resolveStmt(n.Body)

	// A while loop's terminality inherits only from its body — unsound in
	// general (the condition might always be true, making the loop itself
	// terminal even with a non-terminal body) but preserved as-is, matching
	// default_analysis.py's visit_while.
	SetStmt(r.ext, n, StmtData{IsTerminal: StmtOf(r.ext, n.Body).IsTerminal})
}

func (r *resolver) resolveExprStmt(n *ir.ExprStmt) {
	n.Expr = r.resolveExpr(n.Expr)
	SetStmt(r.ext, n, StmtData{IsTerminal: false})
}

func (r *resolver) resolveReturn(n *ir.Return) {
	if n.Value == nil {
		// A bare `return;` carries no expression in this IR (lowering.go
		// leaves Value nil); treat it as returning the empty tuple, the
		// closest thing this type system has to a void value.
		unit := ir.NewTuple(nil, n.Pos())
		SetExpr(r.ext, unit, ExprData{ReturnType: symbols.NewTupleTypeSymbol(nil, unit, n.Pos()), IsLVal: false})
		n.Value = unit
	} else {
		n.Value = r.resolveExpr(n.Value)
	}
	n.Value = r.unifier.unifyType(n.Value, r.currentFuncType().Ret, n, nil)
	SetStmt(r.ext, n, StmtData{IsTerminal: true})
}

// --- expressions --------------------------------------------------------

func (r *resolver) resolveExpr(e ir.Expr) ir.Expr {
	switch n := e.(type) {
	case *ir.Int:
		return r.resolveInt(n)
	case *ir.GetVar:
		return r.resolveGetVar(n)
	case *ir.SetVar:
		return r.resolveSetVar(n)
	case *ir.GetAttr:
		return r.resolveGetAttr(n)
	case *ir.SetAttr:
		return r.resolveSetAttr(n)
	case *ir.GetStaticAttr:
		return r.resolveGetStaticAttr(n)
	case *ir.Compare:
		return r.resolveCompare(n)
	case *ir.Arithmetic:
		return r.resolveArithmetic(n)
	case *ir.Negate:
		return r.resolveNegate(n)
	case *ir.New:
		return r.resolveNew(n)
	case *ir.Call:
		return r.resolveCall(n)
	case *ir.Intrinsic:
		return r.resolveIntrinsic(n)
	case *ir.Lambda:
		return r.resolveLambda(n)
	case *ir.Tuple:
		return r.resolveTuple(n)
	case *ir.Is:
		return r.resolveIs(n)
	default:
		panic("analysis: unknown expression kind in resolver")
	}
}

func (r *resolver) resolveInt(n *ir.Int) ir.Expr {
	// An integer literal defaults to a 32-bit signed int; a wider context
	// widens it via unify.
	SetExpr(r.ext, n, ExprData{ReturnType: sintType(r.ext, 32), IsLVal: false})
	return n
}

func (r *resolver) resolveGetVar(n *ir.GetVar) ir.Expr {
	symbol := r.lookupValue(n.Name, n)
	_, isFunction := symbol.Type.(*symbols.FunctionTypeSymbol)
	SetExpr(r.ext, n, ExprData{ReturnType: symbol.Type, IsLVal: !isFunction})
	SetGetVar(r.ext, n, GetVarData{Symbol: symbol, IsFunction: isFunction})
	return n
}

func (r *resolver) resolveSetVar(n *ir.SetVar) ir.Expr {
	n.Value = r.resolveExpr(n.Value)
	symbol := r.lookupValue(n.Name, n)
	pos := symbol.Position()
	n.Value = r.unifier.unifyType(n.Value, symbol.Type, n, &pos)

	SetExpr(r.ext, n, ExprData{ReturnType: ExprOf(r.ext, n.Value).ReturnType, IsLVal: true})
	SetSetVar(r.ext, n, SetVarData{Symbol: symbol})
	return n
}

// lookupAttr finds attr on aggType: a struct's own field first, then any
// aggregate's method table — matching the order default_analysis.py's
// visit_get_attr checks them in.
func lookupAttr(aggType symbols.TypeSymbol, attr string) (returnType symbols.TypeSymbol, index int, isMethod bool, funcSym *symbols.VariableSymbol, found bool) {
	if structType, ok := aggType.(*symbols.StructTypeSymbol); ok {
		if field, ok := structType.Fields[attr]; ok {
			return field.Type, structType.FieldIndex(attr), false, nil, true
		}
	}
	if agg, ok := aggType.(symbols.Aggregate); ok {
		if fn, ok := agg.AggFuncs()[attr]; ok {
			return fn.Type, 0, true, fn, true
		}
	}
	return nil, 0, false, nil, false
}

func (r *resolver) resolveGetAttr(n *ir.GetAttr) ir.Expr {
	n.Obj = r.resolveExpr(n.Obj)
	objIsLVal := ExprOf(r.ext, n.Obj).IsLVal

	var returnType, aggType symbols.TypeSymbol
	var index int
	var isMethod bool
	var funcSym *symbols.VariableSymbol

	if errored, matched := r.expectExprClass(n.Obj, classAgg); !matched {
		returnType, aggType = errored, errored
	} else {
		aggType = ExprOf(r.ext, n.Obj).ReturnType
		if rt, idx, isM, fn, found := lookupAttr(aggType, n.Attr); found {
			returnType, index, isMethod, funcSym = rt, idx, isM, fn
		} else {
			r.sink.Handle(AttrNotFound("field", n.Attr, n.Pos(), aggType))
			returnType = symbols.NewErroredTypeSymbol(n, n.Pos())
		}
	}

	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: objIsLVal})
	SetGetAttr(r.ext, n, GetAttrData{AggType: aggType, Index: index, IsMethod: isMethod, Func: funcSym})
	return n
}

func (r *resolver) resolveSetAttr(n *ir.SetAttr) ir.Expr {
	n.Obj = r.resolveExpr(n.Obj)
	objIsLVal := ExprOf(r.ext, n.Obj).IsLVal
	n.Value = r.resolveExpr(n.Value)

	var returnType symbols.TypeSymbol
	var structType *symbols.StructTypeSymbol
	var index int

	if errored, matched := r.expectExprClass(n.Obj, classStruct); !matched {
		returnType = errored
	} else {
		structType = ExprOf(r.ext, n.Obj).ReturnType.(*symbols.StructTypeSymbol)
		if field, found := structType.Fields[n.Attr]; found {
			index = structType.FieldIndex(n.Attr)
			n.Value = r.unifier.unifyType(n.Value, field.Type, n, nil)
			returnType = ExprOf(r.ext, n.Value).ReturnType
		} else {
			r.sink.Handle(AttrNotFound("field", n.Attr, n.Pos(), structType))
			returnType = symbols.NewErroredTypeSymbol(n, n.Pos())
			structType = nil
		}
	}

	// Checked unconditionally, regardless of whether the field lookup
	// above succeeded — matching visit_set_attr, which always validates
	// the assignment target is an lvalue even after reporting a separate
	// field error.
	if !objIsLVal {
		r.sink.Handle(ExpectedLVal(n.Obj.Pos()))
	}

	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: true})
	SetSetAttr(r.ext, n, SetAttrData{StructType: structType, Index: index})
	return n
}

func (r *resolver) resolveNamespace(ns ir.Namespace) {
	switch n := ns.(type) {
	case *ir.GetNamespace:
		resolved, err := r.table.LookupNamespace(n.Name, false, true)
		if err != nil {
			r.sink.Handle(NameUndefined(n.Pos(), n.Name))
			resolved = symbols.NewErroredNamespaceSymbol(n, n.Pos())
		}
		SetNamespace(r.ext, n, NamespaceData{ResolvedNamespace: resolved})
	case *ir.MalformedNamespace:
		r.sink.Handle(MalformedNamespace(n.Pos()))
		SetNamespace(r.ext, n, NamespaceData{ResolvedNamespace: symbols.NewErroredNamespaceSymbol(n, n.Pos())})
	default:
		panic("analysis: unknown namespace kind in resolver")
	}
}

func (r *resolver) resolveGetStaticAttr(n *ir.GetStaticAttr) ir.Expr {
	r.resolveNamespace(n.Ns)
	namespace := NamespaceOf(r.ext, n.Ns).ResolvedNamespace

	var resolved *symbols.VariableSymbol
	if namespace.Errored() {
		resolved = symbols.NewErroredVariableSymbol(n, n.Pos())
	} else {
		sym, err := namespace.LookupValue(n.Attr, true, true)
		if err != nil {
			r.sink.Handle(NameUndefined(n.Pos(), n.Attr))
			resolved = symbols.NewErroredVariableSymbol(n, n.Pos())
		} else {
			resolved = sym
		}
	}

	SetExpr(r.ext, n, ExprData{ReturnType: resolved.Type, IsLVal: false})
	SetGetStaticAttr(r.ext, n, GetStaticAttrData{ResolvedValue: resolved})
	return n
}

func (r *resolver) resolveCompare(n *ir.Compare) ir.Expr {
	n.Left = r.resolveExpr(n.Left)
	n.Right = r.resolveExpr(n.Right)

	var returnType symbols.TypeSymbol
	isSigned := true

	errored, matched := r.expectExprClass(n.Left, classInt)
	if matched {
		errored, matched = r.expectExprClass(n.Right, classInt)
	}
	if !matched {
		returnType = errored
	} else {
		left := ExprOf(r.ext, n.Left).ReturnType.(*symbols.IntTypeSymbol)
		isSigned = left.Signed
		returnType = boolType(r.ext)
	}

	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: false})
	SetCompare(r.ext, n, CompareData{IsSigned: isSigned})
	return n
}

func (r *resolver) resolveArithmetic(n *ir.Arithmetic) ir.Expr {
	n.Left = r.resolveExpr(n.Left)
	n.Right = r.resolveExpr(n.Right)

	var returnType symbols.TypeSymbol
	isSigned := true

	errored, matched := r.expectExprClass(n.Left, classInt)
	if matched {
		errored, matched = r.expectExprClass(n.Right, classInt)
	}
	if !matched {
		returnType = errored
	} else {
		left := ExprOf(r.ext, n.Left).ReturnType.(*symbols.IntTypeSymbol)
		right := ExprOf(r.ext, n.Right).ReturnType.(*symbols.IntTypeSymbol)
		isSigned = left.Signed
		if right.BitSize > left.BitSize {
			returnType = right
		} else {
			returnType = left
		}
	}

	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: false})
	SetArithmetic(r.ext, n, ArithmeticData{IsSigned: isSigned})
	return n
}

func (r *resolver) resolveNegate(n *ir.Negate) ir.Expr {
	n.Right = r.resolveExpr(n.Right)

	var returnType symbols.TypeSymbol
	if errored, matched := r.expectExprClass(n.Right, classInt); !matched {
		returnType = errored
	} else {
		returnType = ExprOf(r.ext, n.Right).ReturnType
	}

	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: false})
	return n
}

// unifyArguments aligns args against params, reporting arity mismatches and
// unifying each matched pair — shared by New and every call form.
func (r *resolver) unifyArguments(args []ir.Expr, params []symbols.TypeSymbol, node ir.Node) []ir.Expr {
	if len(args) > len(params) {
		excess := args[len(params)]
		r.sink.Handle(TooManyArguments(len(params), len(args), excess.Pos()))
		padded := make([]symbols.TypeSymbol, len(args))
		copy(padded, params)
		params = padded
	} else if len(args) < len(params) {
		r.sink.Handle(TooFewArguments(len(params), len(args), node.Pos()))
	}

	newArgs := make([]ir.Expr, len(args))
	for i, arg := range args {
		if i >= len(params) || params[i] == nil {
			newArgs[i] = arg
		} else {
			newArgs[i] = r.unifier.unifyType(arg, params[i], node, nil)
		}
	}
	return newArgs
}

func (r *resolver) resolveNew(n *ir.New) ir.Expr {
	resolveTypeRef(r.ext, r.table.Current(), n.Type)
	for i, arg := range n.Args {
		n.Args[i] = r.resolveExpr(arg)
	}

	var returnType symbols.TypeSymbol
	if errored, matched := r.expectTypeClass(n.Type, classStruct, classUnionVariant); !matched {
		returnType = errored
	} else {
		typ := TypeOf(r.ext, n.Type).ResolvedType
		returnType = typ
		switch t := typ.(type) {
		case *symbols.StructTypeSymbol:
			fieldTypes := make([]symbols.TypeSymbol, len(t.FieldOrder))
			for i, name := range t.FieldOrder {
				fieldTypes[i] = t.Fields[name].Type
			}
			n.Args = r.unifyArguments(n.Args, fieldTypes, n)
		case *symbols.UnionVariantTypeSymbol:
			n.Args = r.unifyArguments(n.Args, []symbols.TypeSymbol{t.Contains}, n)
		}
	}

	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: false})
	return n
}

// resolveCall rewrites a Call whose callee is a method-valued GetAttr into a
// MethodCall, binding the object as an implicit first argument against the
// method's self parameter.
func (r *resolver) resolveCall(n *ir.Call) ir.Expr {
	n.Callee = r.resolveExpr(n.Callee)
	for i, arg := range n.Args {
		n.Args[i] = r.resolveExpr(arg)
	}

	if getAttr, ok := n.Callee.(*ir.GetAttr); ok && GetAttrOf(r.ext, getAttr).IsMethod {
		return r.resolveMethodCall(n, getAttr)
	}

	var returnType symbols.TypeSymbol
	if errored, matched := r.expectExprClass(n.Callee, classFunction); !matched {
		returnType = errored
	} else {
		funcType := ExprOf(r.ext, n.Callee).ReturnType.(*symbols.FunctionTypeSymbol)
		returnType = funcType.Ret
		n.Args = r.unifyArguments(n.Args, funcType.Params, n)
	}

	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: false})
	return n
}

func (r *resolver) resolveMethodCall(call *ir.Call, getAttr *ir.GetAttr) ir.Expr {
	funcValue := GetAttrOf(r.ext, getAttr).Func
	obj := getAttr.Obj
	args := append([]ir.Expr{obj}, call.Args...)

	var returnType symbols.TypeSymbol
	if errored, matched := r.expectExprClass(getAttr, classFunction); !matched {
		returnType = errored
	} else {
		funcType := ExprOf(r.ext, getAttr).ReturnType.(*symbols.FunctionTypeSymbol)
		returnType = funcType.Ret
		args = r.unifyArguments(args, funcType.Params, call)
	}

	methodCall := ir.NewMethodCall(obj, getAttr.Attr, args[1:], call.Pos())
	SetExpr(r.ext, methodCall, ExprData{ReturnType: returnType, IsLVal: false})
	SetMethodCall(r.ext, methodCall, MethodCallData{Func: funcValue})
	return methodCall
}

func intrinsicBits(name string, prefixLen int) int {
	bits, _ := strconv.Atoi(name[prefixLen:])
	return bits
}

func (r *resolver) resolveIntrinsic(n *ir.Intrinsic) ir.Expr {
	for i, arg := range n.Args {
		n.Args[i] = r.resolveExpr(arg)
	}

	var toBits int
	var signed bool
	switch n.Name {
	case "int8", "int32", "int64":
		toBits, signed = intrinsicBits(n.Name, 3), true
	case "uint8", "uint32", "uint64":
		toBits, signed = intrinsicBits(n.Name, 4), false
	default:
		r.sink.Handle(NoSuchIntrinsic(n.Pos(), n.Name))
		SetExpr(r.ext, n, ExprData{ReturnType: symbols.NewErroredTypeSymbol(n, n.Pos()), IsLVal: false})
		return n
	}

	// Every conversion intrinsic expects a single 64-bit signed argument,
	// signed or not, matching default_analysis.py's visit_intrinsic.
	n.Args = r.unifyArguments(n.Args, []symbols.TypeSymbol{sintType(r.ext, 64)}, n)

	var returnType *symbols.IntTypeSymbol
	if signed {
		returnType = sintType(r.ext, toBits)
	} else {
		returnType = uintType(r.ext, toBits)
	}

	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: false})
	SetIntrinsic(r.ext, n, IntrinsicData{Kind: IntrinsicIntConversion, FromBits: 64, ToBits: toBits})
	return n
}

func (r *resolver) visitLambdaParam(param *ir.Param) {
	paramType := resolveTypeRef(r.ext, r.table.Current(), param.Ann)
	SetParam(r.ext, param, ParamData{Symbol: symbols.NewVariableSymbol(param.Name, param, paramType, param.Pos())})
}

func (r *resolver) resolveLambda(n *ir.Lambda) ir.Expr {
	for _, param := range n.Params {
		r.visitLambdaParam(param)
	}

	funcNamespace := symbols.NewNamespaceSymbol("function <lambda>", n, n.Pos())
	_ = r.table.DefineNamespace(funcNamespace, "", false)

	close := r.table.Enter(funcNamespace)
	for _, param := range n.Params {
		r.defineValue(ParamOf(r.ext, param).Symbol, funcNamespace)
	}
	n.Body = r.resolveExpr(n.Body)
	close()

	ret := ExprOf(r.ext, n.Body).ReturnType
	paramTypes := make([]symbols.TypeSymbol, len(n.Params))
	for i, param := range n.Params {
		paramTypes[i] = TypeOf(r.ext, param.Ann).ResolvedType
	}
	funcType := symbols.NewFunctionTypeSymbol(paramTypes, ret, n, n.Pos())
	funcValue := symbols.NewVariableSymbol("<lambda>", n, funcType, n.Pos())

	SetDecl(r.ext, n, DeclData{Declares: funcValue, Type: funcType})
	SetLambda(r.ext, n, LambdaData{Symbol: funcValue, Type: funcType, Namespace: funcNamespace})
	SetExpr(r.ext, n, ExprData{ReturnType: funcType, IsLVal: false})
	return n
}

func (r *resolver) resolveTuple(n *ir.Tuple) ir.Expr {
	items := make([]symbols.TypeSymbol, len(n.Items))
	for i, item := range n.Items {
		n.Items[i] = r.resolveExpr(item)
		items[i] = ExprOf(r.ext, n.Items[i]).ReturnType
	}
	returnType := symbols.NewTupleTypeSymbol(items, n, n.Pos())
	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: false})
	return n
}

func (r *resolver) resolveIs(n *ir.Is) ir.Expr {
	n.Expr = r.resolveExpr(n.Expr)

	var unionType *symbols.UnionTypeSymbol
	var variant *symbols.UnionVariantTypeSymbol
	var returnType symbols.TypeSymbol

	if errored, matched := r.expectExprClass(n.Expr, classUnion); !matched {
		returnType = errored
	} else {
		unionType = ExprOf(r.ext, n.Expr).ReturnType.(*symbols.UnionTypeSymbol)
		var contains symbols.TypeSymbol
		if vt, found := unionType.VariantTypes[n.Variant]; found {
			variant = vt
			contains = vt.Contains
		} else {
			r.sink.Handle(AttrNotFound("variant", n.Variant, n.Pos(), unionType))
			contains = symbols.NewErroredTypeSymbol(n, n.Pos())
		}
		bound := symbols.NewVariableSymbol(n.BindName, n, contains, n.Pos())
		r.defineValue(bound, nil)
		returnType = boolType(r.ext)
	}

	SetExpr(r.ext, n, ExprData{ReturnType: returnType, IsLVal: false})
	SetIs(r.ext, n, IsData{Union: unionType, Variant: variant})
	return n
}
