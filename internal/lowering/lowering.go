// Package lowering performs the one-shot, total, position-preserving
// translation from the parser's ast.Program into an ir.Program. It never
// fails: any AST shape it does not recognize in a given
// position becomes a Malformed* node. ResolveSymbols reports a
// MalformedNamespace as a diagnostic; a MalformedType resolves to an
// errored type symbol and no pass reports a diagnostic for it. Lowering
// itself only restructures; it never evaluates.
package lowering

import (
	"github.com/aize-lang/aizec/internal/ast"
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/position"
)

// Lower translates a full parsed program into IR.
func Lower(program *ast.Program) *ir.Program {
	sources := make([]*ir.Source, len(program.Sources))
	for i, src := range program.Sources {
		sources[i] = lowerSource(src)
	}
	return ir.NewProgram(sources, program.Pos())
}

func lowerSource(src *ast.Source) *ir.Source {
	var imports []*ir.Import
	var body []ir.TopLevel
	for _, tl := range src.TopLevels {
		lowered := lowerTopLevel(tl)
		body = append(body, lowered)
		if imp, ok := lowered.(*ir.Import); ok {
			imports = append(imports, imp)
		}
	}
	return ir.NewSource(src.SourceRef.Name(), imports, body, src.Pos())
}

func lowerTopLevel(tl ast.TopLevel) ir.TopLevel {
	switch n := tl.(type) {
	case *ast.Import:
		return ir.NewImport(n.Path, n.Pos())
	case *ast.Function:
		return lowerFunction(n)
	case *ast.Struct:
		return lowerStruct(n)
	case *ast.Union:
		return lowerUnion(n)
	default:
		panic("lowering: unknown top-level AST node")
	}
}

func lowerFunction(fn *ast.Function) *ir.Function {
	params := make([]*ir.Param, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = lowerParam(p)
	}
	var attrs []ir.FuncAttr
	for _, a := range fn.Attributes {
		attrs = append(attrs, ir.FuncAttr{Name: a.Name, Args: a.Args})
	}
	body := make([]ir.Stmt, len(fn.Body))
	for i, s := range fn.Body {
		body[i] = lowerStmt(s)
	}
	return ir.NewFunction(fn.Name, params, lowerAnn(fn.Ret), body, attrs, fn.Pos())
}

func lowerParam(p *ast.Param) *ir.Param {
	return ir.NewParam(p.Name, lowerAnn(p.Annotation), p.Pos())
}

func lowerStruct(s *ast.Struct) *ir.Struct {
	var fields []*ir.AggField
	var methods []*ir.AggFunc
	for _, stmt := range s.Body {
		switch n := stmt.(type) {
		case *ast.AggregateField:
			fields = append(fields, ir.NewAggField(n.Name, lowerAnn(n.Annotation), n.Pos()))
		case *ast.AggregateFunction:
			methods = append(methods, lowerAggFunc(n))
		default:
			panic("lowering: unknown struct body AST node")
		}
	}
	return ir.NewStruct(s.Name, fields, methods, s.Pos())
}

func lowerUnion(u *ast.Union) *ir.Union {
	variants := make([]*ir.Variant, len(u.Variants))
	for i, v := range u.Variants {
		variants[i] = lowerVariant(v)
	}
	methods := make([]*ir.AggFunc, len(u.Funcs))
	for i, f := range u.Funcs {
		methods[i] = lowerAggFunc(f)
	}
	return ir.NewUnion(u.Name, variants, methods, u.Pos())
}

// lowerVariant lowers a variant's payload to a single ir.Type: whatever was
// written, tuple or scalar, lowered as-is (lowerType already turns a literal
// tuple annotation into a TupleType). A payload-less variant gets the empty
// tuple, matching the "no value" convention resolveReturn uses for a bare
// return.
func lowerVariant(v *ast.Variant) *ir.Variant {
	if v.Type == nil {
		return ir.NewVariant(v.Name, ir.NewTupleType(nil, v.Pos()), v.Pos())
	}
	return ir.NewVariant(v.Name, lowerType(v.Type), v.Pos())
}

func lowerAggFunc(f *ast.AggregateFunction) *ir.AggFunc {
	params := make([]*ir.Param, len(f.Params))
	for i, p := range f.Params {
		params[i] = lowerParam(p)
	}
	body := make([]ir.Stmt, len(f.Body))
	for i, s := range f.Body {
		body[i] = lowerStmt(s)
	}
	fn := ir.NewFunction(f.Name, params, lowerAnn(f.Ret), body, nil, f.Pos())
	return ir.NewAggFunc(fn, f.Static, f.Pos())
}

func lowerStmt(s ast.Stmt) ir.Stmt {
	switch n := s.(type) {
	case *ast.VarDeclStmt:
		return ir.NewVarDecl(n.Name, lowerAnn(n.Annotation), lowerExpr(n.Value), n.Pos())
	case *ast.BlockStmt:
		body := make([]ir.Stmt, len(n.Body))
		for i, st := range n.Body {
			body[i] = lowerStmt(st)
		}
		return ir.NewBlock(body, n.Pos())
	case *ast.IfStmt:
		elseDo := n.ElseDo
		var elseIR ir.Stmt
		if elseDo == nil {
			elseIR = ir.NewBlock(nil, n.Pos())
		} else {
			elseIR = lowerStmt(elseDo)
		}
		return ir.NewIf(lowerExpr(n.Cond), lowerStmt(n.ThenDo), elseIR, n.Pos())
	case *ast.WhileStmt:
		return ir.NewWhile(lowerExpr(n.Cond), lowerStmt(n.Do), n.Pos())
	case *ast.ExprStmt:
		return ir.NewExprStmt(lowerExpr(n.Value), n.Pos())
	case *ast.ReturnStmt:
		var value ir.Expr
		if n.Value != nil {
			value = lowerExpr(n.Value)
		}
		return ir.NewReturn(value, n.Pos())
	default:
		panic("lowering: unknown statement AST node")
	}
}

func lowerExpr(e ast.Expr) ir.Expr {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return ir.NewInt(n.Num, n.Pos())
	case *ast.GetVarExpr:
		return ir.NewGetVar(n.Var, n.Pos())
	case *ast.SetVarExpr:
		return ir.NewSetVar(n.Var, lowerExpr(n.Value), n.Pos())
	case *ast.GetAttrExpr:
		return ir.NewGetAttr(lowerExpr(n.Obj), n.Attr, n.Pos())
	case *ast.SetAttrExpr:
		return ir.NewSetAttr(lowerExpr(n.Obj), n.Attr, lowerExpr(n.Value), n.Pos())
	case *ast.GetStaticAttrExpr:
		return ir.NewGetStaticAttr(lowerNamespace(n.Namespace), n.Attr, n.Pos())
	case *ast.CompareExpr:
		return ir.NewCompare(compareOp(n.Op), lowerExpr(n.Left), lowerExpr(n.Right), n.Pos())
	case *ast.ArithmeticExpr:
		return ir.NewArithmetic(arithOp(n.Op), lowerExpr(n.Left), lowerExpr(n.Right), n.Pos())
	case *ast.NegExpr:
		return ir.NewNegate(lowerExpr(n.Right), n.Pos())
	case *ast.NewExpr:
		args := make([]ir.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = lowerExpr(a)
		}
		return ir.NewNew(lowerGetType(n.Type), args, n.Pos())
	case *ast.CallExpr:
		args := make([]ir.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = lowerExpr(a)
		}
		return ir.NewCall(lowerExpr(n.Left), args, n.Pos())
	case *ast.IntrinsicExpr:
		args := make([]ir.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = lowerExpr(a)
		}
		return ir.NewIntrinsic(n.Name, args, n.Pos())
	case *ast.LambdaExpr:
		params := make([]*ir.Param, len(n.Params))
		for i, p := range n.Params {
			params[i] = lowerParam(p)
		}
		return ir.NewLambda(params, lowerExpr(n.Body), n.Pos())
	case *ast.TupleExpr:
		items := make([]ir.Expr, len(n.Items))
		for i, item := range n.Items {
			items[i] = lowerExpr(item)
		}
		return ir.NewTuple(items, n.Pos())
	case *ast.IsExpr:
		return ir.NewIs(lowerExpr(n.Expr), n.Variant, n.ToVar, n.Pos())
	default:
		panic("lowering: unknown expression AST node")
	}
}

// lowerAnn lowers an optional type annotation: a nil ast.Expr becomes
// ir.NoType with no position (position.NoPosition), matching the "Ann(None)"
// convention the annotated construct uses when no `: Type` was written.
func lowerAnn(ann ast.Expr) ir.Type {
	if ann == nil {
		return ir.NewNoType(position.NoPosition{})
	}
	return lowerType(ann)
}

func lowerType(e ast.Expr) ir.Type {
	if e == nil {
		return ir.NewNoType(position.NoPosition{})
	}
	switch n := e.(type) {
	case *ast.GetVarExpr:
		return ir.NewGetType(n.Var, n.Pos())
	case *ast.LambdaExpr:
		params := make([]ir.Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = lowerType(p.Annotation)
		}
		return ir.NewFuncType(params, lowerType(n.Body), n.Pos())
	case *ast.TupleExpr:
		items := make([]ir.Type, len(n.Items))
		for i, item := range n.Items {
			items[i] = lowerType(item)
		}
		return ir.NewTupleType(items, n.Pos())
	default:
		return ir.NewMalformedType(e.Pos())
	}
}

// lowerGetType lowers an AST expression known to be in a position that must
// name a type directly (e.g. the type operand of `new`), rather than any
// type-shaped expression.
func lowerGetType(e ast.Expr) ir.Type {
	if n, ok := e.(*ast.GetVarExpr); ok {
		return ir.NewGetType(n.Var, n.Pos())
	}
	return ir.NewMalformedType(e.Pos())
}

func lowerNamespace(e ast.Expr) ir.Namespace {
	if n, ok := e.(*ast.GetVarExpr); ok {
		return ir.NewGetNamespace(n.Var, n.Pos())
	}
	return ir.NewMalformedNamespace(e.Pos())
}

func compareOp(op string) ir.CompareOp {
	switch op {
	case "==":
		return ir.CmpEq
	case "!=":
		return ir.CmpNotEq
	case "<":
		return ir.CmpLess
	case "<=":
		return ir.CmpLessEq
	case ">":
		return ir.CmpGreater
	case ">=":
		return ir.CmpGreaterEq
	default:
		panic("lowering: unknown comparison operator " + op)
	}
}

func arithOp(op string) ir.ArithOp {
	switch op {
	case "+":
		return ir.ArithAdd
	case "-":
		return ir.ArithSub
	case "*":
		return ir.ArithMul
	default:
		panic("lowering: unknown arithmetic operator " + op)
	}
}
