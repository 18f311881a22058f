package ir

// Visitor is implemented by code that wants to walk the IR tree. The design
// calls for one generic walk helper that recurses structural children
// rather than a Visit method per node kind (contrast the full visitor
// interface in an AST package grounded elsewhere in this codebase); Walk is
// that helper, modeled on the stdlib's go/ast.Walk.
type Visitor interface {
	// Visit is called with every node Walk descends into. If it returns
	// false, Walk does not recurse into that node's children.
	Visit(node Node) (recurse bool)
}

// Walk calls v.Visit(node) and, if it returns true, recurses into node's
// structural children in source order. Extension data is not part of the
// tree Walk traverses; only syntactic fields are.
func Walk(v Visitor, node Node) {
	if node == nil || !v.Visit(node) {
		return
	}
	switch n := node.(type) {
	case *Program:
		for _, s := range n.Sources {
			Walk(v, s)
		}
	case *Source:
		for _, imp := range n.Imports {
			Walk(v, imp)
		}
		for _, tl := range n.Body {
			Walk(v, tl)
		}
	case *Import:
		// leaf
	case *Function:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Ret)
		for _, s := range n.Body {
			Walk(v, s)
		}
	case *Param:
		Walk(v, n.Ann)
	case *Struct:
		for _, f := range n.Fields {
			Walk(v, f)
		}
		for _, m := range n.Methods {
			Walk(v, m)
		}
	case *Union:
		for _, variant := range n.Variants {
			Walk(v, variant)
		}
		for _, m := range n.Methods {
			Walk(v, m)
		}
	case *Variant:
		Walk(v, n.Ann)
	case *AggField:
		Walk(v, n.Ann)
	case *AggFunc:
		Walk(v, n.Func)

	case *VarDecl:
		Walk(v, n.Ann)
		Walk(v, n.Value)
	case *Block:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *If:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *While:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *ExprStmt:
		Walk(v, n.Expr)
	case *Return:
		Walk(v, n.Value)

	case *Int:
		// leaf
	case *GetVar:
		// leaf
	case *SetVar:
		Walk(v, n.Value)
	case *GetAttr:
		Walk(v, n.Obj)
	case *SetAttr:
		Walk(v, n.Obj)
		Walk(v, n.Value)
	case *GetStaticAttr:
		Walk(v, n.Ns)
	case *Compare:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *Arithmetic:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *Negate:
		Walk(v, n.Right)
	case *New:
		Walk(v, n.Type)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *Call:
		Walk(v, n.Callee)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *MethodCall:
		Walk(v, n.Obj)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *Intrinsic:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *CastInt:
		Walk(v, n.Expr)
		Walk(v, n.To)
	case *CastUnion:
		Walk(v, n.Expr)
		Walk(v, n.Union)
		Walk(v, n.Variant)
	case *Lambda:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Body)
	case *Tuple:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *Is:
		Walk(v, n.Expr)

	case *GetType:
		// leaf
	case *FuncType:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Ret)
	case *TupleType:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *NoType, *GeneratedType, *MalformedType:
		// leaf

	case *GetNamespace, *MalformedNamespace:
		// leaf
	}
}

// walkFunc adapts a plain function to the Visitor interface.
type walkFunc func(Node) bool

func (f walkFunc) Visit(node Node) bool { return f(node) }

// WalkFunc walks node calling fn on every node Walk visits.
func WalkFunc(node Node, fn func(Node) bool) {
	Walk(walkFunc(fn), node)
}
