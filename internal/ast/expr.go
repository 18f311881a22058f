package ast

import "github.com/aize-lang/aizec/internal/position"

// Expr is an AST expression node. The same concrete node, e.g. GetVarExpr or
// LambdaExpr, is reused in type position and namespace position by the
// grammar; lowering is what gives a node its final interpretation as an
// ir.Expr, ir.Type, or ir.Namespace.
type Expr interface {
	Node
	isExpr()
}

// IntLiteral is an integer literal as written.
type IntLiteral struct {
	base
	Num int64
}

func NewIntLiteral(num int64, pos position.Position) *IntLiteral {
	return &IntLiteral{base: base{pos}, Num: num}
}
func (*IntLiteral) isExpr() {}

// GetVarExpr is a bare identifier reference. Depending on where lowering
// encounters it, the same shape means a variable read, a type name, or a
// namespace name.
type GetVarExpr struct {
	base
	Var string
}

func NewGetVarExpr(v string, pos position.Position) *GetVarExpr {
	return &GetVarExpr{base: base{pos}, Var: v}
}
func (*GetVarExpr) isExpr() {}

// SetVarExpr assigns an identifier.
type SetVarExpr struct {
	base
	Var   string
	Value Expr
}

func NewSetVarExpr(v string, value Expr, pos position.Position) *SetVarExpr {
	return &SetVarExpr{base: base{pos}, Var: v, Value: value}
}
func (*SetVarExpr) isExpr() {}

// GetAttrExpr reads an attribute off an object expression.
type GetAttrExpr struct {
	base
	Obj  Expr
	Attr string
}

func NewGetAttrExpr(obj Expr, attr string, pos position.Position) *GetAttrExpr {
	return &GetAttrExpr{base: base{pos}, Obj: obj, Attr: attr}
}
func (*GetAttrExpr) isExpr() {}

// SetAttrExpr assigns an attribute on an object expression.
type SetAttrExpr struct {
	base
	Obj   Expr
	Attr  string
	Value Expr
}

func NewSetAttrExpr(obj Expr, attr string, value Expr, pos position.Position) *SetAttrExpr {
	return &SetAttrExpr{base: base{pos}, Obj: obj, Attr: attr, Value: value}
}
func (*SetAttrExpr) isExpr() {}

// GetStaticAttrExpr reads a name out of an explicit namespace expression,
// e.g. `shapes::Circle`.
type GetStaticAttrExpr struct {
	base
	Namespace Expr
	Attr      string
}

func NewGetStaticAttrExpr(ns Expr, attr string, pos position.Position) *GetStaticAttrExpr {
	return &GetStaticAttrExpr{base: base{pos}, Namespace: ns, Attr: attr}
}
func (*GetStaticAttrExpr) isExpr() {}

// CompareExpr is a relational binary expression; Op is the operator token
// text (e.g. "==", "<").
type CompareExpr struct {
	base
	Op          string
	Left, Right Expr
}

func NewCompareExpr(op string, left, right Expr, pos position.Position) *CompareExpr {
	return &CompareExpr{base: base{pos}, Op: op, Left: left, Right: right}
}
func (*CompareExpr) isExpr() {}

// ArithmeticExpr is an additive/multiplicative binary expression.
type ArithmeticExpr struct {
	base
	Op          string
	Left, Right Expr
}

func NewArithmeticExpr(op string, left, right Expr, pos position.Position) *ArithmeticExpr {
	return &ArithmeticExpr{base: base{pos}, Op: op, Left: left, Right: right}
}
func (*ArithmeticExpr) isExpr() {}

// NegExpr is unary negation.
type NegExpr struct {
	base
	Right Expr
}

func NewNegExpr(right Expr, pos position.Position) *NegExpr {
	return &NegExpr{base: base{pos}, Right: right}
}
func (*NegExpr) isExpr() {}

// NewExpr constructs a struct or union variant: `new Circle(radius)`. Type
// is a GetVarExpr naming the aggregate.
type NewExpr struct {
	base
	Type Expr
	Args []Expr
}

func NewNewExpr(typ Expr, args []Expr, pos position.Position) *NewExpr {
	return &NewExpr{base: base{pos}, Type: typ, Args: args}
}
func (*NewExpr) isExpr() {}

// CallExpr invokes an expression.
type CallExpr struct {
	base
	Left Expr
	Args []Expr
}

func NewCallExpr(left Expr, args []Expr, pos position.Position) *CallExpr {
	return &CallExpr{base: base{pos}, Left: left, Args: args}
}
func (*CallExpr) isExpr() {}

// IntrinsicExpr invokes a reserved compiler-provided name, e.g.
// `int32(x)`.
type IntrinsicExpr struct {
	base
	Name string
	Args []Expr
}

func NewIntrinsicExpr(name string, args []Expr, pos position.Position) *IntrinsicExpr {
	return &IntrinsicExpr{base: base{pos}, Name: name, Args: args}
}
func (*IntrinsicExpr) isExpr() {}

// LambdaExpr is an inline anonymous function in expression position, and a
// function-type annotation in type position.
type LambdaExpr struct {
	base
	Params []*Param
	Body   Expr
}

func NewLambdaExpr(params []*Param, body Expr, pos position.Position) *LambdaExpr {
	return &LambdaExpr{base: base{pos}, Params: params, Body: body}
}
func (*LambdaExpr) isExpr() {}

// TupleExpr groups expressions in expression position, and is a
// tuple-type annotation in type position.
type TupleExpr struct {
	base
	Items []Expr
}

func NewTupleExpr(items []Expr, pos position.Position) *TupleExpr {
	return &TupleExpr{base: base{pos}, Items: items}
}
func (*TupleExpr) isExpr() {}

// IsExpr tests a union-typed expression against a named variant, optionally
// binding the contained value.
type IsExpr struct {
	base
	Expr    Expr
	Variant string
	ToVar   string
}

func NewIsExpr(expr Expr, variant, toVar string, pos position.Position) *IsExpr {
	return &IsExpr{base: base{pos}, Expr: expr, Variant: variant, ToVar: toVar}
}
func (*IsExpr) isExpr() {}
