package ir

import "github.com/aize-lang/aizec/internal/position"

// Expr is the IR shape of an expression. Like Type and
// Namespace, it records syntactic shape only; SymbolData carries everything
// the resolver infers about it.
type Expr interface {
	Node
	isExpr()
}

// CompareOp and ArithOp enumerate the built-in binary operators with fixed,
// non-overloadable semantics.
type CompareOp int

const (
	CmpEq CompareOp = iota
	CmpNotEq
	CmpLess
	CmpLessEq
	CmpGreater
	CmpGreaterEq
)

type ArithOp int

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
)

// Int is an integer literal.
type Int struct {
	base
	Value int64
}

func NewInt(value int64, pos position.Position) *Int { return &Int{base: newBase(pos), Value: value} }
func (*Int) isExpr()                                  {}

// GetVar reads a named variable.
type GetVar struct {
	base
	Name string
}

func NewGetVar(name string, pos position.Position) *GetVar {
	return &GetVar{base: newBase(pos), Name: name}
}
func (*GetVar) isExpr() {}

// SetVar assigns a named variable.
type SetVar struct {
	base
	Name  string
	Value Expr
}

func NewSetVar(name string, value Expr, pos position.Position) *SetVar {
	return &SetVar{base: newBase(pos), Name: name, Value: value}
}
func (*SetVar) isExpr() {}

// GetAttr reads a field or resolves a method reference off an aggregate.
type GetAttr struct {
	base
	Obj  Expr
	Attr string
}

func NewGetAttr(obj Expr, attr string, pos position.Position) *GetAttr {
	return &GetAttr{base: newBase(pos), Obj: obj, Attr: attr}
}
func (*GetAttr) isExpr() {}

// SetAttr assigns a struct field.
type SetAttr struct {
	base
	Obj   Expr
	Attr  string
	Value Expr
}

func NewSetAttr(obj Expr, attr string, value Expr, pos position.Position) *SetAttr {
	return &SetAttr{base: newBase(pos), Obj: obj, Attr: attr, Value: value}
}
func (*SetAttr) isExpr() {}

// GetStaticAttr reads a value out of an explicit namespace, e.g.
// `shapes::make_circle`.
type GetStaticAttr struct {
	base
	Ns   Namespace
	Attr string
}

func NewGetStaticAttr(ns Namespace, attr string, pos position.Position) *GetStaticAttr {
	return &GetStaticAttr{base: newBase(pos), Ns: ns, Attr: attr}
}
func (*GetStaticAttr) isExpr() {}

// Compare is a relational binary expression.
type Compare struct {
	base
	Op          CompareOp
	Left, Right Expr
}

func NewCompare(op CompareOp, left, right Expr, pos position.Position) *Compare {
	return &Compare{base: newBase(pos), Op: op, Left: left, Right: right}
}
func (*Compare) isExpr() {}

// Arithmetic is an additive/multiplicative binary expression.
type Arithmetic struct {
	base
	Op          ArithOp
	Left, Right Expr
}

func NewArithmetic(op ArithOp, left, right Expr, pos position.Position) *Arithmetic {
	return &Arithmetic{base: newBase(pos), Op: op, Left: left, Right: right}
}
func (*Arithmetic) isExpr() {}

// Negate is unary integer negation.
type Negate struct {
	base
	Right Expr
}

func NewNegate(right Expr, pos position.Position) *Negate {
	return &Negate{base: newBase(pos), Right: right}
}
func (*Negate) isExpr() {}

// New constructs a struct or union variant.
type New struct {
	base
	Type Type
	Args []Expr
}

func NewNew(typ Type, args []Expr, pos position.Position) *New {
	return &New{base: newBase(pos), Type: typ, Args: args}
}
func (*New) isExpr() {}

// Call invokes a callee expression. The resolver rewrites a Call whose
// callee is a method-valued GetAttr into a MethodCall.
type Call struct {
	base
	Callee Expr
	Args   []Expr
}

func NewCall(callee Expr, args []Expr, pos position.Position) *Call {
	return &Call{base: newBase(pos), Callee: callee, Args: args}
}
func (*Call) isExpr() {}

// MethodCall is synthesized by the resolver from a Call on a method
// attribute; it never comes directly out of lowering.
type MethodCall struct {
	base
	Obj  Expr
	Name string
	Args []Expr
}

func NewMethodCall(obj Expr, name string, args []Expr, pos position.Position) *MethodCall {
	return &MethodCall{base: newBase(pos), Obj: obj, Name: name, Args: args}
}
func (*MethodCall) isExpr() {}

// Intrinsic invokes one of the reserved integer-width conversion names.
type Intrinsic struct {
	base
	Name string
	Args []Expr
}

func NewIntrinsic(name string, args []Expr, pos position.Position) *Intrinsic {
	return &Intrinsic{base: newBase(pos), Name: name, Args: args}
}
func (*Intrinsic) isExpr() {}

// CastInt is an implicit integer-widening cast inserted by unify.
type CastInt struct {
	base
	Expr Expr
	To   Type
}

func NewCastInt(expr Expr, to Type, pos position.Position) *CastInt {
	return &CastInt{base: newBase(pos), Expr: expr, To: to}
}
func (*CastInt) isExpr() {}

// CastUnion is an implicit variant-to-union widening cast inserted by
// unify.
type CastUnion struct {
	base
	Expr    Expr
	Union   Type
	Variant Type
}

func NewCastUnion(expr Expr, union, variant Type, pos position.Position) *CastUnion {
	return &CastUnion{base: newBase(pos), Expr: expr, Union: union, Variant: variant}
}
func (*CastUnion) isExpr() {}

// Lambda is an inline anonymous function expression.
type Lambda struct {
	base
	Params []*Param
	Body   Expr
}

func NewLambda(params []*Param, body Expr, pos position.Position) *Lambda {
	return &Lambda{base: newBase(pos), Params: params, Body: body}
}
func (*Lambda) isExpr() {}

// Tuple groups several expressions into one tuple value.
type Tuple struct {
	base
	Items []Expr
}

func NewTuple(items []Expr, pos position.Position) *Tuple {
	return &Tuple{base: newBase(pos), Items: items}
}
func (*Tuple) isExpr() {}

// Is tests whether a union-typed expression currently holds a given variant,
// binding the contained value to BindName in the enclosing scope when true.
type Is struct {
	base
	Expr     Expr
	Variant  string
	BindName string
}

func NewIs(expr Expr, variant, bindName string, pos position.Position) *Is {
	return &Is{base: newBase(pos), Expr: expr, Variant: variant, BindName: bindName}
}
func (*Is) isExpr() {}
