package analysis

import (
	"fmt"

	"github.com/aize-lang/aizec/internal/diagnostics"
	"github.com/aize-lang/aizec/internal/ir"
	"github.com/aize-lang/aizec/internal/position"
	"github.com/aize-lang/aizec/internal/symbols"
)

// unifier inserts the implicit widening casts the language allows:
// integer-width promotion and variant-to-union wrapping. It dispatches on
// the (from, to) type pair, mirroring default_analysis.py's TypeUnifier.MAP
// — a Go type switch standing in for that dict, since Go has no first-class
// type objects to key a map on.
type unifier struct {
	sink *diagnostics.Sink
	ext  *ir.Extension
}

func newUnifier(sink *diagnostics.Sink, ext *ir.Extension) *unifier {
	return &unifier{sink: sink, ext: ext}
}

// unifyType coerces expr to type to, inserting a CastInt/CastUnion node when
// a widening applies, and reporting a TypeCheckingError otherwise. node
// anchors the diagnostic's position; typeDecl, when non-nil, is noted as
// "expected type declared here" (the common case: unifying against a
// variable's declared type or a function's declared return type).
func (u *unifier) unifyType(expr ir.Expr, to symbols.TypeSymbol, node ir.Node, typeDecl *position.Position) ir.Expr {
	from := ExprOf(u.ext, expr).ReturnType

	if u.isErrored(from) || u.isErrored(to) {
		return expr
	}

	switch fromType := from.(type) {
	case *symbols.IntTypeSymbol:
		if toType, ok := to.(*symbols.IntTypeSymbol); ok {
			return u.unifyIntInt(expr, fromType, toType, node)
		}
	case *symbols.StructTypeSymbol:
		if toType, ok := to.(*symbols.StructTypeSymbol); ok {
			return u.unifyIdentity(expr, fromType, toType, node, typeDecl)
		}
	case *symbols.FunctionTypeSymbol:
		if toType, ok := to.(*symbols.FunctionTypeSymbol); ok {
			return u.unifyIdentity(expr, fromType, toType, node, typeDecl)
		}
	case *symbols.TupleTypeSymbol:
		if toType, ok := to.(*symbols.TupleTypeSymbol); ok {
			return u.unifyIdentity(expr, fromType, toType, node, typeDecl)
		}
	case *symbols.UnionVariantTypeSymbol:
		if toType, ok := to.(*symbols.UnionTypeSymbol); ok {
			return u.unifyVariantUnion(expr, fromType, toType, node)
		}
	case *symbols.UnionTypeSymbol:
		if toType, ok := to.(*symbols.UnionTypeSymbol); ok {
			return u.unifyIdentity(expr, fromType, toType, node, typeDecl)
		}
	}

	u.reportError(node, typeDecl, fmt.Sprintf("Expected type %s, got type %s", to, from), true)
	return expr
}

func (u *unifier) unifyIntInt(expr ir.Expr, from, to *symbols.IntTypeSymbol, node ir.Node) ir.Expr {
	if from.Signed != to.Signed {
		u.reportError(node, nil, "Cannot mix signed and unsigned integers", false)
		return expr
	}
	switch {
	case from.BitSize < to.BitSize:
		castType := ResolvedType(u.ext, to, node)
		cast := ir.NewCastInt(expr, castType, node.Pos())
		SetExpr(u.ext, cast, ExprData{ReturnType: to, IsLVal: false})
		SetCastInt(u.ext, cast, CastIntData{FromBits: from.BitSize, ToBits: to.BitSize, IsSigned: from.Signed})
		return cast
	case from.BitSize == to.BitSize:
		return expr
	default:
		u.reportError(node, nil, "Cannot implicitly reduce an integer's size", false)
		return expr
	}
}

// unifyIdentity handles every nominally-identical type pair (struct,
// function, tuple, union): equal only by pointer identity, never by
// structural comparison.
func (u *unifier) unifyIdentity(expr ir.Expr, from, to symbols.TypeSymbol, node ir.Node, typeDecl *position.Position) ir.Expr {
	if from == to {
		return expr
	}
	u.reportError(node, typeDecl, fmt.Sprintf("Expected type %s, got type %s", to, from), true)
	return expr
}

func (u *unifier) unifyVariantUnion(expr ir.Expr, from *symbols.UnionVariantTypeSymbol, to *symbols.UnionTypeSymbol, node ir.Node) ir.Expr {
	if from.Union != to {
		u.reportError(node, nil, fmt.Sprintf("Cannot cast since %s is not %s's parent", to, from), false)
		return expr
	}
	unionType := ResolvedType(u.ext, to, node)
	variantType := ResolvedType(u.ext, from, node)
	cast := ir.NewCastUnion(expr, unionType, variantType, expr.Pos())
	SetCastUnion(u.ext, cast, CastUnionData{Variant: from, Union: to})
	SetExpr(u.ext, cast, ExprData{ReturnType: to, IsLVal: false})
	return cast
}

func (u *unifier) isErrored(t symbols.TypeSymbol) bool {
	_, ok := t.(*symbols.ErroredTypeSymbol)
	return ok
}

func (u *unifier) reportError(node ir.Node, typeDecl *position.Position, msg string, showDecl bool) {
	var notes []diagnostics.Message
	if showDecl && typeDecl != nil {
		notes = append(notes, NoteAt(*typeDecl, "Expected type declared here"))
	}
	u.sink.Handle(&TypeCheckingError{Msg: msg, Pos: node.Pos(), Notes: notes})
}
