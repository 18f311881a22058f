package symbols

import (
	"testing"

	"github.com/aize-lang/aizec/internal/position"
)

func TestTable_Current_PanicsOutsideEnter(t *testing.T) {
	table := NewTable()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic calling Current outside any Enter")
		}
	}()
	table.Current()
}

func TestTable_EnterAndClose_NestsScopes(t *testing.T) {
	outer := NewNamespaceSymbol("outer", nil, position.NoPosition{})
	inner := NewNamespaceSymbol("inner", nil, position.NoPosition{})
	table := NewTable()

	closeOuter := table.Enter(outer)
	if table.Current() != outer {
		t.Fatal("expected Current to be the namespace just entered")
	}

	closeInner := table.Enter(inner)
	if table.Current() != inner {
		t.Fatal("expected Current to be the innermost entered namespace")
	}

	closeInner()
	if table.Current() != outer {
		t.Fatal("expected closing the inner scope to restore the outer one")
	}
	closeOuter()
}

func TestTable_DefineAndLookupValue_DelegatesToCurrent(t *testing.T) {
	ns := NewNamespaceSymbol("scope", nil, position.NoPosition{})
	table := NewTable()
	defer table.Enter(ns)()

	v := newVar("x")
	if err := table.DefineValue(v, "", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found, err := table.LookupValue("x", true, true)
	if err != nil || found != v {
		t.Fatalf("LookupValue = %v, %v, want %v, nil", found, err, v)
	}
}

func TestTable_DefineNamespace_AlwaysParents(t *testing.T) {
	root := NewNamespaceSymbol("root", nil, position.NoPosition{})
	table := NewTable()
	defer table.Enter(root)()

	child := NewNamespaceSymbol("child", nil, position.NoPosition{})
	if err := table.DefineNamespace(child, "", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if child.Namespace() != root {
		t.Fatal("expected Table.DefineNamespace to always bind the child as a parent-chain link")
	}
}
