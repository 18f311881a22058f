package symbols

// Table tracks the namespace a pass is currently visiting, as a stack so
// nested scopes (a function body inside a struct inside a source) can be
// entered and left in lockstep with the IR walk.
type Table struct {
	stack []*NamespaceSymbol
}

func NewTable() *Table {
	return &Table{}
}

// Enter pushes namespace and returns a closer to pop it, meant to be used
// with defer: `defer t.Enter(ns)()`.
func (t *Table) Enter(namespace *NamespaceSymbol) func() {
	t.stack = append(t.stack, namespace)
	return func() {
		t.stack = t.stack[:len(t.stack)-1]
	}
}

// Current returns the innermost entered namespace. It panics if called
// outside any Enter — there is always a pass bug behind that, never a
// recoverable condition.
func (t *Table) Current() *NamespaceSymbol {
	if len(t.stack) == 0 {
		panic("symbols: Current called outside any entered namespace")
	}
	return t.stack[len(t.stack)-1]
}

func (t *Table) LookupValue(name string, here, nearest bool) (*VariableSymbol, error) {
	return t.Current().LookupValue(name, here, nearest)
}

func (t *Table) LookupType(name string, here, nearest bool) (TypeSymbol, error) {
	return t.Current().LookupType(name, here, nearest)
}

func (t *Table) LookupNamespace(name string, here, nearest bool) (*NamespaceSymbol, error) {
	return t.Current().LookupNamespace(name, here, nearest)
}

func (t *Table) DefineValue(value *VariableSymbol, asName string, visible bool) error {
	return t.Current().DefineValue(value, asName, visible)
}

func (t *Table) DefineType(typ TypeSymbol, asName string, visible bool) error {
	return t.Current().DefineType(typ, asName, visible)
}

func (t *Table) DefineNamespace(child *NamespaceSymbol, asName string, visible bool) error {
	return t.Current().DefineNamespace(child, asName, visible, true)
}
