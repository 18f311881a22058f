package analysis

import (
	"fmt"

	"github.com/aize-lang/aizec/internal/diagnostics"
	"github.com/aize-lang/aizec/internal/position"
	"github.com/aize-lang/aizec/internal/symbols"
)

// DefinitionNote annotates a DefinitionError with a secondary position, e.g.
// pointing back at an earlier conflicting declaration.
type DefinitionNote struct {
	Msg string
	Pos position.Position
}

func NoteAt(pos position.Position, msg string) DefinitionNote { return DefinitionNote{Msg: msg, Pos: pos} }

func (n DefinitionNote) Level() diagnostics.Level { return diagnostics.LevelNote }
func (n DefinitionNote) Display(r *diagnostics.Reporter) {
	r.PositionedError("Note", n.Msg, n.Pos)
}

// DefinitionError covers every name-resolution failure: undefined names,
// duplicate declarations, missing attributes and intrinsics.
type DefinitionError struct {
	Msg   string
	Pos   position.Position
	Notes []diagnostics.Message
}

func (e *DefinitionError) Level() diagnostics.Level { return diagnostics.LevelError }
func (e *DefinitionError) Display(r *diagnostics.Reporter) {
	r.PositionedError("Name Resolution Error", e.Msg, e.Pos)
	for _, note := range e.Notes {
		r.Separate()
		close := r.Indent()
		note.Display(r)
		close()
	}
}

func NameExisting(pos position.Position, existing symbols.Symbol) *DefinitionError {
	var notes []diagnostics.Message
	if existing != nil {
		notes = append(notes, NoteAt(existing.Position(), "Previously declared here"))
	}
	name := "<unknown>"
	if existing != nil {
		name = existing.Name()
	}
	return &DefinitionError{Msg: fmt.Sprintf("Name '%s' already declared in this scope", name), Pos: pos, Notes: notes}
}

func NameUndefined(pos position.Position, name string) *DefinitionError {
	return &DefinitionError{Msg: fmt.Sprintf("Name '%s' could not be found", name), Pos: pos}
}

func AttrNotFound(attrName, name string, accessor position.Position, aggType symbols.TypeSymbol) *DefinitionError {
	return &DefinitionError{Msg: fmt.Sprintf("%s '%s' not found on %s", attrName, name, aggType), Pos: accessor}
}

func AttrRepeated(attrName string, repeat, original position.Position, name string) *DefinitionError {
	note := NoteAt(original, "Previously declared here")
	return &DefinitionError{Msg: fmt.Sprintf("%s name '%s' repeated", attrName, name), Pos: repeat, Notes: []diagnostics.Message{note}}
}

func NoSuchIntrinsic(pos position.Position, name string) *DefinitionError {
	return &DefinitionError{Msg: fmt.Sprintf("No intrinsic with name '%s'", name), Pos: pos}
}

// TypeCheckingError covers unify failures, arity mismatches, and invalid
// assignment targets.
type TypeCheckingError struct {
	Msg   string
	Pos   position.Position
	Notes []diagnostics.Message
}

func (e *TypeCheckingError) Level() diagnostics.Level { return diagnostics.LevelError }
func (e *TypeCheckingError) Display(r *diagnostics.Reporter) {
	r.PositionedError("Type Checking Error", e.Msg, e.Pos)
	for _, note := range e.Notes {
		r.Separate()
		close := r.Indent()
		note.Display(r)
		close()
	}
}

func TooManyArguments(expected, got int, firstExcess position.Position) *TypeCheckingError {
	noun := "arguments"
	if expected == 1 {
		noun = "argument"
	}
	return &TypeCheckingError{Msg: fmt.Sprintf("Expected %d %s, but got %d extra", expected, noun, got-expected), Pos: firstExcess}
}

func TooFewArguments(expected, got int, call position.Position) *TypeCheckingError {
	noun := "arguments"
	if expected == 1 {
		noun = "argument"
	}
	return &TypeCheckingError{Msg: fmt.Sprintf("Expected %d %s, but got %d too few", expected, noun, expected-got), Pos: call}
}

func ExpectedType(expected, got symbols.TypeSymbol, where position.Position, declaration *position.Position) *TypeCheckingError {
	var notes []diagnostics.Message
	if declaration != nil {
		notes = append(notes, NoteAt(*declaration, "Expected type declared here"))
	}
	return &TypeCheckingError{Msg: fmt.Sprintf("Expected type %s, got type %s", expected, got), Pos: where, Notes: notes}
}

func ExpectedLVal(pos position.Position) *TypeCheckingError {
	return &TypeCheckingError{Msg: "Expected a place to store to, such as a variable or a field", Pos: pos}
}

// FlowError covers control-flow violations: currently just a function body
// that is not terminal.
type FlowError struct {
	Msg string
	Pos position.Position
}

func (e *FlowError) Level() diagnostics.Level { return diagnostics.LevelError }
func (e *FlowError) Display(r *diagnostics.Reporter) {
	r.PositionedError("Control Flow Error", e.Msg, e.Pos)
}

func NotAllPathsReturn(pos position.Position) *FlowError {
	return &FlowError{Msg: "Function ends without always terminating", Pos: pos}
}

// MalformedASTError reports an AST shape lowering could not make sense of
// in the position it appeared.
type MalformedASTError struct {
	Msg string
	Pos position.Position
}

func (e *MalformedASTError) Level() diagnostics.Level { return diagnostics.LevelError }
func (e *MalformedASTError) Display(r *diagnostics.Reporter) {
	r.PositionedError("AST Conversion Error", e.Msg, e.Pos)
}

func MalformedType(pos position.Position) *MalformedASTError {
	return &MalformedASTError{Msg: "Could not parse this as a type", Pos: pos}
}

func MalformedNamespace(pos position.Position) *MalformedASTError {
	return &MalformedASTError{Msg: "Could not parse this as a namespace", Pos: pos}
}
