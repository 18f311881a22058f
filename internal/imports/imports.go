// Package imports implements the external-collaborator contract: turning an
// Import node's raw path into (a) a validated identifier to bind it under
// and (b) the resolved namespace of the source it names. Anchor resolution
// for std/project-relative paths is the responsibility of whatever
// assembles the Program (outside this module's scope — an external module
// loader); this package only handles matching an import against the set of
// sources actually compiled together and naming the result.
package imports

import (
	"path"
	"strings"
	"unicode"

	"github.com/aize-lang/aizec/internal/diagnostics"
	"github.com/aize-lang/aizec/internal/position"
	"github.com/aize-lang/aizec/internal/symbols"
)

// MissingSourceError reports an Import whose path does not match any
// compiled source.
type MissingSourceError struct {
	Pos  position.Position
	Path string
}

func (e *MissingSourceError) Level() diagnostics.Level { return diagnostics.LevelError }
func (e *MissingSourceError) Display(r *diagnostics.Reporter) {
	r.PositionedError("Import Error", "Could not find a compiled source for '"+e.Path+"'", e.Pos)
}

// SelfImportError reports a source importing its own path.
type SelfImportError struct {
	Pos  position.Position
	Path string
}

func (e *SelfImportError) Level() diagnostics.Level { return diagnostics.LevelError }
func (e *SelfImportError) Display(r *diagnostics.Reporter) {
	r.PositionedError("Import Error", "A source cannot import itself ('"+e.Path+"')", e.Pos)
}

// InvalidNameError reports an import path that doesn't produce a usable Go
// identifier after the fixups IdentifierName applies.
type InvalidNameError struct {
	Pos  position.Position
	Path string
}

func (e *InvalidNameError) Level() diagnostics.Level { return diagnostics.LevelError }
func (e *InvalidNameError) Display(r *diagnostics.Reporter) {
	r.PositionedError("Import Error", "Path '"+e.Path+"' does not produce a valid identifier to import as", e.Pos)
}

// IdentifierName derives the identifier an import is bound under: the file
// name without its extension, spaces folded to underscores.
func IdentifierName(importPath string) (string, bool) {
	base := path.Base(importPath)
	base = strings.TrimSuffix(base, path.Ext(base))
	name := strings.ReplaceAll(base, " ", "_")
	if !isIdentifier(name) {
		return "", false
	}
	return name, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// Resolve looks up importPath's namespace among the sources compiled
// together (keyed by their own path, as seen in ir.Source.Path), rejecting
// a source importing itself.
func Resolve(sourceNamespaces map[string]*symbols.NamespaceSymbol, ownPath, importPath string, pos position.Position) (*symbols.NamespaceSymbol, string, diagnostics.Message) {
	if importPath == ownPath {
		return nil, "", &SelfImportError{Pos: pos, Path: importPath}
	}
	ns, ok := sourceNamespaces[importPath]
	if !ok {
		return nil, "", &MissingSourceError{Pos: pos, Path: importPath}
	}
	name, ok := IdentifierName(importPath)
	if !ok {
		return nil, "", &InvalidNameError{Pos: pos, Path: importPath}
	}
	return ns, name, nil
}
