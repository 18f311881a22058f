// Package position models where a piece of syntax came from: the abstract
// text origin (Source) and the span within it (Position).
package position

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Source is an abstract text origin. Two sources are the same compilation
// unit iff their Unique keys compare equal; the import tracer uses this to
// avoid parsing a file twice.
type Source interface {
	Unique() any
	Name() string
	Path() (string, bool)
	Line(n int) (string, error)
	AddLine(line string)
}

type baseSource struct {
	lines []string
}

func (b *baseSource) AddLine(line string) {
	b.lines = append(b.lines, line)
}

// Line returns the 1-indexed line of text. It mirrors aizec's Source.get_line,
// which is 0-indexed internally; callers here pass the 1-indexed line number
// used throughout Position.
func (b *baseSource) Line(n int) (string, error) {
	idx := n - 1
	if idx < 0 || idx >= len(b.lines) {
		return "", fmt.Errorf("position: line %d out of range (source has %d lines)", n, len(b.lines))
	}
	return b.lines[idx], nil
}

// FileSource is a Source backed by a filesystem path. Its Unique key is the
// path, so re-importing the same file resolves to the same Source.
type FileSource struct {
	baseSource
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Unique() any          { return f.path }
func (f *FileSource) Name() string         { return f.path }
func (f *FileSource) Path() (string, bool) { return f.path, true }

// StreamSource is a Source with no filesystem path, such as a REPL buffer or
// a generated stub. It has no stable path to key on, so it is stamped with a
// UUID on construction.
type StreamSource struct {
	baseSource
	name string
	id   uuid.UUID
}

func NewStreamSource(name string) *StreamSource {
	return &StreamSource{name: name, id: uuid.New()}
}

func (s *StreamSource) Unique() any          { return s.id }
func (s *StreamSource) Name() string         { return s.name }
func (s *StreamSource) Path() (string, bool) { return "", false }

// ReadAllLines drains r line-by-line into src. Lexing is out of scope; this
// only exists so tests and the import tracer can populate a Source's line
// buffer from real file content.
func ReadAllLines(src Source, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		src.AddLine(scanner.Text())
	}
	return scanner.Err()
}
