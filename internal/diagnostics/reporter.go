package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/aize-lang/aizec/internal/position"
)

// Reporter writes rendered messages to an io.Writer with scoped indentation,
// mirroring aize_common/aize_error.py's Reporter. Kept separate from Sink so
// tests can render a single message without going through accumulation.
type Reporter struct {
	w           io.Writer
	indentLevel int
	color       bool
}

// NewReporter wraps w. When w is an *os.File pointing at a terminal, the
// caret line of a positioned error is bolded — a cosmetic extension of the
// plain-text contract that costs nothing when piped to a file or buffer.
func NewReporter(w io.Writer) *Reporter {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Reporter{w: w, color: color}
}

// PositionedError renders a message anchored to a Position. For a
// TextPosition this is the "In <source>:"/"<Kind>: <msg>:"/gutter-line/caret
// block; for any other Position variant it collapses to two lines,
// "At <source>:" followed by "<Kind>: <msg>."
func (r *Reporter) PositionedError(kind, msg string, pos position.Position) {
	name := pos.SourceName()
	if tp, ok := pos.(position.TextPosition); ok {
		r.write(fmt.Sprintf("In %s:", name))
		r.write(fmt.Sprintf("%s: %s:", kind, msg))
		r.write(r.colorize(tp.InContext()))
	} else {
		r.write(fmt.Sprintf("At %s:", name))
		r.write(fmt.Sprintf("%s: %s.", kind, msg))
	}
}

// SourceError renders a message anchored to an entire source, with no
// position block.
func (r *Reporter) SourceError(kind, msg string, sourceName string) {
	r.write(fmt.Sprintf("For %s:", sourceName))
	r.write(fmt.Sprintf("%s: %s.", kind, msg))
}

// GeneralError renders a message with no positional context at all.
func (r *Reporter) GeneralError(kind, msg string) {
	r.write(fmt.Sprintf("%s: %s.", kind, msg))
}

// Indent returns a function that must be called to leave the indented scope;
// used as `defer r.Indent()()` around a note's Display call.
func (r *Reporter) Indent() func() {
	r.indentLevel++
	return func() { r.indentLevel-- }
}

func (r *Reporter) Separate() {
	fmt.Fprint(r.w, "\n")
}

func (r *Reporter) Flush() {
	if f, ok := r.w.(interface{ Sync() error }); ok {
		_ = f.Sync()
	}
}

func (r *Reporter) colorize(s string) string {
	if !r.color {
		return s
	}
	return "\x1b[1m" + s + "\x1b[0m"
}

func (r *Reporter) write(text string) {
	prefix := ""
	for i := 0; i < r.indentLevel; i++ {
		prefix += "    "
	}
	lines := splitLines(text)
	for _, line := range lines {
		fmt.Fprintf(r.w, "%s%s\n", prefix, line)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
