// Package output provides text, JSON and YAML output of generated positions.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chunker-go/internal/notation"
	"github.com/lgbarn/chunker-go/internal/worker"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// TextOptions controls the text layout.
type TextOptions struct {
	Unicode       bool // Draw diagrams with chess glyphs
	Diagram       bool // Draw a diagram under each position
	MaxLineLength int  // Wrap the placement listing (0 = 80)
}

// OutputPosition writes one result as text: a header line, the placement
// string, the wrapped placement listing, an optional diagram, then any
// audit findings.
func OutputPosition(w io.Writer, r worker.ProcessResult, opts TextOptions) {
	if r.Error != nil {
		fmt.Fprintf(w, "#%d %dx%d: error: %v\n\n", r.Index+1, r.Grid, r.Grid, r.Error)
		return
	}

	fmt.Fprintf(w, "#%d %dx%d %d pieces", r.Index+1, r.Grid, r.Grid, len(r.Position))
	if r.Stats.Shortfall() > 0 {
		fmt.Fprintf(w, " (requested %d)", r.Stats.Requested)
	}
	if r.Duplicate {
		fmt.Fprint(w, " duplicate")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, notation.Encode(r.Position, r.Grid))

	ow := NewOutputWriter(w, opts.MaxLineLength)
	for _, p := range r.Position {
		ow.Write(p.String())
	}
	ow.NewLine()

	if opts.Diagram {
		fmt.Fprint(w, notation.Render(r.Position, r.Grid, opts.Unicode))
	}
	for _, v := range r.Violations {
		fmt.Fprintf(w, "! %s\n", v)
	}
	fmt.Fprintln(w)
}
