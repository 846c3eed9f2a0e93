package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chunker-go/internal/worker"
)

// PositionWriter is the interface for writing generated positions.
// Different implementations handle different output formats (text, JSON).
type PositionWriter interface {
	// WritePosition writes a single result to the output.
	WritePosition(r worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes positions as text.
type TextWriter struct {
	w    io.Writer
	opts TextOptions
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts TextOptions) *TextWriter {
	return &TextWriter{
		w:    w,
		opts: opts,
	}
}

// WritePosition writes a position as text.
func (tw *TextWriter) WritePosition(r worker.ProcessResult) error {
	OutputPosition(tw.w, r, tw.opts)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
	summary   *Summary
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// SetSummary attaches a batch summary to the next Flush.
func (jw *JSONWriter) SetSummary(s Summary) {
	jw.summary = &s
}

// WritePosition buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(r worker.ProcessResult) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(PositionToJSON(r))
	}

	jw.positions = append(jw.positions, PositionToJSON(r))
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.positions) == 0 && jw.summary == nil) {
		return nil
	}

	out := &JSONOutput{
		Positions: jw.positions,
		Summary:   jw.summary,
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	// Clear buffer after writing
	jw.positions = jw.positions[:0]
	jw.summary = nil

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
