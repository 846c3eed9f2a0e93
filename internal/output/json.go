package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chunker-go/internal/audit"
	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/notation"
	"github.com/lgbarn/chunker-go/internal/worker"
)

// JSONPosition represents a generated position in JSON format.
type JSONPosition struct {
	Index      int               `json:"index"`
	Grid       int               `json:"grid"`
	Requested  int               `json:"requested"`
	Placement  string            `json:"placement,omitempty"`
	FEN        string            `json:"fen,omitempty"`
	Pieces     chess.Position    `json:"pieces,omitempty"`
	Duplicate  bool              `json:"duplicate,omitempty"`
	Violations []audit.Violation `json:"violations,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
	Summary   *Summary        `json:"summary,omitempty"`
}

// PositionToJSON converts a worker result to JSON format.
func PositionToJSON(r worker.ProcessResult) *JSONPosition {
	jp := &JSONPosition{
		Index:     r.Index,
		Grid:      int(r.Grid),
		Requested: r.Stats.Requested,
	}
	if r.Error != nil {
		jp.Error = r.Error.Error()
		return jp
	}
	jp.Placement = notation.Encode(r.Position, r.Grid)
	if r.Grid == 8 {
		jp.FEN = notation.FEN(r.Position, chess.White)
	}
	jp.Pieces = r.Position
	jp.Duplicate = r.Duplicate
	jp.Violations = r.Violations
	return jp
}

// Summary aggregates a batch of results.
type Summary struct {
	Total              int `json:"total" yaml:"total"`
	Generated          int `json:"generated" yaml:"generated"`
	Failed             int `json:"failed" yaml:"failed"`
	Shortfalls         int `json:"shortfalls" yaml:"shortfalls"`
	Duplicates         int `json:"duplicates" yaml:"duplicates"`
	Illegal            int `json:"illegal" yaml:"illegal"`
	PiecesPlaced       int `json:"piecesPlaced" yaml:"pieces_placed"`
	PiecesSkipped      int `json:"piecesSkipped" yaml:"pieces_skipped"`
	RandomPlacements   int `json:"randomPlacements" yaml:"random_placements"`
	FallbackPlacements int `json:"fallbackPlacements" yaml:"fallback_placements"`
	KingBacktracks     int `json:"kingBacktracks" yaml:"king_backtracks"`
}

// Summarize aggregates results.
func Summarize(results []worker.ProcessResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Error != nil {
			s.Failed++
			continue
		}
		s.Generated++
		if r.Stats.Shortfall() > 0 {
			s.Shortfalls++
		}
		if r.Duplicate {
			s.Duplicates++
		}
		if len(r.Violations) > 0 {
			s.Illegal++
		}
		s.PiecesPlaced += r.Stats.Placed
		s.PiecesSkipped += r.Stats.Skipped
		s.RandomPlacements += r.Stats.RandomPlacements
		s.FallbackPlacements += r.Stats.FallbackPlacements
		s.KingBacktracks += r.Stats.KingBacktracks
	}
	return s
}

// WriteSummaryYAML writes a batch summary as YAML.
func WriteSummaryYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// WriteSummaryJSON writes a batch summary as indented JSON.
func WriteSummaryJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
