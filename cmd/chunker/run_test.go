package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/config"
	"github.com/lgbarn/chunker-go/internal/errors"
	"github.com/lgbarn/chunker-go/internal/notation"
	"github.com/lgbarn/chunker-go/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func baseOptions() generateOptions {
	return generateOptions{
		Grid:    5,
		Pieces:  6,
		Count:   4,
		Seed:    42,
		Workers: 2,
		Diagram: true,
	}
}

// ---------------------------------------------------------------------------
// runGenerate
// ---------------------------------------------------------------------------

func TestRunGenerateText(t *testing.T) {
	var buf bytes.Buffer
	if err := runGenerate(context.Background(), &buf, config.NewConfig(), quietLogger(), baseOptions()); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"#1 5x5", "#4 5x5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "#5 ") {
		t.Errorf("output has more than 4 positions:\n%s", out)
	}
}

func TestRunGenerateDeterministic(t *testing.T) {
	render := func(workers int) string {
		opts := baseOptions()
		opts.Workers = workers
		opts.Count = 12
		var buf bytes.Buffer
		if err := runGenerate(context.Background(), &buf, config.NewConfig(), quietLogger(), opts); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		return buf.String()
	}

	testutil.AssertEqual(t, render(4), render(1))
}

func TestRunGenerateJSONWithSummary(t *testing.T) {
	opts := baseOptions()
	opts.JSON = true
	opts.Summary = "yaml"
	opts.Duplicates = true

	var buf bytes.Buffer
	if err := runGenerate(context.Background(), &buf, config.NewConfig(), quietLogger(), opts); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	var out struct {
		Positions []struct {
			Placement string `json:"placement"`
		} `json:"positions"`
		Summary struct {
			Total     int `json:"total"`
			Generated int `json:"generated"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Positions) != 4 {
		t.Errorf("positions = %d; want 4", len(out.Positions))
	}
	if out.Summary.Total != 4 || out.Summary.Generated != 4 {
		t.Errorf("summary = %+v; want 4 of 4 generated", out.Summary)
	}
	for _, p := range out.Positions {
		if _, grid, err := notation.Decode(p.Placement); err != nil || grid != 5 {
			t.Errorf("placement %q decodes to grid %d, error %v", p.Placement, grid, err)
		}
	}
}

func TestRunGenerateTextSummary(t *testing.T) {
	opts := baseOptions()
	opts.Summary = "yaml"
	var buf bytes.Buffer
	if err := runGenerate(context.Background(), &buf, config.NewConfig(), quietLogger(), opts); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	if !strings.Contains(buf.String(), "generated: 4") {
		t.Errorf("output missing YAML summary:\n%s", buf.String())
	}
}

func TestRunGenerateAudit(t *testing.T) {
	opts := baseOptions()
	opts.Grid = 8
	opts.Pieces = 14
	opts.Count = 10
	opts.Audit = true

	var buf bytes.Buffer
	if err := runGenerate(context.Background(), &buf, config.NewConfig(), quietLogger(), opts); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	if strings.Contains(buf.String(), "\n! ") {
		t.Errorf("audit reported problems:\n%s", buf.String())
	}
}

func TestRunGenerateMaterialFilter(t *testing.T) {
	opts := baseOptions()
	opts.Grid = 3
	opts.Pieces = 2
	opts.Count = 5
	opts.Diagram = false

	var buf bytes.Buffer
	opts.Material = "K:k"
	opts.MaterialExact = true
	if err := runGenerate(context.Background(), &buf, config.NewConfig(), quietLogger(), opts); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	if got := strings.Count(buf.String(), " 2 pieces"); got != 5 {
		t.Errorf("kings-only filter kept %d positions; want 5", got)
	}

	buf.Reset()
	opts.Material = "Q"
	opts.MaterialExact = false
	if err := runGenerate(context.Background(), &buf, config.NewConfig(), quietLogger(), opts); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("queen filter kept kings-only positions:\n%s", buf.String())
	}
}

func TestRunGenerateFailure(t *testing.T) {
	opts := baseOptions()
	opts.Grid = 1

	var buf bytes.Buffer
	err := runGenerate(context.Background(), &buf, config.NewConfig(), quietLogger(), opts)
	if !errors.Is(err, errors.ErrGenerationFailed) {
		t.Fatalf("runGenerate() error = %v; want ErrGenerationFailed", err)
	}
	if !strings.Contains(buf.String(), "error:") {
		t.Errorf("failed positions not reported:\n%s", buf.String())
	}
}

func TestRunGenerateBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*generateOptions)
	}{
		{"zero count", func(o *generateOptions) { o.Count = 0 }},
		{"unknown summary", func(o *generateOptions) { o.Summary = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions()
			tt.modify(&opts)
			if err := runGenerate(context.Background(), io.Discard, config.NewConfig(), quietLogger(), opts); err == nil {
				t.Error("runGenerate() error = nil; want error")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// runSimulate
// ---------------------------------------------------------------------------

func TestRunSimulatePerfectPlayer(t *testing.T) {
	var buf bytes.Buffer
	opts := simulateOptions{Rounds: 6, Skill: 1, Seed: 3}
	if err := runSimulate(context.Background(), &buf, config.NewConfig(), quietLogger(), opts); err != nil {
		t.Fatalf("runSimulate() error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "failure") {
		t.Errorf("perfect player failed a round:\n%s", out)
	}
	if !strings.Contains(out, "round 1: 3x3 2 pieces success") {
		t.Errorf("output missing first round:\n%s", out)
	}
	if !strings.Contains(out, "stopped after 6 rounds") {
		t.Errorf("output missing final line:\n%s", out)
	}
}

func TestRunSimulateHopelessPlayer(t *testing.T) {
	var buf bytes.Buffer
	opts := simulateOptions{Rounds: 10, Skill: 0, Seed: 3}
	if err := runSimulate(context.Background(), &buf, config.NewConfig(), quietLogger(), opts); err != nil {
		t.Fatalf("runSimulate() error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "success") {
		t.Errorf("hopeless player succeeded:\n%s", out)
	}
	if !strings.Contains(out, "game over after 3 rounds, largest grid 3x3") {
		t.Errorf("output missing game over:\n%s", out)
	}
}

func TestRunSimulateBadSkill(t *testing.T) {
	err := runSimulate(context.Background(), io.Discard, config.NewConfig(), quietLogger(), simulateOptions{Rounds: 1, Skill: 1.5, Seed: 1})
	if err == nil {
		t.Error("runSimulate() error = nil; want error")
	}
}

func TestRunSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runSimulate(ctx, io.Discard, config.NewConfig(), quietLogger(), simulateOptions{Rounds: 3, Skill: 1, Seed: 1})
	if err != context.Canceled {
		t.Errorf("runSimulate() error = %v; want context.Canceled", err)
	}
}

func TestWrongPiece(t *testing.T) {
	for _, kind := range chess.Kinds {
		for _, p := range []chess.Piece{chess.W(kind), chess.B(kind)} {
			if got := wrongPiece(p); got == p || !got.Valid() {
				t.Errorf("wrongPiece(%v) = %v", p, got)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// runCheck
// ---------------------------------------------------------------------------

func TestRunCheck(t *testing.T) {
	middlegame := notation.Encode(testutil.MustPosition(t, testutil.Middlegame8), 8)

	tests := []struct {
		name      string
		placement string
		wantErr   error
		wantOut   string
	}{
		{name: "legal 3x3", placement: "K2/3/2k", wantOut: "ok"},
		{name: "legal 8x8", placement: middlegame, wantOut: "ok"},
		{name: "full FEN", placement: middlegame + " w - - 0 1", wantOut: "ok"},
		{name: "adjacent kings", placement: "Kk1/3/3", wantErr: errors.ErrIllegalPosition, wantOut: "! "},
		{name: "bad notation", placement: "K2/3", wantErr: errors.ErrInvalidNotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runCheck(&buf, tt.placement, false)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("runCheck(%q) error = %v", tt.placement, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("runCheck(%q) error = %v; want %v", tt.placement, err, tt.wantErr)
			}
			if !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, buf.String())
			}
		})
	}
}
