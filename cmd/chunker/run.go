// run.go - The three modes: batch generation, session simulation and audit
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"github.com/lgbarn/chunker-go/internal/audit"
	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/config"
	"github.com/lgbarn/chunker-go/internal/errors"
	"github.com/lgbarn/chunker-go/internal/generator"
	"github.com/lgbarn/chunker-go/internal/hashing"
	"github.com/lgbarn/chunker-go/internal/matching"
	"github.com/lgbarn/chunker-go/internal/notation"
	"github.com/lgbarn/chunker-go/internal/output"
	"github.com/lgbarn/chunker-go/internal/progression"
	"github.com/lgbarn/chunker-go/internal/recall"
	"github.com/lgbarn/chunker-go/internal/worker"
)

// generateOptions holds the settings of a batch generation run.
type generateOptions struct {
	Grid    int
	Pieces  int
	Count   int
	Seed    int64
	Workers int

	JSON       bool
	Unicode    bool
	Diagram    bool
	LineLength int
	Summary    string // "", "yaml" or "json"

	Audit             bool
	Duplicates        bool
	ExactDuplicates   bool
	DuplicateCapacity int

	Material      string // Material pattern positions must match
	MaterialExact bool
}

// resolveSeed returns seed, or a time based seed when it is zero.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// runGenerate generates a batch of positions and writes them to w.
// It fails only when no position at all could be generated.
func runGenerate(ctx context.Context, w io.Writer, cfg *config.Config, logger *slog.Logger, opts generateOptions) error {
	if opts.Count < 1 {
		return fmt.Errorf("position count must be at least 1, got %d", opts.Count)
	}
	switch opts.Summary {
	case "", "yaml", "json":
	default:
		return fmt.Errorf("unknown summary format %q", opts.Summary)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := resolveSeed(opts.Seed)

	bc := worker.BatchConfig{
		Generation: &cfg.Generation,
		Logger:     logger,
		Audit:      opts.Audit,
	}
	if opts.Duplicates {
		bc.Detector = hashing.NewThreadSafeDuplicateDetector(opts.ExactDuplicates, opts.DuplicateCapacity)
	}

	logger.Info("generating positions",
		"count", opts.Count, "grid", opts.Grid, "pieces", opts.Pieces, "seed", seed, "workers", workers)
	items := worker.Items(opts.Count, chess.Grid(opts.Grid), opts.Pieces, seed)
	results := worker.Run(ctx, items, worker.GenerateFunc(bc), workers)
	summary := output.Summarize(results)
	if bc.Detector != nil {
		if counts := bc.Detector.Counts(); counts.Full {
			logger.Warn("duplicate table full, later positions were not recorded",
				"capacity", opts.DuplicateCapacity, "unique", counts.Unique)
		}
	}

	var pw output.PositionWriter
	var jw *output.JSONWriter
	if opts.JSON {
		jw = output.NewJSONWriter(w)
		pw = jw
	} else {
		pw = output.NewTextWriter(w, output.TextOptions{
			Unicode:       opts.Unicode,
			Diagram:       opts.Diagram,
			MaxLineLength: opts.LineLength,
		})
	}

	var matcher *matching.MaterialMatcher
	if opts.Material != "" {
		matcher = matching.NewMaterialMatcher(opts.Material, opts.MaterialExact)
	}
	for _, r := range results {
		if matcher != nil && r.Error == nil && !matcher.MatchPosition(r.Position) {
			continue
		}
		if err := pw.WritePosition(r); err != nil {
			return err
		}
	}
	if jw != nil && opts.Summary != "" {
		jw.SetSummary(summary)
	}
	if err := pw.Close(); err != nil {
		return err
	}

	if !opts.JSON {
		switch opts.Summary {
		case "yaml":
			if err := output.WriteSummaryYAML(w, summary); err != nil {
				return err
			}
		case "json":
			if err := output.WriteSummaryJSON(w, summary); err != nil {
				return err
			}
		}
	}

	logger.Info("generation finished",
		"generated", summary.Generated, "failed", summary.Failed,
		"duplicates", summary.Duplicates, "illegal", summary.Illegal)
	if summary.Generated == 0 {
		return results[0].Error
	}
	return nil
}

// simulateOptions holds the settings of a simulated session.
type simulateOptions struct {
	Rounds int
	Skill  float64
	Seed   int64
}

// runSimulate plays a session with a player who places each piece
// correctly with probability Skill, and writes one line per round. It
// stops between rounds once ctx is done.
func runSimulate(ctx context.Context, w io.Writer, cfg *config.Config, logger *slog.Logger, opts simulateOptions) error {
	if opts.Skill < 0 || opts.Skill > 1 {
		return fmt.Errorf("skill must be between 0 and 1, got %v", opts.Skill)
	}
	seed := resolveSeed(opts.Seed)
	gen, err := generator.New(&cfg.Generation, generator.WithSeed(seed), generator.WithLogger(logger))
	if err != nil {
		return err
	}
	session := progression.NewSession(cfg, gen, progression.WithSessionLogger(logger))
	player := rand.New(rand.NewSource(seed + 1)) //nolint:gosec // G404: simulation, not security

	for i := 0; i < opts.Rounds; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		round, err := session.Start()
		if err != nil {
			return err
		}
		if _, err := session.BeginRecall(); err != nil {
			return err
		}
		for _, p := range round.Position {
			piece := p.Piece
			if player.Float64() >= opts.Skill {
				piece = wrongPiece(piece)
			}
			_, verdict, err := session.Place(p.Square, piece)
			if err != nil {
				return err
			}
			if verdict != recall.Pending {
				break
			}
		}
		result, err := session.Finish()
		if err != nil {
			return err
		}

		next := result.Step.Next
		fmt.Fprintf(w, "round %d: %dx%d %d pieces %s, %d/%d correct, %s\n",
			round.Number, round.GridSize, round.GridSize, round.PieceCount,
			result.Outcome, result.Report.Correct, round.PieceCount, result.Step.Change)
		if result.Step.GameOver {
			fmt.Fprintf(w, "game over after %d rounds, largest grid %dx%d\n",
				round.Number, next.MaxGridSizeReached, next.MaxGridSizeReached)
			return nil
		}
	}

	state := session.State()
	fmt.Fprintf(w, "stopped after %d rounds at %dx%d with %d pieces\n",
		session.Round(), state.GridSize, state.GridSize, state.PieceCount)
	return nil
}

// wrongPiece returns a piece that is never p.
func wrongPiece(p chess.Piece) chess.Piece {
	if p.Is(chess.Queen) {
		return chess.MakePiece(p.Colour().Opposite(), chess.Queen)
	}
	return chess.MakePiece(p.Colour(), chess.Queen)
}

// runCheck decodes a placement string, draws it and audits it. It returns
// an error wrapping ErrIllegalPosition when the audit finds problems.
func runCheck(w io.Writer, placement string, unicode bool) error {
	pos, grid, err := notation.Decode(placement)
	if err != nil {
		return err
	}

	var violations []audit.Violation
	if grid == 8 {
		violations = audit.CrossCheck(pos)
	} else {
		violations = audit.Check(pos, grid)
	}

	fmt.Fprintf(w, "%dx%d %d pieces\n", grid, grid, len(pos))
	fmt.Fprint(w, notation.Render(pos, grid, unicode))
	if len(violations) == 0 {
		fmt.Fprintln(w, "ok")
		return nil
	}
	for _, v := range violations {
		fmt.Fprintf(w, "! %s\n", v)
	}
	return errors.Wrapf(errors.ErrIllegalPosition, "%d problem(s)", len(violations))
}
