package worker

import (
	"context"
	"log/slog"

	"github.com/lgbarn/chunker-go/internal/audit"
	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/config"
	"github.com/lgbarn/chunker-go/internal/errors"
	"github.com/lgbarn/chunker-go/internal/generator"
	"github.com/lgbarn/chunker-go/internal/hashing"
)

// BatchConfig controls what GenerateFunc does with each item.
type BatchConfig struct {
	Generation *config.GenerationConfig
	Logger     *slog.Logger

	// Audit re-verifies each position; 8×8 positions are also checked
	// against the chess libraries.
	Audit bool

	// Detector, when set, flags positions already produced by the batch.
	Detector *hashing.ThreadSafeDuplicateDetector
}

// Items returns n work items for the same board, seeded seed, seed+1, ...
func Items(n int, grid chess.Grid, pieces int, seed int64) []WorkItem {
	items := make([]WorkItem, n)
	for i := range items {
		items[i] = WorkItem{Index: i, Grid: grid, Pieces: pieces, Seed: seed + int64(i)}
	}
	return items
}

// GenerateFunc returns a ProcessFunc that builds a fresh generator for
// each item, so workers never share a random source and the result of an
// item depends only on its seed.
func GenerateFunc(bc BatchConfig) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Grid: item.Grid}

		gen, err := generator.New(bc.Generation, generator.WithSeed(item.Seed), generator.WithLogger(bc.Logger))
		if err != nil {
			result.Error = err
			return result
		}

		pos, err := gen.Generate(item.Grid, item.Pieces)
		result.Stats = gen.LastStats()
		if err != nil {
			result.Error = errors.Wrapf(err, "item %d (seed %d)", item.Index, item.Seed)
			return result
		}
		result.Position = pos

		if bc.Audit {
			if item.Grid == 8 {
				result.Violations = audit.CrossCheck(pos)
			} else {
				result.Violations = audit.Check(pos, item.Grid)
			}
		}
		if bc.Detector != nil {
			result.Duplicate = bc.Detector.CheckAndAdd(pos, item.Grid)
		}
		return result
	}
}

// Run processes items on a pool of workers and returns the results in
// item order. Item indices must be 0..len(items)-1. Items not processed
// before ctx is done carry ErrCancelled.
func Run(ctx context.Context, items []WorkItem, process ProcessFunc, workers int) []ProcessResult {
	pool := NewPool(process, WithWorkers(workers), WithBufferSize(workers*2))
	pool.Start(ctx)

	results := make([]ProcessResult, len(items))
	go func() {
		defer pool.Close()
		for i, item := range items {
			if err := pool.Submit(ctx, item); err != nil {
				for _, rest := range items[i:] {
					results[rest.Index] = cancelled(rest)
				}
				return
			}
		}
	}()

	for r := range pool.Results() {
		results[r.Index] = r
	}
	return results
}
