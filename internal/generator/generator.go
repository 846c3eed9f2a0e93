// Package generator builds random, rule-abiding piece arrangements for a
// round: both kings first, then weighted random pieces until the requested
// count is reached or the board refuses more.
package generator

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/config"
	"github.com/lgbarn/chunker-go/internal/errors"
)

// Stats describes the most recent Generate call.
type Stats struct {
	Requested          int // Piece count after clamping
	Placed             int // Pieces actually placed, kings included
	Skipped            int // Drawn pieces with no legal square
	RandomPlacements   int // Pieces placed by a random probe
	FallbackPlacements int // Pieces placed by the linear scan
	KingBacktracks     int // Times the king pair had to be re-seated
}

// Shortfall returns how many requested pieces were not placed.
func (s Stats) Shortfall() int {
	return s.Requested - s.Placed
}

// Generator produces positions. A Generator owns its random source and
// is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	cfg    config.GenerationConfig
	pool   []chess.Piece
	rng    *rand.Rand
	logger *slog.Logger
	stats  Stats
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // G404: game randomness, not security
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// New creates a Generator for the given configuration.
func New(cfg *config.GenerationConfig, opts ...Option) (*Generator, error) {
	if cfg == nil {
		cfg = config.NewGenerationConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    *cfg,
		pool:   buildPool(cfg.Weights),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // G404: game randomness
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}

	if len(g.pool) == 0 {
		return nil, errors.ErrEmptyPool
	}
	return g, nil
}

// Pool returns a copy of the weighted draw pool.
func (g *Generator) Pool() []chess.Piece {
	pool := make([]chess.Piece, len(g.pool))
	copy(pool, g.pool)
	return pool
}

// LastStats returns statistics for the most recent Generate call.
func (g *Generator) LastStats() Stats {
	return g.stats
}

// Generate builds a position with up to numPieces pieces on a grid×grid
// board. numPieces is clamped to [2, grid²] rather than rejected.
//
// Success only requires both kings; fewer pieces than requested is not an
// error and the length of the result is the authoritative count. When the
// kings cannot be placed Generate returns a nil Position and an error
// wrapping ErrGenerationFailed. The result is sorted by square.
func (g *Generator) Generate(grid chess.Grid, numPieces int) (chess.Position, error) {
	g.stats = Stats{}

	if numPieces < config.MinPieceCount {
		g.logger.Warn("piece count below minimum, clamping", "requested", numPieces, "min", config.MinPieceCount)
		numPieces = config.MinPieceCount
	}
	if grid > 0 && numPieces > grid.Cells() {
		g.logger.Warn("piece count exceeds grid, clamping", "requested", numPieces, "max", grid.Cells())
		numPieces = grid.Cells()
	}
	g.stats.Requested = numPieces

	if len(g.pool) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyPool, "cannot draw pieces")
	}
	if grid < 2 {
		g.logger.Error("grid too small for two kings", "grid", int(grid))
		return nil, errors.Wrapf(errors.ErrGenerationFailed, "no room for two kings on a %dx%d grid", grid, grid)
	}

	snap, ok := g.placeKings(grid)
	if !ok {
		g.logger.Error("could not place the kings", "grid", int(grid), "pieces", numPieces)
		return nil, errors.Wrapf(errors.ErrGenerationFailed, "no legal king pair on a %dx%d grid", grid, grid)
	}

	snap = g.fill(grid, snap, numPieces)

	g.stats.Placed = snap.Len()
	if snap.Len() < numPieces {
		g.logger.Warn("generated fewer pieces than requested",
			"grid", int(grid), "requested", numPieces, "placed", snap.Len(), "skipped", g.stats.Skipped)
	}
	g.logger.Debug("generated position",
		"grid", int(grid), "pieces", snap.Len(),
		"random", g.stats.RandomPlacements, "fallback", g.stats.FallbackPlacements)

	return snap.Position(), nil
}

// placeKings seats the white king and then the black king with the
// two-phase search. If the black king has nowhere to go the pair is
// re-seated by scanning white king squares in order, so the only failure
// is a grid with no legal pair at all.
func (g *Generator) placeKings(grid chess.Grid) (chess.Snapshot, bool) {
	var snap chess.Snapshot
	attempts := g.cfg.KingAttempts

	if white, ok := g.place(chess.WhiteKing, grid, snap, attempts); ok {
		withWhite := snap.With(chess.Placement{Square: white, Piece: chess.WhiteKing})
		if black, ok := g.place(chess.BlackKing, grid, withWhite, attempts); ok {
			return withWhite.With(chess.Placement{Square: black, Piece: chess.BlackKing}), true
		}
		g.logger.Warn("black king has no legal square, re-seating white king", "white_king", int(white))
	}

	g.stats.RandomPlacements = 0
	g.stats.FallbackPlacements = 0
	for sq := chess.Square(0); int(sq) < grid.Cells(); sq++ {
		if !legal(sq, chess.WhiteKing, grid, snap) {
			continue
		}
		g.stats.KingBacktracks++
		withWhite := snap.With(chess.Placement{Square: sq, Piece: chess.WhiteKing})
		if black, ok := scan(chess.BlackKing, grid, withWhite, 0); ok {
			g.stats.FallbackPlacements = 2
			return withWhite.With(chess.Placement{Square: black, Piece: chess.BlackKing}), true
		}
	}
	return snap, false
}

// fill draws weighted pieces until numPieces are on the board, the board
// is full, or too many draws have been skipped.
func (g *Generator) fill(grid chess.Grid, snap chess.Snapshot, numPieces int) chess.Snapshot {
	maxSkipped := g.cfg.MaxSkipped(numPieces)

	for snap.Len() < numPieces && snap.Len() < grid.Cells() {
		if g.stats.Skipped >= maxSkipped {
			g.logger.Warn("skip limit reached, stopping",
				"skipped", g.stats.Skipped, "max", maxSkipped, "placed", snap.Len())
			break
		}

		piece := g.pool[g.rng.Intn(len(g.pool))]
		sq, ok := g.place(piece, grid, snap, g.cfg.PieceAttempts)
		if !ok {
			g.stats.Skipped++
			g.logger.Warn("no legal square, skipping piece",
				"piece", piece.String(), "grid", int(grid), "target", numPieces)
			continue
		}
		snap = snap.With(chess.Placement{Square: sq, Piece: piece})
	}
	return snap
}
