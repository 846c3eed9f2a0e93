// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lgbarn/chunker-go/internal/config"
)

var (
	// Generation options
	gridSize   = flag.Int("grid", 8, "Board size N for an NxN grid")
	numPieces  = flag.Int("pieces", 8, "Pieces per position, kings included")
	count      = flag.Int("n", 1, "Number of positions to generate")
	seed       = flag.Int64("seed", 0, "Random seed (0 = time based)")
	numWorkers = flag.Int("workers", 0, "Number of parallel workers (0 = number of CPUs)")

	// Generation tuning, overriding the config file
	kingAttempts  = flag.Int("kingattempts", 0, "Random probes per king before scanning (0 = config value)")
	pieceAttempts = flag.Int("pieceattempts", 0, "Random probes per piece before scanning (0 = config value)")
	skipPercent   = flag.Int("skip", -1, "Skip cap as a percentage of the requested pieces (-1 = config value)")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("J", false, "Output in JSON format")
	unicode     = flag.Bool("unicode", false, "Draw diagrams with chess glyphs")
	noDiagram   = flag.Bool("nodiagram", false, "Don't draw a diagram under each position")
	lineLength  = flag.Int("w", 80, "Maximum line length of the placement listing")
	summaryFmt  = flag.String("summary", "", "Append a batch summary: yaml or json")
	auditOutput = flag.Bool("audit", false, "Re-verify each position; 8x8 positions are also checked with chess libraries")

	// Duplicate detection
	reportDuplicates  = flag.Bool("D", false, "Report positions already produced by the batch")
	exactDuplicates   = flag.Bool("exact", false, "Compare full placements, not only hashes, when detecting duplicates")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Material filtering
	materialMatch      = flag.String("z", "", "Only output positions with at least this material (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Only output positions with exactly this material")

	// Modes
	simulate       = flag.Int("simulate", 0, "Play a session of up to R rounds with a simulated player")
	skill          = flag.Float64("skill", 0.9, "Chance that the simulated player places a piece correctly")
	checkPlacement = flag.String("check", "", "Audit a placement string, e.g. \"K2/3/2k\"")

	// General
	configFile = flag.String("config", "", "Configuration file (.toml, .yaml or .yml)")
	logLevel   = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	version    = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("h", false, "Show help")
)

// loadConfig builds the configuration from the config file, if any, then
// applies flag overrides and validates the result.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags applies generation tuning flags to the configuration.
func applyFlags(cfg *config.Config) {
	if *kingAttempts > 0 {
		cfg.Generation.KingAttempts = *kingAttempts
	}
	if *pieceAttempts > 0 {
		cfg.Generation.PieceAttempts = *pieceAttempts
	}
	if *skipPercent >= 0 {
		cfg.Generation.MaxSkipPercent = *skipPercent
	}
}

// generateOptionsFromFlags collects the batch generation flags.
func generateOptionsFromFlags() generateOptions {
	material, exact := *materialMatch, false
	if *materialMatchExact != "" {
		material, exact = *materialMatchExact, true
	}
	return generateOptions{
		Grid:              *gridSize,
		Pieces:            *numPieces,
		Count:             *count,
		Seed:              *seed,
		Workers:           *numWorkers,
		JSON:              *jsonOutput,
		Unicode:           *unicode,
		Diagram:           !*noDiagram,
		LineLength:        *lineLength,
		Summary:           strings.ToLower(*summaryFmt),
		Audit:             *auditOutput,
		Duplicates:        *reportDuplicates || *exactDuplicates,
		ExactDuplicates:   *exactDuplicates,
		DuplicateCapacity: *duplicateCapacity,
		Material:          material,
		MaterialExact:     exact,
	}
}

// newLogger returns a text logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
