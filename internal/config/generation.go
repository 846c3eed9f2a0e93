package config

import "github.com/lgbarn/chunker-go/internal/chess"

// PieceWeights holds the relative draw frequency of each non-king kind.
// Kings are always placed first and carry no weight.
type PieceWeights struct {
	Pawn   int `toml:"pawn" yaml:"pawn" json:"pawn"`
	Knight int `toml:"knight" yaml:"knight" json:"knight"`
	Bishop int `toml:"bishop" yaml:"bishop" json:"bishop"`
	Rook   int `toml:"rook" yaml:"rook" json:"rook"`
	Queen  int `toml:"queen" yaml:"queen" json:"queen"`
}

// Weight returns the weight for kind; kings and unknown kinds weigh 0.
func (w PieceWeights) Weight(kind chess.Kind) int {
	switch kind {
	case chess.Pawn:
		return w.Pawn
	case chess.Knight:
		return w.Knight
	case chess.Bishop:
		return w.Bishop
	case chess.Rook:
		return w.Rook
	case chess.Queen:
		return w.Queen
	}
	return 0
}

// GenerationConfig holds settings for the position generator.
type GenerationConfig struct {
	// Weights controls how often each non-king kind is drawn
	Weights PieceWeights `toml:"weights" yaml:"weights" json:"weights"`

	// KingAttempts bounds the random probes for each king before the linear scan
	KingAttempts int `toml:"king_attempts" yaml:"king_attempts" json:"kingAttempts"`

	// PieceAttempts bounds the random probes for every other piece
	PieceAttempts int `toml:"piece_attempts" yaml:"piece_attempts" json:"pieceAttempts"`

	// MaxSkipPercent is the share of the requested count that may be skipped
	// before generation stops adding pieces
	MaxSkipPercent int `toml:"max_skip_percent" yaml:"max_skip_percent" json:"maxSkipPercent"`
}

// NewGenerationConfig creates a GenerationConfig with default values.
func NewGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		Weights: PieceWeights{
			Pawn:   8,
			Knight: 3,
			Bishop: 3,
			Rook:   4,
			Queen:  2,
		},
		KingAttempts:   400,
		PieceAttempts:  200,
		MaxSkipPercent: 30,
	}
}

// MaxSkipped returns how many drawn pieces may be skipped for a request
// of n pieces: ceil(n * MaxSkipPercent / 100), at least 1.
func (g *GenerationConfig) MaxSkipped(n int) int {
	skips := (n*g.MaxSkipPercent + 99) / 100
	if skips < 1 {
		return 1
	}
	return skips
}

// Validate checks that the generation configuration is valid.
func (g *GenerationConfig) Validate() error {
	for _, kind := range chess.Kinds {
		if g.Weights.Weight(kind) < 0 {
			return invalid("generation.weights."+kind.String(), "weight %d is negative", g.Weights.Weight(kind))
		}
	}
	if g.KingAttempts < 1 {
		return invalid("generation.king_attempts", "must be at least 1, got %d", g.KingAttempts)
	}
	if g.PieceAttempts < 1 {
		return invalid("generation.piece_attempts", "must be at least 1, got %d", g.PieceAttempts)
	}
	if !inRange(g.MaxSkipPercent, 0, 100) {
		return invalid("generation.max_skip_percent", "must be within [0, 100], got %d", g.MaxSkipPercent)
	}
	return nil
}
