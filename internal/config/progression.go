package config

// ProgressionConfig holds the round progression thresholds.
type ProgressionConfig struct {
	// StartGridSize and StartPieceCount are the absolute initial values a
	// new session begins with
	StartGridSize   int `toml:"start_grid_size" yaml:"start_grid_size" json:"startGridSize"`
	StartPieceCount int `toml:"start_piece_count" yaml:"start_piece_count" json:"startPieceCount"`

	// MinGridSize is the floor regression never goes below
	MinGridSize int `toml:"min_grid_size" yaml:"min_grid_size" json:"minGridSize"`

	// MaxGridSize is the ceiling progression never exceeds
	MaxGridSize int `toml:"max_grid_size" yaml:"max_grid_size" json:"maxGridSize"`

	// MaxIncorrectAttempts is the number of consecutive failures that ends the session
	MaxIncorrectAttempts int `toml:"max_incorrect_attempts" yaml:"max_incorrect_attempts" json:"maxIncorrectAttempts"`
}

// MinPieceCount is the smallest piece count of any round: the two kings.
const MinPieceCount = 2

// NewProgressionConfig creates a ProgressionConfig with default values.
func NewProgressionConfig() *ProgressionConfig {
	return &ProgressionConfig{
		StartGridSize:        3,
		StartPieceCount:      MinPieceCount,
		MinGridSize:          3,
		MaxGridSize:          8,
		MaxIncorrectAttempts: 3,
	}
}

// Validate checks that the progression configuration is valid.
func (p *ProgressionConfig) Validate() error {
	if p.MinGridSize < 3 {
		return invalid("progression.min_grid_size", "must be at least 3, got %d", p.MinGridSize)
	}
	if p.MaxGridSize < p.MinGridSize {
		return invalid("progression.max_grid_size", "max grid size (%d) < min grid size (%d)", p.MaxGridSize, p.MinGridSize)
	}
	if !inRange(p.StartGridSize, p.MinGridSize, p.MaxGridSize) {
		return invalid("progression.start_grid_size", "must be within [%d, %d], got %d", p.MinGridSize, p.MaxGridSize, p.StartGridSize)
	}
	if !inRange(p.StartPieceCount, MinPieceCount, p.StartGridSize*p.StartGridSize) {
		return invalid("progression.start_piece_count", "must be within [%d, %d], got %d",
			MinPieceCount, p.StartGridSize*p.StartGridSize, p.StartPieceCount)
	}
	if p.MaxIncorrectAttempts < 1 {
		return invalid("progression.max_incorrect_attempts", "must be at least 1, got %d", p.MaxIncorrectAttempts)
	}
	return nil
}
