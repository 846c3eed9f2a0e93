package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWeights sets the non-king piece weights.
func (b *ConfigBuilder) WithWeights(w PieceWeights) *ConfigBuilder {
	b.cfg.Generation.Weights = w
	return b
}

// WithAttempts sets the random probe bounds for kings and other pieces.
func (b *ConfigBuilder) WithAttempts(king, piece int) *ConfigBuilder {
	b.cfg.Generation.KingAttempts = king
	b.cfg.Generation.PieceAttempts = piece
	return b
}

// WithMaxSkipPercent sets the skip cap as a percentage of the requested count.
func (b *ConfigBuilder) WithMaxSkipPercent(percent int) *ConfigBuilder {
	b.cfg.Generation.MaxSkipPercent = percent
	return b
}

// WithStart sets the absolute initial grid size and piece count.
func (b *ConfigBuilder) WithStart(gridSize, pieceCount int) *ConfigBuilder {
	b.cfg.Progression.StartGridSize = gridSize
	b.cfg.Progression.StartPieceCount = pieceCount
	return b
}

// WithGridBounds sets the minimum and maximum grid size.
func (b *ConfigBuilder) WithGridBounds(minSize, maxSize int) *ConfigBuilder {
	b.cfg.Progression.MinGridSize = minSize
	b.cfg.Progression.MaxGridSize = maxSize
	return b
}

// WithMaxIncorrectAttempts sets the consecutive failure limit.
func (b *ConfigBuilder) WithMaxIncorrectAttempts(n int) *ConfigBuilder {
	b.cfg.Progression.MaxIncorrectAttempts = n
	return b
}

// WithTiming replaces the timing table.
func (b *ConfigBuilder) WithTiming(t TimingConfig) *ConfigBuilder {
	b.cfg.Timing = t
	return b
}
