package config

import "time"

// TimingConfig holds the pacing factors, in milliseconds, that the
// presentation layer uses to schedule its timers.
type TimingConfig struct {
	MemorizeFactorMS int `toml:"memorize_factor_ms" yaml:"memorize_factor_ms" json:"memorizeFactorMs"`
	RecallFactorMS   int `toml:"recall_factor_ms" yaml:"recall_factor_ms" json:"recallFactorMs"`
	MinMemorizeMS    int `toml:"min_memorize_ms" yaml:"min_memorize_ms" json:"minMemorizeMs"`
	MinRecallMS      int `toml:"min_recall_ms" yaml:"min_recall_ms" json:"minRecallMs"`
	FeedbackDelayMS  int `toml:"feedback_delay_ms" yaml:"feedback_delay_ms" json:"feedbackDelayMs"`
	NextRoundDelayMS int `toml:"next_round_delay_ms" yaml:"next_round_delay_ms" json:"nextRoundDelayMs"`
}

// NewTimingConfig creates a TimingConfig with default values.
func NewTimingConfig() *TimingConfig {
	return &TimingConfig{
		MemorizeFactorMS: 1500,
		RecallFactorMS:   2000,
		MinMemorizeMS:    5000,
		MinRecallMS:      5000,
		FeedbackDelayMS:  500,
		NextRoundDelayMS: 2000,
	}
}

// MemorizeDuration returns how long a position of the given size is shown,
// rounded up to whole seconds.
func (t *TimingConfig) MemorizeDuration(pieces int) time.Duration {
	return scaled(pieces, t.MemorizeFactorMS, t.MinMemorizeMS)
}

// RecallDuration returns how long the player has to rebuild a position.
func (t *TimingConfig) RecallDuration(pieces int) time.Duration {
	return scaled(pieces, t.RecallFactorMS, t.MinRecallMS)
}

// FeedbackDelay returns the pause after an attempt concludes.
func (t *TimingConfig) FeedbackDelay() time.Duration {
	return time.Duration(t.FeedbackDelayMS) * time.Millisecond
}

// NextRoundDelay returns the pause before the next round starts.
func (t *TimingConfig) NextRoundDelay() time.Duration {
	return time.Duration(t.NextRoundDelayMS) * time.Millisecond
}

func scaled(pieces, factorMS, minMS int) time.Duration {
	secs := (pieces*factorMS + 999) / 1000
	minSecs := minMS / 1000
	if secs < minSecs {
		secs = minSecs
	}
	return time.Duration(secs) * time.Second
}

// Validate checks that the timing configuration is valid.
func (t *TimingConfig) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"timing.memorize_factor_ms", t.MemorizeFactorMS},
		{"timing.recall_factor_ms", t.RecallFactorMS},
		{"timing.min_memorize_ms", t.MinMemorizeMS},
		{"timing.min_recall_ms", t.MinRecallMS},
		{"timing.feedback_delay_ms", t.FeedbackDelayMS},
		{"timing.next_round_delay_ms", t.NextRoundDelayMS},
	}
	for _, f := range fields {
		if f.value < 0 {
			return invalid(f.name, "must not be negative, got %d", f.value)
		}
	}
	return nil
}
