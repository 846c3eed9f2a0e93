package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrGenerationFailed", ErrGenerationFailed, ErrGenerationFailed},
		{"ErrEmptyPool", ErrEmptyPool, ErrEmptyPool},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrWrongPhase", ErrWrongPhase, ErrWrongPhase},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrIllegalPosition", ErrIllegalPosition, ErrIllegalPosition},
		{"ErrCancelled", ErrCancelled, ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies sentinels do not match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrGenerationFailed, ErrEmptyPool) {
		t.Error("ErrGenerationFailed should not match ErrEmptyPool")
	}
	if errors.Is(ErrWrongPhase, ErrGameOver) {
		t.Error("ErrWrongPhase should not match ErrGameOver")
	}
}

// TestRoundError_Error verifies the error message format
func TestRoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *RoundError
		contains []string
	}{
		{
			name: "full context",
			err: &RoundError{
				Err:        ErrGenerationFailed,
				Round:      7,
				GridSize:   5,
				PieceCount: 9,
			},
			contains: []string{"round 7", "5x5", "9 pieces", "generation failed"},
		},
		{
			name: "no round number",
			err: &RoundError{
				Err:        ErrEmptyPool,
				GridSize:   3,
				PieceCount: 2,
			},
			contains: []string{"3x3", "2 pieces", "pool is empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("RoundError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestRoundError_As verifies that errors.As works through extra wrapping
func TestRoundError_As(t *testing.T) {
	roundErr := &RoundError{Err: ErrGenerationFailed, Round: 3, GridSize: 4, PieceCount: 6}
	wrapped := fmt.Errorf("starting round: %w", roundErr)

	var extracted *RoundError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract RoundError")
	}
	if extracted.GridSize != 4 {
		t.Errorf("extracted.GridSize = %d, want 4", extracted.GridSize)
	}
	if !errors.Is(wrapped, ErrGenerationFailed) {
		t.Error("errors.Is(wrapped, ErrGenerationFailed) = false, want true")
	}
}

// TestConfigError_Error verifies ConfigError formatting
func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{
		Err:   ErrInvalidConfig,
		File:  "game.toml",
		Field: "progression.max_grid_size",
	}

	msg := err.Error()
	for _, s := range []string{"game.toml", "max_grid_size", "invalid configuration"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ConfigError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is(err, ErrInvalidConfig) = false, want true")
	}

	if got := (&ConfigError{}).Error(); got != "configuration error" {
		t.Errorf("empty ConfigError.Error() = %q", got)
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidNotation, "decoding row 3")

	if !errors.Is(wrapped, ErrInvalidNotation) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "decoding row 3") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalPosition, "king on square %d", 12)

	if !errors.Is(wrapped, ErrIllegalPosition) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "square 12") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// TestIsAs verifies the re-exported helpers behave like the standard library
func TestIsAs(t *testing.T) {
	err := Wrap(&ConfigError{Err: ErrInvalidConfig, Field: "timing"}, "loading")

	if !Is(err, ErrInvalidConfig) {
		t.Error("Is(err, ErrInvalidConfig) = false, want true")
	}
	var cfgErr *ConfigError
	if !As(err, &cfgErr) {
		t.Fatal("As() could not extract ConfigError")
	}
	if cfgErr.Field != "timing" {
		t.Errorf("cfgErr.Field = %q, want timing", cfgErr.Field)
	}
}
