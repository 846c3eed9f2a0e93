// Package errors provides sentinel errors and error types for the chunker game engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrGenerationFailed indicates a king could not be placed, so no position exists.
	ErrGenerationFailed = errors.New("position generation failed")

	// ErrEmptyPool indicates the weighted draw pool holds no pieces.
	ErrEmptyPool = errors.New("weighted piece pool is empty")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrWrongPhase indicates a round transition requested in the wrong phase.
	ErrWrongPhase = errors.New("wrong round phase")

	// ErrGameOver indicates the session has ended and must be restarted.
	ErrGameOver = errors.New("game over")

	// ErrInvalidNotation indicates a malformed placement string.
	ErrInvalidNotation = errors.New("invalid placement notation")

	// ErrIllegalPosition indicates a position that breaks a placement rule.
	ErrIllegalPosition = errors.New("illegal position")

	// ErrCancelled indicates batch work abandoned before it ran.
	ErrCancelled = errors.New("generation cancelled")
)

// RoundError wraps errors with round context: the round number and the
// parameters the round was attempted with.
type RoundError struct {
	Err        error // The underlying error
	Round      int   // 1-based round number in the session (0 if unknown)
	GridSize   int   // Grid size requested for the round
	PieceCount int   // Piece count requested for the round
}

// Error returns a formatted error message including all available context.
func (e *RoundError) Error() string {
	var parts []string

	if e.Round > 0 {
		parts = append(parts, fmt.Sprintf("round %d", e.Round))
	}
	parts = append(parts, fmt.Sprintf("%dx%d grid", e.GridSize, e.GridSize))
	parts = append(parts, fmt.Sprintf("%d pieces", e.PieceCount))

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the RoundError wrapper.
func (e *RoundError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration problem with file and field context.
type ConfigError struct {
	Err   error  // The underlying error
	File  string // Source file name (if loaded from a file)
	Field string // Offending field name (if known)
}

// Error returns a formatted error message with location and context.
func (e *ConfigError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "configuration error"
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
