// Package progression decides the grid size and piece count of each round
// from the outcomes of earlier rounds, and drives a session through its
// phases.
package progression

import (
	"golang.org/x/exp/constraints"

	"github.com/lgbarn/chunker-go/internal/config"
)

// Outcome is the result of one round.
type Outcome int

const (
	Failure Outcome = iota
	Success
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// OutcomeOf converts a boolean result to an Outcome.
func OutcomeOf(success bool) Outcome {
	if success {
		return Success
	}
	return Failure
}

// State is the round parameters carried from one round to the next.
type State struct {
	GridSize            int `json:"gridSize"`
	PieceCount          int `json:"pieceCount"`
	ConsecutiveFailures int `json:"consecutiveFailures"`
	MaxGridSizeReached  int `json:"maxGridSizeReached"`
}

// Initial returns the absolute starting state for a new session.
func Initial(cfg *config.ProgressionConfig) State {
	return State{
		GridSize:           cfg.StartGridSize,
		PieceCount:         cfg.StartPieceCount,
		MaxGridSizeReached: cfg.StartGridSize,
	}
}

// Change names what an outcome did to the round parameters.
type Change int

const (
	GridGrew Change = iota
	PieceAdded
	AtCeiling
	PieceRemoved
	GridShrank
	Ended
)

// String returns the string representation of a change.
func (c Change) String() string {
	names := []string{"grid grew", "piece added", "at ceiling", "piece removed", "grid shrank", "game over"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// Step is the result of applying one outcome.
type Step struct {
	Next     State  `json:"next"`
	Change   Change `json:"change"`
	GameOver bool   `json:"gameOver"`
}

// Advance applies outcome to s and returns the parameters for the next
// round. It has no side effects.
//
// Success grows the grid once the piece count has caught up with it,
// otherwise adds a piece; at the largest grid with every square filled the
// round repeats. Failure removes a piece and shrinks the grid once the
// count falls below gridSize-1. MaxIncorrectAttempts consecutive failures
// end the session, leaving the parameters as they were.
func Advance(s State, outcome Outcome, cfg *config.ProgressionConfig) Step {
	next := s
	var change Change

	if outcome == Success {
		next.ConsecutiveFailures = 0
		switch {
		case next.PieceCount >= next.GridSize && next.GridSize < cfg.MaxGridSize:
			next.GridSize++
			next.PieceCount = next.GridSize
			change = GridGrew
		case next.PieceCount < next.GridSize*next.GridSize:
			next.PieceCount++
			change = PieceAdded
		default:
			change = AtCeiling
		}
	} else {
		next.ConsecutiveFailures++
		if next.ConsecutiveFailures >= cfg.MaxIncorrectAttempts {
			return Step{Next: next, Change: Ended, GameOver: true}
		}

		next.PieceCount = maxOf(config.MinPieceCount, next.PieceCount-1)
		change = PieceRemoved
		if next.GridSize > cfg.MinGridSize && next.PieceCount < next.GridSize-1 {
			next.GridSize--
			next.PieceCount = next.GridSize
			change = GridShrank
		}
	}

	next.PieceCount = clamp(next.PieceCount, config.MinPieceCount, next.GridSize*next.GridSize)
	next.MaxGridSizeReached = maxOf(next.MaxGridSizeReached, next.GridSize)
	return Step{Next: next, Change: change}
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxOf[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}
