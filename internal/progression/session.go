package progression

import (
	"io"
	"log/slog"
	"time"

	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/config"
	"github.com/lgbarn/chunker-go/internal/errors"
	"github.com/lgbarn/chunker-go/internal/recall"
)

// Phase is the stage of a session.
type Phase int

const (
	Idle Phase = iota
	Memorize
	Recall
	Feedback
	GameOver
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	names := []string{"idle", "memorize", "recall", "feedback", "gameover"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// PositionGenerator builds the position for a round.
// *generator.Generator satisfies it.
type PositionGenerator interface {
	Generate(grid chess.Grid, numPieces int) (chess.Position, error)
}

// Round describes a round that has just been generated.
type Round struct {
	Number      int            `json:"round"`
	GridSize    int            `json:"gridSize"`
	PieceCount  int            `json:"pieceCount"`
	Position    chess.Position `json:"position"`
	MemorizeFor time.Duration  `json:"memorizeFor"`
}

// Result describes a concluded round.
type Result struct {
	Round   int           `json:"round"`
	Outcome Outcome       `json:"outcome"`
	Step    Step          `json:"step"`
	Report  recall.Report `json:"report"`
}

// Session owns the state of one player's game: the round parameters,
// the current phase, the position on show, and the attempt at it.
// A Session is not safe for concurrent use; a host serving several
// goroutines must serialize calls.
type Session struct {
	cfg    *config.Config
	gen    PositionGenerator
	logger *slog.Logger

	state    State
	phase    Phase
	active   bool
	round    int
	position chess.Position
	attempt  *recall.Attempt
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the structured logger. The default discards output.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates an idle session.
func NewSession(cfg *config.Config, gen PositionGenerator, opts ...SessionOption) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	s := &Session{
		cfg:    cfg,
		gen:    gen,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:  Initial(&cfg.Progression),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current round parameters.
func (s *Session) State() State { return s.state }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Active reports whether a session is in progress.
func (s *Session) Active() bool { return s.active }

// Round returns the number of rounds generated in this session.
func (s *Session) Round() int { return s.round }

// Position returns the position of the current round.
func (s *Session) Position() chess.Position { return s.position }

// Start begins the next round. From idle or game over it first resets to
// the initial parameters; from feedback it continues the session.
//
// If the position cannot be generated the session is reset to the initial
// parameters and left idle, and the returned *errors.RoundError wraps
// ErrGenerationFailed.
func (s *Session) Start() (Round, error) {
	switch s.phase {
	case Idle, Feedback, GameOver:
	default:
		return Round{}, errors.Wrapf(errors.ErrWrongPhase, "cannot start a round during %s", s.phase)
	}

	if !s.active {
		if s.phase != Feedback {
			s.reset()
			s.logger.Info("starting new session",
				"grid", s.state.GridSize, "pieces", s.state.PieceCount)
		}
		s.active = true
		s.state.ConsecutiveFailures = 0
	}

	grid := s.state.GridSize
	s.state.PieceCount = clamp(s.state.PieceCount, config.MinPieceCount, grid*grid)
	s.round++

	pos, err := s.gen.Generate(chess.Grid(grid), s.state.PieceCount)
	if err != nil || len(pos) < config.MinPieceCount {
		if err == nil {
			err = errors.ErrGenerationFailed
		}
		roundErr := &errors.RoundError{
			Err:        err,
			Round:      s.round,
			GridSize:   grid,
			PieceCount: s.state.PieceCount,
		}
		s.logger.Error("generation failed, resetting session", "error", roundErr)
		s.reset()
		return Round{}, roundErr
	}

	// The generated count is authoritative when it falls short.
	s.state.PieceCount = maxOf(config.MinPieceCount, len(pos))
	s.position = pos
	s.attempt = recall.NewAttempt(pos)
	s.phase = Memorize

	r := Round{
		Number:      s.round,
		GridSize:    grid,
		PieceCount:  s.state.PieceCount,
		Position:    pos,
		MemorizeFor: s.cfg.Timing.MemorizeDuration(len(pos)),
	}
	s.logger.Info("round started",
		"round", r.Number, "grid", r.GridSize, "pieces", r.PieceCount, "memorize", r.MemorizeFor)
	return r, nil
}

// BeginRecall hides the position and opens it for placement. It returns
// how long the player has.
func (s *Session) BeginRecall() (time.Duration, error) {
	if err := s.require(Memorize); err != nil {
		return 0, err
	}
	s.phase = Recall
	d := s.cfg.Timing.RecallDuration(len(s.position))
	s.logger.Debug("recall started", "round", s.round, "recall", d)
	return d, nil
}

// Place judges a single drop during recall. It reports whether the drop
// was correct and the verdict of the attempt after it.
func (s *Session) Place(sq chess.Square, piece chess.Piece) (bool, recall.Verdict, error) {
	if err := s.require(Recall); err != nil {
		return false, recall.Pending, err
	}
	correct, verdict := s.attempt.Drop(sq, piece)
	s.logger.Debug("piece dropped",
		"square", int(sq), "piece", piece.String(), "correct", correct, "verdict", verdict.String())
	return correct, verdict, nil
}

// Finish concludes the recall phase using the attempt's verdict. A
// pending attempt, as when the recall timer runs out, counts as failure.
func (s *Session) Finish() (Result, error) {
	if err := s.require(Recall); err != nil {
		return Result{}, err
	}
	return s.conclude(OutcomeOf(s.attempt.Expire() == recall.Succeeded)), nil
}

// Record concludes the current round with an externally decided outcome.
// It may be called during memorize or recall.
func (s *Session) Record(outcome Outcome) (Result, error) {
	switch s.phase {
	case Memorize, Recall:
	case GameOver:
		return Result{}, errors.ErrGameOver
	default:
		return Result{}, errors.Wrapf(errors.ErrWrongPhase, "cannot record an outcome during %s", s.phase)
	}
	return s.conclude(outcome), nil
}

func (s *Session) conclude(outcome Outcome) Result {
	step := Advance(s.state, outcome, &s.cfg.Progression)
	prev := s.state
	s.state = step.Next

	result := Result{
		Round:   s.round,
		Outcome: outcome,
		Step:    step,
		Report:  s.attempt.Report(),
	}

	if step.GameOver {
		s.phase = GameOver
		s.active = false
		s.logger.Info("game over",
			"round", s.round, "failures", s.state.ConsecutiveFailures,
			"grid", s.state.GridSize, "pieces", s.state.PieceCount)
		return result
	}

	s.phase = Feedback
	s.logger.Info("round finished",
		"round", s.round, "outcome", outcome.String(), "change", step.Change.String(),
		"grid", prev.GridSize, "pieces", prev.PieceCount,
		"next_grid", s.state.GridSize, "next_pieces", s.state.PieceCount)
	return result
}

// NextRoundDelay returns the pause the host should leave before Start.
func (s *Session) NextRoundDelay() time.Duration {
	return s.cfg.Timing.FeedbackDelay() + s.cfg.Timing.NextRoundDelay()
}

func (s *Session) require(want Phase) error {
	if s.phase == GameOver {
		return errors.ErrGameOver
	}
	if s.phase != want {
		return errors.Wrapf(errors.ErrWrongPhase, "in %s, want %s", s.phase, want)
	}
	return nil
}

func (s *Session) reset() {
	s.state = Initial(&s.cfg.Progression)
	s.phase = Idle
	s.active = false
	s.round = 0
	s.position = nil
	s.attempt = nil
}
