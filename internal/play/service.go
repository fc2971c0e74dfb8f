// apps/go-cli/internal/play/service.go
//
// Play service: the glue front-ends call to run rounds.
// Responsibilities:
//   - Load the word list once (via words.Cached) and pick secrets from it.
//   - Own the single current game; starting a round discards the old one.
//   - Forward guesses to the game and score accepted ones with game.Evaluate.
//   - Answer state queries with safe defaults when no round exists.
//
// A Service is not safe for concurrent use; front-ends that serve several
// goroutines (httpserver) serialize calls themselves.

package play

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// ErrNoActiveSession is returned by SubmitGuess before the first StartGame.
var ErrNoActiveSession = errors.New("no game started! type 'start' to begin")

// Service runs rounds against one word source.
type Service struct {
	words  *words.Cached
	picker Picker
	log    zerolog.Logger

	current   *game.Game
	sessionID string
}

// Option configures a Service.
type Option func(*Service)

// WithPicker replaces the default RandomPicker.
func WithPicker(p Picker) Option {
	return func(s *Service) { s.picker = p }
}

// WithLogger replaces the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService constructs a Service. src is wrapped so it is loaded at most once.
func NewService(src words.Source, opts ...Option) *Service {
	s := &Service{
		words:  words.NewCached(src),
		picker: RandomPicker{},
		log:    log.Logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// StartGame picks a secret and replaces the current game with a fresh one.
// Fails with words.ErrEmptyWordList or a *words.WordLoadingError when the
// dictionary cannot supply a word; the previous game is kept in that case.
func (s *Service) StartGame() error {
	list, err := s.words.LoadWords()
	if err != nil {
		s.log.Warn().Err(err).Msg("word list unavailable")
		return err
	}
	i, err := s.picker.Pick(len(list))
	if err != nil {
		return fmt.Errorf("pick secret: %w", err)
	}
	if i < 0 || i >= len(list) {
		return fmt.Errorf("pick secret: index %d out of range [0,%d)", i, len(list))
	}

	s.current = game.New(list[i])
	s.sessionID = uuid.NewString()
	s.log.Info().Str("session", s.sessionID).Int("words", len(list)).Msg("game started")
	return nil
}

// SubmitGuess applies guess to the current game and returns its feedback.
// Errors from game.Attempt are returned unchanged.
func (s *Service) SubmitGuess(guess string) ([]game.LetterResult, error) {
	if s.current == nil {
		return nil, ErrNoActiveSession
	}
	if err := s.current.Attempt(guess); err != nil {
		s.log.Debug().Err(err).Str("session", s.sessionID).Msg("guess rejected")
		return nil, err
	}
	marks := game.Evaluate(s.current.Answer(), strings.ToLower(guess))

	if s.current.IsFinished() {
		s.log.Info().
			Str("session", s.sessionID).
			Bool("won", s.current.IsWinner()).
			Int("attempts", game.MaxAttempts-s.current.RemainingAttempts()).
			Msg("game finished")
	}
	return marks, nil
}

// IsFinished reports whether the current game is over; false without one.
func (s *Service) IsFinished() bool {
	return s.current != nil && s.current.IsFinished()
}

// IsWinner reports whether the current game was won; false without one.
func (s *Service) IsWinner() bool {
	return s.current != nil && s.current.IsWinner()
}

// RemainingAttempts returns the guesses left; 0 without a game.
func (s *Service) RemainingAttempts() int {
	if s.current == nil {
		return 0
	}
	return s.current.RemainingAttempts()
}

// CurrentAnswer returns the secret of the current game; "" without one.
func (s *Service) CurrentAnswer() string {
	if s.current == nil {
		return ""
	}
	return s.current.Answer()
}

// WordCount returns the size of the loaded word list (0 before first load).
func (s *Service) WordCount() int { return s.words.Stats() }

// Row is one scored guess in a Snapshot.
type Row struct {
	Guess string              `json:"guess"`
	Marks []game.LetterResult `json:"marks"`
}

// State is a point-in-time copy of the current game for front-ends.
type State struct {
	SessionID string `json:"sessionId,omitempty"`
	Status    string `json:"state"` // none | playing | won | lost
	Rows      []Row  `json:"rows"`
	Remaining int    `json:"remaining"`
	Answer    string `json:"answer,omitempty"` // only once finished
}

// Snapshot returns the current game state. The answer is revealed only after
// the game is finished.
func (s *Service) Snapshot() State {
	if s.current == nil {
		return State{Status: "none", Rows: []Row{}}
	}
	st := State{
		SessionID: s.sessionID,
		Status:    s.current.State(),
		Rows:      []Row{},
		Remaining: s.current.RemainingAttempts(),
	}
	for _, g := range s.current.History() {
		st.Rows = append(st.Rows, Row{Guess: g, Marks: game.Evaluate(s.current.Answer(), g)})
	}
	if s.current.IsFinished() {
		st.Answer = s.current.Answer()
	}
	return st
}
