// apps/go-cli/internal/game/session.go
//
// State machine for a single Wordle round.
// Responsibilities:
//   - Hold the secret word and the ordered guess history.
//   - Validate guesses (finished?, shape, duplicate) in a fixed order.
//   - Track transitions: playing -> finished (won or out of attempts).
//
// Notes:
//   - Attempt does not score; callers run Evaluate on accepted guesses.
//   - Once finished, a Game never changes again.

package game

import "strings"

// Game holds the state of one round.
type Game struct {
	secret    string
	history   []string
	remaining int
	finished  bool
}

// New constructs a round for secret. The secret is lowercased; callers are
// expected to pass words that came through a words.Source.
func New(secret string) *Game {
	return &Game{
		secret:    strings.ToLower(secret),
		history:   []string{},
		remaining: MaxAttempts,
	}
}

// Attempt validates and records a guess.
//
// Validation rules, each with its own error:
//   - Game must not be finished (ErrGameOver).
//   - Guess must be exactly WordLength letters a–z, any case (ErrInvalidGuess).
//   - Lowercased guess must not already be in the history (ErrDuplicateGuess).
//
// State transitions:
//   - Guess equals the secret -> finished (won).
//   - Remaining attempts reach zero -> finished (lost).
func (g *Game) Attempt(guess string) error {
	if g.finished {
		return ErrGameOver
	}
	if len(guess) != WordLength || !isAlpha(guess) {
		return ErrInvalidGuess
	}
	guess = strings.ToLower(guess)
	for _, prev := range g.history {
		if prev == guess {
			return ErrDuplicateGuess
		}
	}

	g.history = append(g.history, guess)
	g.remaining--
	if guess == g.secret || g.remaining == 0 {
		g.finished = true
	}
	return nil
}

// IsFinished reports whether the round has ended.
func (g *Game) IsFinished() bool { return g.finished }

// IsWinner reports whether the last accepted guess is the secret.
func (g *Game) IsWinner() bool {
	if len(g.history) == 0 {
		return false
	}
	return g.history[len(g.history)-1] == g.secret
}

// RemainingAttempts returns the number of guesses left.
func (g *Game) RemainingAttempts() int { return g.remaining }

// Answer returns the secret word.
func (g *Game) Answer() string { return g.secret }

// History returns a copy of the accepted guesses in order.
func (g *Game) History() []string {
	out := make([]string, len(g.history))
	copy(out, g.history)
	return out
}

// State reports a coarse string form of the round: "playing", "won" or "lost".
func (g *Game) State() string {
	if g.finished {
		if g.IsWinner() {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// isAlpha checks that s consists only of ASCII letters (either case).
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
