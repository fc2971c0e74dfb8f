// apps/go-cli/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterResult: per-letter classification of a guess.
//   - Game: state for a single round (see session.go).
//   - The error values returned by Game.Attempt.

package game

import "errors"

const (
	// WordLength is the number of letters in every secret and guess.
	WordLength = 5
	// MaxAttempts is the guess budget of a single round.
	MaxAttempts = 5
)

// LetterResult represents the evaluation result for a single letter in a guess.
//   - Correct: letter is in the secret at the same position.
//   - Present: letter is in the secret at another, still unmatched, position.
//   - Absent:  letter is not in the secret (or all its occurrences are used up).
type LetterResult int

const (
	Absent LetterResult = iota
	Present
	Correct
)

// String returns the lowercase name used in logs and JSON payloads.
func (r LetterResult) String() string {
	switch r {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return "unknown"
}

// MarshalText lets LetterResult encode as its name in JSON.
func (r LetterResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Errors returned by Game.Attempt, in the order the checks run.
var (
	ErrGameOver       = errors.New("game over! type 'start' for a new game")
	ErrInvalidGuess   = errors.New("guess must be 5 alphabetic characters long (no digits or symbols allowed)")
	ErrDuplicateGuess = errors.New("you have already guessed this word")
)
