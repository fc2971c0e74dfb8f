// apps/go-cli/internal/game/evaluate.go
//
// Guess scoring for the Wordle engine.

package game

// Evaluate scores guess against secret using the two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct and consume that secret position.
//
// Pass 2:
//   - Left to right over the remaining guess letters, take the leftmost
//     unconsumed secret position holding the same letter: Present, and consume
//     it. No such position: Absent.
//
// Both words must be lowercase and of equal length; Game.Attempt guarantees
// this for every guess that reaches the coordinator.
func Evaluate(secret, guess string) []LetterResult {
	n := len(guess)
	res := make([]LetterResult, n)
	resolved := make([]bool, n)
	used := make([]bool, len(secret))

	// First pass: exact positions.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = Correct
			resolved[i] = true
			used[i] = true
		}
	}

	// Second pass: presents/absents for everything not yet resolved.
	for i := 0; i < n; i++ {
		if resolved[i] {
			continue
		}
		res[i] = Absent
		for j := 0; j < len(secret); j++ {
			if j == i || used[j] || secret[j] != guess[i] {
				continue
			}
			res[i] = Present
			used[j] = true
			break
		}
	}
	return res
}

// AllCorrect reports whether every mark is Correct.
func AllCorrect(m []LetterResult) bool {
	for _, x := range m {
		if x != Correct {
			return false
		}
	}
	return len(m) > 0
}
