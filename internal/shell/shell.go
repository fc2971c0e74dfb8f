// apps/go-cli/internal/shell/shell.go
//
// Line-oriented interactive front-end for the play service.
// Commands:
//   - start          start a new round
//   - guess <word>   submit a guess, print coloured feedback
//   - info | help    rules and commands
//   - exit | quit    leave the shell
//
// Errors from the service never end the loop; they are printed with a
// [Warning] or [Error] prefix (see resolve).

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/play"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

const prompt = "wordle> "

// Shell reads commands from in and writes responses to out.
type Shell struct {
	svc *play.Service
	in  io.Reader
	out io.Writer
	st  styles
	log zerolog.Logger
}

// New constructs a Shell over svc.
func New(svc *play.Service, in io.Reader, out io.Writer) *Shell {
	return &Shell{svc: svc, in: in, out: out, st: newStyles(out), log: log.Logger}
}

// WithLogger replaces the logger used for resolved errors.
func (sh *Shell) WithLogger(l zerolog.Logger) *Shell {
	sh.log = l
	return sh
}

// Run prints the welcome text and processes lines until exit, EOF or ctx is done.
func (sh *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(sh.out, sh.st.info.Render("Welcome to Wordle CLI! Type 'info' for rules or 'start' to play."))
	sc := bufio.NewScanner(sh.in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(sh.out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(sh.out)
			return sc.Err()
		}
		out, quit := sh.Exec(sc.Text())
		if out != "" {
			fmt.Fprintln(sh.out, out)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs one command line and returns the text to print and whether the
// shell should exit.
func (sh *Shell) Exec(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	switch strings.ToLower(fields[0]) {
	case "start":
		return sh.start(), false
	case "guess":
		word := ""
		if len(fields) > 1 {
			word = fields[1]
		}
		return sh.guess(word), false
	case "info", "help":
		return sh.info(), false
	case "exit", "quit":
		return "Bye!", true
	}
	return sh.st.warning.Render(fmt.Sprintf("[Warning] unknown command %q, type 'info' for help", fields[0])), false
}

func (sh *Shell) start() string {
	if err := sh.svc.StartGame(); err != nil {
		return sh.resolve(err)
	}
	return "Game started, type 'guess <word>' to make a guess."
}

func (sh *Shell) guess(word string) string {
	marks, err := sh.svc.SubmitGuess(word)
	if err != nil {
		return sh.resolve(err)
	}

	var b strings.Builder
	lower := strings.ToLower(word)
	for i, m := range marks {
		b.WriteString(sh.st.letter(m).Render(string(lower[i])))
	}
	b.WriteString("\n")

	switch {
	case sh.svc.IsWinner():
		b.WriteString(sh.st.success.Render("Congratulations! You guessed the word!\nType 'start' for another game or 'exit' to quit."))
	case sh.svc.IsFinished():
		b.WriteString(sh.st.danger.Render(fmt.Sprintf("Game over! The word was %s.\nType 'start' for another game or 'exit' to quit.", sh.svc.CurrentAnswer())))
	default:
		fmt.Fprintf(&b, "You have %d more attempts.", sh.svc.RemainingAttempts())
	}
	return b.String()
}

func (sh *Shell) info() string {
	return sh.st.info.Render(fmt.Sprintf(`--------------------------------------------------------
                 How to play Wordle CLI
--------------------------------------------------------
Rules:
- Guess the %d-letter word in %d tries.
- After each guess, you will see feedback:
    - [Green]: Correct letter in the correct position.
    - [Yellow]: Correct letter in the wrong position.
    - [Gray]: Letter not in the word.

Commands:
- 'start': Start a new game.
- 'guess <word>': Submit your guess. (e.g., guess apple)
- 'info': Show this help message.
- 'exit': Quit the game.

Type 'start' to begin.
--------------------------------------------------------`, game.WordLength, game.MaxAttempts))
}

// resolve maps a service error to display text and logs it.
// Word-list failures are errors; everything the player can fix is a warning.
func (sh *Shell) resolve(err error) string {
	switch {
	case errors.Is(err, words.ErrWordLoading), errors.Is(err, words.ErrEmptyWordList):
		sh.log.Warn().Err(err).Msg("error occurred while loading word list")
		return sh.st.danger.Render("[Error] " + err.Error())
	case errors.Is(err, play.ErrNoActiveSession):
		sh.log.Debug().Err(err).Msg("guess without game")
		return sh.st.warning.Render("[Warning] " + err.Error())
	case errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrInvalidGuess),
		errors.Is(err, game.ErrDuplicateGuess):
		sh.log.Debug().Err(err).Msg("guess rejected")
		return sh.st.warning.Render("[Warning] " + err.Error())
	}
	sh.log.Error().Err(err).Msg("unexpected error")
	return sh.st.danger.Render("[Error] unexpected error occurred: " + err.Error())
}
