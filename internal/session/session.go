// internal/session/session.go
//
// Interactive game loop.
// State machine:
//
//	choosingTarget → awaitingGuess ⟲ → roundWon → askReplay → choosingTarget | terminated
//
// Notes:
//   - Input is line oriented; each line is trimmed and upper-cased before validation.
//   - Lines longer than maxLine are cut short; they still fail validation as usual.
//   - Rejected guesses print a reason and leave the round untouched.
//   - End of input terminates the loop at any state without an error.
//   - The round's target is owned here and replaced, never mutated, per round.

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
)

// TargetPicker supplies the secret word for each new round.
type TargetPicker interface {
	PickTarget() game.Word
}

// maxLine caps how much of one input line is kept.
const maxLine = 1024

type state int

const (
	choosingTarget state = iota
	awaitingGuess
	roundWon
	askReplay
	terminated
)

// Loop drives rounds until the player declines a replay or input ends.
type Loop struct {
	in       *bufio.Reader
	out      io.Writer
	picker   TargetPicker
	allowed  game.Dictionary
	renderer *render.Renderer

	round   *game.Round
	tally   Tally
	readErr error
}

// New wires a Loop. allowed validates guesses; picker chooses targets.
func New(in io.Reader, out io.Writer, picker TargetPicker, allowed game.Dictionary, r *render.Renderer) *Loop {
	return &Loop{
		in:       bufio.NewReader(in),
		out:      out,
		picker:   picker,
		allowed:  allowed,
		renderer: r,
	}
}

// Run plays until termination and returns the session tally.
// The only error is a failure reading input (EOF is not an error).
func (l *Loop) Run() (Tally, error) {
	st := choosingTarget
	for st != terminated {
		switch st {
		case choosingTarget:
			st = l.chooseTarget()
		case awaitingGuess:
			st = l.awaitGuess()
		case roundWon:
			st = l.celebrate()
		case askReplay:
			st = l.askReplay()
		}
	}
	l.printf("Rounds won: %d of %d\n", l.tally.Won, l.tally.Played)
	if best := l.tally.Best(); best > 0 {
		l.printf("Fewest guesses in a round: %d\n", best)
	}
	if l.readErr != nil {
		return l.tally, fmt.Errorf("read input: %w", l.readErr)
	}
	return l.tally, nil
}

func (l *Loop) chooseTarget() state {
	l.round = game.NewRound(l.picker.PickTarget())
	l.tally.Played++
	log.Debug().Str("round", l.round.ID).Str("target", l.round.Target.String()).Msg("round started")
	l.printf("Guess the five-letter word.\n")
	return awaitingGuess
}

func (l *Loop) awaitGuess() state {
	l.printf("Guess: ")
	line, ok := l.readLine()
	if !ok {
		log.Debug().Str("round", l.round.ID).Int("guesses", len(l.round.Guesses)).Msg("input closed mid-round")
		return terminated
	}

	row, err := l.round.ApplyGuess(line, l.allowed)
	if err != nil {
		log.Debug().Err(err).Str("round", l.round.ID).Str("input", line).Msg("guess rejected")
		l.printf("%s\n", rejection(line, err))
		return awaitingGuess
	}

	log.Debug().Str("round", l.round.ID).Str("guess", line).Int("turn", len(l.round.Guesses)).Msg("guess accepted")
	if err := l.renderer.WriteRow(l.out, row); err != nil {
		log.Warn().Err(err).Msg("render row")
	}
	if l.round.Won {
		return roundWon
	}
	return awaitingGuess
}

func (l *Loop) celebrate() state {
	n := len(l.round.Guesses)
	l.tally.record(n)
	log.Info().Str("round", l.round.ID).Int("guesses", n).Msg("round won")
	if n == 1 {
		l.printf("You got it in 1 guess!\n")
	} else {
		l.printf("You got it in %d guesses!\n", n)
	}
	return askReplay
}

func (l *Loop) askReplay() state {
	l.printf("Play again? [Y/n] ")
	line, ok := l.readLine()
	if !ok {
		return terminated
	}
	if declined(line) {
		return terminated
	}
	return choosingTarget
}

// declined reports whether a replay answer is n, in either case.
func declined(answer string) bool {
	return strings.EqualFold(answer, "N")
}

// rejection maps a validation error to the message shown to the player.
func rejection(input string, err error) string {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		return "Guesses must be exactly 5 letters."
	case errors.Is(err, game.ErrNotAlpha):
		return "Guesses may only contain the letters A-Z."
	case errors.Is(err, game.ErrNotInWordList):
		return fmt.Sprintf("%s is not in the word list.", input)
	default:
		return err.Error()
	}
}

// readLine returns the next input line trimmed and upper-cased; ok is false
// at end of input or on a read error, which is kept for Run.
// Only the first maxLine bytes of a line are kept; the rest is discarded.
func (l *Loop) readLine() (line string, ok bool) {
	var buf []byte
	for {
		chunk, more, err := l.in.ReadLine()
		if err != nil {
			if len(buf) > 0 {
				break
			}
			if !errors.Is(err, io.EOF) {
				l.readErr = err
			}
			l.printf("\n")
			return "", false
		}
		if room := maxLine - len(buf); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			buf = append(buf, chunk...)
		}
		if !more {
			break
		}
	}
	return strings.ToUpper(strings.TrimSpace(string(buf))), true
}

func (l *Loop) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(l.out, format, a...)
}
