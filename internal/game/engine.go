// internal/game/engine.go
//
// Core game engine for a single Wordle round.
// Responsibilities:
//   - Create new rounds around a chosen target.
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Track the won transition.
//
// Notes:
//   - Target selection lives outside this package (words, daily).
//   - There is no turn limit; a round ends only when it is won.
package game

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotInWordList is returned by ApplyGuess for well-formed guesses
// that the allowed list does not contain.
var ErrNotInWordList = errors.New("not in word list")

// Dictionary reports whether a word is an acceptable guess.
type Dictionary interface {
	Contains(w Word) bool
}

// NewRound constructs a round for the given target.
func NewRound(target Word) *Round {
	return &Round{
		ID:     uuid.NewString(),
		Target: target,
	}
}

// ApplyGuess validates and scores a guess, mutating the round state.
//
// Validation rules (any failure leaves the round untouched):
//   - Guess must be exactly WordLen letters and alphabetic A–Z.
//   - Guess must be present in the allowed list.
//
// Guesses after the round is won are still scored; the loop stops asking.
func (r *Round) ApplyGuess(raw string, allowed Dictionary) (ScoredRow, error) {
	guess, err := ParseWord(raw)
	if err != nil {
		return ScoredRow{}, err
	}
	if !allowed.Contains(guess) {
		return ScoredRow{}, ErrNotInWordList
	}

	row := Score(r.Target, guess)
	r.Guesses = append(r.Guesses, guess)
	if guess == r.Target {
		r.Won = true
	}
	return row, nil
}

// Score implements the standard two-pass Wordle scoring algorithm.
//
// Pass 1:
//   - Mark exact matches Correct and spend that target slot.
//
// Pass 2:
//   - For each remaining guess letter, claim the leftmost unspent target
//     slot holding the same letter and mark Present.
//
// Anything left is Absent. Claims are made in guess-position order, so a
// letter never scores Correct or Present more often than it occurs in target.
func Score(target, guess Word) ScoredRow {
	var row ScoredRow
	// available holds target letters not yet claimed; 0 marks a spent slot.
	available := target

	for i := range guess {
		row[i] = Tile{Letter: guess[i], Verdict: Absent}
		if guess[i] == target[i] {
			row[i].Verdict = Correct
			available[i] = 0
		}
	}

	for i := range guess {
		if row[i].Verdict == Correct {
			continue
		}
		for j := range available {
			if available[j] == guess[i] {
				row[i].Verdict = Present
				available[j] = 0
				break
			}
		}
	}
	return row
}
