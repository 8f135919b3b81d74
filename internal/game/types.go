// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Word: a validated five-letter uppercase word.
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Tile, ScoredRow: a scored guess, index-aligned with the guess.
//   - Round: state for a single round against one target.

package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// WordLen is the number of letters in every word.
const WordLen = 5

// Word is an immutable five-letter word, always uppercase A–Z.
// The zero value is not a valid word; build one with ParseWord.
type Word [WordLen]byte

var (
	ErrWrongLength = errors.New("word must be exactly 5 letters")
	ErrNotAlpha    = errors.New("word must contain only letters A-Z")
)

// ParseWord trims s, checks it is exactly WordLen ASCII letters and
// upper-cases it. It is shared by word-list loading and guess validation.
//
// The range check runs on the raw bytes: letters such as U+017F (ſ) fold
// to ASCII under strings.ToUpper and must still be rejected.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != WordLen {
		return w, ErrWrongLength
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		default:
			return w, ErrNotAlpha
		}
		w[i] = c
	}
	return w, nil
}

// MustParseWord is ParseWord for literals known to be valid. It panics otherwise.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic("game: " + s + ": " + err.Error())
	}
	return w
}

// String returns the word as an uppercase string.
func (w Word) String() string { return string(w[:]) }

// Verdict is the evaluation result for a single letter in a guess.
//   - Correct: letter is in the target at this position.
//   - Present: letter is in the target elsewhere (subject to multiplicity).
//   - Absent:  letter is not matched.
type Verdict uint8

const (
	Absent Verdict = iota
	Present
	Correct
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Tile is one scored letter.
type Tile struct {
	Letter  byte
	Verdict Verdict
}

// ScoredRow is a guess with a verdict per position.
type ScoredRow [WordLen]Tile

// Solved reports whether every tile is Correct.
func (r ScoredRow) Solved() bool {
	for _, t := range r {
		if t.Verdict != Correct {
			return false
		}
	}
	return true
}

// Round holds the state of a single round: one target, any number of guesses.
type Round struct {
	ID      string // Unique round identifier (uuid), used in logs.
	Target  Word   // The secret word; never shown to the player.
	Guesses []Word // Accepted guesses, in order.
	Won     bool   // True once a guess matched the target.
}
