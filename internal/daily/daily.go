// Package daily derives the word of the day from the date and a salt,
// so every player on the same salt sees the same target on the same day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// DateKey names the calendar day of t. Days roll over at midnight UTC
// regardless of the player's zone.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps a day onto a position in an answer list of length n.
// The same salt and day always give the same position; n <= 0 gives 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	seed := binary.BigEndian.Uint64(mac.Sum(nil))
	return int(seed % uint64(n))
}

// Answers is the subset of a word list the picker needs.
type Answers interface {
	Len() int
	At(i int) game.Word
	Random() game.Word
}

// Picker hands out the daily word for the first round and random words after it.
type Picker struct {
	answers Answers
	salt    string
	now     func() time.Time
	used    bool
}

// NewPicker returns a Picker over answers. now may be nil for time.Now.
func NewPicker(answers Answers, salt string, now func() time.Time) *Picker {
	if now == nil {
		now = time.Now
	}
	return &Picker{answers: answers, salt: salt, now: now}
}

// PickTarget returns today's word once, then falls back to random picks.
func (p *Picker) PickTarget() game.Word {
	if p.used {
		return p.answers.Random()
	}
	p.used = true
	return p.answers.At(WordIndex(p.now(), p.salt, p.answers.Len()))
}
