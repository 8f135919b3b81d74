// internal/words/words.go
//
// Provides word list management for the game loop.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files, a SQLite dictionary,
//     or the embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪allowed).
//   - Supply Random, Contains and Stats helpers.
//
// Word Lists:
//   - "answers": possible targets.
//   - "allowed": valid guesses (always includes answers).
//
// Source precedence (Load):
//   1. A SQLite dictionary, if configured: tables "answers" and "allowed".
//   2. Both files set: answers from the first, allowed from the second.
//   3. Only the allowed file set: it serves as both lists.
//   4. Nothing set: embedded defaults from the assets package.
//
// Constraints:
//   • Every entry must normalize to 5 letters A–Z; anything else fails the load.
//   • Lists are read once at startup and never mutated afterwards.

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrEmpty is returned when a list ends up with no words.
var ErrEmpty = errors.New("words: list is empty")

// List is an ordered, de-duplicated, read-only set of words.
type List struct {
	words []game.Word
	set   map[game.Word]struct{}
}

// NewList builds a List, dropping repeated words but keeping first-seen order.
func NewList(ws []game.Word) *List {
	l := &List{set: make(map[game.Word]struct{}, len(ws))}
	l.add(ws...)
	return l
}

func (l *List) add(ws ...game.Word) {
	for _, w := range ws {
		if _, ok := l.set[w]; ok {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
}

// Contains reports whether w is in the list.
func (l *List) Contains(w game.Word) bool {
	_, ok := l.set[w]
	return ok
}

// Len returns the number of distinct words.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word in load order.
func (l *List) At(i int) game.Word { return l.words[i] }

// Random returns a uniformly chosen word using crypto/rand.
// The list must not be empty.
func (l *List) Random() game.Word {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	return l.words[nBig.Int64()]
}

// PickTarget makes a List usable as the game loop's uniform target picker.
func (l *List) PickTarget() game.Word { return l.Random() }

// Lists bundles the two lists the game needs.
type Lists struct {
	Answers *List // possible targets
	Allowed *List // answers ∪ allowed guesses
}

// Stats returns counts of loaded words: (answers, allowed).
func (ls *Lists) Stats() (answersCount int, allowedCount int) {
	return ls.Answers.Len(), ls.Allowed.Len()
}

// Sources names where the lists come from. Empty fields are unset.
type Sources struct {
	AnswersFile string
	AllowedFile string
	DB          string
}

// Load reads both lists according to the precedence documented above.
// Any malformed entry or an empty answers list is an error.
func Load(ctx context.Context, src Sources) (*Lists, error) {
	var ansList, allowList []game.Word
	var err error
	origin := "embedded"

	switch {
	case src.DB != "":
		origin = src.DB
		if ansList, err = LoadSQLite(ctx, src.DB, TableAnswers); err != nil {
			return nil, err
		}
		if allowList, err = LoadSQLite(ctx, src.DB, TableAllowed); err != nil {
			return nil, err
		}

	case src.AnswersFile != "" && src.AllowedFile != "":
		origin = src.AnswersFile + "," + src.AllowedFile
		if ansList, err = LoadFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = LoadFile(src.AllowedFile); err != nil {
			return nil, err
		}

	case src.AllowedFile != "":
		origin = src.AllowedFile
		if allowList, err = LoadFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	case src.AnswersFile != "":
		return nil, errors.New("words: an answers file needs an allowed file as well")

	default:
		if ansList, err = loadFS(assets.FS, assets.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = loadFS(assets.FS, assets.AllowedFile); err != nil {
			return nil, err
		}
	}

	if len(ansList) == 0 {
		return nil, fmt.Errorf("%s: answers: %w", origin, ErrEmpty)
	}

	ls := &Lists{Answers: NewList(ansList)}
	// Ensure all answers are also accepted as guesses.
	ls.Allowed = NewList(ansList)
	ls.Allowed.add(allowList...)

	a, g := ls.Stats()
	log.Info().Str("source", origin).Int("answers", a).Int("allowed", g).Msg("word lists loaded")
	return ls, nil
}

// LoadFile loads one word per line from a file.
func LoadFile(path string) ([]game.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWords(path, f)
}

func loadFS(fsys fs.FS, name string) ([]game.Word, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWords(name, f)
}

// readWords parses one word per line, skipping blanks and # comments.
// Entries are trimmed and upper-cased; a malformed entry fails the whole read.
func readWords(name string, r io.Reader) ([]game.Word, error) {
	var out []game.Word
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w, err := game.ParseWord(s)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %q: %w", name, line, s, err)
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}
