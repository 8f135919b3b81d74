package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verdicts(r ScoredRow) []Verdict {
	out := make([]Verdict, 0, WordLen)
	for _, t := range r {
		out = append(out, t.Verdict)
	}
	return out
}

func TestScore_Vectors(t *testing.T) {
	A, P, C := Absent, Present, Correct
	cases := []struct {
		target, guess string
		want          []Verdict
	}{
		{"ARRAY", "FURRY", []Verdict{A, A, C, P, C}},
		{"ARRAY", "BLUNT", []Verdict{A, A, A, A, A}},
		{"SALES", "ESSAL", []Verdict{P, P, P, P, P}},
		{"ARRAY", "METER", []Verdict{A, A, A, A, P}},
		{"ARRAY", "ARRAY", []Verdict{C, C, C, C, C}},
		// One E in target: the exact match wins over the earlier misplaced E.
		{"CRANE", "EERIE", []Verdict{A, A, P, A, C}},
		// Two guess L's, one target L: the exact match takes it.
		{"PLANT", "ALLOY", []Verdict{P, C, A, A, A}},
		// Two guess A's, one target A: the earlier guess position claims it.
		{"ALOFT", "LLAMA", []Verdict{A, C, P, A, A}},
		{"ABBEY", "BABES", []Verdict{P, P, C, C, A}},
	}
	for _, tc := range cases {
		t.Run(tc.target+"/"+tc.guess, func(t *testing.T) {
			row := Score(MustParseWord(tc.target), MustParseWord(tc.guess))
			assert.Equal(t, tc.want, verdicts(row))
			for i := range row {
				assert.Equal(t, tc.guess[i], row[i].Letter, "tile %d letter", i)
			}
		})
	}
}

func TestScore_ExactMatchAllCorrect(t *testing.T) {
	for _, s := range sampleWords {
		w := MustParseWord(s)
		row := Score(w, w)
		assert.True(t, row.Solved(), s)
	}
}

// Every (target, guess) pair from the sample must never credit a letter
// more often than the target holds it.
func TestScore_VerdictConservation(t *testing.T) {
	for _, ts := range sampleWords {
		for _, gs := range sampleWords {
			target, guess := MustParseWord(ts), MustParseWord(gs)
			row := Score(target, guess)

			var inTarget, credited [26]int
			for _, c := range target {
				inTarget[c-'A']++
			}
			for i, tile := range row {
				require.Contains(t, []Verdict{Correct, Present, Absent}, tile.Verdict)
				if tile.Verdict == Correct {
					require.Equal(t, target[i], guess[i], "%s/%s pos %d", ts, gs, i)
				}
				if tile.Verdict != Absent {
					credited[tile.Letter-'A']++
				}
			}
			for c := range credited {
				require.LessOrEqual(t, credited[c], inTarget[c],
					"%s/%s letter %c", ts, gs, rune('A'+c))
			}
		}
	}
}

func TestScore_DoesNotMutateInputs(t *testing.T) {
	target, guess := MustParseWord("ARRAY"), MustParseWord("FURRY")
	_ = Score(target, guess)
	assert.Equal(t, "ARRAY", target.String())
	assert.Equal(t, "FURRY", guess.String())
}

var sampleWords = []string{
	"ARRAY", "FURRY", "SALES", "ESSAL", "METER", "BLUNT", "CRANE", "EERIE",
	"LLAMA", "ALLOY", "PLANT", "ABBEY", "BABES", "SASSY", "GEESE", "EMCEE",
}

type fakeDict map[Word]bool

func (d fakeDict) Contains(w Word) bool { return d[w] }

func TestRound_ApplyGuess(t *testing.T) {
	dict := fakeDict{MustParseWord("FURRY"): true, MustParseWord("ARRAY"): true}
	r := NewRound(MustParseWord("ARRAY"))
	require.NotEmpty(t, r.ID)

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := r.ApplyGuess("FUR", dict)
		require.ErrorIs(t, err, ErrWrongLength)
	})
	t.Run("rejects non-alphabetic", func(t *testing.T) {
		_, err := r.ApplyGuess("FUR2Y", dict)
		require.ErrorIs(t, err, ErrNotAlpha)
	})
	t.Run("rejects unknown word", func(t *testing.T) {
		_, err := r.ApplyGuess("BLUNT", dict)
		require.ErrorIs(t, err, ErrNotInWordList)
	})
	require.Empty(t, r.Guesses, "rejected guesses must not be recorded")

	row, err := r.ApplyGuess("  furry ", dict)
	require.NoError(t, err)
	assert.Equal(t, "FURRY", string([]byte{row[0].Letter, row[1].Letter, row[2].Letter, row[3].Letter, row[4].Letter}))
	assert.False(t, r.Won)

	row, err = r.ApplyGuess("array", dict)
	require.NoError(t, err)
	assert.True(t, row.Solved())
	assert.True(t, r.Won)
	assert.Len(t, r.Guesses, 2)
}

func TestNewRound_UniqueIDs(t *testing.T) {
	a, b := NewRound(MustParseWord("ARRAY")), NewRound(MustParseWord("ARRAY"))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseWord(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  error
	}{
		{in: "crane", want: "CRANE"},
		{in: "  CrAnE\t", want: "CRANE"},
		{in: "cran", err: ErrWrongLength},
		{in: "cranes", err: ErrWrongLength},
		{in: "", err: ErrWrongLength},
		{in: "cr4ne", err: ErrNotAlpha},
		{in: "cr ne", err: ErrNotAlpha},
		{in: "éclat", err: ErrNotAlpha},
		// Non-ASCII letters whose upper case is ASCII.
		{in: "ſales", err: ErrNotAlpha},
		{in: "ıslet", err: ErrNotAlpha},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			w, err := ParseWord(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, w.String())
		})
	}
}
