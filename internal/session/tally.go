package session

// Tally counts rounds for the current process only; nothing is persisted.
type Tally struct {
	Played  int   // rounds started, including one abandoned at end of input
	Won     int   // rounds solved
	Guesses []int // guesses taken per won round, in order
}

// record notes a won round that took n guesses.
func (t *Tally) record(n int) {
	t.Won++
	t.Guesses = append(t.Guesses, n)
}

// Best returns the fewest guesses in any won round, or 0 if none was won.
func (t Tally) Best() int {
	best := 0
	for _, n := range t.Guesses {
		if best == 0 || n < best {
			best = n
		}
	}
	return best
}
