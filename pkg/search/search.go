/*
Package search narrows the ranked corpus to the words consistent with
the clues gathered so far.

The engine is a pure filter: it streams the corpus in rank order,
keeps the words that satisfy every clue and stops after a fixed
number of matches. It never re-ranks, never fails, and for a fixed
corpus and clue set always produces the same sequence.
*/
package search

import "github.com/kpech/wordhelper/pkg/corpus"

// DefaultLimit caps a result sequence when the caller does not pick
// a limit of their own.
const DefaultLimit = 200

// Clues is one search request's constraint snapshot. Locked maps a
// position in [0,5) to the letter known to sit there (one letter per
// position, last write wins). Existent letters must appear somewhere
// in a candidate; Nonexistent letters must appear nowhere. The two
// letter sets are disjoint by construction when they come from a
// keyboard.State.
type Clues struct {
	Locked      map[int]byte
	Existent    []byte
	Nonexistent []byte
}

// FromKeyboard assembles a clue set from the locked positions and
// the current keyboard classification.
func FromKeyboard(locked map[int]byte, state interface {
	Existent() []byte
	Nonexistent() []byte
}) Clues {
	return Clues{
		Locked:      locked,
		Existent:    state.Existent(),
		Nonexistent: state.Nonexistent(),
	}
}

// Match reports whether a single word satisfies every clue. Checks
// run cheapest first and short-circuit on the first failure: length,
// existent letters anywhere in the word, nonexistent letters nowhere
// in it, then the locked positions.
//
// A letter that is both locked and marked nonexistent keeps the
// literal reading: the locked occurrence itself counts against the
// nonexistent check, so such a word never matches.
func (cl Clues) Match(word string) bool {
	if len(word) != corpus.WordLength {
		return false
	}
	for _, letter := range cl.Existent {
		if !contains(word, letter) {
			return false
		}
	}
	for _, letter := range cl.Nonexistent {
		if contains(word, letter) {
			return false
		}
	}
	for pos, letter := range cl.Locked {
		if pos < 0 || pos >= len(word) || word[pos] != letter {
			return false
		}
	}
	return true
}

func contains(word string, letter byte) bool {
	for i := 0; i < len(word); i++ {
		if word[i] == letter {
			return true
		}
	}
	return false
}

// Results is a lazy, capped sequence of matching words in
// rank-descending corpus order. Each Results walks the corpus once;
// rerun the search for a fresh sequence.
type Results struct {
	it        *corpus.Iterator
	clues     Clues
	remaining int
}

// Run starts a search over the corpus. Words are matched on demand
// as Next is called; at most limit words are ever produced. A
// negative limit yields an empty sequence.
func Run(c *corpus.Corpus, clues Clues, limit int) *Results {
	if limit < 0 {
		limit = 0
	}
	return &Results{
		it:        c.Iterate(),
		clues:     clues,
		remaining: limit,
	}
}

// Next returns the next qualifying word. The second return value is
// false once the limit is reached or the corpus is exhausted.
func (r *Results) Next() (corpus.Word, bool) {
	if r.remaining <= 0 {
		return corpus.Word{}, false
	}
	for {
		w, ok := r.it.Next()
		if !ok {
			r.remaining = 0
			return corpus.Word{}, false
		}
		if r.clues.Match(w.Text) {
			r.remaining--
			return w, true
		}
	}
}

// Find runs a search and collects the whole capped sequence. An
// empty slice is a normal outcome, not an error.
func Find(c *corpus.Corpus, clues Clues, limit int) []corpus.Word {
	var out []corpus.Word
	res := Run(c, clues, limit)
	for w, ok := res.Next(); ok; w, ok = res.Next() {
		out = append(out, w)
	}
	return out
}
