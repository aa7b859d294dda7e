package search

import (
	"fmt"
	"testing"

	"github.com/kpech/wordhelper/pkg/corpus"
)

// small ranked corpus used across the filter tests
func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.New([]corpus.Word{
		{Text: "crane", Rank: 90},
		{Text: "trace", Rank: 85},
		{Text: "react", Rank: 80},
		{Text: "cider", Rank: 10},
	})
	if err != nil {
		t.Fatalf("building test corpus: %v", err)
	}
	return c
}

func words(matches []corpus.Word) []string {
	out := make([]string, len(matches))
	for i, w := range matches {
		out[i] = w.Text
	}
	return out
}

func assertWords(t *testing.T, got []corpus.Word, want ...string) {
	t.Helper()
	gotWords := words(got)
	if len(gotWords) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotWords)
	}
	for i := range want {
		if gotWords[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotWords)
		}
	}
}

// empty clues must pass the corpus through unchanged, in rank order
func TestEmptyCluesKeepRankOrder(t *testing.T) {
	c := testCorpus(t)
	assertWords(t, Find(c, Clues{}, 200), "crane", "trace", "react", "cider")
}

func TestLimitTruncates(t *testing.T) {
	c := testCorpus(t)

	testCases := []struct {
		limit int
		want  []string
	}{
		{0, nil},
		{1, []string{"crane"}},
		{2, []string{"crane", "trace"}},
		{200, []string{"crane", "trace", "react", "cider"}},
		{-5, nil},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("limit=%d", tc.limit), func(t *testing.T) {
			assertWords(t, Find(c, Clues{}, tc.limit), tc.want...)
		})
	}
}

// the worked example: locked 'r' at index 1, 'a' present, 'i' absent.
// "react" fails the lock, "cider" has the absent 'i'.
func TestCombinedClues(t *testing.T) {
	c := testCorpus(t)
	clues := Clues{
		Locked:      map[int]byte{1: 'r'},
		Existent:    []byte{'a'},
		Nonexistent: []byte{'i'},
	}

	assertWords(t, Find(c, clues, 200), "crane", "trace")
	assertWords(t, Find(c, clues, 1), "crane")
}

func TestMatchChecks(t *testing.T) {
	testCases := []struct {
		name  string
		clues Clues
		word  string
		want  bool
	}{
		{"no clues", Clues{}, "crane", true},
		{"wrong length", Clues{}, "cranes", false},
		{"existent hit", Clues{Existent: []byte{'a'}}, "crane", true},
		{"existent miss", Clues{Existent: []byte{'z'}}, "crane", false},
		{"existent anywhere", Clues{Existent: []byte{'e'}}, "crane", true},
		{"nonexistent hit", Clues{Nonexistent: []byte{'c'}}, "crane", false},
		{"nonexistent miss", Clues{Nonexistent: []byte{'z'}}, "crane", true},
		{"locked match", Clues{Locked: map[int]byte{0: 'c'}}, "crane", true},
		{"locked mismatch", Clues{Locked: map[int]byte{0: 't'}}, "crane", false},
		{"locked last position", Clues{Locked: map[int]byte{4: 'e'}}, "crane", true},
		{"locked out of range", Clues{Locked: map[int]byte{7: 'c'}}, "crane", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.clues.Match(tc.word); got != tc.want {
				t.Errorf("Match(%q) = %v, want %v", tc.word, got, tc.want)
			}
		})
	}
}

// A letter locked into place and also marked nonexistent is
// contradictory. The nonexistent check counts the locked occurrence
// itself, so even a word carrying the letter only at the locked
// position must fail.
func TestLockedLetterCountsAsOccurrence(t *testing.T) {
	clues := Clues{
		Locked:      map[int]byte{0: 'r'},
		Nonexistent: []byte{'r'},
	}
	// 'r' appears only at the locked position 0
	if clues.Match("ratio") {
		t.Error("word with the letter only at the locked position must still fail the nonexistent check")
	}

	c := testCorpus(t)
	contradictory := Clues{
		Locked:      map[int]byte{1: 'r'},
		Nonexistent: []byte{'r'},
	}
	assertWords(t, Find(c, contradictory, 200))
}

// adding an absent letter can only shrink the result set
func TestNonexistentMonotonicity(t *testing.T) {
	c := testCorpus(t)
	base := Clues{Existent: []byte{'a'}}

	baseline := words(Find(c, base, 200))
	for letter := byte('a'); letter <= 'z'; letter++ {
		narrowed := words(Find(c, Clues{
			Existent:    base.Existent,
			Nonexistent: []byte{letter},
		}, 200))

		inBaseline := make(map[string]bool, len(baseline))
		for _, w := range baseline {
			inBaseline[w] = true
		}
		for _, w := range narrowed {
			if !inBaseline[w] {
				t.Fatalf("adding nonexistent %q introduced %q", letter, w)
			}
		}
		if len(narrowed) > len(baseline) {
			t.Fatalf("adding nonexistent %q grew the result set", letter)
		}
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	c := testCorpus(t)
	clues := Clues{Existent: []byte{'a'}, Nonexistent: []byte{'i'}}

	first := words(Find(c, clues, 200))
	second := words(Find(c, clues, 200))
	if len(first) != len(second) {
		t.Fatalf("runs differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs differ: %v vs %v", first, second)
		}
	}
}

// every returned word satisfies the clue set; every skipped word
// fails at least one check
func TestResultsPartitionCorpus(t *testing.T) {
	c := testCorpus(t)
	clues := Clues{
		Locked:      map[int]byte{1: 'r'},
		Existent:    []byte{'a'},
		Nonexistent: []byte{'i'},
	}

	returned := make(map[string]bool)
	for _, w := range Find(c, clues, 200) {
		if !clues.Match(w.Text) {
			t.Errorf("returned word %q does not satisfy the clues", w.Text)
		}
		returned[w.Text] = true
	}
	for _, w := range c.Words() {
		if !returned[w.Text] && clues.Match(w.Text) {
			t.Errorf("word %q matches but was not returned", w.Text)
		}
	}
}

// Next produces matches lazily and stops cleanly at the cap
func TestResultsNext(t *testing.T) {
	c := testCorpus(t)
	res := Run(c, Clues{Existent: []byte{'a'}}, 2)

	w, ok := res.Next()
	if !ok || w.Text != "crane" {
		t.Fatalf("first Next() = %q, %v; want crane, true", w.Text, ok)
	}
	w, ok = res.Next()
	if !ok || w.Text != "trace" {
		t.Fatalf("second Next() = %q, %v; want trace, true", w.Text, ok)
	}
	if _, ok := res.Next(); ok {
		t.Fatal("Next() past the limit should report false")
	}
	if _, ok := res.Next(); ok {
		t.Fatal("exhausted Results must stay exhausted")
	}
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	c := testCorpus(t)
	matches := Find(c, Clues{Existent: []byte{'z'}}, 200)
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %v", words(matches))
	}
}

func BenchmarkFind(b *testing.B) {
	entries := make([]corpus.Word, 0, 26*26)
	for a := byte('a'); a <= 'z'; a++ {
		for e := byte('a'); e <= 'z'; e++ {
			entries = append(entries, corpus.Word{
				Text: string([]byte{a, e, 'a', e, a}),
				Rank: float64(int(a)*26 + int(e)),
			})
		}
	}
	c, err := corpus.New(entries)
	if err != nil {
		b.Fatalf("building corpus: %v", err)
	}
	clues := Clues{
		Locked:      map[int]byte{2: 'a'},
		Existent:    []byte{'e'},
		Nonexistent: []byte{'q', 'x'},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(c, clues, 200)
	}
}
