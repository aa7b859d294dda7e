package corpus

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadSortsByRankDescending(t *testing.T) {
	src := strings.NewReader(`
cider 10
crane 90
react 80
trace 85
`)
	c, err := Load(src, "test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"crane", "trace", "react", "cider"}
	got := c.Words()
	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(got))
	}
	for i, w := range got {
		if w.Text != want[i] {
			t.Errorf("position %d: got %q, want %q", i, w.Text, want[i])
		}
	}
}

// ties keep their insertion order
func TestLoadStableOnEqualRanks(t *testing.T) {
	src := strings.NewReader("zebra 50\napple 50\nmango 50\n")
	c, err := Load(src, "test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"zebra", "apple", "mango"}
	for i, w := range c.Words() {
		if w.Text != want[i] {
			t.Errorf("position %d: got %q, want %q", i, w.Text, want[i])
		}
	}
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	src := strings.NewReader("# best words first\n\ncrane 90\n\n# tail\ncider 10\n")
	c, err := Load(src, "test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 words, got %d", c.Len())
	}
}

func TestLoadUppercaseIsNormalized(t *testing.T) {
	c, err := Load(strings.NewReader("CRANE 90\n"), "test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Words()[0].Text != "crane" {
		t.Errorf("expected lowercased word, got %q", c.Words()[0].Text)
	}
}

func TestLoadRejectsMalformedSources(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"word too short", "care 90\n"},
		{"word too long", "cranes 90\n"},
		{"non-letter in word", "cran3 90\n"},
		{"missing rank", "crane\n"},
		{"extra field", "crane 90 extra\n"},
		{"non-numeric rank", "crane high\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.src), "test")
			if err == nil {
				t.Fatal("expected a load error")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error %v does not wrap ErrMalformed", err)
			}
		})
	}
}

func TestNewValidatesEntries(t *testing.T) {
	if _, err := New([]Word{{Text: "toolong", Rank: 1}}); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed for a bad entry, got %v", err)
	}
}

// a fresh Iterate always restarts from the top
func TestIterateRestartable(t *testing.T) {
	c, err := New([]Word{
		{Text: "crane", Rank: 90},
		{Text: "cider", Rank: 10},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for round := 0; round < 2; round++ {
		it := c.Iterate()
		w, ok := it.Next()
		if !ok || w.Text != "crane" {
			t.Fatalf("round %d: first word = %q, %v", round, w.Text, ok)
		}
		w, ok = it.Next()
		if !ok || w.Text != "cider" {
			t.Fatalf("round %d: second word = %q, %v", round, w.Text, ok)
		}
		if _, ok := it.Next(); ok {
			t.Fatalf("round %d: iterator did not stop", round)
		}
	}
}

// Words hands out a copy, never the backing slice
func TestWordsReturnsCopy(t *testing.T) {
	c, err := New([]Word{{Text: "crane", Rank: 90}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	snapshot := c.Words()
	snapshot[0].Text = "mangled"
	if c.Words()[0].Text != "crane" {
		t.Error("mutating the returned slice changed the corpus")
	}
}

func TestLoadEmptySource(t *testing.T) {
	c, err := Load(strings.NewReader(""), "test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected an empty corpus, got %d words", c.Len())
	}
	if _, ok := c.Iterate().Next(); ok {
		t.Error("empty corpus iterator produced a word")
	}
}
