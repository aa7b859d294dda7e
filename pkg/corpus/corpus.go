/*
Package corpus loads and exposes the ranked five-letter word list.

A corpus is read-only after load: every query iterates the same
rank-descending order, with ties kept in insertion order. Loading is
idempotent per source, so a reload always yields an equivalent corpus.
*/
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// WordLength is the only word length the helper understands.
const WordLength = 5

// ErrMalformed marks corpus sources that cannot be parsed into valid
// (word, rank) rows. Load errors wrap it together with the offending
// row so callers can report the exact location.
var ErrMalformed = errors.New("malformed corpus source")

// Word is a single ranked dictionary entry. Text is always exactly
// five lowercase letters.
type Word struct {
	Text string
	Rank float64
}

// Corpus is the full ranked word list, sorted descending by rank.
type Corpus struct {
	words []Word
}

// Len returns the number of words in the corpus.
func (c *Corpus) Len() int {
	return len(c.words)
}

// Words returns a copy of the ranked list, highest rank first.
func (c *Corpus) Words() []Word {
	out := make([]Word, len(c.words))
	copy(out, c.words)
	return out
}

// Iterator walks the corpus highest-rank-first. A fresh Iterate call
// always restarts from the top.
type Iterator struct {
	words []Word
	pos   int
}

// Iterate returns a new rank-descending iterator over the corpus.
func (c *Corpus) Iterate() *Iterator {
	return &Iterator{words: c.words}
}

// Next returns the next word in rank order. The second return value
// is false once the corpus is exhausted.
func (it *Iterator) Next() (Word, bool) {
	if it.pos >= len(it.words) {
		return Word{}, false
	}
	w := it.words[it.pos]
	it.pos++
	return w, true
}

// New builds a corpus from already-parsed entries. Entries are
// validated like any other source and stably sorted by rank, so
// callers may pass them in any order.
func New(entries []Word) (*Corpus, error) {
	c := &Corpus{words: make([]Word, 0, len(entries))}
	for i, e := range entries {
		text, err := normalizeWord(e.Text)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		c.words = append(c.words, Word{Text: text, Rank: e.Rank})
	}
	c.seal()
	return c, nil
}

// LoadFile reads a plain-text corpus of "word rank" lines.
func LoadFile(path string) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer file.Close()
	return Load(file, path)
}

// Load parses a plain-text corpus from r. Each non-empty line holds a
// word and its numeric rank separated by whitespace; lines starting
// with '#' are skipped. Any malformed line aborts the load.
func Load(r io.Reader, source string) (*Corpus, error) {
	c := &Corpus{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected \"word rank\", got %q: %w",
				source, lineNo, line, ErrMalformed)
		}

		text, err := normalizeWord(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, lineNo, err)
		}

		rank, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: rank %q is not numeric: %w",
				source, lineNo, fields[1], ErrMalformed)
		}

		c.words = append(c.words, Word{Text: text, Rank: rank})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", source, err)
	}

	c.seal()
	log.Debugf("Loaded %d words from %s", len(c.words), source)
	return c, nil
}

// seal fixes the final iteration order: descending rank, insertion
// order on ties.
func (c *Corpus) seal() {
	sort.SliceStable(c.words, func(i, j int) bool {
		return c.words[i].Rank > c.words[j].Rank
	})
}

// normalizeWord lowercases a candidate entry and rejects anything
// that is not exactly five letters a-z.
func normalizeWord(s string) (string, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) != WordLength {
		return "", fmt.Errorf("word %q is not %d letters: %w", s, WordLength, ErrMalformed)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", fmt.Errorf("word %q contains non-letter %q: %w", s, w[i], ErrMalformed)
		}
	}
	return w, nil
}
