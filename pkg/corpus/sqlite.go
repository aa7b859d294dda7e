package corpus

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite loads the corpus from a SQLite database holding a
// words(word TEXT, probability REAL) table. Rows are pulled in
// probability-descending order and validated like any other source.
func OpenSQLite(path string) (*Corpus, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open corpus db %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word, probability FROM words ORDER BY probability DESC`)
	if err != nil {
		return nil, fmt.Errorf("query corpus db %s: %w", path, err)
	}
	defer rows.Close()

	c := &Corpus{}
	rowNo := 0
	for rows.Next() {
		rowNo++
		var text string
		var rank float64
		if err := rows.Scan(&text, &rank); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, rowNo, err)
		}
		word, err := normalizeWord(text)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, rowNo, err)
		}
		c.words = append(c.words, Word{Text: word, Rank: rank})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corpus db %s: %w", path, err)
	}

	c.seal()
	log.Debugf("Loaded %d words from %s", len(c.words), path)
	return c, nil
}
