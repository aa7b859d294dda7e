package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kpech/wordhelper/internal/utils"
	"github.com/kpech/wordhelper/pkg/corpus"
)

// printWords renders a ranked result list, one word per line.
func printWords(words []corpus.Word, color bool) {
	for i, w := range words {
		text := w.Text
		if color {
			text = fmt.Sprintf("\033[38;5;75m%s\033[0m", text)
		}
		log.Printf("%3d. %-14s (rank: %10s)", i+1, text, utils.FormatRank(w.Rank))
	}
}

// showStartingWords displays the recommended opening guesses. The
// list is one whitespace-separated line in a plain-text file; a
// missing file just skips the display.
func (h *InputHandler) showStartingWords() {
	path := filepath.Join(h.dataDir, h.cfg.CLI.StartingWords)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("No starting words file at %s: %v", path, err)
		return
	}

	words := strings.Fields(strings.ToLower(string(data)))
	if len(words) == 0 {
		return
	}
	log.Print("Best starting words:")
	for _, w := range words {
		log.Printf("  %s", w)
	}
}

// showInstructions prints the instructions file verbatim, falling
// back to a builtin command summary when the file is absent.
func (h *InputHandler) showInstructions() {
	path := filepath.Join(h.dataDir, h.cfg.CLI.Instructions)
	data, err := os.ReadFile(path)
	if err == nil {
		log.Print(strings.TrimRight(string(data), "\n"))
		return
	}
	log.Debugf("No instructions file at %s: %v", path, err)

	log.Print("Commands:")
	log.Print("  lock <pos 1-5> <letter>   pin a letter to a position")
	log.Print("  unlock <pos 1-5>          remove a pinned letter")
	log.Print("  mark <letter>             cycle a letter: unknown -> present -> absent")
	log.Print("  state                     show the current clues")
	log.Print("  search                    list words matching the clues")
	log.Print("  reset                     clear all clues")
	log.Print("  quit                      leave")
}
