// Package cli implements the interactive clue-entry loop for playing
// along with a game in a terminal.
package cli

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kpech/wordhelper/pkg/config"
	"github.com/kpech/wordhelper/pkg/corpus"
	"github.com/kpech/wordhelper/pkg/keyboard"
	"github.com/kpech/wordhelper/pkg/search"
)

// InputHandler drives one helper session: it accumulates locked
// letters and keyboard classifications from typed commands and runs
// searches on demand.
type InputHandler struct {
	corpus   *corpus.Corpus
	keyboard *keyboard.State
	locked   map[int]byte
	cfg      *config.Config
	dataDir  string
}

// NewInputHandler initializes a session over a loaded corpus.
func NewInputHandler(c *corpus.Corpus, cfg *config.Config, dataDir string) *InputHandler {
	return &InputHandler{
		corpus:   c,
		keyboard: keyboard.New(),
		locked:   make(map[int]byte),
		cfg:      cfg,
		dataDir:  dataDir,
	}
}

// Start begins the interface loop. It shows the starting-word list,
// then reads commands until stdin closes or the user quits.
func (h *InputHandler) Start() error {
	log.Print("wordhelper CLI")
	log.Print("type 'help' for commands (Ctrl+C to exit):")
	h.showStartingWords()

	reader := bufio.NewReader(os.Stdin)
	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !h.handleCommand(line) {
			return nil
		}
	}
}

// handleCommand dispatches one typed command. It returns false when
// the session should end.
func (h *InputHandler) handleCommand(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	switch fields[0] {
	case "lock":
		h.handleLock(fields[1:])
	case "unlock":
		h.handleUnlock(fields[1:])
	case "mark":
		h.handleMark(fields[1:])
	case "state":
		h.showState()
	case "search":
		h.runSearch()
	case "reset":
		h.reset()
	case "help":
		h.showInstructions()
	case "quit", "exit":
		return false
	default:
		log.Errorf("Unknown command: %s (try 'help')", fields[0])
	}
	return true
}

// handleLock pins a letter to a word position, replacing whatever
// was locked there before.
func (h *InputHandler) handleLock(args []string) {
	if len(args) != 2 {
		log.Error("Usage: lock <pos 1-5> <letter>")
		return
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 1 || pos > corpus.WordLength {
		log.Errorf("Position must be 1-%d, got %q", corpus.WordLength, args[0])
		return
	}
	letter := args[1]
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		log.Errorf("Expected a single letter, got %q", letter)
		return
	}
	h.locked[pos-1] = letter[0]
	log.Printf("Locked position %d to '%c'", pos, letter[0])
}

func (h *InputHandler) handleUnlock(args []string) {
	if len(args) != 1 {
		log.Error("Usage: unlock <pos 1-5>")
		return
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 1 || pos > corpus.WordLength {
		log.Errorf("Position must be 1-%d, got %q", corpus.WordLength, args[0])
		return
	}
	delete(h.locked, pos-1)
	log.Printf("Unlocked position %d", pos)
}

// handleMark advances a letter one step around the classification
// cycle, the same action as tapping it on the app keyboard.
func (h *InputHandler) handleMark(args []string) {
	if len(args) != 1 || len(args[0]) != 1 {
		log.Error("Usage: mark <letter>")
		return
	}
	letter := args[0][0]
	if letter < 'a' || letter > 'z' {
		log.Errorf("Expected a letter a-z, got %q", args[0])
		return
	}
	state := h.keyboard.Advance(letter)
	log.Printf("'%c' is now %s", letter, state)
}

// showState prints the locked letters and classified sets.
func (h *InputHandler) showState() {
	pattern := make([]byte, corpus.WordLength)
	for i := range pattern {
		pattern[i] = '_'
	}
	for pos, letter := range h.locked {
		pattern[pos] = letter
	}
	log.Printf("locked:  %s", string(pattern))
	log.Printf("present: %s", string(h.keyboard.Existent()))
	log.Printf("absent:  %s", string(h.keyboard.Nonexistent()))
}

// runSearch streams the corpus through the current clue set and
// prints whatever qualifies.
func (h *InputHandler) runSearch() {
	clues := search.FromKeyboard(h.locked, h.keyboard)

	start := time.Now()
	matches := search.Find(h.corpus, clues, h.cfg.Search.MaxResults)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for %d candidates", elapsed, h.corpus.Len())

	if len(matches) == 0 {
		log.Warn("No words match the current clues")
		return
	}

	log.Printf("Found %d matching words:", len(matches))
	printWords(matches, h.cfg.CLI.Color)
}

// reset clears every clue and shows the starting words again.
func (h *InputHandler) reset() {
	h.locked = make(map[int]byte)
	h.keyboard.Reset()
	log.Print("Cleared all clues")
	h.showStartingWords()
}
