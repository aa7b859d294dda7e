/*
Package main implements the wordhelper search server and CLI.

wordhelper narrows a ranked five-letter word list to the words
consistent with the clues gathered so far in a guessing game. Clues
come in three kinds: letters locked to a position, letters known to
be somewhere in the word, and letters known to be absent. The corpus
is stored in a SQLite database ranked by probability, with a
plain-text fallback, and results always come back highest-rank-first,
capped at a configurable maximum.

# Usage

Start the IPC server with default settings:

	wordhelper

Use a custom data directory and enable debug mode:

	wordhelper -data /path/to/data -d

Run the interactive CLI:

	wordhelper -c

The data directory holds words.sqlite (a words(word, probability)
table) or words.txt ("word rank" lines), plus the optional
starting_words.txt and instructions.txt shown by the CLI.

# Configuration

Runtime configuration lives in a TOML file that is created with
defaults when missing:

	[search]
	max_results = 200

	[corpus]
	db_path = "words.sqlite"
	words_file = "words.txt"

	[cli]
	starting_words = "starting_words.txt"
	instructions = "instructions.txt"

# IPC Protocol

Server mode speaks msgpack over stdin/stdout. A request carries the
clue snapshot and the response carries the qualifying words with
timing information:

	{"id": "req1", "k": {"1": "r"}, "e": "a", "n": "i", "l": 200}
	{"id": "req1", "s": [{"w": "crane", "r": 90}], "c": 1, "t": 41}

See the server package for the full message reference.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kpech/wordhelper/internal/cli"
	"github.com/kpech/wordhelper/internal/utils"
	"github.com/kpech/wordhelper/pkg/config"
	"github.com/kpech/wordhelper/pkg/corpus"
	"github.com/kpech/wordhelper/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "wordhelper"
	gh      = "https://github.com/kpech/wordhelper"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config and the corpus together, then hands off
// to either the CLI loop or the IPC server.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "data/", "Directory containing the corpus files")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI instead of the IPC server")
	limit := flag.Int("limit", 0, "Maximum number of results per search (0 = config value)")
	configPathFlag := flag.String("config", "", "Path to a custom config.toml")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	if *limit > 0 {
		appConfig.Search.MaxResults = *limit
	}

	resolvedDataDir, err := pathResolver.GetDataDir(*dataDir)
	if err != nil {
		log.Fatalf("Failed to resolve data dir: (%v)", err)
	}
	log.Debugf("Using data dir at: %s", resolvedDataDir)

	words, err := loadCorpus(appConfig, resolvedDataDir)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Debugf("Corpus ready: %d words", words.Len())

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(words, appConfig, resolvedDataDir)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(words, appConfig)
	showStartupInfo(resolvedDataDir, words.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadCorpus opens the SQLite corpus when present, otherwise the
// plain-text list. A missing corpus is fatal: the engine is useless
// without one.
func loadCorpus(cfg *config.Config, dataDir string) (*corpus.Corpus, error) {
	dbPath := filepath.Join(dataDir, cfg.Corpus.DBPath)
	if utils.FileExists(dbPath) {
		return corpus.OpenSQLite(dbPath)
	}

	textPath := filepath.Join(dataDir, cfg.Corpus.WordsFile)
	if utils.FileExists(textPath) {
		return corpus.LoadFile(textPath)
	}

	return nil, fmt.Errorf("no corpus found in %s (looked for %s and %s)",
		dataDir, cfg.Corpus.DBPath, cfg.Corpus.WordsFile)
}

// printVersion shows a styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordhelper ] Narrows the word list while you play!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" wordhelper ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("corpus: %d words", wordCount)
	log.Infof("data dir: ( %s )", dataDir)
	log.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
