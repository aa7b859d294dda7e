package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kpech/wordhelper/internal/logger"

	"github.com/kpech/wordhelper/pkg/config"
	"github.com/kpech/wordhelper/pkg/corpus"
	"github.com/kpech/wordhelper/pkg/search"
)

// Server answers clue-set search requests over stdin/stdout.
type Server struct {
	corpus  *corpus.Corpus
	config  *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a search server bound to stdin/stdout.
func NewServer(c *corpus.Corpus, cfg *config.Config) *Server {
	return &Server{
		corpus:  c,
		config:  cfg,
		decoder: msgpack.NewDecoder(os.Stdin),
		encoder: msgpack.NewEncoder(os.Stdout),
		log:     logger.New("ipc"),
	}
}

// Start runs the request loop until the client closes stdin.
func (s *Server) Start() error {
	s.log.Debug("Starting IPC server.")

	for {
		var request SearchRequest
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client disconnected (EOF)")
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			continue
		}
		s.handleSearch(request)
	}
}

// handleSearch validates one request, runs the filter and replies.
func (s *Server) handleSearch(request SearchRequest) {
	clues, err := decodeClues(request)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		s.log.Debugf("Rejected request %s: %v", request.ID, err)
		return
	}

	limit := request.Limit
	if limit <= 0 {
		limit = s.config.Search.MaxResults
	}
	if limit <= 0 {
		limit = search.DefaultLimit
	}

	start := time.Now()
	matches := search.Find(s.corpus, clues, limit)
	elapsed := time.Since(start)

	response := SearchResponse{
		ID:        request.ID,
		Matches:   make([]SearchMatch, len(matches)),
		Count:     len(matches),
		TimeTaken: elapsed.Microseconds(),
	}
	for i, w := range matches {
		response.Matches[i] = SearchMatch{Word: w.Text, Rank: w.Rank}
	}
	s.sendResponse(response)
}

// decodeClues turns the wire request into an engine clue set.
func decodeClues(request SearchRequest) (search.Clues, error) {
	clues := search.Clues{}

	if len(request.Locked) > 0 {
		clues.Locked = make(map[int]byte, len(request.Locked))
		for posStr, letter := range request.Locked {
			pos, err := strconv.Atoi(posStr)
			if err != nil {
				return clues, fmt.Errorf("locked position %q is not a number", posStr)
			}
			if pos < 0 || pos >= corpus.WordLength {
				return clues, fmt.Errorf("position %d out of range", pos)
			}
			if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
				return clues, fmt.Errorf("locked letter %q is not a lowercase letter", letter)
			}
			clues.Locked[pos] = letter[0]
		}
	}

	var err error
	if clues.Existent, err = decodeLetters(request.Existent); err != nil {
		return clues, fmt.Errorf("existent: %w", err)
	}
	if clues.Nonexistent, err = decodeLetters(request.Nonexistent); err != nil {
		return clues, fmt.Errorf("nonexistent: %w", err)
	}
	return clues, nil
}

func decodeLetters(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	letters := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return nil, fmt.Errorf("%q is not a lowercase letter", s[i])
		}
		letters[i] = s[i]
	}
	return letters, nil
}

// sendResponse encodes a reply onto stdout.
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error reply.
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(SearchError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
