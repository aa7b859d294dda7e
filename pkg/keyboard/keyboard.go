/*
Package keyboard tracks what the player knows about each letter.

Every letter of the alphabet is in exactly one of three states:
Unknown (nothing learned yet), Present (the letter is somewhere in
the target word) or Absent (the letter is nowhere in it). A letter
advances through the states in a fixed cycle, one step per event,
mirroring the keyboard toggle in the app's UI.
*/
package keyboard

import "sync"

// Classification is the per-letter knowledge state.
type Classification int

const (
	Unknown Classification = iota
	Present
	Absent
)

// String returns the state name for logs and CLI output.
func (c Classification) String() string {
	switch c {
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}

const alphabet = 26

// State holds the classification of all 26 letters. The zero value
// is not usable; call New. A single mutex guards mutation so a
// multi-threaded host can share one State, and the derived letter
// sets are snapshots rather than live views.
type State struct {
	mu      sync.Mutex
	letters [alphabet]Classification
}

// New returns a State with every letter Unknown.
func New() *State {
	return &State{}
}

// Advance cycles one letter to its next state
// (unknown -> present -> absent -> unknown) and returns the new
// state. Input outside a-z is ignored and reports Unknown.
func (s *State) Advance(letter byte) Classification {
	idx, ok := index(letter)
	if !ok {
		return Unknown
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := (s.letters[idx] + 1) % 3
	s.letters[idx] = next
	return next
}

// Classify reports the current state of a letter. Input outside a-z
// reports Unknown.
func (s *State) Classify(letter byte) Classification {
	idx, ok := index(letter)
	if !ok {
		return Unknown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.letters[idx]
}

// Existent returns all letters currently classified Present, in
// alphabetical order.
func (s *State) Existent() []byte {
	return s.collect(Present)
}

// Nonexistent returns all letters currently classified Absent, in
// alphabetical order.
func (s *State) Nonexistent() []byte {
	return s.collect(Absent)
}

// Reset puts every letter back to Unknown.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.letters = [alphabet]Classification{}
}

func (s *State) collect(want Classification) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []byte
	for i, c := range s.letters {
		if c == want {
			out = append(out, byte('a'+i))
		}
	}
	return out
}

func index(letter byte) (int, bool) {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return int(letter - 'a'), true
}
