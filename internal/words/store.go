// internal/words/store.go
//
// WordStore: the dictionary of valid words and their usage weights.
//
// Responsibilities:
//   - Case-insensitive membership tests (keys are stored lowercase).
//   - Random and daily selection of a word filtered by length.
//   - Controlled insertion, so an active secret word is always guessable.
//
// Concurrency:
//   - Guarded by an RWMutex, so several boards may share one Store.
//     Reads run concurrently; Insert is exclusive.
package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-engine/internal/daily"
)

// ErrNoCandidate is returned when no word of the requested length exists.
var ErrNoCandidate = errors.New("words: no word of requested length")

// Store maps lowercase words to usage weights.
type Store struct {
	mu      sync.RWMutex
	entries map[string]uint
}

// New builds a Store from entries. Keys are normalized to lowercase and
// empty keys are dropped.
func New(entries map[string]uint) *Store {
	s := &Store{entries: make(map[string]uint, len(entries))}
	for w, weight := range entries {
		if w = normalize(w); w != "" {
			s.entries[w] = weight
		}
	}
	return s
}

// Contains reports whether w is a dictionary word, ignoring case.
func (s *Store) Contains(w string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[normalize(w)]
	return ok
}

// Weight returns the usage weight of w.
func (s *Store) Weight(w string) (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	weight, ok := s.entries[normalize(w)]
	return weight, ok
}

// Insert adds or overwrites an entry. Empty words are ignored.
func (s *Store) Insert(w string, weight uint) {
	w = normalize(w)
	if w == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[w] = weight
}

// Len returns the number of words in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// CountByLength returns how many words have exactly n characters.
func (s *Store) CountByLength(n int) int {
	return len(s.candidates(n))
}

// Entries returns a copy of the full mapping.
func (s *Store) Entries() map[string]uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]uint, len(s.entries))
	for w, weight := range s.entries {
		out[w] = weight
	}
	return out
}

// RandomWord picks a word of n characters uniformly at random.
// The index is drawn from [0, candidates), never from [0, n).
func (s *Store) RandomWord(n int) (string, error) {
	cands := s.candidates(n)
	if len(cands) == 0 {
		return "", fmt.Errorf("%w: %d", ErrNoCandidate, n)
	}
	i, err := rand.Int(rand.Reader, big.NewInt(int64(len(cands))))
	if err != nil {
		return "", fmt.Errorf("words: random index: %w", err)
	}
	return cands[i.Int64()], nil
}

// DailyWord picks the word of n characters for the given date. The same
// (date, salt, dictionary) always yields the same word.
func (s *Store) DailyWord(date time.Time, salt string, n int) (string, error) {
	w, ok := daily.Pick(date, salt, s.candidates(n))
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrNoCandidate, n)
	}
	return w, nil
}

// candidates returns the sorted words of n characters.
func (s *Store) candidates(n int) []string {
	if n <= 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for w := range s.entries {
		if utf8.RuneCountInString(w) == n {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
