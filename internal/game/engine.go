// internal/game/engine.go
//
// Board: the state of a single Wordle game.
// Responsibilities:
//   - Hold the secret word and the ordered, append-only list of guesses.
//   - Validate guesses (length, dictionary membership) before recording them.
//   - Derive feedback, key hints and the win flag on demand; nothing is cached.
//   - Re-roll the secret word on reset.
//
// Notes:
//   - The word store is shared by reference. Every secret word is inserted
//     into it so the secret is always a legal guess.
//   - A Board is not safe for concurrent use; the Store it points to is.
package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// secretWeight is the weight recorded when a secret word is registered.
const secretWeight = 1

// Board holds the secret word, the guesses so far and the shared store.
type Board struct {
	id       string
	word     string
	guesses  []string
	store    *words.Store
	evaluate Evaluator
}

// Option configures a Board.
type Option func(*Board)

// WithEvaluator selects the evaluation policy. Defaults to Standard.
func WithEvaluator(e Evaluator) Option {
	return func(b *Board) {
		if e != nil {
			b.evaluate = e
		}
	}
}

func newBoard(store *words.Store, opts []Option) *Board {
	b := &Board{id: uuid.NewString(), store: store, evaluate: Standard}
	for _, o := range opts {
		o(b)
	}
	return b
}

// New creates a board with a random secret word of length characters.
func New(store *words.Store, length int, opts ...Option) (*Board, error) {
	b := newBoard(store, opts)
	if err := b.ResetWithLength(length); err != nil {
		return nil, err
	}
	return b, nil
}

// NewWithWord creates a board with an explicit secret word.
func NewWithWord(store *words.Store, word string, opts ...Option) (*Board, error) {
	b := newBoard(store, opts)
	if err := b.ResetWithWord(word); err != nil {
		return nil, err
	}
	return b, nil
}

// NewDaily creates a board whose secret is the store's word of the day.
func NewDaily(store *words.Store, date time.Time, salt string, length int, opts ...Option) (*Board, error) {
	w, err := store.DailyWord(date, salt, length)
	if err != nil {
		return nil, err
	}
	return NewWithWord(store, w, opts...)
}

// ID returns the board identifier.
func (b *Board) ID() string { return b.id }

// Word returns the secret word.
func (b *Board) Word() string { return b.word }

// Len returns the secret word length in characters.
func (b *Board) Len() int { return utf8.RuneCountInString(b.word) }

// Guesses returns a copy of the accepted guesses in order.
func (b *Board) Guesses() []string {
	return append([]string(nil), b.guesses...)
}

// Reset picks a new secret word of the current length and clears guesses.
func (b *Board) Reset() error {
	return b.ResetWithLength(b.Len())
}

// ResetWithLength picks a new secret word of length characters and clears
// guesses. On error the board is unchanged.
func (b *Board) ResetWithLength(length int) error {
	w, err := b.store.RandomWord(length)
	if err != nil {
		return err
	}
	return b.ResetWithWord(w)
}

// ResetWithWord installs word as the secret, registers it in the store and
// clears guesses.
func (b *Board) ResetWithWord(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return errors.New("game: empty secret word")
	}
	b.store.Insert(word, secretWeight)
	b.word = word
	b.guesses = b.guesses[:0]
	log.Debug().Str("board", b.id).Int("length", b.Len()).Msg("board reset")
	return nil
}

// AddGuess records input after normalizing it to lowercase.
// Membership is checked before length, so an unknown word is always
// ErrNotFound. Either error leaves the board untouched.
func (b *Board) AddGuess(input string) error {
	guess := strings.ToLower(strings.TrimSpace(input))
	if !b.store.Contains(guess) {
		return fmt.Errorf("%w: %q", ErrNotFound, guess)
	}
	if n := utf8.RuneCountInString(guess); n != b.Len() {
		return fmt.Errorf("%w: %q has %d letters, want %d", ErrWrongSize, guess, n, b.Len())
	}
	b.guesses = append(b.guesses, guess)
	return nil
}

// State derives the feedback for every guess.
func (b *Board) State() BoardState {
	out := make(BoardState, 0, len(b.guesses))
	for _, g := range b.guesses {
		out = append(out, b.row(g))
	}
	return out
}

func (b *Board) row(guess string) []BoardStateCharacter {
	states := b.evaluate(b.word, guess)
	row := make([]BoardStateCharacter, 0, len(states))
	for i, c := range []rune(guess) {
		row = append(row, BoardStateCharacter{Char: c, State: states[i]})
	}
	return row
}

// HasWon reports whether any guess equals the secret word.
func (b *Board) HasWon() bool {
	for _, g := range b.guesses {
		if g == b.word {
			return true
		}
	}
	return false
}

// KeyState aggregates the best known state of a letter across all guesses,
// for keyboard hints. Correct is returned on first sight. NotFound only counts
// when no guess ever placed the letter: under Standard it also marks surplus
// copies of a letter the secret does contain. ok is false when the letter was
// never guessed.
func (b *Board) KeyState(letter rune) (state CharacterState, ok bool) {
	letter = unicode.ToLower(letter)
	var seenWrongPosition, seenNotFound bool
	for _, row := range b.State() {
		for _, c := range row {
			if c.Char != letter {
				continue
			}
			switch c.State {
			case StateCorrect:
				return StateCorrect, true
			case StateWrongPosition:
				seenWrongPosition = true
			case StateNotFound:
				seenNotFound = true
			}
		}
	}
	switch {
	case seenWrongPosition:
		return StateWrongPosition, true
	case seenNotFound:
		return StateNotFound, true
	}
	return "", false
}
