// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - CharacterState: per-letter result of a guess.
//   - BoardStateCharacter / BoardState: feedback derived from a board.
//   - Winner: the win predicate shared by Board and BoardState.

package game

import "errors"

// CharacterState is the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":        letter is in the secret word at this position.
//   - "wrong_position": letter is in the secret word elsewhere.
//   - "not_found":      letter is not in the secret word.
//
// The zero value means "not evaluated".
type CharacterState string

const (
	StateCorrect       CharacterState = "correct"
	StateWrongPosition CharacterState = "wrong_position"
	StateNotFound      CharacterState = "not_found"
)

// stateRank is a display order only. Game logic never consults it.
var stateRank = map[CharacterState]int{
	StateCorrect:       1,
	StateWrongPosition: 2,
	StateNotFound:      3,
}

// CompareStates orders states deterministically for sorting and dedup.
// Unevaluated sorts first. Returns -1, 0 or +1.
func CompareStates(a, b CharacterState) int {
	ra, rb := stateRank[a], stateRank[b]
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}
	return 0
}

// BoardStateCharacter pairs a guessed character with its state.
type BoardStateCharacter struct {
	Char  rune           `json:"char"`
	State CharacterState `json:"state,omitempty"`
}

// Evaluated reports whether the character carries a state.
func (c BoardStateCharacter) Evaluated() bool { return c.State != "" }

// BoardState holds one row per guess, in guess order.
type BoardState [][]BoardStateCharacter

// Winner is satisfied by anything that can tell whether the game is won.
type Winner interface {
	HasWon() bool
}

// HasWon reports whether any row is entirely Correct.
func (s BoardState) HasWon() bool {
	for _, row := range s {
		if len(row) > 0 && allCorrect(row) {
			return true
		}
	}
	return false
}

func allCorrect(row []BoardStateCharacter) bool {
	for _, c := range row {
		if c.State != StateCorrect {
			return false
		}
	}
	return true
}

// Guess errors. The board is unchanged when either is returned.
var (
	ErrWrongSize = errors.New("wrong size")
	ErrNotFound  = errors.New("not found")
)
