// internal/game/evaluate.go
//
// Guess evaluation policies.
//
//   - Standard:   the classic two-pass Wordle algorithm. Exact matches first,
//                 then presents consume the remaining secret letters.
//   - FirstMatch: scans the secret left to right and uses the first index
//                 holding the guessed letter. Letters are never consumed, so a
//                 repeated guess letter can be reported as present more often
//                 than the secret contains it, and a letter that also occurs
//                 earlier in the secret is reported as WrongPosition even at
//                 its exact position.
//
// Both operate on runes and expect len(secret) == len(guess) in runes.
package game

import "fmt"

// Evaluator maps (secret, guess) to one state per guess character.
type Evaluator func(secret, guess string) []CharacterState

// Standard implements two-pass scoring with duplicate-letter accounting.
func Standard(secret, guess string) []CharacterState {
	s, g := []rune(secret), []rune(guess)
	res := make([]CharacterState, len(g))

	// Pass 1: exact matches; count unmatched secret letters.
	remaining := make(map[rune]int, len(s))
	for i := range g {
		if i < len(s) && g[i] == s[i] {
			res[i] = StateCorrect
		} else if i < len(s) {
			remaining[s[i]]++
		}
	}

	// Pass 2: presents consume remaining letters.
	for i := range g {
		if res[i] == StateCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = StateWrongPosition
			remaining[g[i]]--
		} else {
			res[i] = StateNotFound
		}
	}
	return res
}

// FirstMatch decides each character from the first secret index holding it.
func FirstMatch(secret, guess string) []CharacterState {
	s := []rune(secret)
	g := []rune(guess)
	res := make([]CharacterState, len(g))
	for i, c := range g {
		res[i] = StateNotFound
		for j, sc := range s {
			if sc != c {
				continue
			}
			if j == i {
				res[i] = StateCorrect
			} else {
				res[i] = StateWrongPosition
			}
			break
		}
	}
	return res
}

// ParseEvaluator resolves a policy name: "standard" or "first_match".
func ParseEvaluator(name string) (Evaluator, error) {
	switch name {
	case "", "standard":
		return Standard, nil
	case "first_match":
		return FirstMatch, nil
	}
	return nil, fmt.Errorf("game: unknown evaluator %q", name)
}
