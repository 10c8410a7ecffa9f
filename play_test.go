package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

func TestPlay(t *testing.T) {
	st := words.New(map[string]uint{"crane": 1, "crate": 1, "cat": 1})
	b, err := game.NewWithWord(st, "crane")
	require.NoError(t, err)

	in := strings.NewReader("CRATE\n\nzzzzz\ncat\ncrane\ncrate\n")
	var out bytes.Buffer
	require.NoError(t, play(b, in, &out))

	var lines []feedback
	dec := json.NewDecoder(&out)
	for dec.More() {
		var fb feedback
		require.NoError(t, dec.Decode(&fb))
		lines = append(lines, fb)
	}
	require.Len(t, lines, 4, "stops after the winning guess")

	assert.Equal(t, "crate", lines[0].Guess)
	assert.Equal(t, []game.CharacterState{
		game.StateCorrect, game.StateCorrect, game.StateCorrect, game.StateNotFound, game.StateCorrect,
	}, lines[0].States)
	assert.Contains(t, lines[1].Error, "not found")
	assert.Contains(t, lines[2].Error, "wrong size")
	assert.True(t, lines[3].Won)
	assert.Equal(t, []string{"crate", "crane"}, b.Guesses())
}
