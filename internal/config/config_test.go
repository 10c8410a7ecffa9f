package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORDLE_ROOT", "/srv/wordle")
	t.Setenv("WORDS_PATH", "data/words.json")
	t.Setenv("WORDS_SAVED_PATH", "data/words_saved.json")
	t.Setenv("WORDS_SNAPSHOT_DSN", "data/words.db")
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("EVALUATOR", "first_match")
	t.Setenv("DAILY_SALT", "pepper")

	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		LogLevel:     "debug",
		Root:         "/srv/wordle",
		WordsPath:    "data/words.json",
		SnapshotPath: "data/words_saved.json",
		SnapshotDSN:  "data/words.db",
		WordLength:   6,
		Evaluator:    "first_match",
		DailySalt:    "pepper",
	}, c)
}

func TestLoadRejectsBadLength(t *testing.T) {
	t.Setenv("WORD_LENGTH", "0")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("WORD_LENGTH", "five")
	_, err = config.Load()
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	c := config.Config{Root: "/srv/wordle"}
	assert.Equal(t, filepath.Join("/srv/wordle", "words.json"), c.Resolve("words.json"))
	assert.Equal(t, "/abs/words.json", c.Resolve("/abs/words.json"))
	assert.Equal(t, "", c.Resolve(""))
}
