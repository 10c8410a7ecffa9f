package words_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

func newStore() *words.Store {
	return words.New(map[string]uint{
		"Crane": 3,
		"slate": 1,
		"close": 1,
		"cat":   2,
		"":      9,
	})
}

func TestContainsIgnoresCase(t *testing.T) {
	s := newStore()
	assert.True(t, s.Contains("crane"))
	assert.True(t, s.Contains("CRANE"))
	assert.True(t, s.Contains("SlAtE"))
	assert.False(t, s.Contains("crate"))
}

func TestNewDropsEmptyKeys(t *testing.T) {
	s := newStore()
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Contains(""))
}

func TestInsertOverwrites(t *testing.T) {
	s := newStore()
	s.Insert("CRATE", 1)
	s.Insert("crane", 7)
	s.Insert("   ", 1)

	assert.True(t, s.Contains("crate"))
	w, ok := s.Weight("Crane")
	require.True(t, ok)
	assert.Equal(t, uint(7), w)
	assert.Equal(t, 5, s.Len())
}

func TestEntriesIsCopy(t *testing.T) {
	s := newStore()
	e := s.Entries()
	e["zebra"] = 1
	assert.False(t, s.Contains("zebra"))
	assert.Equal(t, uint(3), e["crane"])
}

func TestRandomWordFiltersByLength(t *testing.T) {
	s := newStore()
	// Three 5-letter candidates: fewer than the requested length.
	want := map[string]bool{"crane": true, "slate": true, "close": true}
	for i := 0; i < 100; i++ {
		w, err := s.RandomWord(5)
		require.NoError(t, err)
		assert.True(t, want[w], "unexpected word %q", w)
	}

	w, err := s.RandomWord(3)
	require.NoError(t, err)
	assert.Equal(t, "cat", w)
	assert.Equal(t, 3, s.CountByLength(5))
}

func TestRandomWordNoCandidate(t *testing.T) {
	s := newStore()
	for _, n := range []int{0, -1, 4, 12} {
		_, err := s.RandomWord(n)
		assert.ErrorIs(t, err, words.ErrNoCandidate, "length %d", n)
	}
}

func TestDailyWordDeterministic(t *testing.T) {
	s := newStore()
	day := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)

	a, err := s.DailyWord(day, "salt", 5)
	require.NoError(t, err)
	b, err := s.DailyWord(day.Add(30*time.Minute), "salt", 5)
	require.NoError(t, err)
	assert.Contains(t, []string{"close", "crane", "slate"}, a)
	assert.Equal(t, a, b)

	again, err := s.DailyWord(day, "salt", 5)
	require.NoError(t, err)
	assert.Equal(t, a, again)

	_, err = s.DailyWord(day, "salt", 9)
	assert.ErrorIs(t, err, words.ErrNoCandidate)
}

func TestStoreSharedAcrossGoroutines(t *testing.T) {
	s := newStore()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.Insert(fmt.Sprintf("w%03d%d", i, g), 1)
				assert.True(t, s.Contains("crane"))
				_, err := s.RandomWord(5)
				assert.NoError(t, err)
				_ = s.CountByLength(4)
				_ = s.Entries()
			}
		}(g)
	}
	wg.Wait()

	// 4 seed words plus 8*200 distinct inserts.
	assert.Equal(t, 4+8*200, s.Len())
}
