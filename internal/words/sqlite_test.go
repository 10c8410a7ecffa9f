package words_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

func openSQLite(t *testing.T, dsn string) *words.SQLiteSource {
	t.Helper()
	db, err := words.OpenSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteEmptySnapshotFallsBack(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t, filepath.Join(t.TempDir(), "data", "words.db"))

	_, err := words.Load(ctx, db)
	var le *words.LoadError
	require.ErrorAs(t, err, &le)

	s, err := words.Open(ctx, db, words.EmbeddedSource{})
	require.NoError(t, err)
	assert.True(t, s.Contains("crane"))
}

func TestSQLiteSaveLoad(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "words.db")
	db := openSQLite(t, dsn)

	s := words.New(map[string]uint{"crane": 4, "slate": 1})
	s.Save(ctx, db)
	s.Insert("zesty", 2)
	s.Save(ctx, db)

	got, err := words.Load(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, s.Entries(), got.Entries())
	require.NoError(t, db.Close())

	// Reopening re-runs migrations as no-ops and keeps the data.
	again := openSQLite(t, dsn)
	got, err = words.Load(ctx, again)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())
	w, _ := got.Weight("zesty")
	assert.Equal(t, uint(2), w)
}
