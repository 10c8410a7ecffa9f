package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	ctx := context.Background()

	snap, closeSnap := openSnapshot(cfg)
	defer closeSnap()

	store, err := words.Open(ctx, snap, canonicalSource(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word store")
	}

	eval, err := game.ParseEvaluator(cfg.Evaluator)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid evaluator")
	}
	board, err := newBoard(cfg, store, eval)
	if err != nil {
		log.Fatal().Err(err).Int("length", cfg.WordLength).Msg("failed to create board")
	}
	log.Info().Str("board", board.ID()).Int("length", board.Len()).Msg("game started")

	if err := play(board, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("play")
	}
	if snap != nil {
		store.Save(ctx, snap)
	}
}

// snapshot is a source that can also be written back.
type snapshot interface {
	words.Source
	words.Sink
}

// openSnapshot returns the configured snapshot, or nil when the SQLite
// backend cannot be opened.
func openSnapshot(cfg config.Config) (snapshot, func()) {
	if cfg.SnapshotDSN == "" {
		return words.FileSource{Path: cfg.Resolve(cfg.SnapshotPath)}, func() {}
	}
	db, err := words.OpenSQLite(cfg.Resolve(cfg.SnapshotDSN))
	if err != nil {
		log.Warn().Err(err).Str("dsn", cfg.SnapshotDSN).Msg("open snapshot db")
		return nil, func() {}
	}
	return db, func() { _ = db.Close() }
}

func canonicalSource(cfg config.Config) words.Source {
	if cfg.WordsPath == "" {
		return words.EmbeddedSource{}
	}
	return words.FileSource{Path: cfg.Resolve(cfg.WordsPath)}
}

func newBoard(cfg config.Config, store *words.Store, eval game.Evaluator) (*game.Board, error) {
	if cfg.DailySalt != "" {
		return game.NewDaily(store, time.Now(), cfg.DailySalt, cfg.WordLength, game.WithEvaluator(eval))
	}
	return game.New(store, cfg.WordLength, game.WithEvaluator(eval))
}
