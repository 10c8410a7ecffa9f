// internal/words/sqlite.go
//
// SQLite-backed word snapshot.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, single connection).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Loading and replacing the snapshot table in one transaction.
package words

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// errEmptySnapshot lets Open fall back when nothing was ever saved.
var errEmptySnapshot = errors.New("snapshot is empty")

// SQLiteSource stores the snapshot in a `words` table.
type SQLiteSource struct {
	db  *sql.DB
	dsn string
}

// OpenSQLite opens (and creates if missing) the database at dsn and
// applies migrations.
func OpenSQLite(dsn string) (*SQLiteSource, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteSource{db: db, dsn: dsn}, nil
}

func (s *SQLiteSource) Name() string { return "sqlite:" + s.dsn }

// Close releases the database handle.
func (s *SQLiteSource) Close() error { return s.db.Close() }

func (s *SQLiteSource) Load(ctx context.Context) (map[string]uint, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, weight FROM words`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]uint)
	for rows.Next() {
		var (
			w      string
			weight int64
		)
		if err := rows.Scan(&w, &weight); err != nil {
			return nil, err
		}
		if weight < 0 {
			return nil, fmt.Errorf("negative weight for %q", w)
		}
		out[w] = uint(weight)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errEmptySnapshot
	}
	return out, nil
}

// Save replaces the snapshot with entries.
func (s *SQLiteSource) Save(ctx context.Context, entries map[string]uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (word, weight) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for w, weight := range entries {
		if _, err := stmt.ExecContext(ctx, w, int64(weight)); err != nil {
			return fmt.Errorf("insert %q: %w", w, err)
		}
	}
	return tx.Commit()
}

// openDB ensures the parent directory exists and configures busy timeout,
// WAL journaling and a single connection.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies embedded sql/*.sql files in lexical order, each in its own
// transaction, skipping those already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}
