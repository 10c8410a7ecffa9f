// internal/words/source.go
//
// Backing stores for the dictionary.
//
// Sources:
//   - FileSource:     JSON object {"word": weight, ...} on disk (dictionary or snapshot).
//   - EmbeddedSource: the canonical dictionary compiled into the binary (assets).
//   - SQLiteSource:   snapshot table, see sqlite.go.
//
// Open policy:
//   1. Try the saved snapshot.
//   2. On any failure, fall back to the canonical dictionary.
//   3. If both fail, return an error. There is no silent empty store.
//
// Saving is best-effort: failures are logged and never returned.
package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/assets"
)

// Source loads a word -> weight mapping.
type Source interface {
	Name() string
	Load(ctx context.Context) (map[string]uint, error)
}

// Sink persists a word -> weight mapping.
type Sink interface {
	Save(ctx context.Context, entries map[string]uint) error
}

// LoadError reports an unreadable or malformed source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load builds a Store from src. Failures are wrapped in *LoadError.
func Load(ctx context.Context, src Source) (*Store, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Err: err}
	}
	return New(entries), nil
}

// Open loads the saved snapshot, falling back to the canonical dictionary.
// saved may be nil.
func Open(ctx context.Context, saved, canonical Source) (*Store, error) {
	var savedErr error
	if saved != nil {
		st, err := Load(ctx, saved)
		if err == nil {
			log.Info().Str("source", saved.Name()).Int("words", st.Len()).Msg("loaded word snapshot")
			return st, nil
		}
		savedErr = err
		log.Warn().Err(err).Str("source", saved.Name()).Msg("snapshot unavailable, using dictionary")
	}
	if canonical == nil {
		return nil, errors.Join(savedErr, errors.New("words: no canonical dictionary"))
	}
	st, err := Load(ctx, canonical)
	if err != nil {
		return nil, errors.Join(savedErr, err)
	}
	log.Info().Str("source", canonical.Name()).Int("words", st.Len()).Msg("loaded dictionary")
	return st, nil
}

// Save writes the full mapping to dst. Errors are logged and swallowed.
func (s *Store) Save(ctx context.Context, dst Sink) {
	if dst == nil {
		return
	}
	if err := dst.Save(ctx, s.Entries()); err != nil {
		log.Warn().Err(err).Msg("save word snapshot")
	}
}

// decodeEntries parses a JSON object of word -> non-negative weight.
func decodeEntries(data []byte) (map[string]uint, error) {
	var m map[string]uint
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("not a JSON object")
	}
	return m, nil
}

// FileSource reads and writes a JSON mapping at Path.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string { return f.Path }

func (f FileSource) Load(ctx context.Context) (map[string]uint, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return decodeEntries(data)
}

// Save writes the mapping pretty-printed, creating the parent directory.
func (f FileSource) Save(ctx context.Context, entries map[string]uint) error {
	if dir := filepath.Dir(f.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o644)
}

// EmbeddedSource is the dictionary compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded:" + assets.DictionaryName }

func (EmbeddedSource) Load(ctx context.Context) (map[string]uint, error) {
	data, err := assets.Dictionary()
	if err != nil {
		return nil, err
	}
	return decodeEntries(data)
}
