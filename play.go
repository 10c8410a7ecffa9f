package main

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

// feedback is one output line per submitted guess.
type feedback struct {
	Guess  string                `json:"guess"`
	States []game.CharacterState `json:"states,omitempty"`
	Error  string                `json:"error,omitempty"`
	Won    bool                  `json:"won"`
}

// play reads one guess per line from r and writes one JSON feedback line
// per guess to w. It stops at EOF or once the board is won.
func play(b *game.Board, r io.Reader, w io.Writer) error {
	enc := json.NewEncoder(w)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		guess := strings.TrimSpace(sc.Text())
		if guess == "" {
			continue
		}
		fb := feedback{Guess: strings.ToLower(guess)}
		if err := b.AddGuess(guess); err != nil {
			fb.Error = err.Error()
		} else {
			st := b.State()
			for _, c := range st[len(st)-1] {
				fb.States = append(fb.States, c.State)
			}
		}
		fb.Won = b.HasWon()
		if err := enc.Encode(fb); err != nil {
			return err
		}
		if fb.Won {
			log.Info().Str("board", b.ID()).Int("guesses", len(b.Guesses())).Msg("game won")
			return nil
		}
	}
	return sc.Err()
}
