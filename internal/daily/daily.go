// internal/daily/daily.go
//
// Word of the day.
// Responsibilities:
//   - Map a calendar date (UTC) to one word from a candidate list.
//   - Stay stable for a whole day and across restarts, given the same salt
//     and the same candidates in the same order.
//
// Notes:
//   - The index is HMAC-SHA256(salt, "YYYY-MM-DD") reduced modulo the
//     candidate count, so the salt keeps the sequence unguessable.
//   - Callers pass candidates sorted; order is part of the contract.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Pick returns the word of the day among candidates.
// ok is false when candidates is empty.
func Pick(date time.Time, salt string, candidates []string) (word string, ok bool) {
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[index(date, salt, uint64(len(candidates)))], true
}

// index folds the first 8 bytes of the date MAC into [0, n).
func index(date time.Time, salt string, n uint64) int {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)[:8]) % n)
}
