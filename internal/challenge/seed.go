package challenge

import (
	"hash/fnv"
	"time"
)

// SeedForDate derives a deterministic generator seed from a calendar
// date, so every player sees the same daily challenge questions.
func SeedForDate(t time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(t.Format("2006-01-02")))
	return int64(h.Sum64())
}
