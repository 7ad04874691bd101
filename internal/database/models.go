// Package database provides the SQLite-backed holiday table cache.
package database

import (
	"time"

	"github.com/harlandjw/railcal-api/internal/holidays"
)

// HolidayYear records that a year's holiday table has been generated and
// cached.
type HolidayYear struct {
	Year        int       `json:"year"`
	EntryCount  int       `json:"entry_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// HolidayTable combines the cache metadata with the entries themselves.
// This is the response shape for the holidays endpoint.
type HolidayTable struct {
	Year    int              `json:"year"`
	Entries []holidays.Entry `json:"entries"`
	Cached  bool             `json:"cached"` // false when computed on this request
}
