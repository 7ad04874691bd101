package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1HolidayCache,
}

// migrationV1HolidayCache creates the holiday cache schema.
//
// Key design decisions:
//
// 1. CACHE, NOT SOURCE OF TRUTH
//   - Holiday tables are computed by the holidays package from the year
//     alone; the database only memoizes the result (safe because results
//     are invariant given fixed configuration constants).
//   - A year's rows can be deleted and regenerated at any time.
//
// 2. ONE ROW PER ENTRY
//   - holiday_years records which years are cached and when.
//   - holiday_entries holds the entries, keyed to their year with
//     cascade delete so refreshing a year is a single delete + insert.
//
// 3. APPROXIMATE FLAG PERSISTED
//   - Entries from lunar-calendar heuristics are stored with
//     approximate=1 so the label survives the round trip.
const migrationV1HolidayCache = `
-- Migration 001: Holiday cache schema

CREATE TABLE IF NOT EXISTS holiday_years (
    year INTEGER PRIMARY KEY,
    generated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS holiday_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    year INTEGER NOT NULL REFERENCES holiday_years(year) ON DELETE CASCADE,

    -- ISO 8601 date: YYYY-MM-DD
    date TEXT NOT NULL,
    name TEXT NOT NULL,

    -- Emoji marker for display
    tag TEXT NOT NULL DEFAULT '',

    category TEXT NOT NULL CHECK (category IN ('bank', 'religious', 'cultural')),

    -- 1 when the date comes from a simplified lunar-calendar heuristic
    approximate INTEGER NOT NULL DEFAULT 0,

    UNIQUE (year, date, name)
);

CREATE INDEX IF NOT EXISTS idx_holiday_entries_year ON holiday_entries(year);
`
