package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harlandjw/railcal-api/internal/holidays"
)

// =============================================================================
// Holiday Cache Queries
// =============================================================================

// GetHolidayTable retrieves the cached holiday table for a year.
// Returns ErrNotFound if the year has not been cached.
func (db *DB) GetHolidayTable(ctx context.Context, year int) ([]holidays.Entry, error) {
	// Check the year is cached at all; an empty entry list is not a
	// valid cache state, so the marker row is the authority.
	var cached int
	err := db.QueryRowContext(ctx,
		"SELECT year FROM holiday_years WHERE year = ?", year,
	).Scan(&cached)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("holiday table for %d: %w", year, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query holiday year: %w", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT date, name, tag, category, approximate
		FROM holiday_entries
		WHERE year = ?
		ORDER BY date, name
	`, year)
	if err != nil {
		return nil, fmt.Errorf("query holiday entries: %w", err)
	}
	defer rows.Close()

	var entries []holidays.Entry
	for rows.Next() {
		var (
			dateStr     string
			entry       holidays.Entry
			category    string
			approximate int
		)
		if err := rows.Scan(&dateStr, &entry.Name, &entry.Tag, &category, &approximate); err != nil {
			return nil, fmt.Errorf("scan holiday entry: %w", err)
		}

		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse holiday date %q: %w", dateStr, err)
		}
		entry.Date = date
		entry.Category = holidays.Category(category)
		entry.Approximate = approximate != 0

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holiday entries: %w", err)
	}

	return entries, nil
}

// SaveHolidayTable caches a year's holiday table, replacing any existing
// rows for that year.
func (db *DB) SaveHolidayTable(ctx context.Context, year int, entries []holidays.Entry) error {
	return db.WithTx(ctx, func(tx *Tx) error {
		// Cascade delete clears the old entries
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM holiday_years WHERE year = ?", year); err != nil {
			return fmt.Errorf("clear holiday year: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO holiday_years (year) VALUES (?)", year); err != nil {
			return fmt.Errorf("insert holiday year: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO holiday_entries (year, date, name, tag, category, approximate)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare entry insert: %w", err)
		}
		defer stmt.Close()

		for _, entry := range entries {
			approximate := 0
			if entry.Approximate {
				approximate = 1
			}
			_, err := stmt.ExecContext(ctx, year,
				entry.Date.Format("2006-01-02"),
				entry.Name, entry.Tag, string(entry.Category), approximate)
			if err != nil {
				return fmt.Errorf("insert holiday entry %q: %w", entry.Name, err)
			}
		}

		return nil
	})
}

// DeleteHolidayTable drops a year from the cache. Deleting an uncached
// year is not an error.
func (db *DB) DeleteHolidayTable(ctx context.Context, year int) error {
	if _, err := db.ExecContext(ctx,
		"DELETE FROM holiday_years WHERE year = ?", year); err != nil {
		return fmt.Errorf("delete holiday year: %w", err)
	}
	return nil
}

// ListCachedYears returns the years present in the cache, oldest first.
func (db *DB) ListCachedYears(ctx context.Context) ([]HolidayYear, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT hy.year, hy.generated_at, COUNT(he.id)
		FROM holiday_years hy
		LEFT JOIN holiday_entries he ON he.year = hy.year
		GROUP BY hy.year
		ORDER BY hy.year
	`)
	if err != nil {
		return nil, fmt.Errorf("query cached years: %w", err)
	}
	defer rows.Close()

	var years []HolidayYear
	for rows.Next() {
		var (
			hy          HolidayYear
			generatedAt string
		)
		if err := rows.Scan(&hy.Year, &generatedAt, &hy.EntryCount); err != nil {
			return nil, fmt.Errorf("scan cached year: %w", err)
		}
		hy.GeneratedAt = parseTimestamp(generatedAt)
		years = append(years, hy)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached years: %w", err)
	}

	return years, nil
}

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries the common formats and falls back to the zero time.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}
