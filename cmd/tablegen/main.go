// Command tablegen prints a railway year's week and period layout and the
// calendar year's holiday table, and can seed the SQLite holiday cache.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/harlandjw/railcal-api/internal/database"
	"github.com/harlandjw/railcal-api/internal/holidays"
	"github.com/harlandjw/railcal-api/internal/railcal"
)

func main() {
	year := flag.Int("year", time.Now().Year(), "Railway/calendar year to generate tables for")
	dbPath := flag.String("db", "", "Seed the holiday cache at this SQLite path instead of printing only")
	showWeeks := flag.Bool("weeks", true, "Print the railway week table")
	showHolidays := flag.Bool("holidays", true, "Print the holiday table")
	flag.Parse()

	fmt.Printf("=== Railway Calendar Tables for %s ===\n\n", railcal.DisplayYear(*year))

	start := railcal.WeekOneStart(*year)
	total := railcal.TotalWeeks(*year)

	fmt.Println("Key Dates:")
	fmt.Printf("  Week 1 Day 1:    %s\n", railcal.FormatDate(start))
	fmt.Printf("  Total Weeks:     %d\n", total)
	fmt.Printf("  Easter Sunday:   %s\n", railcal.FormatDate(holidays.EasterSunday(*year)))
	fmt.Println()

	if *showWeeks {
		printWeekTable(*year, total)
	}

	if *showHolidays {
		printHolidayTable(*year)
	}

	if *dbPath != "" {
		if err := seedCache(*dbPath, *year); err != nil {
			fmt.Fprintf(os.Stderr, "seed cache: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Seeded holiday cache for %d at %s\n", *year, *dbPath)
	}
}

func printWeekTable(year, total int) {
	fmt.Println("Periods:")
	for period := 1; period <= railcal.MaxPeriods; period++ {
		pr, err := railcal.PeriodDates(year, period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "period %d: %v\n", period, err)
			os.Exit(1)
		}
		fmt.Printf("  Period %2d: weeks %2d-%2d  %s .. %s\n",
			period, pr.StartWeek, pr.EndWeek,
			railcal.FormatDate(pr.Start), railcal.FormatDate(pr.End))
	}
	fmt.Println()

	fmt.Println("Weeks:")
	for week := 1; week <= total; week++ {
		start, end, err := railcal.WeekRange(year, week)
		if err != nil {
			fmt.Fprintf(os.Stderr, "week %d: %v\n", week, err)
			os.Exit(1)
		}
		coord := railcal.DateToRailway(start)
		fmt.Printf("  Week %2d (P%02d W%d): %s .. %s\n",
			week, coord.Period, coord.WeekInPeriod,
			railcal.FormatDate(start), railcal.FormatDate(end))
	}
	fmt.Println()
}

func printHolidayTable(year int) {
	entries := holidays.UKBankHolidays(year)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	fmt.Printf("Holidays (%d entries):\n", len(entries))
	for _, e := range entries {
		marker := " "
		if e.Approximate {
			marker = "~"
		}
		fmt.Printf("  %s %s %-10s %s %s\n",
			marker, railcal.FormatDate(e.Date), e.Category, e.Tag, e.Name)
	}
	fmt.Println()
}

func seedCache(path string, year int) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := database.Open(database.DefaultConfig(path), log)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		return err
	}

	return db.SaveHolidayTable(ctx, year, holidays.UKBankHolidays(year))
}
