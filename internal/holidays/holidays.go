package holidays

import "time"

// Category classifies a holiday entry.
type Category string

const (
	CategoryBank      Category = "bank"
	CategoryReligious Category = "religious"
	CategoryCultural  Category = "cultural"
)

// ValidCategories returns all valid holiday categories.
func ValidCategories() []Category {
	return []Category{CategoryBank, CategoryReligious, CategoryCultural}
}

// IsValid checks if a category is valid.
func (c Category) IsValid() bool {
	for _, valid := range ValidCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

// Entry is one named holiday or observance on a specific date.
type Entry struct {
	Date     time.Time `json:"date"`
	Name     string    `json:"name"`
	Tag      string    `json:"tag"` // emoji marker for display
	Category Category  `json:"category"`

	// Approximate marks entries derived from simplified lunar-calendar
	// heuristics rather than exact rules. These drift by a day or two
	// and are labeled, not corrected.
	Approximate bool `json:"approximate,omitempty"`
}

// UKBankHolidays builds the full table of UK bank holidays and
// observances for a calendar year. A fresh slice is built on every call;
// entries are grouped by kind, and order carries no meaning.
func UKBankHolidays(year int) []Entry {
	easter := EasterSunday(year)

	entries := make([]Entry, 0, 32)
	add := func(date time.Time, name, tag string, cat Category) {
		entries = append(entries, Entry{Date: date, Name: name, Tag: tag, Category: cat})
	}
	addApprox := func(date time.Time, name, tag string, cat Category) {
		entries = append(entries, Entry{Date: date, Name: name, Tag: tag, Category: cat, Approximate: true})
	}

	// ==========================================================================
	// Statutory bank holidays
	// ==========================================================================
	newYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	add(substituteWeekend(newYear), "New Year's Day", "🎉", CategoryBank)

	add(easter.AddDate(0, 0, -2), "Good Friday", "✝️", CategoryBank)
	add(easter.AddDate(0, 0, 1), "Easter Monday", "🐣", CategoryBank)

	add(nthWeekday(year, time.May, time.Monday, 1), "Early May Bank Holiday", "🌷", CategoryBank)
	add(nthWeekday(year, time.May, time.Monday, -1), "Spring Bank Holiday", "🌞", CategoryBank)
	add(nthWeekday(year, time.August, time.Monday, -1), "Summer Bank Holiday", "🏖️", CategoryBank)

	christmas, boxing := observedChristmas(year)
	add(christmas, "Christmas Day", "🎄", CategoryBank)
	add(boxing, "Boxing Day", "🎁", CategoryBank)

	// ==========================================================================
	// Christian observances (exact: fixed dates or Easter offsets)
	// ==========================================================================
	add(time.Date(year, time.January, 6, 0, 0, 0, 0, time.UTC), "Epiphany", "👑", CategoryReligious)
	add(easter.AddDate(0, 0, -47), "Shrove Tuesday", "🥞", CategoryReligious)
	add(easter.AddDate(0, 0, -46), "Ash Wednesday", "✝️", CategoryReligious)
	add(easter.AddDate(0, 0, -21), "Mothering Sunday", "💐", CategoryReligious)
	add(easter.AddDate(0, 0, -7), "Palm Sunday", "🌿", CategoryReligious)
	add(easter.AddDate(0, 0, -3), "Maundy Thursday", "🍞", CategoryReligious)
	add(easter, "Easter Sunday", "🐰", CategoryReligious)
	add(easter.AddDate(0, 0, 39), "Ascension Day", "🕊️", CategoryReligious)
	add(easter.AddDate(0, 0, 49), "Pentecost", "🔥", CategoryReligious)
	add(AdventSunday(year), "Advent Sunday", "🕯️", CategoryReligious)
	add(time.Date(year, time.December, 24, 0, 0, 0, 0, time.UTC), "Christmas Eve", "🌟", CategoryReligious)

	// ==========================================================================
	// Approximate lunar observances (labeled heuristics, known to drift)
	// ==========================================================================
	addApprox(diwali(year), "Diwali", "🪔", CategoryReligious)
	addApprox(hanukkah(year), "Hanukkah", "🕎", CategoryReligious)
	addApprox(islamicObservance(year, time.April, 10), "Eid al-Fitr", "🌙", CategoryReligious)
	addApprox(islamicObservance(year, time.June, 16), "Eid al-Adha", "🐑", CategoryReligious)

	// ==========================================================================
	// Cultural days (exact: fixed dates or weekday rules)
	// ==========================================================================
	add(time.Date(year, time.January, 25, 0, 0, 0, 0, time.UTC), "Burns Night", "🥃", CategoryCultural)
	add(time.Date(year, time.February, 14, 0, 0, 0, 0, time.UTC), "Valentine's Day", "💘", CategoryCultural)
	add(time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC), "St David's Day", "🌼", CategoryCultural)
	add(time.Date(year, time.March, 17, 0, 0, 0, 0, time.UTC), "St Patrick's Day", "☘️", CategoryCultural)
	add(time.Date(year, time.April, 23, 0, 0, 0, 0, time.UTC), "St George's Day", "🌹", CategoryCultural)
	add(nthWeekday(year, time.June, time.Sunday, 3), "Father's Day", "👔", CategoryCultural)
	add(time.Date(year, time.October, 31, 0, 0, 0, 0, time.UTC), "Halloween", "🎃", CategoryCultural)
	add(time.Date(year, time.November, 5, 0, 0, 0, 0, time.UTC), "Bonfire Night", "🎆", CategoryCultural)
	add(time.Date(year, time.November, 11, 0, 0, 0, 0, time.UTC), "Armistice Day", "🌺", CategoryCultural)
	add(nthWeekday(year, time.November, time.Sunday, 2), "Remembrance Sunday", "🌹", CategoryCultural)
	add(time.Date(year, time.November, 30, 0, 0, 0, 0, time.UTC), "St Andrew's Day", "🏴", CategoryCultural)
	add(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), "New Year's Eve", "🎆", CategoryCultural)

	return entries
}

// nthWeekday finds the nth occurrence of a weekday in a month. For n > 0
// it counts forward from the 1st; for n < 0 it counts backward from the
// last day of the month (-1 = last occurrence).
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	if n > 0 {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		offset := (int(weekday) - int(first.Weekday()) + 7) % 7
		return first.AddDate(0, 0, offset+(n-1)*7)
	}

	last := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -offset-(-n-1)*7)
}

// substituteWeekend shifts a nominal holiday falling on a weekend forward
// to the following Monday.
func substituteWeekend(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}

// observedChristmas returns the observed dates for Christmas Day and
// Boxing Day. Each shifts off weekends, and Boxing Day additionally
// shifts past the observed Christmas Day so the pair never collides.
func observedChristmas(year int) (christmas, boxing time.Time) {
	christmas = substituteWeekend(time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC))

	boxing = time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC)
	for boxing.Weekday() == time.Saturday || boxing.Weekday() == time.Sunday || boxing.Equal(christmas) {
		boxing = boxing.AddDate(0, 0, 1)
	}
	return christmas, boxing
}

// approxLunarYear is the length of the Islamic lunar year in whole days.
// Using it as a ladder step retreats an observance ~11 days per Gregorian
// year, matching the real drift to within a day or two.
const approxLunarYear = 354

// islamicObservance estimates an Islamic observance by stepping whole
// lunar years from its 2024 reference date until it lands in the target
// year. If the observance occurs twice in the target Gregorian year (a
// real phenomenon near year boundaries) the earlier occurrence wins.
func islamicObservance(year int, refMonth time.Month, refDay int) time.Time {
	date := time.Date(2024, refMonth, refDay, 0, 0, 0, 0, time.UTC)
	for date.Year() < year {
		date = date.AddDate(0, 0, approxLunarYear)
	}
	for date.Year() > year {
		date = date.AddDate(0, 0, -approxLunarYear)
	}
	return date
}

// lunisolarApprox estimates a lunisolar observance that stays pinned to
// one season: the date retreats ~11 days per year from a late anchor and
// wraps by a leap month every third year or so. phase aligns the cycle to
// the 2024 reference date.
func lunisolarApprox(year int, anchorMonth time.Month, anchorDay, phase int) time.Time {
	back := (11*(year-2024) + phase) % 30
	if back < 0 {
		back += 30
	}
	anchor := time.Date(year, anchorMonth, anchorDay, 0, 0, 0, 0, time.UTC)
	return anchor.AddDate(0, 0, -back)
}

// diwali estimates Diwali, anchored to November 1, 2024.
func diwali(year int) time.Time {
	return lunisolarApprox(year, time.November, 14, 13)
}

// hanukkah estimates the first night of Hanukkah, anchored to
// December 25, 2024.
func hanukkah(year int) time.Time {
	return lunisolarApprox(year, time.December, 27, 2)
}
