// Package dateutils provides common calendar-date operations used throughout
// the application. All analytics work on whole days, so helpers here truncate
// times to midnight in the date's location.
package dateutils

import "time"

// DateLayoutISO is the canonical date layout used in reports and CSV files.
const DateLayoutISO = "2006-01-02"

// Day truncates a time to midnight of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// StartOfWeek returns the Monday of the week containing the given date.
func StartOfWeek(date time.Time) time.Time {
	d := Day(date)
	// time.Weekday counts Sunday as 0; we want Monday-based weeks.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// StartOfYear returns January 1st of the date's year.
func StartOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
}

// EndOfYear returns December 31st of the date's year.
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, date.Location())
}

// MonthRange returns the first and last day of month m in year y.
func MonthRange(y int, m time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, -1)
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ValidDate reports whether year/month/day name a real calendar date.
// time.Date normalizes out-of-range components, so a round-trip check is
// needed to reject values like 31/02.
func ValidDate(year int, month int, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && int(d.Month()) == month && d.Day() == day
}
