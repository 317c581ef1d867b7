package period

import "time"

// Calendar helpers for month-based period arithmetic. Dates throughout
// this package are naive calendar dates represented as UTC midnights;
// no timezone conversion is ever applied.

// LastDayOfMonth returns the number of days in the given month (28-31),
// accounting for leap years per the proleptic Gregorian calendar.
func LastDayOfMonth(year, month int) int {
	// Day zero of the next month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay caps day to the last valid day of the given month, so an
// anchor day of 31 degrades gracefully in shorter months.
func ClampDay(year, month, day int) int {
	if last := LastDayOfMonth(year, month); day > last {
		return last
	}
	return day
}

// NextMonth increments the month, rolling over to January of the next
// year after December.
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// PrevMonth decrements the month, rolling back to December of the
// previous year before January.
func PrevMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// Date builds a naive calendar date at UTC midnight.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops any time-of-day component, returning the calendar
// date at UTC midnight.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), int(t.Month()), t.Day())
}

// DaysBetween returns the number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)).Hours() / 24)
}
