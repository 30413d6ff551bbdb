package domain

import "time"

// NextOccurrence returns the birthday's next recurrence on or after today,
// before any weekend adjustment. today must be a calendar date (see DateOf).
//
// A February 29 birthday is celebrated on March 1 in non-leap years. Once the
// leap-year occurrence has passed, the next occurrence is March 1 of the
// following year rather than the next actual leap day.
func NextOccurrence(b Birthday, today time.Time) time.Time {
	year := today.Year()

	if !b.IsLeapDay() {
		candidate := Date(year, b.Month(), b.Day())
		if candidate.Before(today) {
			candidate = Date(year+1, b.Month(), b.Day())
		}
		return candidate
	}

	if isLeap(year) {
		candidate := Date(year, time.February, 29)
		if candidate.Before(today) {
			candidate = Date(year+1, time.March, 1)
		}
		return candidate
	}

	candidate := Date(year, time.March, 1)
	if candidate.Before(today) {
		if isLeap(year + 1) {
			return Date(year+1, time.February, 29)
		}
		return Date(year+1, time.March, 1)
	}
	return candidate
}

// ShiftWeekend moves a Saturday or Sunday date to the following Monday.
func ShiftWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// CongratulationDay returns the weekend-adjusted date on which the birthday
// should be acknowledged, relative to today.
func CongratulationDay(b Birthday, today time.Time) time.Time {
	return ShiftWeekend(NextOccurrence(b, DateOf(today)))
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
