package utils

import (
	"time"
)

// dateLayouts covers the formats the web client sends: bare dates from date
// pickers and full timestamps produced by earlier versions of the frontend.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02",
}

// ParseDate parses a stored date string. The second return value reports
// whether any known layout matched.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NowStamp returns the current UTC time in the format records are stamped
// with. The format sorts lexicographically, which the month filter on the
// finance dashboard relies on.
func NowStamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// RentalDays derives the billable day count of a reservation: the span
// between pickup and return rounded up to whole days, never less than one.
func RentalDays(pickup, ret time.Time) int {
	hours := ret.Sub(pickup).Hours()
	days := int(hours / 24)
	if float64(days*24) < hours {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
