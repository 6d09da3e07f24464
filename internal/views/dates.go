package views

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// dateHeureLayouts are the formats an appointment's dateHeure may come in:
// the backend's display format first, then ISO-8601 variants.
var dateHeureLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseDateHeure parses an appointment date in the local time zone.
func ParseDateHeure(s string) (time.Time, bool) {
	for _, layout := range dateHeureLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysBefore returns the number of started days between now and t, never negative.
func DaysBefore(t, now time.Time) int {
	days := int(math.Ceil(float64(t.Sub(now)) / float64(day)))
	if days < 0 {
		return 0
	}
	return days
}

// IsWeekend reports whether the calendar date (YYYY-MM-DD) is a Saturday or Sunday.
// Unparseable input is not a weekend.
func IsWeekend(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MinBookingDate is the first date the new-appointment form accepts: tomorrow.
func MinBookingDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format("2006-01-02")
}
