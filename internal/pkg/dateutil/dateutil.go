// Package dateutil holds the IST calendar helpers shared by every producer and
// consumer of date strings in the system. All attendance bucketing happens on
// India Standard Time calendar days regardless of the server timezone.
package dateutil

import (
	"time"
)

// IST is a fixed UTC+5:30 offset. India has no daylight saving, so a fixed
// zone avoids a timezone-database dependency.
var IST = time.FixedZone("IST", 5*3600+30*60)

const dateLayout = "2006-01-02"

// Date returns the canonical "YYYY-MM-DD" string for a calendar day in IST.
func Date(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, IST).Format(dateLayout)
}

// Normalize parses a date string and returns it in canonical "YYYY-MM-DD"
// form. Producers (UI, API) and the classifier must agree on this single
// routine so membership sets never drift.
func Normalize(dateStr string) (string, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayOf returns the weekday of a calendar day.
func WeekdayOf(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, IST).Weekday()
}

// MinuteOfDay converts a punch instant to minutes since IST midnight.
// Punches are stored as UTC instants and must be shifted before extracting
// hour and minute.
func MinuteOfDay(t time.Time) int {
	ist := t.In(IST)
	return ist.Hour()*60 + ist.Minute()
}

// MonthKey returns the "YYYY-MM" key used for salary history lookups.
func MonthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// TodayIST returns the current year, month and day on the IST calendar.
func TodayIST(now time.Time) (int, time.Month, int) {
	ist := now.In(IST)
	return ist.Year(), ist.Month(), ist.Day()
}
