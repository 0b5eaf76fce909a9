package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	assert.Equal(t, "2025-03-01", Date(2025, time.March, 1))
	assert.Equal(t, "2025-12-31", Date(2025, time.December, 31))
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("2025-06-09")
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-09", got)

	_, err = Normalize("09-06-2025")
	assert.Error(t, err)

	_, err = Normalize("not-a-date")
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February)) // leap year
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
}

func TestMinuteOfDay(t *testing.T) {
	// 04:00 UTC is 09:30 IST.
	utc := time.Date(2025, time.June, 9, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, 9*60+30, MinuteOfDay(utc))

	// 05:30 UTC is 11:00 IST.
	utc = time.Date(2025, time.June, 9, 5, 30, 0, 0, time.UTC)
	assert.Equal(t, 11*60, MinuteOfDay(utc))

	// An instant already carrying a non-UTC zone converts the same way.
	jakarta := time.FixedZone("WIB", 7*3600)
	local := time.Date(2025, time.June, 9, 11, 0, 0, 0, jakarta)
	assert.Equal(t, MinuteOfDay(local.UTC()), MinuteOfDay(local))
}

func TestWeekdayOf(t *testing.T) {
	// 2025-06-10 is a Tuesday.
	assert.Equal(t, time.Tuesday, WeekdayOf(2025, time.June, 10))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-06", MonthKey(2025, time.June))
	assert.Equal(t, "2024-01", MonthKey(2024, time.January))
}
