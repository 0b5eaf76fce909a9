package attendance

import (
	"time"
)

// Record is a single attendance punch. At most one record per employee per
// calendar date is meaningful; the classifier takes the first match found.
type Record struct {
	ID            string
	EmployeeEmail string
	Date          string     // YYYY-MM-DD, IST calendar date
	Login         *time.Time // punch instant, stored as UTC
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DayStatus is the classification of a single calendar day. Statuses are
// mutually exclusive: exactly one per day, assigned in fixed precedence order.
type DayStatus string

const (
	StatusWeekOff       DayStatus = "week_off"
	StatusHoliday       DayStatus = "holiday"
	StatusApprovedLeave DayStatus = "approved_leave"
	StatusLeave         DayStatus = "leave"
	StatusAbsent        DayStatus = "absent"
	StatusPresent       DayStatus = "present"
	StatusHalfDay       DayStatus = "half_day"
)

// DaySummary is one entry of the per-day calendar sequence.
type DaySummary struct {
	Day    int
	Status DayStatus
}

// MonthSummary is the classifier output for one employee and month.
//
// Leave counts both approved-leave days and early-login leave days; the Days
// sequence keeps the two statuses distinct for the calendar view. Invariant:
// Present + HalfDay + Leave + Absent + WeekOff + Holiday == DaysEvaluated.
type MonthSummary struct {
	Present int
	HalfDay int
	Leave   int
	Absent  int
	WeekOff int
	Holiday int

	PaidLeavesUsed   int
	UnpaidLeaves     int
	PaidHalfDaysUsed int
	UnpaidHalfDays   int

	DaysEvaluated int
	Days          []DaySummary

	// Warnings carries per-record data-quality notes (bad login timestamps,
	// unparseable set dates). They never fail the month's computation.
	Warnings []string
}
