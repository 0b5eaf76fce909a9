package calendar

import "errors"

var (
	ErrHolidayExists   = errors.New("holiday already exists for this date")
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrWeekOffExists   = errors.New("week off already exists for this employee and date")
)
