package payroll

import "errors"

var (
	ErrInvalidMonthLength = errors.New("total days in month must be positive")
	ErrInvalidSalary      = errors.New("monthly salary must be a non-negative number")
	ErrInvalidDaysCounted = errors.New("days counted must be between 0 and the month length")
	ErrNoSalaryHistory    = errors.New("no salary history entry at or before the requested month")
)
