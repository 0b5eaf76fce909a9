package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord is one entry of an employee's monthly salary history.
type SalaryRecord struct {
	ID            string
	EmployeeEmail string
	MonthKey      string // "YYYY-MM"; the salary applies from this month onward
	MonthlySalary decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Policy parameterizes the deduction formula instead of maintaining the two
// divergent variants side by side.
type Policy struct {
	// DeductAbsence deducts a full day's pay per remaining absence. The
	// canonical policy is true: absences always deduct unless converted to a
	// paid leave by FirstAbsencePaid.
	DeductAbsence bool
	// FirstAbsencePaid converts exactly one absence into a paid leave before
	// deduction math, but only when the classifier's own paid-leave allowance
	// is still unused for the month.
	FirstAbsencePaid bool
}

// SalaryResult carries the monetary output for one employee and month. All
// values are unrounded; two-decimal rounding happens at the presentation
// boundary only.
type SalaryResult struct {
	MonthlySalary        decimal.Decimal
	PerDaySalary         decimal.Decimal
	GrossSalaryTillToday decimal.Decimal
	TotalDeduction       decimal.Decimal
	NetSalary            decimal.Decimal
}
