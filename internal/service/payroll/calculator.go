package payroll

import (
	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1) // 0.5, a half day's weight

// Compute converts a month's attendance summary into salary figures.
//
// The per-day rate always divides by the full calendar month length, never by
// days counted. Gross accrues per day counted and is not reduced by week offs
// or holidays; those are implicitly paid. Deduction comes purely from unpaid
// components. Values stay unrounded; callers round at presentation time.
func Compute(sum attendance.MonthSummary, monthlySalary decimal.Decimal, totalDaysInMonth, daysCounted int, policy payroll.Policy) (payroll.SalaryResult, error) {
	if totalDaysInMonth <= 0 {
		return payroll.SalaryResult{}, payroll.ErrInvalidMonthLength
	}
	if monthlySalary.IsNegative() {
		return payroll.SalaryResult{}, payroll.ErrInvalidSalary
	}
	if daysCounted < 0 || daysCounted > totalDaysInMonth {
		return payroll.SalaryResult{}, payroll.ErrInvalidDaysCounted
	}

	perDay := monthlySalary.Div(decimal.NewFromInt(int64(totalDaysInMonth)))
	gross := perDay.Mul(decimal.NewFromInt(int64(daysCounted)))

	absent := sum.Absent
	if policy.FirstAbsencePaid && absent > 0 && sum.PaidLeavesUsed == 0 {
		// Convert one absence into a paid leave, but only when the
		// classifier's own paid-leave allowance went unused.
		absent--
	}

	deduction := perDay.Mul(decimal.NewFromInt(int64(sum.UnpaidLeaves)))
	deduction = deduction.Add(perDay.Mul(half).Mul(decimal.NewFromInt(int64(sum.UnpaidHalfDays))))
	if policy.DeductAbsence {
		deduction = deduction.Add(perDay.Mul(decimal.NewFromInt(int64(absent))))
	}

	return payroll.SalaryResult{
		MonthlySalary:        monthlySalary,
		PerDaySalary:         perDay,
		GrossSalaryTillToday: gross,
		TotalDeduction:       deduction,
		NetSalary:            gross.Sub(deduction),
	}, nil
}
