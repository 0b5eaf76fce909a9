package payroll

import (
	"testing"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultPolicy = payroll.Policy{DeductAbsence: true, FirstAbsencePaid: true}

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCompute_NoUnpaidDays(t *testing.T) {
	// Monthly salary 30000, 30-day month, 20 days counted, nothing unpaid.
	sum := attendance.MonthSummary{Present: 16, WeekOff: 3, Holiday: 1, DaysEvaluated: 20}

	result, err := Compute(sum, money("30000"), 30, 20, defaultPolicy)
	require.NoError(t, err)

	assert.True(t, result.PerDaySalary.Equal(money("1000")), "per day = %s", result.PerDaySalary)
	assert.True(t, result.GrossSalaryTillToday.Equal(money("20000")), "gross = %s", result.GrossSalaryTillToday)
	assert.True(t, result.TotalDeduction.IsZero())
	assert.True(t, result.NetSalary.Equal(money("20000")), "net = %s", result.NetSalary)
}

func TestCompute_UnpaidLeaveDeduction(t *testing.T) {
	// Same setup, but 2 of the 20 days are unpaid leaves.
	sum := attendance.MonthSummary{
		Present:        14,
		Leave:          3,
		WeekOff:        3,
		PaidLeavesUsed: 1,
		UnpaidLeaves:   2,
		DaysEvaluated:  20,
	}

	result, err := Compute(sum, money("30000"), 30, 20, defaultPolicy)
	require.NoError(t, err)

	assert.True(t, result.TotalDeduction.Equal(money("2000")), "deduction = %s", result.TotalDeduction)
	assert.True(t, result.NetSalary.Equal(money("18000")), "net = %s", result.NetSalary)
}

func TestCompute_HalfDayDeductsHalfRate(t *testing.T) {
	sum := attendance.MonthSummary{
		Present:          15,
		HalfDay:          3,
		WeekOff:          2,
		PaidHalfDaysUsed: 1,
		UnpaidHalfDays:   2,
		DaysEvaluated:    20,
	}

	result, err := Compute(sum, money("30000"), 30, 20, defaultPolicy)
	require.NoError(t, err)

	// 2 unpaid half days at 0.5 * 1000.
	assert.True(t, result.TotalDeduction.Equal(money("1000")), "deduction = %s", result.TotalDeduction)
	assert.True(t, result.NetSalary.Equal(money("19000")), "net = %s", result.NetSalary)
}

func TestCompute_AbsenceDeduction(t *testing.T) {
	sum := attendance.MonthSummary{Present: 17, Absent: 3, DaysEvaluated: 20}

	t.Run("first absence paid when allowance unused", func(t *testing.T) {
		result, err := Compute(sum, money("30000"), 30, 20, defaultPolicy)
		require.NoError(t, err)
		// One of the 3 absences converts to a paid leave.
		assert.True(t, result.TotalDeduction.Equal(money("2000")), "deduction = %s", result.TotalDeduction)
	})

	t.Run("no conversion when allowance already used", func(t *testing.T) {
		used := sum
		used.Leave = 1
		used.Present = 16
		used.PaidLeavesUsed = 1
		result, err := Compute(used, money("30000"), 30, 20, defaultPolicy)
		require.NoError(t, err)
		assert.True(t, result.TotalDeduction.Equal(money("3000")), "deduction = %s", result.TotalDeduction)
	})

	t.Run("first absence rule disabled", func(t *testing.T) {
		policy := payroll.Policy{DeductAbsence: true, FirstAbsencePaid: false}
		result, err := Compute(sum, money("30000"), 30, 20, policy)
		require.NoError(t, err)
		assert.True(t, result.TotalDeduction.Equal(money("3000")), "deduction = %s", result.TotalDeduction)
	})

	t.Run("absence deduction disabled", func(t *testing.T) {
		policy := payroll.Policy{DeductAbsence: false, FirstAbsencePaid: false}
		result, err := Compute(sum, money("30000"), 30, 20, policy)
		require.NoError(t, err)
		assert.True(t, result.TotalDeduction.IsZero())
	})
}

func TestCompute_NoFloatingDrift(t *testing.T) {
	// 31-day month with a salary that does not divide evenly.
	sum := attendance.MonthSummary{Present: 31, DaysEvaluated: 31}

	result, err := Compute(sum, money("10000"), 31, 31, defaultPolicy)
	require.NoError(t, err)

	// Full attendance over the full month accrues the full salary after
	// two-decimal rounding at the presentation boundary.
	assert.True(t, result.NetSalary.Round(2).Equal(money("10000")), "net = %s", result.NetSalary)
}

func TestCompute_Validation(t *testing.T) {
	sum := attendance.MonthSummary{}

	_, err := Compute(sum, money("30000"), 0, 0, defaultPolicy)
	assert.ErrorIs(t, err, payroll.ErrInvalidMonthLength)

	_, err = Compute(sum, money("-1"), 30, 20, defaultPolicy)
	assert.ErrorIs(t, err, payroll.ErrInvalidSalary)

	_, err = Compute(sum, money("30000"), 30, 31, defaultPolicy)
	assert.ErrorIs(t, err, payroll.ErrInvalidDaysCounted)

	_, err = Compute(sum, money("30000"), 30, -1, defaultPolicy)
	assert.ErrorIs(t, err, payroll.ErrInvalidDaysCounted)
}

func TestCompute_ZeroSalary(t *testing.T) {
	sum := attendance.MonthSummary{Absent: 20, DaysEvaluated: 20}

	result, err := Compute(sum, decimal.Zero, 30, 20, defaultPolicy)
	require.NoError(t, err)
	assert.True(t, result.NetSalary.IsZero())
	assert.True(t, result.TotalDeduction.IsZero())
}
