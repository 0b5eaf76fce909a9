package payroll

import (
	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SalaryReportRequest struct {
	EmployeeEmail string `json:"email"`
	Month         int    `json:"month"` // 1-12
	Year          int    `json:"year"`
	TillToday     bool   `json:"till_today"`
}

func (r *SalaryReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RunPayrollRequest struct {
	Month     int  `json:"month"` // 1-12
	Year      int  `json:"year"`
	TillToday bool `json:"till_today"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpsertSalaryRequest struct {
	EmployeeEmail string          `json:"-"`
	MonthKey      string          `json:"month"` // "YYYY-MM"
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

func (r *UpsertSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MonthKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, valid := validator.IsValidDate(r.MonthKey + "-01"); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SalaryReportResponse is what the reporting layer renders as a table or PDF.
// Monetary values are rounded to two decimals here and nowhere earlier.
type SalaryReportResponse struct {
	EmployeeEmail string `json:"employee_email"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	DaysInMonth   int    `json:"days_in_month"`
	DaysCounted   int    `json:"days_counted"`

	MonthlySalary        decimal.Decimal `json:"monthly_salary"`
	PerDaySalary         decimal.Decimal `json:"per_day_salary"`
	GrossSalaryTillToday decimal.Decimal `json:"gross_salary_till_today"`
	TotalDeduction       decimal.Decimal `json:"total_deduction"`
	NetSalary            decimal.Decimal `json:"net_salary"`

	Summary attendance.MonthSummaryResponse `json:"attendance_summary"`

	// DataError flags employees with no salary history; their report is
	// computed with salary 0 so the payroll run never fails as a whole.
	DataError string `json:"data_error,omitempty"`
}

type SalaryRecordResponse struct {
	ID            string          `json:"id"`
	EmployeeEmail string          `json:"employee_email"`
	MonthKey      string          `json:"month"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}
