package attendance

import (
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/calendar"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/validator"
)

// ClassifyInput carries everything the classifier needs for one employee and
// month. It is assembled by the attendance service from the stored calendar
// metadata; tests construct it directly.
type ClassifyInput struct {
	EmployeeEmail string
	Year          int
	Month         time.Month
	// AsOfDay is the 1-based cutoff applied when TillToday is set. Days after
	// the cutoff are not evaluated.
	AsOfDay   int
	TillToday bool
	// DefaultWeekOffDay is the company-wide weekday that classifies as week
	// off when no explicit week-off entry exists for the date. Nil means the
	// documented default, Tuesday.
	DefaultWeekOffDay *time.Weekday

	Holidays       calendar.DateSet
	WeekOffs       calendar.DateSet
	ApprovedLeaves calendar.DateSet
}

func (in *ClassifyInput) Validate() error {
	var errs validator.ValidationErrors

	// A missing email is a precondition violation: reject the whole call
	// rather than emit a partial summary.
	if validator.IsEmpty(in.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if in.Month < time.January || in.Month > time.December {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if in.Year < 2000 || in.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if in.TillToday && in.AsOfDay < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "as_of_day",
			Message: "as_of_day must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthSummaryRequest struct {
	EmployeeEmail string `json:"email"`
	Month         int    `json:"month"` // 1-12
	Year          int    `json:"year"`
	TillToday     bool   `json:"till_today"`
}

func (r *MonthSummaryRequest) Validate() error {
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

type PunchRequest struct {
	EmployeeEmail string `json:"email"`
	Login         string `json:"login"` // ISO-8601 timestamp
}

func (r *PunchRequest) Validate() error {
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

	if validator.IsEmpty(r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login timestamp is required",
		})
	} else if _, valid := validator.IsValidDateTime(r.Login); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login must be an ISO-8601 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DaySummaryResponse struct {
	Day    int    `json:"day"`
	Status string `json:"status"`
}

type MonthSummaryResponse struct {
	EmployeeEmail string `json:"employee_email"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`

	Present int `json:"present"`
	HalfDay int `json:"half"`
	Leave   int `json:"leave"`
	Absent  int `json:"absent"`
	WeekOff int `json:"week_off"`
	Holiday int `json:"holiday"`

	PaidLeavesUsed   int `json:"paid_leaves_used"`
	UnpaidLeaves     int `json:"unpaid_leaves"`
	PaidHalfDaysUsed int `json:"paid_half_days_used"`
	UnpaidHalfDays   int `json:"unpaid_half_days"`

	DaysEvaluated int                  `json:"days_evaluated"`
	DetailedDays  []DaySummaryResponse `json:"detailed_days"`
	Warnings      []string             `json:"warnings,omitempty"`
}

type RecordResponse struct {
	ID            string `json:"id"`
	EmployeeEmail string `json:"employee_email"`
	Date          string `json:"date"`
	Login         string `json:"login,omitempty"`
	CreatedAt     string `json:"created_at"`
}
