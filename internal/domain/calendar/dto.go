package calendar

import (
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateWeekOffRequest struct {
	EmployeeEmail string `json:"employee_email"`
	Date          string `json:"date"` // YYYY-MM-DD
}

func (r *CreateWeekOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_email",
			Message: "employee_email is required",
		})
	} else if !validator.IsValidEmail(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_email",
			Message: "employee_email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

type WeekOffResponse struct {
	ID            string `json:"id"`
	EmployeeEmail string `json:"employee_email"`
	Date          string `json:"date"`
}
