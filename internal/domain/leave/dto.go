package leave

import (
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeEmail string `json:"email"`
	Date          string `json:"date"` // YYYY-MM-DD
	Reason        string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
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

type DecideRequest struct {
	ID        string `json:"-"`
	DecidedBy string `json:"-"`
}

type ListFilter struct {
	EmployeeEmail *string
	Status        *string
	Year          int
	Month         int
}

type Response struct {
	ID            string  `json:"id"`
	EmployeeEmail string  `json:"employee_email"`
	Date          string  `json:"date"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
