package response

import (
	"errors"
	"net/http"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/auth"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/calendar"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "A punch already exists for this date")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this date")
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrWeekOffExists):
		Conflict(w, "Week off already exists for this employee and date")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrRequestExists):
		Conflict(w, "A leave request already exists for this date")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidMonthLength),
		errors.Is(err, payroll.ErrInvalidSalary),
		errors.Is(err, payroll.ErrInvalidDaysCounted):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrNoSalaryHistory):
		NotFound(w, "No salary history for this employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
