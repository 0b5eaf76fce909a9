package payroll

import "context"

type Repository interface {
	UpsertSalary(ctx context.Context, record SalaryRecord) (SalaryRecord, error)
	// GetSalaryForMonth resolves the salary effective for a month: the latest
	// record with month key less than or equal to the requested key. Returns
	// ErrNoSalaryHistory when no such record exists.
	GetSalaryForMonth(ctx context.Context, employeeEmail, monthKey string) (SalaryRecord, error)
	ListSalaryHistory(ctx context.Context, employeeEmail string) ([]SalaryRecord, error)
}
