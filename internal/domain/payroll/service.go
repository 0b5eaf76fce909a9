package payroll

import "context"

type Service interface {
	// GetSalaryReport computes one employee's attendance-reconciled salary
	// for a month.
	GetSalaryReport(ctx context.Context, req SalaryReportRequest) (SalaryReportResponse, error)
	// RunPayroll computes reports for every active employee. Employees are
	// independent, so the run parallelizes across them.
	RunPayroll(ctx context.Context, req RunPayrollRequest) ([]SalaryReportResponse, error)
	UpsertSalary(ctx context.Context, req UpsertSalaryRequest) (SalaryRecordResponse, error)
	ListSalaryHistory(ctx context.Context, employeeEmail string) ([]SalaryRecordResponse, error)
}
