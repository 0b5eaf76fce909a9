package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

// UpsertSalary implements payroll.Repository.
func (r *payrollRepository) UpsertSalary(ctx context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()
	query := `
		INSERT INTO salary_records (id, employee_email, month_key, monthly_salary)
		VALUES ($1, LOWER($2), $3, $4)
		ON CONFLICT (employee_email, month_key)
		DO UPDATE SET monthly_salary = EXCLUDED.monthly_salary, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeEmail, record.MonthKey, record.MonthlySalary,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return record, nil
}

// GetSalaryForMonth implements payroll.Repository. It resolves the salary
// effective for a month: the latest record with month_key <= the requested
// key.
func (r *payrollRepository) GetSalaryForMonth(ctx context.Context, employeeEmail, monthKey string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_email, month_key, monthly_salary, created_at, updated_at
		FROM salary_records
		WHERE LOWER(employee_email) = LOWER($1)
		  AND month_key <= $2
		ORDER BY month_key DESC
		LIMIT 1
	`

	var record payroll.SalaryRecord
	err := q.QueryRow(ctx, query, employeeEmail, monthKey).Scan(
		&record.ID, &record.EmployeeEmail, &record.MonthKey,
		&record.MonthlySalary, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrNoSalaryHistory
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get salary for month: %w", err)
	}

	return record, nil
}

// ListSalaryHistory implements payroll.Repository.
func (r *payrollRepository) ListSalaryHistory(ctx context.Context, employeeEmail string) ([]payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_email, month_key, monthly_salary, created_at, updated_at
		FROM salary_records
		WHERE LOWER(employee_email) = LOWER($1)
		ORDER BY month_key DESC
	`

	rows, err := q.Query(ctx, query, employeeEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary history: %w", err)
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		var record payroll.SalaryRecord
		if err := rows.Scan(
			&record.ID, &record.EmployeeEmail, &record.MonthKey,
			&record.MonthlySalary, &record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
