package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/dateutil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()
	query := `
		INSERT INTO attendance_records (id, employee_email, date, login)
		VALUES ($1, LOWER($2), $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeEmail, record.Date, record.Login,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// ListByEmailAndMonth implements attendance.Repository.
func (r *attendanceRepository) ListByEmailAndMonth(ctx context.Context, employeeEmail string, year int, month time.Month) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	firstDay := dateutil.Date(year, month, 1)
	lastDay := dateutil.Date(year, month, dateutil.DaysInMonth(year, month))

	query := `
		SELECT id, employee_email, date, login, created_at, updated_at
		FROM attendance_records
		WHERE LOWER(employee_email) = LOWER($1)
		  AND date >= $2 AND date <= $3
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, employeeEmail, firstDay, lastDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeEmail, &rec.Date, &rec.Login,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
