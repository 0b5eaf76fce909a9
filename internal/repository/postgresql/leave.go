package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/dateutil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	request.ID = uuid.NewString()
	query := `
		INSERT INTO leave_requests (id, employee_email, date, reason, status)
		VALUES ($1, LOWER($2), $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeEmail, request.Date, request.Reason, request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.Request{}, leave.ErrRequestExists
		}
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_email, date, reason, status, decided_by, decided_at, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeEmail, &req.Date, &req.Reason, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// List implements leave.Repository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_email, date, reason, status, decided_by, decided_at, created_at, updated_at
		FROM leave_requests
		WHERE 1=1
	`
	var args []interface{}
	argPos := 1

	if filter.EmployeeEmail != nil {
		query += fmt.Sprintf(" AND LOWER(employee_email) = LOWER($%d)", argPos)
		args = append(args, *filter.EmployeeEmail)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Year != 0 && filter.Month != 0 {
		month := time.Month(filter.Month)
		query += fmt.Sprintf(" AND date >= $%d AND date <= $%d", argPos, argPos+1)
		args = append(args,
			dateutil.Date(filter.Year, month, 1),
			dateutil.Date(filter.Year, month, dateutil.DaysInMonth(filter.Year, month)))
		argPos += 2
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeEmail, &req.Date, &req.Reason, &req.Status,
			&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateStatus implements leave.Repository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, decidedBy string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, decided_by = $3, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_email, date, reason, status, decided_by, decided_at, created_at, updated_at
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id, status, decidedBy).Scan(
		&req.ID, &req.EmployeeEmail, &req.Date, &req.Reason, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return req, nil
}

// ListApprovedDates implements leave.Repository.
func (r *leaveRepository) ListApprovedDates(ctx context.Context, employeeEmail string, year int, month time.Month) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	firstDay := dateutil.Date(year, month, 1)
	lastDay := dateutil.Date(year, month, dateutil.DaysInMonth(year, month))

	query := `
		SELECT date
		FROM leave_requests
		WHERE LOWER(employee_email) = LOWER($1)
		  AND status = $2
		  AND date >= $3 AND date <= $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeEmail, leave.StatusApproved, firstDay, lastDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan leave date: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, rows.Err()
}
