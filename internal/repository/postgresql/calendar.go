package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/calendar"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/dateutil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type calendarRepository struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.Repository {
	return &calendarRepository{db: db}
}

// CreateHoliday implements calendar.Repository.
func (r *calendarRepository) CreateHoliday(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	holiday.ID = uuid.NewString()
	query := `
		INSERT INTO holidays (id, date, reason)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, holiday.ID, holiday.Date, holiday.Reason).Scan(&holiday.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return calendar.Holiday{}, calendar.ErrHolidayExists
		}
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}

// ListHolidays implements calendar.Repository.
func (r *calendarRepository) ListHolidays(ctx context.Context, year int, month time.Month) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	firstDay := dateutil.Date(year, month, 1)
	lastDay := dateutil.Date(year, month, dateutil.DaysInMonth(year, month))

	query := `
		SELECT id, date, reason, created_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, firstDay, lastDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Reason, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// CreateWeekOff implements calendar.Repository.
func (r *calendarRepository) CreateWeekOff(ctx context.Context, weekOff calendar.WeekOff) (calendar.WeekOff, error) {
	q := GetQuerier(ctx, r.db)

	weekOff.ID = uuid.NewString()
	query := `
		INSERT INTO week_offs (id, employee_email, date)
		VALUES ($1, LOWER($2), $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, weekOff.ID, weekOff.EmployeeEmail, weekOff.Date).Scan(&weekOff.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return calendar.WeekOff{}, calendar.ErrWeekOffExists
		}
		return calendar.WeekOff{}, fmt.Errorf("failed to create week off: %w", err)
	}

	return weekOff, nil
}

// ListWeekOffs implements calendar.Repository.
func (r *calendarRepository) ListWeekOffs(ctx context.Context, employeeEmail string, year int, month time.Month) ([]calendar.WeekOff, error) {
	q := GetQuerier(ctx, r.db)

	firstDay := dateutil.Date(year, month, 1)
	lastDay := dateutil.Date(year, month, dateutil.DaysInMonth(year, month))

	query := `
		SELECT id, employee_email, date, created_at
		FROM week_offs
		WHERE LOWER(employee_email) = LOWER($1)
		  AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeEmail, firstDay, lastDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list week offs: %w", err)
	}
	defer rows.Close()

	var weekOffs []calendar.WeekOff
	for rows.Next() {
		var w calendar.WeekOff
		if err := rows.Scan(&w.ID, &w.EmployeeEmail, &w.Date, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan week off: %w", err)
		}
		weekOffs = append(weekOffs, w)
	}

	return weekOffs, rows.Err()
}
