package calendar

import (
	"context"
	"time"
)

type Repository interface {
	CreateHoliday(ctx context.Context, holiday Holiday) (Holiday, error)
	ListHolidays(ctx context.Context, year int, month time.Month) ([]Holiday, error)
	CreateWeekOff(ctx context.Context, weekOff WeekOff) (WeekOff, error)
	ListWeekOffs(ctx context.Context, employeeEmail string, year int, month time.Month) ([]WeekOff, error)
}
