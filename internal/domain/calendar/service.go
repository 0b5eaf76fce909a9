package calendar

import (
	"context"
	"time"
)

type Service interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, year int, month time.Month) ([]HolidayResponse, error)
	CreateWeekOff(ctx context.Context, req CreateWeekOffRequest) (WeekOffResponse, error)
	ListWeekOffs(ctx context.Context, employeeEmail string, year int, month time.Month) ([]WeekOffResponse, error)
}
