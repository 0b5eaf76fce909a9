package calendar

import (
	"context"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/calendar"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/dateutil"
)

type CalendarServiceImpl struct {
	calendarRepo calendar.Repository
	employeeRepo employee.Repository
}

func NewCalendarService(calendarRepo calendar.Repository, employeeRepo employee.Repository) calendar.Service {
	return &CalendarServiceImpl{
		calendarRepo: calendarRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateHoliday implements calendar.Service.
func (s *CalendarServiceImpl) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	date, err := dateutil.Normalize(req.Date)
	if err != nil {
		return calendar.HolidayResponse{}, err
	}

	created, err := s.calendarRepo.CreateHoliday(ctx, calendar.Holiday{
		Date:   date,
		Reason: req.Reason,
	})
	if err != nil {
		return calendar.HolidayResponse{}, err
	}

	return calendar.HolidayResponse{ID: created.ID, Date: created.Date, Reason: created.Reason}, nil
}

// ListHolidays implements calendar.Service.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context, year int, month time.Month) ([]calendar.HolidayResponse, error) {
	holidays, err := s.calendarRepo.ListHolidays(ctx, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, calendar.HolidayResponse{ID: h.ID, Date: h.Date, Reason: h.Reason})
	}
	return result, nil
}

// CreateWeekOff implements calendar.Service.
func (s *CalendarServiceImpl) CreateWeekOff(ctx context.Context, req calendar.CreateWeekOffRequest) (calendar.WeekOffResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.WeekOffResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.EmployeeEmail); err != nil {
		return calendar.WeekOffResponse{}, err
	}

	date, err := dateutil.Normalize(req.Date)
	if err != nil {
		return calendar.WeekOffResponse{}, err
	}

	created, err := s.calendarRepo.CreateWeekOff(ctx, calendar.WeekOff{
		EmployeeEmail: req.EmployeeEmail,
		Date:          date,
	})
	if err != nil {
		return calendar.WeekOffResponse{}, err
	}

	return calendar.WeekOffResponse{
		ID:            created.ID,
		EmployeeEmail: created.EmployeeEmail,
		Date:          created.Date,
	}, nil
}

// ListWeekOffs implements calendar.Service.
func (s *CalendarServiceImpl) ListWeekOffs(ctx context.Context, employeeEmail string, year int, month time.Month) ([]calendar.WeekOffResponse, error) {
	weekOffs, err := s.calendarRepo.ListWeekOffs(ctx, employeeEmail, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]calendar.WeekOffResponse, 0, len(weekOffs))
	for _, w := range weekOffs {
		result = append(result, calendar.WeekOffResponse{
			ID:            w.ID,
			EmployeeEmail: w.EmployeeEmail,
			Date:          w.Date,
		})
	}
	return result, nil
}
