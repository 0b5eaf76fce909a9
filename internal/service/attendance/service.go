package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/calendar"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/dateutil"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo    attendance.Repository
	calendarRepo      calendar.Repository
	leaveRepo         leave.Repository
	employeeRepo      employee.Repository
	defaultWeekOffDay time.Weekday
	now               func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	calendarRepo calendar.Repository,
	leaveRepo leave.Repository,
	employeeRepo employee.Repository,
	defaultWeekOffDay time.Weekday,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo:    attendanceRepo,
		calendarRepo:      calendarRepo,
		leaveRepo:         leaveRepo,
		employeeRepo:      employeeRepo,
		defaultWeekOffDay: defaultWeekOffDay,
		now:               time.Now,
	}
}

// Punch implements attendance.Service.
func (s *AttendanceServiceImpl) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.EmployeeEmail); err != nil {
		return attendance.RecordResponse{}, err
	}

	login, _ := validator.IsValidDateTime(req.Login)
	loginUTC := login.UTC()

	// The punch belongs to the IST calendar day of the login instant,
	// whatever zone the client sent.
	ist := login.In(dateutil.IST)
	record := attendance.Record{
		EmployeeEmail: req.EmployeeEmail,
		Date:          dateutil.Date(ist.Year(), ist.Month(), ist.Day()),
		Login:         &loginUTC,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return mapToRecordResponse(created), nil
}

// GetMonthSummary implements attendance.Service.
func (s *AttendanceServiceImpl) GetMonthSummary(ctx context.Context, req attendance.MonthSummaryRequest) (attendance.MonthSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.EmployeeEmail); err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	in, records, err := s.buildClassifyInput(ctx, req)
	if err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	sum, err := Classify(records, in)
	if err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	for _, w := range sum.Warnings {
		slog.Warn("attendance data quality issue",
			"email", req.EmployeeEmail, "month", req.Month, "year", req.Year, "detail", w)
	}

	return mapToSummaryResponse(req, sum), nil
}

// buildClassifyInput fetches the month's punches and calendar metadata and
// assembles the classifier input. Unparseable dates in the stored sets are
// collected as warnings through NewDateSet rather than failing the call.
func (s *AttendanceServiceImpl) buildClassifyInput(ctx context.Context, req attendance.MonthSummaryRequest) (attendance.ClassifyInput, []attendance.Record, error) {
	month := time.Month(req.Month)

	records, err := s.attendanceRepo.ListByEmailAndMonth(ctx, req.EmployeeEmail, req.Year, month)
	if err != nil {
		return attendance.ClassifyInput{}, nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	holidays, err := s.calendarRepo.ListHolidays(ctx, req.Year, month)
	if err != nil {
		return attendance.ClassifyInput{}, nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidayDates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		holidayDates = append(holidayDates, h.Date)
	}

	weekOffs, err := s.calendarRepo.ListWeekOffs(ctx, req.EmployeeEmail, req.Year, month)
	if err != nil {
		return attendance.ClassifyInput{}, nil, fmt.Errorf("failed to list week offs: %w", err)
	}
	weekOffDates := make([]string, 0, len(weekOffs))
	for _, w := range weekOffs {
		weekOffDates = append(weekOffDates, w.Date)
	}

	leaveDates, err := s.leaveRepo.ListApprovedDates(ctx, req.EmployeeEmail, req.Year, month)
	if err != nil {
		return attendance.ClassifyInput{}, nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	holidaySet, holidayWarns := calendar.NewDateSet(holidayDates)
	weekOffSet, weekOffWarns := calendar.NewDateSet(weekOffDates)
	leaveSet, leaveWarns := calendar.NewDateSet(leaveDates)
	for _, w := range append(append(holidayWarns, weekOffWarns...), leaveWarns...) {
		slog.Warn("skipping unparseable calendar date",
			"email", req.EmployeeEmail, "detail", w)
	}

	weekOffDay := s.defaultWeekOffDay
	in := attendance.ClassifyInput{
		EmployeeEmail:     req.EmployeeEmail,
		Year:              req.Year,
		Month:             month,
		DefaultWeekOffDay: &weekOffDay,
		Holidays:          holidaySet,
		WeekOffs:          weekOffSet,
		ApprovedLeaves:    leaveSet,
	}

	if req.TillToday {
		in.TillToday = true
		in.AsOfDay = s.asOfDay(req.Year, month)
	}

	return in, records, nil
}

// asOfDay resolves the till-today cutoff: the current IST day for the current
// month, the whole month for past months, zero days for future months.
func (s *AttendanceServiceImpl) asOfDay(year int, month time.Month) int {
	nowYear, nowMonth, nowDay := dateutil.TodayIST(s.now())
	switch {
	case year == nowYear && month == nowMonth:
		return nowDay
	case year > nowYear || (year == nowYear && month > nowMonth):
		return 0
	default:
		return dateutil.DaysInMonth(year, month)
	}
}

func mapToRecordResponse(r attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:            r.ID,
		EmployeeEmail: r.EmployeeEmail,
		Date:          r.Date,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.Login != nil {
		resp.Login = r.Login.Format(time.RFC3339)
	}
	return resp
}

func mapToSummaryResponse(req attendance.MonthSummaryRequest, sum attendance.MonthSummary) attendance.MonthSummaryResponse {
	days := make([]attendance.DaySummaryResponse, 0, len(sum.Days))
	for _, d := range sum.Days {
		days = append(days, attendance.DaySummaryResponse{Day: d.Day, Status: string(d.Status)})
	}

	return attendance.MonthSummaryResponse{
		EmployeeEmail:    req.EmployeeEmail,
		Month:            req.Month,
		Year:             req.Year,
		Present:          sum.Present,
		HalfDay:          sum.HalfDay,
		Leave:            sum.Leave,
		Absent:           sum.Absent,
		WeekOff:          sum.WeekOff,
		Holiday:          sum.Holiday,
		PaidLeavesUsed:   sum.PaidLeavesUsed,
		UnpaidLeaves:     sum.UnpaidLeaves,
		PaidHalfDaysUsed: sum.PaidHalfDaysUsed,
		UnpaidHalfDays:   sum.UnpaidHalfDays,
		DaysEvaluated:    sum.DaysEvaluated,
		DetailedDays:     days,
		Warnings:         sum.Warnings,
	}
}
