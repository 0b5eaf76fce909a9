package payroll

import (
	"context"
	"strings"
	"testing"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	summary attendance.MonthSummaryResponse
}

func (f *fakeAttendanceService) Punch(_ context.Context, _ attendance.PunchRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakeAttendanceService) GetMonthSummary(_ context.Context, req attendance.MonthSummaryRequest) (attendance.MonthSummaryResponse, error) {
	summary := f.summary
	summary.EmployeeEmail = req.EmployeeEmail
	summary.Month = req.Month
	summary.Year = req.Year
	return summary, nil
}

type fakeSalaryRepo struct {
	records map[string]payroll.SalaryRecord // keyed by lowercase email
}

func (f *fakeSalaryRepo) UpsertSalary(_ context.Context, r payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	r.ID = "sal-1"
	f.records[strings.ToLower(r.EmployeeEmail)] = r
	return r, nil
}

func (f *fakeSalaryRepo) GetSalaryForMonth(_ context.Context, email, monthKey string) (payroll.SalaryRecord, error) {
	r, ok := f.records[strings.ToLower(email)]
	if !ok || r.MonthKey > monthKey {
		return payroll.SalaryRecord{}, payroll.ErrNoSalaryHistory
	}
	return r, nil
}

func (f *fakeSalaryRepo) ListSalaryHistory(_ context.Context, email string) ([]payroll.SalaryRecord, error) {
	r, ok := f.records[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return []payroll.SalaryRecord{r}, nil
}

type fakeStaffRepo struct {
	active []employee.Employee
}

func (f *fakeStaffRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeStaffRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range f.active {
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeStaffRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return f.active, nil
}

// June 2025: 30 days, 20 evaluated, 2 unpaid leaves.
func juneSummary() attendance.MonthSummaryResponse {
	return attendance.MonthSummaryResponse{
		Present:        13,
		Leave:          3,
		WeekOff:        3,
		Holiday:        1,
		PaidLeavesUsed: 1,
		UnpaidLeaves:   2,
		DaysEvaluated:  20,
	}
}

func TestPayrollService_GetSalaryReport(t *testing.T) {
	repo := &fakeSalaryRepo{records: map[string]payroll.SalaryRecord{
		"a@example.com": {EmployeeEmail: "a@example.com", MonthKey: "2025-01", MonthlySalary: money("30000")},
	}}
	staff := &fakeStaffRepo{active: []employee.Employee{{ID: "e1", Email: "a@example.com", IsActive: true}}}
	svc := NewPayrollService(repo, staff, &fakeAttendanceService{summary: juneSummary()}, defaultPolicy)

	report, err := svc.GetSalaryReport(context.Background(), payroll.SalaryReportRequest{
		EmployeeEmail: "a@example.com",
		Month:         6,
		Year:          2025,
		TillToday:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, report.DaysInMonth)
	assert.Equal(t, 20, report.DaysCounted)
	assert.True(t, report.PerDaySalary.Equal(money("1000")), "per day = %s", report.PerDaySalary)
	assert.True(t, report.GrossSalaryTillToday.Equal(money("20000")), "gross = %s", report.GrossSalaryTillToday)
	assert.True(t, report.TotalDeduction.Equal(money("2000")), "deduction = %s", report.TotalDeduction)
	assert.True(t, report.NetSalary.Equal(money("18000")), "net = %s", report.NetSalary)
	assert.Empty(t, report.DataError)
}

func TestPayrollService_GetSalaryReport_RoundsAtPresentation(t *testing.T) {
	// 10000 over 31 days does not divide evenly; the report must carry
	// two-decimal figures.
	repo := &fakeSalaryRepo{records: map[string]payroll.SalaryRecord{
		"a@example.com": {EmployeeEmail: "a@example.com", MonthKey: "2025-01", MonthlySalary: money("10000")},
	}}
	staff := &fakeStaffRepo{active: []employee.Employee{{ID: "e1", Email: "a@example.com", IsActive: true}}}
	summary := attendance.MonthSummaryResponse{Present: 10, DaysEvaluated: 10}
	svc := NewPayrollService(repo, staff, &fakeAttendanceService{summary: summary}, defaultPolicy)

	report, err := svc.GetSalaryReport(context.Background(), payroll.SalaryReportRequest{
		EmployeeEmail: "a@example.com",
		Month:         7,
		Year:          2025,
		TillToday:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, "322.58", report.PerDaySalary.String())
	assert.Equal(t, "3225.81", report.GrossSalaryTillToday.String())
	assert.Equal(t, report.GrossSalaryTillToday.String(), report.NetSalary.String())
}

func TestPayrollService_GetSalaryReport_NoSalaryHistory(t *testing.T) {
	repo := &fakeSalaryRepo{records: map[string]payroll.SalaryRecord{}}
	staff := &fakeStaffRepo{active: []employee.Employee{{ID: "e1", Email: "a@example.com", IsActive: true}}}
	svc := NewPayrollService(repo, staff, &fakeAttendanceService{summary: juneSummary()}, defaultPolicy)

	report, err := svc.GetSalaryReport(context.Background(), payroll.SalaryReportRequest{
		EmployeeEmail: "a@example.com",
		Month:         6,
		Year:          2025,
	})
	require.NoError(t, err, "missing salary history must not fail the report")

	assert.NotEmpty(t, report.DataError)
	assert.True(t, report.NetSalary.IsZero())
	assert.True(t, report.MonthlySalary.IsZero())
}

func TestPayrollService_RunPayroll(t *testing.T) {
	repo := &fakeSalaryRepo{records: map[string]payroll.SalaryRecord{
		"a@example.com": {EmployeeEmail: "a@example.com", MonthKey: "2025-01", MonthlySalary: money("30000")},
		"b@example.com": {EmployeeEmail: "b@example.com", MonthKey: "2025-01", MonthlySalary: money("60000")},
	}}
	staff := &fakeStaffRepo{active: []employee.Employee{
		{ID: "e1", Email: "a@example.com", IsActive: true},
		{ID: "e2", Email: "b@example.com", IsActive: true},
		{ID: "e3", Email: "c@example.com", IsActive: true},
	}}
	svc := NewPayrollService(repo, staff, &fakeAttendanceService{summary: juneSummary()}, defaultPolicy)

	reports, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{Month: 6, Year: 2025, TillToday: true})
	require.NoError(t, err)
	require.Len(t, reports, 3)

	// Reports come back in roster order regardless of completion order.
	assert.Equal(t, "a@example.com", reports[0].EmployeeEmail)
	assert.Equal(t, "b@example.com", reports[1].EmployeeEmail)
	assert.Equal(t, "c@example.com", reports[2].EmployeeEmail)

	assert.True(t, reports[0].NetSalary.Equal(money("18000")))
	assert.True(t, reports[1].NetSalary.Equal(money("36000")))
	assert.NotEmpty(t, reports[2].DataError, "no salary history for c@example.com")
}

func TestPayrollService_UpsertSalary_UnknownEmployee(t *testing.T) {
	repo := &fakeSalaryRepo{records: map[string]payroll.SalaryRecord{}}
	svc := NewPayrollService(repo, &fakeStaffRepo{}, &fakeAttendanceService{}, defaultPolicy)

	_, err := svc.UpsertSalary(context.Background(), payroll.UpsertSalaryRequest{
		EmployeeEmail: "nobody@example.com",
		MonthKey:      "2025-06",
		MonthlySalary: money("30000"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
