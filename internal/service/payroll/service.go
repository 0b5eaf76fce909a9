package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/dateutil"
	"golang.org/x/sync/errgroup"
)

// runConcurrency bounds the fan-out of a batch payroll run. Employees are
// classified independently, so no coordination is needed beyond the limit.
const runConcurrency = 8

type PayrollServiceImpl struct {
	payrollRepo       payroll.Repository
	employeeRepo      employee.Repository
	attendanceService attendance.Service
	policy            payroll.Policy
}

func NewPayrollService(
	payrollRepo payroll.Repository,
	employeeRepo employee.Repository,
	attendanceService attendance.Service,
	policy payroll.Policy,
) payroll.Service {
	return &PayrollServiceImpl{
		payrollRepo:       payrollRepo,
		employeeRepo:      employeeRepo,
		attendanceService: attendanceService,
		policy:            policy,
	}
}

// GetSalaryReport implements payroll.Service.
func (s *PayrollServiceImpl) GetSalaryReport(ctx context.Context, req payroll.SalaryReportRequest) (payroll.SalaryReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryReportResponse{}, err
	}

	summary, err := s.attendanceService.GetMonthSummary(ctx, attendance.MonthSummaryRequest{
		EmployeeEmail: req.EmployeeEmail,
		Month:         req.Month,
		Year:          req.Year,
		TillToday:     req.TillToday,
	})
	if err != nil {
		return payroll.SalaryReportResponse{}, err
	}

	month := time.Month(req.Month)
	monthKey := dateutil.MonthKey(req.Year, month)

	dataError := ""
	salaryRecord, err := s.payrollRepo.GetSalaryForMonth(ctx, req.EmployeeEmail, monthKey)
	if err != nil {
		if !errors.Is(err, payroll.ErrNoSalaryHistory) {
			return payroll.SalaryReportResponse{}, err
		}
		// Missing salary history is a data error upstream: compute with 0
		// rather than failing the report.
		slog.Warn("no salary history for employee",
			"email", req.EmployeeEmail, "month", monthKey)
		salaryRecord = payroll.SalaryRecord{EmployeeEmail: req.EmployeeEmail}
		dataError = "no salary history entry at or before " + monthKey
	}

	totalDays := dateutil.DaysInMonth(req.Year, month)
	result, err := Compute(toMonthSummary(summary), salaryRecord.MonthlySalary, totalDays, summary.DaysEvaluated, s.policy)
	if err != nil {
		return payroll.SalaryReportResponse{}, err
	}

	return payroll.SalaryReportResponse{
		EmployeeEmail:        req.EmployeeEmail,
		Month:                req.Month,
		Year:                 req.Year,
		DaysInMonth:          totalDays,
		DaysCounted:          summary.DaysEvaluated,
		MonthlySalary:        result.MonthlySalary.Round(2),
		PerDaySalary:         result.PerDaySalary.Round(2),
		GrossSalaryTillToday: result.GrossSalaryTillToday.Round(2),
		TotalDeduction:       result.TotalDeduction.Round(2),
		NetSalary:            result.NetSalary.Round(2),
		Summary:              summary,
		DataError:            dataError,
	}, nil
}

// RunPayroll implements payroll.Service.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) ([]payroll.SalaryReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	reports := make([]payroll.SalaryReportResponse, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runConcurrency)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			report, err := s.GetSalaryReport(gctx, payroll.SalaryReportRequest{
				EmployeeEmail: emp.Email,
				Month:         req.Month,
				Year:          req.Year,
				TillToday:     req.TillToday,
			})
			if err != nil {
				return fmt.Errorf("payroll for %s: %w", emp.Email, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// UpsertSalary implements payroll.Service.
func (s *PayrollServiceImpl) UpsertSalary(ctx context.Context, req payroll.UpsertSalaryRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.EmployeeEmail); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	record, err := s.payrollRepo.UpsertSalary(ctx, payroll.SalaryRecord{
		EmployeeEmail: req.EmployeeEmail,
		MonthKey:      req.MonthKey,
		MonthlySalary: req.MonthlySalary,
	})
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	return mapToSalaryRecordResponse(record), nil
}

// ListSalaryHistory implements payroll.Service.
func (s *PayrollServiceImpl) ListSalaryHistory(ctx context.Context, employeeEmail string) ([]payroll.SalaryRecordResponse, error) {
	records, err := s.payrollRepo.ListSalaryHistory(ctx, employeeEmail)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.SalaryRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToSalaryRecordResponse(r))
	}
	return result, nil
}

// toMonthSummary rebuilds the classifier aggregate the calculator consumes
// from the transport shape.
func toMonthSummary(resp attendance.MonthSummaryResponse) attendance.MonthSummary {
	return attendance.MonthSummary{
		Present:          resp.Present,
		HalfDay:          resp.HalfDay,
		Leave:            resp.Leave,
		Absent:           resp.Absent,
		WeekOff:          resp.WeekOff,
		Holiday:          resp.Holiday,
		PaidLeavesUsed:   resp.PaidLeavesUsed,
		UnpaidLeaves:     resp.UnpaidLeaves,
		PaidHalfDaysUsed: resp.PaidHalfDaysUsed,
		UnpaidHalfDays:   resp.UnpaidHalfDays,
		DaysEvaluated:    resp.DaysEvaluated,
	}
}

func mapToSalaryRecordResponse(r payroll.SalaryRecord) payroll.SalaryRecordResponse {
	return payroll.SalaryRecordResponse{
		ID:            r.ID,
		EmployeeEmail: r.EmployeeEmail,
		MonthKey:      r.MonthKey,
		MonthlySalary: r.MonthlySalary,
	}
}
