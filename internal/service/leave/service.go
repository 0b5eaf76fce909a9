package leave

import (
	"context"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/dateutil"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements leave.Service.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.EmployeeEmail); err != nil {
		return leave.Response{}, err
	}

	date, err := dateutil.Normalize(req.Date)
	if err != nil {
		return leave.Response{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.Request{
		EmployeeEmail: req.EmployeeEmail,
		Date:          date,
		Reason:        req.Reason,
		Status:        leave.StatusPending,
	})
	if err != nil {
		return leave.Response{}, err
	}

	return mapToResponse(created), nil
}

// Approve implements leave.Service.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideRequest) (leave.Response, error) {
	return s.decide(ctx, req, leave.StatusApproved)
}

// Reject implements leave.Service.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideRequest) (leave.Response, error) {
	return s.decide(ctx, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideRequest, status leave.Status) (leave.Response, error) {
	current, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.Response{}, err
	}

	if current.Status != leave.StatusPending {
		return leave.Response{}, leave.ErrRequestAlreadyProcessed
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, req.ID, status, req.DecidedBy)
	if err != nil {
		return leave.Response{}, err
	}

	return mapToResponse(updated), nil
}

// List implements leave.Service.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Response, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]leave.Response, 0, len(requests))
	for _, r := range requests {
		result = append(result, mapToResponse(r))
	}
	return result, nil
}

func mapToResponse(r leave.Request) leave.Response {
	var decidedAt *string
	if r.DecidedAt != nil {
		str := r.DecidedAt.Format(time.RFC3339)
		decidedAt = &str
	}

	return leave.Response{
		ID:            r.ID,
		EmployeeEmail: r.EmployeeEmail,
		Date:          r.Date,
		Reason:        r.Reason,
		Status:        string(r.Status),
		DecidedBy:     r.DecidedBy,
		DecidedAt:     decidedAt,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}
