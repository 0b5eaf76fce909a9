package leave

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryLeaveRepo struct {
	requests map[string]leave.Request
	nextID   int
}

func newMemoryLeaveRepo() *memoryLeaveRepo {
	return &memoryLeaveRepo{requests: map[string]leave.Request{}}
}

func (m *memoryLeaveRepo) Create(_ context.Context, r leave.Request) (leave.Request, error) {
	m.nextID++
	r.ID = fmt.Sprintf("lv-%03d", m.nextID)
	r.CreatedAt = time.Now()
	m.requests[r.ID] = r
	return r, nil
}

func (m *memoryLeaveRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	r, ok := m.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return r, nil
}

func (m *memoryLeaveRepo) List(_ context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range m.requests {
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		if filter.EmployeeEmail != nil && !strings.EqualFold(r.EmployeeEmail, *filter.EmployeeEmail) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memoryLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status, decidedBy string) (leave.Request, error) {
	r, ok := m.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	now := time.Now()
	r.Status = status
	r.DecidedBy = &decidedBy
	r.DecidedAt = &now
	m.requests[id] = r
	return r, nil
}

func (m *memoryLeaveRepo) ListApprovedDates(_ context.Context, email string, _ int, _ time.Month) ([]string, error) {
	var out []string
	for _, r := range m.requests {
		if r.Status == leave.StatusApproved && strings.EqualFold(r.EmployeeEmail, email) {
			out = append(out, r.Date)
		}
	}
	return out, nil
}

type staffDirectory struct{}

func (staffDirectory) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (staffDirectory) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (staffDirectory) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	if strings.EqualFold(email, "worker@example.com") {
		return employee.Employee{ID: "e1", Email: "worker@example.com", IsActive: true}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (staffDirectory) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func TestLeaveService_CreateStartsPending(t *testing.T) {
	svc := NewLeaveService(newMemoryLeaveRepo(), staffDirectory{})

	resp, err := svc.Create(context.Background(), leave.CreateRequest{
		EmployeeEmail: "worker@example.com",
		Date:          "2025-06-09",
		Reason:        "family function",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-09", resp.Date)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Nil(t, resp.DecidedBy)
}

func TestLeaveService_CreateUnknownEmployee(t *testing.T) {
	svc := NewLeaveService(newMemoryLeaveRepo(), staffDirectory{})

	_, err := svc.Create(context.Background(), leave.CreateRequest{
		EmployeeEmail: "ghost@example.com",
		Date:          "2025-06-09",
		Reason:        "family function",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveService_ApproveThenRejectFails(t *testing.T) {
	svc := NewLeaveService(newMemoryLeaveRepo(), staffDirectory{})

	created, err := svc.Create(context.Background(), leave.CreateRequest{
		EmployeeEmail: "worker@example.com",
		Date:          "2025-06-09",
		Reason:        "family function",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), leave.DecideRequest{ID: created.ID, DecidedBy: "admin@example.com"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), approved.Status)
	require.NotNil(t, approved.DecidedBy)
	assert.Equal(t, "admin@example.com", *approved.DecidedBy)
	assert.NotNil(t, approved.DecidedAt)

	// A decided request is final.
	_, err = svc.Reject(context.Background(), leave.DecideRequest{ID: created.ID, DecidedBy: "admin@example.com"})
	assert.ErrorIs(t, err, leave.ErrRequestAlreadyProcessed)

	_, err = svc.Approve(context.Background(), leave.DecideRequest{ID: created.ID, DecidedBy: "admin@example.com"})
	assert.ErrorIs(t, err, leave.ErrRequestAlreadyProcessed)
}

func TestLeaveService_DecideMissingRequest(t *testing.T) {
	svc := NewLeaveService(newMemoryLeaveRepo(), staffDirectory{})

	_, err := svc.Approve(context.Background(), leave.DecideRequest{ID: "lv-missing", DecidedBy: "admin@example.com"})
	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}

func TestLeaveService_ApprovedDatesFeedClassifier(t *testing.T) {
	repo := newMemoryLeaveRepo()
	svc := NewLeaveService(repo, staffDirectory{})

	created, err := svc.Create(context.Background(), leave.CreateRequest{
		EmployeeEmail: "worker@example.com",
		Date:          "2025-06-09",
		Reason:        "family function",
	})
	require.NoError(t, err)

	// Pending requests are invisible to the classifier.
	dates, err := repo.ListApprovedDates(context.Background(), "worker@example.com", 2025, time.June)
	require.NoError(t, err)
	assert.Empty(t, dates)

	_, err = svc.Approve(context.Background(), leave.DecideRequest{ID: created.ID, DecidedBy: "admin@example.com"})
	require.NoError(t, err)

	dates, err = repo.ListApprovedDates(context.Background(), "worker@example.com", 2025, time.June)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-09"}, dates)
}
