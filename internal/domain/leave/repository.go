package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) (Request, error)
	// ListApprovedDates returns the dates of approved full-day leaves for an
	// employee within a calendar month. The email match is case-insensitive.
	ListApprovedDates(ctx context.Context, employeeEmail string, year int, month time.Month) ([]string, error)
}
