package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)
	// ListByEmailAndMonth returns all punch records for an employee within a
	// calendar month. The email match is case-insensitive.
	ListByEmailAndMonth(ctx context.Context, employeeEmail string, year int, month time.Month) ([]Record, error)
}
