package employee

import "context"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)
	ListActive(ctx context.Context) ([]EmployeeResponse, error)
}
