package employee

import "context"

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
}
