package leave

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Approve(ctx context.Context, req DecideRequest) (Response, error)
	Reject(ctx context.Context, req DecideRequest) (Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, error)
}
