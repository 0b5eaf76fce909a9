package auth

import "context"

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Me(ctx context.Context) (MeResponse, error)
}
