package auth

import (
	"context"
	"errors"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/auth"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employeeRepo employee.Repository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(emp)
}

// Refresh implements auth.Service.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	employeeID, ok := token.Get("employee_id")
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	idStr, ok := employeeID.(string)
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, idStr)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	return s.issueTokens(emp)
}

// Me implements auth.Service.
func (s *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	emp, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		IsAdmin:    emp.IsAdmin,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(emp employee.Employee) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
