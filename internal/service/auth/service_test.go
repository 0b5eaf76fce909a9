package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/auth"
	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret-key-for-jwt"
	testPassword = "password123"
)

type rosterRepo struct {
	employees []employee.Employee
}

func (r *rosterRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees = append(r.employees, e)
	return e, nil
}

func (r *rosterRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *rosterRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *rosterRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestAuth(t *testing.T) (auth.Service, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &rosterRepo{employees: []employee.Employee{
		{ID: "e1", Name: "Asha", Email: "asha@example.com", PasswordHash: string(hash), IsAdmin: true, IsActive: true},
		{ID: "e2", Name: "Ravi", Email: "ravi@example.com", PasswordHash: string(hash), IsActive: false},
	}}

	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtService := newTestAuth(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "Asha@Example.com", // email match is case-insensitive
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	token, err := jwtauth.VerifyToken(jwtService.JWTAuth(), resp.AccessToken)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "e1", claims["employee_id"])
	assert.Equal(t, "asha@example.com", claims["email"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc, _ := newTestAuth(t)

	// An unknown email reads the same as a bad password to the caller.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_LoginInactiveAccount(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ravi@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestAuthService_RefreshRotatesTokens(t *testing.T) {
	svc, _ := newTestAuth(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestAuthService_RefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuth(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshGarbageToken(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.Refresh(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
