package employee

import (
	"context"
	"errors"
	"strings"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hr/attendly-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.Repository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The uniqueness check and the insert run in one transaction so two
	// concurrent registrations cannot both pass the check.
	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.employeeRepo.GetByEmail(txCtx, req.Email); err == nil {
			return employee.ErrEmailExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: string(hash),
			IsAdmin:      req.IsAdmin,
			IsActive:     true,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

// GetByEmail implements employee.Service.
func (s *EmployeeServiceImpl) GetByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

// ListActive implements employee.Service.
func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}
	return result, nil
}

func mapToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		IsAdmin:  e.IsAdmin,
		IsActive: e.IsActive,
	}
}
