package service

import (
	"context"
	"fmt"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	activity  ActivityRecorder
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		activity:  activity,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the request to enroll an employee
type CreateEmployeeRequest struct {
	FullName string              `json:"full_name" form:"full_name" validate:"required,notblank,max=200"`
	Phone    string              `json:"phone" form:"phone" validate:"omitempty,max=20"`
	Role     models.EmployeeRole `json:"role" form:"role" validate:"required"`
	IsActive *bool               `json:"is_active" form:"is_active"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	FullName *string              `json:"full_name" form:"full_name" validate:"omitempty,notblank,max=200"`
	Phone    *string              `json:"phone" form:"phone" validate:"omitempty,max=20"`
	Role     *models.EmployeeRole `json:"role" form:"role"`
	IsActive *bool                `json:"is_active" form:"is_active"`
}

// ListEmployeesRequest filters the employee listing
type ListEmployeesRequest struct {
	PageRequest
	Role       models.EmployeeRole `json:"role" form:"role"`
	Search     string              `json:"search" form:"search"`
	ActiveOnly bool                `json:"active_only" form:"active_only"`
}

// Create enrolls a new employee
func (s *EmployeeService) Create(ctx context.Context, req *CreateEmployeeRequest) (*models.Employee, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid employee role")
	}

	employee := &models.Employee{
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
		IsActive: true,
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, uniqueOr(err, apperrors.ErrEmployeeExists, "create employee")
	}

	s.activity.Record(ctx, "create", "employee", employee.ID, fmt.Sprintf("Enrolled %s as %s", employee.FullName, employee.Role))
	return employee, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrEmployeeNotFound, "get employee")
	}
	return employee, nil
}

// List returns a page of employees
func (s *EmployeeService) List(ctx context.Context, req *ListEmployeesRequest) (*Page[models.Employee], error) {
	filter := repository.EmployeeFilter{Role: req.Role, Search: req.Search, ActiveOnly: req.ActiveOnly}
	items, total, err := s.repo.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return newPage(items, req.PageRequest, total), nil
}

// Update updates an employee
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrEmployeeNotFound, "get employee")
	}

	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", "invalid employee role")
		}
		employee.Role = *req.Role
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, uniqueOr(err, apperrors.ErrEmployeeExists, "update employee")
	}

	s.activity.Record(ctx, "update", "employee", employee.ID, "Updated employee "+employee.FullName)
	return employee, nil
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrEmployeeNotFound, "delete employee")
	}
	s.activity.Record(ctx, "delete", "employee", id, "Deleted employee")
	return nil
}
