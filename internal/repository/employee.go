package repository

import (
	"context"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return conn(ctx, r.db).Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := conn(ctx, r.db).First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByIDs retrieves all employees with the given IDs; missing IDs are skipped
func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	if len(ids) == 0 {
		return employees, nil
	}
	err := conn(ctx, r.db).Where("id IN ?", ids).Find(&employees).Error
	return employees, err
}

// List retrieves employees matching the filter with pagination
func (r *EmployeeRepository) List(ctx context.Context, filter EmployeeFilter, limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := conn(ctx, r.db).Model(&models.Employee{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where("(full_name ILIKE ? OR phone ILIKE ?)", like, like)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("full_name ASC").Limit(limit).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	return conn(ctx, r.db).Save(employee).Error
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
