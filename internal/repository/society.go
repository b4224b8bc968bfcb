package repository

import (
	"context"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientTypeRepository handles database operations for client types
type ClientTypeRepository struct {
	db *gorm.DB
}

// NewClientTypeRepository creates a new client type repository
func NewClientTypeRepository(db *gorm.DB) *ClientTypeRepository {
	return &ClientTypeRepository{db: db}
}

// Create creates a new client type
func (r *ClientTypeRepository) Create(ctx context.Context, clientType *models.ClientType) error {
	return conn(ctx, r.db).Create(clientType).Error
}

// GetByID retrieves a client type by ID
func (r *ClientTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ClientType, error) {
	var clientType models.ClientType
	err := conn(ctx, r.db).First(&clientType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &clientType, nil
}

// GetByName retrieves a client type by name, ignoring case
func (r *ClientTypeRepository) GetByName(ctx context.Context, name string) (*models.ClientType, error) {
	var clientType models.ClientType
	err := conn(ctx, r.db).First(&clientType, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &clientType, nil
}

// List retrieves client types with pagination
func (r *ClientTypeRepository) List(ctx context.Context, limit, offset int) ([]models.ClientType, int64, error) {
	var clientTypes []models.ClientType
	var total int64

	if err := conn(ctx, r.db).Model(&models.ClientType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := conn(ctx, r.db).Order("name ASC").Limit(limit).Offset(offset).Find(&clientTypes).Error
	if err != nil {
		return nil, 0, err
	}

	return clientTypes, total, nil
}

// Update updates a client type
func (r *ClientTypeRepository) Update(ctx context.Context, clientType *models.ClientType) error {
	return conn(ctx, r.db).Save(clientType).Error
}

// Delete deletes a client type
func (r *ClientTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.ClientType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountSocieties counts societies using the client type
func (r *ClientTypeRepository) CountSocieties(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Society{}).Where("client_type_id = ?", id).Count(&count).Error
	return count, err
}

// SocietyRepository handles database operations for societies
type SocietyRepository struct {
	db *gorm.DB
}

// NewSocietyRepository creates a new society repository
func NewSocietyRepository(db *gorm.DB) *SocietyRepository {
	return &SocietyRepository{db: db}
}

// Create creates a new society
func (r *SocietyRepository) Create(ctx context.Context, society *models.Society) error {
	return conn(ctx, r.db).Omit("ClientType").Create(society).Error
}

// GetByID retrieves a society with its client type
func (r *SocietyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Society, error) {
	var society models.Society
	err := conn(ctx, r.db).Preload("ClientType").First(&society, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &society, nil
}

// List retrieves societies matching the filter with pagination
func (r *SocietyRepository) List(ctx context.Context, filter SocietyFilter, limit, offset int) ([]models.Society, int64, error) {
	var societies []models.Society
	var total int64

	query := conn(ctx, r.db).Model(&models.Society{})
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where("(name ILIKE ? OR address ILIKE ? OR contact_person ILIKE ?)", like, like, like)
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", escapeLike(filter.City))
	}
	if filter.ClientTypeID != nil {
		query = query.Where("client_type_id = ?", *filter.ClientTypeID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("ClientType").Order("name ASC").Limit(limit).Offset(offset).Find(&societies).Error
	if err != nil {
		return nil, 0, err
	}

	return societies, total, nil
}

// Update updates a society
func (r *SocietyRepository) Update(ctx context.Context, society *models.Society) error {
	return conn(ctx, r.db).Omit("ClientType").Save(society).Error
}

// Delete deletes a society
func (r *SocietyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.Society{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	return conn(ctx, r.db).Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := conn(ctx, r.db).First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByName retrieves a shift by name
func (r *ShiftRepository) GetByName(ctx context.Context, name string) (*models.Shift, error) {
	var shift models.Shift
	err := conn(ctx, r.db).First(&shift, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves every shift ordered by start time
func (r *ShiftRepository) GetAll(ctx context.Context) ([]models.Shift, error) {
	var shifts []models.Shift
	err := conn(ctx, r.db).Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

// Update updates a shift
func (r *ShiftRepository) Update(ctx context.Context, shift *models.Shift) error {
	return conn(ctx, r.db).Save(shift).Error
}

// Delete deletes a shift
func (r *ShiftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.Shift{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
