package repository

import (
	"context"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TicketRepository handles database operations for tickets
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(ticket).Error
}

// GetByID retrieves a ticket with its society
func (r *TicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := conn(ctx, r.db).Preload("Society").First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// List retrieves tickets matching the filter with pagination, newest first
func (r *TicketRepository) List(ctx context.Context, filter TicketFilter, limit, offset int) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var total int64

	query := conn(ctx, r.db).Model(&models.Ticket{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.SocietyID != nil {
		query = query.Where("society_id = ?", *filter.SocietyID)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Society").Order("created_at DESC").Limit(limit).Offset(offset).Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

// Update updates a ticket
func (r *TicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(ticket).Error
}

// ActivityRepository handles database operations for the activity log
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an activity entry
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return conn(ctx, r.db).Create(activity).Error
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := conn(ctx, r.db).First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// List retrieves activities matching the filter with pagination, newest first
func (r *ActivityRepository) List(ctx context.Context, filter ActivityFilter, limit, offset int) ([]models.Activity, int64, error) {
	var activities []models.Activity
	var total int64

	query := conn(ctx, r.db).Model(&models.Activity{})
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.ActorID != nil {
		query = query.Where("actor_id = ?", *filter.ActorID)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

// Delete deletes an activity
func (r *ActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.Activity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
