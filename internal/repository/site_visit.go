package repository

import (
	"context"
	"time"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteVisitRepository handles database operations for supervisor site visits
type SiteVisitRepository struct {
	db *gorm.DB
}

// NewSiteVisitRepository creates a new site visit repository
func NewSiteVisitRepository(db *gorm.DB) *SiteVisitRepository {
	return &SiteVisitRepository{db: db}
}

// Create records a check-in
func (r *SiteVisitRepository) Create(ctx context.Context, visit *models.SupervisorSiteVisit) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(visit).Error
}

// GetByID retrieves a site visit with its location
func (r *SiteVisitRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SupervisorSiteVisit, error) {
	var visit models.SupervisorSiteVisit
	err := conn(ctx, r.db).Preload("Location").First(&visit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// GetOpenBySupervisor retrieves the supervisor's visit that has no checkout yet.
// Inside a transaction the row is locked.
func (r *SiteVisitRepository) GetOpenBySupervisor(ctx context.Context, supervisorID uuid.UUID) (*models.SupervisorSiteVisit, error) {
	var visit models.SupervisorSiteVisit
	query := conn(ctx, r.db)
	if inTransaction(ctx) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := query.First(&visit, "supervisor_id = ? AND checkout_at IS NULL", supervisorID).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// Close persists the checkout time and duration of a visit
func (r *SiteVisitRepository) Close(ctx context.Context, visit *models.SupervisorSiteVisit) error {
	result := conn(ctx, r.db).Model(&models.SupervisorSiteVisit{}).
		Where("id = ? AND checkout_at IS NULL", visit.ID).
		Updates(map[string]interface{}{
			"checkout_at":      visit.CheckoutAt,
			"duration_minutes": visit.DurationMinutes,
			"notes":            visit.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListInRange retrieves all visits of a supervisor checked in within [start, end)
func (r *SiteVisitRepository) ListInRange(ctx context.Context, supervisorID uuid.UUID, start, end time.Time) ([]models.SupervisorSiteVisit, error) {
	var visits []models.SupervisorSiteVisit
	err := conn(ctx, r.db).Preload("Location").
		Where("supervisor_id = ? AND checkin_at >= ? AND checkin_at < ?", supervisorID, start, end).
		Order("checkin_at ASC").
		Find(&visits).Error
	return visits, err
}

// ListInRangePaged is ListInRange newest first with pagination
func (r *SiteVisitRepository) ListInRangePaged(ctx context.Context, supervisorID uuid.UUID, start, end time.Time, limit, offset int) ([]models.SupervisorSiteVisit, int64, error) {
	var visits []models.SupervisorSiteVisit
	var total int64

	query := conn(ctx, r.db).Model(&models.SupervisorSiteVisit{}).
		Where("supervisor_id = ? AND checkin_at >= ? AND checkin_at < ?", supervisorID, start, end).
		Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Location").Order("checkin_at DESC").Limit(limit).Offset(offset).Find(&visits).Error
	if err != nil {
		return nil, 0, err
	}

	return visits, total, nil
}

// List retrieves visits matching the filter with pagination, newest first
func (r *SiteVisitRepository) List(ctx context.Context, filter VisitFilter, limit, offset int) ([]models.SupervisorSiteVisit, int64, error) {
	var visits []models.SupervisorSiteVisit
	var total int64

	query := conn(ctx, r.db).Model(&models.SupervisorSiteVisit{})
	if filter.SupervisorID != nil {
		query = query.Where("supervisor_id = ?", *filter.SupervisorID)
	}
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.OpenOnly {
		query = query.Where("checkout_at IS NULL")
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Supervisor").Preload("Location").
		Order("checkin_at DESC").
		Limit(limit).Offset(offset).
		Find(&visits).Error
	if err != nil {
		return nil, 0, err
	}

	return visits, total, nil
}
