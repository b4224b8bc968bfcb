package repository

import (
	"context"
	"time"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterRepository handles database operations for roster assignments
type RosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Create creates a new roster assignment
func (r *RosterRepository) Create(ctx context.Context, assignment *models.RosterAssignment) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(assignment).Error
}

// CreateBatch inserts all assignments in one statement
func (r *RosterRepository) CreateBatch(ctx context.Context, assignments []models.RosterAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return conn(ctx, r.db).Omit(clause.Associations).Create(&assignments).Error
}

// GetByID retrieves a roster assignment with guard, society, shift and team
func (r *RosterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RosterAssignment, error) {
	var assignment models.RosterAssignment
	err := r.withRelations(conn(ctx, r.db)).First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// List retrieves roster assignments matching the filter with pagination
func (r *RosterRepository) List(ctx context.Context, filter RosterFilter, limit, offset int) ([]models.RosterAssignment, int64, error) {
	var assignments []models.RosterAssignment
	var total int64

	query := r.applyFilter(conn(ctx, r.db).Model(&models.RosterAssignment{}), filter).Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withRelations(query).
		Order("roster_assignments.start_date DESC, roster_assignments.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// ListAll retrieves every roster assignment matching the filter
func (r *RosterRepository) ListAll(ctx context.Context, filter RosterFilter) ([]models.RosterAssignment, error) {
	var assignments []models.RosterAssignment
	err := r.withRelations(r.applyFilter(conn(ctx, r.db).Model(&models.RosterAssignment{}), filter)).
		Order("roster_assignments.start_date ASC").
		Find(&assignments).Error
	return assignments, err
}

// Update updates a roster assignment
func (r *RosterRepository) Update(ctx context.Context, assignment *models.RosterAssignment) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(assignment).Error
}

// Delete deletes a roster assignment
func (r *RosterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.RosterAssignment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindOverlapping returns assignments of the guards whose inclusive range
// intersects start..end, optionally ignoring one assignment
func (r *RosterRepository) FindOverlapping(ctx context.Context, guardIDs []uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.RosterAssignment, error) {
	var assignments []models.RosterAssignment
	if len(guardIDs) == 0 {
		return assignments, nil
	}

	query := conn(ctx, r.db).
		Where("guard_id IN ?", guardIDs).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	err := query.Find(&assignments).Error
	return assignments, err
}

// DetachTeam clears the team reference on every assignment of a team
func (r *RosterRepository) DetachTeam(ctx context.Context, teamID uuid.UUID) error {
	return conn(ctx, r.db).Model(&models.RosterAssignment{}).
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
}

func (r *RosterRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Guard").Preload("Society").Preload("Shift").Preload("Team")
}

func (r *RosterRepository) applyFilter(query *gorm.DB, filter RosterFilter) *gorm.DB {
	if filter.SocietyID != nil {
		query = query.Where("roster_assignments.society_id = ?", *filter.SocietyID)
	}
	if filter.ShiftID != nil {
		query = query.Where("roster_assignments.shift_id = ?", *filter.ShiftID)
	}
	if filter.GuardID != nil {
		query = query.Where("roster_assignments.guard_id = ?", *filter.GuardID)
	}
	if filter.TeamID != nil {
		query = query.Where("roster_assignments.team_id = ?", *filter.TeamID)
	}
	if filter.ActiveOn != nil {
		query = query.Where("roster_assignments.start_date <= ? AND roster_assignments.end_date >= ?", *filter.ActiveOn, *filter.ActiveOn)
	}
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where(`(EXISTS (SELECT 1 FROM employees e WHERE e.id = roster_assignments.guard_id AND e.full_name ILIKE ?)
			OR EXISTS (SELECT 1 FROM societies s WHERE s.id = roster_assignments.society_id AND s.name ILIKE ?))`, like, like)
	}
	return query
}
