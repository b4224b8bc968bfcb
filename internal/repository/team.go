package repository

import (
	"context"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const memberCountExpr = "(SELECT COUNT(*) FROM team_memberships tm WHERE tm.team_id = teams.id AND tm.role = 'member')"

// TeamRepository handles database operations for teams and their memberships
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team. Memberships are written separately with ReplaceMemberships.
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(team).Error
}

// GetByID retrieves a team with its memberships and their employees
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := conn(ctx, r.db).Preload("Memberships.Employee").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	var team models.Team
	err := conn(ctx, r.db).First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves teams matching the filter with pagination.
// Search matches the team name or the supervisor's name.
func (r *TeamRepository) List(ctx context.Context, filter TeamFilter, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := conn(ctx, r.db).Model(&models.Team{})
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where(`(teams.name ILIKE ? OR EXISTS (
			SELECT 1 FROM team_memberships tm JOIN employees e ON e.id = tm.employee_id
			WHERE tm.team_id = teams.id AND tm.role = ? AND e.full_name ILIKE ?))`,
			like, models.MembershipRoleSupervisor, like)
	}
	if lo, hi, ok := filter.Size.Range(); ok {
		if hi > 0 {
			query = query.Where(memberCountExpr+" BETWEEN ? AND ?", lo, hi)
		} else {
			query = query.Where(memberCountExpr+" >= ?", lo)
		}
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Memberships.Employee").
		Order("teams.name ASC").
		Limit(limit).Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team's own columns
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return conn(ctx, r.db).Model(team).Select("name", "description").Updates(team).Error
}

// Delete removes a team and all its memberships. Employees are untouched.
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamMembership{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Team{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ReplaceMemberships swaps the team's membership set for the given one
func (r *TeamRepository) ReplaceMemberships(ctx context.Context, teamID uuid.UUID, memberships []models.TeamMembership) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&models.TeamMembership{}).Error; err != nil {
			return err
		}
		if len(memberships) == 0 {
			return nil
		}
		for i := range memberships {
			memberships[i].TeamID = teamID
		}
		return tx.Omit(clause.Associations).Create(&memberships).Error
	})
}

// GetSupervisedTeam returns the supervisor membership held by the employee
func (r *TeamRepository) GetSupervisedTeam(ctx context.Context, employeeID uuid.UUID) (*models.TeamMembership, error) {
	var membership models.TeamMembership
	err := conn(ctx, r.db).Preload("Team").
		First(&membership, "employee_id = ? AND role = ?", employeeID, models.MembershipRoleSupervisor).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetMemberships returns memberships with the given role held by any of the employees
func (r *TeamRepository) GetMemberships(ctx context.Context, employeeIDs []uuid.UUID, role models.MembershipRole) ([]models.TeamMembership, error) {
	var memberships []models.TeamMembership
	if len(employeeIDs) == 0 {
		return memberships, nil
	}
	err := conn(ctx, r.db).Preload("Team").
		Where("employee_id IN ? AND role = ?", employeeIDs, role).
		Find(&memberships).Error
	return memberships, err
}
