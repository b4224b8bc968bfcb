package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo         repository.TeamRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	rosterRepo   repository.RosterRepositoryInterface
	tx           repository.TransactorInterface
	activity     ActivityRecorder
	validator    *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, rosterRepo repository.RosterRepositoryInterface, tx repository.TransactorInterface, activity ActivityRecorder, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:         repo,
		employeeRepo: employeeRepo,
		rosterRepo:   rosterRepo,
		tx:           tx,
		activity:     activity,
		validator:    validator,
	}
}

// TeamRequest represents the request to create or update a team.
// Updates replace the supervisor and the whole member list.
type TeamRequest struct {
	Name         string      `json:"name" form:"name" validate:"required,notblank,max=100"`
	Description  string      `json:"description" form:"description"`
	SupervisorID uuid.UUID   `json:"supervisor_id" form:"supervisor_id" validate:"required"`
	MemberIDs    []uuid.UUID `json:"member_ids" form:"member_ids"`
}

// ListTeamsRequest filters the team listing
type ListTeamsRequest struct {
	PageRequest
	Search string              `json:"search" form:"search"`
	Size   repository.TeamSize `json:"size" form:"size"`
}

// EmployeeSummary is the short form of an employee embedded in other responses
type EmployeeSummary struct {
	ID       uuid.UUID           `json:"id"`
	FullName string              `json:"full_name"`
	Phone    string              `json:"phone"`
	Role     models.EmployeeRole `json:"role"`
}

// TeamResponse represents a team with its supervisor and members
type TeamResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Supervisor  *EmployeeSummary  `json:"supervisor"`
	Members     []EmployeeSummary `json:"members"`
	MemberCount int               `json:"member_count"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

func summarize(e *models.Employee) EmployeeSummary {
	return EmployeeSummary{ID: e.ID, FullName: e.FullName, Phone: e.Phone, Role: e.Role}
}

func toTeamResponse(team *models.Team) TeamResponse {
	resp := TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		Members:     []EmployeeSummary{},
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   team.UpdatedAt.Format(time.RFC3339),
	}
	if sup := team.Supervisor(); sup != nil && sup.Employee != nil {
		s := summarize(sup.Employee)
		resp.Supervisor = &s
	}
	for _, m := range team.Members() {
		if m.Employee != nil {
			resp.Members = append(resp.Members, summarize(m.Employee))
		}
	}
	resp.MemberCount = len(resp.Members)
	return resp
}

// checkRoster validates the supervisor and member set for a team. self is
// uuid.Nil on create and the team being updated otherwise.
func (s *TeamService) checkRoster(ctx context.Context, self uuid.UUID, req *TeamRequest) ([]uuid.UUID, error) {
	members := dedupe(req.MemberIDs)
	for _, id := range members {
		if id == req.SupervisorID {
			return nil, apperrors.ErrSupervisorListedTwice
		}
	}

	supervisor, err := s.employeeRepo.GetByID(ctx, req.SupervisorID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSupervisorNotFound, "verify supervisor")
	}
	if !supervisor.IsSupervisor() {
		return nil, apperrors.ErrNotASupervisor
	}

	if len(members) > 0 {
		found, err := s.employeeRepo.GetByIDs(ctx, members)
		if err != nil {
			return nil, fmt.Errorf("failed to verify members: %w", err)
		}
		if len(found) != len(members) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		for i := range found {
			if found[i].IsSupervisor() {
				return nil, fmt.Errorf("%s: %w", found[i].FullName, apperrors.ErrMemberIsSupervisor)
			}
		}
	}

	existing, err := s.repo.GetByName(ctx, req.Name)
	switch {
	case err == nil && existing.ID != self:
		return nil, apperrors.ErrTeamExists
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	led, err := s.repo.GetSupervisedTeam(ctx, req.SupervisorID)
	switch {
	case err == nil && led.TeamID != self:
		return nil, fmt.Errorf("%s already leads %s: %w", supervisor.FullName, teamName(led), apperrors.ErrSupervisorAlreadyAssigned)
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to check supervisor assignment: %w", err)
	}

	held, err := s.repo.GetMemberships(ctx, members, models.MembershipRoleMember)
	if err != nil {
		return nil, fmt.Errorf("failed to check memberships: %w", err)
	}
	for _, m := range held {
		if m.TeamID != self {
			return nil, fmt.Errorf("employee %s is a member of %s: %w", m.EmployeeID, teamName(&m), apperrors.ErrMemberOnAnotherTeam)
		}
	}

	return members, nil
}

func teamName(m *models.TeamMembership) string {
	if m.Team != nil {
		return m.Team.Name
	}
	return "another team"
}

func buildMemberships(supervisorID uuid.UUID, members []uuid.UUID) []models.TeamMembership {
	rows := make([]models.TeamMembership, 0, len(members)+1)
	rows = append(rows, models.TeamMembership{EmployeeID: supervisorID, Role: models.MembershipRoleSupervisor})
	for _, id := range members {
		rows = append(rows, models.TeamMembership{EmployeeID: id, Role: models.MembershipRoleMember})
	}
	return rows
}

// membershipConflict maps unique index violations raced past checkRoster
func membershipConflict(err error, action string) error {
	constraint, ok := repository.UniqueViolation(err)
	if !ok {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	switch constraint {
	case "idx_team_memberships_one_supervisor", "idx_team_memberships_supervises_one":
		return apperrors.ErrSupervisorAlreadyAssigned
	case "idx_team_memberships_member_of_one":
		return apperrors.ErrMemberOnAnotherTeam
	default:
		return apperrors.ErrTeamExists
	}
}

// Create creates a team with its supervisor and members in one transaction
func (s *TeamService) Create(ctx context.Context, req *TeamRequest) (*TeamResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	members, err := s.checkRoster(ctx, uuid.Nil, req)
	if err != nil {
		return nil, err
	}

	team := &models.Team{Name: req.Name, Description: req.Description}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, team); err != nil {
			return err
		}
		return s.repo.ReplaceMemberships(ctx, team.ID, buildMemberships(req.SupervisorID, members))
	})
	if err != nil {
		return nil, membershipConflict(err, "create team")
	}

	s.activity.Record(ctx, "create", "team", team.ID, fmt.Sprintf("Created team %s with %d members", team.Name, len(members)))
	return s.GetByID(ctx, team.ID)
}

// Update renames a team and replaces its membership set in one transaction
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *TeamRequest) (*TeamResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}

	members, err := s.checkRoster(ctx, team.ID, req)
	if err != nil {
		return nil, err
	}

	team.Name = req.Name
	team.Description = req.Description
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, team); err != nil {
			return err
		}
		return s.repo.ReplaceMemberships(ctx, team.ID, buildMemberships(req.SupervisorID, members))
	})
	if err != nil {
		return nil, membershipConflict(err, "update team")
	}

	s.activity.Record(ctx, "update", "team", team.ID, fmt.Sprintf("Updated team %s with %d members", team.Name, len(members)))
	return s.GetByID(ctx, team.ID)
}

// Delete removes a team and its memberships; roster rows keep their guard but lose the team
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.rosterRepo.DetachTeam(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return notFound(err, apperrors.ErrTeamNotFound, "delete team")
	}

	s.activity.Record(ctx, "delete", "team", id, "Deleted team")
	return nil
}

// GetByID retrieves a team with its supervisor and members
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}
	resp := toTeamResponse(team)
	return &resp, nil
}

// List returns a page of teams filtered by search text and size bucket
func (s *TeamService) List(ctx context.Context, req *ListTeamsRequest) (*Page[TeamResponse], error) {
	if req.Size != "" {
		if _, _, ok := req.Size.Range(); !ok {
			return nil, apperrors.NewValidationError("size", "size must be one of: small medium large")
		}
	}

	filter := repository.TeamFilter{Search: req.Search, Size: req.Size}
	teams, total, err := s.repo.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	items := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, toTeamResponse(&teams[i]))
	}
	return newPage(items, req.PageRequest, total), nil
}
