package service

import (
	"context"
	"fmt"
	"time"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/export"
	"staffing-backoffice/internal/repository"
	"staffing-backoffice/internal/timeutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RosterService assigns guards to societies and shifts
type RosterService struct {
	repo         repository.RosterRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	societyRepo  repository.SocietyRepositoryInterface
	shiftRepo    repository.ShiftRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	tx           repository.TransactorInterface
	activity     ActivityRecorder
	validator    *validator.Validate
	allowOverlap bool
}

// RosterDeps groups the collaborators of RosterService
type RosterDeps struct {
	Rosters    repository.RosterRepositoryInterface
	Employees  repository.EmployeeRepositoryInterface
	Societies  repository.SocietyRepositoryInterface
	Shifts     repository.ShiftRepositoryInterface
	Teams      repository.TeamRepositoryInterface
	Transactor repository.TransactorInterface
	Activity   ActivityRecorder
}

// NewRosterService creates a new roster service. allowOverlap is the default
// overlap policy when a request does not set allow_overlap.
func NewRosterService(deps RosterDeps, validator *validator.Validate, allowOverlap bool) *RosterService {
	return &RosterService{
		repo:         deps.Rosters,
		employeeRepo: deps.Employees,
		societyRepo:  deps.Societies,
		shiftRepo:    deps.Shifts,
		teamRepo:     deps.Teams,
		tx:           deps.Transactor,
		activity:     deps.Activity,
		validator:    validator,
		allowOverlap: allowOverlap,
	}
}

// AssignRosterRequest represents the request to roster one guard
type AssignRosterRequest struct {
	GuardID      uuid.UUID  `json:"guard_id" form:"guard_id" validate:"required"`
	SocietyID    uuid.UUID  `json:"society_id" form:"society_id" validate:"required"`
	ShiftID      uuid.UUID  `json:"shift_id" form:"shift_id" validate:"required"`
	StartDate    string     `json:"start_date" form:"start_date" validate:"required"`
	EndDate      string     `json:"end_date" form:"end_date" validate:"required"`
	TeamID       *uuid.UUID `json:"team_id" form:"team_id"`
	AllowOverlap *bool      `json:"allow_overlap" form:"allow_overlap"`
	Notes        string     `json:"notes" form:"notes"`
}

// BulkAssignRequest represents the request to roster many guards to the same slot
type BulkAssignRequest struct {
	GuardIDs     []uuid.UUID `json:"guard_ids" form:"guard_ids"`
	SocietyID    uuid.UUID   `json:"society_id" form:"society_id" validate:"required"`
	ShiftID      uuid.UUID   `json:"shift_id" form:"shift_id" validate:"required"`
	StartDate    string      `json:"start_date" form:"start_date" validate:"required"`
	EndDate      string      `json:"end_date" form:"end_date" validate:"required"`
	AllowOverlap *bool       `json:"allow_overlap" form:"allow_overlap"`
	Notes        string      `json:"notes" form:"notes"`
}

// UpdateRosterRequest represents a partial update of an assignment
type UpdateRosterRequest struct {
	SocietyID    *uuid.UUID `json:"society_id" form:"society_id"`
	ShiftID      *uuid.UUID `json:"shift_id" form:"shift_id"`
	TeamID       *uuid.UUID `json:"team_id" form:"team_id"`
	StartDate    *string    `json:"start_date" form:"start_date"`
	EndDate      *string    `json:"end_date" form:"end_date"`
	AllowOverlap *bool      `json:"allow_overlap" form:"allow_overlap"`
	Notes        *string    `json:"notes" form:"notes"`
}

// ListRostersRequest filters the roster listing. ActiveOn is a YYYY-MM-DD date.
type ListRostersRequest struct {
	PageRequest
	SocietyID *uuid.UUID `json:"society_id" form:"society_id"`
	ShiftID   *uuid.UUID `json:"shift_id" form:"shift_id"`
	GuardID   *uuid.UUID `json:"guard_id" form:"guard_id"`
	TeamID    *uuid.UUID `json:"team_id" form:"team_id"`
	ActiveOn  string     `json:"active_on" form:"active_on"`
	Search    string     `json:"search" form:"search"`
}

// RosterResponse represents an assignment with the names of what it references
type RosterResponse struct {
	ID          uuid.UUID  `json:"id"`
	GuardID     uuid.UUID  `json:"guard_id"`
	GuardName   string     `json:"guard_name"`
	SocietyID   uuid.UUID  `json:"society_id"`
	SocietyName string     `json:"society_name"`
	ShiftID     uuid.UUID  `json:"shift_id"`
	ShiftName   string     `json:"shift_name"`
	ShiftStart  string     `json:"shift_start"`
	ShiftEnd    string     `json:"shift_end"`
	TeamID      *uuid.UUID `json:"team_id"`
	TeamName    string     `json:"team_name,omitempty"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Notes       string     `json:"notes"`
	CreatedAt   string     `json:"created_at"`
}

// BulkAssignItem is the outcome for one guard of a bulk assignment
type BulkAssignItem struct {
	GuardID  uuid.UUID  `json:"guard_id"`
	Success  bool       `json:"success"`
	RosterID *uuid.UUID `json:"roster_id,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// BulkAssignResponse reports a bulk assignment. Either every item was
// written or none was.
type BulkAssignResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Created int              `json:"created"`
	Results []BulkAssignItem `json:"results"`
}

func toRosterResponse(a *models.RosterAssignment) RosterResponse {
	resp := RosterResponse{
		ID:        a.ID,
		GuardID:   a.GuardID,
		SocietyID: a.SocietyID,
		ShiftID:   a.ShiftID,
		TeamID:    a.TeamID,
		StartDate: a.StartDate.Format(timeutil.DateLayout),
		EndDate:   a.EndDate.Format(timeutil.DateLayout),
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.Guard != nil {
		resp.GuardName = a.Guard.FullName
	}
	if a.Society != nil {
		resp.SocietyName = a.Society.Name
	}
	if a.Shift != nil {
		resp.ShiftName = a.Shift.Name
		resp.ShiftStart = a.Shift.StartTime
		resp.ShiftEnd = a.Shift.EndTime
	}
	if a.Team != nil {
		resp.TeamName = a.Team.Name
	}
	return resp
}

// parseRange parses an inclusive calendar range as UTC midnights
func parseRange(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse(timeutil.DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("start_date", "start date must be formatted as YYYY-MM-DD")
	}
	e, err := time.Parse(timeutil.DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("end_date", "end date must be formatted as YYYY-MM-DD")
	}
	if e.Before(s) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	return s, e, nil
}

func (s *RosterService) overlapAllowed(override *bool) bool {
	if override != nil {
		return *override
	}
	return s.allowOverlap
}

// checkGuard returns an error when the employee cannot be rostered as a guard
func checkGuard(guard *models.Employee) error {
	if guard.IsSupervisor() {
		return apperrors.ErrGuardIsSupervisor
	}
	if !guard.IsActive {
		return apperrors.ErrGuardInactive
	}
	return nil
}

func (s *RosterService) checkSlot(ctx context.Context, societyID, shiftID uuid.UUID) error {
	if _, err := s.societyRepo.GetByID(ctx, societyID); err != nil {
		return notFound(err, apperrors.ErrSocietyNotFound, "verify society")
	}
	if _, err := s.shiftRepo.GetByID(ctx, shiftID); err != nil {
		return notFound(err, apperrors.ErrShiftNotFound, "verify shift")
	}
	return nil
}

// teamsOf maps each guard to the team they are a member of
func (s *RosterService) teamsOf(ctx context.Context, guardIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	memberships, err := s.teamRepo.GetMemberships(ctx, guardIDs, models.MembershipRoleMember)
	if err != nil {
		return nil, fmt.Errorf("failed to look up team memberships: %w", err)
	}
	teams := make(map[uuid.UUID]uuid.UUID, len(memberships))
	for _, m := range memberships {
		teams[m.EmployeeID] = m.TeamID
	}
	return teams, nil
}

// resolveTeam returns the guard's team. An explicit team must be the one the
// guard is a member of.
func (s *RosterService) resolveTeam(ctx context.Context, guardID uuid.UUID, teamID *uuid.UUID) (*uuid.UUID, error) {
	if teamID != nil && *teamID != uuid.Nil {
		if _, err := s.teamRepo.GetByID(ctx, *teamID); err != nil {
			return nil, notFound(err, apperrors.ErrTeamNotFound, "verify team")
		}
	}
	teams, err := s.teamsOf(ctx, []uuid.UUID{guardID})
	if err != nil {
		return nil, err
	}
	current, ok := teams[guardID]
	if teamID != nil && *teamID != uuid.Nil {
		if !ok || current != *teamID {
			return nil, apperrors.ErrGuardNotOnTeam
		}
	}
	if ok {
		return &current, nil
	}
	return nil, nil
}

func conflictError(existing []models.RosterAssignment) error {
	if len(existing) == 0 {
		return nil
	}
	a := existing[0]
	return fmt.Errorf("%w: already rostered %s to %s", apperrors.ErrScheduleConflict,
		a.StartDate.Format(timeutil.DateLayout), a.EndDate.Format(timeutil.DateLayout))
}

// Assign rosters one guard to a society and shift for an inclusive date range
func (s *RosterService) Assign(ctx context.Context, req *AssignRosterRequest) (*RosterResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	guard, err := s.employeeRepo.GetByID(ctx, req.GuardID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrGuardNotFound, "verify guard")
	}
	if err := checkGuard(guard); err != nil {
		return nil, err
	}
	if err := s.checkSlot(ctx, req.SocietyID, req.ShiftID); err != nil {
		return nil, err
	}
	teamID, err := s.resolveTeam(ctx, guard.ID, req.TeamID)
	if err != nil {
		return nil, err
	}

	assignment := &models.RosterAssignment{
		GuardID:   guard.ID,
		SocietyID: req.SocietyID,
		ShiftID:   req.ShiftID,
		TeamID:    teamID,
		StartDate: start,
		EndDate:   end,
		Notes:     req.Notes,
	}

	allow := s.overlapAllowed(req.AllowOverlap)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if !allow {
			existing, err := s.repo.FindOverlapping(ctx, []uuid.UUID{guard.ID}, start, end, nil)
			if err != nil {
				return fmt.Errorf("failed to check overlapping assignments: %w", err)
			}
			if err := conflictError(existing); err != nil {
				return err
			}
		}
		if err := s.repo.Create(ctx, assignment); err != nil {
			return fmt.Errorf("failed to create roster assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, "assign", "roster", assignment.ID,
		fmt.Sprintf("Rostered %s from %s to %s", guard.FullName, req.StartDate, req.EndDate))
	return s.GetByID(ctx, assignment.ID)
}

// BulkAssign rosters every listed guard to the same society, shift and range.
// All guards are validated before anything is written; a single failure
// leaves the roster untouched and is reported in the per-guard results.
func (s *RosterService) BulkAssign(ctx context.Context, req *BulkAssignRequest) (*BulkAssignResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	guardIDs := dedupe(req.GuardIDs)
	if len(guardIDs) == 0 {
		return nil, apperrors.ErrEmptyBatch
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := s.checkSlot(ctx, req.SocietyID, req.ShiftID); err != nil {
		return nil, err
	}

	found, err := s.employeeRepo.GetByIDs(ctx, guardIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load guards: %w", err)
	}
	guards := make(map[uuid.UUID]*models.Employee, len(found))
	for i := range found {
		guards[found[i].ID] = &found[i]
	}
	teams, err := s.teamsOf(ctx, guardIDs)
	if err != nil {
		return nil, err
	}

	resp := &BulkAssignResponse{Results: make([]BulkAssignItem, len(guardIDs))}
	rows := make([]models.RosterAssignment, len(guardIDs))
	failed := 0

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		conflicts := map[uuid.UUID][]models.RosterAssignment{}
		if !s.overlapAllowed(req.AllowOverlap) {
			existing, err := s.repo.FindOverlapping(ctx, guardIDs, start, end, nil)
			if err != nil {
				return fmt.Errorf("failed to check overlapping assignments: %w", err)
			}
			for _, a := range existing {
				conflicts[a.GuardID] = append(conflicts[a.GuardID], a)
			}
		}

		for i, id := range guardIDs {
			item := BulkAssignItem{GuardID: id, Success: true}
			guard, ok := guards[id]
			switch {
			case !ok:
				item.Success, item.Message = false, apperrors.ErrGuardNotFound.Error()
			case checkGuard(guard) != nil:
				item.Success, item.Message = false, checkGuard(guard).Error()
			case len(conflicts[id]) > 0:
				item.Success, item.Message = false, conflictError(conflicts[id]).Error()
			}
			if !item.Success {
				failed++
			}
			resp.Results[i] = item

			rows[i] = models.RosterAssignment{
				GuardID:   id,
				SocietyID: req.SocietyID,
				ShiftID:   req.ShiftID,
				StartDate: start,
				EndDate:   end,
				Notes:     req.Notes,
			}
			if teamID, ok := teams[id]; ok {
				t := teamID
				rows[i].TeamID = &t
			}
		}
		if failed > 0 {
			return nil
		}
		if err := s.repo.CreateBatch(ctx, rows); err != nil {
			return fmt.Errorf("failed to create roster assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if failed > 0 {
		for i := range resp.Results {
			if resp.Results[i].Success {
				resp.Results[i].Success = false
				resp.Results[i].Message = "not assigned: batch rejected"
			}
		}
		resp.Message = fmt.Sprintf("%d of %d guards could not be assigned; nothing was saved", failed, len(guardIDs))
		return resp, nil
	}

	for i := range rows {
		id := rows[i].ID
		resp.Results[i].RosterID = &id
	}
	resp.Success = true
	resp.Created = len(rows)
	resp.Message = fmt.Sprintf("%d guards assigned", len(rows))

	s.activity.Record(ctx, "bulk_assign", "roster", req.SocietyID,
		fmt.Sprintf("Rostered %d guards from %s to %s", len(rows), req.StartDate, req.EndDate))
	return resp, nil
}

// Update changes an assignment, re-running the overlap check against the guard's other rows
func (s *RosterService) Update(ctx context.Context, id uuid.UUID, req *UpdateRosterRequest) (*RosterResponse, error) {
	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrRosterAssignmentNotFound, "get roster assignment")
	}

	startStr := assignment.StartDate.Format(timeutil.DateLayout)
	endStr := assignment.EndDate.Format(timeutil.DateLayout)
	if req.StartDate != nil {
		startStr = *req.StartDate
	}
	if req.EndDate != nil {
		endStr = *req.EndDate
	}
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}

	societyID, shiftID := assignment.SocietyID, assignment.ShiftID
	if req.SocietyID != nil {
		societyID = *req.SocietyID
	}
	if req.ShiftID != nil {
		shiftID = *req.ShiftID
	}
	if err := s.checkSlot(ctx, societyID, shiftID); err != nil {
		return nil, err
	}
	if req.TeamID != nil {
		teamID, err := s.resolveTeam(ctx, assignment.GuardID, req.TeamID)
		if err != nil {
			return nil, err
		}
		assignment.TeamID = teamID
	}

	assignment.SocietyID = societyID
	assignment.ShiftID = shiftID
	assignment.StartDate = start
	assignment.EndDate = end
	if req.Notes != nil {
		assignment.Notes = *req.Notes
	}
	assignment.Guard, assignment.Society, assignment.Shift, assignment.Team = nil, nil, nil, nil

	allow := s.overlapAllowed(req.AllowOverlap)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if !allow {
			existing, err := s.repo.FindOverlapping(ctx, []uuid.UUID{assignment.GuardID}, start, end, &assignment.ID)
			if err != nil {
				return fmt.Errorf("failed to check overlapping assignments: %w", err)
			}
			if err := conflictError(existing); err != nil {
				return err
			}
		}
		if err := s.repo.Update(ctx, assignment); err != nil {
			return fmt.Errorf("failed to update roster assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, "update", "roster", assignment.ID, fmt.Sprintf("Updated roster %s to %s", startStr, endStr))
	return s.GetByID(ctx, assignment.ID)
}

// Delete removes an assignment
func (s *RosterService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrRosterAssignmentNotFound, "delete roster assignment")
	}
	s.activity.Record(ctx, "delete", "roster", id, "Deleted roster assignment")
	return nil
}

// GetByID retrieves an assignment
func (s *RosterService) GetByID(ctx context.Context, id uuid.UUID) (*RosterResponse, error) {
	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrRosterAssignmentNotFound, "get roster assignment")
	}
	resp := toRosterResponse(assignment)
	return &resp, nil
}

func (req *ListRostersRequest) filter() (repository.RosterFilter, error) {
	f := repository.RosterFilter{
		SocietyID: req.SocietyID,
		ShiftID:   req.ShiftID,
		GuardID:   req.GuardID,
		TeamID:    req.TeamID,
		Search:    req.Search,
	}
	if req.ActiveOn != "" {
		d, err := time.Parse(timeutil.DateLayout, req.ActiveOn)
		if err != nil {
			return f, apperrors.NewValidationError("active_on", "active_on must be formatted as YYYY-MM-DD")
		}
		f.ActiveOn = &d
	}
	return f, nil
}

// List returns a page of assignments, latest start date first
func (s *RosterService) List(ctx context.Context, req *ListRostersRequest) (*Page[RosterResponse], error) {
	filter, err := req.filter()
	if err != nil {
		return nil, err
	}
	rows, total, err := s.repo.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list roster assignments: %w", err)
	}
	items := make([]RosterResponse, 0, len(rows))
	for i := range rows {
		items = append(items, toRosterResponse(&rows[i]))
	}
	return newPage(items, req.PageRequest, total), nil
}

// Export renders every assignment matching the filter as an xlsx workbook
func (s *RosterService) Export(ctx context.Context, req *ListRostersRequest) ([]byte, error) {
	filter, err := req.filter()
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster assignments: %w", err)
	}

	table := export.Table{
		Sheet:  "Roster",
		Header: []string{"Guard", "Society", "Shift", "Shift Start", "Shift End", "Team", "Start Date", "End Date", "Days", "Notes"},
	}
	for i := range rows {
		r := toRosterResponse(&rows[i])
		days := int(rows[i].EndDate.Sub(rows[i].StartDate).Hours()/24) + 1
		table.Rows = append(table.Rows, []interface{}{
			r.GuardName, r.SocietyName, r.ShiftName, r.ShiftStart, r.ShiftEnd, r.TeamName, r.StartDate, r.EndDate, days, r.Notes,
		})
	}
	return export.XLSX(table)
}
