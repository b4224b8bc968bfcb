package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/export"
	"staffing-backoffice/internal/repository"
	"staffing-backoffice/internal/timeutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitService records supervisor site visits and reports on them
type VisitService struct {
	repo          repository.SiteVisitRepositoryInterface
	employeeRepo  repository.EmployeeRepositoryInterface
	societyRepo   repository.SocietyRepositoryInterface
	tx            repository.TransactorInterface
	activity      ActivityRecorder
	validator     *validator.Validate
	zone          *timeutil.Zone
	maxReportDays int
	now           func() time.Time
}

// VisitDeps groups the collaborators of VisitService
type VisitDeps struct {
	Visits     repository.SiteVisitRepositoryInterface
	Employees  repository.EmployeeRepositoryInterface
	Societies  repository.SocietyRepositoryInterface
	Transactor repository.TransactorInterface
	Activity   ActivityRecorder
}

// NewVisitService creates a new visit service. Report dates are interpreted in zone
// and a report may span at most maxReportDays days.
func NewVisitService(deps VisitDeps, validator *validator.Validate, zone *timeutil.Zone, maxReportDays int) *VisitService {
	return &VisitService{
		repo:          deps.Visits,
		employeeRepo:  deps.Employees,
		societyRepo:   deps.Societies,
		tx:            deps.Transactor,
		activity:      deps.Activity,
		validator:     validator,
		zone:          zone,
		maxReportDays: maxReportDays,
		now:           time.Now,
	}
}

// CheckInRequest opens a visit; At defaults to now
type CheckInRequest struct {
	SupervisorID uuid.UUID  `json:"supervisor_id" form:"supervisor_id" validate:"required"`
	LocationID   uuid.UUID  `json:"location_id" form:"location_id" validate:"required"`
	At           *time.Time `json:"at" form:"at"`
	Notes        string     `json:"notes" form:"notes"`
}

// CheckOutRequest closes the supervisor's open visit; At defaults to now
type CheckOutRequest struct {
	SupervisorID uuid.UUID  `json:"supervisor_id" form:"supervisor_id" validate:"required"`
	At           *time.Time `json:"at" form:"at"`
	Notes        string     `json:"notes" form:"notes"`
}

// PerformanceRequest selects a supervisor and an inclusive local date range
type PerformanceRequest struct {
	PageRequest
	SupervisorID uuid.UUID `json:"supervisor_id" form:"supervisor_id" validate:"required"`
	From         string    `json:"from" form:"from" validate:"required"`
	To           string    `json:"to" form:"to" validate:"required"`
}

// ListVisitsRequest filters the visit listing
type ListVisitsRequest struct {
	PageRequest
	SupervisorID *uuid.UUID `json:"supervisor_id" form:"supervisor_id"`
	LocationID   *uuid.UUID `json:"location_id" form:"location_id"`
	OpenOnly     bool       `json:"open_only" form:"open_only"`
}

// VisitResponse is a visit with times in the display timezone
type VisitResponse struct {
	ID              uuid.UUID  `json:"id"`
	SupervisorID    uuid.UUID  `json:"supervisor_id"`
	SupervisorName  string     `json:"supervisor_name,omitempty"`
	LocationID      uuid.UUID  `json:"location_id"`
	LocationName    string     `json:"location_name"`
	CheckinAt       time.Time  `json:"checkin_at"`
	CheckoutAt      *time.Time `json:"checkout_at"`
	DurationMinutes *int       `json:"duration_minutes"`
	Open            bool       `json:"open"`
	Notes           string     `json:"notes"`
}

// DailyVisits is the per-day row of a performance report
type DailyVisits struct {
	Date    string `json:"date"`
	Visits  int    `json:"visits"`
	Minutes int    `json:"minutes"`
}

// SiteVisits is the per-site row of a performance report
type SiteVisits struct {
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name"`
	Visits       int       `json:"visits"`
	Minutes      int       `json:"minutes"`
	LastVisit    time.Time `json:"last_visit"`
}

// Attendance counts the days of the range on which the supervisor visited any site
type Attendance struct {
	TotalDays  int     `json:"total_days"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
}

// PerformanceResponse is the supervisor performance report
type PerformanceResponse struct {
	SupervisorID   uuid.UUID           `json:"supervisor_id"`
	SupervisorName string              `json:"supervisor_name"`
	From           string              `json:"from"`
	To             string              `json:"to"`
	Timezone       string              `json:"timezone"`
	TotalVisits    int                 `json:"total_visits"`
	TotalMinutes   int                 `json:"total_minutes"`
	Daily          []DailyVisits       `json:"daily"`
	Sites          []SiteVisits        `json:"sites"`
	Attendance     Attendance          `json:"attendance"`
	Log            Page[VisitResponse] `json:"log"`
}

func (s *VisitService) toVisitResponse(v *models.SupervisorSiteVisit) VisitResponse {
	resp := VisitResponse{
		ID:              v.ID,
		SupervisorID:    v.SupervisorID,
		LocationID:      v.LocationID,
		CheckinAt:       v.CheckinAt.In(s.zone.Location()),
		DurationMinutes: v.DurationMinutes,
		Open:            v.IsOpen(),
		Notes:           v.Notes,
	}
	if v.CheckoutAt != nil {
		out := v.CheckoutAt.In(s.zone.Location())
		resp.CheckoutAt = &out
	}
	if v.Supervisor != nil {
		resp.SupervisorName = v.Supervisor.FullName
	}
	if v.Location != nil {
		resp.LocationName = v.Location.Name
	}
	return resp
}

func (s *VisitService) supervisor(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	sup, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSupervisorNotFound, "verify supervisor")
	}
	if !sup.IsSupervisor() {
		return nil, apperrors.ErrNotASupervisor
	}
	return sup, nil
}

func (s *VisitService) at(t *time.Time) time.Time {
	if t != nil && !t.IsZero() {
		return t.UTC()
	}
	return s.now().UTC()
}

// CheckIn opens a visit of the supervisor at a society
func (s *VisitService) CheckIn(ctx context.Context, req *CheckInRequest) (*VisitResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	sup, err := s.supervisor(ctx, req.SupervisorID)
	if err != nil {
		return nil, err
	}
	location, err := s.societyRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSocietyNotFound, "verify location")
	}

	visit := &models.SupervisorSiteVisit{
		SupervisorID: sup.ID,
		LocationID:   location.ID,
		CheckinAt:    s.at(req.At),
		Notes:        req.Notes,
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := s.repo.GetOpenBySupervisor(ctx, sup.ID)
		if err == nil {
			return apperrors.ErrVisitAlreadyOpen
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up open visit: %w", err)
		}
		return s.repo.Create(ctx, visit)
	})
	if err != nil {
		if constraint, ok := repository.UniqueViolation(err); ok && constraint == "idx_site_visits_one_open" {
			return nil, apperrors.ErrVisitAlreadyOpen
		}
		if apperrors.IsRuleViolation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to check in: %w", err)
	}

	s.activity.Record(ctx, "checkin", "site_visit", visit.ID, fmt.Sprintf("%s checked in at %s", sup.FullName, location.Name))
	visit.Supervisor, visit.Location = sup, location
	resp := s.toVisitResponse(visit)
	return &resp, nil
}

// CheckOut closes the supervisor's open visit and stores its whole-minute duration
func (s *VisitService) CheckOut(ctx context.Context, req *CheckOutRequest) (*VisitResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var visit *models.SupervisorSiteVisit
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		open, err := s.repo.GetOpenBySupervisor(ctx, req.SupervisorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNoOpenVisit
			}
			return fmt.Errorf("failed to look up open visit: %w", err)
		}

		out := s.at(req.At)
		if out.Before(open.CheckinAt) {
			return apperrors.ErrCheckoutBeforeCheckin
		}
		minutes := int(out.Sub(open.CheckinAt) / time.Minute)
		open.CheckoutAt = &out
		open.DurationMinutes = &minutes
		if req.Notes != "" {
			if open.Notes != "" {
				open.Notes += "\n"
			}
			open.Notes += req.Notes
		}

		if err := s.repo.Close(ctx, open); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNoOpenVisit
			}
			return fmt.Errorf("failed to close visit: %w", err)
		}
		// reload for the location
		visit, err = s.repo.GetByID(ctx, open.ID)
		if err != nil {
			return fmt.Errorf("failed to reload visit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, "checkout", "site_visit", visit.ID, fmt.Sprintf("Checked out after %d minutes", *visit.DurationMinutes))
	resp := s.toVisitResponse(visit)
	return &resp, nil
}

// reportRange parses from/to as local dates and enforces the range limit
func (s *VisitService) reportRange(from, to string) (time.Time, time.Time, error) {
	f, err := s.zone.ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("from", err.Error())
	}
	t, err := s.zone.ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("to", err.Error())
	}
	if t.Before(f) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	if s.maxReportDays > 0 && s.zone.DayCount(f, t) > s.maxReportDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: at most %d days", apperrors.ErrReportRangeTooLong, s.maxReportDays)
	}
	return f, t, nil
}

// Performance aggregates the supervisor's visits between two inclusive local dates
func (s *VisitService) Performance(ctx context.Context, req *PerformanceRequest) (*PerformanceResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	from, to, err := s.reportRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	sup, err := s.supervisor(ctx, req.SupervisorID)
	if err != nil {
		return nil, err
	}

	start, end := s.zone.Bounds(from, to)
	visits, err := s.repo.ListInRange(ctx, sup.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	report := summarizeVisits(s.zone, from, to, visits)
	report.SupervisorID = sup.ID
	report.SupervisorName = sup.FullName
	report.From = req.From
	report.To = req.To

	logRows, total, err := s.repo.ListInRangePaged(ctx, sup.ID, start, end, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list visit log: %w", err)
	}
	items := make([]VisitResponse, 0, len(logRows))
	for i := range logRows {
		items = append(items, s.toVisitResponse(&logRows[i]))
	}
	report.Log = *newPage(items, req.PageRequest, total)

	return report, nil
}

// summarizeVisits builds the daily, per-site and attendance sections. Open
// visits count as a visit and a day present but add no minutes.
func summarizeVisits(zone *timeutil.Zone, from, to time.Time, visits []models.SupervisorSiteVisit) *PerformanceResponse {
	days := zone.Days(from, to)
	daily := make([]DailyVisits, len(days))
	index := make(map[string]int, len(days))
	for i, d := range days {
		daily[i] = DailyVisits{Date: d}
		index[d] = i
	}

	report := &PerformanceResponse{Timezone: zone.Location().String()}
	sites := map[uuid.UUID]*SiteVisits{}

	for i := range visits {
		v := &visits[i]
		minutes := 0
		if !v.IsOpen() && v.DurationMinutes != nil {
			minutes = *v.DurationMinutes
		}

		if idx, ok := index[zone.LocalDate(v.CheckinAt)]; ok {
			daily[idx].Visits++
			daily[idx].Minutes += minutes
		}
		report.TotalVisits++
		report.TotalMinutes += minutes

		site, ok := sites[v.LocationID]
		if !ok {
			site = &SiteVisits{LocationID: v.LocationID}
			if v.Location != nil {
				site.LocationName = v.Location.Name
			}
			sites[v.LocationID] = site
		}
		site.Visits++
		site.Minutes += minutes
		if checkin := v.CheckinAt.In(zone.Location()); checkin.After(site.LastVisit) {
			site.LastVisit = checkin
		}
	}

	report.Daily = daily
	report.Sites = make([]SiteVisits, 0, len(sites))
	for _, site := range sites {
		report.Sites = append(report.Sites, *site)
	}
	sort.Slice(report.Sites, func(i, j int) bool {
		if report.Sites[i].Visits != report.Sites[j].Visits {
			return report.Sites[i].Visits > report.Sites[j].Visits
		}
		return report.Sites[i].LocationName < report.Sites[j].LocationName
	})

	present := 0
	for _, d := range daily {
		if d.Visits > 0 {
			present++
		}
	}
	report.Attendance = Attendance{
		TotalDays: len(days),
		Present:   present,
		Absent:    len(days) - present,
	}
	if len(days) > 0 {
		report.Attendance.Percentage = math.Round(float64(present)/float64(len(days))*10000) / 100
	}
	return report
}

// ListVisits returns a page of visits, newest first
func (s *VisitService) ListVisits(ctx context.Context, req *ListVisitsRequest) (*Page[VisitResponse], error) {
	filter := repository.VisitFilter{SupervisorID: req.SupervisorID, LocationID: req.LocationID, OpenOnly: req.OpenOnly}
	rows, total, err := s.repo.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	items := make([]VisitResponse, 0, len(rows))
	for i := range rows {
		items = append(items, s.toVisitResponse(&rows[i]))
	}
	return newPage(items, req.PageRequest, total), nil
}

// ExportPerformance renders the per-day section of a performance report as xlsx
func (s *VisitService) ExportPerformance(ctx context.Context, req *PerformanceRequest) ([]byte, error) {
	report, err := s.Performance(ctx, req)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Sheet:  "Performance",
		Header: []string{"Date", "Visits", "Minutes"},
	}
	for _, d := range report.Daily {
		table.Rows = append(table.Rows, []interface{}{d.Date, d.Visits, d.Minutes})
	}
	table.Rows = append(table.Rows, []interface{}{"Total", report.TotalVisits, report.TotalMinutes})
	return export.XLSX(table)
}
