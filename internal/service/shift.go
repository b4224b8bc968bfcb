package service

import (
	"context"
	"fmt"
	"time"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// shiftTimeLayout is the HH:MM format of shift start and end times
const shiftTimeLayout = "15:04"

// ShiftService handles business logic for shifts
type ShiftService struct {
	repo      repository.ShiftRepositoryInterface
	activity  ActivityRecorder
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:      repo,
		activity:  activity,
		validator: validator,
	}
}

// ShiftRequest carries the fields of a shift
type ShiftRequest struct {
	Name      string `json:"name" form:"name" validate:"required,notblank,max=50"`
	StartTime string `json:"start_time" form:"start_time" validate:"required"`
	EndTime   string `json:"end_time" form:"end_time" validate:"required"`
}

func (s *ShiftService) checkRequest(req *ShiftRequest) error {
	if err := validate(s.validator, req); err != nil {
		return err
	}
	if _, err := time.Parse(shiftTimeLayout, req.StartTime); err != nil || len(req.StartTime) != 5 {
		return apperrors.ErrInvalidShiftTime
	}
	if _, err := time.Parse(shiftTimeLayout, req.EndTime); err != nil || len(req.EndTime) != 5 {
		return apperrors.NewValidationError("end_time", "shift times must be formatted as HH:MM")
	}
	return nil
}

// Create creates a new shift. Overnight shifts (end before start) are allowed.
func (s *ShiftService) Create(ctx context.Context, req *ShiftRequest) (*models.Shift, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	shift := &models.Shift{Name: req.Name, StartTime: req.StartTime, EndTime: req.EndTime}
	if err := s.repo.Create(ctx, shift); err != nil {
		return nil, uniqueOr(err, apperrors.ErrShiftExists, "create shift")
	}

	s.activity.Record(ctx, "create", "shift", shift.ID, "Created shift "+shift.Name)
	return shift, nil
}

// GetByID retrieves a shift by ID
func (s *ShiftService) GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	shift, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrShiftNotFound, "get shift")
	}
	return shift, nil
}

// GetAll returns every shift ordered by start time
func (s *ShiftService) GetAll(ctx context.Context) ([]models.Shift, error) {
	shifts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

// Update updates a shift
func (s *ShiftService) Update(ctx context.Context, id uuid.UUID, req *ShiftRequest) (*models.Shift, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	shift, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrShiftNotFound, "get shift")
	}
	shift.Name = req.Name
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime

	if err := s.repo.Update(ctx, shift); err != nil {
		return nil, uniqueOr(err, apperrors.ErrShiftExists, "update shift")
	}

	s.activity.Record(ctx, "update", "shift", shift.ID, "Updated shift "+shift.Name)
	return shift, nil
}

// Delete removes a shift
func (s *ShiftService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrShiftNotFound, "delete shift")
	}
	s.activity.Record(ctx, "delete", "shift", id, "Deleted shift")
	return nil
}
