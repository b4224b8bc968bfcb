package service

import (
	"context"
	"fmt"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SocietyService handles business logic for client societies
type SocietyService struct {
	repo           repository.SocietyRepositoryInterface
	clientTypeRepo repository.ClientTypeRepositoryInterface
	activity       ActivityRecorder
	validator      *validator.Validate
}

// NewSocietyService creates a new society service
func NewSocietyService(repo repository.SocietyRepositoryInterface, clientTypeRepo repository.ClientTypeRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *SocietyService {
	return &SocietyService{
		repo:           repo,
		clientTypeRepo: clientTypeRepo,
		activity:       activity,
		validator:      validator,
	}
}

// SocietyRequest carries the onboarding fields of a society
type SocietyRequest struct {
	Name            string          `json:"name" form:"name" validate:"required,notblank,max=200"`
	Address         string          `json:"address" form:"address"`
	City            string          `json:"city" form:"city" validate:"max=100"`
	ClientTypeID    uuid.UUID       `json:"client_type_id" form:"client_type_id"`
	ContactPerson   string          `json:"contact_person" form:"contact_person" validate:"max=200"`
	ContactPhone    string          `json:"contact_phone" form:"contact_phone" validate:"max=20"`
	GuardCount      int             `json:"guard_count" form:"guard_count" validate:"min=0"`
	SupervisorCount int             `json:"supervisor_count" form:"supervisor_count" validate:"min=0"`
	BouncerCount    int             `json:"bouncer_count" form:"bouncer_count" validate:"min=0"`
	GuardRate       decimal.Decimal `json:"guard_rate" form:"guard_rate"`
	SupervisorRate  decimal.Decimal `json:"supervisor_rate" form:"supervisor_rate"`
	BouncerRate     decimal.Decimal `json:"bouncer_rate" form:"bouncer_rate"`
	IsActive        *bool           `json:"is_active" form:"is_active"`
}

// ListSocietiesRequest filters the society listing
type ListSocietiesRequest struct {
	PageRequest
	Search       string     `json:"search" form:"search"`
	City         string     `json:"city" form:"city"`
	ClientTypeID *uuid.UUID `json:"client_type_id" form:"client_type_id"`
	ActiveOnly   bool       `json:"active_only" form:"active_only"`
}

func (s *SocietyService) checkRequest(ctx context.Context, req *SocietyRequest) error {
	if req.ClientTypeID == uuid.Nil {
		return apperrors.ErrClientTypeRequired
	}
	if err := validate(s.validator, req); err != nil {
		return err
	}
	for field, rate := range map[string]decimal.Decimal{
		"guard_rate":      req.GuardRate,
		"supervisor_rate": req.SupervisorRate,
		"bouncer_rate":    req.BouncerRate,
	} {
		if rate.IsNegative() {
			return apperrors.NewValidationError(field, "rate must not be negative")
		}
	}
	if _, err := s.clientTypeRepo.GetByID(ctx, req.ClientTypeID); err != nil {
		return notFound(err, apperrors.ErrClientTypeNotFound, "verify client type")
	}
	return nil
}

func applySociety(society *models.Society, req *SocietyRequest) {
	society.Name = req.Name
	society.Address = req.Address
	society.City = req.City
	society.ClientTypeID = req.ClientTypeID
	society.ContactPerson = req.ContactPerson
	society.ContactPhone = req.ContactPhone
	society.GuardCount = req.GuardCount
	society.SupervisorCount = req.SupervisorCount
	society.BouncerCount = req.BouncerCount
	society.GuardRate = req.GuardRate
	society.SupervisorRate = req.SupervisorRate
	society.BouncerRate = req.BouncerRate
	if req.IsActive != nil {
		society.IsActive = *req.IsActive
	}
}

// Create onboards a new society
func (s *SocietyService) Create(ctx context.Context, req *SocietyRequest) (*models.Society, error) {
	if err := s.checkRequest(ctx, req); err != nil {
		return nil, err
	}

	society := &models.Society{IsActive: true}
	applySociety(society, req)

	if err := s.repo.Create(ctx, society); err != nil {
		return nil, fmt.Errorf("failed to create society: %w", err)
	}

	s.activity.Record(ctx, "create", "society", society.ID, "Onboarded society "+society.Name)
	return society, nil
}

// GetByID retrieves a society with its client type
func (s *SocietyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Society, error) {
	society, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSocietyNotFound, "get society")
	}
	return society, nil
}

// List returns a page of societies
func (s *SocietyService) List(ctx context.Context, req *ListSocietiesRequest) (*Page[models.Society], error) {
	filter := repository.SocietyFilter{
		Search:       req.Search,
		City:         req.City,
		ClientTypeID: req.ClientTypeID,
		ActiveOnly:   req.ActiveOnly,
	}
	items, total, err := s.repo.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list societies: %w", err)
	}
	return newPage(items, req.PageRequest, total), nil
}

// Update replaces the onboarding fields of a society
func (s *SocietyService) Update(ctx context.Context, id uuid.UUID, req *SocietyRequest) (*models.Society, error) {
	society, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSocietyNotFound, "get society")
	}
	if err := s.checkRequest(ctx, req); err != nil {
		return nil, err
	}

	applySociety(society, req)
	society.ClientType = nil

	if err := s.repo.Update(ctx, society); err != nil {
		return nil, fmt.Errorf("failed to update society: %w", err)
	}

	s.activity.Record(ctx, "update", "society", society.ID, "Updated society "+society.Name)
	return society, nil
}

// Delete removes a society
func (s *SocietyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrSocietyNotFound, "delete society")
	}
	s.activity.Record(ctx, "delete", "society", id, "Deleted society")
	return nil
}
