package service

import (
	"context"
	"fmt"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ClientTypeService handles business logic for client types
type ClientTypeService struct {
	repo      repository.ClientTypeRepositoryInterface
	activity  ActivityRecorder
	validator *validator.Validate
}

// NewClientTypeService creates a new client type service
func NewClientTypeService(repo repository.ClientTypeRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *ClientTypeService {
	return &ClientTypeService{
		repo:      repo,
		activity:  activity,
		validator: validator,
	}
}

// Client type management operations
const (
	ClientTypeOpCreate = "create"
	ClientTypeOpUpdate = "update"
	ClientTypeOpDelete = "delete"
)

// ClientTypeRequest carries the fields of a client type
type ClientTypeRequest struct {
	Name        string `json:"name" form:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" form:"description"`
}

// ManageClientTypeRequest is a single create, update or delete of a client type
type ManageClientTypeRequest struct {
	Op          string    `json:"op" form:"op" validate:"required,oneof=create update delete"`
	ID          uuid.UUID `json:"id" form:"id"`
	Name        string    `json:"name" form:"name"`
	Description string    `json:"description" form:"description"`
}

// Manage dispatches a ManageClientTypeRequest. Delete returns a nil client type.
func (s *ClientTypeService) Manage(ctx context.Context, req *ManageClientTypeRequest) (*models.ClientType, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	body := &ClientTypeRequest{Name: req.Name, Description: req.Description}
	switch req.Op {
	case ClientTypeOpCreate:
		return s.Create(ctx, body)
	case ClientTypeOpUpdate:
		if req.ID == uuid.Nil {
			return nil, apperrors.NewValidationError("id", "id is required")
		}
		return s.Update(ctx, req.ID, body)
	default:
		if req.ID == uuid.Nil {
			return nil, apperrors.NewValidationError("id", "id is required")
		}
		return nil, s.Delete(ctx, req.ID)
	}
}

// Create creates a new client type
func (s *ClientTypeService) Create(ctx context.Context, req *ClientTypeRequest) (*models.ClientType, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	clientType := &models.ClientType{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, clientType); err != nil {
		return nil, uniqueOr(err, apperrors.ErrClientTypeExists, "create client type")
	}

	s.activity.Record(ctx, "create", "client_type", clientType.ID, "Created client type "+clientType.Name)
	return clientType, nil
}

// GetByID retrieves a client type by ID
func (s *ClientTypeService) GetByID(ctx context.Context, id uuid.UUID) (*models.ClientType, error) {
	clientType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrClientTypeNotFound, "get client type")
	}
	return clientType, nil
}

// List returns a page of client types
func (s *ClientTypeService) List(ctx context.Context, req *PageRequest) (*Page[models.ClientType], error) {
	items, total, err := s.repo.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list client types: %w", err)
	}
	return newPage(items, *req, total), nil
}

// Update renames or redescribes a client type
func (s *ClientTypeService) Update(ctx context.Context, id uuid.UUID, req *ClientTypeRequest) (*models.ClientType, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	clientType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrClientTypeNotFound, "get client type")
	}
	clientType.Name = req.Name
	clientType.Description = req.Description

	if err := s.repo.Update(ctx, clientType); err != nil {
		return nil, uniqueOr(err, apperrors.ErrClientTypeExists, "update client type")
	}

	s.activity.Record(ctx, "update", "client_type", clientType.ID, "Updated client type "+clientType.Name)
	return clientType, nil
}

// Delete removes a client type that no society references
func (s *ClientTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.CountSocieties(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count societies: %w", err)
	}
	if n > 0 {
		return apperrors.ErrClientTypeInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrClientTypeNotFound, "delete client type")
	}

	s.activity.Record(ctx, "delete", "client_type", id, "Deleted client type")
	return nil
}
