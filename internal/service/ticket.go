package service

import (
	"context"
	"fmt"
	"time"

	"staffing-backoffice/internal/auth"
	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TicketService handles complaints and service requests
type TicketService struct {
	repo        repository.TicketRepositoryInterface
	societyRepo repository.SocietyRepositoryInterface
	activity    ActivityRecorder
	validator   *validator.Validate
	now         func() time.Time
}

// NewTicketService creates a new ticket service
func NewTicketService(repo repository.TicketRepositoryInterface, societyRepo repository.SocietyRepositoryInterface, activity ActivityRecorder, validator *validator.Validate) *TicketService {
	return &TicketService{
		repo:        repo,
		societyRepo: societyRepo,
		activity:    activity,
		validator:   validator,
		now:         time.Now,
	}
}

// CreateTicketRequest represents the request to raise a ticket
type CreateTicketRequest struct {
	SocietyID   *uuid.UUID            `json:"society_id" form:"society_id"`
	Subject     string                `json:"subject" form:"subject" validate:"required,notblank,max=200"`
	Description string                `json:"description" form:"description"`
	Priority    models.TicketPriority `json:"priority" form:"priority"`
}

// UpdateTicketStatusRequest moves a ticket through its lifecycle
type UpdateTicketStatusRequest struct {
	Status models.TicketStatus `json:"status" form:"status" validate:"required"`
}

// ListTicketsRequest filters the ticket listing
type ListTicketsRequest struct {
	PageRequest
	Status    models.TicketStatus   `json:"status" form:"status"`
	Priority  models.TicketPriority `json:"priority" form:"priority"`
	SocietyID *uuid.UUID            `json:"society_id" form:"society_id"`
}

// Create raises a ticket on behalf of the request principal
func (s *TicketService) Create(ctx context.Context, req *CreateTicketRequest) (*models.Ticket, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return nil, apperrors.ErrMissingPrincipal
	}

	priority := req.Priority
	if priority == "" {
		priority = models.TicketPriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "priority must be one of: low medium high")
	}
	if req.SocietyID != nil {
		if _, err := s.societyRepo.GetByID(ctx, *req.SocietyID); err != nil {
			return nil, notFound(err, apperrors.ErrSocietyNotFound, "verify society")
		}
	}

	ticket := &models.Ticket{
		SocietyID:   req.SocietyID,
		RaisedBy:    p.UserID,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    priority,
		Status:      models.TicketStatusOpen,
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.activity.Record(ctx, "create", "ticket", ticket.ID, "Raised ticket: "+ticket.Subject)
	return ticket, nil
}

// GetByID retrieves a ticket
func (s *TicketService) GetByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTicketNotFound, "get ticket")
	}
	return ticket, nil
}

// List returns a page of tickets
func (s *TicketService) List(ctx context.Context, req *ListTicketsRequest) (*Page[models.Ticket], error) {
	if req.Status != "" && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	filter := repository.TicketFilter{Status: req.Status, Priority: req.Priority, SocietyID: req.SocietyID}
	items, total, err := s.repo.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return newPage(items, req.PageRequest, total), nil
}

// UpdateStatus changes a ticket's status; resolved_at is stamped on resolve or
// close and cleared when the ticket is reopened
func (s *TicketService) UpdateStatus(ctx context.Context, id uuid.UUID, req *UpdateTicketStatusRequest) (*models.Ticket, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTicketNotFound, "get ticket")
	}

	previous := ticket.Status
	ticket.Status = req.Status
	switch req.Status {
	case models.TicketStatusResolved, models.TicketStatusClosed:
		if ticket.ResolvedAt == nil {
			now := s.now().UTC()
			ticket.ResolvedAt = &now
		}
	default:
		ticket.ResolvedAt = nil
	}
	ticket.Society = nil

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	s.activity.Record(ctx, "update_status", "ticket", ticket.ID, fmt.Sprintf("Ticket moved from %s to %s", previous, ticket.Status))
	return ticket, nil
}
