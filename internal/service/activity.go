package service

import (
	"context"
	"fmt"

	"staffing-backoffice/internal/auth"
	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/logger"
	"staffing-backoffice/internal/repository"

	"github.com/google/uuid"
)

// ActivityService writes and reads the audit trail
type ActivityService struct {
	repo repository.ActivityRepositoryInterface
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface) *ActivityService {
	return &ActivityService{repo: repo}
}

// ListActivitiesRequest filters the audit trail
type ListActivitiesRequest struct {
	PageRequest
	EntityType string     `json:"entity_type" form:"entity_type"`
	ActorID    *uuid.UUID `json:"actor_id" form:"actor_id"`
}

// Record stores an audit entry attributed to the request principal.
// Failures are logged and swallowed so the calling mutation still succeeds.
func (s *ActivityService) Record(ctx context.Context, action, entityType string, entityID uuid.UUID, description string) {
	entry := &models.Activity{
		Action:      action,
		EntityType:  entityType,
		Description: description,
	}
	if entityID != uuid.Nil {
		entry.EntityID = &entityID
	}

	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		p = auth.SystemPrincipal
	}
	if p.UserID != uuid.Nil {
		id := p.UserID
		entry.ActorID = &id
	}
	entry.ActorName = p.Name
	entry.ActorRole = string(p.Role)

	if err := s.repo.Create(ctx, entry); err != nil {
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"action":      action,
			"entity_type": entityType,
			"entity_id":   entityID.String(),
		}).Warn("failed to record activity")
	}
}

// List returns a page of activities, newest first
func (s *ActivityService) List(ctx context.Context, req *ListActivitiesRequest) (*Page[models.Activity], error) {
	filter := repository.ActivityFilter{EntityType: req.EntityType, ActorID: req.ActorID}
	items, total, err := s.repo.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return newPage(items, req.PageRequest, total), nil
}

// Delete removes an audit entry
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrActivityNotFound, "delete activity")
	}
	return nil
}
