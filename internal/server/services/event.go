package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pritish2005/Event-Hub/internal/common"
	"github.com/Pritish2005/Event-Hub/internal/server/models"
	"github.com/Pritish2005/Event-Hub/internal/server/repositories/repomanager"
)

// EventService implements event publishing and the ownership-gated mutations.
// It never checks ownership itself: the repository's conditional statements
// carry the owner filter, so a stale read can never bypass the check.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewEventService constructs an EventService.
func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m}
}

// Create publishes a new event owned by ownerID. All fields are required and
// capacity must be positive.
func (s *EventService) Create(ctx context.Context, ownerID, name, description, location string, date time.Time, capacity int) (*models.Event, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	location = strings.TrimSpace(location)

	if name == "" || description == "" || location == "" || date.IsZero() || capacity <= 0 {
		return nil, common.ErrorValidation
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Date:        date,
		Location:    location,
		Capacity:    capacity,
		OwnerID:     ownerID,
	}

	repo := s.repomanager.Events(s.db)
	event, err := repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	return event, nil
}

// ListAll returns one page of all events plus the total page count.
func (s *EventService) ListAll(ctx context.Context, page, limit int) ([]*models.Event, int, error) {
	if page < 1 || limit < 1 {
		return nil, 0, common.ErrorValidation
	}

	repo := s.repomanager.Events(s.db)

	items, err := repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	total, err := repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	return items, totalPages(total, limit), nil
}

// ListOthers returns one page of events not owned by ownerID plus the total
// page count for that filter.
func (s *EventService) ListOthers(ctx context.Context, ownerID string, page, limit int) ([]*models.Event, int, error) {
	if page < 1 || limit < 1 {
		return nil, 0, common.ErrorValidation
	}

	repo := s.repomanager.Events(s.db)

	items, err := repo.ListExcludingOwner(ctx, ownerID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	total, err := repo.CountExcludingOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	return items, totalPages(total, limit), nil
}

// ListOwned returns every event owned by ownerID.
func (s *EventService) ListOwned(ctx context.Context, ownerID string) ([]*models.Event, error) {
	repo := s.repomanager.Events(s.db)

	items, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return items, nil
}

// Update applies a partial update to an event as ownerID. Supplied fields
// must pass the same checks as at creation; omitted fields are untouched.
// An ownership mismatch surfaces as common.ErrorNotFound, indistinguishable
// from a missing event.
func (s *EventService) Update(ctx context.Context, id, ownerID string, patch *models.EventPatch) (*models.Event, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, common.ErrorValidation
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	repo := s.repomanager.Events(s.db)
	event, err := repo.UpdateOwned(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event as ownerID, with the same combined-filter semantics
// as Update.
func (s *EventService) Delete(ctx context.Context, id, ownerID string) error {
	repo := s.repomanager.Events(s.db)
	return repo.DeleteOwned(ctx, id, ownerID)
}

func validatePatch(patch *models.EventPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return common.ErrorValidation
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return common.ErrorValidation
	}
	if patch.Location != nil && strings.TrimSpace(*patch.Location) == "" {
		return common.ErrorValidation
	}
	if patch.Date != nil && patch.Date.IsZero() {
		return common.ErrorValidation
	}
	if patch.Capacity != nil && *patch.Capacity <= 0 {
		return common.ErrorValidation
	}
	return nil
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}
