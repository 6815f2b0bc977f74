package event

import (
	"context"
	"strings"
	"time"

	"github.com/payflowhq/payflow/internal/domain"
)

// Service exposes the calendar event operations. Events belong to the
// requesting user; cross-user access is refused.
type Service interface {
	CreateEvent(ctx context.Context, userID uint, title string, start, end time.Time) (*domain.Event, error)
	GetEvent(ctx context.Context, userID, id uint) (*domain.Event, error)
	ListEvents(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Event], error)
	UpdateEvent(ctx context.Context, userID, id uint, title string, start, end time.Time) (*domain.Event, error)
	DeleteEvent(ctx context.Context, userID, id uint) error
}

// eventService implements Service.
type eventService struct {
	repo domain.EventRepository
}

// NewService creates a new event Service.
func NewService(repo domain.EventRepository) Service {
	return &eventService{repo: repo}
}

// CreateEvent validates input and persists a new event for the user.
func (s *eventService) CreateEvent(ctx context.Context, userID uint, title string, start, end time.Time) (*domain.Event, error) {
	title = strings.TrimSpace(title)
	if err := validateEvent(title, start, end); err != nil {
		return nil, err
	}

	e := &domain.Event{
		UserID:    userID,
		Title:     title,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetEvent retrieves one of the user's events by ID.
func (s *eventService) GetEvent(ctx context.Context, userID, id uint) (*domain.Event, error) {
	return s.ownedEvent(ctx, userID, id)
}

// ListEvents returns a paginated list of the user's events.
func (s *eventService) ListEvents(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Event], error) {
	return s.repo.ListByUser(ctx, userID, req)
}

// UpdateEvent loads one of the user's events, applies changes, and persists them.
func (s *eventService) UpdateEvent(ctx context.Context, userID, id uint, title string, start, end time.Time) (*domain.Event, error) {
	title = strings.TrimSpace(title)
	if err := validateEvent(title, start, end); err != nil {
		return nil, err
	}

	e, err := s.ownedEvent(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	e.Title = title
	e.StartTime = start
	e.EndTime = end

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEvent removes one of the user's events by ID.
func (s *eventService) DeleteEvent(ctx context.Context, userID, id uint) error {
	if _, err := s.ownedEvent(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ownedEvent loads the event and verifies ownership. Another user's event is
// reported as not found, never as forbidden, so event IDs leak nothing.
func (s *eventService) ownedEvent(ctx context.Context, userID, id uint) (*domain.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// validateEvent checks the event fields.
func validateEvent(title string, start, end time.Time) error {
	if title == "" {
		return domain.NewAppError(domain.CodeValidation, "title is required", nil)
	}
	if start.IsZero() || end.IsZero() {
		return domain.NewAppError(domain.CodeValidation, "start and end times are required", nil)
	}
	if !end.After(start) {
		return domain.NewAppError(domain.CodeValidation, "end time must be after start time", nil)
	}
	return nil
}
