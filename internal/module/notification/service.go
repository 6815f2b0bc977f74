package notification

import (
	"context"

	"github.com/payflowhq/payflow/internal/domain"
)

// Service exposes per-user notifications.
type Service interface {
	ListByUser(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Notification], error)
	MarkRead(ctx context.Context, userID, id uint) error
}

// notificationService implements Service. Notifications are created by the
// wallet module inside its mutation transaction.
type notificationService struct {
	repo domain.NotificationRepository
}

// NewService creates a new notification Service.
func NewService(repo domain.NotificationRepository) Service {
	return &notificationService{repo: repo}
}

// ListByUser returns a paginated list of the user's notifications.
func (s *notificationService) ListByUser(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Notification], error) {
	return s.repo.ListByUser(ctx, userID, req)
}

// MarkRead flags one of the user's notifications as read.
func (s *notificationService) MarkRead(ctx context.Context, userID, id uint) error {
	return s.repo.MarkRead(ctx, userID, id)
}
