package notification

import (
	"context"

	"gorm.io/gorm"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/pkg"
)

// Allowed fields for sorting and filtering in ListByUser queries.
var (
	allowedSortFields   = []string{"id", "is_read", "created_at"}
	allowedFilterFields = []string{"is_read"}
)

// notificationRepository implements domain.NotificationRepository using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository backed by the
// given GORM database. Pass a transaction handle to scope the repository to
// that transaction.
func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create inserts a new notification.
func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// ListByUser returns a paginated list of the user's notifications.
func (r *notificationRepository) ListByUser(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Notification], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("user_id = ?", userID).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var notes []domain.Notification
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&notes).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(notes, total, req), nil
}

// MarkRead flags the given notification as read. The user scoping prevents
// marking another user's notification.
func (r *notificationRepository) MarkRead(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumn("is_read", true)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
