package activity

import (
	"context"

	"gorm.io/gorm"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/pkg"
)

// activityRepository implements domain.ActivityRepository using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository backed by the given
// GORM database.
func NewActivityRepository(db *gorm.DB) domain.ActivityRepository {
	return &activityRepository{db: db}
}

// Create inserts a new activity entry.
func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// ListByUser returns every activity entry for the user, newest first. The
// feed filters, sorts, and windows in memory, so no paging happens here.
func (r *activityRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&activities).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return activities, nil
}
