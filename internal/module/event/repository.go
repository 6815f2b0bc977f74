package event

import (
	"context"

	"gorm.io/gorm"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/pkg"
)

// Allowed fields for sorting and filtering in ListByUser queries.
var (
	allowedSortFields   = []string{"id", "title", "start_time", "end_time", "created_at"}
	allowedFilterFields = []string{"title"}
)

// eventRepository implements domain.EventRepository using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository backed by the given GORM
// database.
func NewEventRepository(db *gorm.DB) domain.EventRepository {
	return &eventRepository{db: db}
}

// Create inserts a new event.
func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an event by its primary key.
func (r *eventRepository) GetByID(ctx context.Context, id uint) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &e, nil
}

// ListByUser returns a paginated list of the user's events.
func (r *eventRepository) ListByUser(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Event], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Event{}).
		Where("user_id = ?", userID).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var events []domain.Event
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&events).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(events, total, req), nil
}

// Update saves changes to an existing event.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes an event by ID.
func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Event{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
