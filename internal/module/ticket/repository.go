package ticket

import (
	"context"

	"gorm.io/gorm"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "subject", "status", "created_at", "updated_at"}
	allowedFilterFields = []string{"status", "user_id", "subject"}
)

// ticketRepository implements domain.TicketRepository using GORM.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new TicketRepository backed by the given GORM
// database.
func NewTicketRepository(db *gorm.DB) domain.TicketRepository {
	return &ticketRepository{db: db}
}

// Create inserts a new ticket.
func (r *ticketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a ticket by its primary key.
func (r *ticketRepository) GetByID(ctx context.Context, id uint) (*domain.Ticket, error) {
	var t domain.Ticket
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &t, nil
}

// List returns a paginated, sorted, and filtered list of tickets.
func (r *ticketRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Ticket], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Ticket{}).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var tickets []domain.Ticket
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&tickets).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(tickets, total, req), nil
}

// Update saves changes to an existing ticket.
func (r *ticketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}
