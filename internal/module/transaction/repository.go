package transaction

import (
	"context"

	"gorm.io/gorm"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/pkg"
)

// Allowed fields for sorting and filtering in ListByUser queries.
var (
	allowedSortFields   = []string{"id", "reference", "kind", "amount", "created_at"}
	allowedFilterFields = []string{"kind", "reference"}
)

// transactionRepository implements domain.TransactionRepository using GORM.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository backed by the
// given GORM database. Pass a transaction handle to scope the repository to
// that transaction.
func NewTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create inserts a new transaction record.
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// ListByUser returns a paginated list of transactions the user participated
// in, as either sender or recipient.
func (r *transactionRepository) ListByUser(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Transaction], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Scopes(pkg.Filter(req, allowedFilterFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var txns []domain.Transaction
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&txns).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(txns, total, req), nil
}
