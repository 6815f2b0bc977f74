package wallet

import (
	"context"

	"gorm.io/gorm"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/pkg"
)

// walletRepository implements domain.WalletRepository using GORM.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new WalletRepository backed by the given GORM
// database. Pass a transaction handle to scope the repository to that
// transaction.
func NewWalletRepository(db *gorm.DB) domain.WalletRepository {
	return &walletRepository{db: db}
}

// GetByUserID retrieves the wallet belonging to the given user.
func (r *walletRepository) GetByUserID(ctx context.Context, userID uint) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &wallet, nil
}

// Create inserts a new wallet.
func (r *walletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// UpdateBalance applies a signed delta to the user's wallet balance as a
// single UPDATE, so concurrent mutations never lose increments.
func (r *walletRepository) UpdateBalance(ctx context.Context, userID uint, delta float64) error {
	result := r.db.WithContext(ctx).Model(&domain.Wallet{}).
		Where("user_id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
