package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/module/notification"
	"github.com/payflowhq/payflow/internal/module/transaction"
	"github.com/payflowhq/payflow/internal/module/user"
	"github.com/payflowhq/payflow/internal/pkg"
)

// moneyService implements domain.MoneyService.
//
// Both mutations run their writes inside a single database transaction:
// balance movement, the transaction record, and the recipient notification
// commit or roll back together. Cache invalidation and activity recording
// happen after commit only, so a failed mutation leaves no trace.
type moneyService struct {
	db       *gorm.DB
	cache    *pkg.Cache
	recorder domain.ActivityRecorder

	currency             string
	bonusDiscountPercent float64
}

// NewMoneyService creates a new MoneyService. Panics if db, cache, or
// recorder is nil.
func NewMoneyService(db *gorm.DB, cache *pkg.Cache, recorder domain.ActivityRecorder, currency string, bonusDiscountPercent float64) domain.MoneyService {
	if db == nil {
		panic("wallet.NewMoneyService: db must not be nil")
	}
	if cache == nil {
		panic("wallet.NewMoneyService: cache must not be nil")
	}
	if recorder == nil {
		panic("wallet.NewMoneyService: recorder must not be nil")
	}
	return &moneyService{
		db:       db,
		cache:    cache,
		recorder: recorder,

		currency:             currency,
		bonusDiscountPercent: bonusDiscountPercent,
	}
}

// GetWallet returns the user's wallet, creating an empty one on first access.
func (s *moneyService) GetWallet(ctx context.Context, userID uint) (*domain.Wallet, error) {
	return s.walletFor(ctx, NewWalletRepository(s.db), userID)
}

// SendMoney transfers amount from sender to recipient.
func (s *moneyService) SendMoney(ctx context.Context, senderID, recipientID uint, amount float64) (receipt *domain.Receipt, err error) {
	defer recoverToInternal(&receipt, &err)

	if amount <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "amount must be greater than zero", nil)
	}
	if senderID == recipientID {
		return nil, domain.NewAppError(domain.CodeValidation, "cannot send money to yourself", nil)
	}

	var sender *domain.User
	err = pkg.WithTx(s.db, func(tx *gorm.DB) error {
		users := user.NewUserRepository(tx)

		var txErr error
		sender, txErr = users.GetByID(ctx, senderID)
		if txErr != nil {
			return txErr
		}
		if _, txErr = users.GetByID(ctx, recipientID); txErr != nil {
			if domain.IsNotFound(txErr) {
				return domain.NewAppError(domain.CodeNotFound, "recipient not found", nil)
			}
			return txErr
		}

		wallets := NewWalletRepository(tx)
		senderWallet, txErr := s.walletFor(ctx, wallets, senderID)
		if txErr != nil {
			return txErr
		}
		if _, txErr = s.walletFor(ctx, wallets, recipientID); txErr != nil {
			return txErr
		}

		if senderWallet.Balance < amount {
			return domain.ErrInsufficientFunds
		}
		if txErr = wallets.UpdateBalance(ctx, senderID, -amount); txErr != nil {
			return txErr
		}
		if txErr = wallets.UpdateBalance(ctx, recipientID, amount); txErr != nil {
			return txErr
		}

		txn := &domain.Transaction{
			Reference:   uuid.NewString(),
			Kind:        domain.TransactionTransfer,
			SenderID:    senderID,
			RecipientID: recipientID,
			Amount:      amount,
			Currency:    s.currency,
		}
		if txErr = transaction.NewTransactionRepository(tx).Create(ctx, txn); txErr != nil {
			return txErr
		}

		note := &domain.Notification{
			UserID: recipientID,
			Message: fmt.Sprintf("You received %s %s from %s",
				pkg.FormatAmount(amount, false), s.currency, sender.Name),
		}
		if txErr = notification.NewNotificationRepository(tx).Create(ctx, note); txErr != nil {
			return txErr
		}

		if sender.BonusTimes > 0 {
			sender.BonusTimes--
			if txErr = users.Update(ctx, sender); txErr != nil {
				return txErr
			}
		}

		receipt = &domain.Receipt{
			Reference: txn.Reference,
			Amount:    amount,
			Balance:   senderWallet.Balance - amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(pkg.CacheTagWallet, pkg.CacheTagTransactions, pkg.CacheTagNotifications)
	s.recorder.Record(senderID, domain.ActivitySendMoney, sender.Email)

	return receipt, nil
}

// AddMoney credits the user's own wallet. While the user still has bonus
// allowance the credited amount is topped up by the configured discount
// percentage, and one bonus use is consumed.
func (s *moneyService) AddMoney(ctx context.Context, userID uint, amount float64) (receipt *domain.Receipt, err error) {
	defer recoverToInternal(&receipt, &err)

	if amount <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "amount must be greater than zero", nil)
	}

	var owner *domain.User
	err = pkg.WithTx(s.db, func(tx *gorm.DB) error {
		users := user.NewUserRepository(tx)

		var txErr error
		owner, txErr = users.GetByID(ctx, userID)
		if txErr != nil {
			return txErr
		}

		credited := amount
		if owner.BonusTimes > 0 {
			credited = amount * (1 + s.bonusDiscountPercent/100)
			owner.BonusTimes--
			if txErr = users.Update(ctx, owner); txErr != nil {
				return txErr
			}
		}

		wallets := NewWalletRepository(tx)
		wallet, txErr := s.walletFor(ctx, wallets, userID)
		if txErr != nil {
			return txErr
		}
		if txErr = wallets.UpdateBalance(ctx, userID, credited); txErr != nil {
			return txErr
		}

		txn := &domain.Transaction{
			Reference:   uuid.NewString(),
			Kind:        domain.TransactionTopUp,
			RecipientID: userID,
			Amount:      credited,
			Currency:    s.currency,
		}
		if txErr = transaction.NewTransactionRepository(tx).Create(ctx, txn); txErr != nil {
			return txErr
		}

		note := &domain.Notification{
			UserID: userID,
			Message: fmt.Sprintf("Your wallet was topped up with %s %s",
				pkg.FormatAmount(credited, false), s.currency),
		}
		if txErr = notification.NewNotificationRepository(tx).Create(ctx, note); txErr != nil {
			return txErr
		}

		receipt = &domain.Receipt{
			Reference: txn.Reference,
			Amount:    credited,
			Balance:   wallet.Balance + credited,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(pkg.CacheTagWallet, pkg.CacheTagTransactions, pkg.CacheTagNotifications)
	s.recorder.Record(userID, domain.ActivityAddMoney, owner.Email)

	return receipt, nil
}

// walletFor loads the user's wallet, creating an empty one on first access.
func (s *moneyService) walletFor(ctx context.Context, wallets domain.WalletRepository, userID uint) (*domain.Wallet, error) {
	wallet, err := wallets.GetByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}

	wallet = &domain.Wallet{UserID: userID, Currency: s.currency}
	if err := wallets.Create(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// recoverToInternal converts a panic escaping a money mutation into an
// internal error so HTTP callers get the generic failure message. The
// transaction itself has already been rolled back by WithTx.
func recoverToInternal(receipt **domain.Receipt, err *error) {
	if r := recover(); r != nil {
		*receipt = nil
		*err = domain.NewAppError(domain.CodeInternal, "money mutation failed", fmt.Errorf("panic: %v", r))
	}
}
