package domain

import "context"

// Transaction kinds recorded against a wallet.
const (
	TransactionTransfer = "transfer"
	TransactionTopUp    = "topup"
)

// Wallet holds a user's current balance. One wallet per user.
type Wallet struct {
	BaseModel
	UserID   uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance  float64 `gorm:"not null;default:0" json:"balance"`
	Currency string  `gorm:"size:8;not null;default:USD" json:"currency"`
}

// Transaction is an immutable record of a completed money mutation.
// Reference is a UUID assigned at creation and returned to the caller
// as the receipt identifier.
type Transaction struct {
	BaseModel
	Reference   string  `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	Kind        string  `gorm:"size:16;not null" json:"kind"`
	SenderID    uint    `gorm:"index" json:"sender_id"`
	RecipientID uint    `gorm:"index;not null" json:"recipient_id"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Currency    string  `gorm:"size:8;not null;default:USD" json:"currency"`
}

// Receipt is returned after a successful money mutation.
type Receipt struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Balance   float64 `json:"balance"`
}

// WalletRepository defines the data access interface for wallets.
// UpdateBalance applies a signed delta to the wallet row of the given user
// and is expected to run inside a surrounding transaction when composed with
// other writes.
type WalletRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*Wallet, error)
	Create(ctx context.Context, wallet *Wallet) error
	UpdateBalance(ctx context.Context, userID uint, delta float64) error
}

// TransactionRepository defines the data access interface for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	ListByUser(ctx context.Context, userID uint, req PageRequest) (*PageResult[Transaction], error)
}

// MoneyService is the confirmation-gated mutation surface of the wallet
// module. Amounts are raw numeric values; display formatting is stripped by
// the handler layer before reaching the service.
type MoneyService interface {
	GetWallet(ctx context.Context, userID uint) (*Wallet, error)
	SendMoney(ctx context.Context, senderID, recipientID uint, amount float64) (*Receipt, error)
	AddMoney(ctx context.Context, userID uint, amount float64) (*Receipt, error)
}
