package transaction

import (
	"context"

	"github.com/payflowhq/payflow/internal/domain"
)

// Service exposes the transaction history.
type Service interface {
	ListByUser(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Transaction], error)
}

// transactionService implements Service. Transactions are written by the
// wallet module inside its mutation transaction; this service is read-only.
type transactionService struct {
	repo domain.TransactionRepository
}

// NewService creates a new transaction Service.
func NewService(repo domain.TransactionRepository) Service {
	return &transactionService{repo: repo}
}

// ListByUser returns a paginated list of the user's transactions.
func (s *transactionService) ListByUser(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Transaction], error) {
	return s.repo.ListByUser(ctx, userID, req)
}
