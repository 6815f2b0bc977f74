package ticket

import (
	"context"
	"strings"

	"github.com/payflowhq/payflow/internal/domain"
)

// Service exposes the support ticket operations.
type Service interface {
	OpenTicket(ctx context.Context, userID uint, subject, body string) (*domain.Ticket, error)
	GetTicket(ctx context.Context, id uint) (*domain.Ticket, error)
	ListTickets(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Ticket], error)
	UpdateStatus(ctx context.Context, id uint, status string) (*domain.Ticket, error)
}

// ticketService implements Service.
type ticketService struct {
	repo domain.TicketRepository
}

// NewService creates a new ticket Service.
func NewService(repo domain.TicketRepository) Service {
	return &ticketService{repo: repo}
}

// OpenTicket validates input and creates a new open ticket for the user.
func (s *ticketService) OpenTicket(ctx context.Context, userID uint, subject, body string) (*domain.Ticket, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "subject is required", nil)
	}

	t := &domain.Ticket{
		UserID:  userID,
		Subject: subject,
		Body:    strings.TrimSpace(body),
		Status:  domain.TicketOpen,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTicket retrieves a ticket by ID.
func (s *ticketService) GetTicket(ctx context.Context, id uint) (*domain.Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

// ListTickets returns a paginated list of tickets.
func (s *ticketService) ListTickets(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Ticket], error) {
	return s.repo.List(ctx, req)
}

// UpdateStatus moves a ticket to a new status.
func (s *ticketService) UpdateStatus(ctx context.Context, id uint, status string) (*domain.Ticket, error) {
	if !domain.ValidTicketStatus(status) {
		return nil, domain.NewAppError(domain.CodeValidation, "invalid ticket status: "+status, nil)
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Status = status
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
