package domain

import "context"

// Support ticket statuses.
const (
	TicketOpen     = "open"
	TicketPending  = "pending"
	TicketResolved = "resolved"
	TicketClosed   = "closed"
)

// Ticket is a customer support request.
type Ticket struct {
	BaseModel
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Subject string `gorm:"size:255;not null" json:"subject"`
	Body    string `gorm:"size:4096" json:"body"`
	Status  string `gorm:"size:16;not null;default:open" json:"status"`
}

// ValidTicketStatus reports whether s is a recognized ticket status.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketOpen, TicketPending, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// TicketRepository defines the data access interface for support tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Ticket], error)
	Update(ctx context.Context, t *Ticket) error
}
