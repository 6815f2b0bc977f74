package domain

import (
	"context"
	"time"
)

// Event is a calendar entry owned by a user.
type Event struct {
	BaseModel
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
}

// EventRepository defines the data access interface for calendar events.
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	ListByUser(ctx context.Context, userID uint, req PageRequest) (*PageResult[Event], error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id uint) error
}
