package event

import "time"

// CreateEventRequest represents the input for creating a calendar event.
type CreateEventRequest struct {
	Title     string    `json:"title" form:"title" binding:"required,min=1,max=255"`
	StartTime time.Time `json:"start_time" form:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" form:"end_time" binding:"required"`
}

// UpdateEventRequest represents the input for updating a calendar event.
type UpdateEventRequest struct {
	Title     string    `json:"title" form:"title" binding:"required,min=1,max=255"`
	StartTime time.Time `json:"start_time" form:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" form:"end_time" binding:"required"`
}
