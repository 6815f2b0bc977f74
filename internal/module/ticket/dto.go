package ticket

// OpenTicketRequest represents the input for opening a support ticket.
type OpenTicketRequest struct {
	Subject string `json:"subject" form:"subject" binding:"required,min=1,max=255"`
	Body    string `json:"body" form:"body" binding:"max=4096"`
}

// UpdateStatusRequest represents the input for moving a ticket to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}
