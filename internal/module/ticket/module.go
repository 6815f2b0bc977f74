package ticket

import "github.com/gin-gonic/gin"

// TicketModule implements the app.Module interface for the ticket domain.
type TicketModule struct {
	handler *TicketHandler
}

// NewModule creates a new TicketModule with the given handler.
// Panics if h is nil.
func NewModule(h *TicketHandler) *TicketModule {
	if h == nil {
		panic("ticket.NewModule: handler must not be nil")
	}
	return &TicketModule{handler: h}
}

// RegisterRoutes registers ticket API routes.
func (m *TicketModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/tickets", m.handler.Open)
	api.GET("/tickets/:id", m.handler.Get)
	api.GET("/tickets", m.handler.List)
	api.PUT("/tickets/:id/status", m.handler.UpdateStatus)
}
