package event

import "github.com/gin-gonic/gin"

// EventModule implements the app.Module interface for the event domain.
type EventModule struct {
	handler *EventHandler
}

// NewModule creates a new EventModule with the given handler.
// Panics if h is nil.
func NewModule(h *EventHandler) *EventModule {
	if h == nil {
		panic("event.NewModule: handler must not be nil")
	}
	return &EventModule{handler: h}
}

// RegisterRoutes registers event API routes.
func (m *EventModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/events", m.handler.Create)
	api.GET("/events/:id", m.handler.Get)
	api.GET("/events", m.handler.List)
	api.PUT("/events/:id", m.handler.Update)
	api.DELETE("/events/:id", m.handler.Delete)
}
