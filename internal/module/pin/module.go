package pin

import "github.com/gin-gonic/gin"

// PinModule implements the app.Module interface for the pin domain.
type PinModule struct {
	handler *PinHandler
}

// NewModule creates a new PinModule with the given handler.
// Panics if h is nil.
func NewModule(h *PinHandler) *PinModule {
	if h == nil {
		panic("pin.NewModule: handler must not be nil")
	}
	return &PinModule{handler: h}
}

// RegisterRoutes registers pin API routes.
func (m *PinModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/pin", m.handler.Status)
	api.POST("/pin", m.handler.Set)
	api.POST("/pin/confirm", m.handler.Confirm)
}
