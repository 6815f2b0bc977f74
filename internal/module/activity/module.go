package activity

import "github.com/gin-gonic/gin"

// ActivityModule implements the app.Module interface for the activity domain.
type ActivityModule struct {
	handler *ActivityHandler
}

// NewModule creates a new ActivityModule with the given handler.
// Panics if h is nil.
func NewModule(h *ActivityHandler) *ActivityModule {
	if h == nil {
		panic("activity.NewModule: handler must not be nil")
	}
	return &ActivityModule{handler: h}
}

// RegisterRoutes registers activity API routes.
func (m *ActivityModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/activities", m.handler.Feed)
}
