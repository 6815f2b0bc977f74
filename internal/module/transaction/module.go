package transaction

import "github.com/gin-gonic/gin"

// TransactionModule implements the app.Module interface for the transaction domain.
type TransactionModule struct {
	handler *TransactionHandler
}

// NewModule creates a new TransactionModule with the given handler.
// Panics if h is nil.
func NewModule(h *TransactionHandler) *TransactionModule {
	if h == nil {
		panic("transaction.NewModule: handler must not be nil")
	}
	return &TransactionModule{handler: h}
}

// RegisterRoutes registers transaction API routes.
func (m *TransactionModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/transactions", m.handler.List)
}
