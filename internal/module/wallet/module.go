package wallet

import "github.com/gin-gonic/gin"

// WalletModule implements the app.Module interface for the wallet domain.
type WalletModule struct {
	handler *WalletHandler
}

// NewModule creates a new WalletModule with the given handler.
// Panics if h is nil.
func NewModule(h *WalletHandler) *WalletModule {
	if h == nil {
		panic("wallet.NewModule: handler must not be nil")
	}
	return &WalletModule{handler: h}
}

// RegisterRoutes registers wallet API routes.
func (m *WalletModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/wallet", m.handler.Get)
	api.POST("/wallet/send", m.handler.Send)
	api.POST("/wallet/topup", m.handler.TopUp)
}
