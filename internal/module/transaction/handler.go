package transaction

import (
	"github.com/gin-gonic/gin"

	"github.com/payflowhq/payflow/internal/middleware"
	"github.com/payflowhq/payflow/internal/pkg"
)

// TransactionHandler handles REST API requests for the transaction history.
type TransactionHandler struct {
	svc Service
}

// NewHandler creates a new TransactionHandler with the given service.
func NewHandler(svc Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// List handles GET /api/v1/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListByUser(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}
