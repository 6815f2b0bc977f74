package notification

import (
	"github.com/gin-gonic/gin"

	"github.com/payflowhq/payflow/internal/middleware"
	"github.com/payflowhq/payflow/internal/pkg"
)

// NotificationHandler handles REST API requests for notifications.
type NotificationHandler struct {
	svc Service
}

// NewHandler creates a new NotificationHandler with the given service.
func NewHandler(svc Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /api/v1/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListByUser(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// MarkRead handles PUT /api/v1/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.MarkRead(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
