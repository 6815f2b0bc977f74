package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/payflowhq/payflow/internal/middleware"
	"github.com/payflowhq/payflow/internal/pkg"
)

// TicketHandler handles REST API requests for support tickets.
type TicketHandler struct {
	svc Service
}

// NewHandler creates a new TicketHandler with the given service.
func NewHandler(svc Service) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// Open handles POST /api/v1/tickets.
func (h *TicketHandler) Open(c *gin.Context) {
	var req OpenTicketRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	t, err := h.svc.OpenTicket(c.Request.Context(), middleware.GetUserID(c), req.Subject, req.Body)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    t,
	})
}

// Get handles GET /api/v1/tickets/:id.
func (h *TicketHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	t, err := h.svc.GetTicket(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, t)
}

// List handles GET /api/v1/tickets.
func (h *TicketHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListTickets(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// UpdateStatus handles PUT /api/v1/tickets/:id/status.
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateStatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	t, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, t)
}
