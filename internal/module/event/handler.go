package event

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/payflowhq/payflow/internal/middleware"
	"github.com/payflowhq/payflow/internal/pkg"
)

// EventHandler handles REST API requests for calendar events.
type EventHandler struct {
	svc Service
}

// NewHandler creates a new EventHandler with the given service.
func NewHandler(svc Service) *EventHandler {
	return &EventHandler{svc: svc}
}

// Create handles POST /api/v1/events.
func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	e, err := h.svc.CreateEvent(c.Request.Context(), middleware.GetUserID(c), req.Title, req.StartTime, req.EndTime)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    e,
	})
}

// Get handles GET /api/v1/events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	e, err := h.svc.GetEvent(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, e)
}

// List handles GET /api/v1/events.
func (h *EventHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListEvents(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/events/:id.
func (h *EventHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateEventRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	e, err := h.svc.UpdateEvent(c.Request.Context(), middleware.GetUserID(c), id, req.Title, req.StartTime, req.EndTime)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, e)
}

// Delete handles DELETE /api/v1/events/:id.
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteEvent(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
