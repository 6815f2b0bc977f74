package pin

import (
	"github.com/gin-gonic/gin"

	"github.com/payflowhq/payflow/internal/middleware"
	"github.com/payflowhq/payflow/internal/pkg"
)

// PinHandler handles REST API requests for transaction PINs. All routes
// require authentication; the user is taken from the request context.
type PinHandler struct {
	svc Service
}

// NewHandler creates a new PinHandler with the given service.
func NewHandler(svc Service) *PinHandler {
	return &PinHandler{svc: svc}
}

// Status handles GET /api/v1/pin.
func (h *PinHandler) Status(c *gin.Context) {
	userID := middleware.GetUserID(c)

	hasPin, err := h.svc.HasPin(c.Request.Context(), userID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, PinStatusResponse{HasPin: hasPin})
}

// Set handles POST /api/v1/pin.
func (h *PinHandler) Set(c *gin.Context) {
	var req SetPinRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.SetPin(c.Request.Context(), middleware.GetUserID(c), req.Code); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Confirm handles POST /api/v1/pin/confirm.
func (h *PinHandler) Confirm(c *gin.Context) {
	var req ConfirmPinRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.svc.ConfirmPin(c.Request.Context(), middleware.GetUserID(c), req.Code); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
