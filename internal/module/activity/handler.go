package activity

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/payflowhq/payflow/internal/middleware"
	"github.com/payflowhq/payflow/internal/pkg"
)

// ActivityHandler handles REST API requests for the recent-activity feed.
type ActivityHandler struct {
	svc Service
}

// NewHandler creates a new ActivityHandler with the given service.
func NewHandler(svc Service) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// Feed handles GET /api/v1/activities.
//
// Query parameters: keyword, sort (action|email|date), order (asc|desc),
// page, limit.
func (h *ActivityHandler) Feed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	q := FeedQuery{
		Keyword:    c.Query("keyword"),
		SortField:  c.Query("sort"),
		Descending: c.DefaultQuery("order", "asc") == "desc",
		Page:       page,
		Limit:      limit,
	}

	feed, err := h.svc.Feed(c.Request.Context(), middleware.GetUserID(c), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, feed)
}
