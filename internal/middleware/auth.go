package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/payflowhq/payflow/internal/token"
)

const (
	authHeader       = "Authorization"
	bearerPrefix     = "Bearer "
	userIDContextKey = "user_id"
)

// Auth returns a gin middleware that validates Bearer tokens on every request
// whose path is not listed in publicPaths.
//
// On success the authenticated user ID is stored in gin.Context under the key
// "user_id". On failure the request is aborted with a 401 JSON response.
func Auth(tokenSvc token.Service, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		header := c.GetHeader(authHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		tok, err := tokenSvc.ParseToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		userID, err := strconv.ParseUint(tok.UserID, 10, 64)
		if err != nil || userID == 0 {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(userIDContextKey, uint(userID))
		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the gin.Context.
// Returns 0 if the request is unauthenticated.
func GetUserID(c *gin.Context) uint {
	if v, exists := c.Get(userIDContextKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": msg,
		"data":    nil,
	})
}
