package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"eva-assistant/internal/model"
	"eva-assistant/pkg/response"
)

const scopeKey = "scope"

// AuthMiddleware validates the bearer token and stores the caller's
// scope on the request context.
func (h *handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := h.uc.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

func getScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
