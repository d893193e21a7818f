package middleware

import (
	"bizdash/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}

		c.Set("request_id", rid)

		// Propagate into the standard context so services can log it, along
		// with a logger already carrying the id.
		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		ctx = contextutil.WithLogger(ctx, zap.L().With(zap.String("request_id", rid)))
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", rid)
		c.Next()
	}
}
