package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
	"github.com/plazasales/storefront/internal/platform/logging"
)

// Recovery returns middleware that turns a panic into the generic 500
// envelope. It must be first in the chain. The stack is logged at ERROR with
// the request's identifiers; fallback is used when the request context
// carries no logger.
func Recovery(fallback *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logger := logging.FromContextOr(c.Request.Context(), fallback)

			logger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", c.Request.Method),
				slog.String("route", c.FullPath()),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			dto.AbortWithError(c, fmt.Errorf("panic: %v", r))
		}()

		c.Next()
	}
}
