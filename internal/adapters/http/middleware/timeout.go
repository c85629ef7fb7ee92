package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
	"github.com/plazasales/storefront/internal/platform/logging"
)

// Timeout returns middleware that puts a deadline on the request context.
// Handlers and backend clients observe it through ctx; when the deadline has
// passed and nothing was written, the request gets a 504 envelope.
// Routes named in longer (gin full paths) get their own budget instead,
// which is how multipart uploads get more time than page reads.
func Timeout(timeout time.Duration, longer map[string]time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := timeout
		if override, ok := longer[c.FullPath()]; ok {
			d = override
		}

		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		logging.FromContext(ctx).Warn("request deadline exceeded",
			"route", c.FullPath(),
			"timeout", d,
		)

		dto.AbortWithError(c, ctx.Err())
	}
}
