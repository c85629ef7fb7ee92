package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps request bodies at limit bytes. Routes named in larger (gin
// full paths) get their own cap, which is how the application upload accepts
// attachments while JSON forms stay small.
func BodyLimit(limit int64, larger map[string]int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := limit
		if override, ok := larger[c.FullPath()]; ok {
			n = override
		}

		if n > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}

		c.Next()
	}
}
