package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mgrady4/civica/internal/sanitize"
)

// Sanitize rewrites every query parameter through the sanitizer before
// any handler logic runs. It has no knowledge of which parameters
// matter to which endpoint and never rejects a request; values are
// normalized in place. Request bodies are sanitized field by field
// after binding, since they only exist on a handful of endpoints.
func Sanitize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.RawQuery != "" {
			values := c.Request.URL.Query()
			sanitize.Values(values)
			c.Request.URL.RawQuery = values.Encode()
		}
		c.Next()
	}
}
