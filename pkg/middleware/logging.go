package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logging logs every inbound request once it has been handled. The key query
// parameter is obfuscated in case a caller proxies their own what3words API
// key through.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		t0 := time.Now()

		c.Next()

		q := c.Request.URL.Query()
		if q.Has("key") {
			q.Set("key", "*****")
		}

		slog.InfoContext(c.Request.Context(), "inbound request",
			"http.request.duration_ms", time.Since(t0).Milliseconds(),
			"http.request.method", c.Request.Method,
			"http.request.url.path", c.Request.URL.Path,
			"http.request.url.query_params", q,
			"http.request.content_length", c.Request.ContentLength,
			"http.response.status_code", c.Writer.Status(),
			"http.response.content_length", c.Writer.Size())
	}
}
