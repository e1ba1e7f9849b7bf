// package middleware holds the gin middleware shared by the HTTP surface:
// per-request trace IDs, inbound request logging and panic recovery.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"
)

type CtxKey string

const CtxKeyTraceID CtxKey = "trace_id"

// TraceID tags every request context with a fresh ksuid so log records can
// be correlated across the request.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), CtxKeyTraceID, ksuid.New().String())
		c.Request = c.Request.Clone(ctx)

		c.Next()
	}
}
