package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
)

// Recovery turns a panicking handler into a 500. A panic on a hijacked
// camera socket can no longer be answered, so it is only logged.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.Error("panic recovered",
				zap.Any("error", rec),
				zap.ByteString("stack", debug.Stack()),
				zap.String("route", c.FullPath()),
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.String("session_id", c.GetString(SessionIDKey)),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			httputil.InternalError(c)
			c.Abort()
		}()
		c.Next()
	}
}
