package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/folio/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
)

// RequestID reuses a well-formed incoming X-Request-ID or assigns a new one.
func RequestID(uuidGen contract.IUUIDGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !uuidGen.Valid(id) {
			id = uuidGen.NewUUID()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per request at debug level, warn for 5xx.
func RequestLogger(logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		logf := logger.Debugf
		if status >= 500 {
			logf = logger.Warnf
		}
		logf("%s %s %d %s request_id=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.GetString(RequestIDKey))
	}
}
