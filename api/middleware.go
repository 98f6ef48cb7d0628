package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"servermon/api/errs"
	"servermon/api/types"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags each request with an id, reusing the caller's X-Request-ID
// when present, and stores a logger carrying it in the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		logger := log.With().Str(requestIDKey, id).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()
	}
}

func ZLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		logger := log.Ctx(c.Request.Context())

		if len(c.Errors) != 0 {
			err := c.Errors.Last().Err
			logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")

			if !c.Writer.Written() {
				statusCode, knownErr := errs.StatusFor(err)
				c.AbortWithStatusJSON(statusCode, types.Response{
					Status:  "error",
					Message: knownErr.Error(),
				})
			}
		}

		logger.Debug().
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("")
	}
}
