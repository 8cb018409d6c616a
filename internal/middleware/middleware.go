// Package middleware provides gin middleware for the remote control surface.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amaumene/moviemood/pkg/httputil"
	"github.com/amaumene/moviemood/pkg/logger"
)

const requestIDKey = "request_id"

// RequestID tags every request with the caller's X-Request-Id or a new one
// and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(httputil.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(httputil.HeaderRequestID, id)
		c.Next()
	}
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, "+httputil.HeaderRequestID)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		requestID := c.GetString(requestIDKey)

		if raw != "" {
			path = path + "?" + raw
		}

		switch {
		case statusCode >= 500:
			log.Errorf("[HTTP] %s %s %d %v %s (%s)", c.ClientIP(), c.Request.Method, statusCode, latency, path, requestID)
		case statusCode >= 400:
			log.Warnf("[HTTP] %s %s %d %v %s (%s)", c.ClientIP(), c.Request.Method, statusCode, latency, path, requestID)
		default:
			log.Infof("[HTTP] %s %s %d %v %s (%s)", c.ClientIP(), c.Request.Method, statusCode, latency, path, requestID)
		}
	}
}
