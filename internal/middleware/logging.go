package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// contextKey is the key type used to store values in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	loggerCtxKey = contextKey("loggerCtx")
)

// StructuredLoggingMiddleware creates a Gin middleware handler that injects
// a request-scoped logger into the context.
func StructuredLoggingMiddleware(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		requestLogger := baseLogger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		c.Header("X-Request-ID", requestID)

		// Store the logger in both the Gin context and the standard request
		// context so code below the handler layer can reach it.
		c.Set(string(loggerKey), requestLogger)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), loggerCtxKey, requestLogger))

		c.Next()

		latency := time.Since(start)
		requestLogger.Info("Request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", latency),
		)
	}
}

// GetLoggerFromContext retrieves the request-scoped logger from the Gin
// context. It returns the default logger if none is found.
func GetLoggerFromContext(c *gin.Context) *slog.Logger {
	logger, exists := c.Get(string(loggerKey))
	if !exists {
		return slog.Default()
	}

	slogLogger, ok := logger.(*slog.Logger)
	if !ok {
		slog.Error("Logger in context is not of type *slog.Logger")
		return slog.Default()
	}

	return slogLogger
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context. It returns the default logger if none is found, so services can
// log safely from any context.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
