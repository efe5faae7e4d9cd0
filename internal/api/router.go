package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/typed-helpers/internal/config"
	"github.com/typed-helpers/internal/validation"
)

// RequestIDHeader carries the per-request correlation ID
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.New()

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	validator := validation.NewValidator()
	recordHandler := NewRecordHandler(validator, log)
	utilityHandler := NewUtilityHandler(log)
	sequenceHandler := NewSequenceHandler(log)

	// Health check
	router.GET("/health", healthCheck(cfg.Service))

	// API v1
	v1 := router.Group("/v1")
	{
		v1.POST("/users", recordHandler.CreateUser)
		v1.POST("/books", recordHandler.CreateBook)

		v1.GET("/area", utilityHandler.CalculateArea)
		v1.GET("/status/:status/color", utilityHandler.GetStatusColor)

		format := v1.Group("/format")
		{
			format.POST("/capitalize", utilityHandler.CapitalizeFirstLetter)
			format.POST("/trim", utilityHandler.TrimAndUppercase)
		}

		sequences := v1.Group("/sequences")
		{
			sequences.POST("/first", sequenceHandler.GetFirstElement)
			sequences.POST("/find", sequenceHandler.FindByID)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   service,
		})
	}
}

// requestIDMiddleware reuses the caller's request ID or generates one
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("request_id", c.GetString(requestIDKey)).
					Msg("Panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// badRequest writes a 400 response with an error message and optional details
func badRequest(c *gin.Context, msg string, errs []validation.ValidationError) {
	body := gin.H{"error": msg}
	if len(errs) > 0 {
		body["errors"] = errs
	}
	c.JSON(http.StatusBadRequest, body)
}
