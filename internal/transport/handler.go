package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-palette-triage/internal/config"
	apperrors "go-palette-triage/internal/errors"
	"go-palette-triage/internal/logger"
	"go-palette-triage/internal/service"
	"go-palette-triage/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewHandler configures the HTTP routes for the triage service
func NewHandler(triage service.TriageService, cfg *config.Config) http.Handler {
	r := gin.Default()

	// Add middleware
	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	// Configure routes
	r.GET("/health", healthCheck)
	r.POST("/triage", triageBatch(triage, cfg))

	return r
}

func triageBatch(triage service.TriageService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"user_agent": c.Request.UserAgent(),
			"ip":         c.ClientIP(),
		}).Info("Processing batch triage request")

		var req models.TriageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"ip": c.ClientIP(),
			}).Error("Invalid request format")
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		// Ranking may also be supplied as a query parameter, taking
		// precedence over the JSON body
		if ranking := c.Query("ranking"); ranking != "" {
			req.Ranking = ranking
		}

		response, err := triage.TriageBatch(ctx, req)
		if err != nil {
			var triageErr *apperrors.AppError
			if errors.Is(err, context.DeadlineExceeded) {
				triageErr = apperrors.NewTimeoutError("batch triage timeout", err)
			} else if appErr, ok := err.(*apperrors.AppError); ok {
				triageErr = appErr
			} else {
				triageErr = apperrors.NewInternalError("batch triage failed", err)
			}

			logger.WithError(triageErr).WithFields(logrus.Fields{
				"batch_size": len(req.Images),
				"ip":         c.ClientIP(),
			}).Error("Batch triage failed")

			respondError(c, triageErr.StatusCode, "batch triage failed", triageErr)
			return
		}

		duration := time.Since(startTime)
		logger.WithFields(logrus.Fields{
			"batch_id":           response.BatchID,
			"batch_size":         len(response.Images),
			"ranking":            response.Ranking,
			"processing_time_ms": duration.Milliseconds(),
		}).Info("Batch triage completed successfully")

		c.JSON(http.StatusOK, response)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	// Check if it's a custom app error first
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.StatusCode
	}

	// Fallback to context-based errors
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	// Log the error with context
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
