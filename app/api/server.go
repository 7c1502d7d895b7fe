// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/veracify/veracify/app/cfg"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, apiAccessKey string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-API-Key, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler, apiAccessKey)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler, apiAccessKey string) {
	r.GET("/health", handler.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/process-url", handler.ProcessURL)
		v1.POST("/process-text", handler.ProcessText)
		v1.POST("/process-image", handler.ProcessImage)
		v1.GET("/sources", handler.GetSources)
		v1.POST("/feedback", handler.PostFeedback)
		v1.GET("/feedback", handler.GetFeedback)
	}

	// History exposes past submissions, so it requires the access key
	// whenever one is configured.
	if apiAccessKey != "" {
		v1.GET("/history", authMiddleware(apiAccessKey), handler.GetHistory)
		slog.Info("History endpoint enabled with authentication")
	} else {
		v1.GET("/history", handler.GetHistory)
		slog.Info("History endpoint enabled without authentication (API_ACCESS_KEY not set)")
	}

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		endpoints := map[string]string{
			"process_url":   "/api/v1/process-url (POST)",
			"process_text":  "/api/v1/process-text (POST)",
			"process_image": "/api/v1/process-image (POST, multipart)",
			"sources":       "/api/v1/sources?query=<text>",
			"feedback":      "/api/v1/feedback (GET, POST)",
			"history":       "/api/v1/history?limit=<n>",
			"health":        "/health",
		}
		if apiAccessKey != "" {
			endpoints["history"] = "/api/v1/history?limit=<n> (requires X-API-Key header)"
		}

		c.JSON(200, gin.H{
			"service":     "Veracify",
			"version":     cfg.GetVersion(),
			"description": "News credibility analysis: summarization, classification, and evidence-backed verdicts",
			"endpoints":   endpoints,
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

// authMiddleware creates authentication middleware for protected endpoints
func authMiddleware(apiAccessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		providedKey := c.GetHeader("X-API-Key")

		if providedKey == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				providedKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if providedKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "API key required",
				"message": "Provide API key in X-API-Key header or Authorization: Bearer <key>",
			})
			c.Abort()
			return
		}

		if providedKey != apiAccessKey {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid API key",
				"message": "The provided API key is not valid",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
