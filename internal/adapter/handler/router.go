package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-analytics/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	analysisController *AnalysisController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisController *AnalysisController) *Router {
	return &Router{
		cfg:                cfg,
		analysisController: analysisController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	if rt.analysisController != nil {
		v1.POST("/transcribe", rt.analysisController.Transcribe)
		v1.POST("/analyze", rt.analysisController.Analyze)
		v1.POST("/analyze/text", rt.analysisController.AnalyzeText)
	} else {
		v1.POST("/transcribe", rt.notImplemented)
		v1.POST("/analyze", rt.notImplemented)
		v1.POST("/analyze/text", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
