package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// HealthInfo describes the wiring reported by the health endpoints
type HealthInfo struct {
	Store     string // active persistence driver, "none" when unavailable
	Generator string // active text generator, "disabled" without a key
}

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	health         HealthInfo
	meetingHandler *Meeting
	taskHandler    *Task
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, health HealthInfo, meetingHandler *Meeting, taskHandler *Task) *Router {
	return &Router{
		cfg:            cfg,
		health:         health,
		meetingHandler: meetingHandler,
		taskHandler:    taskHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	api.GET("/health", rt.healthCheck)

	rt.setupMeetingRoutes(api)
	rt.setupTaskRoutes(api)
}

// setupMeetingRoutes configures summarization and meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	if rt.meetingHandler == nil {
		g.POST("/summarize", rt.notImplemented)
		g.GET("/meetings/:id", rt.notImplemented)
		return
	}
	g.POST("/summarize", rt.meetingHandler.Summarize)
	g.GET("/meetings/:id", rt.meetingHandler.GetMeeting)
}

// setupTaskRoutes configures task routes. Static paths are registered before
// :id so that echo never treats "dashboard" as an ID.
func (rt *Router) setupTaskRoutes(g *echo.Group) {
	tasks := g.Group("/tasks")

	if rt.taskHandler == nil {
		tasks.Any("", rt.notImplemented)
		tasks.Any("/*", rt.notImplemented)
		return
	}

	tasks.GET("", rt.taskHandler.ListTasks)
	tasks.POST("", rt.taskHandler.CreateTask)
	tasks.GET("/dashboard", rt.taskHandler.Dashboard)
	tasks.GET("/calendar", rt.taskHandler.Calendar)
	tasks.GET("/search", rt.taskHandler.Search)
	tasks.PUT("/:id", rt.taskHandler.UpdateTask)
	tasks.DELETE("/:id", rt.taskHandler.DeleteTask)
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
	env := ""
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().UTC().Format(time.RFC3339),
		"environment": env,
		"store":       rt.health.Store,
		"generator":   rt.health.Generator,
	})
}
