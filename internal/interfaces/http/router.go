package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdesk/internal/infrastructure/config"
	taskhandlers "taskdesk/internal/interfaces/http/handlers/task"
	"taskdesk/internal/interfaces/http/middleware"
	"taskdesk/internal/interfaces/http/routes"
	"taskdesk/internal/shared/logger"
	"taskdesk/internal/shared/utils"
)

// Router wires the gin engine, middleware, and route groups together.
type Router struct {
	engine      *gin.Engine
	taskHandler *taskhandlers.TaskHandler
	logger      logger.Interface
}

func NewRouter(taskHandler *taskhandlers.TaskHandler, log logger.Interface) *Router {
	return &Router{
		engine:      gin.New(),
		taskHandler: taskHandler,
		logger:      log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/healthz", healthz)

	routes.SetupTaskRoutes(r.engine, &routes.TaskRouteConfig{
		TaskHandler: r.taskHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func healthz(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
