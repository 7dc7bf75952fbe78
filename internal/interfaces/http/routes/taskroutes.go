package routes

import (
	"github.com/gin-gonic/gin"

	taskhandlers "taskdesk/internal/interfaces/http/handlers/task"
)

type TaskRouteConfig struct {
	TaskHandler *taskhandlers.TaskHandler
}

func SetupTaskRoutes(engine *gin.Engine, config *TaskRouteConfig) {
	api := engine.Group("/api/v1")
	{
		api.GET("/tasks", config.TaskHandler.ListTasks)
		api.POST("/tasks", config.TaskHandler.CreateTask)
		api.PUT("/tasks/:row", config.TaskHandler.UpdateTask)
		api.DELETE("/tasks/:row", config.TaskHandler.DeleteTask)

		api.GET("/assignees", config.TaskHandler.ListAssignees)
	}
}
