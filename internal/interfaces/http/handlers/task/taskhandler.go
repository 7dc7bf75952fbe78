package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdesk/internal/application/task/usecases"
	"taskdesk/internal/shared/errors"
	"taskdesk/internal/shared/logger"
	"taskdesk/internal/shared/utils"
)

type TaskHandler struct {
	createTaskUC    usecases.CreateTaskExecutor
	updateTaskUC    usecases.UpdateTaskExecutor
	deleteTaskUC    usecases.DeleteTaskExecutor
	listTasksUC     usecases.ListTasksExecutor
	listAssigneesUC usecases.ListAssigneesExecutor
	logger          logger.Interface
}

func NewTaskHandler(
	createTaskUC usecases.CreateTaskExecutor,
	updateTaskUC usecases.UpdateTaskExecutor,
	deleteTaskUC usecases.DeleteTaskExecutor,
	listTasksUC usecases.ListTasksExecutor,
	listAssigneesUC usecases.ListAssigneesExecutor,
) *TaskHandler {
	return &TaskHandler{
		createTaskUC:    createTaskUC,
		updateTaskUC:    updateTaskUC,
		deleteTaskUC:    deleteTaskUC,
		listTasksUC:     listTasksUC,
		listAssigneesUC: listAssigneesUC,
		logger:          logger.NewLogger(),
	}
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create task", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createTaskUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Task created successfully")
}

// UpdateTask handles PUT /tasks/:row
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	rowNumber, err := parseRowNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update task", "row_number", rowNumber, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateTaskUC.Execute(c.Request.Context(), req.ToCommand(rowNumber))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task updated successfully", result)
}

// DeleteTask handles DELETE /tasks/:row
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	rowNumber, err := parseRowNumber(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteTaskUC.Execute(c.Request.Context(), usecases.DeleteTaskCommand{RowNumber: rowNumber})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task deleted successfully", result)
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	req := parseListTasksRequest(c)

	result, err := h.listTasksUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tasks, result.Total)
}

// ListAssignees handles GET /assignees
func (h *TaskHandler) ListAssignees(c *gin.Context) {
	result, err := h.listAssigneesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Assignees, len(result.Assignees))
}
