package task

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskdto "taskdesk/internal/application/task/dto"
	"taskdesk/internal/application/task/usecases"
	"taskdesk/internal/interfaces/http/handlers/testutil"
	"taskdesk/internal/shared/errors"
	"taskdesk/internal/shared/utils"
)

func init() {
	// Mirror the binding-tag registration the router does at startup.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("datecell", utils.DateCellValidation)
		_ = v.RegisterValidation("clocktime", utils.ClockTimeValidation)
	}
}

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTaskUC struct {
	result *usecases.CreateTaskResult
	err    error
	gotCmd *usecases.CreateTaskCommand
}

func (m *mockCreateTaskUC) Execute(_ context.Context, cmd usecases.CreateTaskCommand) (*usecases.CreateTaskResult, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockUpdateTaskUC struct {
	result *usecases.UpdateTaskResult
	err    error
	gotCmd *usecases.UpdateTaskCommand
}

func (m *mockUpdateTaskUC) Execute(_ context.Context, cmd usecases.UpdateTaskCommand) (*usecases.UpdateTaskResult, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockDeleteTaskUC struct {
	result *usecases.DeleteTaskResult
	err    error
	gotCmd *usecases.DeleteTaskCommand
}

func (m *mockDeleteTaskUC) Execute(_ context.Context, cmd usecases.DeleteTaskCommand) (*usecases.DeleteTaskResult, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockListTasksUC struct {
	result   *usecases.ListTasksResult
	err      error
	gotQuery *usecases.ListTasksQuery
}

func (m *mockListTasksUC) Execute(_ context.Context, query usecases.ListTasksQuery) (*usecases.ListTasksResult, error) {
	m.gotQuery = &query
	return m.result, m.err
}

type mockListAssigneesUC struct {
	result *usecases.ListAssigneesResult
	err    error
}

func (m *mockListAssigneesUC) Execute(_ context.Context) (*usecases.ListAssigneesResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createTaskUC    usecases.CreateTaskExecutor
	updateTaskUC    usecases.UpdateTaskExecutor
	deleteTaskUC    usecases.DeleteTaskExecutor
	listTasksUC     usecases.ListTasksExecutor
	listAssigneesUC usecases.ListAssigneesExecutor
}

func newTestTaskHandler(deps testDeps) *TaskHandler {
	return NewTaskHandler(
		deps.createTaskUC,
		deps.updateTaskUC,
		deps.deleteTaskUC,
		deps.listTasksUC,
		deps.listAssigneesUC,
	)
}

func validUpdateRequest() UpdateTaskRequest {
	return UpdateTaskRequest{
		ExpectedTitle:  "AC repair",
		Title:          "AC repair",
		Category:       "repair",
		Status:         "in_progress",
		OccurredOn:     "2025/03/10",
		StartMode:      "full",
		StartDate:      "2025/03/12",
		StartTime:      "09:00",
		CompletionMode: "blank",
	}
}

// =====================================================================
// TestTaskHandler_CreateTask
// =====================================================================

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	mockUC := &mockCreateTaskUC{
		result: &usecases.CreateTaskResult{
			RowNumber:  7,
			Title:      "Leaky faucet",
			Status:     "received",
			OccurredOn: "2025/03/14",
			StartedAt:  "2025/03/14 09:30",
		},
	}
	handler := newTestTaskHandler(testDeps{createTaskUC: mockUC})

	reqBody := CreateTaskRequest{
		Title:      "Leaky faucet",
		Category:   "repair",
		OccurredOn: "2025/03/14",
		StartDate:  "2025/03/14",
		StartTime:  "09:30",
		Assignee:   "tanaka",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tasks", reqBody)

	handler.CreateTask(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	require.NotNil(t, mockUC.gotCmd)
	assert.Equal(t, "Leaky faucet", mockUC.gotCmd.Title)
	assert.Equal(t, "09:30", mockUC.gotCmd.StartTime)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	reqBody := map[string]string{"category": "repair"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tasks", reqBody)

	handler.CreateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestTaskHandler_CreateTask_RejectsISODate(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	reqBody := CreateTaskRequest{Title: "Leaky faucet", OccurredOn: "2025-03-14"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tasks", reqBody)

	handler.CreateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_CreateTask_UseCaseError(t *testing.T) {
	mockUC := &mockCreateTaskUC{err: errors.NewStoreError("append failed", nil)}
	handler := newTestTaskHandler(testDeps{createTaskUC: mockUC})

	reqBody := CreateTaskRequest{Title: "Leaky faucet"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/tasks", reqBody)

	handler.CreateTask(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "store_error", resp.Error.Type)
}

// =====================================================================
// TestTaskHandler_UpdateTask
// =====================================================================

func TestTaskHandler_UpdateTask_Success(t *testing.T) {
	mockUC := &mockUpdateTaskUC{
		result: &usecases.UpdateTaskResult{
			RowNumber: 4,
			Title:     "AC repair",
			Status:    "in_progress",
			StartedAt: "2025/03/12 09:00",
		},
	}
	handler := newTestTaskHandler(testDeps{updateTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/tasks/4", validUpdateRequest())
	testutil.SetURLParam(c, "row", "4")

	handler.UpdateTask(c)

	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, mockUC.gotCmd)
	assert.Equal(t, 4, mockUC.gotCmd.RowNumber)
	assert.Equal(t, "AC repair", mockUC.gotCmd.ExpectedTitle)
	assert.Equal(t, "blank", mockUC.gotCmd.CompletionMode)
}

func TestTaskHandler_UpdateTask_BadRowParam(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/tasks/abc", validUpdateRequest())
	testutil.SetURLParam(c, "row", "abc")

	handler.UpdateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_UpdateTask_MissingModes(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	reqBody := validUpdateRequest()
	reqBody.StartMode = ""
	reqBody.CompletionMode = ""
	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/tasks/4", reqBody)
	testutil.SetURLParam(c, "row", "4")

	handler.UpdateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_UpdateTask_Conflict(t *testing.T) {
	mockUC := &mockUpdateTaskUC{err: errors.NewConflictError("row 4 changed underneath")}
	handler := newTestTaskHandler(testDeps{updateTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/tasks/4", validUpdateRequest())
	testutil.SetURLParam(c, "row", "4")

	handler.UpdateTask(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// TestTaskHandler_DeleteTask
// =====================================================================

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	mockUC := &mockDeleteTaskUC{result: &usecases.DeleteTaskResult{RowNumber: 3}}
	handler := newTestTaskHandler(testDeps{deleteTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/tasks/3", nil)
	testutil.SetURLParam(c, "row", "3")

	handler.DeleteTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotCmd)
	assert.Equal(t, 3, mockUC.gotCmd.RowNumber)
}

func TestTaskHandler_DeleteTask_StoreError(t *testing.T) {
	mockUC := &mockDeleteTaskUC{err: errors.NewStoreError("delete failed", nil)}
	handler := newTestTaskHandler(testDeps{deleteTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/tasks/3", nil)
	testutil.SetURLParam(c, "row", "3")

	handler.DeleteTask(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// =====================================================================
// TestTaskHandler_ListTasks
// =====================================================================

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	mockUC := &mockListTasksUC{
		result: &usecases.ListTasksResult{
			Tasks: []taskdto.TaskDTO{{RowNumber: 2, Title: "Leaky faucet"}},
			Total: 1,
		},
	}
	handler := newTestTaskHandler(testDeps{listTasksUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tasks", nil)
	testutil.SetQueryParams(c, map[string]string{"q": "faucet", "view": "open"})

	handler.ListTasks(c)

	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, mockUC.gotQuery)
	assert.Equal(t, "faucet", mockUC.gotQuery.Keyword)
	assert.Equal(t, "open", mockUC.gotQuery.View)
}

func TestTaskHandler_ListTasks_DefaultsToAllView(t *testing.T) {
	mockUC := &mockListTasksUC{result: &usecases.ListTasksResult{}}
	handler := newTestTaskHandler(testDeps{listTasksUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tasks", nil)

	handler.ListTasks(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotQuery)
	assert.Equal(t, usecases.ViewAll, mockUC.gotQuery.View)
}

func TestTaskHandler_ListTasks_UnknownView(t *testing.T) {
	mockUC := &mockListTasksUC{err: errors.NewValidationError("unknown view: archived")}
	handler := newTestTaskHandler(testDeps{listTasksUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/tasks", nil)
	testutil.SetQueryParams(c, map[string]string{"view": "archived"})

	handler.ListTasks(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestTaskHandler_ListAssignees
// =====================================================================

func TestTaskHandler_ListAssignees_Success(t *testing.T) {
	mockUC := &mockListAssigneesUC{
		result: &usecases.ListAssigneesResult{Assignees: []string{"tanaka", "suzuki"}},
	}
	handler := newTestTaskHandler(testDeps{listAssigneesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/assignees", nil)

	handler.ListAssignees(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "tanaka")
}
