package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/internal/domain/task"
	vo "taskdesk/internal/domain/task/valueobjects"
	"taskdesk/internal/shared/biztime"
	"taskdesk/internal/shared/errors"
)

func fixedClock() biztime.Clock {
	return biztime.FixedClock(time.Date(2025, 3, 14, 10, 25, 0, 0, biztime.Location()))
}

func waitForNotification(t *testing.T, n *mockNotifier) string {
	t.Helper()
	select {
	case text := <-n.calls:
		return text
	case <-time.After(2 * time.Second):
		t.Fatal("expected a chat notification")
		return ""
	}
}

func TestCreateTaskUseCase_Execute_Success(t *testing.T) {
	var appended *task.Task
	mockRepo := &mockTaskRepository{
		AppendFunc: func(ctx context.Context, tk *task.Task) (int, error) {
			appended = tk
			return 7, nil
		},
	}
	notifier := newMockNotifier()

	useCase := NewCreateTaskUseCase(mockRepo, notifier, fixedClock(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTaskCommand{
		Title:      "Leaky faucet",
		Category:   "repair",
		Status:     "received",
		OccurredOn: "2025/03/14",
		StartDate:  "2025/03/14",
		StartTime:  "09:30",
		Location:   "2F kitchenette",
		Assignee:   "yamada",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 7, result.RowNumber)
	assert.Equal(t, "received", result.Status)
	assert.Equal(t, "2025/03/14", result.OccurredOn)
	assert.Equal(t, "2025/03/14 09:30", result.StartedAt)

	require.NotNil(t, appended)
	assert.Equal(t, "Leaky faucet", appended.Title())
	assert.Equal(t, vo.ModeFull, appended.StartedAt().Mode())
	assert.True(t, appended.CompletedAt().IsBlank(), "completion must be created blank")

	text := waitForNotification(t, notifier)
	assert.Contains(t, text, "New task registered")
	assert.Contains(t, text, "Leaky faucet")
	assert.Contains(t, text, "yamada")
}

func TestCreateTaskUseCase_Execute_Defaults(t *testing.T) {
	var appended *task.Task
	mockRepo := &mockTaskRepository{
		AppendFunc: func(ctx context.Context, tk *task.Task) (int, error) {
			appended = tk
			return 2, nil
		},
	}

	useCase := NewCreateTaskUseCase(mockRepo, newMockNotifier(), fixedClock(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTaskCommand{
		Title: "Replace entrance mat",
	})

	require.NoError(t, err)
	assert.Equal(t, "received", result.Status, "omitted status defaults to received")
	assert.Equal(t, "2025/03/14", result.OccurredOn, "omitted occurrence defaults to today")
	assert.Equal(t, "2025/03/14 10:25", result.StartedAt, "omitted start defaults to now")
	require.NotNil(t, appended)
	assert.Equal(t, vo.StatusReceived, appended.Status())
}

func TestCreateTaskUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTaskCommand
	}{
		{
			name:    "empty title",
			command: CreateTaskCommand{Title: "", Category: "repair"},
		},
		{
			name:    "whitespace title",
			command: CreateTaskCommand{Title: "   "},
		},
		{
			name:    "unknown status",
			command: CreateTaskCommand{Title: "Valid", Status: "cancelled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockTaskRepository{}
			notifier := newMockNotifier()

			useCase := NewCreateTaskUseCase(mockRepo, notifier, fixedClock(), &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, 0, mockRepo.writes(), "validation failure must issue zero store writes")
			assert.Empty(t, notifier.calls)
		})
	}
}

func TestCreateTaskUseCase_Execute_NotifierFailureSwallowed(t *testing.T) {
	mockRepo := &mockTaskRepository{
		AppendFunc: func(ctx context.Context, tk *task.Task) (int, error) {
			return 3, nil
		},
	}
	notifier := newMockNotifier()
	notifier.NotifyFunc = func(ctx context.Context, text string) error {
		return fmt.Errorf("webhook unreachable")
	}

	useCase := NewCreateTaskUseCase(mockRepo, notifier, fixedClock(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTaskCommand{Title: "AC filter swap"})

	require.NoError(t, err, "notification failure must not fail the create")
	assert.Equal(t, 3, result.RowNumber)
	waitForNotification(t, notifier)
}

func TestCreateTaskUseCase_Execute_StoreError(t *testing.T) {
	mockRepo := &mockTaskRepository{
		AppendFunc: func(ctx context.Context, tk *task.Task) (int, error) {
			return 0, errors.NewStoreError("append failed", fmt.Errorf("transient connectivity"))
		},
	}
	notifier := newMockNotifier()

	useCase := NewCreateTaskUseCase(mockRepo, notifier, fixedClock(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTaskCommand{Title: "Valid"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsStoreError(err))
	assert.Empty(t, notifier.calls, "failed create must not notify")
}
