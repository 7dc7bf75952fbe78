package usecases

import (
	"context"
)

// Notifier posts a best-effort text message to the team chat. Failures
// are logged and discarded by the caller; they never fail the write that
// triggered them.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type CreateTaskExecutor interface {
	Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error)
}

type UpdateTaskExecutor interface {
	Execute(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error)
}

type DeleteTaskExecutor interface {
	Execute(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error)
}

type ListTasksExecutor interface {
	Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error)
}

type ListAssigneesExecutor interface {
	Execute(ctx context.Context) (*ListAssigneesResult, error)
}
