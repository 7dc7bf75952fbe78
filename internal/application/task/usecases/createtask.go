package usecases

import (
	"context"
	"fmt"
	"time"

	"taskdesk/internal/domain/task"
	vo "taskdesk/internal/domain/task/valueobjects"
	"taskdesk/internal/shared/biztime"
	"taskdesk/internal/shared/errors"
	"taskdesk/internal/shared/goroutine"
	"taskdesk/internal/shared/logger"
)

type CreateTaskCommand struct {
	Title       string
	Category    string
	Status      string
	OccurredOn  string
	StartDate   string
	StartTime   string
	Description string
	Cause       string
	ActionTaken string
	Location    string
	Department  string
	Requester   string
	Assignee    string
	Memo        string
	PhotoURL    string
}

type CreateTaskResult struct {
	RowNumber  int
	Title      string
	Status     string
	OccurredOn string
	StartedAt  string
}

type CreateTaskUseCase struct {
	taskRepo task.Repository
	notifier Notifier
	clock    biztime.Clock
	logger   logger.Interface
}

func NewCreateTaskUseCase(
	taskRepo task.Repository,
	notifier Notifier,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	uc.logger.Infow("executing create task use case", "title", cmd.Title, "assignee", cmd.Assignee)

	status, err := resolveStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	occurredOn := vo.ParseDateCell(cmd.OccurredOn, now)

	// Creation always records a concrete start moment: the form supplies
	// date and time (defaulting to now), so the start cell is encoded in
	// full mode. Completion starts blank by definition.
	startedAt := vo.NewDateTimeCell(combineDateTime(cmd.StartDate, cmd.StartTime, now), vo.ModeFull)

	newTask, err := task.NewTask(
		cmd.Title,
		vo.NewCategory(cmd.Category),
		status,
		occurredOn,
		startedAt,
		cmd.Description,
		cmd.Cause,
		cmd.ActionTaken,
		cmd.Location,
		cmd.Department,
		cmd.Requester,
		cmd.Assignee,
		cmd.Memo,
		cmd.PhotoURL,
	)
	if err != nil {
		uc.logger.Warnw("invalid create task command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	rowNumber, err := uc.taskRepo.Append(ctx, newTask)
	if err != nil {
		uc.logger.Errorw("failed to append task", "error", err)
		return nil, err
	}

	uc.logger.Infow("task created", "row_number", rowNumber, "title", newTask.Title())

	uc.notifyAsync(ctx, fmt.Sprintf("New task registered\nTitle: %s\nAssignee: %s",
		newTask.Title(), newTask.Assignee()))

	return &CreateTaskResult{
		RowNumber:  rowNumber,
		Title:      newTask.Title(),
		Status:     newTask.Status().String(),
		OccurredOn: vo.FormatDateCell(newTask.OccurredOn()),
		StartedAt:  newTask.StartedAt().String(),
	}, nil
}

func (uc *CreateTaskUseCase) notifyAsync(ctx context.Context, text string) {
	notifyCtx := context.WithoutCancel(ctx)
	goroutine.SafeGo(uc.logger, "create-task-notify", func() {
		if err := uc.notifier.Notify(notifyCtx, text); err != nil {
			uc.logger.Warnw("chat notification failed", "error", err)
		}
	})
}

// resolveStatus defaults an omitted status to received; anything present
// must be a member of the fixed set.
func resolveStatus(s string) (vo.Status, error) {
	if s == "" {
		return vo.StatusReceived, nil
	}
	status, err := vo.NewStatus(s)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	return status, nil
}

// combineDateTime merges a date cell and an HH:MM clock string, filling
// either side from now when absent or malformed.
func combineDateTime(dateRaw, timeRaw string, now time.Time) time.Time {
	d := vo.ParseDateCell(dateRaw, now)

	hour, minute := now.Hour(), now.Minute()
	if t, err := time.Parse("15:04", timeRaw); err == nil {
		hour, minute = t.Hour(), t.Minute()
	}

	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, biztime.Location())
}
