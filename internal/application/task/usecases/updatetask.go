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

// UpdateTaskCommand re-encodes the whole row at RowNumber; there are no
// column deltas. RowNumber and ExpectedTitle must both come from a list
// read in the same interaction: the store re-validates the title before
// overwriting so an edit aimed at a row that shifted under a concurrent
// delete is refused instead of clobbering a stranger's record.
type UpdateTaskCommand struct {
	RowNumber     int
	ExpectedTitle string

	Title       string
	Category    string
	Status      string
	OccurredOn  string
	Description string
	Cause       string
	ActionTaken string
	Location    string
	Department  string
	Requester   string
	Assignee    string
	Memo        string
	PhotoURL    string

	// Per-field datetime encodings, chosen explicitly by the editor for
	// this save. They are never inferred from the date/time content.
	StartMode      string
	StartDate      string
	StartTime      string
	CompletionMode string
	CompletionDate string
	CompletionTime string

	Notify bool
}

type UpdateTaskResult struct {
	RowNumber   int
	Title       string
	Status      string
	StartedAt   string
	CompletedAt string
}

type UpdateTaskUseCase struct {
	taskRepo task.Repository
	notifier Notifier
	clock    biztime.Clock
	logger   logger.Interface
}

func NewUpdateTaskUseCase(
	taskRepo task.Repository,
	notifier Notifier,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error) {
	uc.logger.Infow("executing update task use case", "row_number", cmd.RowNumber, "title", cmd.Title)

	if cmd.RowNumber < task.FirstDataRowNumber {
		return nil, errors.NewValidationError(fmt.Sprintf("row number %d is not a data row", cmd.RowNumber))
	}

	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	startMode, err := vo.NewCellMode(cmd.StartMode)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	completionMode, err := vo.NewCellMode(cmd.CompletionMode)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	now := uc.clock.Now()

	replacement, err := task.ReconstructTask(
		cmd.RowNumber,
		cmd.Title,
		vo.NewCategory(cmd.Category),
		status,
		vo.ParseDateCell(cmd.OccurredOn, now),
		buildCell(startMode, cmd.StartDate, cmd.StartTime, now),
		buildCell(completionMode, cmd.CompletionDate, cmd.CompletionTime, now),
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
		uc.logger.Warnw("invalid update task command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Overwrite(ctx, cmd.RowNumber, replacement, cmd.ExpectedTitle); err != nil {
		uc.logger.Errorw("failed to overwrite task row", "row_number", cmd.RowNumber, "error", err)
		return nil, err
	}

	uc.logger.Infow("task updated", "row_number", cmd.RowNumber, "title", replacement.Title())

	if cmd.Notify {
		notifyCtx := context.WithoutCancel(ctx)
		goroutine.SafeGo(uc.logger, "update-task-notify", func() {
			if err := uc.notifier.Notify(notifyCtx, fmt.Sprintf("Task updated: %s", replacement.Title())); err != nil {
				uc.logger.Warnw("chat notification failed", "error", err)
			}
		})
	}

	return &UpdateTaskResult{
		RowNumber:   cmd.RowNumber,
		Title:       replacement.Title(),
		Status:      replacement.Status().String(),
		StartedAt:   replacement.StartedAt().String(),
		CompletedAt: replacement.CompletedAt().String(),
	}, nil
}

// buildCell assembles a datetime cell from the editor's explicit mode
// plus the widget contents. Blank mode discards the widget contents
// entirely: a record meant to stay unset keeps its empty cell even
// though the widgets were showing display defaults.
func buildCell(mode vo.CellMode, dateRaw, timeRaw string, now time.Time) vo.DateTimeCell {
	switch mode {
	case vo.ModeFull:
		return vo.NewDateTimeCell(combineDateTime(dateRaw, timeRaw, now), vo.ModeFull)
	case vo.ModeDateOnly:
		return vo.NewDateTimeCell(vo.ParseDateCell(dateRaw, now), vo.ModeDateOnly)
	default:
		return vo.BlankDateTimeCell()
	}
}
