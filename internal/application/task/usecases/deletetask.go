package usecases

import (
	"context"
	"fmt"

	"taskdesk/internal/domain/task"
	"taskdesk/internal/shared/errors"
	"taskdesk/internal/shared/logger"
)

type DeleteTaskCommand struct {
	RowNumber int
}

type DeleteTaskResult struct {
	RowNumber int
}

type DeleteTaskUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewDeleteTaskUseCase(
	taskRepo task.Repository,
	logger logger.Interface,
) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Execute removes the row. Every row below it shifts up by one, so any
// row numbers the client is holding are stale after this returns; the
// UI re-lists before offering further edits.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error) {
	uc.logger.Infow("executing delete task use case", "row_number", cmd.RowNumber)

	if cmd.RowNumber < task.FirstDataRowNumber {
		return nil, errors.NewValidationError(fmt.Sprintf("row number %d is not a data row", cmd.RowNumber))
	}

	if err := uc.taskRepo.Delete(ctx, cmd.RowNumber); err != nil {
		uc.logger.Errorw("failed to delete task row", "row_number", cmd.RowNumber, "error", err)
		return nil, err
	}

	uc.logger.Infow("task deleted", "row_number", cmd.RowNumber)

	return &DeleteTaskResult{RowNumber: cmd.RowNumber}, nil
}
