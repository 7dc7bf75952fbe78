package usecases

import (
	"context"
	"fmt"

	taskdto "taskdesk/internal/application/task/dto"
	"taskdesk/internal/domain/task"
	"taskdesk/internal/shared/biztime"
	"taskdesk/internal/shared/errors"
	"taskdesk/internal/shared/logger"
)

// View selects which slice of the table the dashboard shows.
const (
	ViewAll   = "all"
	ViewOpen  = "open"
	ViewToday = "today"
)

// ListTasksQuery reads the table. Keyword is a case-sensitive substring
// over every stringified field; empty matches everything. View "open"
// drops done tasks and sorts newest occurrence first; "today" drops done
// tasks, keeps only today's occurrences, and stays in store order.
type ListTasksQuery struct {
	Keyword string
	View    string
}

type ListTasksResult struct {
	Tasks []taskdto.TaskDTO
	Total int
}

type ListTasksUseCase struct {
	taskRepo task.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewListTasksUseCase(
	taskRepo task.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error) {
	view := query.View
	if view == "" {
		view = ViewAll
	}

	tasks, err := uc.taskRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err)
		return nil, err
	}

	tasks = task.Filter(tasks, query.Keyword)

	now := uc.clock.Now()
	switch view {
	case ViewAll:
	case ViewOpen:
		tasks = task.SortByOccurredOnDesc(task.OpenTasks(tasks))
	case ViewToday:
		tasks = task.TodayTasks(tasks, now)
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown view: %s", view))
	}

	return &ListTasksResult{
		Tasks: taskdto.FromTasks(tasks, now),
		Total: len(tasks),
	}, nil
}
