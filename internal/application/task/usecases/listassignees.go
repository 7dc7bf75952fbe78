package usecases

import (
	"context"

	"taskdesk/internal/domain/task"
	"taskdesk/internal/shared/logger"
)

type ListAssigneesResult struct {
	Assignees []string
}

type ListAssigneesUseCase struct {
	rosterRepo task.RosterRepository
	logger     logger.Interface
}

func NewListAssigneesUseCase(
	rosterRepo task.RosterRepository,
	logger logger.Interface,
) *ListAssigneesUseCase {
	return &ListAssigneesUseCase{
		rosterRepo: rosterRepo,
		logger:     logger,
	}
}

// Execute reads the staff roster. An unreachable or empty roster
// degrades to the sentinel assignee instead of failing: the entry form
// must stay usable even when the roster sheet is broken.
func (uc *ListAssigneesUseCase) Execute(ctx context.Context) (*ListAssigneesResult, error) {
	assignees, err := uc.rosterRepo.ListAssignees(ctx)
	if err != nil {
		uc.logger.Warnw("roster unreachable, falling back to sentinel assignee", "error", err)
		return &ListAssigneesResult{Assignees: []string{task.UnknownAssignee}}, nil
	}

	if len(assignees) == 0 {
		return &ListAssigneesResult{Assignees: []string{task.UnknownAssignee}}, nil
	}

	return &ListAssigneesResult{Assignees: assignees}, nil
}
