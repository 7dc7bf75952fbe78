package usecases

import (
	"context"
	"fmt"

	"taskdesk/internal/domain/task"
	"taskdesk/internal/shared/errors"
	"taskdesk/internal/shared/logger"
)

type mockTaskRepository struct {
	ListAllFunc   func(ctx context.Context) ([]*task.Task, error)
	AppendFunc    func(ctx context.Context, t *task.Task) (int, error)
	OverwriteFunc func(ctx context.Context, rowNumber int, t *task.Task, expectedTitle string) error
	DeleteFunc    func(ctx context.Context, rowNumber int) error

	appendCalls    int
	overwriteCalls int
	deleteCalls    int
}

func (m *mockTaskRepository) ListAll(ctx context.Context) ([]*task.Task, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTaskRepository) Append(ctx context.Context, t *task.Task) (int, error) {
	m.appendCalls++
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, t)
	}
	return task.FirstDataRowNumber, nil
}

func (m *mockTaskRepository) Overwrite(ctx context.Context, rowNumber int, t *task.Task, expectedTitle string) error {
	m.overwriteCalls++
	if m.OverwriteFunc != nil {
		return m.OverwriteFunc(ctx, rowNumber, t, expectedTitle)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, rowNumber int) error {
	m.deleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, rowNumber)
	}
	return nil
}

func (m *mockTaskRepository) writes() int {
	return m.appendCalls + m.overwriteCalls + m.deleteCalls
}

type mockRosterRepository struct {
	ListAssigneesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockRosterRepository) ListAssignees(ctx context.Context) ([]string, error) {
	if m.ListAssigneesFunc != nil {
		return m.ListAssigneesFunc(ctx)
	}
	return nil, nil
}

type mockNotifier struct {
	NotifyFunc func(ctx context.Context, text string) error

	calls chan string
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{calls: make(chan string, 8)}
}

func (m *mockNotifier) Notify(ctx context.Context, text string) error {
	if m.calls != nil {
		m.calls <- text
	}
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, text)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// fakeSheetRepo mimics the positional semantics of the real worksheet:
// rows live in insertion order, row numbers are assigned on read
// (header in row 1, data from row 2), and deleting a row shifts every
// later row up by one.
type fakeSheetRepo struct {
	rows []*task.Task
}

func (f *fakeSheetRepo) ListAll(ctx context.Context) ([]*task.Task, error) {
	out := make([]*task.Task, 0, len(f.rows))
	for i, r := range f.rows {
		renumbered, err := cloneAtRow(i+task.FirstDataRowNumber, r)
		if err != nil {
			return nil, err
		}
		out = append(out, renumbered)
	}
	return out, nil
}

func (f *fakeSheetRepo) Append(ctx context.Context, t *task.Task) (int, error) {
	f.rows = append(f.rows, t)
	return len(f.rows) + task.FirstDataRowNumber - 1, nil
}

func (f *fakeSheetRepo) Overwrite(ctx context.Context, rowNumber int, t *task.Task, expectedTitle string) error {
	idx := rowNumber - task.FirstDataRowNumber
	if idx < 0 || idx >= len(f.rows) {
		return errors.NewNotFoundError(fmt.Sprintf("row %d not found", rowNumber))
	}
	if expectedTitle != "" && f.rows[idx].Title() != expectedTitle {
		return errors.NewConflictError("row identity changed since it was read")
	}
	f.rows[idx] = t
	return nil
}

func (f *fakeSheetRepo) Delete(ctx context.Context, rowNumber int) error {
	idx := rowNumber - task.FirstDataRowNumber
	if idx < 0 || idx >= len(f.rows) {
		return errors.NewNotFoundError(fmt.Sprintf("row %d not found", rowNumber))
	}
	f.rows = append(f.rows[:idx], f.rows[idx+1:]...)
	return nil
}

func cloneAtRow(rowNumber int, src *task.Task) (*task.Task, error) {
	return task.ReconstructTask(
		rowNumber,
		src.Title(),
		src.Category(),
		src.Status(),
		src.OccurredOn(),
		src.StartedAt(),
		src.CompletedAt(),
		src.Description(),
		src.Cause(),
		src.ActionTaken(),
		src.Location(),
		src.Department(),
		src.Requester(),
		src.Assignee(),
		src.Memo(),
		src.PhotoURL(),
	)
}
