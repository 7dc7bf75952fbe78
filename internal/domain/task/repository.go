package task

import "context"

// Repository is the backing table of tasks, addressed by 1-based row
// number with the header in row 1. Row numbers are positional and shift
// when earlier rows are deleted, so callers must take them from a
// ListAll performed in the same interaction as the write.
type Repository interface {
	// ListAll reads every data row in store order (top to bottom, oldest
	// first) with row numbers assigned from the read.
	ListAll(ctx context.Context) ([]*Task, error)

	// Append adds t as a new row at the table's tail and returns the row
	// number it landed on.
	Append(ctx context.Context, t *Task) (int, error)

	// Overwrite replaces the whole row at rowNumber with t. Before
	// writing, the implementation re-reads the row and compares its
	// title against expectedTitle; a mismatch means the row shifted
	// under the caller (concurrent delete) and the write is refused
	// with a conflict error.
	Overwrite(ctx context.Context, rowNumber int, t *Task, expectedTitle string) error

	// Delete removes the row at rowNumber. Every row number computed
	// before this call is stale afterwards.
	Delete(ctx context.Context, rowNumber int) error
}

// RosterRepository supplies the externally maintained list of assignee
// names.
type RosterRepository interface {
	ListAssignees(ctx context.Context) ([]string, error)
}
