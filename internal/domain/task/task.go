package task

import (
	"fmt"
	"strings"
	"time"

	vo "taskdesk/internal/domain/task/valueobjects"
)

// UnknownAssignee is the sentinel used when the staff roster cannot be
// read.
const UnknownAssignee = "unknown"

// Task is one row of the tracker. The title is the only required field;
// everything else is free text or a three-way datetime cell. A task read
// back from the store carries its 1-based row number, which addresses
// writes and deletes but is never persisted as data (it goes stale as
// soon as any earlier row is deleted).
type Task struct {
	rowNumber   int
	occurredOn  time.Time
	category    vo.Category
	status      vo.Status
	title       string
	description string
	cause       string
	actionTaken string
	location    string
	department  string
	requester   string
	assignee    string
	startedAt   vo.DateTimeCell
	completedAt vo.DateTimeCell
	memo        string
	photoURL    string
}

// NewTask builds a task for creation. The completion cell always starts
// blank; it is only ever set through a later edit.
func NewTask(
	title string,
	category vo.Category,
	status vo.Status,
	occurredOn time.Time,
	startedAt vo.DateTimeCell,
	description string,
	cause string,
	actionTaken string,
	location string,
	department string,
	requester string,
	assignee string,
	memo string,
	photoURL string,
) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Task{
		occurredOn:  occurredOn,
		category:    category,
		status:      status,
		title:       title,
		description: description,
		cause:       cause,
		actionTaken: actionTaken,
		location:    location,
		department:  department,
		requester:   requester,
		assignee:    assignee,
		startedAt:   startedAt,
		completedAt: vo.BlankDateTimeCell(),
		memo:        memo,
		photoURL:    photoURL,
	}, nil
}

// ReconstructTask rebuilds a task addressed at rowNumber, either decoded
// from a stored row or assembled as the full-row replacement for an edit.
func ReconstructTask(
	rowNumber int,
	title string,
	category vo.Category,
	status vo.Status,
	occurredOn time.Time,
	startedAt vo.DateTimeCell,
	completedAt vo.DateTimeCell,
	description string,
	cause string,
	actionTaken string,
	location string,
	department string,
	requester string,
	assignee string,
	memo string,
	photoURL string,
) (*Task, error) {
	if rowNumber < FirstDataRowNumber {
		return nil, fmt.Errorf("row number %d precedes the first data row", rowNumber)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Task{
		rowNumber:   rowNumber,
		occurredOn:  occurredOn,
		category:    category,
		status:      status,
		title:       title,
		description: description,
		cause:       cause,
		actionTaken: actionTaken,
		location:    location,
		department:  department,
		requester:   requester,
		assignee:    assignee,
		startedAt:   startedAt,
		completedAt: completedAt,
		memo:        memo,
		photoURL:    photoURL,
	}, nil
}

func (t *Task) RowNumber() int {
	return t.rowNumber
}

func (t *Task) OccurredOn() time.Time {
	return t.occurredOn
}

func (t *Task) Category() vo.Category {
	return t.category
}

func (t *Task) Status() vo.Status {
	return t.status
}

func (t *Task) Title() string {
	return t.title
}

func (t *Task) Description() string {
	return t.description
}

func (t *Task) Cause() string {
	return t.cause
}

func (t *Task) ActionTaken() string {
	return t.actionTaken
}

func (t *Task) Location() string {
	return t.location
}

func (t *Task) Department() string {
	return t.department
}

func (t *Task) Requester() string {
	return t.requester
}

func (t *Task) Assignee() string {
	return t.assignee
}

func (t *Task) StartedAt() vo.DateTimeCell {
	return t.startedAt
}

func (t *Task) CompletedAt() vo.DateTimeCell {
	return t.completedAt
}

func (t *Task) Memo() string {
	return t.memo
}

func (t *Task) PhotoURL() string {
	return t.photoURL
}

// IsOpen reports whether the task belongs in open-task views.
func (t *Task) IsOpen() bool {
	return !t.status.IsDone()
}

// Fields returns every field's stored string form in schema column
// order. This is both the row the store persists and the haystack the
// free-text search matches against.
func (t *Task) Fields() [ColumnCount]string {
	return [ColumnCount]string{
		ColOccurredOn:  vo.FormatDateCell(t.occurredOn),
		ColCategory:    t.category.String(),
		ColStatus:      t.status.String(),
		ColTitle:       t.title,
		ColDescription: t.description,
		ColCause:       t.cause,
		ColActionTaken: t.actionTaken,
		ColLocation:    t.location,
		ColDepartment:  t.department,
		ColRequester:   t.requester,
		ColAssignee:    t.assignee,
		ColStartedAt:   t.startedAt.String(),
		ColCompletedAt: t.completedAt.String(),
		ColMemo:        t.memo,
		ColPhotoURL:    t.photoURL,
	}
}
