package dto

import (
	"time"

	"taskdesk/internal/domain/task"
	vo "taskdesk/internal/domain/task/valueobjects"
)

// Widget defaults mirror the office's working day: a blank start cell
// suggests 09:00, a blank completion cell suggests 17:00.
const (
	defaultStartHour      = 9
	defaultCompletionHour = 17
)

// FromTask converts a domain task to its wire form. now supplies the
// business-timezone reference date for the blank-cell display defaults.
func FromTask(t *task.Task, now time.Time) TaskDTO {
	fields := t.Fields()

	return TaskDTO{
		RowNumber:   t.RowNumber(),
		OccurredOn:  fields[task.ColOccurredOn],
		Category:    fields[task.ColCategory],
		Status:      fields[task.ColStatus],
		Title:       fields[task.ColTitle],
		Description: fields[task.ColDescription],
		Cause:       fields[task.ColCause],
		ActionTaken: fields[task.ColActionTaken],
		Location:    fields[task.ColLocation],
		Department:  fields[task.ColDepartment],
		Requester:   fields[task.ColRequester],
		Assignee:    fields[task.ColAssignee],
		StartedAt:   fields[task.ColStartedAt],
		CompletedAt: fields[task.ColCompletedAt],
		Memo:        fields[task.ColMemo],
		PhotoURL:    fields[task.ColPhotoURL],

		StartMode:      t.StartedAt().Mode().String(),
		CompletionMode: t.CompletedAt().Mode().String(),

		StartDefault:      widgetDefault(t.StartedAt(), now, defaultStartHour),
		CompletionDefault: widgetDefault(t.CompletedAt(), now, defaultCompletionHour),
	}
}

// FromTasks converts a task list, preserving order.
func FromTasks(tasks []*task.Task, now time.Time) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t, now))
	}
	return out
}

func widgetDefault(cell vo.DateTimeCell, now time.Time, fallbackHour int) string {
	if v, ok := cell.Value(); ok {
		if cell.Mode() == vo.ModeDateOnly {
			// Date-only cells show the date with the conventional hour so
			// switching the widget to full mode starts from something sane.
			v = time.Date(v.Year(), v.Month(), v.Day(), fallbackHour, 0, 0, 0, v.Location())
		}
		return vo.FormatDateTimeCell(v, vo.ModeFull)
	}

	d := time.Date(now.Year(), now.Month(), now.Day(), fallbackHour, 0, 0, 0, now.Location())
	return vo.FormatDateTimeCell(d, vo.ModeFull)
}
