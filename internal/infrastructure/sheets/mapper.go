package sheets

import (
	"fmt"
	"strings"

	"taskdesk/internal/domain/task"
	vo "taskdesk/internal/domain/task/valueobjects"
	"taskdesk/internal/shared/biztime"
)

// TaskMapper converts between domain tasks and positional sheet rows.
// The schema column order is the contract on both sides; every read and
// write goes through here so a row can never land with a column missing
// or misplaced.
type TaskMapper struct {
	clock biztime.Clock
}

func NewTaskMapper(clock biztime.Clock) TaskMapper {
	return TaskMapper{clock: clock}
}

// ToRow encodes a full row in schema order.
func (m TaskMapper) ToRow(t *task.Task) []interface{} {
	fields := t.Fields()
	row := make([]interface{}, task.ColumnCount)
	for i, f := range fields {
		row[i] = f
	}
	return row
}

// ToDomain decodes one stored row. The API trims trailing empty cells,
// so short rows are padded back out to the schema width. A row whose
// title cell is empty decodes to (nil, nil): people leave padding rows
// behind when they hand-edit the sheet, and those are not tasks.
func (m TaskMapper) ToDomain(rowNumber int, row []interface{}) (*task.Task, error) {
	cells := make([]string, task.ColumnCount)
	for i := range cells {
		if i < len(row) {
			cells[i] = cellString(row[i])
		}
	}

	if strings.TrimSpace(cells[task.ColTitle]) == "" {
		return nil, nil
	}

	status, err := vo.NewStatus(cells[task.ColStatus])
	if err != nil {
		// Hand-edited rows with an unrecognized status still have to show
		// up on the dashboard.
		status = vo.StatusReceived
	}

	return task.ReconstructTask(
		rowNumber,
		cells[task.ColTitle],
		vo.NewCategory(cells[task.ColCategory]),
		status,
		vo.ParseDateCell(cells[task.ColOccurredOn], m.clock.Now()),
		vo.ParseDateTimeCellString(cells[task.ColStartedAt]),
		vo.ParseDateTimeCellString(cells[task.ColCompletedAt]),
		cells[task.ColDescription],
		cells[task.ColCause],
		cells[task.ColActionTaken],
		cells[task.ColLocation],
		cells[task.ColDepartment],
		cells[task.ColRequester],
		cells[task.ColAssignee],
		cells[task.ColMemo],
		cells[task.ColPhotoURL],
	)
}

func cellString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}
