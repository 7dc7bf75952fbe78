package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/api/sheets/v4"

	"taskdesk/internal/domain/task"
	"taskdesk/internal/shared/biztime"
	"taskdesk/internal/shared/errors"
	"taskdesk/internal/shared/logger"
)

// TaskRepository persists tasks as positional rows on one sheet of a
// spreadsheet. Row number is the only address a task has; it is derived
// from read position and goes stale across deletes, which is why every
// overwrite re-validates identity against the live row first.
type TaskRepository struct {
	service       *sheets.Service
	spreadsheetID string
	sheetTitle    string
	mapper        TaskMapper
	logger        logger.Interface

	mu       sync.Mutex
	sheetID  int64
	resolved bool
}

func NewTaskRepository(
	service *sheets.Service,
	spreadsheetID string,
	sheetTitle string,
	clock biztime.Clock,
	logger logger.Interface,
) *TaskRepository {
	return &TaskRepository{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetTitle:    sheetTitle,
		mapper:        NewTaskMapper(clock),
		logger:        logger,
	}
}

var _ task.Repository = (*TaskRepository)(nil)

// lastColumn is the letter of the schema's final column.
var lastColumn = string(rune('A' + task.ColumnCount - 1))

func (r *TaskRepository) dataRange() string {
	return fmt.Sprintf("%s!A%d:%s", r.sheetTitle, task.FirstDataRowNumber, lastColumn)
}

func (r *TaskRepository) rowRange(rowNumber int) string {
	return fmt.Sprintf("%s!A%d:%s%d", r.sheetTitle, rowNumber, lastColumn, rowNumber)
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]*task.Task, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, r.dataRange()).
		Context(ctx).Do()
	if err != nil {
		return nil, errors.NewStoreError("failed to read task rows", err)
	}

	tasks := make([]*task.Task, 0, len(resp.Values))
	for i, row := range resp.Values {
		rowNumber := task.FirstDataRowNumber + i
		t, err := r.mapper.ToDomain(rowNumber, row)
		if err != nil {
			r.logger.Warnw("skipping undecodable row", "row_number", rowNumber, "error", err)
			continue
		}
		if t == nil {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *TaskRepository) Append(ctx context.Context, t *task.Task) (int, error) {
	body := &sheets.ValueRange{Values: [][]interface{}{r.mapper.ToRow(t)}}

	resp, err := r.service.Spreadsheets.Values.Append(r.spreadsheetID, r.dataRange(), body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return 0, errors.NewStoreError("failed to append task row", err)
	}
	if resp.Updates == nil {
		return 0, errors.NewStoreError("append response carried no update info", nil)
	}

	rowNumber, err := rowNumberFromRange(resp.Updates.UpdatedRange)
	if err != nil {
		return 0, errors.NewStoreError("failed to locate appended row", err)
	}
	return rowNumber, nil
}

// Overwrite replaces the row at rowNumber after confirming it still
// holds the task the caller thinks it does. Row numbers shift when an
// earlier row is deleted, so a stale editor would otherwise overwrite
// somebody else's task in place.
func (r *TaskRepository) Overwrite(ctx context.Context, rowNumber int, t *task.Task, expectedTitle string) error {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, r.rowRange(rowNumber)).
		Context(ctx).Do()
	if err != nil {
		return errors.NewStoreError("failed to read back task row", err)
	}

	var currentTitle string
	if len(resp.Values) > 0 && len(resp.Values[0]) > task.ColTitle {
		currentTitle = strings.TrimSpace(cellString(resp.Values[0][task.ColTitle]))
	}
	if currentTitle == "" {
		return errors.NewNotFoundError(fmt.Sprintf("no task at row %d", rowNumber))
	}
	if currentTitle != expectedTitle {
		return errors.NewConflictError(fmt.Sprintf(
			"row %d now holds %q, not %q; reload and retry", rowNumber, currentTitle, expectedTitle))
	}

	body := &sheets.ValueRange{Values: [][]interface{}{r.mapper.ToRow(t)}}
	_, err = r.service.Spreadsheets.Values.Update(r.spreadsheetID, r.rowRange(rowNumber), body).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return errors.NewStoreError("failed to overwrite task row", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, rowNumber int) error {
	sheetID, err := r.resolveSheetID(ctx)
	if err != nil {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNumber - 1),
					EndIndex:   int64(rowNumber),
				},
			},
		}},
	}
	_, err = r.service.Spreadsheets.BatchUpdate(r.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return errors.NewStoreError("failed to delete task row", err)
	}
	return nil
}

// resolveSheetID looks up the numeric sheet id behind the configured
// tab title. Structural requests address sheets by id, not title; the
// id is stable so one lookup is enough for the process lifetime.
func (r *TaskRepository) resolveSheetID(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved {
		return r.sheetID, nil
	}

	meta, err := r.service.Spreadsheets.Get(r.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).Do()
	if err != nil {
		return 0, errors.NewStoreError("failed to read spreadsheet metadata", err)
	}
	for _, s := range meta.Sheets {
		if s.Properties != nil && s.Properties.Title == r.sheetTitle {
			r.sheetID = s.Properties.SheetId
			r.resolved = true
			return r.sheetID, nil
		}
	}
	return 0, errors.NewStoreError(fmt.Sprintf("sheet %q not found in spreadsheet", r.sheetTitle), nil)
}

// rowNumberFromRange extracts the row from an A1-notation range such as
// "tasks!A7:O7".
func rowNumberFromRange(a1 string) (int, error) {
	if i := strings.LastIndex(a1, "!"); i >= 0 {
		a1 = a1[i+1:]
	}
	if i := strings.Index(a1, ":"); i >= 0 {
		a1 = a1[:i]
	}
	digits := strings.TrimLeft(a1, "ABCDEFGHIJKLMNOPQRSTUVWXYZ$")
	rowNumber, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("unparseable range %q: %w", a1, err)
	}
	return rowNumber, nil
}
