package task

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taskdesk/internal/application/task/usecases"
	"taskdesk/internal/shared/errors"
)

// CreateTaskRequest is the entry form. Title is the only required
// field. The start widgets are optional: an omitted date or time falls
// back to "now" when the command executes.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Category    string `json:"category" binding:"max=100"`
	Status      string `json:"status" binding:"omitempty,oneof=received in_progress on_hold done"`
	OccurredOn  string `json:"occurred_on" binding:"omitempty,datecell"`
	StartDate   string `json:"start_date" binding:"omitempty,datecell"`
	StartTime   string `json:"start_time" binding:"omitempty,clocktime"`
	Description string `json:"description" binding:"max=5000"`
	Cause       string `json:"cause" binding:"max=5000"`
	ActionTaken string `json:"action_taken" binding:"max=5000"`
	Location    string `json:"location" binding:"max=200"`
	Department  string `json:"department" binding:"max=200"`
	Requester   string `json:"requester" binding:"max=200"`
	Assignee    string `json:"assignee" binding:"max=200"`
	Memo        string `json:"memo" binding:"max=5000"`
	PhotoURL    string `json:"photo_url" binding:"omitempty,url,max=2000"`
}

func (r *CreateTaskRequest) ToCommand() usecases.CreateTaskCommand {
	return usecases.CreateTaskCommand{
		Title:       r.Title,
		Category:    r.Category,
		Status:      r.Status,
		OccurredOn:  r.OccurredOn,
		StartDate:   r.StartDate,
		StartTime:   r.StartTime,
		Description: r.Description,
		Cause:       r.Cause,
		ActionTaken: r.ActionTaken,
		Location:    r.Location,
		Department:  r.Department,
		Requester:   r.Requester,
		Assignee:    r.Assignee,
		Memo:        r.Memo,
		PhotoURL:    r.PhotoURL,
	}
}

// UpdateTaskRequest is the edit form. It re-encodes the whole row, and
// the editor's explicit per-field cell modes ride along with the widget
// contents. ExpectedTitle is the title the editor loaded; the store
// refuses the save if the row no longer holds it.
type UpdateTaskRequest struct {
	ExpectedTitle string `json:"expected_title" binding:"required"`

	Title       string `json:"title" binding:"required,max=200"`
	Category    string `json:"category" binding:"max=100"`
	Status      string `json:"status" binding:"required,oneof=received in_progress on_hold done"`
	OccurredOn  string `json:"occurred_on" binding:"omitempty,datecell"`
	Description string `json:"description" binding:"max=5000"`
	Cause       string `json:"cause" binding:"max=5000"`
	ActionTaken string `json:"action_taken" binding:"max=5000"`
	Location    string `json:"location" binding:"max=200"`
	Department  string `json:"department" binding:"max=200"`
	Requester   string `json:"requester" binding:"max=200"`
	Assignee    string `json:"assignee" binding:"max=200"`
	Memo        string `json:"memo" binding:"max=5000"`
	PhotoURL    string `json:"photo_url" binding:"omitempty,url,max=2000"`

	StartMode      string `json:"start_mode" binding:"required,oneof=full date_only blank"`
	StartDate      string `json:"start_date" binding:"omitempty,datecell"`
	StartTime      string `json:"start_time" binding:"omitempty,clocktime"`
	CompletionMode string `json:"completion_mode" binding:"required,oneof=full date_only blank"`
	CompletionDate string `json:"completion_date" binding:"omitempty,datecell"`
	CompletionTime string `json:"completion_time" binding:"omitempty,clocktime"`

	Notify bool `json:"notify"`
}

func (r *UpdateTaskRequest) ToCommand(rowNumber int) usecases.UpdateTaskCommand {
	return usecases.UpdateTaskCommand{
		RowNumber:     rowNumber,
		ExpectedTitle: r.ExpectedTitle,

		Title:       r.Title,
		Category:    r.Category,
		Status:      r.Status,
		OccurredOn:  r.OccurredOn,
		Description: r.Description,
		Cause:       r.Cause,
		ActionTaken: r.ActionTaken,
		Location:    r.Location,
		Department:  r.Department,
		Requester:   r.Requester,
		Assignee:    r.Assignee,
		Memo:        r.Memo,
		PhotoURL:    r.PhotoURL,

		StartMode:      r.StartMode,
		StartDate:      r.StartDate,
		StartTime:      r.StartTime,
		CompletionMode: r.CompletionMode,
		CompletionDate: r.CompletionDate,
		CompletionTime: r.CompletionTime,

		Notify: r.Notify,
	}
}

type ListTasksRequest struct {
	Keyword string
	View    string
}

func (r *ListTasksRequest) ToQuery() usecases.ListTasksQuery {
	return usecases.ListTasksQuery{
		Keyword: r.Keyword,
		View:    r.View,
	}
}

func parseListTasksRequest(c *gin.Context) *ListTasksRequest {
	return &ListTasksRequest{
		Keyword: c.Query("q"),
		View:    c.DefaultQuery("view", usecases.ViewAll),
	}
}

func parseRowNumber(c *gin.Context) (int, error) {
	rowNumber, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		return 0, errors.NewBadRequestError("row must be a number")
	}
	return rowNumber, nil
}
