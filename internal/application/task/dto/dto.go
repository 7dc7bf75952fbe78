package dto

// TaskDTO is the wire form of one task row. The stored cell strings are
// carried verbatim; the Start/Completion mode and default fields exist
// so an edit form can pre-select the datetime widgets without the client
// re-deriving them from cell shapes.
type TaskDTO struct {
	RowNumber   int    `json:"row_number"`
	OccurredOn  string `json:"occurred_on"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cause       string `json:"cause"`
	ActionTaken string `json:"action_taken"`
	Location    string `json:"location"`
	Department  string `json:"department"`
	Requester   string `json:"requester"`
	Assignee    string `json:"assignee"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	Memo        string `json:"memo"`
	PhotoURL    string `json:"photo_url"`

	// Shape of the stored datetime cells, for mode widget pre-selection.
	StartMode      string `json:"start_mode"`
	CompletionMode string `json:"completion_mode"`

	// Display defaults for the edit form's datetime widgets. For a blank
	// cell these hold today/now-style values so the widgets have
	// something to show; they are presentation only and must never be
	// written back unless the editor changes the mode.
	StartDefault      string `json:"start_default"`
	CompletionDefault string `json:"completion_default"`
}
