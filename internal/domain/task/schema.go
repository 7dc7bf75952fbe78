package task

// The worksheet layout is positional: writes must emit exactly this many
// cells in exactly this order, or unrelated columns get corrupted. Both
// the encode and decode paths consume this schema; nothing else may
// hard-code a column position.
//
// Header occupies row 1, data starts at row 2.

const (
	ColOccurredOn = iota
	ColCategory
	ColStatus
	ColTitle
	ColDescription
	ColCause
	ColActionTaken
	ColLocation
	ColDepartment
	ColRequester
	ColAssignee
	ColStartedAt
	ColCompletedAt
	ColMemo
	ColPhotoURL

	ColumnCount
)

// HeaderRowNumber is the 1-based row holding the column headers.
const HeaderRowNumber = 1

// FirstDataRowNumber is the 1-based row of the first record.
const FirstDataRowNumber = 2

// ColumnKeys are the header names, in column order.
var ColumnKeys = [ColumnCount]string{
	ColOccurredOn:  "occurred_on",
	ColCategory:    "category",
	ColStatus:      "status",
	ColTitle:       "title",
	ColDescription: "description",
	ColCause:       "cause",
	ColActionTaken: "action_taken",
	ColLocation:    "location",
	ColDepartment:  "department",
	ColRequester:   "requester",
	ColAssignee:    "assignee",
	ColStartedAt:   "started_at",
	ColCompletedAt: "completed_at",
	ColMemo:        "memo",
	ColPhotoURL:    "photo_url",
}
