package valueobjects

import "fmt"

// Status is the task's progress state. The nominal flow is
// received -> in_progress -> on_hold -> done, but the store does not
// enforce transition order: staff may set any valid status directly.
// Done tasks stay editable; they are only dropped from open-task views.
type Status string

const (
	StatusReceived   Status = "received"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusDone       Status = "done"
)

var validStatuses = map[Status]bool{
	StatusReceived:   true,
	StatusInProgress: true,
	StatusOnHold:     true,
	StatusDone:       true,
}

// AllStatuses lists the valid statuses in their nominal order.
func AllStatuses() []Status {
	return []Status{StatusReceived, StatusInProgress, StatusOnHold, StatusDone}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsDone reports whether the task is out of the open-task views.
func (s Status) IsDone() bool {
	return s == StatusDone
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}
