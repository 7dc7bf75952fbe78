package task

import (
	"sort"
	"strings"
	"time"

	"taskdesk/internal/shared/biztime"
)

// Filter returns the tasks where any field's string form contains
// keyword as a substring, preserving input order. Matching is
// case-sensitive and an empty keyword matches everything. No
// tokenization, no ranking.
func Filter(tasks []*Task, keyword string) []*Task {
	if keyword == "" {
		return tasks
	}

	var matched []*Task
	for _, t := range tasks {
		for _, field := range t.Fields() {
			if strings.Contains(field, keyword) {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}

// OpenTasks returns the tasks whose status is not done, in input order.
func OpenTasks(tasks []*Task) []*Task {
	var open []*Task
	for _, t := range tasks {
		if t.IsOpen() {
			open = append(open, t)
		}
	}
	return open
}

// TodayTasks returns the open tasks whose occurrence date falls on
// today's business date, in store order.
func TodayTasks(tasks []*Task, today time.Time) []*Task {
	var out []*Task
	for _, t := range OpenTasks(tasks) {
		if biztime.SameDay(t.OccurredOn(), today) {
			out = append(out, t)
		}
	}
	return out
}

// SortByOccurredOnDesc returns a copy sorted newest occurrence first.
// The sort is stable so same-day tasks keep their store order.
func SortByOccurredOnDesc(tasks []*Task) []*Task {
	sorted := make([]*Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredOn().After(sorted[j].OccurredOn())
	})
	return sorted
}
