package domain

import (
	"strings"
	"time"
)

// DeadlineLayout is the only date format accepted or produced for deadlines (DD-MM-YYYY).
const DeadlineLayout = "02-01-2006"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// SortKey is the closed set of orderings a task listing supports.
type SortKey int

const (
	SortNone SortKey = iota
	SortDeadline
	SortStatus
	SortPriority
)

type Task struct {
	ID          int64
	Description string
	Deadline    *string
	Status      TaskStatus
	Priority    TaskPriority
}

// NewTaskInput carries raw user values for a task to be created.
type NewTaskInput struct {
	Description string
	Deadline    string
	Priority    string
}

// CreateTaskInput is a validated NewTaskInput, ready to be persisted.
type CreateTaskInput struct {
	Description string
	Deadline    *string
	Status      TaskStatus
	Priority    TaskPriority
}

// TaskUpdateInput carries raw user values for a partial update. A nil field is not supplied.
type TaskUpdateInput struct {
	Description *string
	Status      *string
	Priority    *string
}

// TaskPatch holds the fields of a TaskUpdateInput that survived validation.
type TaskPatch struct {
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
}

func (p TaskPatch) IsEmpty() bool {
	return p.Description == nil && p.Status == nil && p.Priority == nil
}

func ParseStatus(value string) (TaskStatus, bool) {
	switch status := TaskStatus(strings.ToLower(strings.TrimSpace(value))); status {
	case TaskStatusPending, TaskStatusCompleted:
		return status, true
	default:
		return "", false
	}
}

func ParsePriority(value string) (TaskPriority, bool) {
	switch priority := TaskPriority(strings.ToLower(strings.TrimSpace(value))); priority {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return priority, true
	default:
		return "", false
	}
}

// ParseSortKey maps a column name to its SortKey. Unknown names yield SortNone.
func ParseSortKey(value string) SortKey {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "deadline":
		return SortDeadline
	case "status":
		return SortStatus
	case "priority":
		return SortPriority
	default:
		return SortNone
	}
}

func (k SortKey) String() string {
	switch k {
	case SortDeadline:
		return "deadline"
	case SortStatus:
		return "status"
	case SortPriority:
		return "priority"
	default:
		return "none"
	}
}

// ParseDeadline parses a DD-MM-YYYY date at midnight in loc.
func ParseDeadline(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DeadlineLayout, value, loc)
}

// DeadlineIn returns the task deadline as a time in loc. ok is false when the
// task has no deadline or the stored value does not parse.
func (t Task) DeadlineIn(loc *time.Location) (time.Time, bool) {
	if t.Deadline == nil {
		return time.Time{}, false
	}
	deadline, err := ParseDeadline(*t.Deadline, loc)
	if err != nil {
		return time.Time{}, false
	}
	return deadline, true
}
