package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/anandhx/Task-Management-System/internal/core/domain"
)

var ErrInvalidTaskID = errors.New("invalid task id")

// SortChoices maps the sort sub-menu entries to sort keys.
var SortChoices = map[string]domain.SortKey{
	"1": domain.SortDeadline,
	"2": domain.SortStatus,
	"3": domain.SortPriority,
}

func ParseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidTaskID
	}
	return id, nil
}

func BuildNewTaskInput(description, deadline, priority string) domain.NewTaskInput {
	return domain.NewTaskInput{
		Description: strings.TrimSpace(description),
		Deadline:    strings.TrimSpace(deadline),
		Priority:    strings.ToLower(strings.TrimSpace(priority)),
	}
}

// BuildTaskUpdateInput treats a blank answer as "keep the current value".
func BuildTaskUpdateInput(description, status, priority string) domain.TaskUpdateInput {
	return domain.TaskUpdateInput{
		Description: optional(description),
		Status:      optional(strings.ToLower(status)),
		Priority:    optional(strings.ToLower(priority)),
	}
}

// PriorityDefaulted reports whether a non-blank priority answer will be replaced by medium.
func PriorityDefaulted(priority string) bool {
	if strings.TrimSpace(priority) == "" {
		return false
	}
	_, ok := domain.ParsePriority(priority)
	return !ok
}

func ParseSortChoice(raw string) (domain.SortKey, bool) {
	key, ok := SortChoices[strings.TrimSpace(raw)]
	return key, ok
}

func optional(raw string) *string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	return &value
}
