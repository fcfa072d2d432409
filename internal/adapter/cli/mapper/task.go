package mapper

import (
	"strconv"

	"github.com/anandhx/Task-Management-System/internal/adapter/cli/dto"
	"github.com/anandhx/Task-Management-System/internal/core/domain"
)

func ToTaskRows(tasks []domain.Task, missingDeadline string) []dto.TaskRow {
	rows := make([]dto.TaskRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, ToTaskRow(task, missingDeadline))
	}
	return rows
}

func ToTaskRow(task domain.Task, missingDeadline string) dto.TaskRow {
	row := dto.TaskRow{
		ID:          strconv.FormatInt(task.ID, 10),
		Description: task.Description,
		Deadline:    missingDeadline,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
	}

	if task.Deadline != nil {
		row.Deadline = *task.Deadline
	}

	return row
}
