package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/anandhx/Task-Management-System/internal/adapter/cli/dto"
	"github.com/anandhx/Task-Management-System/internal/adapter/cli/mapper"
	"github.com/anandhx/Task-Management-System/internal/core/domain"
)

// Column widths for ID, Description, Deadline, Status and Priority.
var ColumnWidths = [5]int{4, 30, 12, 10, 10}

const columnSeparator = " | "

// Labels are the localized header and placeholder texts.
type Labels struct {
	Headers      [5]string
	NotAvailable string
	NoTasks      string
}

var DefaultLabels = Labels{
	Headers:      [5]string{"ID", "Description", "Deadline", "Status", "Priority"},
	NotAvailable: "N/A",
	NoTasks:      "No tasks found.",
}

// Tasks writes tasks as a fixed-width table. Cells wider than their column
// are truncated with "...". An empty list prints only the no-tasks notice.
func Tasks(w io.Writer, style Style, labels Labels, tasks []domain.Task) {
	if len(tasks) == 0 {
		style.Println(w, KindError, labels.NoTasks)
		return
	}

	fmt.Fprintln(w)
	style.Println(w, KindHeader, formatRow(labels.Headers))
	style.Println(w, KindHeader, strings.Repeat("-", BorderWidth()))

	for _, row := range mapper.ToTaskRows(tasks, labels.NotAvailable) {
		style.Println(w, KindRow, formatRow(cells(row)))
	}
	fmt.Fprintln(w)
}

func BorderWidth() int {
	total := len(columnSeparator) * (len(ColumnWidths) - 1)
	for _, width := range ColumnWidths {
		total += width
	}
	return total
}

func cells(row dto.TaskRow) [5]string {
	return [5]string{row.ID, row.Description, row.Deadline, row.Status, row.Priority}
}

func formatRow(values [5]string) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = pad(Truncate(value, ColumnWidths[i]), ColumnWidths[i])
	}
	return strings.Join(parts, columnSeparator)
}

// Truncate shortens value to at most width runes, marking the cut with "...".
func Truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func pad(value string, width int) string {
	if n := len([]rune(value)); n < width {
		return value + strings.Repeat(" ", width-n)
	}
	return value
}
