package dto

// TaskRow is a task with every column already formatted as text.
type TaskRow struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}
