package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/anandhx/Task-Management-System/internal/core/domain"
	"github.com/anandhx/Task-Management-System/internal/core/ports"
)

const createTasksTableQuery = `
CREATE TABLE IF NOT EXISTS tasks (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  description TEXT NOT NULL,
  deadline    TEXT,
  status      TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending', 'completed')),
  priority    TEXT NOT NULL DEFAULT 'medium' CHECK(priority IN ('high', 'medium', 'low'))
);
`

const selectTasks = `SELECT id, description, deadline, status, priority FROM tasks`

const (
	insertTaskQuery      = `INSERT INTO tasks (description, deadline, status, priority) VALUES (?, ?, ?, ?)`
	getTaskQuery         = selectTasks + ` WHERE id = ?`
	listByStatusQuery    = selectTasks + ` WHERE status = ? ORDER BY id`
	searchTasksQuery     = selectTasks + ` WHERE description LIKE ? ESCAPE '\' ORDER BY id`
	pendingDeadlineQuery = selectTasks + ` WHERE deadline IS NOT NULL AND status = 'pending' ORDER BY id`
	taskExistsQuery      = `SELECT COUNT(*) FROM tasks WHERE id = ?`
	deleteTaskQuery      = `DELETE FROM tasks WHERE id = ?`
)

// Deadlines are stored as DD-MM-YYYY, so chronological order needs YYYYMMDD. Missing deadlines go last.
var listTasksQueries = map[domain.SortKey]string{
	domain.SortNone:     selectTasks + ` ORDER BY id`,
	domain.SortDeadline: selectTasks + ` ORDER BY deadline IS NULL, substr(deadline, 7, 4) || substr(deadline, 4, 2) || substr(deadline, 1, 2), id`,
	domain.SortStatus:   selectTasks + ` ORDER BY status, id`,
	domain.SortPriority: selectTasks + ` ORDER BY priority, id`,
}

type TaskRepository struct {
	open Opener
}

type taskRow struct {
	ID          int64          `db:"id"`
	Description string         `db:"description"`
	Deadline    sql.NullString `db:"deadline"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(open Opener) *TaskRepository {
	return &TaskRepository{open: open}
}

func (r *TaskRepository) Initialize(ctx context.Context) error {
	return r.withDB("initialize schema", func(db *sqlx.DB) error {
		_, err := db.ExecContext(ctx, createTasksTableQuery)
		return err
	})
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (int64, error) {
	var id int64
	err := r.withDB("create task", func(db *sqlx.DB) error {
		var deadline sql.NullString
		if input.Deadline != nil {
			deadline = sql.NullString{String: *input.Deadline, Valid: true}
		}

		result, err := db.ExecContext(ctx, insertTaskQuery,
			input.Description,
			deadline,
			string(input.Status),
			string(input.Priority),
		)
		if err != nil {
			return err
		}

		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	var task domain.Task
	err := r.withDB("get task", func(db *sqlx.DB) error {
		var row taskRow
		if err := db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrTaskNotFound
			}
			return err
		}
		task = mapTaskRowToDomainTask(row)
		return nil
	})
	return task, err
}

func (r *TaskRepository) ListTasks(ctx context.Context, sortKey domain.SortKey) ([]domain.Task, error) {
	query, ok := listTasksQueries[sortKey]
	if !ok {
		query = listTasksQueries[domain.SortNone]
	}
	return r.selectTasks(ctx, "list tasks", query)
}

func (r *TaskRepository) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	return r.selectTasks(ctx, "list tasks by status", listByStatusQuery, string(status))
}

func (r *TaskRepository) SearchTasks(ctx context.Context, keyword string) ([]domain.Task, error) {
	return r.selectTasks(ctx, "search tasks", searchTasksQuery, "%"+escapeLike(keyword)+"%")
}

func (r *TaskRepository) ListPendingWithDeadline(ctx context.Context) ([]domain.Task, error) {
	return r.selectTasks(ctx, "list pending tasks with deadline", pendingDeadlineQuery)
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (bool, error) {
	var found bool
	err := r.withDB("update task", func(db *sqlx.DB) error {
		if patch.IsEmpty() {
			var count int
			if err := db.GetContext(ctx, &count, taskExistsQuery, id); err != nil {
				return err
			}
			found = count > 0
			return nil
		}

		query, args := buildUpdateQuery(id, patch)
		result, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		found, err = affectedAny(result)
		return err
	})
	return found, err
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := r.withDB("delete task", func(db *sqlx.DB) error {
		result, err := db.ExecContext(ctx, deleteTaskQuery, id)
		if err != nil {
			return err
		}
		found, err = affectedAny(result)
		return err
	})
	return found, err
}

func (r *TaskRepository) selectTasks(ctx context.Context, op, query string, args ...any) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.withDB(op, func(db *sqlx.DB) error {
		var rows []taskRow
		if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
			return err
		}

		tasks = make([]domain.Task, 0, len(rows))
		for _, row := range rows {
			tasks = append(tasks, mapTaskRowToDomainTask(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// withDB opens the database for a single operation and closes it afterwards.
// Driver failures come back as *domain.StorageError.
func (r *TaskRepository) withDB(op string, fn func(db *sqlx.DB) error) error {
	db, err := r.open()
	if err != nil {
		return domain.NewStorageError(op, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			zap.L().Warn("failed to close task database", zap.String("op", op), zap.Error(err))
		}
	}()

	if err := fn(db); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return err
		}
		return domain.NewStorageError(op, err)
	}
	return nil
}

// buildUpdateQuery only ever emits the fixed column names below.
func buildUpdateQuery(id int64, patch domain.TaskPatch) (string, []any) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*patch.Priority))
	}
	args = append(args, id)

	return "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?", args
}

func affectedAny(result sql.Result) (bool, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
	}

	if row.Deadline.Valid {
		value := row.Deadline.String
		task.Deadline = &value
	}

	return task
}
