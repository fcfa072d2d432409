package ports

import (
	"context"
	"time"

	"github.com/anandhx/Task-Management-System/internal/core/domain"
)

type TaskRepository interface {
	Initialize(ctx context.Context) error
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (int64, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	ListTasks(ctx context.Context, sortKey domain.SortKey) ([]domain.Task, error)
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	SearchTasks(ctx context.Context, keyword string) ([]domain.Task, error)
	ListPendingWithDeadline(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (bool, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
}

type TaskService interface {
	Initialize(ctx context.Context) error
	AddTask(ctx context.Context, input domain.NewTaskInput) (int64, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	ListTasks(ctx context.Context, sortKey domain.SortKey) ([]domain.Task, error)
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	SearchTasks(ctx context.Context, keyword string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input domain.TaskUpdateInput) (bool, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
	DueSoon(ctx context.Context, now time.Time) ([]domain.Task, error)
}
