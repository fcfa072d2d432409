package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/anandhx/Task-Management-System/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Initialize(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, sortKey domain.SortKey) ([]domain.Task, error) {
	args := m.Called(ctx, sortKey)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskRepositoryMock) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	args := m.Called(ctx, status)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskRepositoryMock) SearchTasks(ctx context.Context, keyword string) ([]domain.Task, error) {
	args := m.Called(ctx, keyword)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskRepositoryMock) ListPendingWithDeadline(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func tasksArg(args mock.Arguments, index int) []domain.Task {
	var tasks []domain.Task
	if value := args.Get(index); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks
}
