package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/anandhx/Task-Management-System/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Initialize(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *taskServiceMock) AddTask(ctx context.Context, input domain.NewTaskInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, sortKey domain.SortKey) ([]domain.Task, error) {
	args := m.Called(ctx, sortKey)
	return tasksArg(args), args.Error(1)
}

func (m *taskServiceMock) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	args := m.Called(ctx, status)
	return tasksArg(args), args.Error(1)
}

func (m *taskServiceMock) SearchTasks(ctx context.Context, keyword string) ([]domain.Task, error) {
	args := m.Called(ctx, keyword)
	return tasksArg(args), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id int64, input domain.TaskUpdateInput) (bool, error) {
	args := m.Called(ctx, id, input)
	return args.Bool(0), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *taskServiceMock) DueSoon(ctx context.Context, now time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, now)
	return tasksArg(args), args.Error(1)
}

func tasksArg(args mock.Arguments) []domain.Task {
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks
}
