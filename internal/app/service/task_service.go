package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/anandhx/Task-Management-System/internal/core/domain"
	"github.com/anandhx/Task-Management-System/internal/core/ports"
)

// DueSoonWindow is how far ahead of now a pending deadline counts as due soon.
const DueSoonWindow = 24 * time.Hour

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) Initialize(ctx context.Context) error {
	return s.taskRepository.Initialize(ctx)
}

// AddTask validates input and stores a new pending task. An unrecognized
// priority is stored as medium rather than rejected.
func (s *TaskService) AddTask(ctx context.Context, input domain.NewTaskInput) (int64, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return 0, domain.NewValidationError("description", "must not be empty")
	}

	var deadline *string
	if value := strings.TrimSpace(input.Deadline); value != "" {
		if _, err := domain.ParseDeadline(value, time.Local); err != nil {
			return 0, domain.NewValidationError("deadline", "must be a valid date in DD-MM-YYYY format")
		}
		deadline = &value
	}

	priority, ok := domain.ParsePriority(input.Priority)
	if !ok {
		if strings.TrimSpace(input.Priority) != "" {
			zap.L().Debug("unrecognized priority, defaulting to medium", zap.String("priority", input.Priority))
		}
		priority = domain.TaskPriorityMedium
	}

	return s.taskRepository.CreateTask(ctx, domain.CreateTaskInput{
		Description: description,
		Deadline:    deadline,
		Status:      domain.TaskStatusPending,
		Priority:    priority,
	})
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, sortKey domain.SortKey) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx, sortKey)
}

func (s *TaskService) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	return s.taskRepository.ListByStatus(ctx, status)
}

func (s *TaskService) SearchTasks(ctx context.Context, keyword string) ([]domain.Task, error) {
	return s.taskRepository.SearchTasks(ctx, keyword)
}

// UpdateTask applies the supplied fields that are valid and ignores the rest.
// found is false when no task has the given id.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, input domain.TaskUpdateInput) (bool, error) {
	return s.taskRepository.UpdateTask(ctx, id, BuildTaskPatch(input))
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) (bool, error) {
	return s.taskRepository.DeleteTask(ctx, id)
}

// DueSoon returns pending tasks whose deadline (midnight, in now's location)
// lies between now and now+24h inclusive. Tasks with unparsable deadlines are skipped.
func (s *TaskService) DueSoon(ctx context.Context, now time.Time) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListPendingWithDeadline(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := now.Add(DueSoonWindow)
	due := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		deadline, ok := task.DeadlineIn(now.Location())
		if !ok {
			continue
		}
		if deadline.Before(now) || deadline.After(upcoming) {
			continue
		}
		due = append(due, task)
	}

	return due, nil
}

// BuildTaskPatch keeps the fields of input that can be applied. Blank
// descriptions and unknown status or priority values are dropped.
func BuildTaskPatch(input domain.TaskUpdateInput) domain.TaskPatch {
	var patch domain.TaskPatch

	if input.Description != nil {
		if value := strings.TrimSpace(*input.Description); value != "" {
			patch.Description = &value
		}
	}

	if input.Status != nil {
		if status, ok := domain.ParseStatus(*input.Status); ok {
			patch.Status = &status
		} else if strings.TrimSpace(*input.Status) != "" {
			zap.L().Debug("ignoring unrecognized status", zap.String("status", *input.Status))
		}
	}

	if input.Priority != nil {
		if priority, ok := domain.ParsePriority(*input.Priority); ok {
			patch.Priority = &priority
		} else if strings.TrimSpace(*input.Priority) != "" {
			zap.L().Debug("ignoring unrecognized priority", zap.String("priority", *input.Priority))
		}
	}

	return patch
}

var _ ports.TaskService = (*TaskService)(nil)
