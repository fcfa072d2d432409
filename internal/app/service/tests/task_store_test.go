package tests

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/anandhx/Task-Management-System/internal/adapter/db"
	"github.com/anandhx/Task-Management-System/internal/app/service"
	"github.com/anandhx/Task-Management-System/internal/core/domain"
)

// TaskStoreSuite exercises the service against a real SQLite file.
type TaskStoreSuite struct {
	suite.Suite

	dbPath  string
	service *service.TaskService
}

func TestTaskStoreSuite(t *testing.T) {
	suite.Run(t, new(TaskStoreSuite))
}

func (s *TaskStoreSuite) SetupTest() {
	s.dbPath = filepath.Join(s.T().TempDir(), "tasks.db")
	repository := dbadapter.NewTaskRepository(func() (*sqlx.DB, error) {
		return dbadapter.ConnectFile(s.dbPath, "")
	})
	s.service = service.NewTaskService(repository)
	s.Require().NoError(s.service.Initialize(context.Background()))
}

func (s *TaskStoreSuite) count() int {
	tasks, err := s.service.ListTasks(context.Background(), domain.SortNone)
	s.Require().NoError(err)
	return len(tasks)
}

func (s *TaskStoreSuite) TestAddThenGet_ReturnsSuppliedFieldsOrDefaults() {
	ctx := context.Background()

	id, err := s.service.AddTask(ctx, domain.NewTaskInput{Description: "Walk dog"})
	s.Require().NoError(err)

	task, err := s.service.GetTask(ctx, id)
	s.Require().NoError(err)
	s.Require().Equal("Walk dog", task.Description)
	s.Require().Nil(task.Deadline)
	s.Require().Equal(domain.TaskStatusPending, task.Status)
	s.Require().Equal(domain.TaskPriorityMedium, task.Priority)

	id, err = s.service.AddTask(ctx, domain.NewTaskInput{Description: "File taxes", Deadline: "30-04-2026", Priority: "low"})
	s.Require().NoError(err)

	task, err = s.service.GetTask(ctx, id)
	s.Require().NoError(err)
	s.Require().Equal("30-04-2026", *task.Deadline)
	s.Require().Equal(domain.TaskPriorityLow, task.Priority)
}

func (s *TaskStoreSuite) TestAdd_BlankDescriptionCreatesNoRow() {
	for _, description := range []string{"", "   "} {
		_, err := s.service.AddTask(context.Background(), domain.NewTaskInput{Description: description})
		s.Require().True(domain.IsValidation(err))
	}
	s.Require().Equal(0, s.count())
}

func (s *TaskStoreSuite) TestAdd_ImpossibleDateCreatesNoRow() {
	_, err := s.service.AddTask(context.Background(), domain.NewTaskInput{Description: "leap", Deadline: "31-02-2024"})
	s.Require().True(domain.IsValidation(err))
	s.Require().Equal(0, s.count())
}

func (s *TaskStoreSuite) TestAdd_UrgentPriorityStoredAsMedium() {
	id, err := s.service.AddTask(context.Background(), domain.NewTaskInput{Description: "x", Priority: "urgent"})
	s.Require().NoError(err)

	task, err := s.service.GetTask(context.Background(), id)
	s.Require().NoError(err)
	s.Require().Equal(domain.TaskPriorityMedium, task.Priority)
}

func (s *TaskStoreSuite) TestUpdate_UnknownStatusLeavesStatusUnchanged() {
	ctx := context.Background()
	id, err := s.service.AddTask(ctx, domain.NewTaskInput{Description: "x"})
	s.Require().NoError(err)

	done := "done"
	found, err := s.service.UpdateTask(ctx, id, domain.TaskUpdateInput{Status: &done})
	s.Require().NoError(err)
	s.Require().True(found)

	task, err := s.service.GetTask(ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(domain.TaskStatusPending, task.Status)
}

func (s *TaskStoreSuite) TestDelete_MissingIDLeavesRowCount() {
	_, err := s.service.AddTask(context.Background(), domain.NewTaskInput{Description: "keep me"})
	s.Require().NoError(err)

	found, err := s.service.DeleteTask(context.Background(), 12345)
	s.Require().NoError(err)
	s.Require().False(found)
	s.Require().Equal(1, s.count())
}

func (s *TaskStoreSuite) TestDueSoon_IncludesPendingExcludesCompleted() {
	ctx := context.Background()
	deadline := time.Date(2026, 10, 20, 0, 0, 0, 0, time.Local)
	now := deadline.Add(-(23*time.Hour + 59*time.Minute))

	id, err := s.service.AddTask(ctx, domain.NewTaskInput{Description: "renew passport", Deadline: "20-10-2026"})
	s.Require().NoError(err)

	due, err := s.service.DueSoon(ctx, now)
	s.Require().NoError(err)
	s.Require().Len(due, 1)
	s.Require().Equal(id, due[0].ID)

	completed := "completed"
	_, err = s.service.UpdateTask(ctx, id, domain.TaskUpdateInput{Status: &completed})
	s.Require().NoError(err)

	due, err = s.service.DueSoon(ctx, now)
	s.Require().NoError(err)
	s.Require().Empty(due)
}

func (s *TaskStoreSuite) TestDeadlineRoundTrip() {
	id, err := s.service.AddTask(context.Background(), domain.NewTaskInput{Description: "x", Deadline: "25-12-2025"})
	s.Require().NoError(err)

	task, err := s.service.GetTask(context.Background(), id)
	s.Require().NoError(err)
	s.Require().Equal("25-12-2025", *task.Deadline)
}

func (s *TaskStoreSuite) TestSearch_MatchesInOriginalOrder() {
	ctx := context.Background()
	for _, description := range []string{"Feed cat", "Walk dog", "Buy cat food"} {
		_, err := s.service.AddTask(ctx, domain.NewTaskInput{Description: description})
		s.Require().NoError(err)
	}

	tasks, err := s.service.SearchTasks(ctx, "cat")
	s.Require().NoError(err)
	s.Require().Len(tasks, 2)
	s.Require().Equal("Feed cat", tasks[0].Description)
	s.Require().Equal("Buy cat food", tasks[1].Description)
}

func (s *TaskStoreSuite) TestCommittedStateVisibleAcrossOperations() {
	ctx := context.Background()
	id, err := s.service.AddTask(ctx, domain.NewTaskInput{Description: "first"})
	s.Require().NoError(err)

	other := service.NewTaskService(dbadapter.NewTaskRepository(func() (*sqlx.DB, error) {
		return dbadapter.ConnectFile(s.dbPath, "")
	}))
	task, err := other.GetTask(ctx, id)
	s.Require().NoError(err)
	s.Require().Equal("first", task.Description)
}
