package tests

import (
	"context"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/anandhx/Task-Management-System/internal/adapter/db"
	"github.com/anandhx/Task-Management-System/internal/core/domain"
)

type RepositorySuiteBase struct {
	suite.Suite

	DBPath     string
	Repository *dbadapter.TaskRepository
}

func (s *RepositorySuiteBase) SetupTest() {
	s.DBPath = filepath.Join(s.T().TempDir(), "tasks.db")
	s.Repository = dbadapter.NewTaskRepository(s.Opener())
	s.Require().NoError(s.Repository.Initialize(context.Background()))
}

func (s *RepositorySuiteBase) Opener() dbadapter.Opener {
	return func() (*sqlx.DB, error) {
		return dbadapter.ConnectFile(s.DBPath, "_busy_timeout=5000")
	}
}

// Exec runs raw SQL against the suite database, for seeding data the store itself would refuse.
func (s *RepositorySuiteBase) Exec(query string, args ...any) {
	db, err := s.Opener()()
	s.Require().NoError(err)
	defer db.Close()

	_, err = db.Exec(query, args...)
	s.Require().NoError(err)
}

func (s *RepositorySuiteBase) CountTasks() int {
	db, err := s.Opener()()
	s.Require().NoError(err)
	defer db.Close()

	var count int
	s.Require().NoError(db.Get(&count, "SELECT COUNT(*) FROM tasks"))
	return count
}

func (s *RepositorySuiteBase) Seed(inputs ...domain.CreateTaskInput) []int64 {
	ids := make([]int64, 0, len(inputs))
	for _, input := range inputs {
		id, err := s.Repository.CreateTask(context.Background(), input)
		s.Require().NoError(err)
		ids = append(ids, id)
	}
	return ids
}

func pending(description string, deadline *string, priority domain.TaskPriority) domain.CreateTaskInput {
	return domain.CreateTaskInput{
		Description: description,
		Deadline:    deadline,
		Status:      domain.TaskStatusPending,
		Priority:    priority,
	}
}

func ptr[T any](value T) *T {
	return &value
}
