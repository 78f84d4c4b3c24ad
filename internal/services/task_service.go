package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yamakawa/task-tracker-api/internal/models"
	"github.com/yamakawa/task-tracker-api/internal/repository"
	"github.com/yamakawa/task-tracker-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTitleRequired        = errors.New("title is required")
	ErrTitleEmpty           = errors.New("title cannot be empty")
	ErrTaskCategoryRequired = errors.New("category is required")
)

// TaskService handles task business logic, always scoped to the owning
// user. Task routes also refresh the owner's activity timestamp, keeping
// active users out of the cleanup sweep's reach.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title    string
	Category string
}

// UpdateTaskInput represents input for updating a task. Nil fields are
// left unchanged.
type UpdateTaskInput struct {
	Title     *string
	Category  *string
	Completed *bool
}

// ListTasks returns the user's tasks, newest first
func (s *TaskService) ListTasks(ownerID uint64, params *utils.PaginationParams) ([]models.Task, int64, error) {
	s.touch(ownerID)

	tasks, total, err := s.taskRepo.ListByOwner(ownerID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// CreateTask creates a new task for the user
func (s *TaskService) CreateTask(ownerID uint64, input CreateTaskInput) (*models.Task, error) {
	s.touch(ownerID)

	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Category == "" {
		return nil, ErrTaskCategoryRequired
	}

	task := &models.Task{
		UserID:   ownerID,
		Title:    input.Title,
		Category: input.Category,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update. The completion timestamp is set
// exactly when the flag flips to true and cleared when it flips to false.
func (s *TaskService) UpdateTask(ownerID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	s.touch(ownerID)

	task, err := s.taskRepo.FindByID(ownerID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Category != nil {
		task.Category = *input.Category
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
		if *input.Completed {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task owned by the user
func (s *TaskService) DeleteTask(ownerID, taskID uint64) error {
	s.touch(ownerID)

	if _, err := s.taskRepo.FindByID(ownerID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(ownerID, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// touch refreshes the activity timestamp; a failure here never fails the
// request itself.
func (s *TaskService) touch(ownerID uint64) {
	_ = s.userRepo.TouchActivity(ownerID)
}
