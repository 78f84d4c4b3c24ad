package repository

import (
	"time"

	"github.com/yamakawa/task-tracker-api/internal/models"
	"github.com/yamakawa/task-tracker-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// TouchActivity sets the user's last-activity timestamp to now
	TouchActivity(id uint64) error

	// UpdateTheme sets the user's display theme
	UpdateTheme(id uint64, theme models.Theme) error

	// FindInactiveSince lists users whose last activity is before the cutoff
	FindInactiveSince(cutoff time.Time) ([]models.User, error)

	// Delete removes a user record
	Delete(id uint64) error
}

// CategoryRepository defines owner-scoped category data access. Every
// method filters by the owner's user ID so that a category belonging to
// another user is indistinguishable from a missing one.
type CategoryRepository interface {
	// ListByOwner lists all categories owned by a user
	ListByOwner(ownerID uint64) ([]models.Category, error)

	// CountByOwner counts the categories owned by a user
	CountByOwner(ownerID uint64) (int64, error)

	// FindByID finds a category by ID, scoped to the owner
	FindByID(ownerID, id uint64) (*models.Category, error)

	// Create creates a new category
	Create(category *models.Category) error

	// Rename updates a category's name and rewrites the denormalized
	// category field on the owner's tasks that referenced the old name
	Rename(ownerID, id uint64, oldName, newName string) error

	// Delete removes a category, scoped to the owner
	Delete(ownerID, id uint64) error

	// DeleteByOwner removes all categories owned by a user
	DeleteByOwner(ownerID uint64) error
}

// TaskRepository defines owner-scoped task data access.
type TaskRepository interface {
	// ListByOwner lists tasks owned by a user; params is nil for no pagination
	ListByOwner(ownerID uint64, params *utils.PaginationParams) ([]models.Task, int64, error)

	// FindByID finds a task by ID, scoped to the owner
	FindByID(ownerID, id uint64) (*models.Task, error)

	// Create creates a new task
	Create(task *models.Task) error

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete removes a task, scoped to the owner
	Delete(ownerID, id uint64) error

	// DeleteByOwner removes all tasks owned by a user
	DeleteByOwner(ownerID uint64) error
}
