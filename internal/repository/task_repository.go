package repository

import (
	"github.com/yamakawa/task-tracker-api/internal/database"
	"github.com/yamakawa/task-tracker-api/internal/models"
	"github.com/yamakawa/task-tracker-api/internal/utils"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// ListByOwner lists tasks owned by a user. When params is nil the full
// list is returned, matching clients that paginate locally.
func (r *GormTaskRepository) ListByOwner(ownerID uint64, params *utils.PaginationParams) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).Scopes(database.OwnedBy(ownerID))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC")
	if params != nil {
		listQuery = listQuery.Scopes(database.Paginate(*params))
	}

	if err := listQuery.Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// FindByID finds a task by ID, scoped to the owner
func (r *GormTaskRepository) FindByID(ownerID, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Scopes(database.OwnedBy(ownerID)).
		First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// Update persists changes to a task. Select forces NULL writes when the
// completion timestamp is cleared.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Model(task).
		Select("title", "category", "completed", "completed_at").
		Updates(task).Error
}

// Delete removes a task, scoped to the owner
func (r *GormTaskRepository) Delete(ownerID, id uint64) error {
	return r.db.Scopes(database.OwnedBy(ownerID)).
		Delete(&models.Task{}, id).Error
}

// DeleteByOwner removes all tasks owned by a user
func (r *GormTaskRepository) DeleteByOwner(ownerID uint64) error {
	return r.db.Scopes(database.OwnedBy(ownerID)).
		Delete(&models.Task{}).Error
}
