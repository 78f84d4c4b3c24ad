package repository

import (
	"github.com/yamakawa/task-tracker-api/internal/database"
	"github.com/yamakawa/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

// ListByOwner lists all categories owned by a user
func (r *GormCategoryRepository) ListByOwner(ownerID uint64) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Scopes(database.OwnedBy(ownerID)).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CountByOwner counts the categories owned by a user
func (r *GormCategoryRepository) CountByOwner(ownerID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Scopes(database.OwnedBy(ownerID)).
		Count(&count).Error
	return count, err
}

// FindByID finds a category by ID, scoped to the owner
func (r *GormCategoryRepository) FindByID(ownerID, id uint64) (*models.Category, error) {
	var category models.Category
	if err := r.db.Scopes(database.OwnedBy(ownerID)).
		First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create creates a new category
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Rename updates the category name and rewrites the denormalized category
// field on the same owner's tasks in a single transaction.
func (r *GormCategoryRepository) Rename(ownerID, id uint64, oldName, newName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Category{}).
			Scopes(database.OwnedBy(ownerID)).
			Where("id = ?", id).
			Update("name", newName).Error; err != nil {
			return err
		}

		return tx.Model(&models.Task{}).
			Scopes(database.OwnedBy(ownerID)).
			Where("category = ?", oldName).
			Update("category", newName).Error
	})
}

// Delete removes a category, scoped to the owner
func (r *GormCategoryRepository) Delete(ownerID, id uint64) error {
	return r.db.Scopes(database.OwnedBy(ownerID)).
		Delete(&models.Category{}, id).Error
}

// DeleteByOwner removes all categories owned by a user
func (r *GormCategoryRepository) DeleteByOwner(ownerID uint64) error {
	return r.db.Scopes(database.OwnedBy(ownerID)).
		Delete(&models.Category{}).Error
}
