package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yamakawa/task-tracker-api/internal/constants"
	"github.com/yamakawa/task-tracker-api/internal/models"
	"github.com/yamakawa/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryNameRequired  = errors.New("category name is required")
	ErrCategoryQuotaExceeded = fmt.Errorf("maximum number of categories (%d) reached", constants.MaxCategoriesPerUser)
)

// CategoryService handles category business logic, always scoped to the
// owning user.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories returns all categories owned by the user
func (s *CategoryService) ListCategories(ownerID uint64) ([]models.Category, error) {
	categories, err := s.categoryRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category, enforcing the per-user quota
func (s *CategoryService) CreateCategory(ownerID uint64, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	count, err := s.categoryRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if count >= constants.MaxCategoriesPerUser {
		return nil, ErrCategoryQuotaExceeded
	}

	category := &models.Category{
		UserID: ownerID,
		Name:   name,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// RenameCategory renames a category and propagates the new name to the
// owner's tasks that referenced the old one.
func (s *CategoryService) RenameCategory(ownerID, id uint64, newName string) (*models.Category, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, ErrCategoryNameRequired
	}

	category, err := s.categoryRepo.FindByID(ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	oldName := category.Name
	if err := s.categoryRepo.Rename(ownerID, id, oldName, newName); err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	category.Name = newName
	return category, nil
}

// DeleteCategory removes a category. Tasks keep their category name; there
// is no relinking on delete.
func (s *CategoryService) DeleteCategory(ownerID, id uint64) error {
	if _, err := s.categoryRepo.FindByID(ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	if err := s.categoryRepo.Delete(ownerID, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
