package repository

import (
	"time"

	"github.com/yamakawa/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchActivity sets the user's last-activity timestamp to now
func (r *GormUserRepository) TouchActivity(id uint64) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("last_active_at", time.Now()).Error
}

// UpdateTheme sets the user's display theme
func (r *GormUserRepository) UpdateTheme(id uint64, theme models.Theme) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("theme", theme).Error
}

// FindInactiveSince lists users whose last activity is before the cutoff
func (r *GormUserRepository) FindInactiveSince(cutoff time.Time) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("last_active_at < ?", cutoff).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes a user record
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Delete(&models.User{}, id).Error
}
