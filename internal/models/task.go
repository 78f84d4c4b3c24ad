package models

import "time"

// Task references its category by name, not by foreign key. Renaming a
// category rewrites this field for the owner's tasks.
type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	UserID      uint64     `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Category    string     `gorm:"type:varchar(255);not null" json:"category"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
