package models

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ValidTheme reports whether the given value is a supported theme.
func ValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	LastActiveAt time.Time `gorm:"index;not null" json:"last_active_at"`
	Theme        Theme     `gorm:"type:varchar(20);not null;default:'light'" json:"theme"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Categories []Category `gorm:"foreignKey:UserID" json:"-"`
	Tasks      []Task     `gorm:"foreignKey:UserID" json:"-"`
}
