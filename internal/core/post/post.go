package post

import (
	"time"

	"negar/internal/core/category"
	"negar/internal/core/user"
)

type Post struct {
	ID          uint              `gorm:"primary_key;autoIncrement"`
	Title       string            `gorm:"type:varchar(1000);not null"`
	Description string            `gorm:"type:varchar(1000);not null"`
	CreatorID   uint              `gorm:"not null;index"`
	Creator     user.User         `gorm:"foreignkey:CreatorID"` // ارتباط با مدل User
	CategoryID  uint              `gorm:"not null;index"`
	Category    category.Category `gorm:"foreignkey:CategoryID"` // ارتباط با مدل Category
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime"`
}
