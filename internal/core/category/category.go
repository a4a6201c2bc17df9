package category

import (
	"time"

	"negar/internal/core/user"
)

// Level سطح دسته‌بندی؛ از روی لینک‌های والد مشتق می‌شود و مستقیم ست نمی‌شود
type Level string

const (
	LevelParent   Level = "PARENT"
	LevelChildren Level = "CHILDREN"
)

// IsValid بررسی عضویت مقدار در مجموعه مقادیر enum
func (l Level) IsValid() bool {
	return l == LevelParent || l == LevelChildren
}

// DeriveLevel سطح از تعداد والدها مشتق می‌شود: بدون والد PARENT، وگرنه CHILDREN
func DeriveLevel(parentCount int) Level {
	if parentCount > 0 {
		return LevelChildren
	}
	return LevelParent
}

type Category struct {
	ID               uint        `gorm:"primary_key;autoIncrement"`
	Name             string      `gorm:"type:varchar(100);not null"`
	Level            Level       `gorm:"type:varchar(10);not null"`
	ParentCategories []*Category `gorm:"many2many:category_parents;foreignKey:ID;joinForeignKey:CategoryID;References:ID;joinReferences:ParentCategoryID"`
	Subcategories    []*Category `gorm:"many2many:category_parents;foreignKey:ID;joinForeignKey:ParentCategoryID;References:ID;joinReferences:CategoryID"`
	CreatorID        *uint       `gorm:"index"`
	Creator          *user.User  `gorm:"foreignkey:CreatorID"` // ارتباط با مدل User
	CreatedAt        time.Time   `gorm:"autoCreateTime"`
	UpdatedAt        time.Time   `gorm:"autoUpdateTime"`
}

// Parent یک سطر از جدول واسط category_parents؛ پیمایش گراف والد/فرزند
// همیشه از طریق همین جدول انجام می‌شود نه اشاره‌گرهای درون حافظه
type Parent struct {
	CategoryID       uint `gorm:"primaryKey"`
	ParentCategoryID uint `gorm:"primaryKey"`
}

func (Parent) TableName() string {
	return "category_parents"
}
