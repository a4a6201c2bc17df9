package user

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primary_key;autoIncrement"`
	Email     string    `gorm:"type:varchar(254)"`
	FullName  string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Token     string    `gorm:"type:varchar(512)"` // آخرین توکن صادر شده
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
