package customer

import (
	"time"
)

// Gender جنسیت مشتری
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid بررسی عضویت مقدار در مجموعه مقادیر enum
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type Customer struct {
	ID          uint      `gorm:"primary_key;autoIncrement"`
	FullName    string    `gorm:"type:varchar(100);not null"`
	Bio         string    `gorm:"type:varchar(1000)"`
	Gender      Gender    `gorm:"type:varchar(10);not null"`
	DateOfBirth time.Time `gorm:"type:date;not null"`
	PhoneNumber string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Email       string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	Password    string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
