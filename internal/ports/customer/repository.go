package customer

import (
	"context"
	"time"

	"negar/internal/core/customer"
)

// CustomerRepository پورت برای ذخیره‌سازی و بازیابی مشتری‌ها
type CustomerRepository interface {
	Create(ctx context.Context, customer *customer.Customer) (*customer.Customer, error)
	FindByID(ctx context.Context, id uint) (*customer.Customer, error)
	// excludeID != 0 یعنی سطر با همین id از بررسی کنار گذاشته شود
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string, excludeID uint) (bool, error)
	FindAllAndCount(ctx context.Context) ([]*customer.Customer, int64, error)
	Update(ctx context.Context, customer *customer.Customer) (*customer.Customer, error)
	Delete(ctx context.Context, id uint) error
}

// CreateInput ورودی ایجاد مشتری
type CreateInput struct {
	FullName    string
	Bio         string
	Gender      string
	DateOfBirth time.Time
	PhoneNumber string
	Email       string
	Password    string
}

// UpdateInput ورودی بروزرسانی؛ فیلد nil یعنی بدون تغییر
type UpdateInput struct {
	FullName    *string
	Bio         *string
	Gender      *string
	DateOfBirth *time.Time
	PhoneNumber *string
	Email       *string
}

// CustomerDTO نمای مشتری بدون فیلد password
type CustomerDTO struct {
	ID          uint   `json:"id"`
	FullName    string `json:"fullName"`
	Bio         string `json:"bio,omitempty"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type ListData struct {
	List  []*CustomerDTO `json:"list"`
	Total int64          `json:"total"`
}
