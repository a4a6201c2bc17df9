package user

import (
	"context"

	"negar/internal/core/user"
)

// UserRepository پورت برای ذخیره‌سازی و بازیابی کاربران
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id uint) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByFullName(ctx context.Context, fullName string) (bool, error)
	FindAllAndCount(ctx context.Context) ([]*user.User, int64, error)
	UpdateToken(ctx context.Context, id uint, token string) error
}

// DTOها برای UseCase
type LoginResponse struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// UserDTO نمای کاربر بدون password و token
type UserDTO struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Ref نمای حداقلی کاربر برای entityهای مرتبط
type Ref struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
}

type ListData struct {
	List  []*UserDTO `json:"list"`
	Total int64      `json:"total"`
}
