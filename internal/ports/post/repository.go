package post

import (
	"context"

	"negar/internal/core/post"
	categoryPort "negar/internal/ports/category"
	"negar/internal/ports/listing"
	userPort "negar/internal/ports/user"
)

// Filter مشخصات فیلتر لیست پست‌ها
type Filter struct {
	Title      string
	CategoryID uint
	listing.Pagination
}

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uint) (*post.Post, error)
	FindAllAndCount(ctx context.Context, filter Filter) ([]*post.Post, int64, error)
	Update(ctx context.Context, post *post.Post) (*post.Post, error)
}

// PostDTO نمای پست؛ creator و category فقط به صورت id+name
type PostDTO struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
	Creator     *userPort.Ref      `json:"creator,omitempty"`
	Category    *categoryPort.Ref  `json:"category,omitempty"`
}

type ListData struct {
	List    []*PostDTO `json:"list"`
	Total   int64      `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"perPage"`
}
