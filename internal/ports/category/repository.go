package category

import (
	"context"
	"time"

	"negar/internal/core/category"
	"negar/internal/ports/listing"
)

// Filter مشخصات فیلتر لیست دسته‌بندی‌ها؛ فیلد خالی یعنی بدون predicate
type Filter struct {
	ID            uint
	Name          string
	Level         string // مقدار خام؛ فقط در صورت عضویت در enum اعمال می‌شود
	ParentName    string
	CreatedAtFrom *time.Time
	CreatedAtTo   *time.Time
	listing.Pagination
}

// CategoryRepository پورت برای ذخیره‌سازی و بازیابی دسته‌بندی‌ها
type CategoryRepository interface {
	// ایجاد دسته‌بندی همراه با سطرهای جدول واسط والدها در یک تراکنش
	Create(ctx context.Context, c *category.Category, parentIDs []uint) (*category.Category, error)
	FindByID(ctx context.Context, id uint) (*category.Category, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*category.Category, error)
	FindAllAndCount(ctx context.Context, filter Filter) ([]*category.Category, int64, error)
	// بروزرسانی نام/سطح، جایگزینی کامل والدها و جداسازی آبشاری فرزندها
	// در یک تراکنش واحد
	UpdateHierarchy(ctx context.Context, c *category.Category, parentIDs []uint) error
	ParentRefs(ctx context.Context, id uint) ([]*Ref, error)
}

// Ref نمای حداقلی {id, name} برای جلوگیری از چرخه‌های تو در تو در پاسخ
type Ref struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DTOها برای UseCase
type CategoryDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Level     string `json:"level"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CategoryDetails جزییات دسته‌بندی؛ والدها فقط به صورت {id, name}
type CategoryDetails struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Level            string `json:"level"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
	ParentCategories []*Ref `json:"parentCategories"`
}

type ListData struct {
	List    []*CategoryDTO `json:"list"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"perPage"`
}
