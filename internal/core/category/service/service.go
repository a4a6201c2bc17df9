package categoryapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"negar/internal/config"
	"negar/internal/core/apperr"
	categoryEntity "negar/internal/core/category"
	categoryPort "negar/internal/ports/category"
	userPort "negar/internal/ports/user"
)

// CategoryService سرویس مدیریت دسته‌بندی‌ها و سلسله‌مراتب دو سطحی آن‌ها
type CategoryService struct {
	CategoryRepository categoryPort.CategoryRepository
	UserRepository     userPort.UserRepository
}

func NewCategoryService(categoryRepo categoryPort.CategoryRepository, userRepo userPort.UserRepository) *CategoryService {
	return &CategoryService{
		CategoryRepository: categoryRepo,
		UserRepository:     userRepo,
	}
}

// Create ایجاد دسته‌بندی جدید. سطح از والدهای resolve شده مشتق می‌شود؛
// شناسه والدی که وجود نداشته باشد بی‌صدا از مجموعه حذف می‌شود (خطا نیست).
// creator هم در صورت نبودن پذیرفته می‌شود و دسته بدون creator ثبت می‌شود.
func (s *CategoryService) Create(ctx context.Context, name string, parentCategoryIDs []uint, creatorID uint) (*categoryPort.CategoryDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return nil, fmt.Errorf("category name must be between 1 and 100 characters: %w", apperr.ErrValidation)
	}

	resolvedIDs, err := s.resolveParentIDs(ctx, parentCategoryIDs)
	if err != nil {
		return nil, err
	}

	c := &categoryEntity.Category{
		Name:  name,
		Level: categoryEntity.DeriveLevel(len(resolvedIDs)),
	}

	creator, err := s.UserRepository.FindByID(ctx, creatorID)
	switch {
	case err == nil:
		c.CreatorID = &creator.ID
	case errors.Is(err, apperr.ErrNotFound):
		// creator ناموجود پذیرفته می‌شود؛ رفتار عمدا با create پست فرق دارد
	default:
		return nil, err
	}

	created, err := s.CategoryRepository.Create(ctx, c, resolvedIDs)
	if err != nil {
		return nil, err
	}
	return toCategoryDTO(created), nil
}

// Update بروزرسانی دسته‌بندی؛ لیست والدها جایگزینی کامل است نه merge:
// نیامدن فیلد یعنی پاک شدن همه والدها و برگشتن به PARENT. اگر سطح جدید
// CHILDREN شود، این دسته از لیست والد همه فرزندهایش جدا می‌شود تا هیچ
// مسیر بیش از دو سطح باقی نماند.
func (s *CategoryService) Update(ctx context.Context, id uint, name *string, parentCategoryIDs []uint) (*categoryPort.CategoryDetails, error) {
	c, err := s.CategoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" || len(trimmed) > 100 {
			return nil, fmt.Errorf("category name must be between 1 and 100 characters: %w", apperr.ErrValidation)
		}
		c.Name = trimmed
	}

	resolvedIDs, err := s.resolveParentIDs(ctx, parentCategoryIDs)
	if err != nil {
		return nil, err
	}
	c.Level = categoryEntity.DeriveLevel(len(resolvedIDs))

	if err := s.CategoryRepository.UpdateHierarchy(ctx, c, resolvedIDs); err != nil {
		return nil, err
	}
	config.Logger.Info("✅ Category hierarchy updated",
		zap.Uint("id", id), zap.String("level", string(c.Level)), zap.Int("parents", len(resolvedIDs)))
	return s.FindID(ctx, id)
}

// FindID جزییات دسته‌بندی؛ والدها فقط به صورت {id, name} برمی‌گردند
func (s *CategoryService) FindID(ctx context.Context, id uint) (*categoryPort.CategoryDetails, error) {
	c, err := s.CategoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	refs, err := s.CategoryRepository.ParentRefs(ctx, id)
	if err != nil {
		return nil, err
	}
	if refs == nil {
		refs = []*categoryPort.Ref{}
	}

	return &categoryPort.CategoryDetails{
		ID:               c.ID,
		Name:             c.Name,
		Level:            string(c.Level),
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
		ParentCategories: refs,
	}, nil
}

func (s *CategoryService) FindAllAndCount(ctx context.Context, filter categoryPort.Filter) (*categoryPort.ListData, error) {
	filter.Normalize()

	categories, total, err := s.CategoryRepository.FindAllAndCount(ctx, filter)
	if err != nil {
		return nil, err
	}

	list := make([]*categoryPort.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		list = append(list, toCategoryDTO(c))
	}

	return &categoryPort.ListData{
		List:    list,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

// resolveParentIDs شناسه‌های والد را با دیتابیس تطبیق می‌دهد؛
// شناسه‌هایی که به دسته موجود نرسند از مجموعه حذف می‌شوند
func (s *CategoryService) resolveParentIDs(ctx context.Context, parentCategoryIDs []uint) ([]uint, error) {
	if len(parentCategoryIDs) == 0 {
		return nil, nil
	}
	parents, err := s.CategoryRepository.FindByIDs(ctx, parentCategoryIDs)
	if err != nil {
		return nil, err
	}
	resolved := make([]uint, 0, len(parents))
	for _, p := range parents {
		resolved = append(resolved, p.ID)
	}
	return resolved, nil
}

func toCategoryDTO(c *categoryEntity.Category) *categoryPort.CategoryDTO {
	return &categoryPort.CategoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		Level:     string(c.Level),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
