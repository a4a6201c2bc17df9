package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"negar/internal/config"
	"negar/internal/core/apperr"
	"negar/internal/core/category"
	categoryPort "negar/internal/ports/category"
	"negar/internal/ports/listing"
)

// CategoryRepositoryDatabase پیاده‌سازی CategoryRepository برای دیتابیس
type CategoryRepositoryDatabase struct{}

// NewCategoryRepositoryDatabase سازنده CategoryRepositoryDatabase
func NewCategoryRepositoryDatabase() *CategoryRepositoryDatabase {
	return &CategoryRepositoryDatabase{}
}

// Create ایجاد دسته‌بندی و سطرهای والد در یک تراکنش
func (repo *CategoryRepositoryDatabase) Create(ctx context.Context, c *category.Category, parentIDs []uint) (*category.Category, error) {
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
			return err
		}
		return insertParentRows(tx, c.ID, parentIDs)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CategoryRepositoryDatabase) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var c category.Category
	if err := config.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepositoryDatabase) FindByIDs(ctx context.Context, ids []uint) ([]*category.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []*category.Category
	if err := config.DB.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindAllAndCount ساخت predicateهای فیلتر، شمارش کل و صفحه‌بندی
func (repo *CategoryRepositoryDatabase) FindAllAndCount(ctx context.Context, filter categoryPort.Filter) ([]*category.Category, int64, error) {
	filter.Normalize()

	var total int64
	if err := applyCategoryFilter(config.DB.WithContext(ctx).Model(&category.Category{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := applyCategoryFilter(config.DB.WithContext(ctx).Model(&category.Category{}), filter).
		Order("categories.created_at DESC")
	if !filter.GetFull {
		q = q.Offset(filter.Offset()).Limit(filter.PerPage)
	}

	var categories []*category.Category
	if err := q.Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// applyCategoryFilter هر predicate فقط وقتی فیلدش بعد از trim خالی نباشد اضافه می‌شود
func applyCategoryFilter(q *gorm.DB, filter categoryPort.Filter) *gorm.DB {
	if filter.ID != 0 {
		q = q.Where("categories.id = ?", filter.ID)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		q = q.Where("categories.name LIKE ?", "%"+name+"%")
	}
	// مقدار نامعتبر enum نادیده گرفته می‌شود نه رد
	if level := category.Level(strings.TrimSpace(filter.Level)); level != "" && level.IsValid() {
		q = q.Where("categories.level = ?", level)
	}
	if parentName := strings.TrimSpace(filter.ParentName); parentName != "" {
		q = q.Where(
			"categories.id IN (SELECT cp.category_id FROM category_parents cp JOIN categories p ON p.id = cp.parent_category_id WHERE p.name LIKE ?)",
			"%"+parentName+"%",
		)
	}
	if filter.CreatedAtFrom != nil {
		q = q.Where("categories.created_at >= ?", listing.StartOfDay(*filter.CreatedAtFrom))
	}
	if filter.CreatedAtTo != nil {
		q = q.Where("categories.created_at <= ?", listing.EndOfDay(*filter.CreatedAtTo))
	}
	return q
}

// UpdateHierarchy بروزرسانی دسته‌بندی، جایگزینی کامل والدها و جداسازی
// آبشاری فرزندها در یک تراکنش واحد
func (repo *CategoryRepositoryDatabase) UpdateHierarchy(ctx context.Context, c *category.Category, parentIDs []uint) error {
	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"name": c.Name, "level": c.Level}
		if err := tx.Model(&category.Category{}).Where("id = ?", c.ID).Updates(updates).Error; err != nil {
			return err
		}

		// جایگزینی کامل: اول حذف همه سطرهای والد، بعد درج لیست جدید
		if err := tx.Where("category_id = ?", c.ID).Delete(&category.Parent{}).Error; err != nil {
			return err
		}
		if err := insertParentRows(tx, c.ID, parentIDs); err != nil {
			return err
		}

		if c.Level != category.LevelChildren {
			return nil
		}

		// دسته‌ای که خودش CHILDREN شده دیگر نمی‌تواند والد بماند؛
		// از لیست والد همه فرزندهایش حذف می‌شود تا سلسله‌مراتب دو سطحی بماند
		var childIDs []uint
		if err := tx.Model(&category.Parent{}).
			Where("parent_category_id = ?", c.ID).
			Pluck("category_id", &childIDs).Error; err != nil {
			return err
		}
		if len(childIDs) == 0 {
			return nil
		}

		if err := tx.Where("parent_category_id = ?", c.ID).Delete(&category.Parent{}).Error; err != nil {
			return err
		}

		// سطح هر فرزند از تعداد والدهای باقی‌مانده دوباره مشتق می‌شود
		for _, childID := range childIDs {
			var remaining int64
			if err := tx.Model(&category.Parent{}).Where("category_id = ?", childID).Count(&remaining).Error; err != nil {
				return err
			}
			if err := tx.Model(&category.Category{}).
				Where("id = ?", childID).
				Update("level", category.DeriveLevel(int(remaining))).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ParentRefs خواندن والدها از جدول واسط به صورت {id, name}
func (repo *CategoryRepositoryDatabase) ParentRefs(ctx context.Context, id uint) ([]*categoryPort.Ref, error) {
	var refs []*categoryPort.Ref
	err := config.DB.WithContext(ctx).
		Table("categories").
		Select("categories.id, categories.name").
		Joins("JOIN category_parents cp ON cp.parent_category_id = categories.id").
		Where("cp.category_id = ?", id).
		Order("categories.id").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func insertParentRows(tx *gorm.DB, categoryID uint, parentIDs []uint) error {
	if len(parentIDs) == 0 {
		return nil
	}
	rows := make([]category.Parent, 0, len(parentIDs))
	for _, parentID := range parentIDs {
		rows = append(rows, category.Parent{CategoryID: categoryID, ParentCategoryID: parentID})
	}
	return tx.Create(&rows).Error
}
