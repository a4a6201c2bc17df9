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
	"negar/internal/core/post"
	postPort "negar/internal/ports/post"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct{}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, p.ID)
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	err := config.DB.WithContext(ctx).
		Preload("Creator").
		Preload("Category").
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

// FindAllAndCount ساخت predicateهای فیلتر، شمارش کل و صفحه‌بندی
func (repo *PostRepositoryDatabase) FindAllAndCount(ctx context.Context, filter postPort.Filter) ([]*post.Post, int64, error) {
	filter.Normalize()

	var total int64
	if err := applyPostFilter(config.DB.WithContext(ctx).Model(&post.Post{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := applyPostFilter(config.DB.WithContext(ctx).Model(&post.Post{}), filter).
		Preload("Creator").
		Preload("Category").
		Order("posts.created_at DESC")
	if !filter.GetFull {
		q = q.Offset(filter.Offset()).Limit(filter.PerPage)
	}

	var posts []*post.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func applyPostFilter(q *gorm.DB, filter postPort.Filter) *gorm.DB {
	if title := strings.TrimSpace(filter.Title); title != "" {
		q = q.Where("posts.title LIKE ?", "%"+title+"%")
	}
	if filter.CategoryID != 0 {
		q = q.Where("posts.category_id = ?", filter.CategoryID)
	}
	return q
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	updates := map[string]interface{}{
		"title":       p.Title,
		"description": p.Description,
		"category_id": p.CategoryID,
	}
	if err := config.DB.WithContext(ctx).Model(&post.Post{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, p.ID)
}
