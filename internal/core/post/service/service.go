package postapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"negar/internal/core/apperr"
	postEntity "negar/internal/core/post"
	categoryPort "negar/internal/ports/category"
	postPort "negar/internal/ports/post"
	userPort "negar/internal/ports/user"
)

// PostService سرویس مدیریت پست‌ها
type PostService struct {
	PostRepository     postPort.PostRepository
	UserRepository     userPort.UserRepository     // برای resolve کردن creator
	CategoryRepository categoryPort.CategoryRepository // برای resolve کردن category
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	categoryRepo categoryPort.CategoryRepository,
) *PostService {
	return &PostService{
		PostRepository:     postRepo,
		UserRepository:     userRepo,
		CategoryRepository: categoryRepo,
	}
}

// Create ایجاد پست جدید؛ بر خلاف دسته‌بندی، نبودن creator یا category
// اینجا خطای NotFound است (عدم تقارن عمدی)
func (s *PostService) Create(ctx context.Context, title, description string, categoryID, creatorID uint) (*postPort.PostDTO, error) {
	if err := validateText("title", title); err != nil {
		return nil, err
	}
	if err := validateText("description", description); err != nil {
		return nil, err
	}

	creator, err := s.UserRepository.FindByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	category, err := s.CategoryRepository.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		CreatorID:   creator.ID,
		CategoryID:  category.ID,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return toPostDTO(created), nil
}

// Update بروزرسانی پست؛ categoryID جدید باید به دسته موجود برسد
func (s *PostService) Update(ctx context.Context, id uint, title, description *string, categoryID *uint) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		if err := validateText("title", *title); err != nil {
			return nil, err
		}
		p.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		if err := validateText("description", *description); err != nil {
			return nil, err
		}
		p.Description = strings.TrimSpace(*description)
	}
	if categoryID != nil {
		category, err := s.CategoryRepository.FindByID(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		p.CategoryID = category.ID
	}

	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return toPostDTO(updated), nil
}

func (s *PostService) FindID(ctx context.Context, id uint) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPostDTO(p), nil
}

func (s *PostService) FindAllAndCount(ctx context.Context, filter postPort.Filter) (*postPort.ListData, error) {
	filter.Normalize()

	posts, total, err := s.PostRepository.FindAllAndCount(ctx, filter)
	if err != nil {
		return nil, err
	}

	list := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		list = append(list, toPostDTO(p))
	}

	return &postPort.ListData{
		List:    list,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

func validateText(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > 1000 {
		return fmt.Errorf("%s must be between 1 and 1000 characters: %w", field, apperr.ErrValidation)
	}
	return nil
}

// toPostDTO پروجکشن پست؛ creator و category فقط id+name
func toPostDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Creator.ID != 0 {
		dto.Creator = &userPort.Ref{ID: p.Creator.ID, FullName: p.Creator.FullName}
	}
	if p.Category.ID != 0 {
		dto.Category = &categoryPort.Ref{ID: p.Category.ID, Name: p.Category.Name}
	}
	return dto
}
