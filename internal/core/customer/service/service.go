package customerapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"negar/internal/core/apperr"
	customerEntity "negar/internal/core/customer"
	customerPort "negar/internal/ports/customer"
)

// CustomerService سرویس مدیریت مشتری‌ها
type CustomerService struct {
	CustomerRepository customerPort.CustomerRepository
}

func NewCustomerService(repo customerPort.CustomerRepository) *CustomerService {
	return &CustomerService{CustomerRepository: repo}
}

// Create ثبت مشتری جدید؛ email و phoneNumber باید بین مشتری‌ها یکتا باشند.
// بررسی check-then-write است و ایندکس‌های unique دیتابیس پشتوانه آن هستند.
func (s *CustomerService) Create(ctx context.Context, in customerPort.CreateInput) (*customerPort.CustomerDTO, error) {
	gender := customerEntity.Gender(in.Gender)
	if !gender.IsValid() {
		return nil, fmt.Errorf("gender must be one of male, female or other: %w", apperr.ErrValidation)
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	emailTaken, err := s.CustomerRepository.ExistsByEmail(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, fmt.Errorf("email already exists: %w", apperr.ErrConflict)
	}

	phoneTaken, err := s.CustomerRepository.ExistsByPhoneNumber(ctx, in.PhoneNumber, 0)
	if err != nil {
		return nil, err
	}
	if phoneTaken {
		return nil, fmt.Errorf("phone number already exists: %w", apperr.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c := &customerEntity.Customer{
		FullName:    strings.TrimSpace(in.FullName),
		Bio:         in.Bio,
		Gender:      gender,
		DateOfBirth: in.DateOfBirth,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Password:    string(hashedPassword),
	}

	created, err := s.CustomerRepository.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCustomerDTO(created), nil
}

// Update بروزرسانی پروفایل؛ یکتایی email/phone نسبت به بقیه مشتری‌ها
// بررسی می‌شود
func (s *CustomerService) Update(ctx context.Context, id uint, in customerPort.UpdateInput) (*customerPort.CustomerDTO, error) {
	c, err := s.CustomerRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		taken, err := s.CustomerRepository.ExistsByEmail(ctx, *in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("email already exists: %w", apperr.ErrConflict)
		}
		c.Email = *in.Email
	}

	if in.PhoneNumber != nil {
		taken, err := s.CustomerRepository.ExistsByPhoneNumber(ctx, *in.PhoneNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("phone number already exists: %w", apperr.ErrConflict)
		}
		c.PhoneNumber = *in.PhoneNumber
	}

	if in.Gender != nil {
		gender := customerEntity.Gender(*in.Gender)
		if !gender.IsValid() {
			return nil, fmt.Errorf("gender must be one of male, female or other: %w", apperr.ErrValidation)
		}
		c.Gender = gender
	}

	if in.FullName != nil {
		c.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Bio != nil {
		c.Bio = *in.Bio
	}
	if in.DateOfBirth != nil {
		c.DateOfBirth = *in.DateOfBirth
	}

	updated, err := s.CustomerRepository.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCustomerDTO(updated), nil
}

// UpdatePassword تغییر رمز؛ رمز فعلی باید مطابقت داشته باشد و رمز جدید
// نباید با رمز فعلی یکی باشد. در هر دو حالت شکست هیچ چیزی ذخیره نمی‌شود.
func (s *CustomerService) UpdatePassword(ctx context.Context, id uint, password, newPassword string) (*customerPort.CustomerDTO, error) {
	c, err := s.CustomerRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("current password does not match: %w", apperr.ErrConflict)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(newPassword)); err == nil {
		return nil, fmt.Errorf("new password must differ from the current one: %w", apperr.ErrConflict)
	}

	if err := validatePassword(newPassword); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c.Password = string(hashedPassword)
	updated, err := s.CustomerRepository.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCustomerDTO(updated), nil
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.CustomerRepository.FindByID(ctx, id); err != nil {
		return err
	}
	return s.CustomerRepository.Delete(ctx, id)
}

func (s *CustomerService) FindID(ctx context.Context, id uint) (*customerPort.CustomerDTO, error) {
	c, err := s.CustomerRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerDTO(c), nil
}

// FindAllAndCount لیست مشتری‌ها؛ password هرگز برگردانده نمی‌شود
func (s *CustomerService) FindAllAndCount(ctx context.Context) (*customerPort.ListData, error) {
	customers, total, err := s.CustomerRepository.FindAllAndCount(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*customerPort.CustomerDTO, 0, len(customers))
	for _, c := range customers {
		list = append(list, toCustomerDTO(c))
	}
	return &customerPort.ListData{List: list, Total: total}, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters: %w", apperr.ErrValidation)
	}
	if strings.ContainsAny(password, " \t\n") {
		return fmt.Errorf("password must not contain whitespace: %w", apperr.ErrValidation)
	}
	return nil
}

func toCustomerDTO(c *customerEntity.Customer) *customerPort.CustomerDTO {
	return &customerPort.CustomerDTO{
		ID:          c.ID,
		FullName:    c.FullName,
		Bio:         c.Bio,
		Gender:      string(c.Gender),
		DateOfBirth: c.DateOfBirth.Format("2006-01-02"),
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}
