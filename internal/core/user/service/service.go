package userapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"negar/internal/config"
	"negar/internal/core/apperr"
	userEntity "negar/internal/core/user"
	userPort "negar/internal/ports/user"
)

// UserService سرویس مدیریت کاربران و صدور توکن
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	tokenTTL       time.Duration
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		tokenTTL:       24 * time.Hour,
	}
}

// Login ورود کاربر و صدور توکن JWT؛ شکل خطا مستقل از این است که
// email غلط بوده یا password
func (s *UserService) Login(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		config.Logger.Warn("⚠️ Login failed", zap.String("email", email))
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		config.Logger.Warn("⚠️ Login failed", zap.String("email", email))
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}

	token, err := s.generateJWT(u)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	// نگهداری آخرین توکن صادر شده روی سطر کاربر
	if err := s.UserRepository.UpdateToken(ctx, u.ID, token); err != nil {
		return nil, err
	}

	return &userPort.LoginResponse{
		Token: token,
		ID:    u.ID,
		Email: u.Email,
	}, nil
}

// generateJWT برای تولید توکن JWT
func (s *UserService) generateJWT(u *userEntity.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"iss":   "negar",
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// CreateUser ثبت کاربر جدید؛ fullName باید یکتا باشد
func (s *UserService) CreateUser(ctx context.Context, email, fullName, password string) (*userPort.UserDTO, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" || len(fullName) > 100 {
		return nil, fmt.Errorf("fullName must be between 1 and 100 characters: %w", apperr.ErrValidation)
	}

	taken, err := s.UserRepository.ExistsByFullName(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("name already exists: %w", apperr.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		Email:    strings.TrimSpace(email),
		FullName: fullName,
		Password: string(hashedPassword),
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return toUserDTO(created), nil
}

// FindAllAndCount لیست کاربران؛ password و token هرگز برگردانده نمی‌شوند
func (s *UserService) FindAllAndCount(ctx context.Context) (*userPort.ListData, error) {
	users, total, err := s.UserRepository.FindAllAndCount(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		list = append(list, toUserDTO(u))
	}

	return &userPort.ListData{List: list, Total: total}, nil
}

func toUserDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
