package userapp

import (
	"context"
	"errors"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"negar/internal/adapters/database"
	"negar/internal/config"
	"negar/internal/core/apperr"
	"negar/internal/core/user"
)

var testJWTKey = []byte("test-secret")

func setupService(t *testing.T) *UserService {
	t.Helper()
	config.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&user.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	return NewUserService(database.NewUserRepositoryDatabase(), testJWTKey)
}

func TestLoginIssuesAndPersistsToken(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "ali@example.com", "Ali Rezaei", "pass-word-1")
	if err != nil {
		t.Fatalf("createUser: %v", err)
	}

	resp, err := svc.Login(ctx, "ali@example.com", "pass-word-1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.ID != created.ID || resp.Email != "ali@example.com" {
		t.Errorf("resp = %+v", resp)
	}

	// توکن باید با کلید سرویس امضا شده باشد و sub کاربر را داشته باشد
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return testJWTKey, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if sub, ok := claims["sub"].(float64); !ok || uint(sub) != created.ID {
		t.Errorf("sub = %v, want %d", claims["sub"], created.ID)
	}
	if claims["iss"] != "negar" {
		t.Errorf("iss = %v, want negar", claims["iss"])
	}

	// آخرین توکن صادر شده روی سطر کاربر ذخیره می‌شود
	var stored user.User
	if err := config.DB.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Token != resp.Token {
		t.Error("issued token not persisted on the user row")
	}
}

func TestLoginFailureShapeIsConstant(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "ali@example.com", "Ali Rezaei", "pass-word-1"); err != nil {
		t.Fatalf("createUser: %v", err)
	}

	_, errUnknownEmail := svc.Login(ctx, "nobody@example.com", "pass-word-1")
	_, errWrongPassword := svc.Login(ctx, "ali@example.com", "wrong")

	if !errors.Is(errUnknownEmail, apperr.ErrUnauthorized) || !errors.Is(errWrongPassword, apperr.ErrUnauthorized) {
		t.Fatalf("errs = %v / %v, want ErrUnauthorized for both", errUnknownEmail, errWrongPassword)
	}
	// هر دو مسیر شکست باید پیام یکسان بدهند تا وجود email لو نرود
	if errUnknownEmail.Error() != errWrongPassword.Error() {
		t.Errorf("error shapes differ: %q vs %q", errUnknownEmail, errWrongPassword)
	}
}

func TestCreateUserFullNameConflict(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "ali@example.com", "Ali Rezaei", "pass-word-1"); err != nil {
		t.Fatalf("createUser: %v", err)
	}
	if _, err := svc.CreateUser(ctx, "other@example.com", "Ali Rezaei", "pass-word-2"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
	// trim قبل از مقایسه اعمال می‌شود
	if _, err := svc.CreateUser(ctx, "third@example.com", "  Ali Rezaei  ", "pass-word-3"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("trimmed name: err = %v, want ErrConflict", err)
	}
}

func TestCreateUserFullNameValidation(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.CreateUser(context.Background(), "a@example.com", "   ", "pass-word-1"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestFindAllStripsSecrets(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "ali@example.com", "Ali Rezaei", "pass-word-1"); err != nil {
		t.Fatalf("createUser: %v", err)
	}
	if _, err := svc.Login(ctx, "ali@example.com", "pass-word-1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	data, err := svc.FindAllAndCount(ctx)
	if err != nil {
		t.Fatalf("findAll: %v", err)
	}
	if data.Total != 1 || len(data.List) != 1 {
		t.Fatalf("total=%d len=%d, want 1/1", data.Total, len(data.List))
	}
	// UserDTO ساختارا password و token ندارد؛ نگاشت فیلدهای عمومی را چک می‌کنیم
	got := data.List[0]
	if got.Email != "ali@example.com" || got.FullName != "Ali Rezaei" {
		t.Errorf("dto = %+v", got)
	}
}
