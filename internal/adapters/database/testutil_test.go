package database

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"negar/internal/config"
	"negar/internal/core/category"
	"negar/internal/core/customer"
	"negar/internal/core/post"
	"negar/internal/core/user"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	config.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	// یک کانکشن تا دیتابیس in-memory بین goroutineها مشترک بماند
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&user.User{},
		&customer.Customer{},
		&category.Category{},
		&category.Parent{},
		&post.Post{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
}

func seedCategory(t *testing.T, name string, level category.Level, createdAt time.Time) *category.Category {
	t.Helper()
	c := &category.Category{Name: name, Level: level, CreatedAt: createdAt}
	if err := config.DB.Create(c).Error; err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	return c
}

func seedParentRow(t *testing.T, childID, parentID uint) {
	t.Helper()
	row := category.Parent{CategoryID: childID, ParentCategoryID: parentID}
	if err := config.DB.Create(&row).Error; err != nil {
		t.Fatalf("seed parent row %d->%d: %v", childID, parentID, err)
	}
}

func seedUser(t *testing.T, fullName string) *user.User {
	t.Helper()
	u := &user.User{FullName: fullName, Email: fullName + "@example.com", Password: "x"}
	if err := config.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", fullName, err)
	}
	return u
}

func seedPost(t *testing.T, title string, creatorID, categoryID uint, createdAt time.Time) *post.Post {
	t.Helper()
	p := &post.Post{Title: title, Description: "d", CreatorID: creatorID, CategoryID: categoryID, CreatedAt: createdAt}
	if err := config.DB.Omit(clause.Associations).Create(p).Error; err != nil {
		t.Fatalf("seed post %s: %v", title, err)
	}
	return p
}
