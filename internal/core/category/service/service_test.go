package categoryapp

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"negar/internal/adapters/database"
	"negar/internal/config"
	"negar/internal/core/apperr"
	"negar/internal/core/category"
	"negar/internal/core/customer"
	"negar/internal/core/post"
	"negar/internal/core/user"
	categoryPort "negar/internal/ports/category"
)

func setupService(t *testing.T) *CategoryService {
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
	// دیتابیس :memory: به ازای هر کانکشن جداست؛ pool باید تک‌کانکشنه باشد
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&user.User{}, &customer.Customer{}, &category.Category{}, &category.Parent{}, &post.Post{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	return NewCategoryService(database.NewCategoryRepositoryDatabase(), database.NewUserRepositoryDatabase())
}

func seedUser(t *testing.T, fullName string) *user.User {
	t.Helper()
	u := &user.User{Email: fullName + "@example.com", FullName: fullName, Password: "x"}
	if err := config.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestCreateWithoutParentsIsParentLevel(t *testing.T) {
	svc := setupService(t)
	u := seedUser(t, "creator")

	dto, err := svc.Create(context.Background(), "Frontend", nil, u.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Level != string(category.LevelParent) {
		t.Errorf("level = %s, want PARENT", dto.Level)
	}
}

func TestCreateWithParentsIsChildrenLevel(t *testing.T) {
	svc := setupService(t)
	u := seedUser(t, "creator")
	ctx := context.Background()

	parent, err := svc.Create(ctx, "Frontend", nil, u.ID)
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	child, err := svc.Create(ctx, "ReactJs", []uint{parent.ID}, u.ID)
	if err != nil {
		t.Fatalf("create child: %v", err)
	}
	if child.Level != string(category.LevelChildren) {
		t.Errorf("level = %s, want CHILDREN", child.Level)
	}

	details, err := svc.FindID(ctx, child.ID)
	if err != nil {
		t.Fatalf("findID: %v", err)
	}
	if len(details.ParentCategories) != 1 || details.ParentCategories[0].Name != "Frontend" {
		t.Errorf("parents = %+v, want [Frontend]", details.ParentCategories)
	}
}

func TestCreateDropsUnknownParentsSilently(t *testing.T) {
	svc := setupService(t)
	u := seedUser(t, "creator")
	ctx := context.Background()

	parent, err := svc.Create(ctx, "Frontend", nil, u.ID)
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	// شناسه 999 وجود ندارد؛ باید بی‌صدا حذف شود نه خطا
	child, err := svc.Create(ctx, "ReactJs", []uint{parent.ID, 999}, u.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	details, err := svc.FindID(ctx, child.ID)
	if err != nil {
		t.Fatalf("findID: %v", err)
	}
	if len(details.ParentCategories) != 1 {
		t.Errorf("parents = %+v, want just the existing one", details.ParentCategories)
	}

	// اگر هیچ والدی resolve نشود، دسته PARENT می‌شود
	orphan, err := svc.Create(ctx, "Orphan", []uint{999}, u.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if orphan.Level != string(category.LevelParent) {
		t.Errorf("level = %s, want PARENT", orphan.Level)
	}
}

func TestCreateAcceptsMissingCreator(t *testing.T) {
	svc := setupService(t)

	dto, err := svc.Create(context.Background(), "Frontend", nil, 12345)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.ID == 0 {
		t.Error("expected category to be persisted without creator")
	}
}

func TestCreateNameValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "   ", nil, 1); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("blank name: err = %v, want ErrValidation", err)
	}
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := svc.Create(ctx, string(long), nil, 1); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("long name: err = %v, want ErrValidation", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := setupService(t)

	name := "x"
	if _, err := svc.Update(context.Background(), 999, &name, nil); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateReplacesParentsAndDerivesLevel(t *testing.T) {
	svc := setupService(t)
	u := seedUser(t, "creator")
	ctx := context.Background()

	a, _ := svc.Create(ctx, "A", nil, u.ID)
	b, _ := svc.Create(ctx, "B", nil, u.ID)
	c, err := svc.Create(ctx, "C", []uint{a.ID}, u.ID)
	if err != nil {
		t.Fatalf("create C: %v", err)
	}

	// جایگزینی کامل: والد A با B عوض می‌شود
	details, err := svc.Update(ctx, c.ID, nil, []uint{b.ID})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(details.ParentCategories) != 1 || details.ParentCategories[0].ID != b.ID {
		t.Errorf("parents = %+v, want [B]", details.ParentCategories)
	}

	// لیست خالی یعنی پاک شدن همه والدها و برگشتن به PARENT
	details, err = svc.Update(ctx, c.ID, nil, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if details.Level != string(category.LevelParent) {
		t.Errorf("level = %s, want PARENT after clearing parents", details.Level)
	}
	if len(details.ParentCategories) != 0 {
		t.Errorf("parents = %+v, want empty", details.ParentCategories)
	}
}

func TestUpdateToChildrenDetachesItsChildren(t *testing.T) {
	svc := setupService(t)
	u := seedUser(t, "creator")
	ctx := context.Background()

	top, _ := svc.Create(ctx, "Top", nil, u.ID)
	mid, _ := svc.Create(ctx, "Mid", nil, u.ID)
	leaf, err := svc.Create(ctx, "Leaf", []uint{mid.ID}, u.ID)
	if err != nil {
		t.Fatalf("create leaf: %v", err)
	}

	// Mid والد می‌گیرد و CHILDREN می‌شود؛ Leaf باید از Mid جدا شود
	midDetails, err := svc.Update(ctx, mid.ID, nil, []uint{top.ID})
	if err != nil {
		t.Fatalf("update mid: %v", err)
	}
	if midDetails.Level != string(category.LevelChildren) {
		t.Fatalf("mid level = %s, want CHILDREN", midDetails.Level)
	}

	leafDetails, err := svc.FindID(ctx, leaf.ID)
	if err != nil {
		t.Fatalf("findID leaf: %v", err)
	}
	if len(leafDetails.ParentCategories) != 0 {
		t.Errorf("leaf parents = %+v, want detached", leafDetails.ParentCategories)
	}
	if leafDetails.Level != string(category.LevelParent) {
		t.Errorf("leaf level = %s, want PARENT after detach", leafDetails.Level)
	}
}

func TestUpdateToChildrenKeepsChildOtherParents(t *testing.T) {
	svc := setupService(t)
	u := seedUser(t, "creator")
	ctx := context.Background()

	top, _ := svc.Create(ctx, "Top", nil, u.ID)
	mid, _ := svc.Create(ctx, "Mid", nil, u.ID)
	other, _ := svc.Create(ctx, "Other", nil, u.ID)
	leaf, err := svc.Create(ctx, "Leaf", []uint{mid.ID, other.ID}, u.ID)
	if err != nil {
		t.Fatalf("create leaf: %v", err)
	}

	if _, err := svc.Update(ctx, mid.ID, nil, []uint{top.ID}); err != nil {
		t.Fatalf("update mid: %v", err)
	}

	// Leaf فقط از Mid جدا می‌شود؛ Other می‌ماند و سطح CHILDREN حفظ می‌شود
	leafDetails, err := svc.FindID(ctx, leaf.ID)
	if err != nil {
		t.Fatalf("findID leaf: %v", err)
	}
	if len(leafDetails.ParentCategories) != 1 || leafDetails.ParentCategories[0].ID != other.ID {
		t.Errorf("leaf parents = %+v, want [Other]", leafDetails.ParentCategories)
	}
	if leafDetails.Level != string(category.LevelChildren) {
		t.Errorf("leaf level = %s, want CHILDREN", leafDetails.Level)
	}
}

func TestFindAllAndCountAppliesDefaults(t *testing.T) {
	svc := setupService(t)
	u := seedUser(t, "creator")
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if _, err := svc.Create(ctx, name, nil, u.ID); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	data, err := svc.FindAllAndCount(ctx, categoryPort.Filter{})
	if err != nil {
		t.Fatalf("findAll: %v", err)
	}
	if data.Page != 1 || data.PerPage != 10 {
		t.Errorf("page/perPage = %d/%d, want defaults 1/10", data.Page, data.PerPage)
	}
	if data.Total != 3 || len(data.List) != 3 {
		t.Errorf("total=%d len=%d, want 3/3", data.Total, len(data.List))
	}
}
