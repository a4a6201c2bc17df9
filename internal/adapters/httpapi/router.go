package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"negar/internal/adapters/httpapi/middleware"
	categoryPort "negar/internal/ports/category"
	customerPort "negar/internal/ports/customer"
	postPort "negar/internal/ports/post"
	userPort "negar/internal/ports/user"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	Login(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
	CreateUser(ctx context.Context, email, fullName, password string) (*userPort.UserDTO, error)
	FindAllAndCount(ctx context.Context) (*userPort.ListData, error)
}

type CustomerUseCase interface {
	Create(ctx context.Context, in customerPort.CreateInput) (*customerPort.CustomerDTO, error)
	Update(ctx context.Context, id uint, in customerPort.UpdateInput) (*customerPort.CustomerDTO, error)
	UpdatePassword(ctx context.Context, id uint, password, newPassword string) (*customerPort.CustomerDTO, error)
	Delete(ctx context.Context, id uint) error
	FindID(ctx context.Context, id uint) (*customerPort.CustomerDTO, error)
	FindAllAndCount(ctx context.Context) (*customerPort.ListData, error)
}

type CategoryUseCase interface {
	Create(ctx context.Context, name string, parentCategoryIDs []uint, creatorID uint) (*categoryPort.CategoryDTO, error)
	Update(ctx context.Context, id uint, name *string, parentCategoryIDs []uint) (*categoryPort.CategoryDetails, error)
	FindID(ctx context.Context, id uint) (*categoryPort.CategoryDetails, error)
	FindAllAndCount(ctx context.Context, filter categoryPort.Filter) (*categoryPort.ListData, error)
}

type PostUseCase interface {
	Create(ctx context.Context, title, description string, categoryID, creatorID uint) (*postPort.PostDTO, error)
	Update(ctx context.Context, id uint, title, description *string, categoryID *uint) (*postPort.PostDTO, error)
	FindID(ctx context.Context, id uint) (*postPort.PostDTO, error)
	FindAllAndCount(ctx context.Context, filter postPort.Filter) (*postPort.ListData, error)
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	userUC UserUseCase,
	customerUC CustomerUseCase,
	categoryUC CategoryUseCase,
	postUC PostUseCase,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	uc := NewUserController(userUC)
	cc := NewCustomerController(customerUC)
	catc := NewCategoryController(categoryUC)
	pc := NewPostController(postUC)

	auth := middleware.JWTAuthMiddleware(jwtSecret)

	// ورود و ثبت‌نام مشتری بدون JWT Middleware
	r.POST("/auth/login", uc.Login)
	r.POST("/customers", cc.Create)

	// جزییات دسته‌بندی و پست مثل نسخه اصلی عمومی هستند
	r.GET("/categories/:id", catc.FindID)
	r.GET("/posts/:id", pc.FindID)

	// بقیه مسیرها با JWT Middleware
	r.GET("/categories", auth, catc.FindAll)
	r.POST("/categories", auth, catc.Create)
	r.PUT("/categories/:id", auth, catc.Update)

	r.GET("/posts", auth, pc.FindAll)
	r.POST("/posts", auth, pc.Create)
	r.PUT("/posts/:id", auth, pc.Update)

	r.GET("/customers", auth, cc.FindAll)
	r.GET("/customers/:id", auth, cc.FindID)
	r.PUT("/customers/:id", auth, cc.Update)
	r.PUT("/customers/:id/password", auth, cc.UpdatePassword)
	r.DELETE("/customers/:id", auth, cc.Delete)

	r.POST("/users", auth, uc.CreateUser)
	r.GET("/users", auth, uc.FindAll)

	return r
}
