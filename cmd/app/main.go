package main

import (
	"os"

	"go.uber.org/zap"

	dbadapter "negar/internal/adapters/database"
	"negar/internal/adapters/httpapi"
	"negar/internal/config"
	"negar/internal/core/category"
	categoryapp "negar/internal/core/category/service"
	"negar/internal/core/customer"
	customerapp "negar/internal/core/customer/service"
	"negar/internal/core/post"
	postapp "negar/internal/core/post/service"
	"negar/internal/core/user"
	userapp "negar/internal/core/user/service"
)

func main() {
	config.InitLogger()
	config.Init() // بارگذاری تنظیمات از .env

	// اتصال به دیتابیس و اجرای مایگریشن‌ها
	config.InitDB()

	// اعمال مایگریشن برای مدل‌ها
	if err := config.DB.AutoMigrate(
		&user.User{},
		&customer.Customer{},
		&category.Category{},
		&category.Parent{},
		&post.Post{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("✅ Database migrations completed")

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))

	userRepo := dbadapter.NewUserRepositoryDatabase()                   // آداپتر خروجی
	customerRepo := dbadapter.NewCustomerRepositoryDatabase()           // آداپتر خروجی
	categoryRepo := dbadapter.NewCategoryRepositoryDatabase()           // آداپتر خروجی
	postRepo := dbadapter.NewPostRepositoryDatabase()                   // آداپتر خروجی
	userSvc := userapp.NewUserService(userRepo, jwtSecret)              // یوزکیس/سرویس
	customerSvc := customerapp.NewCustomerService(customerRepo)         // یوزکیس/سرویس
	categorySvc := categoryapp.NewCategoryService(categoryRepo, userRepo) // یوزکیس/سرویس
	postSvc := postapp.NewPostService(postRepo, userRepo, categoryRepo) // یوزکیس/سرویس

	// تزریق یوزکیس به آداپتر ورودی
	r := httpapi.SetupRoutes(userSvc, customerSvc, categorySvc, postSvc, jwtSecret)

	// اجرای سرور Gin (در اینجا سرور به صورت بلوکینگ عمل می‌کند)
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources بستن اتصال دیتابیس
func closeResources(logger *zap.Logger) {
	sqlDB, err := config.DB.DB() // گرفتن *sql.DB از *gorm.DB
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
