package main

import (
	"context"
	"fmt"
	"log"

	"github.com/waste3d/artemis-marketplace/internal/application/usecase"
	"github.com/waste3d/artemis-marketplace/internal/config"
	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/security"
	"github.com/waste3d/artemis-marketplace/internal/middleware"
	handlers "github.com/waste3d/artemis-marketplace/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	// TranslateError нужен, чтобы ловить gorm.ErrDuplicatedKey на уникальных индексах
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}

	// Миграции
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Course{},
		&domain.ContentItem{},
		&domain.Inscription{},
		&domain.Review{},
		&domain.Profile{},
		&domain.PurchasedCourse{},
		&domain.Administrator{},
		&domain.Account{},
		&domain.Transfer{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx := context.Background()

	// === SEED (Начальные админы и счет платформы) ===
	adminRepo := repository.NewAdminRepository(db)
	if err := adminRepo.Seed(ctx, cfg.SeedAdminList()); err != nil {
		log.Fatalf("Admin seed failed: %v", err)
	}

	walletRepo := repository.NewWalletRepository(db)
	if _, err := walletRepo.GetOrCreate(ctx, cfg.VaultAccount); err != nil {
		log.Fatalf("Vault account init failed: %v", err)
	}

	courseRepo := repository.NewCourseRepository(db, rdb)
	profileRepo := repository.NewProfileRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	tokenManager := security.NewTokenManager(cfg.AccessSecret)
	hasher := security.NewPasswordHasher(cfg.BcryptCost)

	authUC := usecase.NewAuthUseCase(userRepo, walletRepo, hasher, tokenManager)
	catalogUC := usecase.NewCatalogUseCase(courseRepo, categoryRepo)
	reviewUC := usecase.NewReviewUseCase(db, courseRepo)
	enrollmentUC := usecase.NewEnrollmentUseCase(db, courseRepo, profileRepo, walletRepo, adminRepo, cfg.VaultAccount, cfg.StorageByteCost)
	profileUC := usecase.NewProfileUseCase(profileRepo, courseRepo)
	walletUC := usecase.NewWalletUseCase(walletRepo)
	adminUC := usecase.NewAdminUseCase(adminRepo, categoryRepo)

	limiter := middleware.NewRateLimiter(rdb)

	router := handlers.NewRouter(
		cfg.OriginList(),
		tokenManager,
		limiter,
		handlers.NewAuthHandler(authUC),
		handlers.NewMarketHandler(catalogUC, reviewUC),
		handlers.NewCourseHandler(catalogUC, reviewUC),
		handlers.NewEnrollmentHandler(enrollmentUC),
		handlers.NewProfileHandler(profileUC),
		handlers.NewWalletHandler(walletUC),
		handlers.NewAdminHandler(adminUC, enrollmentUC),
	)

	log.Printf("Marketplace API running on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
