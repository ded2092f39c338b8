package usecase

import (
	"context"
	"testing"

	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testVault       = "vault.platform"
	testStorageCost = 1
)

// Окружение на in-memory sqlite: те же репозитории и юзкейсы,
// что собирает main, но без postgres и redis.
type testEnv struct {
	db *gorm.DB

	courses    *repository.CourseRepository
	categories *repository.CategoryRepository
	profiles   *repository.ProfileRepository
	wallets    *repository.WalletRepository
	admins     *repository.AdminRepository

	catalog    *CatalogUseCase
	reviews    *ReviewUseCase
	enrollment *EnrollmentUseCase
	admin      *AdminUseCase
	profile    *ProfileUseCase
	wallet     *WalletUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Одна connection, иначе каждый коннект пула увидит свою память
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
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
	))

	env := &testEnv{
		db:         db,
		courses:    repository.NewCourseRepository(db, nil),
		categories: repository.NewCategoryRepository(db),
		profiles:   repository.NewProfileRepository(db),
		wallets:    repository.NewWalletRepository(db),
		admins:     repository.NewAdminRepository(db),
	}
	env.catalog = NewCatalogUseCase(env.courses, env.categories)
	env.reviews = NewReviewUseCase(db, env.courses)
	env.enrollment = NewEnrollmentUseCase(db, env.courses, env.profiles, env.wallets, env.admins, testVault, testStorageCost)
	env.admin = NewAdminUseCase(env.admins, env.categories)
	env.profile = NewProfileUseCase(env.profiles, env.courses)
	env.wallet = NewWalletUseCase(env.wallets)
	return env
}

func (e *testEnv) seedCategory(t *testing.T, name string) int64 {
	t.Helper()
	category := &domain.Category{Name: name}
	require.NoError(t, e.categories.Create(context.Background(), category))
	return category.ID
}

func (e *testEnv) seedCourse(t *testing.T, creator string, categoryID, price, certPrice int64) *domain.Course {
	t.Helper()
	course, err := e.catalog.PublishCourse(context.Background(), creator, PublishCourseInput{
		Title:              "course by " + creator,
		CategoryID:         categoryID,
		ShortDescription:   "short",
		LongDescription:    "long",
		Price:              price,
		CertificationPrice: certPrice,
		Content: []ContentItemInput{
			{Title: "intro", Body: "welcome", Kind: domain.ContentKindVideo},
			{Title: "theory", Body: "the text", Kind: domain.ContentKindText},
		},
	})
	require.NoError(t, err)
	return course
}

func (e *testEnv) fund(t *testing.T, accountID string, amount int64) {
	t.Helper()
	require.NoError(t, e.wallets.Deposit(context.Background(), accountID, amount))
}

func (e *testEnv) balance(t *testing.T, accountID string) int64 {
	t.Helper()
	balance, err := e.wallets.Balance(context.Background(), accountID)
	require.NoError(t, err)
	return balance
}
