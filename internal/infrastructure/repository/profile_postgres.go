package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Tx(tx *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: tx}
}

func (r *ProfileRepository) withPurchases(db *gorm.DB) *gorm.DB {
	return db.Preload("PurchasedCourses", func(db *gorm.DB) *gorm.DB {
		return db.Order("id asc")
	})
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.withPurchases(r.db.WithContext(ctx)).
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile does not exist", domain.ErrNotFound)
		}
		return nil, err
	}
	return &profile, nil
}

// List — все профили либо один, если userID непустой
func (r *ProfileRepository) List(ctx context.Context, userID string) ([]domain.Profile, error) {
	q := r.withPurchases(r.db.WithContext(ctx)).Order("created_at asc")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var profiles []domain.Profile
	err := q.Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// AppendPurchase дописывает покупку в профиль. Дубликаты по курсу
// здесь не отсекаются — это забота платежного движка.
func (r *ProfileRepository) AppendPurchase(ctx context.Context, p *domain.PurchasedCourse) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetPurchase — первая запись о покупке курса в профиле
func (r *ProfileRepository) GetPurchase(ctx context.Context, userID string, courseID int64) (*domain.PurchasedCourse, error) {
	var purchase domain.PurchasedCourse
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("id asc").
		First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course not purchased", domain.ErrNotFound)
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *ProfileRepository) SetCertification(ctx context.Context, purchaseID int64, value bool) error {
	return r.db.WithContext(ctx).Model(&domain.PurchasedCourse{}).
		Where("id = ?", purchaseID).
		Update("pass_certification", value).Error
}
