package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) IsAdmin(ctx context.Context, accountID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Administrator{}).
		Where("account_id = ?", accountID).Count(&count).Error
	return count > 0, err
}

func (r *AdminRepository) Add(ctx context.Context, admin *domain.Administrator) error {
	err := r.db.WithContext(ctx).Create(admin).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: the user is already in the list of administrators", domain.ErrAlreadyExists)
	}
	return err
}

func (r *AdminRepository) Remove(ctx context.Context, accountID string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Administrator{}, "account_id = ?", accountID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: the user is not in the list of administrators", domain.ErrNotFound)
	}
	return nil
}

func (r *AdminRepository) List(ctx context.Context) ([]domain.Administrator, error) {
	var admins []domain.Administrator
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&admins).Error
	return admins, err
}

// Seed заливает стартовый набор админов, если список пуст
func (r *AdminRepository) Seed(ctx context.Context, accountIDs []string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Administrator{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, id := range accountIDs {
		if err := r.db.WithContext(ctx).Create(&domain.Administrator{AccountID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}
