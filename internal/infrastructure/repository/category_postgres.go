package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category does not exist", domain.ErrNotFound)
		}
		return nil, err
	}
	return &category, nil
}

// List — все категории либо одна, если id > 0
func (r *CategoryRepository) List(ctx context.Context, id int64) ([]domain.Category, error) {
	q := r.db.WithContext(ctx).Order("id asc")
	if id > 0 {
		q = q.Where("id = ?", id)
	}
	var categories []domain.Category
	err := q.Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	res := r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{"name": c.Name, "image_url": c.ImageURL})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: category does not exist", domain.ErrNotFound)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: category does not exist", domain.ErrNotFound)
	}
	return nil
}
