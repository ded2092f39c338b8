package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/waste3d/artemis-marketplace/internal/domain"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CourseFilter — конъюнктивные фильтры каталога.
// Порядок применения фиксирован: creator, затем category, затем id.
type CourseFilter struct {
	CourseID   *int64
	CreatorID  *string
	CategoryID *int64
}

type CourseRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCourseRepository(db *gorm.DB, rdb *redis.Client) *CourseRepository {
	return &CourseRepository{db: db, rdb: rdb}
}

// Tx возвращает копию репозитория, привязанную к транзакции
func (r *CourseRepository) Tx(tx *gorm.DB) *CourseRepository {
	return &CourseRepository{db: tx, rdb: r.rdb}
}

func (r *CourseRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Content", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Inscriptions").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		})
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	// Деталь курса НЕ кешируем: движок покупок читает inscriptions
	// отсюда же, протухшая копия позволила бы двойную запись.
	var course domain.Course
	err := r.preloaded(r.db.WithContext(ctx)).First(&course, "courses.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return &course, nil
}

// Update пишет только изменяемые поля. Контент, записи, рейтинг
// и отзывы живут своей жизнью и здесь не трогаются.
func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) error {
	return r.db.WithContext(ctx).Model(&domain.Course{ID: c.ID}).
		Select("title", "category_id", "short_description", "long_description",
			"image_url", "price", "certification_price", "updated_at").
		Updates(map[string]interface{}{
			"title":               c.Title,
			"category_id":         c.CategoryID,
			"short_description":   c.ShortDescription,
			"long_description":    c.LongDescription,
			"image_url":           c.ImageURL,
			"price":               c.Price,
			"certification_price": c.CertificationPrice,
			"updated_at":          time.Now(),
		}).Error
}

func (r *CourseRepository) UpdateRating(ctx context.Context, id int64, rating float64) error {
	return r.db.WithContext(ctx).Model(&domain.Course{ID: id}).
		Update("rating", rating).Error
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Course{}, "id = ?", id).Error
}

// Total — число курсов в каталоге (оракул для пагинации и recent)
func (r *CourseRepository) Total(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Course{}).Count(&total).Error
	return total, err
}

func (r *CourseRepository) applyFilter(db *gorm.DB, f CourseFilter) *gorm.DB {
	if f.CreatorID != nil {
		db = db.Where("creator_id = ?", *f.CreatorID)
	}
	if f.CategoryID != nil {
		db = db.Where("category_id = ?", *f.CategoryID)
	}
	if f.CourseID != nil {
		db = db.Where("courses.id = ?", *f.CourseID)
	}
	return db
}

// List — страница каталога в порядке вставки (id asc).
// Страницы кешируются в redis с коротким TTL; при промахе или
// недоступном redis идем в БД.
func (r *CourseRepository) List(ctx context.Context, f CourseFilter, offset, limit int) ([]domain.Course, error) {
	key := fmt.Sprintf("market:list:%v:%v:%v:%d:%d",
		deref(f.CreatorID), derefInt(f.CategoryID), derefInt(f.CourseID), offset, limit)

	if r.rdb != nil {
		if val, err := r.rdb.Get(ctx, key).Result(); err == nil {
			var cached []domain.Course
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	var courses []domain.Course
	q := r.applyFilter(r.preloaded(r.db.WithContext(ctx)), f)
	err := q.Order("courses.id asc").Offset(offset).Limit(limit).Find(&courses).Error
	if err != nil {
		return nil, err
	}

	if r.rdb != nil {
		if data, err := json.Marshal(courses); err == nil {
			r.rdb.Set(ctx, key, data, 5*time.Minute)
		}
	}
	return courses, nil
}

func (r *CourseRepository) CountByFilter(ctx context.Context, f CourseFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&domain.Course{}), f).
		Count(&count).Error
	return count, err
}

// Recent — последние n курсов в порядке вставки
func (r *CourseRepository) Recent(ctx context.Context, n int) ([]domain.Course, error) {
	total, err := r.Total(ctx)
	if err != nil {
		return nil, err
	}
	offset := 0
	if total > int64(n) {
		offset = int(total - int64(n))
	}

	var courses []domain.Course
	err = r.preloaded(r.db.WithContext(ctx)).
		Order("courses.id asc").Offset(offset).Find(&courses).Error
	return courses, err
}

// TopRated — курсы с ненулевым рейтингом, по убыванию.
// Тай-брейк по id сохраняет порядок каталога (стабильная сортировка).
func (r *CourseRepository) TopRated(ctx context.Context, limit int) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.preloaded(r.db.WithContext(ctx)).
		Where("rating > 0").
		Order("rating desc").Order("courses.id asc").
		Limit(limit).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ByCreator(ctx context.Context, creatorID string) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.preloaded(r.db.WithContext(ctx)).
		Where("creator_id = ?", creatorID).
		Order("courses.id asc").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) AddInscription(ctx context.Context, ins *domain.Inscription) error {
	err := r.db.WithContext(ctx).Create(ins).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: user already enrolled in the course", domain.ErrConflict)
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
