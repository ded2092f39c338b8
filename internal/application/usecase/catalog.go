package usecase

import (
	"context"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"
)

const defaultTopRatedLimit = 12

type ContentItemInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Kind  int8   `json:"kind"`
}

type PublishCourseInput struct {
	Title              string             `json:"title"`
	CategoryID         int64              `json:"category_id"`
	ShortDescription   string             `json:"short_description"`
	LongDescription    string             `json:"long_description"`
	ImageURL           string             `json:"img"`
	Content            []ContentItemInput `json:"content"`
	Price              int64              `json:"price"`
	CertificationPrice int64              `json:"price_certification"`
}

// UpdateCourseInput — без контента: он неизменяем после публикации
type UpdateCourseInput struct {
	Title              string `json:"title"`
	CategoryID         int64  `json:"category_id"`
	ShortDescription   string `json:"short_description"`
	LongDescription    string `json:"long_description"`
	ImageURL           string `json:"img"`
	Price              int64  `json:"price"`
	CertificationPrice int64  `json:"price_certification"`
}

type CatalogUseCase struct {
	courses    *repository.CourseRepository
	categories *repository.CategoryRepository
}

func NewCatalogUseCase(cr *repository.CourseRepository, cat *repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{courses: cr, categories: cat}
}

// PublishCourse открыт для любого вызывающего — это сознательное
// решение продукта, не баг.
func (uc *CatalogUseCase) PublishCourse(ctx context.Context, creatorID string, in PublishCourseInput) (*domain.Course, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator is required", domain.ErrInvalidArgument)
	}
	if _, err := uc.categories.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	course := &domain.Course{
		CreatorID:          creatorID,
		Title:              in.Title,
		CategoryID:         in.CategoryID,
		ShortDescription:   in.ShortDescription,
		LongDescription:    in.LongDescription,
		ImageURL:           in.ImageURL,
		Price:              in.Price,
		CertificationPrice: in.CertificationPrice,
		Rating:             0,
	}
	for i, item := range in.Content {
		course.Content = append(course.Content, domain.ContentItem{
			Position: i + 1,
			Title:    item.Title,
			Body:     item.Body,
			Kind:     item.Kind,
		})
	}

	if err := uc.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return uc.courses.GetByID(ctx, course.ID)
}

func (uc *CatalogUseCase) UpdateCourse(ctx context.Context, callerID string, courseID int64, in UpdateCourseInput) (*domain.Course, error) {
	course, err := uc.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.CreatorID != callerID {
		return nil, fmt.Errorf("%w: no permission", domain.ErrPermissionDenied)
	}
	if _, err := uc.categories.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	course.Title = in.Title
	course.CategoryID = in.CategoryID
	course.ShortDescription = in.ShortDescription
	course.LongDescription = in.LongDescription
	course.ImageURL = in.ImageURL
	course.Price = in.Price
	course.CertificationPrice = in.CertificationPrice

	if err := uc.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return uc.courses.GetByID(ctx, courseID)
}

func (uc *CatalogUseCase) DeleteCourse(ctx context.Context, callerID string, courseID int64) error {
	course, err := uc.courses.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course.CreatorID != callerID {
		return fmt.Errorf("%w: no permission", domain.ErrPermissionDenied)
	}
	if len(course.Inscriptions) > 0 {
		return fmt.Errorf("%w: cannot delete a course with active enrollments", domain.ErrConflict)
	}
	return uc.courses.Delete(ctx, courseID)
}

// MarketCourses — витрина маркета. Offset валидируется против общего
// числа курсов ДО фильтрации — так себя ведет исходный каталог.
func (uc *CatalogUseCase) MarketCourses(ctx context.Context, f repository.CourseFilter, offset, limit int) ([]domain.MarketCourse, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: cannot provide limit of 0", domain.ErrInvalidArgument)
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset", domain.ErrInvalidArgument)
	}
	total, err := uc.courses.Total(ctx)
	if err != nil {
		return nil, err
	}
	if int64(offset) >= total {
		return nil, fmt.Errorf("%w: out of bounds, please use a smaller offset", domain.ErrInvalidArgument)
	}

	courses, err := uc.courses.List(ctx, f, offset, limit)
	if err != nil {
		return nil, err
	}
	return marketViews(courses), nil
}

func (uc *CatalogUseCase) RecentCourses(ctx context.Context, n int) ([]domain.MarketCourse, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count", domain.ErrInvalidArgument)
	}
	courses, err := uc.courses.Recent(ctx, n)
	if err != nil {
		return nil, err
	}
	return marketViews(courses), nil
}

func (uc *CatalogUseCase) CourseCount(ctx context.Context, creatorID *string, categoryID *int64) (int64, error) {
	return uc.courses.CountByFilter(ctx, repository.CourseFilter{
		CreatorID:  creatorID,
		CategoryID: categoryID,
	})
}

func (uc *CatalogUseCase) TopRatedCourses(ctx context.Context, limit int) ([]domain.MarketCourse, error) {
	if limit <= 0 {
		limit = defaultTopRatedLimit
	}
	courses, err := uc.courses.TopRated(ctx, limit)
	if err != nil {
		return nil, err
	}
	return marketViews(courses), nil
}

// InstructorCourses — полные объекты курсов автора, с телами уроков
func (uc *CatalogUseCase) InstructorCourses(ctx context.Context, creatorID string) ([]domain.Course, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: not user", domain.ErrInvalidArgument)
	}
	return uc.courses.ByCreator(ctx, creatorID)
}

func marketViews(courses []domain.Course) []domain.MarketCourse {
	views := make([]domain.MarketCourse, 0, len(courses))
	for i := range courses {
		views = append(views, courses[i].MarketView())
	}
	return views
}
